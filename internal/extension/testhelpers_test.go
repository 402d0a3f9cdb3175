package extension

import (
	"context"
	"sync"

	"github.com/aldus-browser/aldus/pkg/extview"
)

// fakeContent is an in-memory Content with manual destruction.
type fakeContent struct {
	id  extview.ContentID
	url string

	mu        sync.Mutex
	nextSub   int
	destroyed map[int]func()
}

func newFakeContent(id extview.ContentID, url string) *fakeContent {
	return &fakeContent{id: id, url: url, destroyed: make(map[int]func())}
}

func (c *fakeContent) ID() extview.ContentID { return c.id }
func (c *fakeContent) URL() string           { return c.url }

func (c *fakeContent) OnDestroyed(fn func()) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.nextSub
	c.nextSub++
	c.destroyed[key] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.destroyed, key)
	}
}

// destroy fires all live destruction subscriptions.
func (c *fakeContent) destroy() {
	c.mu.Lock()
	subs := make([]func(), 0, len(c.destroyed))
	for _, fn := range c.destroyed {
		subs = append(subs, fn)
	}
	c.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

func (c *fakeContent) subscriberCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.destroyed)
}

// fakeView is a call-recording ViewBinding.
type fakeView struct {
	window extview.WindowController

	documentViewCreated int
	didStopLoading      int
	resizes             []extview.Size
	insertedCSS         []string
	sentWindowIDs       []int
	handledKeys         []extview.KeyEvent
	handleKeyResult     bool
	destroyCount        int
	visible             bool
}

func (v *fakeView) NativeWidget() uintptr                 { return 0 }
func (v *fakeView) Window() extview.WindowController      { return v.window }
func (v *fakeView) SetVisible(visible bool)               { v.visible = visible }
func (v *fakeView) Focus()                                {}
func (v *fakeView) ResizeDueToAutoResize(sz extview.Size) { v.resizes = append(v.resizes, sz) }
func (v *fakeView) DocumentViewCreated()                  { v.documentViewCreated++ }
func (v *fakeView) DidStopLoading()                       { v.didStopLoading++ }
func (v *fakeView) Destroy()                              { v.destroyCount++ }

func (v *fakeView) HandleKeyboardEvent(ev extview.KeyEvent) bool {
	v.handledKeys = append(v.handledKeys, ev)
	return v.handleKeyResult
}

func (v *fakeView) InsertCSS(_ context.Context, css string) error {
	v.insertedCSS = append(v.insertedCSS, css)
	return nil
}

func (v *fakeView) SendWindowID(_ context.Context, windowID int) error {
	v.sentWindowIDs = append(v.sentWindowIDs, windowID)
	return nil
}

// fakeWindow is a WindowController with pluggable behavior.
type fakeWindow struct {
	windowID       int
	preHandle      func(ev extview.KeyEvent) (bool, bool)
	handledEvents  []extview.KeyEvent
	openURLCalls   []extview.OpenURLParams
	openURLContent extview.Content
}

func (w *fakeWindow) WindowID() int { return w.windowID }

func (w *fakeWindow) OpenURL(_ context.Context, params extview.OpenURLParams) extview.Content {
	w.openURLCalls = append(w.openURLCalls, params)
	return w.openURLContent
}

func (w *fakeWindow) PreHandleKeyboardShortcut(ev extview.KeyEvent) (bool, bool) {
	if w.preHandle != nil {
		return w.preHandle(ev)
	}
	return false, false
}

func (w *fakeWindow) HandleKeyboardEvent(ev extview.KeyEvent) {
	w.handledEvents = append(w.handledEvents, ev)
}

// newTestHost builds a host around a fakeView without touching the platform
// factory.
func newTestHost(t interface{ Fatalf(string, ...any) }, opts HostOptions, view *fakeView) *ViewHost {
	opts.View = view
	if opts.URL == "" {
		opts.URL = "chrome-extension://abcdef/popup.html"
	}
	h, err := NewViewHost(context.Background(), opts)
	if err != nil {
		t.Fatalf("NewViewHost: %v", err)
	}
	return h
}

func escapeKeyDown() extview.KeyEvent {
	return extview.KeyEvent{Type: extview.KeyEventRawKeyDown, Keyval: extview.KeyvalEscape}
}
