//go:build webkit_cgo

package extview

import (
	"context"
	"fmt"
	"sync"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"

	"github.com/aldus-browser/aldus/internal/logging"
)

var _ AcceleratorRegistrar = (*gtkView)(nil)

// gtkView binds a WebKitGTK WebView for a hosted extension surface.
type gtkView struct {
	view   *webkit.WebView
	window WindowController

	mu        sync.RWMutex
	destroyed bool
	accels    map[accelKey]func()
}

// accelKey identifies a view-local accelerator binding.
type accelKey struct {
	keyval uint
	mods   Modifier
}

func newGTKView(ctx context.Context, opts Options) (ViewBinding, error) {
	log := logging.FromContext(ctx)

	wkView := webkit.NewWebView()
	if wkView == nil {
		return nil, fmt.Errorf("extview: webkit view construction failed")
	}

	v := &gtkView{
		view:   wkView,
		window: opts.Window,
		accels: make(map[accelKey]func()),
	}

	// Hidden until the document finishes loading; avoids painting an
	// empty surface.
	wkView.SetVisible(false)

	if opts.URL != "" {
		wkView.LoadURI(opts.URL)
	}

	log.Debug().Str("url", opts.URL).Msg("gtk view created")
	return v, nil
}

func (v *gtkView) NativeWidget() uintptr {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.destroyed || v.view == nil {
		return 0
	}
	return coreglib.InternObject(v.view).Native()
}

func (v *gtkView) Window() WindowController {
	return v.window
}

func (v *gtkView) SetVisible(visible bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.destroyed {
		return
	}
	v.view.SetVisible(visible)
}

func (v *gtkView) Focus() {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.destroyed {
		return
	}
	v.view.GrabFocus()
}

func (v *gtkView) ResizeDueToAutoResize(size Size) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.destroyed {
		return
	}
	v.view.SetSizeRequest(size.Width, size.Height)
}

func (v *gtkView) DocumentViewCreated() {
	// The widget already exists; nothing to realize lazily in GTK4.
}

func (v *gtkView) DidStopLoading() {
	v.SetVisible(true)
}

// HandleKeyboardEvent consults the view-local accelerator registry. The
// window's own accelerators never reach this path; see the hosting layer's
// routing order.
func (v *gtkView) HandleKeyboardEvent(ev KeyEvent) bool {
	if ev.Type != KeyEventRawKeyDown {
		return false
	}

	v.mu.RLock()
	fn := v.accels[accelKey{keyval: ev.Keyval, mods: ev.Modifiers}]
	v.mu.RUnlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}

// RegisterAccelerator implements AcceleratorRegistrar.
func (v *gtkView) RegisterAccelerator(keyval uint, mods Modifier, fn func()) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.destroyed || fn == nil {
		return
	}
	v.accels[accelKey{keyval: keyval, mods: mods}] = fn
}

func (v *gtkView) InsertCSS(ctx context.Context, css string) error {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.destroyed {
		return ErrViewDestroyed
	}

	ucm := v.view.UserContentManager()
	if ucm == nil {
		return fmt.Errorf("extview: user content manager unavailable")
	}

	ucm.AddStyleSheet(webkit.NewUserStyleSheet(
		css,
		webkit.UserContentInjectTopFrame,
		webkit.UserStyleLevelUser,
		nil,
		nil,
	))

	logging.FromContext(ctx).Debug().Int("bytes", len(css)).Msg("stylesheet inserted")
	return nil
}

func (v *gtkView) SendWindowID(ctx context.Context, windowID int) error {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.destroyed {
		return ErrViewDestroyed
	}

	ucm := v.view.UserContentManager()
	if ucm == nil {
		return fmt.Errorf("extview: user content manager unavailable")
	}

	// Injected at document start so the identifier is visible before any
	// extension script runs. Fire-and-forget; there is no reply.
	script := fmt.Sprintf("window.__aldus_window_id = %d;", windowID)
	ucm.AddScript(webkit.NewUserScript(
		script,
		webkit.UserContentInjectTopFrame,
		webkit.UserScriptInjectAtDocumentStart,
		nil,
		nil,
	))

	logging.FromContext(ctx).Debug().Int("window_id", windowID).Msg("window id announced to document")
	return nil
}

func (v *gtkView) Destroy() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.destroyed {
		return
	}
	v.destroyed = true
	// The GTK widget is released by the Go GC once unreferenced.
	v.view = nil
	v.accels = nil
}
