package extension

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/aldus-browser/aldus/pkg/extview"
	"github.com/aldus-browser/aldus/pkg/extview/mocks"
)

func TestPreHandlePopupEscapeIsShortcutNotHandled(t *testing.T) {
	h := newTestHost(t, HostOptions{Type: HostTypePopup}, &fakeView{})

	handled, isShortcut := h.PreHandleKeyboardEvent(context.Background(), escapeKeyDown())

	assert.False(t, handled)
	assert.True(t, isShortcut)
}

func TestPreHandlePopupEscapeOutranksWindowShortcuts(t *testing.T) {
	// The window would claim Escape as its own shortcut; the popup rule
	// must win so the explicit path can close the host.
	win := &fakeWindow{preHandle: func(extview.KeyEvent) (bool, bool) { return true, true }}
	h := newTestHost(t, HostOptions{Type: HostTypePopup}, &fakeView{window: win})

	handled, isShortcut := h.PreHandleKeyboardEvent(context.Background(), escapeKeyDown())

	assert.False(t, handled)
	assert.True(t, isShortcut)
}

func TestPreHandleEscapeVariantsOnPopup(t *testing.T) {
	tests := []struct {
		name     string
		ev       extview.KeyEvent
		shortcut bool
	}{
		{name: "raw escape down", ev: escapeKeyDown(), shortcut: true},
		{name: "translated escape down", ev: extview.KeyEvent{Type: extview.KeyEventKeyDown, Keyval: extview.KeyvalEscape}},
		{name: "escape up", ev: extview.KeyEvent{Type: extview.KeyEventKeyUp, Keyval: extview.KeyvalEscape}},
		{name: "raw return down", ev: extview.KeyEvent{Type: extview.KeyEventRawKeyDown, Keyval: extview.KeyvalReturn}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHost(t, HostOptions{Type: HostTypePopup}, &fakeView{})
			_, isShortcut := h.PreHandleKeyboardEvent(context.Background(), tt.ev)
			assert.Equal(t, tt.shortcut, isShortcut)
		})
	}
}

func TestPreHandleDialogEscapeGoesToWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	win := mocks.NewMockWindowController(ctrl)
	win.EXPECT().PreHandleKeyboardShortcut(escapeKeyDown()).Return(false, false)

	h := newTestHost(t, HostOptions{Type: HostTypeDialog}, &fakeView{window: win})

	handled, isShortcut := h.PreHandleKeyboardEvent(context.Background(), escapeKeyDown())

	assert.False(t, handled)
	assert.False(t, isShortcut)
}

func TestPreHandleDelegatesToWindowVerdict(t *testing.T) {
	ctrl := gomock.NewController(t)
	win := mocks.NewMockWindowController(ctrl)
	ev := extview.KeyEvent{Type: extview.KeyEventRawKeyDown, Keyval: 'w', Modifiers: extview.ModCtrl}
	win.EXPECT().PreHandleKeyboardShortcut(ev).Return(true, true)

	h := newTestHost(t, HostOptions{Type: HostTypePopup}, &fakeView{window: win})

	handled, isShortcut := h.PreHandleKeyboardEvent(context.Background(), ev)

	assert.True(t, handled)
	assert.True(t, isShortcut)
}

func TestPreHandleWithoutWindowIsInert(t *testing.T) {
	h := newTestHost(t, HostOptions{Type: HostTypeInfobar}, &fakeView{})

	ev := extview.KeyEvent{Type: extview.KeyEventRawKeyDown, Keyval: 'f', Modifiers: extview.ModCtrl}
	handled, isShortcut := h.PreHandleKeyboardEvent(context.Background(), ev)

	assert.False(t, handled)
	assert.False(t, isShortcut)
}

func TestHandlePopupEscapeClosesHost(t *testing.T) {
	var closed int
	view := &fakeView{}
	h := newTestHost(t, HostOptions{
		Type:    HostTypePopup,
		OnClose: func(*ViewHost) { closed++ },
	}, view)

	h.HandleKeyboardEvent(context.Background(), escapeKeyDown())

	assert.Equal(t, 1, closed)
	assert.True(t, h.Closed())
}

func TestHandleDialogEscapeDoesNotClose(t *testing.T) {
	win := &fakeWindow{}
	h := newTestHost(t, HostOptions{Type: HostTypeDialog}, &fakeView{window: win})

	h.HandleKeyboardEvent(context.Background(), escapeKeyDown())

	assert.False(t, h.Closed())
	assert.Equal(t, []extview.KeyEvent{escapeKeyDown()}, win.handledEvents)
}

func TestHandleUnclaimedEventGoesToWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	win := mocks.NewMockWindowController(ctrl)
	ev := extview.KeyEvent{Type: extview.KeyEventRawKeyDown, Keyval: 'f', Modifiers: extview.ModCtrl}
	win.EXPECT().HandleKeyboardEvent(ev)

	h := newTestHost(t, HostOptions{Type: HostTypePopup}, &fakeView{window: win})

	h.HandleKeyboardEvent(context.Background(), ev)
	assert.False(t, h.Closed())
}

func TestHandleUnclaimedEventWithoutWindowIsDropped(t *testing.T) {
	view := &fakeView{}
	h := newTestHost(t, HostOptions{Type: HostTypeInfobar}, view)

	ev := extview.KeyEvent{Type: extview.KeyEventRawKeyDown, Keyval: 'f', Modifiers: extview.ModCtrl}
	h.HandleKeyboardEvent(context.Background(), ev)

	// With no interactive toolkit in test builds the event goes nowhere.
	assert.Empty(t, view.handledKeys)
	assert.False(t, h.Closed())
}
