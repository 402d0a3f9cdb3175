package extension

import (
	"context"

	"github.com/aldus-browser/aldus/internal/logging"
	"github.com/aldus-browser/aldus/pkg/extview"
)

// routeVerdict is one handler's decision for a keyboard event. A handler
// that does not apply leaves applicable false and the router moves on; the
// first applicable verdict is final.
type routeVerdict struct {
	applicable bool
	handled    bool
	shortcut   bool
}

// keyboardHandler is one entry in the ordered pre-handling chain.
type keyboardHandler struct {
	name  string
	route func(ev extview.KeyEvent) routeVerdict
}

// priorityChain returns the ordered pre-handling chain. Order matters:
// Escape on a popup must be recognized before the owning window sees the
// event, or global shortcuts would suppress Escape-to-close.
func (h *ViewHost) priorityChain() []keyboardHandler {
	return []keyboardHandler{
		{name: "popup_escape", route: h.routePopupEscape},
		{name: "owning_window", route: h.routeOwningWindow},
		{name: "unbound", route: h.routeUnbound},
	}
}

// routePopupEscape flags a raw Escape key-down on a close-on-escape surface
// as a recognized shortcut without consuming it; the explicit handling path
// performs the close.
func (h *ViewHost) routePopupEscape(ev extview.KeyEvent) routeVerdict {
	if h.hostType.policy().CloseOnEscape && isEscapeKeyDown(ev) {
		return routeVerdict{applicable: true, shortcut: true}
	}
	return routeVerdict{}
}

// routeOwningWindow forwards the event to the owning window's high-priority
// shortcut handler (close-tab tier). Its decision is authoritative.
func (h *ViewHost) routeOwningWindow(ev extview.KeyEvent) routeVerdict {
	win := h.view.Window()
	if win == nil {
		return routeVerdict{}
	}
	handled, shortcut := win.PreHandleKeyboardShortcut(ev)
	return routeVerdict{applicable: true, handled: handled, shortcut: shortcut}
}

// routeUnbound terminates the chain for window-less hosts: not a shortcut,
// not handled here.
func (h *ViewHost) routeUnbound(extview.KeyEvent) routeVerdict {
	return routeVerdict{applicable: true}
}

// PreHandleKeyboardEvent runs the priority chain for a native keyboard
// event. It reports whether the event was consumed and whether it is a
// recognized shortcut that the explicit handling path should see.
func (h *ViewHost) PreHandleKeyboardEvent(ctx context.Context, ev extview.KeyEvent) (handled, isShortcut bool) {
	for _, entry := range h.priorityChain() {
		v := entry.route(ev)
		if !v.applicable {
			continue
		}
		logging.FromContext(ctx).Trace().
			Uint64("host_id", h.id).
			Str("handler", entry.name).
			Stringer("event", ev.Type).
			Uint("keyval", ev.Keyval).
			Bool("handled", v.handled).
			Bool("shortcut", v.shortcut).
			Msg("keyboard event routed")
		return v.handled, v.shortcut
	}
	return false, false
}

// HandleKeyboardEvent is the explicit handling path for shortcuts the
// priority chain left unhandled. Escape on a close-on-escape surface closes
// the host and stops propagation; everything else follows the unhandled
// delegation order.
func (h *ViewHost) HandleKeyboardEvent(ctx context.Context, ev extview.KeyEvent) {
	if h.hostType.policy().CloseOnEscape && isEscapeKeyDown(ev) {
		h.Close(ctx)
		return
	}
	h.unhandledKeyboardEvent(ctx, ev)
}

// unhandledKeyboardEvent delegates an event nobody claimed: the owning
// window's low-priority handler when one exists (find-in-page tier),
// otherwise the view's own accelerator path on interactive builds. With
// neither available the event is dropped; that mirrors long-standing
// behavior and is deliberate pending product review.
func (h *ViewHost) unhandledKeyboardEvent(ctx context.Context, ev extview.KeyEvent) {
	if win := h.view.Window(); win != nil {
		win.HandleKeyboardEvent(ev)
		return
	}

	if extview.IsNativeAvailable() {
		h.view.HandleKeyboardEvent(ev)
		return
	}

	logging.FromContext(ctx).Debug().
		Uint64("host_id", h.id).
		Uint("keyval", ev.Keyval).
		Msg("dropping unhandled keyboard event: no owning window, no interactive toolkit")
}

func isEscapeKeyDown(ev extview.KeyEvent) bool {
	return ev.Type == extview.KeyEventRawKeyDown && ev.Keyval == extview.KeyvalEscape
}
