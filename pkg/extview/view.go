package extview

import "context"

// ViewBinding is the platform adapter a host drives. One binding exists per
// host, created once through New and destroyed with the host; it is never
// handed to a containing layout for automatic destruction.
type ViewBinding interface {
	// NativeWidget returns the toolkit widget handle backing the view,
	// or 0 when the backend has no realized widget.
	NativeWidget() uintptr

	// Window returns the controller of the top-level window the view is
	// embedded in, or nil when the view is not bound to any window.
	Window() WindowController

	SetVisible(visible bool)
	Focus()

	// ResizeDueToAutoResize applies a size the hosted document asked for.
	ResizeDueToAutoResize(size Size)

	// DocumentViewCreated tells the binding the underlying render/document
	// context now exists.
	DocumentViewCreated()

	// DidStopLoading tells the binding the hosted document finished loading.
	DidStopLoading()

	// HandleKeyboardEvent offers ev to the view's own accelerator path
	// (the toolkit focus manager). Reports whether the view consumed it.
	HandleKeyboardEvent(ev KeyEvent) bool

	// InsertCSS injects a stylesheet into the hosted document.
	InsertCSS(ctx context.Context, css string) error

	// SendWindowID delivers the one-shot window identifier message to the
	// hosted document's process.
	SendWindowID(ctx context.Context, windowID int) error

	Destroy()
}

// AcceleratorRegistrar is the toolkit-wiring surface of bindings that keep
// a view-local accelerator table, the table HandleKeyboardEvent consults.
// Embedders reach it by asserting the ViewBinding:
//
//	if r, ok := view.(AcceleratorRegistrar); ok {
//		r.RegisterAccelerator(keyval, mods, fn)
//	}
//
// Bindings without view-local accelerators simply do not implement it.
type AcceleratorRegistrar interface {
	// RegisterAccelerator binds fn to a raw key-down of keyval with mods.
	// Later registrations for the same combination replace earlier ones.
	RegisterAccelerator(keyval uint, mods Modifier, fn func())
}
