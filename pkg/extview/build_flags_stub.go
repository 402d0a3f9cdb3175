//go:build !webkit_cgo

package extview

// IsNativeAvailable reports whether the native GTK4/WebKitGTK backend is
// compiled in. Without it there is no interactive accelerator path; unhandled
// keyboard events for window-less hosts are dropped.
func IsNativeAvailable() bool { return false }
