//go:build webkit_cgo

package extview

// IsNativeAvailable reports whether the native GTK4/WebKitGTK backend is
// compiled in.
func IsNativeAvailable() bool { return true }
