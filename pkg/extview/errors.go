package extview

import "errors"

var (
	// ErrUnsupportedToolkit is reported when the factory has no variant
	// for the requested toolkit. Callers treat this as a build
	// misconfiguration; there is no runtime fallback.
	ErrUnsupportedToolkit = errors.New("extview: unsupported toolkit")

	// ErrNativeUnavailable is reported when the requested toolkit exists
	// but was not compiled into this binary (missing webkit_cgo tag).
	ErrNativeUnavailable = errors.New("extview: native toolkit not compiled in")

	// ErrViewDestroyed is reported by operations on a destroyed binding.
	ErrViewDestroyed = errors.New("extview: view destroyed")
)
