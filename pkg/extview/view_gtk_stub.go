//go:build !webkit_cgo

package extview

import "context"

// newGTKView reports ErrNativeUnavailable in non-cgo builds. The GTK4
// variant only exists behind the webkit_cgo build tag.
func newGTKView(ctx context.Context, opts Options) (ViewBinding, error) {
	_ = ctx
	_ = opts
	return nil, ErrNativeUnavailable
}
