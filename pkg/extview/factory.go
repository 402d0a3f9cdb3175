package extview

import (
	"context"
	"fmt"

	"github.com/aldus-browser/aldus/internal/logging"
)

// Options configure view construction.
type Options struct {
	Toolkit Toolkit

	// Window is the owning window context. May be nil for hosts that are
	// not embedded in any top-level window.
	Window WindowController

	// URL is the document the view will host.
	URL string
}

// New constructs the platform view for the given toolkit. Exactly one
// variant serves each supported toolkit; unknown toolkits report
// ErrUnsupportedToolkit rather than falling back.
func New(ctx context.Context, opts Options) (ViewBinding, error) {
	log := logging.FromContext(ctx)

	switch opts.Toolkit {
	case ToolkitGTK4:
		view, err := newGTKView(ctx, opts)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("toolkit", string(opts.Toolkit)).Str("url", opts.URL).Msg("view binding created")
		return view, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedToolkit, opts.Toolkit)
	}
}
