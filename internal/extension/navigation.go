package extension

import (
	"context"

	"github.com/aldus-browser/aldus/internal/logging"
	"github.com/aldus-browser/aldus/pkg/extview"
)

// allowedDispositions is the allow-list for navigations a hosted document
// initiates. Anything else (notably current-tab) would replace the hosted
// document itself and is refused.
var allowedDispositions = map[extview.Disposition]struct{}{
	extview.DispositionSingletonTab:     {},
	extview.DispositionNewForegroundTab: {},
	extview.DispositionNewBackgroundTab: {},
	extview.DispositionNewPopup:         {},
	extview.DispositionNewWindow:        {},
	extview.DispositionSaveToDisk:       {},
	extview.DispositionOffTheRecord:     {},
}

// OpenURLFromContent handles a navigation request coming out of the hosted
// document. The request is delegated to the owning window; hosts without a
// window, or requests with a refused disposition, produce no navigation and
// return nil.
func (h *ViewHost) OpenURLFromContent(ctx context.Context, params extview.OpenURLParams) extview.Content {
	log := logging.FromContext(ctx)

	if _, ok := allowedDispositions[params.Disposition]; !ok {
		log.Debug().
			Uint64("host_id", h.id).
			Stringer("disposition", params.Disposition).
			Str("url", params.URL).
			Msg("refusing navigation with disallowed disposition")
		return nil
	}

	win := h.view.Window()
	if win == nil {
		log.Debug().
			Uint64("host_id", h.id).
			Str("url", params.URL).
			Msg("refusing navigation: host has no owning window")
		return nil
	}

	return win.OpenURL(ctx, params)
}
