package extension

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/aldus-browser/aldus/assets"
	"github.com/aldus-browser/aldus/internal/logging"
	"github.com/aldus-browser/aldus/pkg/extview"
)

var hostIDCounter uint64

// GeometryStore persists remembered popup sizes per extension. Absence of a
// stored size is not an error.
type GeometryStore interface {
	Load(ctx context.Context, extensionID string) (extview.Size, bool, error)
	Save(ctx context.Context, extensionID string, size extview.Size) error
}

// HostOptions configure a ViewHost.
type HostOptions struct {
	// ExtensionID identifies the extension whose surface is hosted.
	ExtensionID string

	// SiteKey is the site/process affinity key of the hosted document.
	SiteKey string

	// URL is the document the surface loads.
	URL string

	// Type selects the surface variant. Immutable after construction.
	Type HostType

	// Toolkit selects the platform view backend.
	Toolkit extview.Toolkit

	// Window is the owning window context; nil for window-less hosts.
	Window extview.WindowController

	// OwnContent is the host's primary content surface.
	OwnContent extview.Content

	// View, when non-nil, is used as the platform binding instead of
	// constructing one from Toolkit/Window/URL. For embedders that manage
	// view construction themselves.
	View extview.ViewBinding

	// Geometry, when set, remembers popup sizes across sessions.
	Geometry GeometryStore

	// OnClose runs once when the host is torn down.
	OnClose func(*ViewHost)
}

// ViewHost orchestrates one hosted extension UI surface: it owns the
// platform view binding, watches an optionally-associated content object,
// and routes keyboard events and navigation requests coming from the
// hosted document.
//
// All methods must run on the UI event loop; the host carries no internal
// synchronization beyond what the view layer needs.
type ViewHost struct {
	id          uint64
	extensionID string
	siteKey     string
	url         string
	hostType    HostType

	view       extview.ViewBinding
	ownContent extview.Content

	associated extview.Content
	observer   *associatedContentObserver

	geometry GeometryStore
	onClose  func(*ViewHost)
	closed   bool
}

// NewViewHost constructs a host and its platform view. The view is created
// exactly once, here; a factory failure is a build misconfiguration and is
// returned as-is for the caller to treat as fatal.
func NewViewHost(ctx context.Context, opts HostOptions) (*ViewHost, error) {
	if !opts.Type.Valid() {
		return nil, fmt.Errorf("extension: host type %d not supported by view hosts", opts.Type)
	}

	h := &ViewHost{
		id:          atomic.AddUint64(&hostIDCounter, 1),
		extensionID: opts.ExtensionID,
		siteKey:     opts.SiteKey,
		url:         opts.URL,
		hostType:    opts.Type,
		ownContent:  opts.OwnContent,
		geometry:    opts.Geometry,
		onClose:     opts.OnClose,
	}

	if opts.View != nil {
		h.view = opts.View
	} else {
		view, err := extview.New(ctx, extview.Options{
			Toolkit: opts.Toolkit,
			Window:  opts.Window,
			URL:     opts.URL,
		})
		if err != nil {
			return nil, fmt.Errorf("extension: create view for %s host: %w", opts.Type, err)
		}
		h.view = view
	}

	h.restoreGeometry(ctx)

	logging.FromContext(ctx).Debug().
		Uint64("host_id", h.id).
		Str("extension_id", h.extensionID).
		Stringer("type", h.hostType).
		Str("url", h.url).
		Msg("extension view host created")

	return h, nil
}

// ID returns the host's process-unique identifier.
func (h *ViewHost) ID() uint64 { return h.id }

// ExtensionID returns the hosted extension's identifier.
func (h *ViewHost) ExtensionID() string { return h.extensionID }

// SiteKey returns the hosted document's site/process affinity key.
func (h *ViewHost) SiteKey() string { return h.siteKey }

// Type returns the host's surface type.
func (h *ViewHost) Type() HostType { return h.hostType }

// URL returns the hosted document URL.
func (h *ViewHost) URL() string { return h.url }

// View returns the platform view binding.
func (h *ViewHost) View() extview.ViewBinding { return h.view }

// SetAssociatedContent links content to the host for visible-content
// purposes, replacing any previous association. The previous observer is
// released before anything else so the old content can no longer call back.
// Passing nil clears the association. This and the observer's own
// destruction callback are the only paths that may clear it.
func (h *ViewHost) SetAssociatedContent(ctx context.Context, content extview.Content) {
	if h.observer != nil {
		h.observer.release()
		h.observer = nil
	}

	h.associated = content
	if content != nil {
		h.observer = observeAssociatedContent(ctx, h, content)
	}

	log := logging.FromContext(ctx)
	if content != nil {
		log.Debug().Uint64("host_id", h.id).Uint64("content_id", uint64(content.ID())).Msg("associated content set")
	} else {
		log.Debug().Uint64("host_id", h.id).Msg("associated content cleared")
	}
}

// GetAssociatedContent returns the currently associated content, or nil.
func (h *ViewHost) GetAssociatedContent() extview.Content {
	return h.associated
}

// GetVisibleContent answers "what is actually on screen right now": the
// associated content when set; otherwise the host's own content for popups;
// otherwise nil.
func (h *ViewHost) GetVisibleContent() extview.Content {
	if h.associated != nil {
		return h.associated
	}
	if h.hostType.policy().OwnContentVisible {
		return h.ownContent
	}
	return nil
}

// IsBackgroundPage is always false for view hosts; background pages use a
// separate host family.
func (h *ViewHost) IsBackgroundPage() bool {
	if h.view == nil {
		panic("extension: view host has no view")
	}
	return false
}

// RenderContextCreated handles first creation of the underlying
// render/document context: the view is told its document view exists, then
// the document is told its logical window id, but only when a window
// controller resolves. Hosts without one simply skip the message.
func (h *ViewHost) RenderContextCreated(ctx context.Context) {
	h.view.DocumentViewCreated()

	win := h.view.Window()
	if win == nil {
		logging.FromContext(ctx).Debug().Uint64("host_id", h.id).Msg("no window controller; window id not announced")
		return
	}

	if err := h.view.SendWindowID(ctx, win.WindowID()); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Uint64("host_id", h.id).Msg("failed to announce window id")
	}
}

// DocumentAvailable handles the first "document element available"
// notification of a document load. Infobar hosts get the shared stylesheet
// here, once per load; other surface types have no stylesheet.
func (h *ViewHost) DocumentAvailable(ctx context.Context) {
	if !h.hostType.policy().InjectInfobarCSS {
		return
	}
	if err := h.view.InsertCSS(ctx, assets.InfobarCSS); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Uint64("host_id", h.id).Msg("failed to insert infobar stylesheet")
	}
}

// DocumentLoadStopped forwards the did-stop-loading notification to the view.
func (h *ViewHost) DocumentLoadStopped(ctx context.Context) {
	_ = ctx
	h.view.DidStopLoading()
}

// AutoResized applies a document-requested size to the view and, for popup
// hosts, remembers it.
func (h *ViewHost) AutoResized(ctx context.Context, size extview.Size) {
	h.view.ResizeDueToAutoResize(size)

	if h.hostType != HostTypePopup || h.geometry == nil {
		return
	}
	if err := h.geometry.Save(ctx, h.extensionID, size); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("extension_id", h.extensionID).Msg("failed to persist popup size")
	}
}

// restoreGeometry applies a remembered popup size, when one exists.
func (h *ViewHost) restoreGeometry(ctx context.Context) {
	if h.hostType != HostTypePopup || h.geometry == nil {
		return
	}

	size, ok, err := h.geometry.Load(ctx, h.extensionID)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("extension_id", h.extensionID).Msg("failed to load remembered popup size")
		return
	}
	if ok {
		h.view.ResizeDueToAutoResize(size)
	}
}

// Close tears the host down: the association observer is released first so
// content destruction can no longer reach the host, then the view is
// destroyed and the close callback runs. Idempotent.
func (h *ViewHost) Close(ctx context.Context) {
	if h.closed {
		return
	}
	h.closed = true

	if h.observer != nil {
		h.observer.release()
		h.observer = nil
	}
	h.associated = nil

	h.view.Destroy()

	logging.FromContext(ctx).Debug().Uint64("host_id", h.id).Stringer("type", h.hostType).Msg("extension view host closed")

	if h.onClose != nil {
		h.onClose(h)
	}
}

// Closed reports whether Close has run.
func (h *ViewHost) Closed() bool { return h.closed }
