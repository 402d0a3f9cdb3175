package extension

import (
	"context"

	"github.com/aldus-browser/aldus/pkg/extview"
)

// Service is the host-creation surface handed to window controllers. It
// carries the shared infrastructure every host needs: the toolkit choice,
// the live-host registry, and the optional popup geometry store.
type Service struct {
	toolkit  extview.Toolkit
	registry *Registry
	geometry GeometryStore
}

// NewService creates a host service. geometry may be nil, which disables
// popup size persistence for every host the service creates.
func NewService(toolkit extview.Toolkit, geometry GeometryStore) *Service {
	return &Service{
		toolkit:  toolkit,
		registry: NewRegistry(),
		geometry: geometry,
	}
}

// CreateHost builds a host from opts, filling in the service's toolkit and
// geometry store, registers it, and deregisters it again when it closes.
// A Geometry already set on opts wins over the service's store.
func (s *Service) CreateHost(ctx context.Context, opts HostOptions) (*ViewHost, error) {
	opts.Toolkit = s.toolkit
	if opts.Geometry == nil {
		opts.Geometry = s.geometry
	}

	callerClose := opts.OnClose
	opts.OnClose = func(h *ViewHost) {
		s.registry.Remove(h.ID())
		if callerClose != nil {
			callerClose(h)
		}
	}

	h, err := NewViewHost(ctx, opts)
	if err != nil {
		return nil, err
	}
	s.registry.Add(h)
	return h, nil
}

// Get returns the live host with the given ID, or nil.
func (s *Service) Get(id uint64) *ViewHost {
	return s.registry.Get(id)
}

// ForExtension returns all live hosts serving the given extension.
func (s *Service) ForExtension(extensionID string) []*ViewHost {
	return s.registry.ForExtension(extensionID)
}

// Len reports the number of live hosts.
func (s *Service) Len() int {
	return s.registry.Len()
}

// CloseAll closes every live host. Used on shutdown.
func (s *Service) CloseAll(ctx context.Context) {
	s.registry.CloseAll(ctx)
}
