package extension

import (
	"context"
	"sync"
)

// Registry tracks live view hosts by ID so windows and the shutdown path
// can find and close them. Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	hosts map[uint64]*ViewHost
}

func NewRegistry() *Registry {
	return &Registry{hosts: make(map[uint64]*ViewHost)}
}

// Add registers a host. Re-adding the same ID overwrites silently, which
// cannot happen with counter-issued IDs.
func (r *Registry) Add(h *ViewHost) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hosts[h.ID()] = h
}

// Remove drops a host from the registry without closing it.
func (r *Registry) Remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.hosts, id)
}

// Get returns the host with the given ID, or nil.
func (r *Registry) Get(id uint64) *ViewHost {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hosts[id]
}

// ForExtension returns all live hosts serving the given extension.
func (r *Registry) ForExtension(extensionID string) []*ViewHost {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*ViewHost
	for _, h := range r.hosts {
		if h.ExtensionID() == extensionID {
			out = append(out, h)
		}
	}
	return out
}

// Len reports the number of registered hosts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.hosts)
}

// CloseAll closes every registered host and empties the registry. Used on
// shutdown; Close is idempotent so racing individual closes is harmless.
func (r *Registry) CloseAll(ctx context.Context) {
	r.mu.Lock()
	hosts := make([]*ViewHost, 0, len(r.hosts))
	for _, h := range r.hosts {
		hosts = append(hosts, h)
	}
	r.hosts = make(map[uint64]*ViewHost)
	r.mu.Unlock()

	for _, h := range hosts {
		h.Close(ctx)
	}
}
