package extension

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryAddGetRemove(t *testing.T) {
	r := NewRegistry()
	h := newTestHost(t, HostOptions{Type: HostTypePopup, ExtensionID: "ext-a"}, &fakeView{})

	r.Add(h)
	require.Equal(t, h, r.Get(h.ID()))
	assert.Equal(t, 1, r.Len())

	r.Remove(h.ID())
	assert.Nil(t, r.Get(h.ID()))
	assert.Equal(t, 0, r.Len())
}

func TestRegistryForExtension(t *testing.T) {
	r := NewRegistry()
	a1 := newTestHost(t, HostOptions{Type: HostTypePopup, ExtensionID: "ext-a"}, &fakeView{})
	a2 := newTestHost(t, HostOptions{Type: HostTypeInfobar, ExtensionID: "ext-a"}, &fakeView{})
	b := newTestHost(t, HostOptions{Type: HostTypeDialog, ExtensionID: "ext-b"}, &fakeView{})
	r.Add(a1)
	r.Add(a2)
	r.Add(b)

	assert.Len(t, r.ForExtension("ext-a"), 2)
	assert.Len(t, r.ForExtension("ext-b"), 1)
	assert.Empty(t, r.ForExtension("ext-c"))
}

func TestRegistryCloseAll(t *testing.T) {
	r := NewRegistry()
	views := []*fakeView{{}, {}}
	var hosts []*ViewHost
	for _, v := range views {
		h := newTestHost(t, HostOptions{Type: HostTypePopup}, v)
		hosts = append(hosts, h)
		r.Add(h)
	}

	r.CloseAll(context.Background())

	assert.Equal(t, 0, r.Len())
	for i, h := range hosts {
		assert.True(t, h.Closed())
		assert.Equal(t, 1, views[i].destroyCount)
	}
}

func TestRegistryCloseAllWithSelfRemovingHosts(t *testing.T) {
	// Hosts typically deregister themselves in OnClose; CloseAll must not
	// deadlock or double-close when they do.
	r := NewRegistry()
	h := newTestHost(t, HostOptions{
		Type: HostTypePopup,
	}, &fakeView{})
	h.onClose = func(closed *ViewHost) { r.Remove(closed.ID()) }
	r.Add(h)

	r.CloseAll(context.Background())

	assert.True(t, h.Closed())
	assert.Equal(t, 0, r.Len())
}
