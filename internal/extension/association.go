package extension

import (
	"context"

	"github.com/aldus-browser/aldus/pkg/extview"
)

// associatedContentObserver subscribes to exactly one content object's
// destruction and clears the host's association when it fires. Created when
// an association is set to non-nil, released when the association is cleared
// or replaced. The host reference is never used after release, so a
// notification racing host teardown cannot reach a dying host.
type associatedContentObserver struct {
	host   *ViewHost
	cancel func()
}

func observeAssociatedContent(ctx context.Context, host *ViewHost, content extview.Content) *associatedContentObserver {
	o := &associatedContentObserver{host: host}
	o.cancel = content.OnDestroyed(func() {
		// Route through SetAssociatedContent so it stays the single write
		// path for the association. The content is already unreachable;
		// only the pointer and this observer are cleaned up.
		host.SetAssociatedContent(ctx, nil)
	})
	return o
}

// release unsubscribes from the content. Safe to call more than once.
func (o *associatedContentObserver) release() {
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
}
