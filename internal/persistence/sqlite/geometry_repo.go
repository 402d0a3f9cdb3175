package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aldus-browser/aldus/internal/logging"
	"github.com/aldus-browser/aldus/pkg/extview"
)

// GeometryRepo persists popup sizes per extension so reopened popups come
// back at their last auto-resized dimensions.
type GeometryRepo struct {
	db *sql.DB
}

// NewGeometryRepository creates a SQLite-backed popup geometry store.
func NewGeometryRepository(db *sql.DB) *GeometryRepo {
	return &GeometryRepo{db: db}
}

// Load returns the stored size for an extension. ok is false when no
// geometry has been recorded.
func (r *GeometryRepo) Load(ctx context.Context, extensionID string) (extview.Size, bool, error) {
	var size extview.Size
	err := r.db.QueryRowContext(ctx,
		`SELECT width, height FROM popup_geometry WHERE extension_id = ?`,
		extensionID,
	).Scan(&size.Width, &size.Height)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return extview.Size{}, false, nil
		}
		return extview.Size{}, false, err
	}
	return size, true, nil
}

// Save upserts the stored size for an extension.
func (r *GeometryRepo) Save(ctx context.Context, extensionID string, size extview.Size) error {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("extension_id", extensionID).
		Int("width", size.Width).
		Int("height", size.Height).
		Msg("saving popup geometry")

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO popup_geometry (extension_id, width, height, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(extension_id) DO UPDATE SET
		   width = excluded.width,
		   height = excluded.height,
		   updated_at = excluded.updated_at`,
		extensionID, size.Width, size.Height, time.Now().UTC(),
	)
	return err
}

// Delete drops the stored size for an extension.
func (r *GeometryRepo) Delete(ctx context.Context, extensionID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM popup_geometry WHERE extension_id = ?`, extensionID)
	return err
}
