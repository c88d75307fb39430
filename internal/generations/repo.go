package generations

import (
	"context"
	"time"
)

// Repo persists generation records. MarkGenerated and MarkFailed are
// conditional: they only apply to records still pending, which is how
// the status state machine is enforced at the storage layer.
type Repo interface {
	Create(ctx context.Context, g Generation) error
	GetByID(ctx context.Context, id string) (Generation, error)
	// ListByOwner returns the records visible to a caller identified by
	// user id or, failing that, session id. Newest first.
	ListByOwner(ctx context.Context, userID, sessionID string) ([]Generation, error)
	MarkGenerated(ctx context.Context, id, fileKey string, fileSize int64, generatedAt time.Time) error
	MarkFailed(ctx context.Context, id, errorMessage string) error
	SetDownloaded(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
	// ListExpired returns records past their expiry, oldest first.
	ListExpired(ctx context.Context, now time.Time, limit int) ([]Generation, error)
}
