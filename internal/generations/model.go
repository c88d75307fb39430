package generations

import (
	"time"

	"github.com/james-eo/portfolio/resume/model"
)

// Persisted statuses. StatusExpired is never written; it is derived at
// read time from ExpiresAt.
const (
	StatusPending   = "pending"
	StatusGenerated = "generated"
	StatusFailed    = "failed"
	StatusExpired   = "expired"
)

// CanTransition reports whether a persisted status change is legal.
// Records only ever move out of pending.
func CanTransition(from, to string) bool {
	if from != StatusPending {
		return false
	}
	return to == StatusGenerated || to == StatusFailed
}

// Generation is one resume-generation run. The snapshot freezes the
// portfolio content the document was rendered from.
type Generation struct {
	ID             string
	UserID         string
	SessionID      string
	TemplateID     string
	Snapshot       model.Snapshot
	Customizations model.Customizations
	Status         string
	FileKey        string
	FileSize       int64
	ErrorMessage   string
	GeneratedAt    *time.Time
	DownloadedAt   *time.Time
	ExpiresAt      time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EffectiveStatus returns the status as seen by callers: a record past
// its expiry reads as expired regardless of stored status.
func (g Generation) EffectiveStatus(now time.Time) string {
	if now.After(g.ExpiresAt) {
		return StatusExpired
	}
	return g.Status
}

// Downloadable reports whether the file may be streamed right now.
func (g Generation) Downloadable(now time.Time) bool {
	return g.EffectiveStatus(now) == StatusGenerated && g.FileKey != ""
}
