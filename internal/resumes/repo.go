package resumes

import (
	"context"
	"time"
)

// Repo defines persistence operations for resumes. All lookups are
// scoped to the owning user.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	GetByID(ctx context.Context, userID, resumeID string) (Resume, error)
	Update(ctx context.Context, resume Resume) error
	Delete(ctx context.Context, userID, resumeID string) error
	ListByUser(ctx context.Context, userID string) ([]Resume, error)
	UpdateATSScore(ctx context.Context, userID, resumeID string, score int, checkedAt time.Time) error
}
