package interfaces

import (
	"context"
	"time"

	"github.com/secmon-lab/riskmatrix/pkg/domain/model"
)

type SessionRepository interface {
	// Get retrieves a session by ID
	Get(ctx context.Context, id model.SessionID) (*model.Session, error)

	// Put creates or replaces a session
	Put(ctx context.Context, session *model.Session) error

	// Delete removes a session
	Delete(ctx context.Context, id model.SessionID) error

	// DeleteIdle removes every session last updated before the given time
	// and returns how many were removed
	DeleteIdle(ctx context.Context, before time.Time) (int, error)
}
