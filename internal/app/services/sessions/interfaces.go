package sessions

import (
	"context"

	"sonrisitas-client/internal/app/models"
	"sonrisitas-client/internal/pkg/dto/responses"
)

// SessionStore persists the token/user pair between app launches.
//
// LoadSession is the single gate deciding whether the authenticated area may
// be shown; callers must re-invoke it on every app-foreground event instead
// of caching the result, since logout can happen at any time.
type SessionStore interface {
	SaveSession(ctx context.Context, token string, user *responses.UserProfile) error
	// LoadSession returns (nil, nil) when logged out: no token stored, or the
	// stored token already expired. A corrupt user payload yields an error of
	// the deserialization kind after a best-effort clear.
	LoadSession(ctx context.Context) (*models.Session, error)
	ClearSession(ctx context.Context) error
}
