package auth

import (
	"context"

	"sonrisitas-client/internal/app/models"
	"sonrisitas-client/internal/pkg/dto/requests"
	"sonrisitas-client/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	// LoginUser authenticates and persists the session; the session is never
	// saved when the backend rejects the credentials or local storage fails.
	LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.UserProfile, error)
	// RegisterUser registers and then logs in with the same credentials. When
	// the account was created but the follow-up login failed, the returned
	// error is distinguishable so the view can tell the user to log in
	// manually instead of reporting a failed registration.
	RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.UserProfile, error)
	// CurrentSession is the gate for the authenticated area; nil means logged
	// out. Call it on every foreground event.
	CurrentSession(ctx context.Context) (*models.Session, error)
	LogoutUser(ctx context.Context) error
}
