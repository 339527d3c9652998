package sessions

import (
	"context"
	"time"

	"sonrisitas-client/internal/app/models"
	"sonrisitas-client/internal/app/services/shared/localstore"
	"sonrisitas-client/internal/pkg/constvars"
	"sonrisitas-client/internal/pkg/dto/responses"
	"sonrisitas-client/internal/pkg/exceptions"
	"sonrisitas-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

type sessionStore struct {
	Store localstore.LocalStore
	Log   *zap.Logger
}

func NewSessionStore(store localstore.LocalStore, logger *zap.Logger) SessionStore {
	return &sessionStore{
		Store: store,
		Log:   logger,
	}
}

func (s *sessionStore) SaveSession(ctx context.Context, token string, user *responses.UserProfile) error {
	requestID := utils.GetRequestID(ctx)

	userJSON, err := json.Marshal(user)
	if err != nil {
		s.Log.Error("sessionStore.SaveSession error marshaling user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if err := s.Store.Set(ctx, constvars.StorageKeyUser, userJSON); err != nil {
		s.Log.Error("sessionStore.SaveSession error writing user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if err := s.Store.Set(ctx, constvars.StorageKeyToken, []byte(token)); err != nil {
		s.Log.Error("sessionStore.SaveSession error writing token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	s.Log.Info("sessionStore.SaveSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (s *sessionStore) LoadSession(ctx context.Context) (*models.Session, error) {
	requestID := utils.GetRequestID(ctx)

	tokenBytes, err := s.Store.Get(ctx, constvars.StorageKeyToken)
	if err != nil {
		return nil, err
	}
	token := string(tokenBytes)
	if token == "" {
		return nil, nil
	}

	if tokenExpired(token) {
		s.Log.Info("sessionStore.LoadSession stored token expired, clearing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		if err := s.ClearSession(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}

	userBytes, err := s.Store.Get(ctx, constvars.StorageKeyUser)
	if err != nil {
		return nil, err
	}

	session := &models.Session{Token: token}
	if len(userBytes) > 0 {
		user := new(responses.UserProfile)
		if err := json.Unmarshal(userBytes, user); err != nil {
			s.Log.Error("sessionStore.LoadSession corrupt user payload, clearing",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			// Best effort: a corrupt session is unusable either way.
			_ = s.ClearSession(ctx)
			return nil, exceptions.ErrSessionCorrupted(err)
		}
		session.User = user
	}

	return session, nil
}

func (s *sessionStore) ClearSession(ctx context.Context) error {
	if err := s.Store.Delete(ctx, constvars.StorageKeyToken); err != nil {
		return err
	}
	return s.Store.Delete(ctx, constvars.StorageKeyUser)
}

// tokenExpired inspects the exp claim without verifying the signature; only
// the backend can verify, but an already-expired token never needs a round
// trip to be treated as logged out. Opaque (non-JWT) tokens pass through.
func tokenExpired(token string) bool {
	claims := new(jwt.RegisteredClaims)
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
