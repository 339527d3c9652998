package auth

import (
	"context"

	"sonrisitas-client/internal/app/models"
	"sonrisitas-client/internal/app/services/backend/users"
	"sonrisitas-client/internal/app/services/sessions"
	"sonrisitas-client/internal/pkg/constvars"
	"sonrisitas-client/internal/pkg/dto/requests"
	"sonrisitas-client/internal/pkg/dto/responses"
	"sonrisitas-client/internal/pkg/exceptions"
	"sonrisitas-client/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type authUsecase struct {
	UserClient   users.UserBackendClient
	SessionStore sessions.SessionStore
	Log          *zap.Logger
	flight       singleflight.Group
}

func NewAuthUsecase(userClient users.UserBackendClient, sessionStore sessions.SessionStore, logger *zap.Logger) AuthUsecase {
	return &authUsecase{
		UserClient:   userClient,
		SessionStore: sessionStore,
		Log:          logger,
	}
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.UserProfile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.LoginUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	// A doubled tap on the login button joins the in-flight attempt instead
	// of issuing a second request.
	result, err, _ := uc.flight.Do("login:"+request.Email, func() (interface{}, error) {
		loginResponse, err := uc.UserClient.Login(ctx, request)
		if err != nil {
			return nil, err
		}

		profile := loginResponse.UserProfile
		if err := uc.SessionStore.SaveSession(ctx, loginResponse.Token, &profile); err != nil {
			// Without a persisted session the authenticated area must stay
			// closed, so the storage failure wins over the successful login.
			return nil, err
		}
		return &profile, nil
	})
	if err != nil {
		uc.Log.Error("authUsecase.LoginUser failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.LoginUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return result.(*responses.UserProfile), nil
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.UserProfile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.RegisterUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	if request.Rol == "" {
		request.Rol = constvars.DefaultUserRole
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	result, err, _ := uc.flight.Do("register:"+request.Email, func() (interface{}, error) {
		if err := uc.UserClient.Register(ctx, request); err != nil {
			return nil, err
		}

		loginResponse, err := uc.UserClient.Login(ctx, &requests.LoginUser{
			Email:    request.Email,
			Password: request.Password,
		})
		if err != nil {
			// The account now exists server-side; a generic "registration
			// failed" would be a lie.
			return nil, exceptions.ErrAccountCreatedLoginFailed(err)
		}

		profile := loginResponse.UserProfile
		if err := uc.SessionStore.SaveSession(ctx, loginResponse.Token, &profile); err != nil {
			return nil, err
		}
		return &profile, nil
	})
	if err != nil {
		uc.Log.Error("authUsecase.RegisterUser failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.RegisterUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return result.(*responses.UserProfile), nil
}

func (uc *authUsecase) CurrentSession(ctx context.Context) (*models.Session, error) {
	session, err := uc.SessionStore.LoadSession(ctx)
	if err != nil {
		// A corrupt session was already cleared by the store; to the caller
		// that is simply "logged out".
		if exceptions.IsKind(err, exceptions.KindDeserialization) {
			uc.Log.Warn("authUsecase.CurrentSession corrupt session treated as logged out",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.Error(err),
			)
			return nil, nil
		}
		return nil, err
	}
	return session, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)
	if err := uc.SessionStore.ClearSession(ctx); err != nil {
		uc.Log.Error("authUsecase.LogoutUser failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	uc.Log.Info("authUsecase.LogoutUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
