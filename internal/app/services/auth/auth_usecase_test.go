package auth

import (
	"context"
	"errors"
	"testing"

	"sonrisitas-client/internal/app/models"
	"sonrisitas-client/internal/app/services/sessions"
	"sonrisitas-client/internal/app/services/shared/localstore"
	"sonrisitas-client/internal/pkg/dto/requests"
	"sonrisitas-client/internal/pkg/dto/responses"
	"sonrisitas-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockUserBackendClient struct {
	mock.Mock
}

func (m *MockUserBackendClient) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.LoginUser), args.Error(1)
}

func (m *MockUserBackendClient) Register(ctx context.Context, request *requests.RegisterUser) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) SaveSession(ctx context.Context, token string, user *responses.UserProfile) error {
	args := m.Called(ctx, token, user)
	return args.Error(0)
}

func (m *MockSessionStore) LoadSession(ctx context.Context) (*models.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionStore) ClearSession(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newTestSessionStore(t *testing.T) sessions.SessionStore {
	t.Helper()
	store, err := localstore.NewFileStore(t.TempDir())
	assert.NoError(t, err)
	return sessions.NewSessionStore(store, zap.NewNop())
}

func loginResponseFixture() *responses.LoginUser {
	return &responses.LoginUser{
		Token: "tok-abc",
		UserProfile: responses.UserProfile{
			ID:     "u1",
			Nombre: "Valeria",
			Email:  "vale@sonrisitas.pe",
			Rol:    "admin",
		},
	}
}

func TestAuthUsecase_LoginUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success persists the session", func(t *testing.T) {
		mockClient := new(MockUserBackendClient)
		mockClient.On("Login", mock.Anything, mock.Anything).Return(loginResponseFixture(), nil)
		sessionStore := newTestSessionStore(t)
		usecase := NewAuthUsecase(mockClient, sessionStore, zap.NewNop())

		profile, err := usecase.LoginUser(ctx, &requests.LoginUser{Email: "vale@sonrisitas.pe", Password: "secreta"})
		assert.NoError(t, err)
		assert.Equal(t, "Valeria", profile.Nombre)

		session, err := usecase.CurrentSession(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, session)
		assert.Equal(t, "tok-abc", session.Token)
		assert.Equal(t, "vale@sonrisitas.pe", session.User.Email)
	})

	t.Run("invalid input never reaches the backend", func(t *testing.T) {
		mockClient := new(MockUserBackendClient)
		usecase := NewAuthUsecase(mockClient, newTestSessionStore(t), zap.NewNop())

		profile, err := usecase.LoginUser(ctx, &requests.LoginUser{Email: "not-an-email", Password: "secreta"})
		assert.Nil(t, profile)
		assert.Equal(t, exceptions.KindValidation, exceptions.KindOf(err))
		mockClient.AssertNotCalled(t, "Login")
	})

	t.Run("backend rejection leaves no session behind", func(t *testing.T) {
		mockClient := new(MockUserBackendClient)
		mockClient.On("Login", mock.Anything, mock.Anything).Return(nil, exceptions.ErrInvalidCredentials(nil))
		usecase := NewAuthUsecase(mockClient, newTestSessionStore(t), zap.NewNop())

		profile, err := usecase.LoginUser(ctx, &requests.LoginUser{Email: "vale@sonrisitas.pe", Password: "mal"})
		assert.Nil(t, profile)
		assert.Equal(t, exceptions.KindAuth, exceptions.KindOf(err))

		session, err := usecase.CurrentSession(ctx)
		assert.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("storage failure wins over a successful login", func(t *testing.T) {
		mockClient := new(MockUserBackendClient)
		mockClient.On("Login", mock.Anything, mock.Anything).Return(loginResponseFixture(), nil)
		mockStore := new(MockSessionStore)
		mockStore.On("SaveSession", mock.Anything, "tok-abc", mock.Anything).
			Return(exceptions.ErrStorageWrite(errors.New("disk full"), "token"))
		usecase := NewAuthUsecase(mockClient, mockStore, zap.NewNop())

		profile, err := usecase.LoginUser(ctx, &requests.LoginUser{Email: "vale@sonrisitas.pe", Password: "secreta"})
		assert.Nil(t, profile)
		assert.Equal(t, exceptions.KindStorage, exceptions.KindOf(err))
	})
}

func TestAuthUsecase_RegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("register then login lands in a live session", func(t *testing.T) {
		mockClient := new(MockUserBackendClient)
		mockClient.On("Register", mock.Anything, mock.MatchedBy(func(r *requests.RegisterUser) bool {
			return r.Rol == "admin"
		})).Return(nil)
		mockClient.On("Login", mock.Anything, mock.Anything).Return(loginResponseFixture(), nil)
		usecase := NewAuthUsecase(mockClient, newTestSessionStore(t), zap.NewNop())

		profile, err := usecase.RegisterUser(ctx, &requests.RegisterUser{
			Nombre:   "Valeria",
			Email:    "vale@sonrisitas.pe",
			Password: "secreta",
		})
		assert.NoError(t, err)
		assert.Equal(t, "u1", profile.ID)

		session, err := usecase.CurrentSession(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, session)
	})

	t.Run("account created but login failed is distinguishable", func(t *testing.T) {
		mockClient := new(MockUserBackendClient)
		mockClient.On("Register", mock.Anything, mock.Anything).Return(nil)
		mockClient.On("Login", mock.Anything, mock.Anything).Return(nil, exceptions.ErrBackendUnreachable(errors.New("timeout")))
		usecase := NewAuthUsecase(mockClient, newTestSessionStore(t), zap.NewNop())

		profile, err := usecase.RegisterUser(ctx, &requests.RegisterUser{
			Nombre:   "Valeria",
			Email:    "vale@sonrisitas.pe",
			Password: "secreta",
		})
		assert.Nil(t, profile)
		assert.Equal(t, exceptions.KindAuth, exceptions.KindOf(err))
		assert.Contains(t, exceptions.ClientMessageOf(err), "Inicia sesión manualmente")
	})

	t.Run("rejected registration does not attempt login", func(t *testing.T) {
		mockClient := new(MockUserBackendClient)
		mockClient.On("Register", mock.Anything, mock.Anything).Return(exceptions.ErrRegisterRejected(nil, "el email ya está registrado"))
		usecase := NewAuthUsecase(mockClient, newTestSessionStore(t), zap.NewNop())

		profile, err := usecase.RegisterUser(ctx, &requests.RegisterUser{
			Nombre:   "Valeria",
			Email:    "vale@sonrisitas.pe",
			Password: "secreta",
		})
		assert.Nil(t, profile)
		assert.Equal(t, "el email ya está registrado", exceptions.ClientMessageOf(err))
		mockClient.AssertNotCalled(t, "Login")
	})
}

func TestAuthUsecase_CurrentSession(t *testing.T) {
	ctx := context.Background()

	t.Run("corrupt session reads as logged out", func(t *testing.T) {
		mockStore := new(MockSessionStore)
		mockStore.On("LoadSession", mock.Anything).Return(nil, exceptions.ErrSessionCorrupted(errors.New("bad json")))
		usecase := NewAuthUsecase(new(MockUserBackendClient), mockStore, zap.NewNop())

		session, err := usecase.CurrentSession(ctx)
		assert.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		mockStore := new(MockSessionStore)
		mockStore.On("LoadSession", mock.Anything).Return(nil, exceptions.ErrStorageRead(errors.New("io"), "token"))
		usecase := NewAuthUsecase(new(MockUserBackendClient), mockStore, zap.NewNop())

		session, err := usecase.CurrentSession(ctx)
		assert.Nil(t, session)
		assert.Equal(t, exceptions.KindStorage, exceptions.KindOf(err))
	})
}

func TestAuthUsecase_LogoutUser(t *testing.T) {
	ctx := context.Background()
	mockClient := new(MockUserBackendClient)
	mockClient.On("Login", mock.Anything, mock.Anything).Return(loginResponseFixture(), nil)
	usecase := NewAuthUsecase(mockClient, newTestSessionStore(t), zap.NewNop())

	_, err := usecase.LoginUser(ctx, &requests.LoginUser{Email: "vale@sonrisitas.pe", Password: "secreta"})
	assert.NoError(t, err)

	assert.NoError(t, usecase.LogoutUser(ctx))

	session, err := usecase.CurrentSession(ctx)
	assert.NoError(t, err)
	assert.Nil(t, session)
}
