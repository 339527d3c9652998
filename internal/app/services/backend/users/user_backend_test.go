package users

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sonrisitas-client/internal/pkg/constvars"
	"sonrisitas-client/internal/pkg/dto/requests"
	"sonrisitas-client/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newFakeAuthBackend(t *testing.T) *httptest.Server {
	t.Helper()
	router := chi.NewRouter()
	router.Post(constvars.EndpointUserLogin, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] == "vale@sonrisitas.pe" && body["password"] == "secreta" {
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.Write([]byte(`{"token":"tok-1","nombre":"Valeria","rol":"admin"}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"msg":"credenciales inválidas"}`))
	})
	router.Post(constvars.EndpointUserRegister, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] == "taken@sonrisitas.pe" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"msg":"El email ya está registrado"}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"msg":"ok"}`))
	})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func TestUserBackendClient_Login(t *testing.T) {
	server := newFakeAuthBackend(t)
	client := NewUserBackendClient(server.URL, 5*time.Second, zap.NewNop())

	t.Run("valid credentials return token and profile", func(t *testing.T) {
		response, err := client.Login(context.Background(), &requests.LoginUser{
			Email:    "vale@sonrisitas.pe",
			Password: "secreta",
		})
		assert.NoError(t, err)
		assert.Equal(t, "tok-1", response.Token)
		assert.Equal(t, "Valeria", response.Nombre)
	})

	t.Run("rejected credentials map to the auth kind", func(t *testing.T) {
		response, err := client.Login(context.Background(), &requests.LoginUser{
			Email:    "a@b.com",
			Password: "x",
		})
		assert.Nil(t, response)
		assert.Error(t, err)
		assert.Equal(t, exceptions.KindAuth, exceptions.KindOf(err))
		assert.Equal(t, constvars.ErrClientInvalidCredentials, exceptions.ClientMessageOf(err))
	})

	t.Run("unreachable backend maps to the network kind", func(t *testing.T) {
		dead := httptest.NewServer(http.NotFoundHandler())
		dead.Close()
		deadClient := NewUserBackendClient(dead.URL, time.Second, zap.NewNop())

		_, err := deadClient.Login(context.Background(), &requests.LoginUser{
			Email:    "vale@sonrisitas.pe",
			Password: "secreta",
		})
		assert.Error(t, err)
		assert.Equal(t, exceptions.KindNetwork, exceptions.KindOf(err))
	})
}

func TestUserBackendClient_Register(t *testing.T) {
	server := newFakeAuthBackend(t)
	client := NewUserBackendClient(server.URL, 5*time.Second, zap.NewNop())

	t.Run("accepted registration returns nil", func(t *testing.T) {
		err := client.Register(context.Background(), &requests.RegisterUser{
			Nombre:   "Nuevo",
			Email:    "nuevo@sonrisitas.pe",
			Password: "secreta",
			Rol:      "admin",
		})
		assert.NoError(t, err)
	})

	t.Run("rejected registration surfaces the backend msg", func(t *testing.T) {
		err := client.Register(context.Background(), &requests.RegisterUser{
			Nombre:   "Dup",
			Email:    "taken@sonrisitas.pe",
			Password: "secreta",
			Rol:      "admin",
		})
		assert.Error(t, err)
		assert.Equal(t, exceptions.KindValidation, exceptions.KindOf(err))
		assert.Equal(t, "El email ya está registrado", exceptions.ClientMessageOf(err))
	})
}
