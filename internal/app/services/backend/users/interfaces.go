package users

import (
	"context"

	"sonrisitas-client/internal/pkg/dto/requests"
	"sonrisitas-client/internal/pkg/dto/responses"
)

type UserBackendClient interface {
	Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	Register(ctx context.Context, request *requests.RegisterUser) error
}
