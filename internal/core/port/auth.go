package port

import (
	"context"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/model/request"
	"taskapp/internal/core/model/response"
)

type AuthService interface {
	Register(ctx context.Context, req *request.SignUpRequest) (*domain.User, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

// TokenIssuer mints the bearer credential returned by Login. The service
// treats the token as opaque; format and verification live behind this
// port.
type TokenIssuer interface {
	IssueToken(username string) (string, error)
}
