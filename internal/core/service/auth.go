package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"context"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/model/request"
	"taskapp/internal/core/model/response"
	"taskapp/internal/core/port"
	"taskapp/internal/core/util"
)

type AuthService struct {
	repo   port.UserRepository
	tx     port.Transactor
	tokens port.TokenIssuer
}

func NewAuthService(repo port.UserRepository, tx port.Transactor, tokens port.TokenIssuer) *AuthService {
	return &AuthService{repo: repo, tx: tx, tokens: tokens}
}

// Register creates a user with a bcrypt-hashed password. Username is
// checked before email so the first conflict reported is deterministic.
func (as *AuthService) Register(ctx context.Context, req *request.SignUpRequest) (*domain.User, error) {
	var saved domain.User

	err := as.tx.WithinTx(ctx, func(ctx context.Context) error {
		taken, err := as.repo.ExistsByUsername(ctx, req.Username)

		if err != nil {
			return err
		}

		if taken {
			return fmt.Errorf("username %q: %w", req.Username, domain.ErrDuplicateIdentity)
		}

		taken, err = as.repo.ExistsByEmail(ctx, req.Email)

		if err != nil {
			return err
		}

		if taken {
			return fmt.Errorf("email %q: %w", req.Email, domain.ErrDuplicateIdentity)
		}

		digest, err := util.HashPassword(req.Password)

		if err != nil {
			return fmt.Errorf("hashing password: %w", err)
		}

		now := time.Now()

		saved, err = as.repo.Create(ctx, domain.User{
			Username:          req.Username,
			Email:             req.Email,
			EncryptedPassword: digest,
			CreatedAt:         now,
			UpdatedAt:         now,
		})

		return err
	})

	if err != nil {
		return nil, err
	}

	slog.Info("Auth#Register", "username", saved.Username)

	return &saved, nil
}

// Login verifies credentials and issues a signed bearer token. Unknown
// username and wrong password collapse into the same error.
func (as *AuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	user, err := as.repo.GetByUsername(ctx, req.Username)

	// Only a genuinely unknown username counts as bad credentials; a
	// store failure must keep its own identity.
	if errors.Is(err, domain.ErrUserNotFound) {
		slog.Warn("Auth#Login", "unknown_username", req.Username)
		return nil, domain.ErrInvalidCredentials
	}

	if err != nil {
		slog.Error("Auth#Login", "get_by_username", err)
		return nil, fmt.Errorf("looking up %q: %w", req.Username, err)
	}

	if err := util.VerifyPassword(req.Password, user.EncryptedPassword); err != nil {
		slog.Warn("Auth#Login", "verify_password", "mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := as.tokens.IssueToken(user.Username)

	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return &response.AuthResponse{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
