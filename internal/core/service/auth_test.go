package service_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"taskapp/internal/adapter/database/sqlite/repository"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/model/request"
	"taskapp/internal/core/port"
	"taskapp/internal/core/service"
	"taskapp/pkg/auth"
	. "taskapp/pkg/test"
)

type AuthServiceTestSuite struct {
	suite.Suite
	Service port.AuthService
	repo    port.UserRepository
	jwt     *auth.JWT
}

func (s *AuthServiceTestSuite) SetupTest() {
	db := InitTestDB()

	s.repo = repository.NewUserRepository(db)
	s.jwt = auth.NewJWT("test-secret")
	s.Service = service.NewAuthService(s.repo, db, s.jwt)
}

func TestAuthServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestRegister_Success() {
	req := &request.SignUpRequest{
		Username: "alice",
		Email:    "a@x.com",
		Password: "password123",
	}

	user, err := s.Service.Register(context.Background(), req)

	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), user)
	assert.NotZero(s.T(), user.ID)
	assert.Equal(s.T(), "alice", user.Username)
	assert.Equal(s.T(), "a@x.com", user.Email)
	assert.NotEqual(s.T(), "password123", user.EncryptedPassword)
}

func (s *AuthServiceTestSuite) TestRegister_DuplicateUsername() {
	ctx := context.Background()

	_, err := s.Service.Register(ctx, &request.SignUpRequest{
		Username: "alice",
		Email:    "a@x.com",
		Password: "pw1secret",
	})
	assert.NoError(s.T(), err)

	_, err = s.Service.Register(ctx, &request.SignUpRequest{
		Username: "alice",
		Email:    "b@x.com",
		Password: "pw2secret",
	})

	assert.ErrorIs(s.T(), err, domain.ErrDuplicateIdentity)

	// The failed attempt left no trace: its email was never stored.
	taken, err := s.repo.ExistsByEmail(ctx, "b@x.com")
	assert.NoError(s.T(), err)
	assert.False(s.T(), taken)
}

func (s *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()

	_, err := s.Service.Register(ctx, &request.SignUpRequest{
		Username: "alice",
		Email:    "a@x.com",
		Password: "pw1secret",
	})
	assert.NoError(s.T(), err)

	_, err = s.Service.Register(ctx, &request.SignUpRequest{
		Username: "bob",
		Email:    "a@x.com",
		Password: "pw2secret",
	})

	assert.ErrorIs(s.T(), err, domain.ErrDuplicateIdentity)

	taken, err := s.repo.ExistsByUsername(ctx, "bob")
	assert.NoError(s.T(), err)
	assert.False(s.T(), taken)
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()

	_, err := s.Service.Register(ctx, &request.SignUpRequest{
		Username: "alice",
		Email:    "a@x.com",
		Password: "password123",
	})
	assert.NoError(s.T(), err)

	resp, err := s.Service.Login(ctx, &request.LoginRequest{
		Username: "alice",
		Password: "password123",
	})

	assert.NoError(s.T(), err)
	Expect(resp.Username).To(Equal("alice"))
	Expect(resp.Email).To(Equal("a@x.com"))
	Expect(resp.Token).NotTo(BeEmpty())

	// The issued token verifies back to the same identity.
	username, err := s.jwt.VerifyToken(resp.Token)
	assert.NoError(s.T(), err)
	Expect(username).To(Equal("alice"))
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()

	_, err := s.Service.Register(ctx, &request.SignUpRequest{
		Username: "alice",
		Email:    "a@x.com",
		Password: "password123",
	})
	assert.NoError(s.T(), err)

	_, err = s.Service.Login(ctx, &request.LoginRequest{
		Username: "alice",
		Password: "wrong-password",
	})

	assert.ErrorIs(s.T(), err, domain.ErrInvalidCredentials)
}

// failingUserRepository simulates an unreachable store.
type failingUserRepository struct {
	port.UserRepository
	err error
}

func (f *failingUserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return domain.User{}, f.err
}

// A store outage during login must not look like bad credentials.
func (s *AuthServiceTestSuite) TestLogin_StoreFailurePropagates() {
	storeErr := errors.New("store unavailable")
	svc := service.NewAuthService(&failingUserRepository{err: storeErr}, InitTestDB(), s.jwt)

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: "alice",
		Password: "password123",
	})

	assert.ErrorIs(s.T(), err, storeErr)
	assert.NotErrorIs(s.T(), err, domain.ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownUsername() {
	_, err := s.Service.Login(context.Background(), &request.LoginRequest{
		Username: "nobody",
		Password: "password123",
	})

	assert.ErrorIs(s.T(), err, domain.ErrInvalidCredentials)
}

// Unknown username and wrong password must be indistinguishable.
func (s *AuthServiceTestSuite) TestLogin_FailureModesMatch() {
	ctx := context.Background()

	_, err := s.Service.Register(ctx, &request.SignUpRequest{
		Username: "alice",
		Email:    "a@x.com",
		Password: "password123",
	})
	assert.NoError(s.T(), err)

	_, wrongPassword := s.Service.Login(ctx, &request.LoginRequest{
		Username: "alice",
		Password: "wrong-password",
	})

	_, unknownUser := s.Service.Login(ctx, &request.LoginRequest{
		Username: "nobody",
		Password: "password123",
	})

	Expect(wrongPassword).To(Equal(unknownUser))
}
