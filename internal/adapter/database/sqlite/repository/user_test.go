package repository_test

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"taskapp/internal/adapter/database/sqlite"
	"taskapp/internal/adapter/database/sqlite/repository"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
	. "taskapp/pkg/test"
	"taskapp/pkg/test/factory"
)

type UserRepositoryTestSuite struct {
	suite.Suite
	db   *sqlite.DB
	Repo port.UserRepository
}

func (s *UserRepositoryTestSuite) SetupTest() {
	s.db = InitTestDB()
	s.Repo = repository.NewUserRepository(s.db)
}

func TestUserRepositoryTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(UserRepositoryTestSuite))
}

func (s *UserRepositoryTestSuite) TestCreateAndGetByUsername() {
	user := factory.NewUser[domain.User](map[string]any{
		"Username": "alice",
		"Email":    "a@x.com",
	})

	saved, err := s.Repo.Create(context.Background(), user)

	assert.NoError(s.T(), err)
	assert.NotZero(s.T(), saved.ID)

	got, err := s.Repo.GetByUsername(context.Background(), "alice")

	assert.NoError(s.T(), err)
	Expect(got.ID).To(Equal(saved.ID))
	Expect(got.Email).To(Equal("a@x.com"))
	Expect(got.EncryptedPassword).To(Equal(user.EncryptedPassword))
}

func (s *UserRepositoryTestSuite) TestGetByUsername_Missing() {
	_, err := s.Repo.GetByUsername(context.Background(), "nobody")

	assert.ErrorIs(s.T(), err, domain.ErrUserNotFound)
}

func (s *UserRepositoryTestSuite) TestExists() {
	ctx := context.Background()

	_, err := s.Repo.Create(ctx, factory.NewUser[domain.User](map[string]any{
		"Username": "alice",
		"Email":    "a@x.com",
	}))
	assert.NoError(s.T(), err)

	byName, err := s.Repo.ExistsByUsername(ctx, "alice")
	assert.NoError(s.T(), err)
	assert.True(s.T(), byName)

	byName, err = s.Repo.ExistsByUsername(ctx, "bob")
	assert.NoError(s.T(), err)
	assert.False(s.T(), byName)

	byEmail, err := s.Repo.ExistsByEmail(ctx, "a@x.com")
	assert.NoError(s.T(), err)
	assert.True(s.T(), byEmail)

	byEmail, err = s.Repo.ExistsByEmail(ctx, "b@x.com")
	assert.NoError(s.T(), err)
	assert.False(s.T(), byEmail)
}

func (s *UserRepositoryTestSuite) TestWithinTx_RollbackDiscardsInsert() {
	ctx := context.Background()

	err := s.db.WithinTx(ctx, func(ctx context.Context) error {
		_, err := s.Repo.Create(ctx, factory.NewUser[domain.User](map[string]any{
			"Username": "alice",
			"Email":    "a@x.com",
		}))
		assert.NoError(s.T(), err)

		return assert.AnError
	})

	assert.ErrorIs(s.T(), err, assert.AnError)

	exists, err := s.Repo.ExistsByUsername(ctx, "alice")
	assert.NoError(s.T(), err)
	assert.False(s.T(), exists)
}
