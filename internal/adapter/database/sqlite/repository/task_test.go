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

type TaskRepositoryTestSuite struct {
	suite.Suite
	db    *sqlite.DB
	Repo  port.TaskRepository
	owner domain.User
	other domain.User
}

func (s *TaskRepositoryTestSuite) SetupTest() {
	s.db = InitTestDB()
	s.Repo = repository.NewTaskRepository(s.db)

	users := repository.NewUserRepository(s.db)

	var err error

	s.owner, err = users.Create(context.Background(), factory.NewUser[domain.User](map[string]any{
		"Username": "alice",
		"Email":    "a@x.com",
	}))
	assert.NoError(s.T(), err)

	s.other, err = users.Create(context.Background(), factory.NewUser[domain.User](map[string]any{
		"Username": "bob",
		"Email":    "b@x.com",
	}))
	assert.NoError(s.T(), err)
}

func TestTaskRepositoryTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(TaskRepositoryTestSuite))
}

func (s *TaskRepositoryTestSuite) createTask(ownerID int64, title string, completed bool) domain.Task {
	task, err := s.Repo.Create(context.Background(), domain.Task{
		Title:       title,
		Description: "about " + title,
		Completed:   completed,
		OwnerID:     ownerID,
	})
	assert.NoError(s.T(), err)

	return task
}

func (s *TaskRepositoryTestSuite) TestCreate() {
	task := s.createTask(s.owner.ID, "buy milk", false)

	assert.NotZero(s.T(), task.ID)
	assert.False(s.T(), task.CreatedAt.IsZero())
	assert.False(s.T(), task.UpdatedAt.IsZero())

	got, err := s.Repo.GetByIDAndOwner(context.Background(), task.ID, s.owner.ID)

	assert.NoError(s.T(), err)
	Expect(got.Title).To(Equal("buy milk"))
	Expect(got.Description).To(Equal("about buy milk"))
	Expect(got.OwnerID).To(Equal(s.owner.ID))
}

func (s *TaskRepositoryTestSuite) TestGetAllByOwner_InsertionOrder() {
	s.createTask(s.owner.ID, "first", false)
	s.createTask(s.owner.ID, "second", true)
	s.createTask(s.other.ID, "someone else's", false)

	tasks, err := s.Repo.GetAllByOwner(context.Background(), s.owner.ID)

	assert.NoError(s.T(), err)
	Expect(tasks).To(HaveLen(2))
	Expect(tasks[0].Title).To(Equal("first"))
	Expect(tasks[1].Title).To(Equal("second"))
}

func (s *TaskRepositoryTestSuite) TestGetAllByOwner_Empty() {
	tasks, err := s.Repo.GetAllByOwner(context.Background(), s.owner.ID)

	assert.NoError(s.T(), err)
	Expect(tasks).To(BeEmpty())
}

func (s *TaskRepositoryTestSuite) TestGetByOwnerAndCompletion() {
	s.createTask(s.owner.ID, "open", false)
	done := s.createTask(s.owner.ID, "done", true)
	s.createTask(s.other.ID, "also done", true)

	completed, err := s.Repo.GetByOwnerAndCompletion(context.Background(), s.owner.ID, true)

	assert.NoError(s.T(), err)
	Expect(completed).To(HaveLen(1))
	Expect(completed[0].ID).To(Equal(done.ID))
}

func (s *TaskRepositoryTestSuite) TestGetByIDAndOwner_WrongOwner() {
	task := s.createTask(s.owner.ID, "private", false)

	_, err := s.Repo.GetByIDAndOwner(context.Background(), task.ID, s.other.ID)

	assert.ErrorIs(s.T(), err, domain.ErrTaskNotFound)
}

func (s *TaskRepositoryTestSuite) TestUpdate() {
	task := s.createTask(s.owner.ID, "draft", false)

	task.Title = "final"
	task.Description = "ready"
	task.Completed = true

	updated, err := s.Repo.Update(context.Background(), task)

	assert.NoError(s.T(), err)
	Expect(updated.Title).To(Equal("final"))
	Expect(updated.Completed).To(BeTrue())

	got, err := s.Repo.GetByIDAndOwner(context.Background(), task.ID, s.owner.ID)
	assert.NoError(s.T(), err)
	Expect(got.Title).To(Equal("final"))
	Expect(got.Description).To(Equal("ready"))
	Expect(got.Completed).To(BeTrue())
}

func (s *TaskRepositoryTestSuite) TestUpdate_WrongOwner() {
	task := s.createTask(s.owner.ID, "private", false)

	task.OwnerID = s.other.ID
	task.Title = "hijacked"

	_, err := s.Repo.Update(context.Background(), task)

	assert.ErrorIs(s.T(), err, domain.ErrTaskNotFound)
}

func (s *TaskRepositoryTestSuite) TestDelete() {
	task := s.createTask(s.owner.ID, "ephemeral", false)

	assert.NoError(s.T(), s.Repo.Delete(context.Background(), task))

	_, err := s.Repo.GetByIDAndOwner(context.Background(), task.ID, s.owner.ID)
	assert.ErrorIs(s.T(), err, domain.ErrTaskNotFound)

	assert.ErrorIs(s.T(), s.Repo.Delete(context.Background(), task), domain.ErrTaskNotFound)
}

func (s *TaskRepositoryTestSuite) TestWithinTx_RollbackDiscardsWrites() {
	ctx := context.Background()
	task := s.createTask(s.owner.ID, "keep me", false)

	err := s.db.WithinTx(ctx, func(ctx context.Context) error {
		task.Title = "mutated"

		if _, err := s.Repo.Update(ctx, task); err != nil {
			return err
		}

		return assert.AnError
	})

	assert.ErrorIs(s.T(), err, assert.AnError)

	got, err := s.Repo.GetByIDAndOwner(ctx, task.ID, s.owner.ID)
	assert.NoError(s.T(), err)
	Expect(got.Title).To(Equal("keep me"))
}
