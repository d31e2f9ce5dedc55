package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/model/request"
	"taskapp/internal/core/port"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type TaskService struct {
	tasks port.TaskRepository
	users port.UserRepository
	tx    port.Transactor
}

func NewTaskService(tasks port.TaskRepository, users port.UserRepository, tx port.Transactor) *TaskService {
	return &TaskService{tasks: tasks, users: users, tx: tx}
}

// actingUser resolves the authenticated username to its user row. A miss
// here means an authenticated identity without a backing record, which is
// an invariant breach rather than a recoverable request error.
func (ts *TaskService) actingUser(ctx context.Context, username string) (domain.User, error) {
	user, err := ts.users.GetByUsername(ctx, username)

	if err != nil {
		slog.Error("Task#actingUser", "username", username, "error", err)
		return domain.User{}, fmt.Errorf("resolving %q: %w", username, domain.ErrUserNotFound)
	}

	return user, nil
}

func (ts *TaskService) ListAll(ctx context.Context, username string) ([]domain.Task, error) {
	user, err := ts.actingUser(ctx, username)

	if err != nil {
		return nil, err
	}

	return ts.tasks.GetAllByOwner(ctx, user.ID)
}

func (ts *TaskService) ListByCompletion(ctx context.Context, username string, completed bool) ([]domain.Task, error) {
	user, err := ts.actingUser(ctx, username)

	if err != nil {
		return nil, err
	}

	return ts.tasks.GetByOwnerAndCompletion(ctx, user.ID, completed)
}

func (ts *TaskService) GetByID(ctx context.Context, username string, taskID int64) (domain.Task, error) {
	user, err := ts.actingUser(ctx, username)

	if err != nil {
		return domain.Task{}, err
	}

	return ts.tasks.GetByIDAndOwner(ctx, taskID, user.ID)
}

func (ts *TaskService) Create(ctx context.Context, username string, req request.TaskRequest) (domain.Task, error) {
	var created domain.Task

	err := ts.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := ts.actingUser(ctx, username)

		if err != nil {
			return err
		}

		task := domain.Task{
			Title:       req.Title,
			Description: req.Description,
			OwnerID:     user.ID,
		}

		// Tasks start incomplete unless the payload says otherwise.
		if req.Completed != nil {
			task.Completed = *req.Completed
		}

		if err := validateTask(task); err != nil {
			return err
		}

		created, err = ts.tasks.Create(ctx, task)

		if err != nil {
			slog.Error("Task#Create", "title", task.Title, "error", err)
		}

		return err
	})

	if err != nil {
		return domain.Task{}, err
	}

	return created, nil
}

// Update replaces title and description wholesale but only touches the
// completion flag when the request carries one. The asymmetry is part of
// the observable contract.
func (ts *TaskService) Update(ctx context.Context, username string, taskID int64, req request.TaskRequest) (domain.Task, error) {
	var updated domain.Task

	err := ts.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := ts.actingUser(ctx, username)

		if err != nil {
			return err
		}

		task, err := ts.tasks.GetByIDAndOwner(ctx, taskID, user.ID)

		if err != nil {
			return err
		}

		task.Title = req.Title
		task.Description = req.Description

		if req.Completed != nil {
			task.Completed = *req.Completed
		}

		if err := validateTask(task); err != nil {
			return err
		}

		updated, err = ts.tasks.Update(ctx, task)

		return err
	})

	if err != nil {
		return domain.Task{}, err
	}

	return updated, nil
}

func (ts *TaskService) ToggleCompletion(ctx context.Context, username string, taskID int64) (domain.Task, error) {
	var toggled domain.Task

	err := ts.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := ts.actingUser(ctx, username)

		if err != nil {
			return err
		}

		task, err := ts.tasks.GetByIDAndOwner(ctx, taskID, user.ID)

		if err != nil {
			return err
		}

		task.Toggle()

		toggled, err = ts.tasks.Update(ctx, task)

		return err
	})

	if err != nil {
		return domain.Task{}, err
	}

	return toggled, nil
}

func (ts *TaskService) Delete(ctx context.Context, username string, taskID int64) error {
	return ts.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := ts.actingUser(ctx, username)

		if err != nil {
			return err
		}

		task, err := ts.tasks.GetByIDAndOwner(ctx, taskID, user.ID)

		if err != nil {
			return err
		}

		return ts.tasks.Delete(ctx, task)
	})
}

func validateTask(task domain.Task) error {
	if err := validate.Struct(task); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	return nil
}
