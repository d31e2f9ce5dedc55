package port

import (
	"context"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/model/request"
)

type TaskRepository interface {
	GetAllByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error)
	GetByOwnerAndCompletion(ctx context.Context, ownerID int64, completed bool) ([]domain.Task, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID int64) (domain.Task, error)
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	Update(ctx context.Context, task domain.Task) (domain.Task, error)
	Delete(ctx context.Context, task domain.Task) error
}

type TaskService interface {
	ListAll(ctx context.Context, username string) ([]domain.Task, error)
	ListByCompletion(ctx context.Context, username string, completed bool) ([]domain.Task, error)
	GetByID(ctx context.Context, username string, taskID int64) (domain.Task, error)
	Create(ctx context.Context, username string, req request.TaskRequest) (domain.Task, error)
	Update(ctx context.Context, username string, taskID int64, req request.TaskRequest) (domain.Task, error)
	ToggleCompletion(ctx context.Context, username string, taskID int64) (domain.Task, error)
	Delete(ctx context.Context, username string, taskID int64) error
}
