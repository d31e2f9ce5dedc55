package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"taskapp/internal/adapter/database/postgres"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
)

var taskColumns = []string{"id", "title", "description", "completed", "owner_id", "created_at", "updated_at"}

type TaskRepository struct {
	db *postgres.DB
}

func NewTaskRepository(db *postgres.DB) port.TaskRepository {
	return &TaskRepository{db: db}
}

func scanTask(row pgx.Row) (domain.Task, error) {
	var task domain.Task

	err := row.Scan(&task.ID, &task.Title, &task.Description, &task.Completed, &task.OwnerID, &task.CreatedAt, &task.UpdatedAt)

	return task, err
}

func (tr *TaskRepository) selectTasks(ctx context.Context, query sq.SelectBuilder) ([]domain.Task, error) {
	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := tr.db.Runner(ctx).Query(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error fetching tasks", "error", err)
		return nil, err
	}

	defer rows.Close()

	tasks := []domain.Task{}

	for rows.Next() {
		task, err := scanTask(rows)

		if err != nil {
			return nil, err
		}

		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (tr *TaskRepository) GetAllByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	query := tr.db.QueryBuilder.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id ASC")

	return tr.selectTasks(ctx, query)
}

func (tr *TaskRepository) GetByOwnerAndCompletion(ctx context.Context, ownerID int64, completed bool) ([]domain.Task, error) {
	query := tr.db.QueryBuilder.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"owner_id": ownerID, "completed": completed}).
		OrderBy("id ASC")

	return tr.selectTasks(ctx, query)
}

func (tr *TaskRepository) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (domain.Task, error) {
	query := tr.db.QueryBuilder.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Task{}, err
	}

	task, err := scanTask(tr.db.Runner(ctx).QueryRow(ctx, stmt, args...))

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Task{}, fmt.Errorf("task %d: %w", id, domain.ErrTaskNotFound)
	}

	if err != nil {
		slog.Error("Error getting task", "task_id", id, "error", err)
		return domain.Task{}, err
	}

	return task, nil
}

func (tr *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	query := tr.db.QueryBuilder.
		Insert("tasks").
		Columns("title", "description", "completed", "owner_id", "created_at", "updated_at").
		Values(task.Title, task.Description, task.Completed, task.OwnerID, task.CreatedAt, task.UpdatedAt).
		Suffix("RETURNING id")

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Task{}, err
	}

	err = tr.db.Runner(ctx).QueryRow(ctx, stmt, args...).Scan(&task.ID)

	if err != nil {
		slog.Error("Error creating task", "error", err)
		return domain.Task{}, err
	}

	return task, nil
}

func (tr *TaskRepository) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	task.UpdatedAt = time.Now()

	query := tr.db.QueryBuilder.
		Update("tasks").
		SetMap(map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
			"completed":   task.Completed,
			"updated_at":  task.UpdatedAt,
		}).
		Where(sq.Eq{"id": task.ID, "owner_id": task.OwnerID})

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Task{}, err
	}

	tag, err := tr.db.Runner(ctx).Exec(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error updating task", "task_id", task.ID, "error", err)
		return domain.Task{}, err
	}

	if tag.RowsAffected() == 0 {
		return domain.Task{}, fmt.Errorf("task %d: %w", task.ID, domain.ErrTaskNotFound)
	}

	return task, nil
}

func (tr *TaskRepository) Delete(ctx context.Context, task domain.Task) error {
	query := tr.db.QueryBuilder.
		Delete("tasks").
		Where(sq.Eq{"id": task.ID, "owner_id": task.OwnerID})

	stmt, args, err := query.ToSql()

	if err != nil {
		return err
	}

	tag, err := tr.db.Runner(ctx).Exec(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error deleting task", "task_id", task.ID, "error", err)
		return err
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %d: %w", task.ID, domain.ErrTaskNotFound)
	}

	return nil
}
