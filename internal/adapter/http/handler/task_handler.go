package handler

import (
	"net/http"
	"strconv"

	"taskapp/internal/adapter/http/helper"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/model/request"
	"taskapp/internal/core/model/response"
	"taskapp/internal/core/port"
	"taskapp/pkg/auth"
	"taskapp/pkg/logging"
	"taskapp/pkg/metrics"
	"taskapp/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type TaskHandler struct {
	svc     port.TaskService
	logger  *logging.AppLogger
	metrics *metrics.AppMetrics
}

func NewTaskHandler(svc port.TaskService, logger *logging.AppLogger, m *metrics.AppMetrics) *TaskHandler {
	return &TaskHandler{svc: svc, logger: logger, metrics: m}
}

func taskToResponse(task domain.Task) response.TaskResponse {
	return response.TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func tasksToResponse(tasks []domain.Task) []response.TaskResponse {
	out := make([]response.TaskResponse, 0, len(tasks))

	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}

	return out
}

func (t *TaskHandler) username(c *gin.Context) string {
	return c.GetString(auth.UsernameKey)
}

func (t *TaskHandler) taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	if err != nil {
		helper.SendFieldError(c, http.StatusBadRequest, "BAD_REQUEST", "id", "Invalid task id")
		return 0, false
	}

	return id, true
}

func (t *TaskHandler) ListTasks(c *gin.Context) {
	ctx, span := tracing.CreateChildSpan(c.Request.Context(), "handler.task.ListTasks", []attribute.KeyValue{
		attribute.String("handler.method", c.Request.Method),
		attribute.String("handler.path", c.FullPath()),
	})

	defer span.End()

	username := t.username(c)

	tasks, err := t.svc.ListAll(ctx, username)

	if err != nil {
		tracing.AddSpanError(span, err)

		if t.logger != nil {
			t.logger.Error(ctx, "Failed to list tasks",
				zap.Error(err),
				zap.String("username", username),
			)
		}

		helper.SendDomainError(c, err)
		return
	}

	span.SetAttributes(attribute.Int("task.count", len(tasks)))

	if t.metrics != nil {
		t.metrics.RecordTaskOperation("list")
	}

	c.JSON(http.StatusOK, tasksToResponse(tasks))
}

func (t *TaskHandler) listByCompletion(c *gin.Context, completed bool) {
	ctx := c.Request.Context()

	tasks, err := t.svc.ListByCompletion(ctx, t.username(c), completed)

	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	if t.metrics != nil {
		t.metrics.RecordTaskOperation("list_by_completion")
	}

	c.JSON(http.StatusOK, tasksToResponse(tasks))
}

func (t *TaskHandler) ListCompletedTasks(c *gin.Context) {
	t.listByCompletion(c, true)
}

func (t *TaskHandler) ListIncompleteTasks(c *gin.Context) {
	t.listByCompletion(c, false)
}

func (t *TaskHandler) GetTask(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := t.taskID(c)

	if !ok {
		return
	}

	task, err := t.svc.GetByID(ctx, t.username(c), id)

	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskToResponse(task))
}

func (t *TaskHandler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.TaskRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		helper.SendFieldError(c, http.StatusBadRequest, "BAD_REQUEST", "request", "Invalid request parameters")
		return
	}

	task, err := t.svc.Create(ctx, t.username(c), params)

	if err != nil {
		if t.logger != nil {
			t.logger.Error(ctx, "Failed to create task", zap.Error(err))
		}

		helper.SendDomainError(c, err)
		return
	}

	if t.metrics != nil {
		t.metrics.RecordTaskOperation("create")
	}

	c.JSON(http.StatusCreated, taskToResponse(task))
}

func (t *TaskHandler) UpdateTask(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := t.taskID(c)

	if !ok {
		return
	}

	var params request.TaskRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		helper.SendFieldError(c, http.StatusBadRequest, "BAD_REQUEST", "request", "Invalid request parameters")
		return
	}

	task, err := t.svc.Update(ctx, t.username(c), id, params)

	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	if t.metrics != nil {
		t.metrics.RecordTaskOperation("update")
	}

	c.JSON(http.StatusOK, taskToResponse(task))
}

func (t *TaskHandler) ToggleTask(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := t.taskID(c)

	if !ok {
		return
	}

	task, err := t.svc.ToggleCompletion(ctx, t.username(c), id)

	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	if t.metrics != nil {
		t.metrics.RecordTaskOperation("toggle")
	}

	c.JSON(http.StatusOK, taskToResponse(task))
}

func (t *TaskHandler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := t.taskID(c)

	if !ok {
		return
	}

	if err := t.svc.Delete(ctx, t.username(c), id); err != nil {
		helper.SendDomainError(c, err)
		return
	}

	if t.metrics != nil {
		t.metrics.RecordTaskOperation("delete")
	}

	helper.SendSuccess(c, http.StatusOK, nil, "Task deleted successfully")
}
