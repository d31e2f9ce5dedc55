package infrastructure

import (
	"context"

	"taskapp/internal/adapter/database/postgres"
	pgrepo "taskapp/internal/adapter/database/postgres/repository"
	"taskapp/internal/adapter/database/sqlite"
	sqliterepo "taskapp/internal/adapter/database/sqlite/repository"
	"taskapp/internal/adapter/http/handler"
	"taskapp/internal/core/port"
	"taskapp/internal/core/service"
	"taskapp/pkg/auth"
	"taskapp/pkg/config"
	"taskapp/pkg/logging"
	"taskapp/pkg/metrics"
)

// Container wires repositories, services and handlers for the selected
// database backend.
type Container struct {
	UserRepo port.UserRepository
	TaskRepo port.TaskRepository

	AuthService port.AuthService
	TaskService port.TaskService

	JWT *auth.JWT

	AuthHandler *handler.AuthHandler
	TaskHandler *handler.TaskHandler

	closers []func()
}

func NewContainer(ctx context.Context, cfg *config.Config, logger *logging.AppLogger, m *metrics.AppMetrics) (*Container, error) {
	c := &Container{}

	var (
		userRepo port.UserRepository
		taskRepo port.TaskRepository
		tx       port.Transactor
	)

	if cfg.UsePostgres() {
		db, err := postgres.Open(ctx, cfg.DatabaseURL, cfg.PostgresMigrationsPath)

		if err != nil {
			return nil, err
		}

		userRepo = pgrepo.NewUserRepository(db)
		taskRepo = pgrepo.NewTaskRepository(db)
		tx = db

		c.closers = append(c.closers, db.Close)
	} else {
		db, err := sqlite.Open(cfg.DatabasePath, cfg.SQLiteMigrationsPath)

		if err != nil {
			return nil, err
		}

		userRepo = sqliterepo.NewUserRepository(db)
		taskRepo = sqliterepo.NewTaskRepository(db)
		tx = db

		c.closers = append(c.closers, func() { db.Close() })
	}

	c.UserRepo = userRepo
	c.TaskRepo = taskRepo
	c.JWT = auth.NewJWT(cfg.JWTSecret)

	c.AuthService = service.NewAuthService(userRepo, tx, c.JWT)
	c.TaskService = service.NewTaskService(taskRepo, userRepo, tx)

	c.AuthHandler = handler.NewAuthHandler(c.AuthService, m)
	c.TaskHandler = handler.NewTaskHandler(c.TaskService, logger, m)

	return c, nil
}

func (c *Container) Close() {
	for _, close := range c.closers {
		close()
	}
}
