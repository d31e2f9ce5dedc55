package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"

	"taskapp/internal/adapter/database/sqlite"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
)

type UserRepository struct {
	db *sqlite.DB
}

func NewUserRepository(db *sqlite.DB) port.UserRepository {
	return &UserRepository{db: db}
}

func (ur *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	query := ur.db.QueryBuilder.
		Select("id", "username", "email", "encrypted_password", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"username": username}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	var user domain.User

	row := ur.db.Runner(ctx).QueryRowContext(ctx, stmt, args...)

	err = row.Scan(&user.ID, &user.Username, &user.Email, &user.EncryptedPassword, &user.CreatedAt, &user.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, fmt.Errorf("username %q: %w", username, domain.ErrUserNotFound)
	}

	if err != nil {
		slog.Error("Error getting user by username", "error", err)
		return domain.User{}, err
	}

	return user, nil
}

func (ur *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return ur.exists(ctx, sq.Eq{"username": username})
}

func (ur *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return ur.exists(ctx, sq.Eq{"email": email})
}

func (ur *UserRepository) exists(ctx context.Context, cond sq.Eq) (bool, error) {
	query := ur.db.QueryBuilder.
		Select("COUNT(1)").
		From("users").
		Where(cond)

	stmt, args, err := query.ToSql()

	if err != nil {
		return false, err
	}

	var count int

	if err := ur.db.Runner(ctx).QueryRowContext(ctx, stmt, args...).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

func (ur *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	query := ur.db.QueryBuilder.
		Insert("users").
		Columns("username", "email", "encrypted_password", "created_at", "updated_at").
		Values(user.Username, user.Email, user.EncryptedPassword, user.CreatedAt, user.UpdatedAt)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	result, err := ur.db.Runner(ctx).ExecContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error creating user", "error", err)
		return domain.User{}, err
	}

	id, err := result.LastInsertId()

	if err != nil {
		return domain.User{}, err
	}

	user.ID = id

	return user, nil
}
