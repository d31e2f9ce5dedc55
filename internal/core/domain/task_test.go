package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskapp/internal/core/domain"
)

func TestTaskBelongsTo(t *testing.T) {
	task := domain.Task{ID: 1, OwnerID: 7}

	assert.True(t, task.BelongsTo(7))
	assert.False(t, task.BelongsTo(8))
}

func TestTaskToggle(t *testing.T) {
	task := domain.Task{}

	task.Toggle()
	assert.True(t, task.Completed)

	task.Toggle()
	assert.False(t, task.Completed)
}

func TestUserProfileOmitsPassword(t *testing.T) {
	user := domain.User{
		Username:          "alice",
		Email:             "a@x.com",
		EncryptedPassword: "$2a$10$digest",
	}

	profile := user.Profile()

	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "a@x.com", profile.Email)
}
