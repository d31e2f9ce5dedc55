package domain

import "errors"

// Operation outcomes surfaced to the boundary layer. Callers match with
// errors.Is; wrapped detail stays inside the service layer so store
// internals never reach a client.
var (
	// ErrDuplicateIdentity signals that a username or email is already
	// registered.
	ErrDuplicateIdentity = errors.New("username or email already exists")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUserNotFound means an authenticated identity has no backing user
	// row. That is an invariant breach, not a user-facing condition.
	ErrUserNotFound = errors.New("user not found")

	// ErrTaskNotFound covers both a missing task and a task owned by a
	// different user, so ownership cannot be probed by id.
	ErrTaskNotFound = errors.New("task not found or access denied")

	// ErrInvalidInput signals a task payload that failed validation.
	ErrInvalidInput = errors.New("invalid task input")
)
