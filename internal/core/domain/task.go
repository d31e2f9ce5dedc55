package domain

import "time"

type Task struct {
	ID          int64
	Title       string `validate:"required,max=255"`
	Description string `validate:"max=1000"`
	Completed   bool
	OwnerID     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t *Task) BelongsTo(userID int64) bool {
	return t.OwnerID == userID
}

// Toggle flips the completion flag in place.
func (t *Task) Toggle() {
	t.Completed = !t.Completed
}
