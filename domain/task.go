package domain

import (
	"strings"
	"time"
)

// Task represents a user-owned unit of work scheduled at a wall-clock time.
// Time is a zero-padded "HH:MM" 24-hour string and is the sole sort key
// when listing.
type Task struct {
	ID          int64     `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Time        string    `json:"time"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Status == StatusCompleted
}

// TaskDraft carries the user-editable fields of a task. It is the payload
// for both create and full-field edit operations.
type TaskDraft struct {
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Time        string `json:"time"`
}

// Validate trims every field in place and reports the first blank one in
// submission order (title, summary, description, time). A nil return means
// the draft is ready to submit.
func (d *TaskDraft) Validate() error {
	if d == nil {
		return ErrInvalidPayload
	}
	fields := []struct {
		name  string
		value *string
	}{
		{"title", &d.Title},
		{"summary", &d.Summary},
		{"description", &d.Description},
		{"time", &d.Time},
	}
	for _, f := range fields {
		*f.value = strings.TrimSpace(*f.value)
		if *f.value == "" {
			return NewValidationError(f.name)
		}
	}
	return nil
}
