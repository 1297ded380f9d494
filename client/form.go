package client

import (
	"context"

	"github.com/taskmaster/taskmaster/domain"
)

// TaskForm is the validation state machine behind the create and edit
// dialogs: four required fields, checked in order on submit, with the first
// failure blocking submission. Time is set through the picker path so the
// stored value is always zero-padded "HH:MM".
type TaskForm struct {
	Title       string
	Summary     string
	Description string

	time string
}

// NewTaskForm returns an empty form for the create dialog.
func NewTaskForm() *TaskForm {
	return &TaskForm{}
}

// FormForTask pre-fills the form with an existing task for editing.
func FormForTask(task domain.Task) *TaskForm {
	return &TaskForm{
		Title:       task.Title,
		Summary:     task.Summary,
		Description: task.Description,
		time:        task.Time,
	}
}

// SetTime records the picker output as the canonical "HH:MM" value.
func (f *TaskForm) SetTime(hours, minutes int) {
	f.time = domain.TimeOfDay(hours, minutes)
}

// Time returns the current raw time value.
func (f *TaskForm) Time() string {
	return f.time
}

// DisplayTime renders the picked time as a 12-hour clock for the form label.
func (f *TaskForm) DisplayTime() string {
	return domain.FormatTime(f.time)
}

// Draft assembles the submission payload.
func (f *TaskForm) Draft() domain.TaskDraft {
	return domain.TaskDraft{
		Title:       f.Title,
		Summary:     f.Summary,
		Description: f.Description,
		Time:        f.time,
	}
}

// Validate reports the first blank required field, or nil when the form can
// be submitted.
func (f *TaskForm) Validate() error {
	draft := f.Draft()
	return draft.Validate()
}

// Submit validates and creates the task through the controller. Validation
// failures block the network call entirely.
func (f *TaskForm) Submit(ctx context.Context, controller *ListController) error {
	draft := f.Draft()
	if err := draft.Validate(); err != nil {
		return err
	}
	return controller.Create(ctx, draft)
}

// SubmitEdit validates and applies a full-field edit to an existing task.
func (f *TaskForm) SubmitEdit(ctx context.Context, controller *ListController, id int64) error {
	draft := f.Draft()
	if err := draft.Validate(); err != nil {
		return err
	}
	return controller.Update(ctx, id, draft)
}

// StatusOptions lists the transitions the status editor offers for a task:
// two one-way moves out of pending, nothing once the task left it.
func StatusOptions(task domain.Task) []domain.Status {
	return domain.TransitionsFrom(task.Status)
}
