package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmaster/taskmaster/domain"
)

func validDraft() domain.TaskDraft {
	return domain.TaskDraft{
		Title:       "Study English",
		Summary:     "Prepare for the exam",
		Description: "Review the new vocabulary module",
		Time:        "16:00",
	}
}

func TestTaskDraftValidate(t *testing.T) {
	draft := validDraft()
	require.NoError(t, draft.Validate())
}

func TestTaskDraftValidateFirstBlankFieldWins(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.TaskDraft)
		field   string
		message string
	}{
		{"blank title", func(d *domain.TaskDraft) { d.Title = "" }, "title", "title is required"},
		{"whitespace title", func(d *domain.TaskDraft) { d.Title = "   " }, "title", "title is required"},
		{"blank summary", func(d *domain.TaskDraft) { d.Summary = "\t" }, "summary", "summary is required"},
		{"blank description", func(d *domain.TaskDraft) { d.Description = "" }, "description", "description is required"},
		{"blank time", func(d *domain.TaskDraft) { d.Time = "" }, "time", "time is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)
			err := draft.Validate()
			require.Error(t, err)
			assert.True(t, domain.IsDomainError(err, domain.ErrCodeValidation))
			assert.Equal(t, tt.field, domain.ValidationField(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}

	// title is reported first when everything is blank
	empty := domain.TaskDraft{}
	err := empty.Validate()
	require.Error(t, err)
	assert.Equal(t, "title", domain.ValidationField(err))
}

func TestTaskDraftValidateTrimsInPlace(t *testing.T) {
	draft := domain.TaskDraft{
		Title:       "  Buy groceries  ",
		Summary:     " weekly shopping ",
		Description: "\tpotatoes, milk, bread\n",
		Time:        " 12:00 ",
	}
	require.NoError(t, draft.Validate())
	assert.Equal(t, "Buy groceries", draft.Title)
	assert.Equal(t, "weekly shopping", draft.Summary)
	assert.Equal(t, "potatoes, milk, bread", draft.Description)
	assert.Equal(t, "12:00", draft.Time)
}
