package tasks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meowjesty/tasknest/tasks"
)

func TestInsertTaskValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		title   string
		wantErr error
	}{
		{"valid", "finish the report", nil},
		{"empty title", "", tasks.ErrEmptyTitle},
		{"whitespace-only title", "   \n\t", tasks.ErrEmptyTitle},
		{"title with inner spaces is fine", "a b", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := tasks.InsertTask{NonEmptyTitle: tt.title, Details: "x"}
			err := cmd.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateTaskValidate(t *testing.T) {
	t.Parallel()

	valid := tasks.UpdateTask{ID: 1, NewTitle: "renamed", Details: "x"}
	require.NoError(t, valid.Validate())

	invalid := tasks.UpdateTask{ID: 1, NewTitle: " ", Details: "x"}
	require.ErrorIs(t, invalid.Validate(), tasks.ErrEmptyTitle)
}

func TestDomainErrorStatusCodes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 422, tasks.ErrEmptyTitle.StatusCode())
	assert.Equal(t, 404, tasks.ErrNoneFavorite.StatusCode())
	assert.Equal(t, 404, tasks.ErrEmpty.StatusCode())

	notFound := tasks.ErrNotFound(42)
	assert.Equal(t, 404, notFound.StatusCode())
	assert.Contains(t, notFound.Error(), "42")
}
