package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veil/internal/app/errors"
	"veil/internal/config"
)

func Test_Select(t *testing.T) {
	tasks := []config.Task{
		{Name: "build", Command: "go build ./..."},
		{Name: "test-unit", Command: "go test ./..."},
		{Name: "test-e2e", Command: "make e2e"},
		{Name: "lint", Command: "golangci-lint run"},
	}

	tests := []struct {
		name     string
		patterns []string
		expected []string
		error    error
	}{
		{name: "No patterns selects all", patterns: nil, expected: []string{"build", "test-unit", "test-e2e", "lint"}},
		{name: "Exact name", patterns: []string{"lint"}, expected: []string{"lint"}},
		{name: "Wildcard", patterns: []string{"test-*"}, expected: []string{"test-unit", "test-e2e"}},
		{name: "Declaration order kept", patterns: []string{"lint", "build"}, expected: []string{"build", "lint"}},
		{name: "Overlapping patterns select once", patterns: []string{"test-*", "*-unit"}, expected: []string{"test-unit", "test-e2e"}},
		{name: "Alternatives", patterns: []string{"{build,lint}"}, expected: []string{"build", "lint"}},
		{name: "No match", patterns: []string{"deploy"}, error: errors.ErrNoTasksMatched},
		{name: "Invalid pattern", patterns: []string{"[build"}, error: errors.ErrInvalidTaskPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected, err := Select(tasks, tt.patterns)

			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
				assert.Nil(t, selected)

				return
			}

			require.NoError(t, err)

			names := make([]string, len(selected))
			for i, task := range selected {
				names[i] = task.Name
			}

			assert.Equal(t, tt.expected, names)
		})
	}
}

func Test_Select_NoTasks(t *testing.T) {
	_, err := Select(nil, nil)
	assert.ErrorIs(t, err, errors.ErrNoTasksMatched)
}
