package tasks

import (
	"fmt"

	"github.com/gobwas/glob"

	"veil/internal/app/errors"
	"veil/internal/config"
)

// Select returns the tasks whose names match any pattern, in declaration order
func Select(tasks []config.Task, patterns []string) ([]config.Task, error) {
	if len(patterns) == 0 {
		patterns = []string{config.DefaultTaskPattern}
	}

	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w '%s': %w", errors.ErrInvalidTaskPattern, pattern, err)
		}

		globs = append(globs, g)
	}

	selected := make([]config.Task, 0, len(tasks))

	for _, task := range tasks {
		for _, g := range globs {
			if g.Match(task.Name) {
				selected = append(selected, task)
				break
			}
		}
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: %v", errors.ErrNoTasksMatched, patterns)
	}

	return selected, nil
}
