// Package tasks holds the task domain: models, command validation, and the
// PostgreSQL repository including completion tracking.
package tasks

import "github.com/meowjesty/tasknest/core/validator"

// Task is a stored task record.
type Task struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Details string `json:"details"`
}

// InsertTask is the task creation command.
type InsertTask struct {
	NonEmptyTitle string `json:"non_empty_title"`
	Details       string `json:"details"`
}

// Validate rejects blank titles.
func (c InsertTask) Validate() error {
	return validator.Apply(validator.NotBlank(c.NonEmptyTitle, ErrEmptyTitle))
}

// UpdateTask is the task update command.
type UpdateTask struct {
	ID       int64  `json:"id"`
	NewTitle string `json:"new_title"`
	Details  string `json:"details"`
}

// Validate rejects blank titles.
func (c UpdateTask) Validate() error {
	return validator.Apply(validator.NotBlank(c.NewTitle, ErrEmptyTitle))
}
