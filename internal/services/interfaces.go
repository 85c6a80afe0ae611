package services

import (
	"context"

	"duke/internal/domain"
)

// Match is one find result: the task, its true 1-based list position and its
// 1-based ordinal among the matches.
type Match struct {
	Position int          `json:"position"`
	Ordinal  int          `json:"ordinal"`
	Task     *domain.Task `json:"-"`
}

// TaskStore loads and saves whole task lists
type TaskStore interface {
	// Load returns the stored tasks in list order
	Load(ctx context.Context) ([]*domain.Task, error)
	// Save replaces the stored list with tasks
	Save(ctx context.Context, tasks []*domain.Task) error
}
