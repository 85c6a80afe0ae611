package services

import (
	"context"
	"fmt"

	"duke/internal/domain"
	"duke/internal/repository/sqlite"
)

// taskStoreImpl implements the TaskStore interface on a sqlite.Repository
type taskStoreImpl struct {
	repo   sqlite.Repository
	mapper *domain.TaskMapper
}

// NewTaskStore creates a new TaskStore instance
func NewTaskStore(repo sqlite.Repository) TaskStore {
	return &taskStoreImpl{
		repo:   repo,
		mapper: domain.NewTaskMapper(),
	}
}

// Load reads the stored rows and rebuilds the tasks
func (s *taskStoreImpl) Load(ctx context.Context) ([]*domain.Task, error) {
	rows, err := s.repo.LoadTasks(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := s.mapper.FromDatabaseSlice(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to restore stored tasks: %w", err)
	}
	return tasks, nil
}

// Save writes the full list snapshot
func (s *taskStoreImpl) Save(ctx context.Context, tasks []*domain.Task) error {
	return s.repo.SaveTasks(ctx, s.mapper.ToDatabaseSlice(tasks))
}
