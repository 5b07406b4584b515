package service

import (
	"context"
	"fmt"
	"time"

	"taskr/internal/domain"
)

// Priority bounds for a task.
const (
	minPriority = 1
	maxPriority = 10
)

// TaskService orchestrates the task lifecycle: create, list, complete,
// delete. Every mutating operation takes the caller's Identity explicitly
// and defers the ownership decision to domain.CanModify.
type TaskService struct {
	tasks domain.TaskRepository
	now   func() time.Time
}

// NewTaskService creates a new TaskService.
func NewTaskService(tasks domain.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks, now: time.Now}
}

// ListOpen returns all open tasks, ascending by due date.
func (s *TaskService) ListOpen(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.ListByStatus(ctx, domain.StatusOpen)
}

// ListClosed returns all completed tasks, ascending by due date.
func (s *TaskService) ListClosed(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.ListByStatus(ctx, domain.StatusClosed)
}

// List returns up to limit tasks in insertion order.
func (s *TaskService) List(ctx context.Context, limit int) ([]domain.Task, error) {
	return s.tasks.List(ctx, limit, 0)
}

// Get returns a single task by id.
func (s *TaskService) Get(ctx context.Context, id int64) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

// Create validates the input and persists a new open task owned by the
// caller, with the posted date set to today.
func (s *TaskService) Create(ctx context.Context, identity domain.Identity, name string, dueDate time.Time, priority int) (*domain.Task, error) {
	verr := &domain.ValidationError{}
	if name == "" {
		verr.Add("name", "This field is required.")
	}
	if dueDate.IsZero() {
		verr.Add("due_date", "This field is required.")
	}
	if priority < minPriority || priority > maxPriority {
		verr.Add("priority", fmt.Sprintf("Priority must be between %d and %d.", minPriority, maxPriority))
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	task := &domain.Task{
		Name:       name,
		DueDate:    dueDate,
		Priority:   priority,
		Status:     domain.StatusOpen,
		UserID:     identity.UserID,
		PostedDate: s.now().UTC(),
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// Complete marks a task as closed. Completing an already-closed task
// succeeds; status is a flag, not a guarded transition.
func (s *TaskService) Complete(ctx context.Context, identity domain.Identity, taskID int64) error {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if !domain.CanModify(identity, task) {
		return domain.ErrForbidden
	}
	return s.tasks.UpdateStatus(ctx, taskID, domain.StatusClosed)
}

// Delete removes a task permanently, from any state.
func (s *TaskService) Delete(ctx context.Context, identity domain.Identity, taskID int64) error {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if !domain.CanModify(identity, task) {
		return domain.ErrForbidden
	}
	return s.tasks.Delete(ctx, taskID)
}
