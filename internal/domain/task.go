package domain

import (
	"context"
	"time"
)

// Task status values. Stored as an integer flag, not a richer enum.
const (
	StatusClosed = 0
	StatusOpen   = 1
)

// Task is a to-do item owned by exactly one user.
type Task struct {
	ID         int64
	Name       string
	DueDate    time.Time
	Priority   int
	Status     int
	UserID     int64
	PostedDate time.Time
}

// TaskRepository defines persistence operations for tasks.
//
// ListByStatus returns tasks ordered ascending by due date, ties broken
// by insertion order.
type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, id int64) (*Task, error)
	ListByStatus(ctx context.Context, status int) ([]Task, error)
	List(ctx context.Context, limit, offset int) ([]Task, error)
	UpdateStatus(ctx context.Context, id int64, status int) error
	Delete(ctx context.Context, id int64) error
}
