package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskr/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func createTestUser(t *testing.T, db interface {
	Users() domain.UserRepository
}, email string) int64 {
	t.Helper()
	user := &domain.User{Name: "Task Owner", Email: email, PasswordHash: "hash"}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user.ID
}

func TestTaskRepository_Create(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db, "owner@example.com")
	ctx := context.Background()

	task := &domain.Task{
		Name:       "Go to the bank",
		DueDate:    date(2026, time.September, 1),
		Priority:   1,
		Status:     domain.StatusOpen,
		UserID:     userID,
		PostedDate: date(2026, time.August, 28),
	}

	if err := db.Tasks().Create(ctx, task); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.ID == 0 {
		t.Fatal("expected task ID to be set after create")
	}

	got, err := db.Tasks().GetByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Go to the bank" || got.Priority != 1 || got.UserID != userID {
		t.Fatalf("unexpected task: %+v", got)
	}
	if !got.DueDate.Equal(date(2026, time.September, 1)) {
		t.Fatalf("due date round trip failed: %v", got.DueDate)
	}
	if !got.PostedDate.Equal(date(2026, time.August, 28)) {
		t.Fatalf("posted date round trip failed: %v", got.PostedDate)
	}
}

func TestTaskRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Tasks().GetByID(context.Background(), 42)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTaskRepository_ListByStatus_OrderAndFilter(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db, "order@example.com")
	ctx := context.Background()

	// Insert out of due-date order, with two tasks sharing a due date to
	// exercise the insertion-order tie-break.
	dues := []time.Time{
		date(2026, time.March, 1),
		date(2026, time.January, 15),
		date(2026, time.March, 1),
		date(2026, time.February, 10),
	}
	for i, due := range dues {
		task := &domain.Task{
			Name:       "task",
			DueDate:    due,
			Priority:   i + 1,
			Status:     domain.StatusOpen,
			UserID:     userID,
			PostedDate: date(2026, time.January, 1),
		}
		if err := db.Tasks().Create(ctx, task); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	// Close the second task; it must drop out of the open list.
	if err := db.Tasks().UpdateStatus(ctx, 2, domain.StatusClosed); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	open, err := db.Tasks().ListByStatus(ctx, domain.StatusOpen)
	if err != nil {
		t.Fatalf("ListByStatus open: %v", err)
	}
	wantOrder := []int64{4, 1, 3} // Feb 10, then the two Mar 1 tasks in insertion order
	if len(open) != len(wantOrder) {
		t.Fatalf("expected %d open tasks, got %d", len(wantOrder), len(open))
	}
	for i, want := range wantOrder {
		if open[i].ID != want {
			t.Fatalf("open[%d]: expected task %d, got %d", i, want, open[i].ID)
		}
		if open[i].Status != domain.StatusOpen {
			t.Fatalf("open list contains a closed task: %+v", open[i])
		}
	}

	closed, err := db.Tasks().ListByStatus(ctx, domain.StatusClosed)
	if err != nil {
		t.Fatalf("ListByStatus closed: %v", err)
	}
	if len(closed) != 1 || closed[0].ID != 2 {
		t.Fatalf("unexpected closed list: %+v", closed)
	}
}

func TestTaskRepository_List_Limit(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db, "limit@example.com")
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		task := &domain.Task{
			Name:       "task",
			DueDate:    date(2026, time.May, 1),
			Priority:   1,
			Status:     domain.StatusOpen,
			UserID:     userID,
			PostedDate: date(2026, time.April, 1),
		}
		if err := db.Tasks().Create(ctx, task); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	tasks, err := db.Tasks().List(ctx, 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 10 {
		t.Fatalf("expected 10 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != 1 {
		t.Fatalf("expected insertion order, first task id %d", tasks[0].ID)
	}
}

func TestTaskRepository_UpdateStatus_NotFound(t *testing.T) {
	db := newTestDB(t)

	err := db.Tasks().UpdateStatus(context.Background(), 7, domain.StatusClosed)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTaskRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db, "delete@example.com")
	ctx := context.Background()

	task := &domain.Task{
		Name:       "doomed",
		DueDate:    date(2026, time.June, 1),
		Priority:   5,
		Status:     domain.StatusOpen,
		UserID:     userID,
		PostedDate: date(2026, time.May, 1),
	}
	if err := db.Tasks().Create(ctx, task); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := db.Tasks().Delete(ctx, task.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := db.Tasks().GetByID(ctx, task.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting again observes the missing row.
	if err := db.Tasks().Delete(ctx, task.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
