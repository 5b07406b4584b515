package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"taskr/internal/domain"
)

// dateLayout is how calendar dates are stored in the tasks table.
const dateLayout = "2006-01-02"

// TaskRepository implements domain.TaskRepository using SQLite.
type TaskRepository struct {
	db *sql.DB
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (name, due_date, priority, status, user_id, posted_date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		task.Name, task.DueDate.Format(dateLayout), task.Priority,
		task.Status, task.UserID, task.PostedDate.Format(dateLayout),
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	task.ID = id
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT task_id, name, due_date, priority, status, user_id, posted_date
		 FROM tasks WHERE task_id = ?`, id,
	)

	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query task by id: %w", err)
	}
	return task, nil
}

// ListByStatus returns tasks with the given status, ascending by due date.
// Ties are broken by task_id, which preserves insertion order.
func (r *TaskRepository) ListByStatus(ctx context.Context, status int) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT task_id, name, due_date, priority, status, user_id, posted_date
		 FROM tasks WHERE status = ? ORDER BY due_date ASC, task_id ASC`, status,
	)
	if err != nil {
		return nil, fmt.Errorf("query tasks by status: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

func (r *TaskRepository) List(ctx context.Context, limit, offset int) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT task_id, name, due_date, priority, status, user_id, posted_date
		 FROM tasks ORDER BY task_id ASC LIMIT ? OFFSET ?`, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id int64, status int) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET status = ? WHERE task_id = ?", status, id,
	)
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE task_id = ?", id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	task := &domain.Task{}
	var dueDate, postedDate string
	if err := row.Scan(&task.ID, &task.Name, &dueDate, &task.Priority,
		&task.Status, &task.UserID, &postedDate); err != nil {
		return nil, err
	}

	var err error
	if task.DueDate, err = time.Parse(dateLayout, dueDate); err != nil {
		return nil, fmt.Errorf("parse due date: %w", err)
	}
	if task.PostedDate, err = time.Parse(dateLayout, postedDate); err != nil {
		return nil, fmt.Errorf("parse posted date: %w", err)
	}
	return task, nil
}

func collectTasks(rows *sql.Rows) ([]domain.Task, error) {
	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}
