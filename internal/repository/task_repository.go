package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/taskline/notion-sync/internal/models"
)

var ErrNotFound = errors.New("not found")

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(task models.Task) error {
	query := `
		INSERT INTO tasks (id, title, description, status, priority, due_date, remote_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		task.Id,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		task.DueDate,
		task.RemoteID,
		task.CreatedAt,
		task.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

func (r *TaskRepository) Get(id string) (models.Task, error) {
	query := `
		SELECT id, title, description, status, priority, due_date, remote_id, created_at, updated_at
		FROM tasks WHERE id = ?
	`

	task, err := scanTask(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrNotFound
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("get task: %w", err)
	}

	return task, nil
}

// List returns every task, newest created first.
func (r *TaskRepository) List() ([]models.Task, error) {
	query := `
		SELECT id, title, description, status, priority, due_date, remote_id, created_at, updated_at
		FROM tasks ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// Update persists the task's mutable fields. The sync epoch (remote_id) is
// managed separately through SetRemoteID/ClearRemoteID.
func (r *TaskRepository) Update(task models.Task) error {
	query := `
		UPDATE tasks SET title = ?, description = ?, status = ?, priority = ?, due_date = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		task.DueDate,
		task.UpdatedAt,
		task.Id,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}

	return requireRow(result)
}

func (r *TaskRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if _, err := r.db.Exec(`DELETE FROM project_tasks WHERE task_id = ?`, id); err != nil {
		return fmt.Errorf("delete task memberships: %w", err)
	}
	return requireRow(result)
}

// SetRemoteID records a successful push. It is a compare-and-set: the row is
// claimed only while remote_id is still unset, so two concurrent pushes of
// the same task cannot both record an id. Returns whether this call claimed
// the row.
func (r *TaskRepository) SetRemoteID(id, remoteID string) (bool, error) {
	query := `UPDATE tasks SET remote_id = ? WHERE id = ? AND remote_id IS NULL`

	result, err := r.db.Exec(query, remoteID, id)
	if err != nil {
		return false, fmt.Errorf("set remote id: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("set remote id: %w", err)
	}
	return n == 1, nil
}

// ClearRemoteID starts a new sync epoch for the task.
func (r *TaskRepository) ClearRemoteID(id string) error {
	result, err := r.db.Exec(`UPDATE tasks SET remote_id = NULL WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("clear remote id: %w", err)
	}
	return requireRow(result)
}

func (r *TaskRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return n, nil
}

func (r *TaskRepository) CountSynced() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM tasks WHERE remote_id IS NOT NULL`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count synced tasks: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	var dueDate, remoteID sql.NullString
	err := row.Scan(
		&t.Id,
		&t.Title,
		&t.Description,
		&t.Status,
		&t.Priority,
		&dueDate,
		&remoteID,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return models.Task{}, err
	}
	if dueDate.Valid {
		t.DueDate = &dueDate.String
	}
	if remoteID.Valid {
		t.RemoteID = &remoteID.String
	}
	return t, nil
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
