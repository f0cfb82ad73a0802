package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/taskline/notion-sync/internal/models"
)

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(project models.Project) error {
	query := `
		INSERT INTO projects (id, name, description, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		project.Id,
		project.Name,
		project.Description,
		project.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	return nil
}

func (r *ProjectRepository) Get(id string) (models.Project, error) {
	query := `SELECT id, name, description, created_at FROM projects WHERE id = ?`

	var p models.Project
	err := r.db.QueryRow(query, id).Scan(&p.Id, &p.Name, &p.Description, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, ErrNotFound
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("get project: %w", err)
	}

	p.Tasks, err = r.taskIDs(id)
	if err != nil {
		return models.Project{}, err
	}
	return p, nil
}

func (r *ProjectRepository) List() ([]models.Project, error) {
	query := `SELECT id, name, description, created_at FROM projects ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.Id, &p.Name, &p.Description, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range projects {
		projects[i].Tasks, err = r.taskIDs(projects[i].Id)
		if err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (r *ProjectRepository) AddTask(projectID, taskID string) error {
	query := `
		INSERT OR IGNORE INTO project_tasks (project_id, task_id, position)
		VALUES (?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM project_tasks WHERE project_id = ?))
	`
	if _, err := r.db.Exec(query, projectID, taskID, projectID); err != nil {
		return fmt.Errorf("add task to project: %w", err)
	}
	return nil
}

// Tasks returns the project's member tasks in membership order.
func (r *ProjectRepository) Tasks(projectID string) ([]models.Task, error) {
	query := `
		SELECT t.id, t.title, t.description, t.status, t.priority, t.due_date, t.remote_id, t.created_at, t.updated_at
		FROM tasks t
		JOIN project_tasks pt ON pt.task_id = t.id
		WHERE pt.project_id = ?
		ORDER BY pt.position
	`

	rows, err := r.db.Query(query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list project tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *ProjectRepository) taskIDs(projectID string) ([]string, error) {
	rows, err := r.db.Query(`SELECT task_id FROM project_tasks WHERE project_id = ? ORDER BY position`, projectID)
	if err != nil {
		return nil, fmt.Errorf("get project task ids: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan project task id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
