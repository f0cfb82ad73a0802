package service

import (
	"fmt"

	"github.com/taskline/notion-sync/internal/models"
	"github.com/taskline/notion-sync/internal/repository"
)

// ProjectService manages local-only task groupings. Nothing here reaches
// the remote store.
type ProjectService struct {
	projects *repository.ProjectRepository
	tasks    TaskStore
}

func NewProjectService(projects *repository.ProjectRepository, tasks TaskStore) *ProjectService {
	return &ProjectService{
		projects: projects,
		tasks:    tasks,
	}
}

func (s *ProjectService) CreateProject(req models.CreateProjectRequest) (models.Project, error) {
	project, err := models.NewProject(req)
	if err != nil {
		return models.Project{}, err
	}

	if err := s.projects.Create(project); err != nil {
		return models.Project{}, fmt.Errorf("persist project: %w", err)
	}

	return project, nil
}

func (s *ProjectService) ListProjects() ([]models.Project, error) {
	return s.projects.List()
}

// AddTask attaches an existing task to an existing project. Both sides are
// checked so a dangling membership row can't be created.
func (s *ProjectService) AddTask(projectID, taskID string) (models.Project, error) {
	if _, err := s.projects.Get(projectID); err != nil {
		return models.Project{}, err
	}
	if _, err := s.tasks.Get(taskID); err != nil {
		return models.Project{}, err
	}

	if err := s.projects.AddTask(projectID, taskID); err != nil {
		return models.Project{}, err
	}

	return s.projects.Get(projectID)
}

// ProjectTasks returns the member tasks of a project in membership order.
func (s *ProjectService) ProjectTasks(projectID string) ([]models.Task, error) {
	if _, err := s.projects.Get(projectID); err != nil {
		return nil, err
	}
	return s.projects.Tasks(projectID)
}
