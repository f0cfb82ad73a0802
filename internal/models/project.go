package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a local-only grouping of tasks. Projects never sync to Notion.
type Project struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Tasks       []string  `json:"tasks"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func NewProject(req CreateProjectRequest) (Project, error) {
	if req.Name == "" {
		return Project{}, &ValidationError{Field: "name", Reason: "name must not be empty"}
	}
	return Project{
		Id:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Tasks:       []string{},
		CreatedAt:   time.Now().UTC(),
	}, nil
}
