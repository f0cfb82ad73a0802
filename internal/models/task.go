package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusTodo       = "Todo"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"

	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Task is the unit of work. RemoteID is nil until a push to Notion succeeds
// and is cleared again whenever an edit starts a new sync epoch.
type Task struct {
	Id          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	DueDate     *string   `json:"due_date,omitempty"`
	RemoteID    *string   `json:"remote_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t Task) Synced() bool {
	return t.RemoteID != nil && *t.RemoteID != ""
}

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
}

// UpdateTaskRequest carries a partial field set; nil means "leave unchanged".
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
}

func ValidStatus(s string) bool {
	return s == StatusTodo || s == StatusInProgress || s == StatusDone
}

func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

func validDueDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// NewTask validates a creation request and materializes a Task with a fresh
// id and timestamps. Defaults mirror the remote schema: Todo / Medium.
func NewTask(req CreateTaskRequest) (Task, error) {
	if req.Title == "" {
		return Task{}, &ValidationError{Field: "title", Reason: "title must not be empty"}
	}
	if req.Status == "" {
		req.Status = StatusTodo
	}
	if !ValidStatus(req.Status) {
		return Task{}, &ValidationError{Field: "status", Reason: "status must be one of Todo, In Progress, Done"}
	}
	if req.Priority == "" {
		req.Priority = PriorityMedium
	}
	if !ValidPriority(req.Priority) {
		return Task{}, &ValidationError{Field: "priority", Reason: "priority must be one of Low, Medium, High"}
	}
	if req.DueDate != nil && !validDueDate(*req.DueDate) {
		return Task{}, &ValidationError{Field: "due_date", Reason: "due_date must be YYYY-MM-DD"}
	}

	now := time.Now().UTC()
	return Task{
		Id:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Apply folds a partial update into the task and advances UpdatedAt.
// The task's id, remote id and created_at are never touched here.
func (req UpdateTaskRequest) Apply(t *Task) error {
	if req.Title != nil {
		if *req.Title == "" {
			return &ValidationError{Field: "title", Reason: "title must not be empty"}
		}
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Status != nil {
		if !ValidStatus(*req.Status) {
			return &ValidationError{Field: "status", Reason: "status must be one of Todo, In Progress, Done"}
		}
		t.Status = *req.Status
	}
	if req.Priority != nil {
		if !ValidPriority(*req.Priority) {
			return &ValidationError{Field: "priority", Reason: "priority must be one of Low, Medium, High"}
		}
		t.Priority = *req.Priority
	}
	if req.DueDate != nil {
		if !validDueDate(*req.DueDate) {
			return &ValidationError{Field: "due_date", Reason: "due_date must be YYYY-MM-DD"}
		}
		t.DueDate = req.DueDate
	}
	t.UpdatedAt = time.Now().UTC()
	return nil
}
