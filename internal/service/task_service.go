package service

import (
	"context"
	"fmt"

	"github.com/taskline/notion-sync/internal/models"
)

// TaskService owns the CRUD flows and their sync triggers: create pushes the
// new task, update forces a re-push (new sync epoch), delete is local-only
// and never touches Notion.
type TaskService struct {
	store TaskStore
	sync  *SyncService
}

func NewTaskService(store TaskStore, sync *SyncService) *TaskService {
	return &TaskService{
		store: store,
		sync:  sync,
	}
}

// CreateTask validates, persists, then pushes. The push outcome rides along
// with the task; a remote failure never rolls back the local write.
func (s *TaskService) CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, PushResult, error) {
	task, err := models.NewTask(req)
	if err != nil {
		return models.Task{}, PushResult{}, err
	}

	if err := s.store.Create(task); err != nil {
		return models.Task{}, PushResult{}, fmt.Errorf("persist task: %w", err)
	}

	result := s.sync.PushOne(ctx, task)
	if result.Outcome == PushSynced {
		task.RemoteID = &result.RemoteID
	}

	return task, result, nil
}

// UpdateTask applies a partial update, persists it, then forces a re-push so
// the remote copy reflects the edit. The returned task carries whatever
// remote_id the new epoch produced (nil when the push did not succeed).
func (s *TaskService) UpdateTask(ctx context.Context, id string, req models.UpdateTaskRequest) (models.Task, PushResult, error) {
	task, err := s.store.Get(id)
	if err != nil {
		return models.Task{}, PushResult{}, err
	}

	if err := req.Apply(&task); err != nil {
		return models.Task{}, PushResult{}, err
	}

	if err := s.store.Update(task); err != nil {
		return models.Task{}, PushResult{}, fmt.Errorf("persist task update: %w", err)
	}

	result := s.sync.ForcePush(ctx, task)
	task.RemoteID = nil
	if result.RemoteID != "" {
		task.RemoteID = &result.RemoteID
	}

	return task, result, nil
}

func (s *TaskService) GetTask(id string) (models.Task, error) {
	return s.store.Get(id)
}

func (s *TaskService) ListTasks() ([]models.Task, error) {
	return s.store.List()
}

// DeleteTask removes the task locally. The Notion page, if any, is left in
// place: delete propagation is out of scope.
func (s *TaskService) DeleteTask(id string) error {
	return s.store.Delete(id)
}
