package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/taskline/notion-sync/internal/client"
	"github.com/taskline/notion-sync/internal/models"
)

// ErrNotConfigured reports a sync request made without Notion credentials.
// It is distinct from a push failure so callers can prompt for setup instead
// of retrying.
var ErrNotConfigured = errors.New("notion is not configured")

// TaskStore is the durable task mapping the engine pushes from. Satisfied by
// repository.TaskRepository; tests inject a fake.
type TaskStore interface {
	Create(task models.Task) error
	Get(id string) (models.Task, error)
	List() ([]models.Task, error)
	Update(task models.Task) error
	Delete(id string) error
	SetRemoteID(id, remoteID string) (bool, error)
	ClearRemoteID(id string) error
	Count() (int, error)
	CountSynced() (int, error)
}

type PushOutcome string

const (
	PushNotConfigured PushOutcome = "not_configured"
	PushAlreadySynced PushOutcome = "already_synced"
	PushSynced        PushOutcome = "synced"
	PushFailed        PushOutcome = "failed"
)

type PushResult struct {
	Outcome  PushOutcome
	RemoteID string
	Err      error
}

const defaultPushTimeout = 15 * time.Second

// SyncService pushes local tasks into Notion. Local state is the source of
// truth: a push failure is reported but never blocks or rolls back the local
// write that triggered it. Per task, pushes are serialized by a lock, and
// the store's compare-and-set on remote_id is the cross-process backstop.
type SyncService struct {
	store       TaskStore
	pages       client.PageWriter // nil when Notion is not configured
	pushTimeout time.Duration

	mu        sync.Mutex
	taskLocks map[string]*sync.Mutex
}

func NewSyncService(store TaskStore, pages client.PageWriter) *SyncService {
	return &SyncService{
		store:       store,
		pages:       pages,
		pushTimeout: defaultPushTimeout,
		taskLocks:   make(map[string]*sync.Mutex),
	}
}

func (s *SyncService) Configured() bool {
	return s.pages != nil
}

func (s *SyncService) lockTask(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.taskLocks[id]
	if !ok {
		l = &sync.Mutex{}
		s.taskLocks[id] = l
	}
	return l
}

// PushOne pushes a single task to Notion. It never re-pushes a task whose
// remote_id is already set: pushing creates a new page, so without this
// check every create-then-edit sequence would duplicate pages. Re-pushing
// after an edit is ForcePush, which explicitly starts a new sync epoch.
func (s *SyncService) PushOne(ctx context.Context, task models.Task) PushResult {
	if !s.Configured() {
		return PushResult{Outcome: PushNotConfigured}
	}

	l := s.lockTask(task.Id)
	l.Lock()
	defer l.Unlock()

	return s.push(ctx, task.Id)
}

// ForcePush starts a new sync epoch for the task: remote_id is cleared and a
// normal push follows, yielding a new page id. The clear happens even when
// Notion is unconfigured, since the local edit has invalidated whatever page
// the old epoch produced.
func (s *SyncService) ForcePush(ctx context.Context, task models.Task) PushResult {
	l := s.lockTask(task.Id)
	l.Lock()
	defer l.Unlock()

	if err := s.store.ClearRemoteID(task.Id); err != nil {
		return PushResult{Outcome: PushFailed, Err: fmt.Errorf("clear remote id: %w", err)}
	}

	if !s.Configured() {
		return PushResult{Outcome: PushNotConfigured}
	}

	return s.push(ctx, task.Id)
}

// push runs one adapter call. Caller holds the task lock.
func (s *SyncService) push(ctx context.Context, id string) PushResult {
	task, err := s.store.Get(id)
	if err != nil {
		return PushResult{Outcome: PushFailed, Err: fmt.Errorf("load task: %w", err)}
	}

	if task.Synced() {
		return PushResult{Outcome: PushAlreadySynced, RemoteID: *task.RemoteID}
	}

	ctx, cancel := context.WithTimeout(ctx, s.pushTimeout)
	defer cancel()

	remoteID, err := s.pages.CreatePage(ctx, task)
	if err != nil {
		// Includes timeouts: an unconfirmed outcome is never recorded
		// as success, so a later retry stays safe.
		return PushResult{Outcome: PushFailed, Err: err}
	}

	claimed, err := s.store.SetRemoteID(task.Id, remoteID)
	if err != nil {
		return PushResult{Outcome: PushFailed, Err: fmt.Errorf("record remote id: %w", err)}
	}
	if !claimed {
		// Another writer won the compare-and-set; its id stands.
		current, err := s.store.Get(task.Id)
		if err == nil && current.Synced() {
			return PushResult{Outcome: PushAlreadySynced, RemoteID: *current.RemoteID}
		}
		return PushResult{Outcome: PushAlreadySynced}
	}

	return PushResult{Outcome: PushSynced, RemoteID: remoteID}
}

// PushAll pushes every unsynced task, one at a time; a failed task never
// aborts the batch. Returns ErrNotConfigured rather than a silent no-op
// when credentials are absent.
func (s *SyncService) PushAll(ctx context.Context) (models.SyncSummary, error) {
	if !s.Configured() {
		return models.SyncSummary{}, ErrNotConfigured
	}

	tasks, err := s.store.List()
	if err != nil {
		return models.SyncSummary{}, fmt.Errorf("list tasks: %w", err)
	}

	var summary models.SyncSummary
	for _, task := range tasks {
		result := s.PushOne(ctx, task)
		switch result.Outcome {
		case PushAlreadySynced:
			summary.Skipped++
		case PushSynced:
			summary.Attempted++
			summary.Succeeded++
		case PushFailed:
			summary.Attempted++
			summary.Failed++
			fmt.Printf("❌ push failed for task %s: %v\n", task.Id, result.Err)
		}
	}

	return summary, nil
}

// Status re-derives the aggregate sync view from the store on every call.
// It is read-only and safe to poll.
func (s *SyncService) Status() (models.SyncStatus, error) {
	total, err := s.store.Count()
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("count tasks: %w", err)
	}
	synced, err := s.store.CountSynced()
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("count synced tasks: %w", err)
	}

	status := models.SyncReady
	if !s.Configured() {
		status = models.SyncNotConfigured
	}

	return models.SyncStatus{
		TotalTasks:  total,
		SyncedTasks: synced,
		Status:      status,
	}, nil
}
