package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/taskline/notion-sync/internal/models"
	"github.com/taskline/notion-sync/internal/repository"
)

// fakeStore is an in-memory TaskStore.
type fakeStore struct {
	mu    sync.Mutex
	tasks map[string]models.Task
	seq   map[string]int
	next  int

	createErr error
	listErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tasks: make(map[string]models.Task),
		seq:   make(map[string]int),
	}
}

func (f *fakeStore) Create(task models.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.tasks[task.Id] = task
	f.next++
	f.seq[task.Id] = f.next
	return nil
}

func (f *fakeStore) Get(id string) (models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[id]
	if !ok {
		return models.Task{}, repository.ErrNotFound
	}
	return task, nil
}

func (f *fakeStore) List() ([]models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	tasks := make([]models.Task, 0, len(f.tasks))
	for _, t := range f.tasks {
		tasks = append(tasks, t)
	}
	// Newest created first, like the real repository.
	sort.Slice(tasks, func(i, j int) bool {
		return f.seq[tasks[i].Id] > f.seq[tasks[j].Id]
	})
	return tasks, nil
}

func (f *fakeStore) Update(task models.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.tasks[task.Id]
	if !ok {
		return repository.ErrNotFound
	}
	task.RemoteID = existing.RemoteID
	f.tasks[task.Id] = task
	return nil
}

func (f *fakeStore) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.tasks, id)
	return nil
}

func (f *fakeStore) SetRemoteID(id, remoteID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[id]
	if !ok {
		return false, repository.ErrNotFound
	}
	if task.RemoteID != nil {
		return false, nil
	}
	task.RemoteID = &remoteID
	f.tasks[id] = task
	return true, nil
}

func (f *fakeStore) ClearRemoteID(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[id]
	if !ok {
		return repository.ErrNotFound
	}
	task.RemoteID = nil
	f.tasks[id] = task
	return nil
}

func (f *fakeStore) Count() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tasks), nil
}

func (f *fakeStore) CountSynced() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, t := range f.tasks {
		if t.RemoteID != nil {
			n++
		}
	}
	return n, nil
}

// fakePageWriter records every CreatePage call and hands out sequential ids.
type fakePageWriter struct {
	mu    sync.Mutex
	calls int
	// failFor makes pushes of specific task ids fail.
	failFor map[string]error
	err     error
}

func newFakePageWriter() *fakePageWriter {
	return &fakePageWriter{failFor: make(map[string]error)}
}

func (f *fakePageWriter) CreatePage(ctx context.Context, task models.Task) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if err, ok := f.failFor[task.Id]; ok {
		return "", err
	}
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("page-%d", f.calls), nil
}

func (f *fakePageWriter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func mustCreate(store *fakeStore, title string) models.Task {
	task, err := models.NewTask(models.CreateTaskRequest{Title: title})
	if err != nil {
		panic(err)
	}
	if err := store.Create(task); err != nil {
		panic(err)
	}
	return task
}
