package repository

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/taskline/notion-sync/internal/models"
)

func newTestRepos(t *testing.T) (*TaskRepository, *ProjectRepository) {
	t.Helper()
	db, err := InitDB(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewTaskRepository(db), NewProjectRepository(db)
}

func TestProjectRepositoryMembership(t *testing.T) {
	tasks, projects := newTestRepos(t)

	project, err := models.NewProject(models.CreateProjectRequest{Name: "Release"})
	if err != nil {
		t.Fatalf("NewProject failed: %v", err)
	}
	if err := projects.Create(project); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	first := makeTask(t, "first", time.Now().UTC())
	second := makeTask(t, "second", time.Now().UTC())
	for _, task := range []models.Task{first, second} {
		if err := tasks.Create(task); err != nil {
			t.Fatalf("create task: %v", err)
		}
	}

	if err := projects.AddTask(project.Id, first.Id); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if err := projects.AddTask(project.Id, second.Id); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	// Re-adding is a no-op, not an error.
	if err := projects.AddTask(project.Id, first.Id); err != nil {
		t.Fatalf("duplicate AddTask failed: %v", err)
	}

	got, err := projects.Get(project.Id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got.Tasks) != 2 || got.Tasks[0] != first.Id || got.Tasks[1] != second.Id {
		t.Errorf("membership order wrong: %v", got.Tasks)
	}

	members, err := projects.Tasks(project.Id)
	if err != nil {
		t.Fatalf("Tasks failed: %v", err)
	}
	if len(members) != 2 || members[0].Title != "first" {
		t.Errorf("member tasks wrong: %+v", members)
	}
}

func TestProjectRepositoryGetUnknown(t *testing.T) {
	_, projects := newTestRepos(t)

	if _, err := projects.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
