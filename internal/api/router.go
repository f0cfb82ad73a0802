package api

import (
	"database/sql"
	"net/http"

	"github.com/taskline/notion-sync/internal/api/handlers"
	"github.com/taskline/notion-sync/internal/client"
	"github.com/taskline/notion-sync/internal/client/notion"
	"github.com/taskline/notion-sync/internal/config"
	"github.com/taskline/notion-sync/internal/repository"
	"github.com/taskline/notion-sync/internal/service"
)

func SetupRouter(db *sql.DB, cfg config.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// A missing credential pair leaves pages nil: the engine then reports
	// not_configured instead of attempting network calls.
	var pages client.PageWriter
	if cfg.NotionConfigured() {
		pages = notion.NewClient(cfg.NotionToken, cfg.NotionDatabaseID)
	}

	taskRepo := repository.NewTaskRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	syncService := service.NewSyncService(taskRepo, pages)
	taskService := service.NewTaskService(taskRepo, syncService)
	projectService := service.NewProjectService(projectRepo, taskRepo)

	taskHandler := handlers.NewTaskHandler(taskService)
	projectHandler := handlers.NewProjectHandler(projectService)
	syncHandler := handlers.NewSyncHandler(syncService)
	healthHandler := handlers.NewHealthHandler(cfg)

	mux.HandleFunc("GET /api/{$}", healthHandler.Root)
	mux.HandleFunc("GET /api/health", healthHandler.Health)

	mux.HandleFunc("POST /api/tasks", taskHandler.CreateTask)
	mux.HandleFunc("GET /api/tasks", taskHandler.ListTasks)
	mux.HandleFunc("GET /api/tasks/{id}", taskHandler.GetTask)
	mux.HandleFunc("PUT /api/tasks/{id}", taskHandler.UpdateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", taskHandler.DeleteTask)

	mux.HandleFunc("POST /api/projects", projectHandler.CreateProject)
	mux.HandleFunc("GET /api/projects", projectHandler.ListProjects)
	mux.HandleFunc("POST /api/projects/{id}/tasks", projectHandler.AddTask)
	mux.HandleFunc("GET /api/projects/{id}/tasks", projectHandler.GetProjectTasks)

	mux.HandleFunc("POST /api/sync", syncHandler.Sync)
	mux.HandleFunc("GET /api/sync/status", syncHandler.Status)

	return mux
}
