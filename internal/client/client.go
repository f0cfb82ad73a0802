package client

import (
	"context"

	"github.com/taskline/notion-sync/internal/models"
)

// PageWriter is the narrow adapter surface the sync engine depends on: turn
// a task into a remote document and return its identifier. Implementations
// perform no retries; retry policy belongs to the engine's callers.
type PageWriter interface {
	CreatePage(ctx context.Context, task models.Task) (string, error)
}
