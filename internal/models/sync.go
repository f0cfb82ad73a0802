package models

// SyncStatus is the aggregate sync view, re-derived from the store on every
// request. Status is a capability flag: "ready" when Notion credentials are
// present, "not_configured" otherwise.
type SyncStatus struct {
	TotalTasks  int    `json:"total_tasks"`
	SyncedTasks int    `json:"synced_tasks"`
	Status      string `json:"status"`
}

const (
	SyncReady         = "ready"
	SyncNotConfigured = "not_configured"
)

// SyncSummary reports the outcome of a batch push. Skipped counts tasks that
// already carried a remote id and were not re-pushed.
type SyncSummary struct {
	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}
