package config

import "os"

// Config is the environment-provided configuration bundle. The Notion pair
// (token + database id) is optional: when either is missing the service runs
// in local-only mode and sync endpoints report not_configured.
type Config struct {
	NotionToken      string
	NotionDatabaseID string
	DBPath           string
	Port             string
}

func Load() Config {
	cfg := Config{
		NotionToken:      os.Getenv("NOTION_TOKEN"),
		NotionDatabaseID: os.Getenv("NOTION_DATABASE_ID"),
		DBPath:           os.Getenv("TASKS_DB_PATH"),
		Port:             os.Getenv("PORT"),
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "./tasks.db"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}

func (c Config) NotionConfigured() bool {
	return c.NotionToken != "" && c.NotionDatabaseID != ""
}
