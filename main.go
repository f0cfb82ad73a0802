package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/taskline/notion-sync/internal/api"
	"github.com/taskline/notion-sync/internal/config"
	"github.com/taskline/notion-sync/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading configuration from environment")
	}

	cfg := config.Load()

	db, err := repository.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatal("failed to initialize database: ", err)
	}
	defer db.Close()

	if cfg.NotionConfigured() {
		fmt.Println("✅ Notion sync configured")
	} else {
		fmt.Println("⚠️  Notion not configured — tasks are stored locally only")
	}

	router := api.SetupRouter(db, cfg)

	fmt.Printf("🚀 Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("📝 Endpoints:")
	fmt.Println("   GET/POST   /api/tasks")
	fmt.Println("   PUT/DELETE /api/tasks/{id}")
	fmt.Println("   POST /api/sync - push local tasks to Notion")
	fmt.Println("   GET  /api/sync/status")

	if err := http.ListenAndServe(":"+cfg.Port, api.CORS(router)); err != nil {
		log.Fatal("server error: ", err)
	}
}
