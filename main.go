package main

import (
	"fmt"
	"log/slog"
	"os"

	"goldentouch-backend/config"
	"goldentouch-backend/monitoring"
	"goldentouch-backend/routes"
	"goldentouch-backend/services"
	"goldentouch-backend/session"
	"goldentouch-backend/store"
	"goldentouch-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found")
	}
	utils.SetupLogging()

	db, err := config.ConnectDB()
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	if err := config.Migrate(db); err != nil {
		slog.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	st := store.New(db)

	if os.Getenv("SEED_DEMO_DATA") != "false" {
		if err := config.SeedDemoData(st); err != nil {
			slog.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
	}

	sessionCfg, err := config.SessionConfig()
	if err != nil {
		slog.Error("failed to build session config", "error", err)
		os.Exit(1)
	}
	sess := session.New(sessionCfg, st)

	monitoring.Init()

	greeter := services.NewGreetingService(st)
	greeter.StartScheduler()

	r := routes.SetupRouter(routes.Dependencies{Store: st, Session: sess})
	printRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	slog.Info("starting server", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
