package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/consumables-tracker/internal/auth"
	"github.com/rogerio-castellano/consumables-tracker/internal/cache"
	"github.com/rogerio-castellano/consumables-tracker/internal/config"
	"github.com/rogerio-castellano/consumables-tracker/internal/db"
	"github.com/rogerio-castellano/consumables-tracker/internal/engine"
	api "github.com/rogerio-castellano/consumables-tracker/internal/http"
	"github.com/rogerio-castellano/consumables-tracker/internal/http/handlers"
	rl "github.com/rogerio-castellano/consumables-tracker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/consumables-tracker/internal/notify"
	"github.com/rogerio-castellano/consumables-tracker/internal/repo"
	"github.com/rogerio-castellano/consumables-tracker/internal/scheduler"
)

// @title Consumables Tracker API
// @version 1.0
// @description REST API for tracking consumable inventory and reminder alerts.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Could not load configuration:", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	productRepo := repo.NewPostgresProductRepository(database)
	reminderRepo := repo.NewPostgresReminderRepository(database)
	handlers.SetProductRepo(productRepo)
	handlers.SetReminderRepo(reminderRepo)
	handlers.SetDashboardRepo(repo.NewPostgresDashboardRepository(database))

	// The dashboard cache is optional: without Redis the counts are simply
	// recomputed on every request.
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Printf("⚠️ Redis unavailable, dashboard cache disabled: %v", err)
		} else {
			defer rdb.Close()
			handlers.SetDashboardCache(cache.NewDashboardCache(rdb))
		}
	}

	authManager := auth.NewManager(cfg.Auth.JWTSecret)
	handlers.SetAuth(authManager, cfg.Auth.Username, cfg.Auth.PasswordHash)
	api.SetAuthManager(authManager)

	notifier := notify.NewSMTPNotifier(cfg.SMTP)
	eng := engine.New(productRepo, reminderRepo, notifier, cfg.Reminder.Recipient)

	sched, err := scheduler.New(cfg.Reminder.Schedule, eng.Run)
	if err != nil {
		log.Fatal("❌ Invalid reminder schedule:", err)
	}
	sched.Start()
	defer sched.Stop()

	go rl.StartVisitorCleanupLoop()

	r := api.NewRouter()
	log.Println("✅ Server running on", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal(err)
	}
}
