package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	_ "gymplan/docs" // swagger docs

	"gymplan/internal/cache"
	"gymplan/internal/config"
	"gymplan/internal/db"
	"gymplan/internal/handler"
	"gymplan/internal/model"
	"gymplan/internal/planner"
	"gymplan/internal/repository"
	"gymplan/internal/router"
	"gymplan/internal/service"
	"gymplan/internal/session"
)

// @title Gymplan API
// @version 1.0
// @description Fitness profile service with session authentication and AI-generated workout plans.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()
	ctx := context.Background()

	e := echo.New()
	e.Use(echomw.RequestID())

	// Initialize the selected store
	var (
		accountRepo repository.AccountRepository
		profileRepo repository.ProfileRepository
	)
	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, err := db.NewMongo(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("database init: %v", err)
		}
		mongoDB := client.Database(cfg.MongoDatabase)
		if err := repository.EnsureMongoIndexes(ctx, mongoDB); err != nil {
			log.Fatalf("ensure indexes: %v", err)
		}
		accountRepo = repository.NewMongoAccountRepository(mongoDB)
		profileRepo = repository.NewMongoProfileRepository(mongoDB)
	case config.DriverMySQL:
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			log.Fatalf("database init: %v", err)
		}

		// Drop tables if RESET_DB environment variable is set
		if os.Getenv("RESET_DB") == "true" {
			log.Println("RESET_DB=true detected, dropping all tables...")
			for _, table := range []interface{}{&model.Profile{}, &model.Account{}} {
				if err := gormDB.Migrator().DropTable(table); err != nil {
					log.Printf("Warning: Failed to drop table (may not exist): %v", err)
				}
			}
			log.Println("Tables dropped")
		}

		if err := gormDB.AutoMigrate(&model.Account{}, &model.Profile{}); err != nil {
			log.Fatalf("auto-migrate: %v", err)
		}
		accountRepo = repository.NewMySQLAccountRepository(gormDB)
		profileRepo = repository.NewMySQLProfileRepository(gormDB)
	default:
		log.Fatalf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	sessionStore := session.NewRedisStore(redisClient)
	cacheClient := cache.New(redisClient)

	generator := planner.NewGeminiClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel)

	// Initialize services
	profileService := service.NewProfileService(profileRepo, generator, cacheClient)
	authService := service.NewAuthService(accountRepo, sessionStore)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, profileService, cfg.SecureCookies())
	profileHandler := handler.NewProfileHandler(profileService)

	// Register routes
	router.Register(e, cfg, authHandler, profileHandler, sessionStore)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
