package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"

	"gymplan/internal/config"
	"gymplan/internal/db"
	apperrors "gymplan/internal/errors"
	"gymplan/internal/model"
	"gymplan/internal/repository"
)

// Demo credentials seeded for local development.
const (
	demoUsername = "demo"
	demoEmail    = "demo@gymplan.local"
	demoPassword = "demo-password"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	ctx := context.Background()

	var (
		accountRepo repository.AccountRepository
		profileRepo repository.ProfileRepository
	)
	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, err := db.NewMongo(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		mongoDB := client.Database(cfg.MongoDatabase)
		if err := repository.EnsureMongoIndexes(ctx, mongoDB); err != nil {
			log.Fatalf("Failed to ensure indexes: %v", err)
		}
		accountRepo = repository.NewMongoAccountRepository(mongoDB)
		profileRepo = repository.NewMongoProfileRepository(mongoDB)
	case config.DriverMySQL:
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := gormDB.AutoMigrate(&model.Account{}, &model.Profile{}); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		accountRepo = repository.NewMySQLAccountRepository(gormDB)
		profileRepo = repository.NewMySQLProfileRepository(gormDB)
	default:
		log.Fatalf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	log.Println("Connected to database")

	hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	account := &model.Account{
		Username:     demoUsername,
		Email:        demoEmail,
		PasswordHash: string(hashed),
	}
	if err := accountRepo.Create(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrAccountConflict) {
			log.Fatalf("Failed to create demo account: %v", err)
		}
		// Already seeded; look it up so the profile upsert targets it.
		existing, err := accountRepo.FindByUsername(ctx, demoUsername)
		if err != nil {
			log.Fatalf("Failed to load existing demo account: %v", err)
		}
		account = existing
		log.Println("Demo account already exists, updating profile")
	} else {
		log.Printf("Demo account created: %s", account.ID)
	}

	if _, err := profileRepo.Upsert(ctx, &model.Profile{
		AccountID:         account.ID,
		Name:              "Demo User",
		Age:               30,
		Weight:            70,
		DietaryPreference: model.DietVeg,
		TargetBodyType:    "lean",
	}); err != nil {
		log.Fatalf("Failed to upsert demo profile: %v", err)
	}

	log.Println("Seed completed successfully!")
	log.Printf("  - login: %s / %s", demoUsername, demoPassword)
}
