package main

import (
	"context"
	"errors"
	"log"

	"github.com/johnquangdev/reunicheck/internal/adapter/repository"
	"github.com/johnquangdev/reunicheck/internal/domain/entities"
	"github.com/johnquangdev/reunicheck/internal/infrastructure/database"
	"github.com/johnquangdev/reunicheck/pkg/config"
)

var seedUsers = []struct {
	name  string
	email string
}{
	{"Alice Johnson", "alice@example.com"},
	{"Bob Smith", "bob@example.com"},
	{"Carol Davis", "carol@example.com"},
}

func main() {
	log.Println("🚀 Seeding participants...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	users := repository.NewUserRepository(db)
	ctx := context.Background()
	for _, s := range seedUsers {
		u := entities.NewUser(s.email, s.name)
		if err := users.Create(ctx, u); err != nil {
			if errors.Is(err, entities.ErrUserAlreadyExists) {
				log.Printf("⏭️  %s already exists", s.email)
				continue
			}
			log.Fatalf("Failed to create %s: %v", s.email, err)
		}
		log.Printf("✅ Created %s (%s)", s.email, u.ID)
	}
}
