package main

import (
	"context"
	"flag"
	"log"
	"time"

	"teesheet-service/internal/config"
	"teesheet-service/internal/domain/systemuser"
	"teesheet-service/internal/repository/postgres"
	"teesheet-service/pkg/password"

	"github.com/joho/godotenv"
)

const createTimeout = 10 * time.Second

// createadmin bootstraps the first system admin account so the service
// can be logged into on a fresh database.
func main() {
	name := flag.String("name", "", "admin login name (required)")
	email := flag.String("email", "", "admin email")
	pass := flag.String("password", "", "admin password (required)")
	role := flag.String("role", systemuser.DefaultRole, "admin role")
	flag.Parse()

	if *name == "" || *pass == "" {
		flag.Usage()
		log.Fatal("name and password are required")
	}

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := postgres.New(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	hash, err := password.Hash(*pass)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), createTimeout)
	defer cancel()

	repo := postgres.NewSystemUserRepository(db)
	user, err := repo.Create(ctx, systemuser.CreateUserInput{
		Name:  *name,
		Email: *email,
		Role:  *role,
	}, hash)
	if err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Created system admin %q (id=%d)", user.Name, user.ID)
}
