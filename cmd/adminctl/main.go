// adminctl seeds operator accounts for the admin console.
//
// Usage:
//
//	adminctl add-user <email> <password>
//
// Reads DATABASE_URL from the environment (or .env). Re-running with an
// existing email replaces the stored password hash.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"mobintix/site-service/internal/auth"
	"mobintix/site-service/internal/db"
)

func main() {
	if len(os.Args) != 4 || os.Args[1] != "add-user" {
		fmt.Fprintln(os.Stderr, "usage: adminctl add-user <email> <password>")
		os.Exit(2)
	}
	email, password := os.Args[2], os.Args[3]

	_ = godotenv.Load()
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("[adminctl] DATABASE_URL is required")
	}

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, databaseURL)
	if err != nil {
		log.Fatalf("[adminctl] PostgreSQL: %v", err)
	}
	defer pool.Close()

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("[adminctl] Hash error: %v", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO admin_users (email, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash`,
		email, hash,
	)
	if err != nil {
		log.Fatalf("[adminctl] Insert error: %v", err)
	}

	log.Printf("[adminctl] Admin user %s ready", email)
}
