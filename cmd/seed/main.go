package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"user-accounts/config"
	"user-accounts/pkg/helpers"
)

// Seeds an initial Admin account so the role-gated DELETE route is reachable
// on a fresh database.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "administrator"
	password := "adminpassword"
	digest, err := helpers.NewBcryptHash().Hash(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var existing string
	err = db.QueryRow(`SELECT id FROM users WHERE username = $1`, username).Scan(&existing)
	if err == nil {
		fmt.Printf("admin already seeded: id=%s username=%s\n", existing, username)
		return
	}
	if err != sql.ErrNoRows {
		log.Fatalf("failed to check existing admin: %v", err)
	}

	id := "user-" + uuid.NewString()
	if _, err := db.Exec(`
		INSERT INTO users (id, username, password, fullname, role)
		VALUES ($1, $2, $3, $4, $5)
	`, id, username, digest, "Administrator", "Admin"); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s username=%s password=%s\n", id, username, password)
}
