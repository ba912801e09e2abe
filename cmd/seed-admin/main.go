// Command seed-admin creates the first admin account. It is the only way an
// admin comes into existence; the HTTP API has no sign-up.
//
// Usage:
//
//	ADMIN_PASSWORD=... go run ./cmd/seed-admin -email admin@example.com -name "Club Admin"
//	go run ./cmd/seed-admin -hash-only -password '...'
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nindium/bookclub-server/internal/audit"
	"github.com/nindium/bookclub-server/internal/config"
	"github.com/nindium/bookclub-server/internal/database"
	"github.com/nindium/bookclub-server/internal/repository"
	"github.com/nindium/bookclub-server/internal/service"
	"github.com/nindium/bookclub-server/internal/util"
)

const minPasswordLength = 8

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	email := flag.String("email", "admin@bookclub.com", "admin email address")
	name := flag.String("name", "Admin", "admin display name")
	password := flag.String("password", "", "admin password (prefer the ADMIN_PASSWORD env var)")
	hashOnly := flag.Bool("hash-only", false, "print a bcrypt hash of the password and exit")
	flag.Parse()

	if *password == "" {
		*password = os.Getenv("ADMIN_PASSWORD")
	}
	if len(*password) < minPasswordLength {
		fmt.Fprintf(os.Stderr, "password must be at least %d characters (set ADMIN_PASSWORD or -password)\n", minPasswordLength)
		os.Exit(1)
	}

	if *hashOnly {
		hash, err := util.HashPassword(*password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	admins := service.NewAdminService(repository.NewAdminRepository(db.DB))
	admin, created, err := admins.Seed(ctx, *email, *name, *password)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin")
	}

	if !created {
		log.Info().Str("email", admin.Email).Msg("admin already exists, left unchanged")
		return
	}

	audit.Log(ctx, audit.Event{Type: audit.EventAdminSeeded, AdminID: admin.ID, Email: util.MaskEmail(admin.Email)})
	log.Info().Str("id", admin.ID).Str("email", admin.Email).Msg("admin created")
}
