package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"webclass/internal/config"
	"webclass/internal/db"
	apperrors "webclass/internal/errors"
	"webclass/internal/logger"
	"webclass/internal/model"
	"webclass/internal/repository"
	"webclass/internal/service"
)

// SeedUser is one entry of the seed file.
type SeedUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	gormDB, err := db.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to open database", "error", err)
	}
	if err := db.Migrate(gormDB, &model.User{}); err != nil {
		logger.Fatal("failed to migrate database", "error", err)
	}

	users, err := loadSeedUsers(cfg.SeedFile)
	if err != nil {
		logger.Fatal("failed to load seed users", "source", cfg.SeedFile, "error", err)
	}
	logger.Info("loaded seed users", "count", len(users))

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	created, skipped, err := seedUsers(ctx, service.NewAuthService(userRepo), users)
	if err != nil {
		logger.Fatal("failed to seed users", "error", err)
	}

	all, err := service.NewUserService(userRepo).ListUsers(ctx)
	if err != nil {
		logger.Fatal("failed to list users", "error", err)
	}
	logger.Info("seed completed", "created", created, "skipped", skipped, "total", len(all))
	for _, u := range all {
		logger.Debug("seeded user", "id", u.ID, "username", u.Username)
	}
}

// loadSeedUsers reads the seed list from a local file or an http(s) URL.
func loadSeedUsers(source string) ([]SeedUser, error) {
	var body []byte
	var err error
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		body, err = fetch(source)
	} else {
		body, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}

	var users []SeedUser
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return users, nil
}

func fetch(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seed file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seed source returned status code: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// seedUsers registers each user through the normal registration rules.
// Users whose username or email already exists are skipped.
func seedUsers(ctx context.Context, auth service.AuthService, users []SeedUser) (created int, skipped int, err error) {
	for _, u := range users {
		_, err := auth.Register(ctx, service.RegisterInput{
			Email:           u.Email,
			Username:        u.Username,
			Password:        u.Password,
			ConfirmPassword: u.Password,
		})
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrUsernameTaken),
			errors.Is(err, apperrors.ErrEmailTaken),
			errors.Is(err, apperrors.ErrUserExists):
			skipped++
		default:
			return created, skipped, fmt.Errorf("error creating user %q: %w", u.Username, err)
		}
	}
	return created, skipped, nil
}
