package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webclass/internal/db"
	"webclass/internal/model"
	"webclass/internal/repository"
	"webclass/internal/service"
)

const seedJSON = `[
  {"username": "nina", "email": "a@b.com", "password": "x"},
  {"username": "omar", "email": "omar@example.com", "password": "y"},
  {"username": "nina", "email": "other@example.com", "password": "z"},
  {"username": "", "email": "broken@example.com", "password": "z"}
]`

func TestLoadSeedUsers_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(seedJSON), 0o600))

	users, err := loadSeedUsers(path)
	require.NoError(t, err)
	assert.Len(t, users, 4)
	assert.Equal(t, "nina", users[0].Username)
}

func TestLoadSeedUsers_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(seedJSON))
	}))
	t.Cleanup(srv.Close)

	users, err := loadSeedUsers(srv.URL + "/users.json")
	require.NoError(t, err)
	assert.Len(t, users, 4)

	_, err = loadSeedUsers(srv.URL + "/missing.json")
	assert.Error(t, err)
}

func TestLoadSeedUsers_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not":"a list"}`), 0o600))

	_, err := loadSeedUsers(path)
	assert.Error(t, err)

	_, err = loadSeedUsers(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestSeedUsers(t *testing.T) {
	gormDB, err := db.Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB, &model.User{}))

	repo := repository.NewUserRepository(gormDB)
	users := []SeedUser{
		{Username: "nina", Email: "a@b.com", Password: "x"},
		{Username: "omar", Email: "omar@example.com", Password: "y"},
		{Username: "nina", Email: "other@example.com", Password: "z"},
	}

	created, skipped, err := seedUsers(context.Background(), service.NewAuthService(repo), users)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, 1, skipped)

	created, skipped, err = seedUsers(context.Background(), service.NewAuthService(repo), users)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Equal(t, 3, skipped)

	all, err := service.NewUserService(repo).ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "nina", all[0].Username)
	assert.Equal(t, "omar", all[1].Username)

	_, _, err = seedUsers(context.Background(), service.NewAuthService(repo), []SeedUser{{Username: "", Email: "e", Password: "p"}})
	assert.Error(t, err)
}
