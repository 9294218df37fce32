package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webclass/internal/model"
)

func TestRender(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	tests := []struct {
		name     string
		page     string
		data     Data
		contains []string
		absent   []string
	}{
		{
			name:     "login with flash",
			page:     PageLogin,
			data:     Data{Title: "Login", Flash: model.Flash{Error: "Invalid username or password."}},
			contains: []string{"<title>Login</title>", `action="/login"`, "Invalid username or password."},
			absent:   []string{"Log out"},
		},
		{
			name:     "register",
			page:     PageRegister,
			data:     Data{Title: "Register"},
			contains: []string{`name="confirmPassword"`},
		},
		{
			name:     "dashboard",
			page:     PageDashboard,
			data:     Data{Title: "Dashboard", User: &model.CurrentUser{ID: 1, Username: "nina"}},
			contains: []string{"Welcome, nina!", "Log out"},
		},
		{
			name: "profile",
			page: PageProfile,
			data: Data{
				Title:   "Your Profile",
				User:    &model.CurrentUser{ID: 1, Username: "nina"},
				Profile: &model.User{Username: "nina", Email: "a@b.com", CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
			},
			contains: []string{"a@b.com", "2024-03-01"},
		},
		{
			name:     "escapes user input",
			page:     PageDashboard,
			data:     Data{Title: "Dashboard", User: &model.CurrentUser{Username: "<script>"}},
			contains: []string{"&lt;script&gt;"},
			absent:   []string{"<script>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, r.Render(&buf, tt.page, tt.data, nil))
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestRender_UnknownPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	assert.Error(t, r.Render(&bytes.Buffer{}, "missing", Data{}, nil))
}
