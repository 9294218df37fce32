package model

import "time"

// Session is the server-side state referenced by the session cookie.
// The user fields are a snapshot taken at login and are not kept in sync with the users table.
type Session struct {
	ID        string    `json:"-"`
	UserID    uint      `json:"userId,omitempty"`
	Username  string    `json:"username,omitempty"`
	Email     string    `json:"email,omitempty"`
	Success   string    `json:"success,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	persisted bool
}

// Flash holds the one-shot messages delivered to a single render.
type Flash struct {
	Success string
	Error   string
}

// Empty reports whether the flash carries no message.
func (f Flash) Empty() bool {
	return f.Success == "" && f.Error == ""
}

// CurrentUser is the session's view of the signed-in user.
type CurrentUser struct {
	ID       uint
	Username string
	Email    string
}

// Authenticated reports whether a user is signed in on this session.
func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != 0
}

// SignIn copies the user snapshot into the session.
func (s *Session) SignIn(u *User) {
	s.UserID = u.ID
	s.Username = u.Username
	s.Email = u.Email
}

// CurrentUser returns the signed-in user, or nil for anonymous sessions.
func (s *Session) CurrentUser() *CurrentUser {
	if !s.Authenticated() {
		return nil
	}
	return &CurrentUser{ID: s.UserID, Username: s.Username, Email: s.Email}
}

// TakeFlash returns the pending flash messages and clears them.
func (s *Session) TakeFlash() Flash {
	f := Flash{Success: s.Success, Error: s.Error}
	s.Success = ""
	s.Error = ""
	return f
}

// Persisted reports whether the session has an entry in the session store.
func (s *Session) Persisted() bool {
	return s.persisted
}

// MarkPersisted records that the session has been written to the store.
func (s *Session) MarkPersisted(v bool) {
	s.persisted = v
}
