package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "webclass/internal/errors"
	"webclass/internal/model"
)

// SessionOptions configures the session cookie.
type SessionOptions struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// SessionManager ties the session store to the signed session cookie.
type SessionManager struct {
	store  SessionStore
	signer *CookieSigner
	opts   SessionOptions
}

// NewSessionManager creates a session manager.
func NewSessionManager(store SessionStore, signer *CookieSigner, opts SessionOptions) *SessionManager {
	return &SessionManager{store: store, signer: signer, opts: opts}
}

// CookieName returns the name of the session cookie.
func (m *SessionManager) CookieName() string {
	return m.opts.CookieName
}

// ParseCookie verifies a cookie value and returns the session id.
func (m *SessionManager) ParseCookie(value string) (string, error) {
	return m.signer.Parse(value)
}

// New returns a fresh anonymous session that is not yet stored.
func (m *SessionManager) New() *model.Session {
	return &model.Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}

// Load returns the stored session for id, or a new one when id is empty, unknown or expired.
func (m *SessionManager) Load(ctx context.Context, id string) (*model.Session, error) {
	if id == "" {
		return m.New(), nil
	}
	sess, err := m.store.Load(ctx, id)
	if errors.Is(err, apperrors.ErrSessionNotFound) {
		return m.New(), nil
	}
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// Refresh restarts the inactivity window of a stored session and re-issues its cookie.
func (m *SessionManager) Refresh(c echo.Context, sess *model.Session) error {
	if !sess.Persisted() {
		return nil
	}
	ok, err := m.store.Touch(c.Request().Context(), sess.ID, m.opts.TTL)
	if err != nil {
		return err
	}
	if !ok {
		sess.MarkPersisted(false)
		return nil
	}
	return m.writeCookie(c, sess.ID)
}

// Save persists the session and sets the session cookie.
func (m *SessionManager) Save(c echo.Context, sess *model.Session) error {
	if err := m.store.Save(c.Request().Context(), sess, m.opts.TTL); err != nil {
		return err
	}
	sess.MarkPersisted(true)
	return m.writeCookie(c, sess.ID)
}

// Renew moves the session to a new id, dropping the old store entry.
// Callers must Save afterwards.
func (m *SessionManager) Renew(ctx context.Context, sess *model.Session) error {
	if sess.Persisted() {
		if err := m.store.Delete(ctx, sess.ID); err != nil {
			return err
		}
	}
	sess.ID = uuid.NewString()
	sess.MarkPersisted(false)
	return nil
}

// Destroy deletes the session from the store and expires the cookie.
func (m *SessionManager) Destroy(c echo.Context, sess *model.Session) error {
	if sess.Persisted() {
		if err := m.store.Delete(c.Request().Context(), sess.ID); err != nil {
			return err
		}
		sess.MarkPersisted(false)
	}
	c.SetCookie(&http.Cookie{
		Name:     m.opts.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   m.opts.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	return nil
}

func (m *SessionManager) writeCookie(c echo.Context, id string) error {
	value, err := m.signer.Sign(id)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     m.opts.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.opts.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(m.opts.TTL.Seconds()),
	})
	return nil
}
