package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webclass/internal/auth"
	"webclass/internal/cache"
	"webclass/internal/model"
)

func setupEcho(t *testing.T) (*echo.Echo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := cache.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })

	manager := auth.NewSessionManager(
		auth.NewRedisSessionStore(c),
		auth.NewCookieSigner("test-secret"),
		auth.SessionOptions{CookieName: "sid", TTL: time.Hour},
	)

	e := echo.New()
	e.Use(SessionCookie(manager), LoadSession(manager))

	e.POST("/signin", func(c echo.Context) error {
		sess := SessionFrom(c)
		sess.SignIn(&model.User{ID: 1, Username: "nina", Email: "a@b.com"})
		if err := manager.Save(c, sess); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/private", func(c echo.Context) error {
		return c.String(http.StatusOK, SessionFrom(c).Username)
	}, RequireLogin(manager))
	e.GET("/flash", func(c echo.Context) error {
		return c.String(http.StatusOK, SessionFrom(c).TakeFlash().Error)
	})

	return e, mr
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	var found *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "sid" {
			found = c
		}
	}
	return found
}

func do(e *echo.Echo, method, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireLogin_AnonymousRedirects(t *testing.T) {
	e, mr := setupEcho(t)

	rec := do(e, http.MethodGet, "/private", nil)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Len(t, mr.Keys(), 1)

	flash := do(e, http.MethodGet, "/flash", cookie)
	assert.Equal(t, "Please log in to view that page.", flash.Body.String())
}

func TestRequireLogin_AuthenticatedPasses(t *testing.T) {
	e, _ := setupEcho(t)

	signin := do(e, http.MethodPost, "/signin", nil)
	require.Equal(t, http.StatusNoContent, signin.Code)
	cookie := sessionCookie(signin)
	require.NotNil(t, cookie)

	rec := do(e, http.MethodGet, "/private", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nina", rec.Body.String())
}

func TestSessionCookie_InvalidCookieIsAnonymous(t *testing.T) {
	e, _ := setupEcho(t)

	rec := do(e, http.MethodGet, "/private", &http.Cookie{Name: "sid", Value: "forged"})
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestLoadSession_RefreshesTTL(t *testing.T) {
	e, mr := setupEcho(t)

	signin := do(e, http.MethodPost, "/signin", nil)
	cookie := sessionCookie(signin)
	require.NotNil(t, cookie)
	keys := mr.Keys()
	require.Len(t, keys, 1)

	mr.FastForward(50 * time.Minute)
	rec := do(e, http.MethodGet, "/private", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Hour, mr.TTL(keys[0]))
	assert.NotNil(t, sessionCookie(rec))

	mr.FastForward(61 * time.Minute)
	rec = do(e, http.MethodGet, "/private", cookie)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestLoadSession_StoreDown(t *testing.T) {
	e, mr := setupEcho(t)
	signin := do(e, http.MethodPost, "/signin", nil)
	cookie := sessionCookie(signin)
	require.NotNil(t, cookie)

	mr.Close()
	rec := do(e, http.MethodGet, "/private", cookie)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSessionFrom_WithoutMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	sess := SessionFrom(c)
	require.NotNil(t, sess)
	assert.False(t, sess.Authenticated())
	assert.Same(t, sess, SessionFrom(c))
}
