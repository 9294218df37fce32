package middleware

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"webclass/internal/auth"
	"webclass/internal/model"
)

const (
	sessionIDKey = "session_id"
	sessionKey   = "session"
)

// LoginPath is where the guard sends anonymous visitors.
const LoginPath = "/login"

// SessionCookie verifies the signed session cookie and stores the session id in the context.
// A missing or invalid cookie is not an error: the request continues as anonymous.
func SessionCookie(manager *auth.SessionManager) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + manager.CookieName(),
		ContextKey:  sessionIDKey,
		ParseTokenFunc: func(_ echo.Context, value string) (interface{}, error) {
			return manager.ParseCookie(value)
		},
		ErrorHandler: func(echo.Context, error) error {
			return nil
		},
		ContinueOnIgnoredError: true,
	})
}

// LoadSession resolves the session for the id found by SessionCookie and refreshes its TTL.
// Store failures are passed to the error handler.
func LoadSession(manager *auth.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, _ := c.Get(sessionIDKey).(string)

			sess, err := manager.Load(c.Request().Context(), id)
			if err != nil {
				return err
			}
			if err := manager.Refresh(c, sess); err != nil {
				return err
			}

			c.Set(sessionKey, sess)
			return next(c)
		}
	}
}

// SessionFrom returns the request session. It is never nil behind LoadSession.
func SessionFrom(c echo.Context) *model.Session {
	sess, _ := c.Get(sessionKey).(*model.Session)
	if sess == nil {
		sess = &model.Session{}
		c.Set(sessionKey, sess)
	}
	return sess
}

// RequireLogin redirects anonymous visitors to the login page with a flash message.
func RequireLogin(manager *auth.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := SessionFrom(c)
			if sess.Authenticated() {
				return next(c)
			}

			sess.Error = "Please log in to view that page."
			if err := manager.Save(c, sess); err != nil {
				return err
			}
			return c.Redirect(http.StatusFound, LoginPath)
		}
	}
}
