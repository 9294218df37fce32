package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"webclass/internal/auth"
	apperrors "webclass/internal/errors"
	"webclass/internal/metrics"
	"webclass/internal/middleware"
	"webclass/internal/model"
	"webclass/internal/service"
	"webclass/internal/view"
)

// Flash messages shown by the auth pages.
const (
	MsgAllFieldsRequired  = "All fields are required."
	MsgPasswordMismatch   = "Passwords do not match."
	MsgPasswordTooLong    = "Password must be at most 72 bytes."
	MsgUsernameTaken      = "Username already taken."
	MsgEmailTaken         = "Email already registered."
	MsgAlreadyInUse       = "Username or email already in use."
	MsgAccountCreated     = "Account created. Please log in."
	MsgLoginFieldsMissing = "Please provide username and password."
	MsgInvalidCredentials = "Invalid username or password."
	MsgUserNotFound       = "User not found."
)

// AuthHandler serves the login, registration and logout pages.
type AuthHandler struct {
	authService service.AuthService
	sessions    *auth.SessionManager
	metrics     *metrics.Metrics
	log         *slog.Logger
}

// NewAuthHandler creates a new auth handler. m may be nil.
func NewAuthHandler(authService service.AuthService, sessions *auth.SessionManager, m *metrics.Metrics, log *slog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, metrics: m, log: log}
}

// RegisterForm is the body of POST /register.
type RegisterForm struct {
	Email           string `form:"email"`
	Username        string `form:"username"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirmPassword"`
}

// LoginForm is the body of POST /login.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Home sends signed-in users to the dashboard and everyone else to the login page.
func (h *AuthHandler) Home(c echo.Context) error {
	if middleware.SessionFrom(c).Authenticated() {
		return c.Redirect(http.StatusFound, "/dashboard")
	}
	return c.Redirect(http.StatusFound, middleware.LoginPath)
}

// ShowLogin renders the login form with any pending flash message.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return renderPage(c, h.sessions, view.PageLogin, "Login", nil)
}

// ShowRegister renders the registration form with any pending flash message.
func (h *AuthHandler) ShowRegister(c echo.Context) error {
	return renderPage(c, h.sessions, view.PageRegister, "Register", nil)
}

// Login checks the credentials and signs the user in on a fresh session id.
func (h *AuthHandler) Login(c echo.Context) error {
	var form LoginForm
	if err := c.Bind(&form); err != nil {
		return h.flashRedirect(c, MsgLoginFieldsMissing, middleware.LoginPath)
	}

	user, err := h.authService.Login(c.Request().Context(), service.LoginInput{
		Username: form.Username,
		Password: form.Password,
	})
	switch {
	case errors.Is(err, apperrors.ErrMissingFields):
		return h.flashRedirect(c, MsgLoginFieldsMissing, middleware.LoginPath)
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		h.metrics.Auth(metrics.EventLoginFailure)
		return h.flashRedirect(c, MsgInvalidCredentials, middleware.LoginPath)
	case err != nil:
		return err
	}

	sess := middleware.SessionFrom(c)
	if err := h.sessions.Renew(c.Request().Context(), sess); err != nil {
		return err
	}
	sess.SignIn(user)
	if err := h.sessions.Save(c, sess); err != nil {
		return err
	}

	h.metrics.Auth(metrics.EventLogin)
	h.log.Info("user logged in", slog.Uint64("user_id", uint64(user.ID)))
	return c.Redirect(http.StatusFound, "/dashboard")
}

// Register creates the account and sends the visitor to the login page.
func (h *AuthHandler) Register(c echo.Context) error {
	var form RegisterForm
	if err := c.Bind(&form); err != nil {
		return h.flashRedirect(c, MsgAllFieldsRequired, "/register")
	}

	user, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		Email:           form.Email,
		Username:        form.Username,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
	})
	if err != nil {
		msg, ok := registerMessage(err)
		if !ok {
			return err
		}
		return h.flashRedirect(c, msg, "/register")
	}

	sess := middleware.SessionFrom(c)
	sess.Success = MsgAccountCreated
	if err := h.sessions.Save(c, sess); err != nil {
		return err
	}

	h.metrics.Auth(metrics.EventRegister)
	h.log.Info("user registered", slog.Uint64("user_id", uint64(user.ID)))
	return c.Redirect(http.StatusFound, middleware.LoginPath)
}

// Logout destroys the session and expires the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Destroy(c, middleware.SessionFrom(c)); err != nil {
		return err
	}
	h.metrics.Auth(metrics.EventLogout)
	return c.Redirect(http.StatusFound, middleware.LoginPath)
}

func (h *AuthHandler) flashRedirect(c echo.Context, msg, to string) error {
	sess := middleware.SessionFrom(c)
	sess.Error = msg
	if err := h.sessions.Save(c, sess); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, to)
}

func registerMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, apperrors.ErrMissingFields):
		return MsgAllFieldsRequired, true
	case errors.Is(err, apperrors.ErrPasswordMismatch):
		return MsgPasswordMismatch, true
	case errors.Is(err, apperrors.ErrPasswordTooLong):
		return MsgPasswordTooLong, true
	case errors.Is(err, apperrors.ErrUsernameTaken):
		return MsgUsernameTaken, true
	case errors.Is(err, apperrors.ErrEmailTaken):
		return MsgEmailTaken, true
	case errors.Is(err, apperrors.ErrUserExists):
		return MsgAlreadyInUse, true
	default:
		return "", false
	}
}

// renderPage consumes the pending flash and renders page. The cleared flash is written back
// before the body so each message is shown exactly once.
func renderPage(c echo.Context, sessions *auth.SessionManager, page, title string, profile *model.User) error {
	sess := middleware.SessionFrom(c)
	flash := sess.TakeFlash()
	if !flash.Empty() && sess.Persisted() {
		if err := sessions.Save(c, sess); err != nil {
			return err
		}
	}

	return c.Render(http.StatusOK, page, view.Data{
		Title:   title,
		User:    sess.CurrentUser(),
		Flash:   flash,
		Profile: profile,
	})
}
