package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"webclass/internal/auth"
	apperrors "webclass/internal/errors"
	"webclass/internal/middleware"
	"webclass/internal/service"
	"webclass/internal/view"
)

// ProfileHandler serves the guarded pages.
type ProfileHandler struct {
	userService service.UserService
	sessions    *auth.SessionManager
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(userService service.UserService, sessions *auth.SessionManager) *ProfileHandler {
	return &ProfileHandler{userService: userService, sessions: sessions}
}

// Dashboard renders the signed-in landing page.
func (h *ProfileHandler) Dashboard(c echo.Context) error {
	return renderPage(c, h.sessions, view.PageDashboard, "Dashboard", nil)
}

// Profile re-reads the signed-in user from the identity store.
func (h *ProfileHandler) Profile(c echo.Context) error {
	sess := middleware.SessionFrom(c)

	user, err := h.userService.GetUser(c.Request().Context(), sess.UserID)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		sess.Error = MsgUserNotFound
		if err := h.sessions.Save(c, sess); err != nil {
			return err
		}
		return c.Redirect(http.StatusFound, middleware.LoginPath)
	}
	if err != nil {
		return err
	}

	return renderPage(c, h.sessions, view.PageProfile, "Your Profile", user)
}
