package router

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"webclass/internal/auth"
	apperrors "webclass/internal/errors"
	"webclass/internal/handler"
	"webclass/internal/logger"
	"webclass/internal/metrics"
	"webclass/internal/middleware"
)

// TodoRoutes is implemented by both todo variants.
type TodoRoutes interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

// RegisterAuth wires the session-authentication app.
// Middleware order: request id, access log, recovery, metrics, session cookie, session load.
func RegisterAuth(
	e *echo.Echo,
	log *slog.Logger,
	m *metrics.Metrics,
	renderer echo.Renderer,
	sessions *auth.SessionManager,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
) {
	e.HideBanner = true
	e.Renderer = renderer
	e.HTTPErrorHandler = pageErrorHandler(log)

	e.Use(
		echomw.RequestID(),
		middleware.RequestLogger(log),
		echomw.Recover(),
		m.Middleware(),
	)

	e.GET("/healthz", healthz)
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	app := e.Group("", middleware.SessionCookie(sessions), middleware.LoadSession(sessions))
	app.GET("/", authHandler.Home)
	app.GET("/login", authHandler.ShowLogin)
	app.POST("/login", authHandler.Login)
	app.GET("/register", authHandler.ShowRegister)
	app.POST("/register", authHandler.Register)
	app.POST("/logout", authHandler.Logout)

	guard := middleware.RequireLogin(sessions)
	app.GET("/dashboard", profileHandler.Dashboard, guard)
	app.GET("/profile", profileHandler.Profile, guard)
}

// ActivityDocs is the swagger instance describing the activity variant.
const ActivityDocs = "activities"

// RegisterAPI wires the JSON API: one todo variant, the Gemini proxy and swagger.
func RegisterAPI(
	e *echo.Echo,
	log *slog.Logger,
	m *metrics.Metrics,
	todos TodoRoutes,
	geminiHandler *handler.GeminiHandler,
) {
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = jsonErrorHandler(log)

	e.Use(
		echomw.RequestID(),
		middleware.RequestLogger(log),
		echomw.Recover(),
		m.Middleware(),
	)

	e.GET("/healthz", healthz)
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	if tasks, ok := todos.(*handler.TaskHandler); ok {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
		e.PUT("/todos/complete-all", tasks.CompleteAll)
	} else {
		e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(ActivityDocs)))
	}
	e.GET("/todos", todos.List)
	e.GET("/todos/:id", todos.Get)
	e.POST("/todos", todos.Create)
	e.PUT("/todos/:id", todos.Update)
	e.DELETE("/todos/:id", todos.Delete)

	e.POST("/gemini", geminiHandler.Generate)
}

func healthz(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// pageErrorHandler answers unexpected errors with a generic text body.
// Framework errors below 500 (unknown route, bad method) keep their status.
func pageErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
			_ = c.String(he.Code, http.StatusText(he.Code))
			return
		}

		log.Error("request failed",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
			logger.Err(err),
		)
		_ = c.String(http.StatusInternalServerError, "Something went wrong.")
	}
}

// jsonErrorHandler answers with an ErrorResponse body. Domain errors go through MapErrorToHTTP.
func jsonErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
			_ = c.JSON(he.Code, apperrors.ErrorResponse{
				Error: http.StatusText(he.Code),
				Code:  statusCode(he.Code),
			})
			return
		}

		httpErr := apperrors.MapErrorToHTTP(err)
		if httpErr.StatusCode >= http.StatusInternalServerError {
			log.Error("request failed",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				logger.Err(err),
			)
		}
		_ = c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
}

// statusCode turns 404 into "NOT_FOUND".
func statusCode(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
