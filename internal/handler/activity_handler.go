package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "webclass/internal/errors"
	"webclass/internal/service"
)

const (
	msgNameRequired     = "Name is required"
	msgActivityNotFound = "Todo item not found"
)

// ActivityHandler handles the activity todo endpoints.
type ActivityHandler struct {
	activityService service.ActivityService
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// ActivityRequest is the body of activity create and update calls.
type ActivityRequest struct {
	Name       *string `json:"name"`
	Priority   *string `json:"priority"`
	IsComplete *bool   `json:"isComplete"`
	IsFun      *bool   `json:"isFun"`
}

// List returns all activities, optionally filtered by ?completed=true|false.
func (h *ActivityHandler) List(c echo.Context) error {
	activities, err := h.activityService.List(c.Request().Context(), completedFilter(c, "completed"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}

// Get returns one activity. Unknown or malformed ids answer 404.
func (h *ActivityHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return errorJSON(c, http.StatusNotFound, msgActivityNotFound, CodeNotFound)
	}
	activity, err := h.activityService.Get(c.Request().Context(), id)
	if err != nil {
		return h.failure(c, err)
	}
	return c.JSON(http.StatusOK, activity)
}

// Create stores a new activity. A missing name answers 400; priority defaults to low.
func (h *ActivityHandler) Create(c echo.Context) error {
	var req ActivityRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body", CodeValidation)
	}

	in := service.CreateActivityInput{IsFun: req.IsFun}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.Priority != nil {
		in.Priority = *req.Priority
	}

	activity, err := h.activityService.Create(c.Request().Context(), in)
	if err != nil {
		return h.failure(c, err)
	}
	return c.JSON(http.StatusCreated, activity)
}

// Update changes only the fields present in the body.
func (h *ActivityHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return errorJSON(c, http.StatusNotFound, msgActivityNotFound, CodeNotFound)
	}
	var req ActivityRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body", CodeValidation)
	}

	activity, err := h.activityService.Update(c.Request().Context(), id, service.UpdateActivityInput{
		Name:       req.Name,
		Priority:   req.Priority,
		IsComplete: req.IsComplete,
		IsFun:      req.IsFun,
	})
	if err != nil {
		return h.failure(c, err)
	}
	return c.JSON(http.StatusOK, activity)
}

// Delete removes an activity and answers 204.
func (h *ActivityHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return errorJSON(c, http.StatusNotFound, msgActivityNotFound, CodeNotFound)
	}
	if err := h.activityService.Delete(c.Request().Context(), id); err != nil {
		return h.failure(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ActivityHandler) failure(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrMissingFields):
		return errorJSON(c, http.StatusBadRequest, msgNameRequired, CodeValidation)
	case errors.Is(err, apperrors.ErrTodoNotFound):
		return errorJSON(c, http.StatusNotFound, msgActivityNotFound, CodeNotFound)
	default:
		return err
	}
}
