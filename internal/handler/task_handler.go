package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "webclass/internal/errors"
	"webclass/internal/service"
)

const (
	msgTaskRequired = "Task is required."
	msgTaskNotFound = "To-Do item not found"
)

// TaskHandler handles the task todo endpoints.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// TaskRequest is the body of task create and update calls. Absent fields stay nil.
type TaskRequest struct {
	Task      *string `json:"task"`
	Completed *bool   `json:"completed"`
	Priority  *string `json:"priority"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// List godoc
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Param completed query string false "Filter by completion (true or false)"
// @Success 200 {array} model.Task
// @Failure 500 {object} errors.ErrorResponse
// @Router /todos [get]
func (h *TaskHandler) List(c echo.Context) error {
	tasks, err := h.taskService.List(c.Request().Context(), completedFilter(c, "completed"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// Get godoc
// @Summary Get a task
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} model.Task
// @Failure 404 {object} errors.ErrorResponse
// @Router /todos/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return errorJSON(c, http.StatusNotFound, msgTaskNotFound, CodeNotFound)
	}
	task, err := h.taskService.Get(c.Request().Context(), id)
	if err != nil {
		return h.failure(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

// Create godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body TaskRequest true "Task"
// @Success 201 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /todos [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req TaskRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body", CodeValidation)
	}

	in := service.CreateTaskInput{}
	if req.Task != nil {
		in.Task = *req.Task
	}
	if req.Priority != nil {
		in.Priority = *req.Priority
	}

	task, err := h.taskService.Create(c.Request().Context(), in)
	if err != nil {
		return h.failure(c, err)
	}
	return c.JSON(http.StatusCreated, task)
}

// Update godoc
// @Summary Update a task
// @Description Fields absent from the body keep their stored value.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param request body TaskRequest true "Fields to change"
// @Success 200 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /todos/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return errorJSON(c, http.StatusNotFound, msgTaskNotFound, CodeNotFound)
	}
	var req TaskRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body", CodeValidation)
	}

	task, err := h.taskService.Update(c.Request().Context(), id, service.UpdateTaskInput{
		Task:      req.Task,
		Completed: req.Completed,
		Priority:  req.Priority,
	})
	if err != nil {
		return h.failure(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Param id path int true "Task ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /todos/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return errorJSON(c, http.StatusNotFound, msgTaskNotFound, CodeNotFound)
	}
	if err := h.taskService.Delete(c.Request().Context(), id); err != nil {
		return h.failure(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CompleteAll godoc
// @Summary Mark every task complete
// @Tags tasks
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /todos/complete-all [put]
func (h *TaskHandler) CompleteAll(c echo.Context) error {
	if err := h.taskService.CompleteAll(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "All tasks marked complete."})
}

func (h *TaskHandler) failure(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrMissingFields):
		return errorJSON(c, http.StatusBadRequest, msgTaskRequired, CodeValidation)
	case errors.Is(err, apperrors.ErrTodoNotFound):
		return errorJSON(c, http.StatusNotFound, msgTaskNotFound, CodeNotFound)
	default:
		return err
	}
}
