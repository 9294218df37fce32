package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"webclass/internal/gemini"
	"webclass/internal/logger"
)

// GeminiHandler proxies prompts to the generative model.
type GeminiHandler struct {
	generator gemini.Generator
	log       *slog.Logger
}

// NewGeminiHandler creates a new Gemini handler.
func NewGeminiHandler(generator gemini.Generator, log *slog.Logger) *GeminiHandler {
	return &GeminiHandler{generator: generator, log: log}
}

// GeminiRequest is the body of POST /gemini.
type GeminiRequest struct {
	UserQuery string `json:"userQuery" validate:"required"`
}

// Generate godoc
// @Summary Ask the generative model
// @Description Forwards userQuery to Gemini verbatim and returns the upstream response unchanged. Only an absent or empty userQuery is rejected.
// @Tags gemini
// @Accept json
// @Produce json
// @Param request body GeminiRequest true "Prompt"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /gemini [post]
func (h *GeminiHandler) Generate(c echo.Context) error {
	var req GeminiRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "No query provided", CodeValidation)
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "No query provided", CodeValidation)
	}

	resp, err := h.generator.Generate(c.Request().Context(), req.UserQuery)
	if err != nil {
		h.log.Error("gemini request failed", logger.Err(err))
		return errorJSON(c, http.StatusInternalServerError, "Error processing your request", CodeUpstream)
	}
	return c.JSON(http.StatusOK, resp)
}
