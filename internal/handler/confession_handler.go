package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/bralash/rants-api/internal/errors"
	"github.com/bralash/rants-api/internal/service"
)

const confessionsPerPage = 10

// ConfessionHandler handles confession endpoints.
type ConfessionHandler struct {
	confessionService service.ConfessionService
}

// NewConfessionHandler creates a new confession handler.
func NewConfessionHandler(confessionService service.ConfessionService) *ConfessionHandler {
	return &ConfessionHandler{confessionService: confessionService}
}

// StoreConfessionRequest represents an anonymous confession submission.
type StoreConfessionRequest struct {
	Message  string `json:"message" validate:"required,max=1000"`
	Category string `json:"category" validate:"omitempty,max=255"`
	Emotion  string `json:"emotion" validate:"omitempty,max=255"`
}

// List godoc
// @Summary List confessions
// @Tags confessions
// @Produce json
// @Param page query int false "Page number"
// @Param status query string false "Filter by approval state" Enums(approved, pending)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /v1/confessions [get]
func (h *ConfessionHandler) List(c echo.Context) error {
	p := page(c)
	confessions, total, err := h.confessionService.List(c.Request().Context(), p, confessionsPerPage, c.QueryParam("status"))
	if err != nil {
		return err
	}
	return successList(c, http.StatusOK, confessions, NewMeta(total, p, confessionsPerPage))
}

// Show godoc
// @Summary Get a single confession
// @Tags confessions
// @Produce json
// @Param id path int true "Confession ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /v1/confessions/{id} [get]
func (h *ConfessionHandler) Show(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	confession, err := h.confessionService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, confession)
}

// Store godoc
// @Summary Submit an anonymous confession
// @Tags confessions
// @Accept json
// @Produce json
// @Param request body StoreConfessionRequest true "Confession data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /v1/confessions [post]
func (h *ConfessionHandler) Store(c echo.Context) error {
	var req StoreConfessionRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	confession, err := h.confessionService.Create(c.Request().Context(), req.Message, req.Category, req.Emotion)
	if err != nil {
		return err
	}
	return successMessage(c, http.StatusCreated, "Confession added successfully", confession)
}

// ToggleApproval godoc
// @Summary Toggle a confession's approval state
// @Tags confessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Confession ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /v1/confessions/{id} [put]
func (h *ConfessionHandler) ToggleApproval(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	confession, err := h.confessionService.ToggleApproval(c.Request().Context(), id)
	if err != nil {
		return err
	}

	message := "Confession revoked successfully"
	if confession.IsApproved {
		message = "Confession approved successfully"
	}
	return successMessage(c, http.StatusOK, message, confession)
}

// Destroy godoc
// @Summary Delete a confession
// @Tags confessions
// @Security BearerAuth
// @Param id path int true "Confession ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /v1/confessions/{id} [delete]
func (h *ConfessionHandler) Destroy(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.confessionService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
