package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/bralash/rants-api/internal/errors"
	"github.com/bralash/rants-api/internal/service"
)

const socialLinksPerPage = 4

// SocialLinkHandler handles standalone social media link endpoints.
type SocialLinkHandler struct {
	socialLinkService service.SocialLinkService
}

// NewSocialLinkHandler creates a new social link handler.
func NewSocialLinkHandler(socialLinkService service.SocialLinkService) *SocialLinkHandler {
	return &SocialLinkHandler{socialLinkService: socialLinkService}
}

// StoreSocialLinkRequest represents a link creation request.
type StoreSocialLinkRequest struct {
	TeamMemberID uint   `json:"team_member_id" validate:"required"`
	Platform     string `json:"platform" validate:"required,max=255"`
	URL          string `json:"url" validate:"required,url"`
}

// UpdateSocialLinkRequest represents a partial link update.
type UpdateSocialLinkRequest struct {
	Platform *string `json:"platform" validate:"omitempty,max=255"`
	URL      *string `json:"url" validate:"omitempty,url"`
}

// List godoc
// @Summary List social media links with their team members
// @Tags social-media-links
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{}
// @Router /v1/social-media-links [get]
func (h *SocialLinkHandler) List(c echo.Context) error {
	p := page(c)
	links, total, err := h.socialLinkService.List(c.Request().Context(), p, socialLinksPerPage)
	if err != nil {
		return err
	}
	return successList(c, http.StatusOK, links, NewMeta(total, p, socialLinksPerPage))
}

// Show godoc
// @Summary Get a single social media link
// @Tags social-media-links
// @Produce json
// @Security BearerAuth
// @Param id path int true "Link ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /v1/social-media-links/{id} [get]
func (h *SocialLinkHandler) Show(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	link, err := h.socialLinkService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, link)
}

// Store godoc
// @Summary Create a social media link for a team member
// @Tags social-media-links
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body StoreSocialLinkRequest true "Link data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /v1/social-media-links [post]
func (h *SocialLinkHandler) Store(c echo.Context) error {
	var req StoreSocialLinkRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	link, err := h.socialLinkService.Create(c.Request().Context(), req.TeamMemberID, req.Platform, req.URL)
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, link)
}

// Update godoc
// @Summary Update a social media link
// @Tags social-media-links
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Link ID"
// @Param request body UpdateSocialLinkRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /v1/social-media-links/{id} [put]
func (h *SocialLinkHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateSocialLinkRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	link, err := h.socialLinkService.Update(c.Request().Context(), id, service.SocialLinkUpdate{
		Platform: req.Platform,
		URL:      req.URL,
	})
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, link)
}

// Destroy godoc
// @Summary Delete a social media link
// @Tags social-media-links
// @Security BearerAuth
// @Param id path int true "Link ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /v1/social-media-links/{id} [delete]
func (h *SocialLinkHandler) Destroy(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.socialLinkService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
