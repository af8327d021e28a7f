package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/bralash/rants-api/internal/errors"
	"github.com/bralash/rants-api/internal/service"
)

const teamMembersPerPage = 6

// TeamMemberHandler handles team member endpoints.
type TeamMemberHandler struct {
	teamMemberService service.TeamMemberService
}

// NewTeamMemberHandler creates a new team member handler.
func NewTeamMemberHandler(teamMemberService service.TeamMemberService) *TeamMemberHandler {
	return &TeamMemberHandler{teamMemberService: teamMemberService}
}

// SocialLinkPayload is a nested social media link on a create request.
type SocialLinkPayload struct {
	Platform string `json:"platform" validate:"required,max=255"`
	URL      string `json:"url" validate:"required,url"`
}

// StoreTeamMemberRequest represents a team member creation request.
type StoreTeamMemberRequest struct {
	Name             string              `json:"name" validate:"required,max=255"`
	Role             string              `json:"role" validate:"required,max=255"`
	Bio              string              `json:"bio"`
	ProfileImage     string              `json:"profile_image" validate:"omitempty,url"`
	SocialMediaLinks []SocialLinkPayload `json:"social_media_links" validate:"omitempty,dive"`
}

// UpdateTeamMemberRequest represents a partial team member update.
type UpdateTeamMemberRequest struct {
	Name         *string `json:"name" validate:"omitempty,max=255"`
	Role         *string `json:"role" validate:"omitempty,max=255"`
	Bio          *string `json:"bio"`
	ProfileImage *string `json:"profile_image" validate:"omitempty,url"`
}

// List godoc
// @Summary List team members with their social media links
// @Tags team-members
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{}
// @Router /v1/team-members [get]
func (h *TeamMemberHandler) List(c echo.Context) error {
	p := page(c)
	members, total, err := h.teamMemberService.List(c.Request().Context(), p, teamMembersPerPage)
	if err != nil {
		return err
	}
	return successList(c, http.StatusOK, members, NewMeta(total, p, teamMembersPerPage))
}

// Show godoc
// @Summary Get a single team member
// @Tags team-members
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team member ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /v1/team-members/{id} [get]
func (h *TeamMemberHandler) Show(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	member, err := h.teamMemberService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, member)
}

// Store godoc
// @Summary Create a team member with optional nested social media links
// @Tags team-members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body StoreTeamMemberRequest true "Team member data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /v1/team-members [post]
func (h *TeamMemberHandler) Store(c echo.Context) error {
	var req StoreTeamMemberRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	links := make([]service.SocialLinkInput, 0, len(req.SocialMediaLinks))
	for _, link := range req.SocialMediaLinks {
		links = append(links, service.SocialLinkInput{Platform: link.Platform, URL: link.URL})
	}

	member, err := h.teamMemberService.Create(c.Request().Context(), req.Name, req.Role, req.Bio, req.ProfileImage, links)
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, member)
}

// Update godoc
// @Summary Update a team member
// @Tags team-members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team member ID"
// @Param request body UpdateTeamMemberRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /v1/team-members/{id} [put]
func (h *TeamMemberHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateTeamMemberRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	member, err := h.teamMemberService.Update(c.Request().Context(), id, service.TeamMemberUpdate{
		Name:         req.Name,
		Role:         req.Role,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		return err
	}
	return successMessage(c, http.StatusOK, "Team member updated successfully", member)
}

// Destroy godoc
// @Summary Delete a team member and their social media links
// @Tags team-members
// @Security BearerAuth
// @Param id path int true "Team member ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /v1/team-members/{id} [delete]
func (h *TeamMemberHandler) Destroy(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.teamMemberService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
