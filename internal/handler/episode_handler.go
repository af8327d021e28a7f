package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "github.com/bralash/rants-api/internal/errors"
	"github.com/bralash/rants-api/internal/service"
)

const episodesPerPage = 15

// EpisodeHandler handles episode endpoints.
type EpisodeHandler struct {
	episodeService service.EpisodeService
}

// NewEpisodeHandler creates a new episode handler.
func NewEpisodeHandler(episodeService service.EpisodeService) *EpisodeHandler {
	return &EpisodeHandler{episodeService: episodeService}
}

// StoreEpisodeRequest represents an episode creation request.
type StoreEpisodeRequest struct {
	Title            string  `json:"title" validate:"required,max=255"`
	Description      string  `json:"description" validate:"required"`
	ImgURL           string  `json:"img_url" validate:"required,url"`
	AudioURL         string  `json:"audio_url" validate:"required,url"`
	Duration         string  `json:"duration" validate:"required,max=20"`
	PostedOn         string  `json:"posted_on" validate:"required"`
	Season           int     `json:"season" validate:"required,min=1"`
	Episode          int     `json:"episode" validate:"required,min=1"`
	SpotifyURL       string  `json:"spotify_url" validate:"required,url"`
	ApplePodcastsURL *string `json:"apple_podcasts_url" validate:"omitempty,url"`
	Archive          *bool   `json:"archive"`
	Featured         *bool   `json:"featured"`
	Slug             string  `json:"slug" validate:"required,max=255"`
}

// UpdateEpisodeRequest represents a partial episode update; absent fields
// are left unchanged.
type UpdateEpisodeRequest struct {
	Title            *string `json:"title" validate:"omitempty,max=255"`
	Description      *string `json:"description"`
	ImgURL           *string `json:"img_url" validate:"omitempty,url"`
	AudioURL         *string `json:"audio_url" validate:"omitempty,url"`
	Duration         *string `json:"duration" validate:"omitempty,max=20"`
	PostedOn         *string `json:"posted_on"`
	Season           *int    `json:"season" validate:"omitempty,min=1"`
	Episode          *int    `json:"episode" validate:"omitempty,min=1"`
	SpotifyURL       *string `json:"spotify_url" validate:"omitempty,url"`
	ApplePodcastsURL *string `json:"apple_podcasts_url" validate:"omitempty,url"`
	Archive          *bool   `json:"archive"`
	Featured         *bool   `json:"featured"`
	Slug             *string `json:"slug" validate:"omitempty,max=255"`
}

// List godoc
// @Summary List episodes
// @Tags episodes
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{}
// @Router /v1/episodes [get]
func (h *EpisodeHandler) List(c echo.Context) error {
	p := page(c)
	episodes, total, err := h.episodeService.List(c.Request().Context(), p, episodesPerPage)
	if err != nil {
		return err
	}
	return successList(c, http.StatusOK, episodes, NewMeta(total, p, episodesPerPage))
}

// Show godoc
// @Summary Get a single episode
// @Tags episodes
// @Produce json
// @Param id path int true "Episode ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /v1/episodes/{id} [get]
func (h *EpisodeHandler) Show(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	episode, err := h.episodeService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, episode)
}

// Store godoc
// @Summary Create an episode
// @Tags episodes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body StoreEpisodeRequest true "Episode data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /v1/episodes [post]
func (h *EpisodeHandler) Store(c echo.Context) error {
	var req StoreEpisodeRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	episode, err := h.episodeService.Create(c.Request().Context(), service.EpisodeInput{
		Title:            &req.Title,
		Description:      &req.Description,
		ImgURL:           &req.ImgURL,
		AudioURL:         &req.AudioURL,
		Duration:         &req.Duration,
		PostedOn:         &req.PostedOn,
		Season:           &req.Season,
		Episode:          &req.Episode,
		SpotifyURL:       &req.SpotifyURL,
		ApplePodcastsURL: req.ApplePodcastsURL,
		Archive:          req.Archive,
		Featured:         req.Featured,
		Slug:             &req.Slug,
	})
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, episode)
}

// Update godoc
// @Summary Update an episode
// @Tags episodes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Episode ID"
// @Param request body UpdateEpisodeRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /v1/episodes/{id} [put]
func (h *EpisodeHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateEpisodeRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	episode, err := h.episodeService.Update(c.Request().Context(), id, service.EpisodeInput{
		Title:            req.Title,
		Description:      req.Description,
		ImgURL:           req.ImgURL,
		AudioURL:         req.AudioURL,
		Duration:         req.Duration,
		PostedOn:         req.PostedOn,
		Season:           req.Season,
		Episode:          req.Episode,
		SpotifyURL:       req.SpotifyURL,
		ApplePodcastsURL: req.ApplePodcastsURL,
		Archive:          req.Archive,
		Featured:         req.Featured,
		Slug:             req.Slug,
	})
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, episode)
}

// Destroy godoc
// @Summary Delete an episode
// @Tags episodes
// @Security BearerAuth
// @Param id path int true "Episode ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /v1/episodes/{id} [delete]
func (h *EpisodeHandler) Destroy(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.episodeService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// pathID parses the :id path parameter shared by every resource route.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
