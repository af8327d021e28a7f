package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "github.com/bralash/rants-api/internal/errors"
	"github.com/bralash/rants-api/internal/service"
)

const playlistsPerPage = 15

// PlaylistHandler handles playlist endpoints, including episode linking.
type PlaylistHandler struct {
	playlistService service.PlaylistService
}

// NewPlaylistHandler creates a new playlist handler.
func NewPlaylistHandler(playlistService service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService}
}

// StorePlaylistRequest represents a playlist creation request.
type StorePlaylistRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	Episodes    []uint `json:"episodes"`
}

// UpdatePlaylistRequest represents a partial playlist update. A non-nil
// Episodes field requests a full replace of the linked set.
type UpdatePlaylistRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Episodes    *[]uint `json:"episodes"`
}

// AddEpisodesRequest represents an idempotent attach request.
type AddEpisodesRequest struct {
	Episodes []uint `json:"episodes" validate:"required,min=1"`
}

// List godoc
// @Summary List playlists with their episodes
// @Tags playlists
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{}
// @Router /v1/playlists [get]
func (h *PlaylistHandler) List(c echo.Context) error {
	p := page(c)
	playlists, total, err := h.playlistService.List(c.Request().Context(), p, playlistsPerPage)
	if err != nil {
		return err
	}
	return successList(c, http.StatusOK, playlists, NewMeta(total, p, playlistsPerPage))
}

// Show godoc
// @Summary Get a single playlist with its episodes
// @Tags playlists
// @Produce json
// @Param id path int true "Playlist ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /v1/playlists/{id} [get]
func (h *PlaylistHandler) Show(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	playlist, err := h.playlistService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, playlist)
}

// Store godoc
// @Summary Create a playlist, optionally attaching episodes
// @Tags playlists
// @Accept json
// @Produce json
// @Param request body StorePlaylistRequest true "Playlist data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /v1/playlists [post]
func (h *PlaylistHandler) Store(c echo.Context) error {
	var req StorePlaylistRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	playlist, err := h.playlistService.Create(c.Request().Context(), req.Name, req.Description, req.Episodes)
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, playlist)
}

// Update godoc
// @Summary Update a playlist; a provided episodes list fully replaces the linked set
// @Tags playlists
// @Accept json
// @Produce json
// @Param id path int true "Playlist ID"
// @Param request body UpdatePlaylistRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /v1/playlists/{id} [put]
func (h *PlaylistHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdatePlaylistRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	playlist, err := h.playlistService.Update(c.Request().Context(), id, service.PlaylistUpdate{
		Name:        req.Name,
		Description: req.Description,
		EpisodeIDs:  req.Episodes,
	})
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, playlist)
}

// AddEpisodes godoc
// @Summary Attach episodes to a playlist without detaching existing ones
// @Tags playlists
// @Accept json
// @Produce json
// @Param id path int true "Playlist ID"
// @Param request body AddEpisodesRequest true "Episode ids"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /v1/playlists/{id}/episodes [post]
func (h *PlaylistHandler) AddEpisodes(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req AddEpisodesRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	playlist, err := h.playlistService.AddEpisodes(c.Request().Context(), id, req.Episodes)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, playlist)
}

// RemoveEpisode godoc
// @Summary Detach one episode from a playlist
// @Tags playlists
// @Param id path int true "Playlist ID"
// @Param episodeId path int true "Episode ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /v1/playlists/{id}/episodes/{episodeId} [delete]
func (h *PlaylistHandler) RemoveEpisode(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	episodeID, err := strconv.ParseUint(c.Param("episodeId"), 10, 64)
	if err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid episode id")
	}

	if err := h.playlistService.RemoveEpisode(c.Request().Context(), id, uint(episodeID)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Destroy godoc
// @Summary Delete a playlist and its episode links
// @Tags playlists
// @Param id path int true "Playlist ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /v1/playlists/{id} [delete]
func (h *PlaylistHandler) Destroy(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.playlistService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
