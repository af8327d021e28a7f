package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/bralash/rants-api/internal/auth"
	"github.com/bralash/rants-api/internal/config"
	apperrors "github.com/bralash/rants-api/internal/errors"
	"github.com/bralash/rants-api/internal/handler"
	"github.com/bralash/rants-api/internal/middleware"
	"github.com/bralash/rants-api/internal/model"
	"github.com/bralash/rants-api/internal/ratelimit"
)

// Register wires routes and middleware. Role allow-sets are declared here,
// per route group, so authorization policy lives in one place.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	limiter *ratelimit.Limiter,
	tokens *auth.TokenService,
	authHandler *handler.AuthHandler,
	episodeHandler *handler.EpisodeHandler,
	playlistHandler *handler.PlaylistHandler,
	teamMemberHandler *handler.TeamMemberHandler,
	socialLinkHandler *handler.SocialLinkHandler,
	confessionHandler *handler.ConfessionHandler,
) {
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = ErrorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	publicLimit := middleware.RateLimitByIP(limiter, middleware.BucketPublic, ratelimit.PerMinute(cfg.RatePublicPerMin))
	loginLimit := middleware.RateLimitByIP(limiter, middleware.BucketLogin, ratelimit.PerMinute(cfg.RateLoginPerMin))
	authenticate := middleware.Authenticate(tokens)
	apiLimit := middleware.RateLimitAPI(limiter, ratelimit.PerMinute(cfg.RateAPIUserPerMin), ratelimit.PerMinute(cfg.RateAPIIPPerMin))

	v1 := e.Group("/v1")

	// Public auth routes
	v1.POST("/register", authHandler.Register, publicLimit)
	v1.POST("/login", authHandler.Login, loginLimit)
	v1.POST("/logout", authHandler.Logout, authenticate, apiLimit)

	// Confessions: anyone may read and submit; only admins moderate.
	v1.GET("/confessions", confessionHandler.List)
	v1.GET("/confessions/:id", confessionHandler.Show)
	v1.POST("/confessions", confessionHandler.Store, publicLimit)
	admin := []echo.MiddlewareFunc{authenticate, apiLimit, middleware.RequireRole(model.RoleAdmin)}
	v1.PUT("/confessions/:id", confessionHandler.ToggleApproval, admin...)
	v1.DELETE("/confessions/:id", confessionHandler.Destroy, admin...)

	// Episodes: public reads, admin writes.
	v1.GET("/episodes", episodeHandler.List)
	v1.GET("/episodes/:id", episodeHandler.Show)
	v1.POST("/episodes", episodeHandler.Store, admin...)
	v1.PUT("/episodes/:id", episodeHandler.Update, admin...)
	v1.DELETE("/episodes/:id", episodeHandler.Destroy, admin...)

	// Playlists: public in the current routing, episode linking included.
	v1.GET("/playlists", playlistHandler.List)
	v1.GET("/playlists/:id", playlistHandler.Show)
	v1.POST("/playlists", playlistHandler.Store)
	v1.PUT("/playlists/:id", playlistHandler.Update)
	v1.DELETE("/playlists/:id", playlistHandler.Destroy)
	v1.POST("/playlists/:id/episodes", playlistHandler.AddEpisodes)
	v1.DELETE("/playlists/:id/episodes/:episodeId", playlistHandler.RemoveEpisode)

	// Team members: all roles read, managers update, admins do everything.
	members := v1.Group("/team-members", authenticate, apiLimit)
	members.GET("", teamMemberHandler.List, middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleUser))
	members.GET("/:id", teamMemberHandler.Show, middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleUser))
	members.POST("", teamMemberHandler.Store, middleware.RequireRole(model.RoleAdmin))
	members.PUT("/:id", teamMemberHandler.Update, middleware.RequireRole(model.RoleAdmin, model.RoleManager))
	members.DELETE("/:id", teamMemberHandler.Destroy, middleware.RequireRole(model.RoleAdmin))

	// Standalone social media link management mirrors the team-member policy.
	links := v1.Group("/social-media-links", authenticate, apiLimit)
	links.GET("", socialLinkHandler.List, middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleUser))
	links.GET("/:id", socialLinkHandler.Show, middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleUser))
	links.POST("", socialLinkHandler.Store, middleware.RequireRole(model.RoleAdmin))
	links.PUT("/:id", socialLinkHandler.Update, middleware.RequireRole(model.RoleAdmin))
	links.DELETE("/:id", socialLinkHandler.Destroy, middleware.RequireRole(model.RoleAdmin))
}

// CustomValidator wraps validator for Echo and converts tag failures into
// the canonical 400 shape with per-field messages.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return apperrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fields := make(map[string]string, len(invalid))
	for _, fe := range invalid {
		fields[fe.Field()] = fmt.Sprintf("failed on the %s rule", fe.Tag())
	}
	return apperrors.NewValidationError("validation failed", fields)
}

// ErrorHandler renders every error through the canonical envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *apperrors.HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			httpErr = apperrors.NewHTTPError(echoErr.Code, fmt.Sprintf("%v", echoErr.Message))
		} else {
			httpErr = apperrors.MapErrorToHTTP(err)
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.StatusCode)
		return
	}
	_ = c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}
