package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bralash/rants-api/internal/auth"
	"github.com/bralash/rants-api/internal/cache"
	"github.com/bralash/rants-api/internal/config"
	"github.com/bralash/rants-api/internal/db"
	"github.com/bralash/rants-api/internal/handler"
	"github.com/bralash/rants-api/internal/model"
	"github.com/bralash/rants-api/internal/ratelimit"
	"github.com/bralash/rants-api/internal/repository"
	"github.com/bralash/rants-api/internal/router"
	"github.com/bralash/rants-api/internal/service"
)

// @title Rants and Confessions API
// @version 1.0
// @description Content management API for the Rants and Confessions podcast: episodes, playlists, team members, and anonymous confessions with token authentication.
// @host localhost:8080
// @BasePath /v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.AccessToken{},
		&model.Episode{},
		&model.Playlist{},
		&model.PlaylistEpisode{},
		&model.TeamMember{},
		&model.SocialMediaLink{},
		&model.Confession{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	limiter := ratelimit.NewLimiter(ratelimit.NewRedisStore(cacheClient))

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	tokenRepo := repository.NewTokenRepository(gormDB)
	episodeRepo := repository.NewEpisodeRepository(gormDB)
	playlistRepo := repository.NewPlaylistRepository(gormDB)
	teamMemberRepo := repository.NewTeamMemberRepository(gormDB)
	socialLinkRepo := repository.NewSocialLinkRepository(gormDB)
	confessionRepo := repository.NewConfessionRepository(gormDB)

	// Initialize auth components
	tokenService := auth.NewTokenService(tokenRepo, userRepo)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenService)
	episodeService := service.NewEpisodeService(episodeRepo, cacheClient)
	playlistService := service.NewPlaylistService(playlistRepo, episodeRepo)
	teamMemberService := service.NewTeamMemberService(teamMemberRepo)
	socialLinkService := service.NewSocialLinkService(socialLinkRepo, teamMemberRepo)
	confessionService := service.NewConfessionService(confessionRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	episodeHandler := handler.NewEpisodeHandler(episodeService)
	playlistHandler := handler.NewPlaylistHandler(playlistService)
	teamMemberHandler := handler.NewTeamMemberHandler(teamMemberService)
	socialLinkHandler := handler.NewSocialLinkHandler(socialLinkService)
	confessionHandler := handler.NewConfessionHandler(confessionService)

	// Register routes
	router.Register(
		e,
		cfg,
		limiter,
		tokenService,
		authHandler,
		episodeHandler,
		playlistHandler,
		teamMemberHandler,
		socialLinkHandler,
		confessionHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
