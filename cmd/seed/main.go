package main

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/bralash/rants-api/internal/config"
	"github.com/bralash/rants-api/internal/db"
	"github.com/bralash/rants-api/internal/model"
	"github.com/bralash/rants-api/internal/repository"
)

const seedEpisodes = 10

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

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
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	episodeRepo := repository.NewEpisodeRepository(gormDB)
	playlistRepo := repository.NewPlaylistRepository(gormDB)
	teamMemberRepo := repository.NewTeamMemberRepository(gormDB)

	// Admin account for content management
	if _, err := userRepo.FindByEmail(ctx, "admin@rantsandconfessions.com"); err != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte("password"), 10)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		admin := &model.User{
			Name:         "Admin",
			Email:        "admin@rantsandconfessions.com",
			PasswordHash: string(hashed),
			Role:         model.RoleAdmin,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Println("Created admin user")
	}

	// Sample episodes
	episodeIDs := make([]uint, 0, seedEpisodes)
	for i := 1; i <= seedEpisodes; i++ {
		slug := fmt.Sprintf("episode-%d", i)
		if existing, err := episodeRepo.FindBySlug(ctx, slug); err == nil {
			episodeIDs = append(episodeIDs, existing.ID)
			continue
		}
		episode := &model.Episode{
			Title:       fmt.Sprintf("Episode %d", i),
			Description: "A sample episode seeded for local development.",
			ImgURL:      fmt.Sprintf("https://cdn.rantsandconfessions.com/img/episode-%d.jpg", i),
			AudioURL:    fmt.Sprintf("https://cdn.rantsandconfessions.com/audio/episode-%d.mp3", i),
			Duration:    "00:45:30",
			PostedOn:    "2024-12-01",
			Season:      1,
			Episode:     i,
			SpotifyURL:  fmt.Sprintf("https://open.spotify.com/episode/%d", i),
			Slug:        slug,
		}
		if err := episodeRepo.Create(ctx, episode); err != nil {
			log.Fatalf("Failed to create episode %d: %v", i, err)
		}
		episodeIDs = append(episodeIDs, episode.ID)
	}
	log.Printf("Seeded %d episodes", len(episodeIDs))

	// A playlist holding the first half of the episodes
	playlist := &model.Playlist{
		Name:        "Season One Highlights",
		Description: "Hand-picked episodes from the first season.",
	}
	if err := playlistRepo.Create(ctx, playlist); err != nil {
		log.Fatalf("Failed to create playlist: %v", err)
	}
	if err := playlistRepo.AddLinks(ctx, playlist.ID, episodeIDs[:len(episodeIDs)/2]); err != nil {
		log.Fatalf("Failed to attach episodes: %v", err)
	}
	log.Println("Seeded playlist with episodes")

	// A team member with social links
	member := &model.TeamMember{
		Name: "Emmanuel Asaber",
		Role: "Host",
		Bio:  "Host and producer of Rants and Confessions.",
		SocialMediaLinks: []model.SocialMediaLink{
			{Platform: "twitter", URL: "https://twitter.com/rantsandconfessions"},
			{Platform: "instagram", URL: "https://instagram.com/rantsandconfessions"},
		},
	}
	if err := teamMemberRepo.Create(ctx, member); err != nil {
		log.Fatalf("Failed to create team member: %v", err)
	}
	log.Println("Seeded team member with social links")

	log.Println("Seed completed")
}
