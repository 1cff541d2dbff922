package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-social-network/config"
	"github.com/oksasatya/go-social-network/internal/application"
	"github.com/oksasatya/go-social-network/internal/domain/entity"
	mongoinfra "github.com/oksasatya/go-social-network/internal/infrastructure/mongodb"
	"github.com/oksasatya/go-social-network/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	mc, err := mongoinfra.Connect(ctx, cfg.MongoURL, cfg.MongoTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = mc.Disconnect(context.Background()) }()
	db := mc.Database(cfg.MongoDB)
	if err := mongoinfra.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to create indexes: %v", err)
	}

	users := mongoinfra.NewUserRepository(db, cfg.MongoTimeout)
	profiles := mongoinfra.NewProfileRepository(db, cfg.MongoTimeout)
	posts := mongoinfra.NewPostRepository(db, cfg.MongoTimeout)

	email := "demo@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	now := time.Now().UTC()
	user := &entity.User{
		Name:      "Demo User",
		Email:     email,
		Password:  hash,
		Avatar:    helpers.GravatarURL(email),
		IsAdmin:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := users.Upsert(ctx, user); err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s admin=true\n", user.ID, email, password)

	github := "demo"
	profile := &entity.Profile{
		UserID:         user.ID,
		Company:        "Demo Inc",
		Website:        "https://example.com",
		Location:       "Jakarta",
		Designation:    "Developer",
		Skills:         application.SplitSkills("Go, MongoDB, Docker"),
		Bio:            "Seeded account for local development",
		GithubUsername: github,
		Experience:     []entity.Experience{},
		Education:      []entity.Education{},
		Social:         entity.Social{Twitter: &github},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := profiles.Upsert(ctx, profile); err != nil {
		log.Fatalf("failed to seed profile: %v", err)
	}
	fmt.Println("seeded profile for demo user")

	existing, err := posts.List(ctx)
	if err != nil {
		log.Fatalf("failed to list posts: %v", err)
	}
	if len(existing) > 0 {
		fmt.Printf("posts already present (%d), skipping\n", len(existing))
		return
	}
	post := &entity.Post{
		UserID:    user.ID,
		Text:      "Hello from the seeder",
		Image:     "https://picsum.photos/600/400",
		Name:      user.Name,
		Avatar:    user.Avatar,
		Likes:     []entity.Like{},
		Comments:  []entity.Comment{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := posts.Create(ctx, post); err != nil {
		log.Fatalf("failed to seed post: %v", err)
	}
	fmt.Printf("seeded post: id=%s\n", post.ID)
}
