package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/marvelous-hawke/runeforge/internal/clients/dnd5e"
	"github.com/marvelous-hawke/runeforge/internal/repositories/documents"
)

// seed-items pulls SRD equipment from the D&D 5e API and loads it into Redis
// as rune-capable item documents.
func main() {
	var (
		redisURL = flag.String("redis-url", "redis://localhost:6379", "Redis connection URL")
		actorID  = flag.String("actor", "", "Optional actor ID to assign the seeded items to")
		rarity   = flag.String("rarity", "common", "Rarity to stamp on seeded items")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	opts, err := redis.ParseURL(*redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}
	client := redis.NewClient(opts)
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			log.Printf("Error closing Redis connection: %v", closeErr)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := client.Ping(ctx).Err(); err != nil {
		cancel()
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	cancel()

	dndClient, err := dnd5e.New(&dnd5e.Config{
		HttpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	})
	if err != nil {
		log.Fatalf("Failed to create D&D 5e client: %v", err)
	}

	repo := documents.NewRedis(client, nil)

	total := seedEquipment(context.Background(), dndClient, repo, *actorID, *rarity)
	log.Printf("Done, %d new items stored", total)
}
