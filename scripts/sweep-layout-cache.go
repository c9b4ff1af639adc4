package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-mapgen/internal/redis"
	"github.com/KirkDiggler/rpg-mapgen/internal/repositories/layout"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	client, err := redis.NewClient(redisURL, nil)
	if err != nil {
		log.Fatal("Failed to create Redis client:", err)
	}
	defer func() { _ = client.Close() }()

	ctx := context.Background()

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	repo, err := layout.NewRedisRepository(&layout.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		log.Fatal("Failed to create layout repository:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted cached layouts...")

	report, err := repo.Sweep(ctx, layout.SweepInput{})
	if err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d corrupted entries\n", report.Checked, len(report.Corrupt))

	if len(report.Corrupt) == 0 {
		fmt.Println("No corrupted layouts found!")
		return
	}

	fmt.Println("\nCorrupted keys:")
	for _, key := range report.Corrupt {
		fmt.Printf("  - %s\n", key)
	}

	// Ask for confirmation before deletion
	fmt.Print("\nDo you want to DELETE these corrupted entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	// Entries that turned corrupt since the first scan are swept too
	report, err = repo.Sweep(ctx, layout.SweepInput{Delete: true})
	if err != nil {
		log.Fatal("Error during cleanup:", err)
	}
	fmt.Printf("\nDeleted %d entries. Cleanup complete!\n", report.Deleted)
}
