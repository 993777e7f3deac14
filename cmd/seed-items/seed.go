package main

import (
	"context"
	"log"

	"github.com/marvelous-hawke/runeforge/internal/clients/dnd5e"
	apperr "github.com/marvelous-hawke/runeforge/internal/errors"
	"github.com/marvelous-hawke/runeforge/internal/repositories/documents"
)

var seedCategories = []string{"weapon", "armor", "standard-gear"}

// seedEquipment fetches each equipment category and stores the items,
// skipping ones already present. Returns the number of newly stored items.
// Fetch and store failures are logged and skipped so a partial run still
// seeds what it can.
func seedEquipment(ctx context.Context, client dnd5e.Client, repo documents.Repository, actorID, rarity string) int {
	total := 0
	for _, category := range seedCategories {
		fetched, err := client.GetEquipmentByCategory(category)
		if err != nil {
			log.Printf("Failed to fetch category %s: %v", category, err)
			continue
		}

		for _, item := range fetched {
			item.ActorID = actorID
			item.Rarity = rarity

			if err := repo.CreateItem(ctx, item); err != nil {
				if apperr.IsAlreadyExists(err) {
					continue
				}
				log.Printf("Failed to store %s: %v", item.ID, err)
				continue
			}
			total++
		}

		log.Printf("Seeded category %s (%d items)", category, len(fetched))
	}
	return total
}
