package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e . Client

import (
	"github.com/marvelous-hawke/runeforge/internal/domain/items"
)

// Client fetches SRD equipment and converts it into host item documents.
// Used by the item seeder to populate a world with rune-capable gear.
type Client interface {
	GetEquipment(key string) (*items.Item, error)
	GetEquipmentByCategory(category string) ([]*items.Item, error)
}
