package dnd5e

import (
	"net/http"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"

	"github.com/marvelous-hawke/runeforge/internal/domain/items"
	apperr "github.com/marvelous-hawke/runeforge/internal/errors"
)

type client struct {
	client dnd5e.Interface
}

type Config struct {
	HttpClient *http.Client
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("cfg is required")
	}

	dndClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: cfg.HttpClient,
	})
	if err != nil {
		return nil, err
	}

	return &client{
		client: dndClient,
	}, nil
}

func (c *client) GetEquipment(key string) (*items.Item, error) {
	if key == "" {
		return nil, apperr.InvalidArgument("GetEquipment.key is required")
	}

	response, err := c.client.GetEquipment(key)
	if err != nil {
		return nil, err
	}

	return apiEquipmentInterfaceToItem(response), nil
}

func (c *client) GetEquipmentByCategory(category string) ([]*items.Item, error) {
	if category == "" {
		return nil, apperr.InvalidArgument("GetEquipmentByCategory.category is required")
	}

	categoryData, err := c.client.GetEquipmentCategory(category)
	if err != nil {
		return nil, err
	}

	result := make([]*items.Item, 0, len(categoryData.Equipment))
	for _, ref := range categoryData.Equipment {
		if ref.Key == "" {
			continue
		}
		item, err := c.GetEquipment(ref.Key)
		if err != nil {
			// Log error but continue with other equipment
			continue
		}
		if item != nil {
			result = append(result, item)
		}
	}

	return result, nil
}
