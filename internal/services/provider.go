package services

import (
	"github.com/marvelous-hawke/runeforge/internal/events"
	"github.com/marvelous-hawke/runeforge/internal/repositories/documents"
	runeService "github.com/marvelous-hawke/runeforge/internal/services/runes"
	"github.com/marvelous-hawke/runeforge/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	RuneService runeService.Service

	// EventBus is the document-change bus the services are wired to.
	EventBus *events.Bus

	// Repository is the document store backing the services.
	Repository documents.Repository
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Repository    documents.Repository
	EventBus      *events.Bus
	UUIDGenerator uuid.Generator
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}

	// Use in-memory repository if none provided
	repo := cfg.Repository
	if repo == nil {
		repo = documents.NewInMemoryRepository(&documents.InMemoryConfig{EventBus: bus})
	}

	runeSvc := runeService.NewService(&runeService.ServiceConfig{
		Repository:    repo,
		UUIDGenerator: cfg.UUIDGenerator,
		EventBus:      bus,
	})

	return &Provider{
		RuneService: runeSvc,
		EventBus:    bus,
		Repository:  repo,
	}
}
