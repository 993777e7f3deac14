package discord

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/marvelous-hawke/runeforge/internal/services"
)

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "runes",
			Description: "Rune socketing commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "install",
					Description: "Socket a rune into an item",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "item",
							Description: "Host item ID",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "rune",
							Description: "Rune item ID",
							Required:    true,
						},
					},
				},
				{
					Name:        "remove",
					Description: "Remove runes from an item",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "item",
							Description: "Host item ID",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "subtype",
							Description: "Remove the rune of this subtype",
							Required:    false,
							Choices:     subtypeChoices(),
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "rune",
							Description: "Remove the rune installed from this rune item ID",
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "all",
							Description: "Remove every installed rune",
							Required:    false,
						},
					},
				},
				{
					Name:        "inspect",
					Description: "Show the runes installed in an item",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "item",
							Description: "Host item ID",
							Required:    true,
						},
					},
				},
			},
		},
	}

	for _, cmd := range commands {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd); err != nil {
			return err
		}
	}

	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	if data.Name != "runes" {
		return
	}
	if len(data.Options) == 0 {
		return
	}

	ctx := context.Background()
	sub := data.Options[0]

	var err error
	switch sub.Name {
	case "install":
		err = h.handleInstall(ctx, s, i, sub)
	case "remove":
		err = h.handleRemove(ctx, s, i, sub)
	case "inspect":
		err = h.handleInspect(ctx, s, i, sub)
	}
	if err != nil {
		log.Printf("Error handling /runes %s: %v", sub.Name, err)
		h.respondError(s, i)
	}
}

// respond sends an ephemeral text response to the interaction.
func (h *Handler) respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func (h *Handler) respondError(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := h.respond(s, i, "Something went wrong handling that command."); err != nil {
		log.Printf("Error sending error response: %v", err)
	}
}

// optionValue finds a named option under a subcommand. Returns nil when the
// user did not supply it.
func optionValue(sub *discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range sub.Options {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}
