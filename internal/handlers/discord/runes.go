package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	runesdomain "github.com/marvelous-hawke/runeforge/internal/domain/runes"
	runeService "github.com/marvelous-hawke/runeforge/internal/services/runes"
)

func subtypeChoices() []*discordgo.ApplicationCommandOptionChoice {
	subtypes := []runesdomain.Subtype{
		runesdomain.SubtypePrecision,
		runesdomain.SubtypeDamage,
		runesdomain.SubtypeElemental,
		runesdomain.SubtypeReinforcement,
		runesdomain.SubtypeProtection,
		runesdomain.SubtypeArcanePrecision,
		runesdomain.SubtypeArcaneOppression,
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(subtypes))
	for i, st := range subtypes {
		choices[i] = &discordgo.ApplicationCommandOptionChoice{
			Name:  string(st),
			Value: string(st),
		}
	}
	return choices
}

func (h *Handler) handleInstall(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	itemOpt := optionValue(sub, "item")
	runeOpt := optionValue(sub, "rune")
	if itemOpt == nil || runeOpt == nil {
		return h.respond(s, i, "Both an item and a rune are required.")
	}

	result, err := h.ServiceProvider.RuneService.InstallRune(ctx, itemOpt.StringValue(), runeOpt.StringValue())
	if err != nil {
		return err
	}

	return h.respond(s, i, installMessage(result))
}

func (h *Handler) handleRemove(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	itemOpt := optionValue(sub, "item")
	if itemOpt == nil {
		return h.respond(s, i, "An item is required.")
	}

	var selector runeService.RemoveSelector
	if opt := optionValue(sub, "all"); opt != nil && opt.BoolValue() {
		selector.All = true
	} else if opt := optionValue(sub, "rune"); opt != nil {
		selector.SourceID = opt.StringValue()
	} else if opt := optionValue(sub, "subtype"); opt != nil {
		subtype, ok := runesdomain.ParseSubtype(opt.StringValue())
		if !ok {
			return h.respond(s, i, "Unknown rune subtype.")
		}
		selector.Subtype = subtype
	} else {
		return h.respond(s, i, "Pick a subtype, a rune, or `all` to remove.")
	}

	result, err := h.ServiceProvider.RuneService.RemoveRunes(ctx, itemOpt.StringValue(), selector)
	if err != nil {
		return err
	}

	return h.respond(s, i, removeMessage(result))
}

func (h *Handler) handleInspect(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	itemOpt := optionValue(sub, "item")
	if itemOpt == nil {
		return h.respond(s, i, "An item is required.")
	}

	records, err := h.ServiceProvider.RuneService.GetRunes(ctx, itemOpt.StringValue())
	if err != nil {
		return err
	}

	return h.respond(s, i, inspectMessage(records))
}
