package discord

import (
	"fmt"
	"strings"

	runesdomain "github.com/marvelous-hawke/runeforge/internal/domain/runes"
	runeService "github.com/marvelous-hawke/runeforge/internal/services/runes"
)

// installMessage renders an install outcome for the user. Every reason code
// gets its own message so failures explain themselves.
func installMessage(result *runeService.InstallResult) string {
	switch result.Reason {
	case runeService.ReasonInstalled:
		return fmt.Sprintf("Installed %s (%d socketed).", describeRune(result.Added), result.Total)
	case runeService.ReasonReplacedWeaker:
		return fmt.Sprintf("Installed %s, replacing the weaker %s.",
			describeRune(result.Added), describeRune(result.Replaced))
	case runeService.ReasonRuneWeakerOrEqual:
		return fmt.Sprintf("A rune of equal or higher tier is already socketed: %s.",
			describeRune(result.Existing))
	case runeService.ReasonNoRuneSlots:
		return "That item has no rune slots; its rarity is too low."
	case runeService.ReasonNoFreeRuneSlot:
		return "Every rune slot on that item is already filled."
	case runeService.ReasonItemNotCompatible:
		return "That rune does not fit this kind of item."
	case runeService.ReasonRuneAlreadySocketed:
		return fmt.Sprintf("That rune is already socketed in another item (%s).", result.HostID)
	case runeService.ReasonInvalidRuneData:
		return "That item is not a usable rune."
	case runeService.ReasonNoItem:
		return "Item or rune not found."
	default:
		return "The rune could not be installed."
	}
}

// removeMessage renders a remove outcome for the user.
func removeMessage(result *runeService.RemoveResult) string {
	switch result.Reason {
	case runeService.ReasonRemoved:
		names := make([]string, len(result.Removed))
		for i, r := range result.Removed {
			names[i] = describeRune(&r)
		}
		return fmt.Sprintf("Removed %s (%d still socketed).", strings.Join(names, ", "), result.Total)
	case runeService.ReasonNoMatch:
		return "No installed rune matches that selection."
	case runeService.ReasonNoItem:
		return "Item not found."
	default:
		return "The runes could not be removed."
	}
}

// inspectMessage renders an item's installed runes.
func inspectMessage(records []runesdomain.InstalledRune) string {
	if len(records) == 0 {
		return "No runes are socketed in that item."
	}

	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = "• " + describeRune(&r)
	}
	return "Socketed runes:\n" + strings.Join(lines, "\n")
}

func describeRune(r *runesdomain.InstalledRune) string {
	if r == nil {
		return "a rune"
	}
	if r.Subtype == runesdomain.SubtypeElemental && r.DamageType != "" {
		return fmt.Sprintf("%s %s rune (%s)", r.Tier, r.Subtype, r.DamageType)
	}
	return fmt.Sprintf("%s %s rune", r.Tier, r.Subtype)
}
