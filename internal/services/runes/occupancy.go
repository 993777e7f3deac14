package runes

import (
	"context"
	"log"

	"github.com/marvelous-hawke/runeforge/internal/domain/items"
	runesdomain "github.com/marvelous-hawke/runeforge/internal/domain/runes"
)

// Socket occupancy is advisory bookkeeping on the rune item side: the host's
// record list is the authoritative state, so claim and release failures are
// logged and swallowed rather than aborting the surrounding operation. A
// stale back-reference self-heals on the next install attempt.

// socketHost reads the rune item's back-reference to its current host.
// Returns "" when the rune is unsocketed.
func socketHost(runeItem *items.Item) string {
	var host string
	runeItem.GetFlag(runesdomain.FlagSocketHost, &host)
	return host
}

// claim marks the rune item as socketed into the given host.
func (s *service) claim(ctx context.Context, runeItem *items.Item, hostID string) {
	if err := runeItem.SetFlag(runesdomain.FlagSocketHost, hostID); err != nil {
		log.Printf("Runes: failed to mark rune %s as claimed by %s: %v", runeItem.ID, hostID, err)
		return
	}
	if err := s.repo.SaveItem(ctx, runeItem); err != nil {
		log.Printf("Runes: failed to claim rune %s for host %s: %v", runeItem.ID, hostID, err)
	}
}

// releaseClaim clears the back-reference on the rune item with the given ID,
// but only while it still points at expectedHostID. A release must never
// clobber a newer claim by a different host.
func (s *service) releaseClaim(ctx context.Context, runeItemID, expectedHostID string) {
	if runeItemID == "" {
		return
	}

	runeItem, err := s.repo.GetItem(ctx, runeItemID)
	if err != nil {
		log.Printf("Runes: failed to load rune %s for release: %v", runeItemID, err)
		return
	}

	if socketHost(runeItem) != expectedHostID {
		return
	}

	runeItem.UnsetFlag(runesdomain.FlagSocketHost)
	if err := s.repo.SaveItem(ctx, runeItem); err != nil {
		log.Printf("Runes: failed to release rune %s from host %s: %v", runeItemID, expectedHostID, err)
	}
}
