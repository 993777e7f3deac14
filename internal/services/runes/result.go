package runes

import (
	runesdomain "github.com/marvelous-hawke/runeforge/internal/domain/runes"
)

// Reason is a machine-readable outcome code. Every expected outcome of the
// socketing state machine maps to one of these; the UI layer keys its
// user-facing messages off them.
type Reason string

const (
	// Failure reasons
	ReasonNoItem              Reason = "NO_ITEM"
	ReasonInvalidRuneData     Reason = "INVALID_RUNE_DATA"
	ReasonItemNotCompatible   Reason = "ITEM_NOT_COMPATIBLE"
	ReasonRuneAlreadySocketed Reason = "RUNE_ALREADY_SOCKETED"
	ReasonRuneWeakerOrEqual   Reason = "RUNE_WEAKER_OR_EQUAL_EXISTS"
	ReasonNoRuneSlots         Reason = "NO_RUNE_SLOTS"
	ReasonNoFreeRuneSlot      Reason = "NO_FREE_RUNE_SLOT"
	ReasonNoMatch             Reason = "NO_MATCH"

	// Success reasons
	ReasonInstalled      Reason = "INSTALLED"
	ReasonReplacedWeaker Reason = "REPLACED_WEAKER"
	ReasonRemoved        Reason = "REMOVED"
)

// InstallResult is the structured outcome of an install attempt. Expected
// failures are reported here, not as errors.
type InstallResult struct {
	OK     bool
	Reason Reason

	// Added is the record written on success.
	Added *runesdomain.InstalledRune

	// Replaced is the superseded record on a REPLACED_WEAKER success.
	Replaced *runesdomain.InstalledRune

	// Existing is the blocking record on a RUNE_WEAKER_OR_EQUAL_EXISTS
	// failure, returned for caller display.
	Existing *runesdomain.InstalledRune

	// HostID is the current holder on a RUNE_ALREADY_SOCKETED failure.
	HostID string

	// Total is the host's record count after the operation.
	Total int
}

// RemoveResult is the structured outcome of a remove attempt.
type RemoveResult struct {
	OK     bool
	Reason Reason

	// Removed holds the records taken off the host.
	Removed []runesdomain.InstalledRune

	// Total is the host's record count after the operation.
	Total int
}

// RemoveSelector identifies which installed records to remove. Exactly one
// of the fields should be set.
type RemoveSelector struct {
	// Subtype removes the record of that subtype.
	Subtype runesdomain.Subtype

	// SourceID removes records installed from that rune item.
	SourceID string

	// All removes every record.
	All bool
}

// Matches reports whether the selector covers the given record.
func (s RemoveSelector) Matches(record runesdomain.InstalledRune) bool {
	if s.All {
		return true
	}
	if s.SourceID != "" {
		return record.SourceID == s.SourceID
	}
	if s.Subtype != "" {
		return record.Subtype == s.Subtype
	}
	return false
}
