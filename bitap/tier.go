package bitap

import "fmt"

// Tier identifies the bit-vector representation backing an automaton.
type Tier uint8

const (
	// TierAuto selects the narrowest tier that covers the pattern.
	TierAuto Tier = iota

	// TierHalf uses one 32-bit word per row (patterns up to 32 runes).
	TierHalf

	// TierFull uses one 64-bit word per row (patterns up to 64 runes).
	TierFull

	// TierUnbounded uses a multi-word vector per row (any length).
	TierUnbounded
)

const (
	halfBits = 32
	fullBits = 64
)

// String returns a human-readable tier name.
func (t Tier) String() string {
	switch t {
	case TierAuto:
		return "Auto"
	case TierHalf:
		return "Half"
	case TierFull:
		return "Full"
	case TierUnbounded:
		return "Unbounded"
	default:
		return fmt.Sprintf("Tier(%d)", t)
	}
}

// SelectTier returns the tier used for a pattern of the given width.
//
// A requested tier that is too narrow for the width is widened to the
// smallest tier that fits; TierAuto picks the smallest fitting tier.
func SelectTier(width int, requested Tier) Tier {
	fit := TierUnbounded
	switch {
	case width <= halfBits:
		fit = TierHalf
	case width <= fullBits:
		fit = TierFull
	}

	if requested == TierAuto || requested < fit || requested > TierUnbounded {
		return fit
	}
	return requested
}
