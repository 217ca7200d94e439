package fuzzy

import (
	"log/slog"

	"github.com/coregx/fuzzy/bitap"
)

// Tier identifies the bit-vector representation backing a pattern.
type Tier = bitap.Tier

// Width tiers.
const (
	// TierAuto selects the narrowest tier that covers the pattern.
	TierAuto = bitap.TierAuto

	// TierHalf uses a 32-bit word per row (patterns up to 32 characters).
	TierHalf = bitap.TierHalf

	// TierFull uses a 64-bit word per row (patterns up to 64 characters).
	TierFull = bitap.TierFull

	// TierUnbounded uses a multi-word vector per row (any length).
	TierUnbounded = bitap.TierUnbounded
)

// Config controls pattern compilation.
//
// Example:
//
//	config := fuzzy.DefaultConfig()
//	config.CaseInsensitive = true
//	p, err := fuzzy.CompileWithConfig("Duis", 1, config)
type Config struct {
	// CaseInsensitive folds case (Unicode simple folding) when comparing
	// characters.
	// Default: false
	CaseInsensitive bool

	// Tier forces a bit-vector tier. A tier too narrow for the pattern is
	// widened; results never depend on the tier.
	// Default: TierAuto
	Tier Tier

	// EnablePrefilter lets matchers skip text that contains none of the
	// pattern's k+1 exact pieces. Only case-sensitive patterns with at least
	// k+1 characters have a prefilter.
	// Default: true
	EnablePrefilter bool

	// MinPieceLen is the minimum length in bytes of a prefilter piece.
	// Shorter pieces match too often to skip anything.
	// Default: 1
	MinPieceLen int

	// Logger receives debug records about compilation and scanning
	// decisions. nil discards them.
	// Default: nil
	Logger *slog.Logger
}

// DefaultConfig returns a configuration with sensible defaults.
//
// Example:
//
//	config := fuzzy.DefaultConfig()
//	config.EnablePrefilter = false // Always run the automaton over every rune
func DefaultConfig() Config {
	return Config{
		Tier:            TierAuto,
		EnablePrefilter: true,
		MinPieceLen:     1,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
//
// Valid ranges:
//   - Tier: TierAuto to TierUnbounded
//   - MinPieceLen: 1 to 64 (checked only when the prefilter is enabled)
func (c Config) Validate() error {
	if c.Tier > TierUnbounded {
		return &ConfigError{
			Field:   "Tier",
			Message: "unknown tier " + c.Tier.String(),
		}
	}

	if c.EnablePrefilter {
		if c.MinPieceLen < 1 || c.MinPieceLen > 64 {
			return &ConfigError{
				Field:   "MinPieceLen",
				Message: "must be between 1 and 64",
			}
		}
	}

	return nil
}

// logger returns the configured logger or one that discards everything.
func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}
