// Package pricing resolves the unit amount of a cart line. Amounts are
// integers in minor currency units (cents). Resolution is server-side
// only; whatever price the client thinks it saw is never consulted.
package pricing

import "strings"

// Per-tier fallback amounts, used when the item carries no explicit price
// for the requested license.
const (
	defaultMP3       int64 = 1999
	defaultWAV       int64 = 2999
	defaultUnlimited int64 = 3999
	defaultStems     int64 = 4999
)

// Resolve maps an item's pricing table and a license tier to a unit
// amount. An explicit positive price on the item wins; otherwise the tier
// falls back to its default, and unknown tiers price as mp3.
func Resolve(itemPricing map[string]int64, licenseTier string) int64 {
	key := strings.ToLower(strings.TrimSpace(licenseTier))
	if key == "" {
		key = "mp3"
	}

	if v, ok := itemPricing[key]; ok && v > 0 {
		return v
	}

	switch key {
	case "wav":
		return defaultWAV
	case "stems", "premium_wav_stems", "unlimited_stems":
		return defaultStems
	case "unlimited":
		return defaultUnlimited
	default:
		return defaultMP3
	}
}

// Normalize returns the canonical tier key used in provider metadata and
// product names.
func Normalize(licenseTier string) string {
	key := strings.ToLower(strings.TrimSpace(licenseTier))
	if key == "" {
		return "mp3"
	}
	return key
}
