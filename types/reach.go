package types

import "strings"

// ReachIDFromRaw derives the reach identifier from a raw item name.
//
// A reach identifier is formed by joining the first two underscore-delimited
// tokens of the raw name: "12_34_sweep3.csv" yields "12_34". The same prefix
// appearing in multiple raw names collapses to a single reach during
// planning.
//
// Parameters:
//   - raw: Raw item name as reported by a ReachSource
//
// Returns:
//   - string: The derived reach identifier ("" when not derivable)
//   - bool: false when raw has fewer than two underscore-delimited tokens
func ReachIDFromRaw(raw string) (string, bool) {
	first, rest, ok := strings.Cut(raw, "_")
	if !ok || first == "" {
		return "", false
	}

	second, _, _ := strings.Cut(rest, "_")
	if second == "" {
		return "", false
	}

	return first + "_" + second, true
}
