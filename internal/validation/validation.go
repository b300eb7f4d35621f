// Package validation contains pure helpers for checking seat and note
// input before it reaches the database. All functions are side-effect
// free so they can run ahead of any store round-trip.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxNoteLength is the upper bound on note text, in characters.
const MaxNoteLength = 500

// seatNumberPattern matches one or more row digits followed by a single
// seat letter A-F. Anchored at both ends; lowercase letters are rejected.
var seatNumberPattern = regexp.MustCompile(`^[0-9]+[A-F]$`)

// IsValidSeatNumber reports whether s is a well-formed seat number such
// as "12A" or "3F". Empty and whitespace-only strings are invalid.
func IsValidSeatNumber(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	return seatNumberPattern.MatchString(s)
}

// IsValidNoteText reports whether s is acceptable note text: non-blank
// and at most MaxNoteLength characters. The length check runs on the raw
// string, before any trimming; SanitizeNoteText trims separately.
func IsValidNoteText(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	return utf8.RuneCountInString(s) <= MaxNoteLength
}

// SanitizeNoteText returns s with leading and trailing whitespace
// removed. Idempotent: sanitizing an already-trimmed string returns it
// unchanged.
func SanitizeNoteText(s string) string {
	return strings.TrimSpace(s)
}

// ValidatePowerConfiguration reports whether a seat's power fields are
// consistent: a seat advertising power must name a power type. Seats are
// not writable through the API, so this is only exercised against seed
// fixtures today.
func ValidatePowerConfiguration(powerAvailable bool, powerType string) bool {
	if powerAvailable && strings.TrimSpace(powerType) == "" {
		return false
	}
	return true
}
