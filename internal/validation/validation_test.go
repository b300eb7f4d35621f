package validation

import (
	"strings"
	"testing"
)

func TestIsValidSeatNumber(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"12A", true},
		{"1A", true},
		{"3F", true},
		{"100B", true},
		{"12a", false}, // lowercase rejected
		{"12G", false}, // letter outside A-F
		{"A12", false},
		{"12", false},
		{"12AB", false},
		{"", false},
		{"   ", false},
		{" 12A", false}, // not anchored with padding
		{"12A ", false},
	}
	for _, tc := range cases {
		if got := IsValidSeatNumber(tc.in); got != tc.want {
			t.Errorf("IsValidSeatNumber(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsValidNoteText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"single char", "x", true},
		{"normal text", "great legroom", true},
		{"exactly max length", strings.Repeat("a", 500), true},
		{"over max length", strings.Repeat("a", 501), false},
		{"empty", "", false},
		{"whitespace only", "   \t\n", false},
		{"padded but within limit", "  hi  ", true},
		// Length is checked before trimming: 500 meaningful chars plus
		// padding exceed the limit even though the trimmed result fits.
		{"padded to over limit", "  " + strings.Repeat("a", 500) + "  ", false},
	}
	for _, tc := range cases {
		if got := IsValidNoteText(tc.in); got != tc.want {
			t.Errorf("%s: IsValidNoteText(%q) = %v, want %v", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestSanitizeNoteText(t *testing.T) {
	if got := SanitizeNoteText("  hi  "); got != "hi" {
		t.Errorf("SanitizeNoteText trimmed to %q, want %q", got, "hi")
	}
	if got := SanitizeNoteText(""); got != "" {
		t.Errorf("SanitizeNoteText(\"\") = %q, want empty", got)
	}
	// Idempotence: sanitizing a sanitized string is a no-op.
	for _, s := range []string{"  hi  ", "already trimmed", "\tmulti  word \n"} {
		once := SanitizeNoteText(s)
		twice := SanitizeNoteText(once)
		if once != twice {
			t.Errorf("SanitizeNoteText not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}

func TestValidatePowerConfiguration(t *testing.T) {
	cases := []struct {
		available bool
		powerType string
		want      bool
	}{
		{true, "USB-C", true},
		{true, "", false},
		{true, "   ", false},
		{false, "", true},
		{false, "USB", true},
	}
	for _, tc := range cases {
		if got := ValidatePowerConfiguration(tc.available, tc.powerType); got != tc.want {
			t.Errorf("ValidatePowerConfiguration(%v, %q) = %v, want %v",
				tc.available, tc.powerType, got, tc.want)
		}
	}
}
