package bond

import (
	"strings"
	"testing"
	"unicode/utf8"

	apperrors "github.com/louisbranch/playerbonds/internal/platform/errors"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"short", "Mira", "Mira"},
		{"exact limit", strings.Repeat("a", MaxNameLength), strings.Repeat("a", MaxNameLength)},
		{"truncated", strings.Repeat("b", MaxNameLength+10), strings.Repeat("b", MaxNameLength)},
		{"composed", "Jose\u0301", "Jos\u00e9"},
		{"multibyte truncated", strings.Repeat("e\u0301", MaxNameLength+1), strings.Repeat("\u00e9", MaxNameLength)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeName(tt.value)
			if got != tt.want {
				t.Fatalf("name = %q, want %q", got, tt.want)
			}
			if utf8.RuneCountInString(got) > MaxNameLength {
				t.Fatalf("name has %d characters", utf8.RuneCountInString(got))
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName(strings.Repeat("a", MaxNameLength)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 50 composed characters written with combining accents.
	if err := ValidateName(strings.Repeat("e\u0301", MaxNameLength)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := ValidateName(strings.Repeat("a", MaxNameLength+1))
	if apperrors.CodeOf(err) != apperrors.CodeBondNameTooLong {
		t.Fatalf("err = %v, want name too long", err)
	}
}
