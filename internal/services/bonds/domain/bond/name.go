package bond

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	apperrors "github.com/louisbranch/playerbonds/internal/platform/errors"
	"golang.org/x/text/unicode/norm"
)

// MaxNameLength is the longest bond name the input boundary accepts, in
// characters.
const MaxNameLength = 50

// NormalizeName composes name to NFC and truncates it to MaxNameLength
// characters. Composition runs first so combining sequences count once.
func NormalizeName(name string) string {
	name = norm.NFC.String(name)
	if utf8.RuneCountInString(name) <= MaxNameLength {
		return name
	}
	runes := []rune(name)
	return string(runes[:MaxNameLength])
}

// ValidateName rejects names longer than MaxNameLength after composition.
func ValidateName(name string) error {
	n := utf8.RuneCountInString(norm.NFC.String(name))
	if n <= MaxNameLength {
		return nil
	}
	return apperrors.WithMetadata(
		apperrors.CodeBondNameTooLong,
		fmt.Sprintf("bond name has %d characters, at most %d allowed", n, MaxNameLength),
		map[string]string{"Length": strconv.Itoa(n)},
	)
}
