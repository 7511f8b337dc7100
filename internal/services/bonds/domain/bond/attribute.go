package bond

import "strings"

// Attribute names one of the six bond flags.
type Attribute string

const (
	AttributeAdmiration  Attribute = "admiration"
	AttributeLoyalty     Attribute = "loyalty"
	AttributeAffection   Attribute = "affection"
	AttributeInferiority Attribute = "inferiority"
	AttributeMistrust    Attribute = "mistrust"
	AttributeHatred      Attribute = "hatred"

	// legacyLoyalty is the spelling stored by older player documents.
	legacyLoyalty = "loyality"
)

// Pair is an opposed pair of attributes; at most one may be set.
type Pair struct {
	First  Attribute
	Second Attribute
}

// Pairs lists the opposed pairs in display order.
var Pairs = [3]Pair{
	{First: AttributeAdmiration, Second: AttributeInferiority},
	{First: AttributeLoyalty, Second: AttributeMistrust},
	{First: AttributeAffection, Second: AttributeHatred},
}

var opposites = map[Attribute]Attribute{
	AttributeAdmiration:  AttributeInferiority,
	AttributeInferiority: AttributeAdmiration,
	AttributeLoyalty:     AttributeMistrust,
	AttributeMistrust:    AttributeLoyalty,
	AttributeAffection:   AttributeHatred,
	AttributeHatred:      AttributeAffection,
}

// Attributes returns all attributes, positive traits first.
func Attributes() []Attribute {
	return []Attribute{
		AttributeAdmiration,
		AttributeLoyalty,
		AttributeAffection,
		AttributeInferiority,
		AttributeMistrust,
		AttributeHatred,
	}
}

// Opposite returns the paired attribute, if any.
func (a Attribute) Opposite() (Attribute, bool) {
	o, ok := opposites[a]
	return o, ok
}

// Valid reports whether a names a known attribute.
func (a Attribute) Valid() bool {
	_, ok := opposites[a]
	return ok
}

// ParseAttribute parses an attribute label into a canonical value.
func ParseAttribute(value string) (Attribute, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == legacyLoyalty {
		return AttributeLoyalty, true
	}
	a := Attribute(normalized)
	if !a.Valid() {
		return "", false
	}
	return a, true
}
