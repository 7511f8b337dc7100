package bond

import "encoding/json"

// Bond describes one relationship between the player and another character.
type Bond struct {
	Name        string `json:"name"`
	Admiration  bool   `json:"admiration"`
	Loyalty     bool   `json:"loyalty"`
	Affection   bool   `json:"affection"`
	Inferiority bool   `json:"inferiority"`
	Mistrust    bool   `json:"mistrust"`
	Hatred      bool   `json:"hatred"`
}

// PairState is the joint state of one opposed pair.
type PairState int

const (
	PairNeither PairState = iota
	PairFirst
	PairSecond
	// PairConflict is only observable on lists loaded from outside; the list
	// operations never produce it.
	PairConflict
)

// Get returns the value of a flag. Unknown attributes read as false.
func (b Bond) Get(a Attribute) bool {
	if f := b.field(a); f != nil {
		return *f
	}
	return false
}

// Set returns a copy of b with a set to value, clearing the opposite flag
// when value is true.
func (b Bond) Set(a Attribute, value bool) Bond {
	f := b.field(a)
	if f == nil {
		return b
	}
	*f = value
	if value {
		if o, ok := a.Opposite(); ok {
			*b.field(o) = false
		}
	}
	return b
}

// State reports the joint state of p on b.
func (b Bond) State(p Pair) PairState {
	first, second := b.Get(p.First), b.Get(p.Second)
	switch {
	case first && second:
		return PairConflict
	case first:
		return PairFirst
	case second:
		return PairSecond
	default:
		return PairNeither
	}
}

// field returns a pointer into b; callers operate on their own copy.
func (b *Bond) field(a Attribute) *bool {
	switch a {
	case AttributeAdmiration:
		return &b.Admiration
	case AttributeLoyalty:
		return &b.Loyalty
	case AttributeAffection:
		return &b.Affection
	case AttributeInferiority:
		return &b.Inferiority
	case AttributeMistrust:
		return &b.Mistrust
	case AttributeHatred:
		return &b.Hatred
	default:
		return nil
	}
}

// UnmarshalJSON accepts the legacy "loyality" key as loyalty.
func (b *Bond) UnmarshalJSON(data []byte) error {
	type plain Bond
	var decoded struct {
		plain
		Loyality *bool `json:"loyality"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*b = Bond(decoded.plain)
	if decoded.Loyality != nil && *decoded.Loyality {
		b.Loyalty = true
	}
	return nil
}
