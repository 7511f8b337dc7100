package bond

import (
	"fmt"

	apperrors "github.com/louisbranch/playerbonds/internal/platform/errors"
)

// ChangeType names an edit emitted by the bond editing surface.
type ChangeType string

const (
	ChangeTypeAdd    ChangeType = "bond.add"
	ChangeTypeRemove ChangeType = "bond.remove"
	ChangeTypeRename ChangeType = "bond.rename"
	ChangeTypeToggle ChangeType = "bond.toggle"
)

// Change is one edit to a bond list. Index addresses the bond by position at
// the time the change is applied.
type Change struct {
	Type      ChangeType `json:"type"`
	Index     int        `json:"index,omitempty"`
	Name      string     `json:"name,omitempty"`
	Attribute string     `json:"attribute,omitempty"`
	Value     bool       `json:"value,omitempty"`
}

// AddChange returns a change that appends an empty bond.
func AddChange() Change {
	return Change{Type: ChangeTypeAdd}
}

// RemoveChange returns a change that removes the bond at index.
func RemoveChange(index int) Change {
	return Change{Type: ChangeTypeRemove, Index: index}
}

// RenameChange returns a change that renames the bond at index.
func RenameChange(index int, name string) Change {
	return Change{Type: ChangeTypeRename, Index: index, Name: name}
}

// ToggleChange returns a change that sets attribute on the bond at index.
func ToggleChange(index int, attribute Attribute, value bool) Change {
	return Change{Type: ChangeTypeToggle, Index: index, Attribute: string(attribute), Value: value}
}

// Apply applies c with the lenient list operations. The only error is an
// unrecognized change type; unknown attributes are absorbed like any other
// no-op toggle.
func Apply(list List, c Change) (List, error) {
	switch c.Type {
	case ChangeTypeAdd:
		return Add(list), nil
	case ChangeTypeRemove:
		return Remove(list, c.Index), nil
	case ChangeTypeRename:
		return Rename(list, c.Index, c.Name), nil
	case ChangeTypeToggle:
		attribute, _ := ParseAttribute(c.Attribute)
		return Toggle(list, c.Index, attribute, c.Value), nil
	default:
		return list, unknownChange(c.Type)
	}
}

// ApplyStrict applies c with the Try* operations.
func ApplyStrict(list List, c Change) (List, error) {
	switch c.Type {
	case ChangeTypeAdd:
		return TryAdd(list)
	case ChangeTypeRemove:
		return TryRemove(list, c.Index)
	case ChangeTypeRename:
		return TryRename(list, c.Index, c.Name)
	case ChangeTypeToggle:
		attribute, ok := ParseAttribute(c.Attribute)
		if !ok {
			attribute = Attribute(c.Attribute)
		}
		return TryToggle(list, c.Index, attribute, c.Value)
	default:
		return list, unknownChange(c.Type)
	}
}

func unknownChange(t ChangeType) error {
	return apperrors.WithMetadata(
		apperrors.CodeBondUnknownChange,
		fmt.Sprintf("unknown bond change %q", t),
		map[string]string{"Type": string(t)},
	)
}
