package bond

// MaxBonds caps the number of bonds a player may hold.
const MaxBonds = 6

// List is the ordered bonds of one player. Position is the only identity.
type List []Bond

// Add appends an empty bond. A full list is returned unchanged.
func Add(list List) List {
	if len(list) >= MaxBonds {
		return list
	}
	next := make(List, len(list), len(list)+1)
	copy(next, list)
	return append(next, Bond{})
}

// Remove drops the bond at index; later bonds shift down by one. An index
// outside the list is ignored.
func Remove(list List, index int) List {
	if !list.inRange(index) {
		return list
	}
	next := make(List, 0, len(list)-1)
	next = append(next, list[:index]...)
	return append(next, list[index+1:]...)
}

// Rename replaces the name of the bond at index. Length limits belong to
// the input boundary (see NormalizeName). An index outside the list is
// ignored.
func Rename(list List, index int, name string) List {
	if !list.inRange(index) {
		return list
	}
	next := list.Clone()
	next[index].Name = name
	return next
}

// Toggle sets attribute on the bond at index. Setting an attribute clears its
// opposite; clearing one leaves the opposite alone. An index outside the list
// or an unknown attribute is ignored.
func Toggle(list List, index int, attribute Attribute, value bool) List {
	if !list.inRange(index) || !attribute.Valid() {
		return list
	}
	next := list.Clone()
	next[index] = next[index].Set(attribute, value)
	return next
}

// Clone returns a copy that shares no backing array with l.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	next := make(List, len(l))
	copy(next, l)
	return next
}

// Full reports whether another bond can no longer be added.
func (l List) Full() bool {
	return len(l) >= MaxBonds
}

func (l List) inRange(index int) bool {
	return index >= 0 && index < len(l)
}
