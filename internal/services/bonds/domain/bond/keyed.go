package bond

import (
	"fmt"

	apperrors "github.com/louisbranch/playerbonds/internal/platform/errors"
)

// KeyFunc issues a new synthetic bond key.
type KeyFunc func() (string, error)

// Keyed pairs a List with a stable key per bond so a reference taken before a
// removal still resolves afterwards. Keys are assigned on creation and never
// persisted; position stays the display order.
//
// Keyed values are immutable like List: every method returns a new value.
type Keyed struct {
	list List
	keys []string
	next KeyFunc
}

// NewKeyed keys every bond already in list.
func NewKeyed(list List, next KeyFunc) (Keyed, error) {
	if next == nil {
		return Keyed{}, fmt.Errorf("key func is required")
	}
	keys := make([]string, len(list))
	for i := range list {
		key, err := next()
		if err != nil {
			return Keyed{}, fmt.Errorf("key bond %d: %w", i, err)
		}
		keys[i] = key
	}
	return Keyed{list: list.Clone(), keys: keys, next: next}, nil
}

// List returns the bonds in display order.
func (k Keyed) List() List {
	return k.list.Clone()
}

// Keys returns the bond keys in display order.
func (k Keyed) Keys() []string {
	out := make([]string, len(k.keys))
	copy(out, k.keys)
	return out
}

// IndexOf returns the current position of key.
func (k Keyed) IndexOf(key string) (int, bool) {
	for i, candidate := range k.keys {
		if candidate == key {
			return i, true
		}
	}
	return -1, false
}

// Add appends an empty bond and returns its key. A full list is returned
// unchanged with an empty key.
func (k Keyed) Add() (Keyed, string, error) {
	if k.list.Full() {
		return k, "", nil
	}
	key, err := k.next()
	if err != nil {
		return k, "", fmt.Errorf("key new bond: %w", err)
	}
	keys := make([]string, len(k.keys), len(k.keys)+1)
	copy(keys, k.keys)
	return Keyed{list: Add(k.list), keys: append(keys, key), next: k.next}, key, nil
}

// Remove drops the bond with key. Unknown keys are ignored.
func (k Keyed) Remove(key string) Keyed {
	index, ok := k.IndexOf(key)
	if !ok {
		return k
	}
	keys := make([]string, 0, len(k.keys)-1)
	keys = append(keys, k.keys[:index]...)
	keys = append(keys, k.keys[index+1:]...)
	return Keyed{list: Remove(k.list, index), keys: keys, next: k.next}
}

// Rename renames the bond with key. Unknown keys are ignored.
func (k Keyed) Rename(key, name string) Keyed {
	index, ok := k.IndexOf(key)
	if !ok {
		return k
	}
	return Keyed{list: Rename(k.list, index, name), keys: k.keys, next: k.next}
}

// Toggle sets attribute on the bond with key. Unknown keys are ignored.
func (k Keyed) Toggle(key string, attribute Attribute, value bool) Keyed {
	index, ok := k.IndexOf(key)
	if !ok {
		return k
	}
	return Keyed{list: Toggle(k.list, index, attribute, value), keys: k.keys, next: k.next}
}

// Lookup returns the bond with key, or a BOND_KEY_NOT_FOUND error.
func (k Keyed) Lookup(key string) (Bond, error) {
	index, ok := k.IndexOf(key)
	if !ok {
		return Bond{}, apperrors.WithMetadata(
			apperrors.CodeBondKeyNotFound,
			fmt.Sprintf("bond %q not found", key),
			map[string]string{"Key": key},
		)
	}
	return k.list[index], nil
}
