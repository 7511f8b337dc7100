package bond

import (
	"fmt"
	"strconv"

	apperrors "github.com/louisbranch/playerbonds/internal/platform/errors"
)

var (
	// ErrCapacityExceeded indicates the list already holds MaxBonds bonds.
	ErrCapacityExceeded = apperrors.New(apperrors.CodeBondCapacityExceeded, fmt.Sprintf("a player can hold at most %d bonds", MaxBonds))
	// ErrIndexOutOfRange indicates an index outside the list.
	ErrIndexOutOfRange = apperrors.New(apperrors.CodeBondIndexOutOfRange, "bond index out of range")
	// ErrUnknownAttribute indicates an attribute outside the six bond flags.
	ErrUnknownAttribute = apperrors.New(apperrors.CodeBondUnknownAttribute, "unknown bond attribute")
)

// TryAdd is Add that reports a full list instead of ignoring it.
func TryAdd(list List) (List, error) {
	if list.Full() {
		return list, ErrCapacityExceeded
	}
	return Add(list), nil
}

// TryRemove is Remove that reports an index outside the list.
func TryRemove(list List, index int) (List, error) {
	if err := checkIndex(list, index); err != nil {
		return list, err
	}
	return Remove(list, index), nil
}

// TryRename is Rename that reports an index outside the list.
func TryRename(list List, index int, name string) (List, error) {
	if err := checkIndex(list, index); err != nil {
		return list, err
	}
	return Rename(list, index, name), nil
}

// TryToggle is Toggle that reports an index outside the list or an unknown
// attribute.
func TryToggle(list List, index int, attribute Attribute, value bool) (List, error) {
	if err := checkIndex(list, index); err != nil {
		return list, err
	}
	if !attribute.Valid() {
		return list, apperrors.WithMetadata(
			apperrors.CodeBondUnknownAttribute,
			fmt.Sprintf("unknown bond attribute %q", attribute),
			map[string]string{"Attribute": string(attribute)},
		)
	}
	return Toggle(list, index, attribute, value), nil
}

func checkIndex(list List, index int) error {
	if list.inRange(index) {
		return nil
	}
	return apperrors.WithMetadata(
		apperrors.CodeBondIndexOutOfRange,
		fmt.Sprintf("bond index %d out of range 0..%d", index, len(list)-1),
		map[string]string{"Index": strconv.Itoa(index), "Length": strconv.Itoa(len(list))},
	)
}
