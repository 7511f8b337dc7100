package bond

import (
	"fmt"
	"strconv"

	apperrors "github.com/louisbranch/playerbonds/internal/platform/errors"
)

// Validate checks a list that did not come from the list operations, such
// as one decoded from a player document. It reports the first violation and
// repairs nothing.
func Validate(list List) error {
	if len(list) > MaxBonds {
		return apperrors.WithMetadata(
			apperrors.CodeBondListTooLong,
			fmt.Sprintf("player holds %d bonds, at most %d allowed", len(list), MaxBonds),
			map[string]string{"Length": strconv.Itoa(len(list))},
		)
	}
	for i, b := range list {
		for _, p := range Pairs {
			if b.State(p) == PairConflict {
				return apperrors.WithMetadata(
					apperrors.CodeBondPairConflict,
					fmt.Sprintf("bond %d sets both %s and %s", i, p.First, p.Second),
					map[string]string{"Index": strconv.Itoa(i), "First": string(p.First), "Second": string(p.Second)},
				)
			}
		}
	}
	return nil
}
