// Package errors provides structured error handling for the bonds service.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Bond list errors
	CodeBondCapacityExceeded Code = "BOND_CAPACITY_EXCEEDED"
	CodeBondIndexOutOfRange  Code = "BOND_INDEX_OUT_OF_RANGE"
	CodeBondUnknownAttribute Code = "BOND_UNKNOWN_ATTRIBUTE"
	CodeBondUnknownChange    Code = "BOND_UNKNOWN_CHANGE"
	CodeBondNameTooLong      Code = "BOND_NAME_TOO_LONG"
	CodeBondListTooLong      Code = "BOND_LIST_TOO_LONG"
	CodeBondPairConflict     Code = "BOND_PAIR_CONFLICT"
	CodeBondKeyNotFound      Code = "BOND_KEY_NOT_FOUND"

	// Editor errors
	CodeBondEditModeDisabled Code = "BOND_EDIT_MODE_DISABLED"

	// Player record errors
	CodePlayerRecordInvalid Code = "PLAYER_RECORD_INVALID"
	CodeNotFound            Code = "NOT_FOUND"
)

// IsValidation reports whether the code describes rejected input rather than
// a state or infrastructure failure.
func (c Code) IsValidation() bool {
	switch c {
	case CodeBondCapacityExceeded,
		CodeBondIndexOutOfRange,
		CodeBondUnknownAttribute,
		CodeBondUnknownChange,
		CodeBondNameTooLong,
		CodeBondListTooLong,
		CodeBondPairConflict,
		CodePlayerRecordInvalid:
		return true
	default:
		return false
	}
}
