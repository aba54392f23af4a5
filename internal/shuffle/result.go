package shuffle

import (
	"fmt"
	"strings"

	shuffleerrors "github.com/conneroisu/shuffle/internal/errors"
)

// Reason explains why a candidate was rejected.
type Reason int

const (
	// ReasonNone means the candidate is a valid shuffle.
	ReasonNone Reason = iota
	// ReasonWordNotAllowed means a source word is missing from the allow-list.
	ReasonWordNotAllowed
	// ReasonLengthMismatch means len(candidate) != len(a)+len(b).
	ReasonLengthMismatch
	// ReasonMismatch means a candidate character matched neither word.
	ReasonMismatch
)

// String returns the string representation of the reason
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonWordNotAllowed:
		return "word_not_allowed"
	case ReasonLengthMismatch:
		return "length_mismatch"
	case ReasonMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Result is the verdict of a single validation.
type Result struct {
	Valid  bool
	Reason Reason

	// Index and Char locate the first rejected candidate character when
	// Reason is ReasonMismatch. Index counts characters (not bytes) from 0
	// and is -1 otherwise.
	Index int
	Char  rune

	// Rejected lists the lower-cased source words missing from the
	// allow-list when Reason is ReasonWordNotAllowed.
	Rejected []string
}

func validResult() Result {
	return Result{Valid: true, Reason: ReasonNone, Index: -1}
}

// Err describes a rejection as a validation error. It returns nil for a
// valid result.
func (r Result) Err() error {
	switch r.Reason {
	case ReasonNone:
		return nil
	case ReasonWordNotAllowed:
		return shuffleerrors.NewValidationError(
			shuffleerrors.ErrCodeWordNotAllowed,
			"invalid words given, not in the allowed word list",
		).WithContext("words", strings.Join(r.Rejected, ","))
	case ReasonLengthMismatch:
		return shuffleerrors.NewValidationError(
			shuffleerrors.ErrCodeLengthMismatch,
			"shuffle length differs from the combined length of both words",
		)
	case ReasonMismatch:
		return shuffleerrors.NewValidationError(
			shuffleerrors.ErrCodeOutOfOrder,
			"found a letter that is out of order, or is not in either word",
		).WithContext("index", r.Index).WithContext("char", string(r.Char))
	default:
		return shuffleerrors.NewInternalError(
			shuffleerrors.ErrCodeInternalError,
			fmt.Sprintf("unknown rejection reason %d", int(r.Reason)),
			nil,
		)
	}
}
