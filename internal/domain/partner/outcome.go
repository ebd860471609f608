package partner

import (
	"errors"
	"fmt"
)

// Verification errors, one per user-visible failure category.
var (
	ErrEmptyTaxID              = errors.New("tax ID is empty")
	ErrInvalidTaxID            = errors.New("tax ID is invalid")
	ErrVerificationUnavailable = errors.New("verification service unavailable")
)

// OutcomeKind names what happened to one verification call.
type OutcomeKind string

const (
	OutcomeVerified       OutcomeKind = "verified"
	OutcomeEmptyInput     OutcomeKind = "empty_input"
	OutcomeInvalidTaxID   OutcomeKind = "invalid_tax_id"
	OutcomeTransportError OutcomeKind = "transport_error"
)

// String implements fmt.Stringer.
func (k OutcomeKind) String() string {
	return string(k)
}

// Outcome is the terminal state of one verification call. Reason carries the
// registry's message for OutcomeInvalidTaxID.
type Outcome struct {
	Kind   OutcomeKind
	Reason string
}

// Err returns nil for a verified outcome and the matching sentinel otherwise.
func (o Outcome) Err() error {
	switch o.Kind {
	case OutcomeVerified:
		return nil
	case OutcomeEmptyInput:
		return ErrEmptyTaxID
	case OutcomeInvalidTaxID:
		if o.Reason == "" {
			return ErrInvalidTaxID
		}
		return fmt.Errorf("%w: %s", ErrInvalidTaxID, o.Reason)
	case OutcomeTransportError:
		return ErrVerificationUnavailable
	default:
		return fmt.Errorf("unknown verification outcome %q", o.Kind)
	}
}
