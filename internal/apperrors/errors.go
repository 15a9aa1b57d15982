package apperrors

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConfiguration indicates a dataset that cannot be valued at all, such as
// a missing or duplicated base currency.
var ErrConfiguration = errors.New("configuration error")

// ErrRateUnavailable indicates that no exchange rate was published on or before the requested date.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// ErrReferenceNotFound indicates a transaction line pointing at an entity that cannot be resolved.
var ErrReferenceNotFound = errors.New("reference not found")

// ErrInvariantViolation indicates input data that breaks an assumption of the valuation model.
var ErrInvariantViolation = errors.New("invariant violation")

// RateUnavailableError carries the currency and date of a failed as-of rate lookup.
type RateUnavailableError struct {
	CurrencyID uuid.UUID
	AsOf       time.Time
}

func (e *RateUnavailableError) Error() string {
	return fmt.Sprintf("%s: no rate for currency %s on or before %s",
		ErrRateUnavailable, e.CurrencyID, e.AsOf.Format("2006-01-02"))
}

// Unwrap lets errors.Is match ErrRateUnavailable.
func (e *RateUnavailableError) Unwrap() error {
	return ErrRateUnavailable
}

// ReferenceNotFoundError names the kind and ID of an unresolved reference.
type ReferenceNotFoundError struct {
	Kind string // "account", "invoice", "customer", "tax code"
	ID   uuid.UUID
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrReferenceNotFound, e.Kind, e.ID)
}

// Unwrap matches both ErrReferenceNotFound and ErrNotFound.
func (e *ReferenceNotFoundError) Unwrap() []error {
	return []error{ErrReferenceNotFound, ErrNotFound}
}

// NewReferenceNotFound builds a ReferenceNotFoundError.
func NewReferenceNotFound(kind string, id uuid.UUID) error {
	return &ReferenceNotFoundError{Kind: kind, ID: id}
}

// IsFatal reports whether err must abort a whole valuation run rather than skip a single line.
func IsFatal(err error) bool {
	return errors.Is(err, ErrConfiguration) ||
		errors.Is(err, ErrRateUnavailable) ||
		errors.Is(err, ErrInvariantViolation)
}
