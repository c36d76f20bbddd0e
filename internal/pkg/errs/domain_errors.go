package errs

import "errors"

// Sentinel errors shared by the booking usecase layers. Handlers map these
// onto the HTTP error surface; repositories never return them directly.
var (
	// Lookup errors
	ErrListingNotFound = errors.New("listing not found")
	ErrBookingNotFound = errors.New("booking not found")

	// Authorization errors
	ErrForbidden = errors.New("caller does not own this booking")

	// Admission errors (deterministic, never retried)
	ErrInvalidDateRange   = errors.New("invalid date range")
	ErrGuestCountExceeded = errors.New("guest count exceeded")
	ErrDatesUnavailable   = errors.New("dates unavailable")

	// Lifecycle errors
	ErrAlreadyCancelled = errors.New("booking already cancelled")

	// Store errors (the only caller-retryable class)
	ErrStoreUnavailable = errors.New("availability store unavailable")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
