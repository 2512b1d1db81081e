package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrBondNotFound indicates that a bond with the given ID does not exist.
	ErrBondNotFound = errors.New("bond not found")

	// ErrNoUpcomingPayment indicates that a bond has no remaining coupon payments.
	ErrNoUpcomingPayment = errors.New("no upcoming interest payment")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidBondID indicates that a bond ID is missing, non-numeric or not positive.
	ErrInvalidBondID = errors.New("invalid bond ID")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidYieldType indicates an unknown yield type parameter.
	ErrInvalidYieldType = errors.New("invalid yield type")

	// ErrInvalidDate indicates a date parameter that is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date parameter")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
// These errors indicate that an operation failed, but not due to missing entities or validation issues.
var (
	ErrFailedToRetrieveBonds = errors.New("failed to retrieve bonds")
	ErrFailedToRetrieveBond  = errors.New("failed to retrieve bond")
	ErrFailedToCreateBond    = errors.New("failed to create bond")
	ErrFailedToUpdateBond    = errors.New("failed to update bond")
	ErrFailedToDeleteBond    = errors.New("failed to delete bond")

	ErrFailedToGetSchedule  = errors.New("failed to get interest schedule")
	ErrFailedToGetSummary   = errors.New("failed to get interest summary")
	ErrFailedToGetYields    = errors.New("failed to get yields")
	ErrFailedToGetOverview  = errors.New("failed to get portfolio overview")
	ErrFailedToGetVersion   = errors.New("failed to get version information")
	ErrFailedToDecryptNotes = errors.New("failed to decrypt bond notes")
)

// Data integrity errors represent inconsistencies or corruption in the data.
var (
	// ErrDataInconsistency indicates that stored data cannot be mapped back to a bond
	// (e.g., an unknown payment frequency in the bond table).
	ErrDataInconsistency = errors.New("data inconsistency detected")
)
