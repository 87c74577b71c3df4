package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers. Attach them with
// Mark and test for them with Is.
var (
	// Input errors
	ErrInvalidInput = errors.New("invalid input")

	// Redemption errors
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderAlreadyUsed = errors.New("order already used")

	// Operation errors
	ErrStoreFailure = errors.New("store operation failed")
)
