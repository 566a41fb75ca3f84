package signature

import "errors"

// Sentinel errors for signature and world operations.
var (
	// ErrEmptySignature indicates a signature without variables.
	ErrEmptySignature = errors.New("signature: signature must contain at least one variable")

	// ErrDuplicateVariable indicates the same variable was listed twice.
	ErrDuplicateVariable = errors.New("signature: duplicate variable")

	// ErrInvalidVariable indicates an empty or malformed variable name.
	ErrInvalidVariable = errors.New("signature: invalid variable name")

	// ErrTooManyVariables indicates more than MaxVariables variables.
	ErrTooManyVariables = errors.New("signature: too many variables")

	// ErrWorldOutOfRange indicates a world index outside [0, 2^n).
	ErrWorldOutOfRange = errors.New("signature: world out of range")

	// ErrUnknownVariable indicates a variable that is not part of the signature.
	ErrUnknownVariable = errors.New("signature: unknown variable")

	// ErrIncompleteAssignment indicates an assignment missing some variable.
	ErrIncompleteAssignment = errors.New("signature: assignment does not cover every variable")
)
