package prompt

import "errors"

// Prompt-specific errors.
var (
	ErrInvalidConfirmationInput = errors.New("invalid confirmation input, expected 'yes' or 'no'")
	ErrEmptyInput               = errors.New("input cannot be empty")
)
