package usecase

import "errors"

// ErrInvalidInput marks a request payload that fails semantic validation,
// such as a negative age or a blank required field. Specific validation
// failures wrap it so transports can map the whole class to a client error.
var ErrInvalidInput = errors.New("invalid input")
