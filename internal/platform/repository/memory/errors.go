package memory

import "errors"

// Returned errors wrap these with the offending ID.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")
)
