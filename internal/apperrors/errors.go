package apperrors

import "errors"

// ErrNotFound indicates that a referenced currency does not exist in the table.
var ErrNotFound = errors.New("currency not found")

// ErrValidation indicates that a table row failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that a code or numeric code appears more than once.
var ErrDuplicate = errors.New("duplicate currency")
