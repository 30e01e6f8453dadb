package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an insert violated a uniqueness constraint.
// For payments this is the expected outcome of losing an idempotency race,
// not a fault: the coordinator recovers by re-reading the winner's row.
var ErrDuplicate = errors.New("resource already exists")

// ErrProcessing indicates that a request could not be processed because of a
// storage fault or an unresolved idempotency conflict. Distinct from
// ErrValidation so callers can map "we failed" separately from "your input
// was invalid".
var ErrProcessing = errors.New("processing error")
