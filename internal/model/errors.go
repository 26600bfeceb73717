package model

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrBlockNotActive       = errors.New("block is not active")
	ErrDuplicateSubmission  = errors.New("value already submitted for this block")
	ErrInsufficientBudget   = errors.New("insufficient compute power")
	ErrAlreadySolved        = errors.New("block already solved")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrGenerationValidation = errors.New("generated password failed validation")
)

// ErrorKind is a stable error code presented to clients.
type ErrorKind string

const (
	KindNotFound             ErrorKind = "NOT_FOUND"
	KindBlockNotActive       ErrorKind = "BLOCK_NOT_ACTIVE"
	KindDuplicateSubmission  ErrorKind = "DUPLICATE_SUBMISSION"
	KindInsufficientBudget   ErrorKind = "INSUFFICIENT_BUDGET"
	KindAlreadySolved        ErrorKind = "ALREADY_SOLVED"
	KindForbidden            ErrorKind = "FORBIDDEN"
	KindInvalidArgument      ErrorKind = "INVALID_ARGUMENT"
	KindGenerationValidation ErrorKind = "GENERATION_VALIDATION_FAILED"
	KindInternal             ErrorKind = "INTERNAL"
)

var kinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrNotFound, KindNotFound},
	{ErrBlockNotActive, KindBlockNotActive},
	{ErrDuplicateSubmission, KindDuplicateSubmission},
	{ErrInsufficientBudget, KindInsufficientBudget},
	{ErrAlreadySolved, KindAlreadySolved},
	{ErrForbidden, KindForbidden},
	{ErrInvalidArgument, KindInvalidArgument},
	{ErrGenerationValidation, KindGenerationValidation},
}

// Kind maps err to its stable code. Unknown errors are INTERNAL.
func Kind(err error) ErrorKind {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}
