// Package apperror defines the errors every layer of the social graph returns.
//
// TWO LEVELS OF SENTINELS:
// Each failure carries a category (ErrNotFound, ErrValidation, ErrConflict)
// and a specific kind (ErrUnknownUser, ErrSelfReference, ...). Both are
// reachable through errors.Is, so callers can be as coarse or as precise as
// they need:
//
//	errors.Is(err, apperror.ErrNotFound)    // any missing key
//	errors.Is(err, apperror.ErrUnknownUser) // specifically a missing user id
//
// Every error here describes a violated precondition. Nothing is retryable.
package apperror

import (
	"errors"
	"fmt"
)

// Categories.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
)

// Kinds.
var (
	ErrUnknownUser       = errors.New("unknown user")
	ErrUnknownAlias      = errors.New("unknown alias")
	ErrDuplicateUser     = errors.New("duplicate user")
	ErrInvalidAlias      = errors.New("invalid alias")
	ErrDuplicateAlias    = errors.New("duplicate alias")
	ErrSelfReference     = errors.New("self reference")
	ErrEdgeAlreadyExists = errors.New("already friends")
	ErrEdgeDoesNotExist  = errors.New("not friends")
	ErrEmptyPopulation   = errors.New("no users")
)

type AppError struct {
	Err     error  // category sentinel
	Kind    error  // specific sentinel
	Message string // Human-readable error message
	Field   string // Optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap exposes both the kind and the category to errors.Is / errors.As.
func (e *AppError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func UnknownUser(id int) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Kind:    ErrUnknownUser,
		Message: fmt.Sprintf("user not found with id %d", id),
		Field:   "id",
	}
}

func UnknownAlias(alias string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Kind:    ErrUnknownAlias,
		Message: fmt.Sprintf("user not found with alias %q", alias),
		Field:   "alias",
	}
}

func DuplicateUser(id int) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Kind:    ErrDuplicateUser,
		Message: fmt.Sprintf("user conflict with id %d", id),
		Field:   "id",
	}
}

// InvalidAlias reports an empty or over-long alias. The message is
// caller-supplied so the limit in force can be quoted.
func InvalidAlias(message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Kind:    ErrInvalidAlias,
		Message: message,
		Field:   "alias",
	}
}

func DuplicateAlias(alias string, owner int) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Kind:    ErrDuplicateAlias,
		Message: fmt.Sprintf("alias %q already belongs to user %d", alias, owner),
		Field:   "alias",
	}
}

func SelfReference(id int) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Kind:    ErrSelfReference,
		Message: fmt.Sprintf("user %d cannot befriend itself", id),
	}
}

func EdgeAlreadyExists(a, b int) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Kind:    ErrEdgeAlreadyExists,
		Message: fmt.Sprintf("users %d and %d are already friends", a, b),
	}
}

func EdgeDoesNotExist(a, b int) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Kind:    ErrEdgeDoesNotExist,
		Message: fmt.Sprintf("users %d and %d are not friends", a, b),
	}
}

// EmptyPopulation is returned by popularity reads when no user is registered.
func EmptyPopulation() *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Kind:    ErrEmptyPopulation,
		Message: "no users registered",
	}
}
