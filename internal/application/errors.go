package application

import (
	"errors"

	repo "github.com/oksasatya/go-social-network/internal/domain/repository"
)

// Error kinds. Handlers map these to status codes with errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrAlreadyLiked       = errors.New("already liked")
	ErrNotLiked           = errors.New("not liked")
)

// kindError carries a client-facing message while matching its kind with errors.Is.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

var (
	ErrNoToken          = &kindError{ErrUnauthenticated, "No Token provided, Authentication Denied"}
	ErrBadCredentials   = &kindError{ErrInvalidCredentials, "Invalid Credentials"}
	ErrNotAuthorized    = &kindError{ErrForbidden, "User is not authorized"}
	ErrPostAlreadyLiked = &kindError{ErrAlreadyLiked, "Post has already been liked"}
	ErrPostNotLiked     = &kindError{ErrNotLiked, "Post has not been liked"}

	ErrUserNotFound       = &kindError{ErrNotFound, "User Not Found"}
	ErrProfileNotFound    = &kindError{ErrNotFound, "No Profile Found for the User"}
	ErrPostNotFound       = &kindError{ErrNotFound, "No Posts Found for the Post ID"}
	ErrExperienceNotFound = &kindError{ErrNotFound, "Experience not exists"}
	ErrEducationNotFound  = &kindError{ErrNotFound, "Education not exists"}
	ErrCommentNotFound    = &kindError{ErrNotFound, "Comment not exists"}

	ErrEmailTaken      = &kindError{ErrConflict, "User is Already Exists!!"}
	ErrProfileExists   = &kindError{ErrConflict, "Profile already exists for the User"}
	ErrVersionConflict = &kindError{ErrConflict, "Resource was modified concurrently, please retry"}
)

// notFoundAs swaps a store miss for the given domain error and passes other errors through.
func notFoundAs(err error, target error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return target
	}
	return err
}

// notDuplicate swaps a unique-index violation for the given domain error.
func notDuplicate(err error, target error) error {
	if errors.Is(err, repo.ErrDuplicate) {
		return target
	}
	return err
}
