package services

import (
	"fmt"

	apierrors "github.com/yukikurage/task-tracker/internal/errors"
)

// Every error a service returns to a caller is either one of these or a
// wrapped store failure, which the transport reports as INTERNAL_ERROR.
var (
	ErrUnauthorized = apierrors.ErrUnauthorized

	ErrUsernameRequired   = apierrors.NewAPIError(apierrors.ErrCodeInvalidInput, "username is required")
	ErrUsernameTaken      = apierrors.NewAPIError(apierrors.ErrCodeInvalidInput, "username already exists")
	ErrPasswordTooShort   = apierrors.NewAPIError(apierrors.ErrCodeInvalidInput, "password too short")
	ErrInvalidCredentials = apierrors.NewAPIError(apierrors.ErrCodeInvalidCredentials, "invalid username or password")
	ErrUserNotFound       = apierrors.NewAPIError(apierrors.ErrCodeNotFound, "user not found")

	ErrTaskNotFound  = apierrors.NewAPIError(apierrors.ErrCodeNotFound, "task not found")
	ErrTitleRequired = apierrors.NewAPIError(apierrors.ErrCodeInvalidInput, "title is required")
	ErrInvalidStatus = apierrors.NewAPIError(apierrors.ErrCodeInvalidInput, "status must be one of pending, in_progress, done")

	ErrAttachmentNotFound = apierrors.NewAPIError(apierrors.ErrCodeNotFound, "file not found")
	ErrNoFiles            = apierrors.NewAPIError(apierrors.ErrCodeInvalidInput, "at least one file is required")
	ErrTooManyFiles       = apierrors.NewAPIError(apierrors.ErrCodeInvalidInput, "too many files in one upload")
	ErrFileTooLarge       = apierrors.NewAPIError(apierrors.ErrCodeFileTooLarge, "file exceeds the 5 MiB limit")
)

// storeFailure wraps an unexpected store error with the operation name.
func storeFailure(op string, err error) error {
	return fmt.Errorf("failed to %s: %w", op, err)
}
