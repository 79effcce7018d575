package user

import "errors"

var (
	ErrUserNotFound   = errors.New("user cannot be found")
	ErrViewerNotFound = errors.New("viewer cannot be found")
	ErrMissingCode    = errors.New("authorization code is required")
	ErrLoginFailed    = errors.New("failed to log in")
	ErrNotAuthorized  = errors.New("viewer is not authorized for this resource")
)
