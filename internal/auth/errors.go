package auth

import "errors"

var (
	// ErrRoleNotConfigured is returned when the default BASIC role does not
	// exist at signup time. Signups are refused until it is provisioned.
	ErrRoleNotConfigured = errors.New("default role is not configured")

	// ErrEmailTaken is returned when attempting to sign up with an email that
	// already belongs to a user.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrInvalidInput is returned when a signup payload fails schema validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingCredentials is returned when a login request omits the email
	// or the password.
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrUserNotFound is returned when no user exists for a login email.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidPassword is returned when the supplied password does not
	// verify against the stored hash.
	ErrInvalidPassword = errors.New("invalid password")
)
