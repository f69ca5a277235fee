package account

import "errors"

// Service errors mapped to HTTP statuses at the API boundary.
var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two cases are deliberately indistinguishable to the
	// caller so login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSamePassword is returned when a password change supplies a new
	// password equal to the current one.
	ErrSamePassword = errors.New("new password must differ from the current password")

	// ErrConfirmationMismatch is returned when account deletion is missing
	// the exact confirmation phrase.
	ErrConfirmationMismatch = errors.New("confirmation phrase does not match")
)

// DeleteConfirmation is the literal phrase a user must send to confirm the
// irreversible deletion of their account.
const DeleteConfirmation = "ELIMINAR"
