package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Validation limits for Usuario fields. These mirror the public API
// contract: names are 2-50 letters, the alias is a short alphanumeric
// handle, and passwords must fit bcrypt's 72-byte input limit.
const (
	NombreMinLen   = 2
	NombreMaxLen   = 50
	AliasMinLen    = 3
	AliasMaxLen    = 10
	EmailMaxLen    = 255
	PasswordMinLen = 8
	PasswordMaxLen = 72
)

var (
	nombreRegexp = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`)
	aliasRegexp  = regexp.MustCompile(`^[a-zA-Z0-9áéíóúÁÉÍÓÚñÑ]+$`)
	emailRegexp  = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// Usuario represents a registered user account.
// The credential is only ever stored as a bcrypt hash and is never
// serialized outward.
type Usuario struct {
	ID             uuid.UUID `json:"id"`
	Nombre         string    `json:"nombre"`
	Apellido       string    `json:"apellido"`
	Alias          string    `json:"alias"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NormalizeEmail lowers and trims an email address. All storage and
// uniqueness checks operate on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUsuario creates a Usuario from registration input. It generates the
// ID, normalizes the email and sets UTC timestamps. The caller is
// responsible for hashing the password and setting HashedPassword before
// the user is persisted.
func NewUsuario(nombre, apellido, alias, email string) (*Usuario, error) {
	now := time.Now().UTC()
	u := &Usuario{
		ID:        uuid.New(),
		Nombre:    strings.TrimSpace(nombre),
		Apellido:  strings.TrimSpace(apellido),
		Alias:     strings.TrimSpace(alias),
		Email:     NormalizeEmail(email),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate checks the Usuario's profile fields. The hashed credential is
// not inspected here; ValidatePassword covers the plaintext rules before
// hashing.
func (u *Usuario) Validate() error {
	if u.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if err := validateName("nombre", u.Nombre); err != nil {
		return err
	}
	if err := validateName("apellido", u.Apellido); err != nil {
		return err
	}
	if len(u.Alias) < AliasMinLen || len(u.Alias) > AliasMaxLen {
		return NewValidationError("alias", "must be between 3 and 10 characters", ErrValidation)
	}
	if !aliasRegexp.MatchString(u.Alias) {
		return NewValidationError("alias", "may only contain letters and digits", ErrValidation)
	}
	if u.Email == "" {
		return NewValidationError("email", "cannot be empty", ErrInvalidEmail)
	}
	if len(u.Email) > EmailMaxLen || !emailRegexp.MatchString(u.Email) {
		return NewValidationError("email", "is not a valid address", ErrInvalidEmail)
	}
	return nil
}

func validateName(field, value string) error {
	if len(value) < NombreMinLen || len(value) > NombreMaxLen {
		return NewValidationError(field, "must be between 2 and 50 characters", ErrValidation)
	}
	if !nombreRegexp.MatchString(value) {
		return NewValidationError(field, "may only contain letters and spaces", ErrValidation)
	}
	return nil
}

// ValidatePassword checks the plaintext password rules: 8-72 characters
// with at least one uppercase letter and one digit. The upper bound is
// bcrypt's input limit rather than the historical 128 so hashing never
// silently truncates.
func ValidatePassword(password string) error {
	if len(password) < PasswordMinLen {
		return NewValidationError("password", "must be at least 8 characters", ErrInvalidPassword)
	}
	if len(password) > PasswordMaxLen {
		return NewValidationError("password", "must be at most 72 characters", ErrInvalidPassword)
	}
	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasUpper || !hasDigit {
		return NewValidationError(
			"password",
			"must contain at least one uppercase letter and one digit",
			ErrInvalidPassword,
		)
	}
	return nil
}
