package api

import (
	"github.com/procrastinant/procrastinant-api/internal/domain"
)

// Request and response payloads. JSON field names follow the client wire
// format (Spanish, camelCase); validation bounds mirror the domain limits.

// RegisterRequest defines the payload for account registration.
type RegisterRequest struct {
	Nombre   string `json:"nombre"   validate:"required,min=2,max=50"`
	Apellido string `json:"apellido" validate:"required,min=2,max=50"`
	Alias    string `json:"alias"    validate:"required,min=3,max=10"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse is the data payload for register, login and verify.
type AuthResponse struct {
	Usuario *domain.Usuario `json:"usuario"`
	Token   string          `json:"token,omitempty"`
}

// UpdateProfileRequest carries a partial profile update. Absent fields stay
// untouched; present ones are validated in full.
type UpdateProfileRequest struct {
	Nombre   *string `json:"nombre"   validate:"omitempty,min=2,max=50"`
	Apellido *string `json:"apellido" validate:"omitempty,min=2,max=50"`
	Alias    *string `json:"alias"    validate:"omitempty,min=3,max=10"`
	Email    *string `json:"email"    validate:"omitempty,email"`
}

// ChangePasswordRequest carries a password change. The confirmation must
// repeat the new password exactly.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

// DeleteAccountRequest carries the credentials for account deletion: the
// password plus the literal confirmation phrase.
type DeleteAccountRequest struct {
	Password     string `json:"password"     validate:"required"`
	Confirmacion string `json:"confirmacion" validate:"required"`
}

// DeleteAccountResponse reports the cascade result.
type DeleteAccountResponse struct {
	TareasEliminadas int `json:"tareasEliminadas"`
}

// CrearTareaRequest defines the payload for creating a tarea.
type CrearTareaRequest struct {
	Descripcion string `json:"descripcion" validate:"required,min=1,max=300"`
	Listo       bool   `json:"listo"`
}

// ActualizarTareaRequest defines the payload for editing a tarea's
// description. Listo and UserID are decoded only so the handler can reject
// requests that try to smuggle them through this endpoint.
type ActualizarTareaRequest struct {
	Descripcion string  `json:"descripcion" validate:"required,min=1,max=300"`
	Listo       *bool   `json:"listo"`
	UserID      *string `json:"userId"`
}

// ToggleTareaRequest optionally pins the completion flag to an explicit
// value instead of flipping it.
type ToggleTareaRequest struct {
	Listo *bool `json:"listo"`
}

// TareaResponse wraps a single tarea.
type TareaResponse struct {
	Tarea *domain.Tarea `json:"tarea"`
}

// TareaListResponse wraps a tarea listing with its total count.
type TareaListResponse struct {
	Tareas []*domain.Tarea `json:"tareas"`
	Total  int             `json:"total"`
}

// VerifyResponse answers the session check: reaching the endpoint at all
// means the token was valid.
type VerifyResponse struct {
	IsAuthenticated bool            `json:"isAuthenticated"`
	Usuario         *domain.Usuario `json:"usuario"`
}

// HealthResponse reports service liveness, noting whether the caller
// presented a valid token.
type HealthResponse struct {
	Status        string `json:"status"`
	Uptime        string `json:"uptime"`
	Environment   string `json:"environment"`
	Authenticated bool   `json:"authenticated"`
}
