package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/procrastinant/procrastinant-api/internal/api/shared"
	"github.com/procrastinant/procrastinant-api/internal/service/account"
)

// UserHandler serves the authenticated user's own account: profile reads and
// updates, password changes and account deletion. There is no admin surface;
// every operation targets the caller's identity from the token.
type UserHandler struct {
	accounts  *account.Service
	cookies   *CookieManager
	validator *validator.Validate
}

// NewUserHandler creates a UserHandler with the given dependencies.
func NewUserHandler(accounts *account.Service, cookies *CookieManager) *UserHandler {
	return &UserHandler{
		accounts:  accounts,
		cookies:   cookies,
		validator: validator.New(),
	}
}

// GetProfile handles GET /api/user/profile.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	usuario, err := h.accounts.Profile(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "", AuthResponse{Usuario: usuario})
}

// UpdateProfile handles PUT /api/user/profile. Only the fields present in
// the body change; the password is not reachable through this endpoint.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error",
			fieldErrorsFromValidation(err)...)
		return
	}

	usuario, err := h.accounts.UpdateProfile(r.Context(), userID, account.UpdateProfileInput{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Alias:    req.Alias,
		Email:    req.Email,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Perfil actualizado", AuthResponse{Usuario: usuario})
}

// ChangePassword handles PUT /api/user/password.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error",
			fieldErrorsFromValidation(err)...)
		return
	}

	if err := h.accounts.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Contraseña actualizada", nil)
}

// DeleteAccount handles DELETE /api/user/account. The body must carry the
// account password and the exact confirmation phrase. On success the cookie
// is cleared and the number of cascade-deleted tareas is reported.
func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req DeleteAccountRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error",
			fieldErrorsFromValidation(err)...)
		return
	}

	deleted, err := h.accounts.DeleteAccount(r.Context(), userID, req.Password, req.Confirmacion)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.cookies.ClearAuthCookie(w)
	shared.RespondWithSuccess(w, r, http.StatusOK, "Cuenta eliminada", DeleteAccountResponse{
		TareasEliminadas: deleted,
	})
}
