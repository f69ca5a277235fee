package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/procrastinant/procrastinant-api/internal/api/shared"
	"github.com/procrastinant/procrastinant-api/internal/service/account"
)

// AuthHandler serves registration, login, logout and session verification.
type AuthHandler struct {
	accounts  *account.Service
	cookies   *CookieManager
	validator *validator.Validate
}

// NewAuthHandler creates an AuthHandler with the given dependencies.
func NewAuthHandler(accounts *account.Service, cookies *CookieManager) *AuthHandler {
	return &AuthHandler{
		accounts:  accounts,
		cookies:   cookies,
		validator: validator.New(),
	}
}

// Register handles POST /api/auth/register. On success the token is both
// returned in the body and set as the auth cookie.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error",
			fieldErrorsFromValidation(err)...)
		return
	}

	usuario, token, err := h.accounts.Register(r.Context(), account.RegisterInput{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Alias:    req.Alias,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.cookies.SetAuthCookie(w, token)
	shared.RespondWithSuccess(w, r, http.StatusCreated, "Usuario registrado", AuthResponse{
		Usuario: usuario,
		Token:   token,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error",
			fieldErrorsFromValidation(err)...)
		return
	}

	usuario, token, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.cookies.SetAuthCookie(w, token)
	shared.RespondWithSuccess(w, r, http.StatusOK, "Sesión iniciada", AuthResponse{
		Usuario: usuario,
		Token:   token,
	})
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so logout is
// purely the removal of the cookie; bearer clients simply drop theirs.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.ClearAuthCookie(w)
	shared.RespondWithSuccess(w, r, http.StatusOK, "Sesión cerrada", nil)
}

// Verify handles GET /api/user/verify. It runs behind the auth gate, so
// reaching it means the token was valid; it answers with the account the
// token belongs to.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	usuario, err := h.accounts.Profile(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "", VerifyResponse{
		IsAuthenticated: true,
		Usuario:         usuario,
	})
}
