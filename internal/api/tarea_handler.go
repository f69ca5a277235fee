package api

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/procrastinant/procrastinant-api/internal/api/shared"
	"github.com/procrastinant/procrastinant-api/internal/service/tarea"
	"github.com/procrastinant/procrastinant-api/internal/store"
)

// TareaHandler serves the authenticated user's tareas. Ownership is enforced
// in the service; the handler only translates HTTP to service calls.
type TareaHandler struct {
	tareas    *tarea.Service
	validator *validator.Validate
}

// NewTareaHandler creates a TareaHandler.
func NewTareaHandler(tareas *tarea.Service) *TareaHandler {
	return &TareaHandler{
		tareas:    tareas,
		validator: validator.New(),
	}
}

// listOptionsFromQuery parses the listo, sort and order query parameters.
// An unparseable listo is reported; unknown sort keys fall through to the
// store's whitelist default.
func listOptionsFromQuery(r *http.Request) (store.ListOptions, error) {
	opts := store.ListOptions{
		Sort:  r.URL.Query().Get("sort"),
		Order: r.URL.Query().Get("order"),
	}
	if raw := r.URL.Query().Get("listo"); raw != "" {
		listo, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, err
		}
		opts.Listo = &listo
	}
	return opts, nil
}

// List handles GET /api/tareas.
func (h *TareaHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	opts, err := listOptionsFromQuery(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid listo filter",
			shared.FieldError{Field: "listo", Message: "must be true or false"})
		return
	}

	tareas, total, err := h.tareas.List(r.Context(), userID, opts)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "", TareaListResponse{
		Tareas: tareas,
		Total:  total,
	})
}

// Create handles POST /api/tareas.
func (h *TareaHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CrearTareaRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error",
			fieldErrorsFromValidation(err)...)
		return
	}

	created, err := h.tareas.Create(r.Context(), userID, req.Descripcion, req.Listo)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusCreated, "Tarea creada", TareaResponse{Tarea: created})
}

// Update handles PUT /api/tareas/{id}. It edits the description only;
// bodies that include listo or userId are rejected so those can't be changed
// through the wrong endpoint.
func (h *TareaHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, tareaID, ok := requireUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req ActualizarTareaRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Listo != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error",
			shared.FieldError{Field: "listo", Message: "cannot be changed through this endpoint"})
		return
	}
	if req.UserID != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error",
			shared.FieldError{Field: "userId", Message: "cannot be changed"})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error",
			fieldErrorsFromValidation(err)...)
		return
	}

	updated, err := h.tareas.Update(r.Context(), userID, tareaID, req.Descripcion)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Tarea actualizada", TareaResponse{Tarea: updated})
}

// Toggle handles PATCH /api/tareas/{id}/toggle. With an empty body the flag
// flips; with {"listo": value} it is pinned to that value.
func (h *TareaHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, tareaID, ok := requireUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req ToggleTareaRequest
	if r.ContentLength != 0 {
		if err := shared.DecodeJSON(r, &req); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	toggled, err := h.tareas.Toggle(r.Context(), userID, tareaID, req.Listo)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Tarea alternada", TareaResponse{Tarea: toggled})
}

// Delete handles DELETE /api/tareas/{id}.
func (h *TareaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, tareaID, ok := requireUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.tareas.Delete(r.Context(), userID, tareaID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Tarea eliminada", nil)
}
