package handler

import (
	"errors"
	"net/http"

	"github.com/Dan9191/calc-service/internal/catalog"
	"github.com/Dan9191/calc-service/internal/middleware"
	"github.com/Dan9191/calc-service/internal/service"
	"github.com/gorilla/mux"
)

type registerRequest struct {
	Passphrase string `json:"passphrase"`
}

type loginRequest struct {
	DeviceID   string `json:"device_id"`
	Passphrase string `json:"passphrase"`
}

type tokenResponse struct {
	DeviceID string `json:"device_id"`
	Token    string `json:"token"`
}

// Register handles device registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(w, r, &req); err != nil || req.Passphrase == "" {
		h.writeError(w, http.StatusBadRequest, "passphrase is required")
		return
	}
	device, token, err := h.svc.Register(r.Context(), req.Passphrase)
	if err != nil {
		h.log.Errorf("Failed to register device: %v", err)
		h.writeError(w, http.StatusInternalServerError, "failed to register device")
		return
	}
	h.writeJSON(w, http.StatusCreated, tokenResponse{DeviceID: device.ID, Token: token})
}

// Login handles device authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	token, err := h.svc.Login(r.Context(), req.DeviceID, req.Passphrase)
	if errors.Is(err, service.ErrInvalidCredentials) {
		h.writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		h.log.Errorf("Failed to log in device: %v", err)
		h.writeError(w, http.StatusInternalServerError, "failed to log in")
		return
	}
	h.writeJSON(w, http.StatusOK, tokenResponse{DeviceID: req.DeviceID, Token: token})
}

// storageError maps service errors to responses
func (h *Handler) storageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrUnknownCalculator), errors.Is(err, service.ErrNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrMailDisabled):
		h.writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		h.log.Errorf("Storage request failed: %v", err)
		h.writeError(w, http.StatusInternalServerError, "storage unavailable")
	}
}

func device(r *http.Request) string {
	id, _ := middleware.DeviceID(r.Context())
	return id
}

type favoriteRequest struct {
	Route string `json:"route"`
}

type favoriteResponse struct {
	Route    string `json:"route"`
	Favorite bool   `json:"favorite"`
}

// Favorites lists favorite routes, or checks one with ?route=
func (h *Handler) Favorites(w http.ResponseWriter, r *http.Request) {
	if route := r.URL.Query().Get("route"); route != "" {
		fav, err := h.svc.IsFavorite(r.Context(), device(r), route)
		if err != nil {
			h.storageError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, favoriteResponse{Route: route, Favorite: fav})
		return
	}
	list, err := h.svc.ListFavorites(r.Context(), device(r))
	if err != nil {
		h.storageError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

// ToggleFavorite flips the favorite flag of a route
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var req favoriteRequest
	if err := decode(w, r, &req); err != nil || req.Route == "" {
		h.writeError(w, http.StatusBadRequest, "route is required")
		return
	}
	fav, err := h.svc.ToggleFavorite(r.Context(), device(r), req.Route)
	if err != nil {
		h.storageError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, favoriteResponse{Route: req.Route, Favorite: fav})
}

type noteRequest struct {
	Text string `json:"text"`
}

type shareRequest struct {
	Email string `json:"email"`
}

// ListNotes returns the notes of one calculator
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.ListNotes(r.Context(), device(r), mux.Vars(r)["calculator"])
	if err != nil {
		h.storageError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, notes)
}

// AddNote attaches a note to a calculator
func (h *Handler) AddNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	note, err := h.svc.AddNote(r.Context(), device(r), mux.Vars(r)["calculator"], req.Text)
	if err != nil {
		h.storageError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, note)
}

// UpdateNote edits the text of a note
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	vars := mux.Vars(r)
	note, err := h.svc.UpdateNote(r.Context(), device(r), vars["calculator"], vars["id"], req.Text)
	if err != nil {
		h.storageError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, note)
}

// DeleteNote removes a note
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.svc.DeleteNote(r.Context(), device(r), vars["calculator"], vars["id"]); err != nil {
		h.storageError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ShareNotes emails the notes of a calculator
func (h *Handler) ShareNotes(w http.ResponseWriter, r *http.Request) {
	var req shareRequest
	if err := decode(w, r, &req); err != nil || req.Email == "" {
		h.writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	if err := h.svc.ShareNotes(r.Context(), device(r), mux.Vars(r)["calculator"], req.Email); err != nil {
		h.storageError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
