package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"lifeline/internal/store"
)

type UserHandler struct {
	Store *store.Store
}

type saveUserReq struct {
	Name      string `json:"name"`
	Birthdate string `json:"birthdate"`
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.Store.GetUser()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load user data")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveUserReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	u, err := h.Store.SaveUser(req.Name, req.Birthdate)
	switch {
	case errors.Is(err, store.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "name and birthdate are required")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to save user data")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    u,
	})
}
