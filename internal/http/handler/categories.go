package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"lifeline/internal/store"
)

type CategoryHandler struct {
	Store *store.Store
}

type addCategoryReq struct {
	Name string `json:"name"`
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Store.ListCategories()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load categories")
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addCategoryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	categories, err := h.Store.AddCategory(req.Name)
	switch {
	case errors.Is(err, store.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "category name is required")
		return
	case errors.Is(err, store.ErrDuplicate):
		writeError(w, http.StatusBadRequest, "category already exists")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to save category")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"categories": categories,
	})
}
