package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lifeline/internal/store"
)

type EventHandler struct {
	Store *store.Store
}

// eventReq uses pointers so an absent field can be told apart from an empty
// one: PUT merges only what the request carries.
type eventReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Type        *string `json:"type"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.Store.ListEvents()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load events")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req eventReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	e, err := h.Store.CreateEvent(store.CreateEventInput{
		Title:       deref(req.Title),
		Description: deref(req.Description),
		Category:    deref(req.Category),
		Type:        deref(req.Type),
		Start:       deref(req.Start),
		End:         deref(req.End),
	})
	switch {
	case errors.Is(err, store.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "title, category, type and start are required")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to save event")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"event":   e,
	})
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req eventReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	e, err := h.Store.UpdateEvent(id, store.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Type:        req.Type,
		Start:       req.Start,
		End:         req.End,
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "event not found")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to update event")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"event":   e,
	})
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.Store.DeleteEvent(id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "event not found")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to delete event")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
