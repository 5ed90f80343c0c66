package handler

import (
	"net/http"
	"strings"

	"lifeline/internal/store"
	"lifeline/internal/timeline"
)

type TimelineHandler struct {
	Store *store.Store
}

// View materializes one of the two timeline views. The visibility set starts
// full; ?hide=Cat1,Cat2 removes categories from it for this request.
func (h *TimelineHandler) View(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	orientation := timeline.Horizontal
	if v := q.Get("orientation"); v != "" {
		o, ok := timeline.ParseOrientation(v)
		if !ok {
			writeError(w, http.StatusBadRequest, "orientation must be horizontal or vertical")
			return
		}
		orientation = o
	}

	events, err := h.Store.ListEvents()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load events")
		return
	}
	categories, err := h.Store.ListCategories()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load categories")
		return
	}

	state := timeline.NewState(events, categories)
	state.SetOrientation(orientation)
	if hide := q.Get("hide"); hide != "" {
		for _, c := range strings.Split(hide, ",") {
			state.Hide(c)
		}
	}

	resp := map[string]any{"orientation": orientation}
	switch orientation {
	case timeline.Vertical:
		resp["rows"] = timeline.VerticalRows(state)
	default:
		resp["items"] = timeline.HorizontalItems(state)
	}
	writeJSON(w, http.StatusOK, resp)
}
