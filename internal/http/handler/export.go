package handler

import (
	"net/http"

	"lifeline/internal/ics"
	"lifeline/internal/store"
)

type ExportHandler struct {
	Store *store.Store
}

// ICS streams the full event list as an iCalendar feed.
func (h *ExportHandler) ICS(w http.ResponseWriter, r *http.Request) {
	events, err := h.Store.ListEvents()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load events")
		return
	}
	u, err := h.Store.GetUser()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load user data")
		return
	}

	calName := "Life timeline"
	if u.Name != "" {
		calName = u.Name + "'s life timeline"
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="lifeline.ics"`)
	_, _ = w.Write([]byte(ics.Build(calName, events)))
}
