// Package ics exports the event list as an iCalendar feed so the timeline
// can be subscribed to from a calendar app.
package ics

import (
	"time"

	ical "github.com/arran4/golang-ical"

	"lifeline/internal/store"
)

const prodID = "-//lifeline//timeline//EN"

// Build renders all events as all-day VEVENTs. Events whose dates fail to
// parse are skipped rather than poisoning the whole feed.
func Build(calName string, events []store.Event) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)
	if calName != "" {
		cal.SetName(calName)
	}

	now := time.Now().UTC()
	for _, e := range events {
		start, err := time.Parse("2006-01-02", e.Start)
		if err != nil {
			continue
		}

		// DTEND is exclusive per RFC 5545, so an all-day event ends the
		// day after its last date.
		end := start.AddDate(0, 0, 1)
		if e.Type == store.TypeRange && e.End != "" {
			if t, err := time.Parse("2006-01-02", e.End); err == nil {
				end = t.AddDate(0, 0, 1)
			}
		}

		ev := cal.AddEvent(e.ID)
		ev.SetDtStampTime(now)
		ev.SetAllDayStartAt(start)
		ev.SetAllDayEndAt(end)
		ev.SetSummary(e.Title)
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if e.Category != "" {
			ev.SetProperty(ical.ComponentPropertyCategories, e.Category)
		}
	}

	return cal.Serialize()
}
