package timeline

import (
	"html"
	"regexp"
	"sort"
	"time"

	"lifeline/internal/store"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// ClassName derives the per-category visual class, replacing whitespace runs
// with a dash so "New York" and "New  York" style the same.
func ClassName(category string) string {
	return "category-" + whitespaceRe.ReplaceAllString(category, "-")
}

// Item is one horizontal-timeline entry. Point events carry no end; a
// range-typed event missing its end degrades to a point render.
type Item struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Start     string `json:"start"`
	End       string `json:"end,omitempty"`
	Type      string `json:"type"`
	ClassName string `json:"className"`
	Title     string `json:"title"`
}

// HorizontalItems builds one item per visible event, in storage order.
// Content is escaped because the axis renderer injects it as markup; Title
// feeds the DOM title property, which takes plain text.
func HorizontalItems(s *State) []Item {
	events := s.VisibleEvents()
	items := make([]Item, 0, len(events))
	for _, e := range events {
		item := Item{
			ID:        e.ID,
			Content:   html.EscapeString(e.Title),
			Start:     e.Start,
			Type:      store.TypePoint,
			ClassName: ClassName(e.Category),
			Title:     e.Description,
		}
		if e.Type == store.TypeRange && e.End != "" {
			item.End = e.End
			item.Type = store.TypeRange
		}
		items = append(items, item)
	}
	return items
}

// Row is one vertical-list entry. All user-supplied text is escaped before
// it reaches markup; that is a hard invariant, not a nicety.
type Row struct {
	ID          string `json:"id"`
	DateLabel   string `json:"dateLabel"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ClassName   string `json:"className"`
}

// VerticalRows builds the reverse-chronological list of visible events,
// newest start first. Equal starts keep storage order (stable sort).
func VerticalRows(s *State) []Row {
	events := s.VisibleEvents()

	// ISO dates (YYYY-MM-DD) order lexicographically, so string comparison
	// is the date comparison.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start > events[j].Start
	})

	rows := make([]Row, 0, len(events))
	for _, e := range events {
		rows = append(rows, Row{
			ID:          e.ID,
			DateLabel:   dateLabel(e),
			Title:       html.EscapeString(e.Title),
			Category:    html.EscapeString(e.Category),
			Description: html.EscapeString(e.Description),
			ClassName:   ClassName(e.Category),
		})
	}
	return rows
}

func dateLabel(e store.Event) string {
	label := formatDate(e.Start)
	if e.Type == store.TypeRange && e.End != "" {
		label += " - " + formatDate(e.End)
	}
	return label
}

func formatDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return html.EscapeString(s)
	}
	return t.Format("Jan 2, 2006")
}
