package store

// Event types. A point event marks a single date, a range event spans two.
const (
	TypePoint = "point"
	TypeRange = "range"
)

// UserProfile is the singleton profile. Saved wholesale, never partially.
type UserProfile struct {
	Name      string `json:"name"`
	Birthdate string `json:"birthdate"` // YYYY-MM-DD
}

// Event is a single life event. End is empty (and absent from JSON) for
// point events; the store drops it whenever an update lands on type=point.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Start       string `json:"start"` // YYYY-MM-DD
	End         string `json:"end,omitempty"`
}

// Document is the whole persisted state: one JSON file, three collections.
type Document struct {
	User       UserProfile `json:"user"`
	Events     []Event     `json:"events"`
	Categories []string    `json:"categories"`
}
