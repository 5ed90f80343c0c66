package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	s, err := Open(path, zerolog.Nop())
	require.NoError(t, err)
	return s, path
}

func TestOpenSeedsDataFile(t *testing.T) {
	s, path := newTestStore(t)

	_, err := os.Stat(path)
	require.NoError(t, err)

	categories, err := s.ListCategories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Work", "Education", "Personal", "Travel", "Health", "Relationships"}, categories)

	u, err := s.GetUser()
	require.NoError(t, err)
	assert.Empty(t, u.Name)
	assert.Empty(t, u.Birthdate)

	events, err := s.ListEvents()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestOpenKeepsExistingFile(t *testing.T) {
	s, path := newTestStore(t)
	_, err := s.SaveUser("Alice", "1990-05-01")
	require.NoError(t, err)

	// reopening must not reseed
	s2, err := Open(path, zerolog.Nop())
	require.NoError(t, err)
	u, err := s2.GetUser()
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)
}

func TestSaveUser(t *testing.T) {
	s, _ := newTestStore(t)

	u, err := s.SaveUser("Alice", "1990-05-01")
	require.NoError(t, err)
	assert.Equal(t, UserProfile{Name: "Alice", Birthdate: "1990-05-01"}, u)

	u, err = s.GetUser()
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)

	_, err = s.SaveUser("", "1990-05-01")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = s.SaveUser("Alice", "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateEventPointOmitsEnd(t *testing.T) {
	s, path := newTestStore(t)

	e, err := s.CreateEvent(CreateEventInput{
		Title:    "Started job",
		Category: "Work",
		Type:     TypePoint,
		Start:    "2015-06-01",
		End:      "2016-01-01", // must be ignored for a point event
	})
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Empty(t, e.End)

	// the persisted record must not carry an end key at all
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"end"`)

	got, err := s.GetEvent(e.ID)
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestCreateEventRangeRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	e, err := s.CreateEvent(CreateEventInput{
		Title:    "University",
		Category: "Education",
		Type:     TypeRange,
		Start:    "2010-09-01",
		End:      "2020-01-01",
	})
	require.NoError(t, err)

	got, err := s.GetEvent(e.ID)
	require.NoError(t, err)
	assert.Equal(t, "2020-01-01", got.End)
}

func TestCreateEventValidation(t *testing.T) {
	s, _ := newTestStore(t)

	tests := []struct {
		name string
		in   CreateEventInput
	}{
		{"missing title", CreateEventInput{Category: "Work", Type: TypePoint, Start: "2020-01-01"}},
		{"missing category", CreateEventInput{Title: "x", Type: TypePoint, Start: "2020-01-01"}},
		{"missing type", CreateEventInput{Title: "x", Category: "Work", Start: "2020-01-01"}},
		{"missing start", CreateEventInput{Title: "x", Category: "Work", Type: TypePoint}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateEvent(tt.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateEventIDsUnique(t *testing.T) {
	s, _ := newTestStore(t)

	seen := map[string]struct{}{}
	for i := 0; i < 50; i++ {
		e, err := s.CreateEvent(CreateEventInput{
			Title:    "e",
			Category: "Work",
			Type:     TypePoint,
			Start:    "2020-01-01",
		})
		require.NoError(t, err)
		_, dup := seen[e.ID]
		require.False(t, dup, "duplicate id %s", e.ID)
		seen[e.ID] = struct{}{}
	}
}

func TestUpdateEventMergesFields(t *testing.T) {
	s, _ := newTestStore(t)

	e, err := s.CreateEvent(CreateEventInput{
		Title:       "Old title",
		Description: "desc",
		Category:    "Work",
		Type:        TypePoint,
		Start:       "2015-06-01",
	})
	require.NoError(t, err)

	title := "New title"
	got, err := s.UpdateEvent(e.ID, UpdateEventInput{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "New title", got.Title)
	assert.Equal(t, "desc", got.Description)
	assert.Equal(t, "Work", got.Category)
	assert.Equal(t, "2015-06-01", got.Start)
	assert.Equal(t, e.ID, got.ID)
}

func TestUpdateRangeToPointDropsEnd(t *testing.T) {
	s, path := newTestStore(t)

	e, err := s.CreateEvent(CreateEventInput{
		Title:    "University",
		Category: "Education",
		Type:     TypeRange,
		Start:    "2010-09-01",
		End:      "2014-06-30",
	})
	require.NoError(t, err)

	typ := TypePoint
	got, err := s.UpdateEvent(e.ID, UpdateEventInput{Type: &typ})
	require.NoError(t, err)
	assert.Empty(t, got.End)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"end"`)
}

func TestUpdateRangeEndFromPrior(t *testing.T) {
	s, _ := newTestStore(t)

	e, err := s.CreateEvent(CreateEventInput{
		Title:    "University",
		Category: "Education",
		Type:     TypeRange,
		Start:    "2010-09-01",
		End:      "2014-06-30",
	})
	require.NoError(t, err)

	// updating an unrelated field keeps the prior end
	title := "College"
	got, err := s.UpdateEvent(e.ID, UpdateEventInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "2014-06-30", got.End)
}

func TestUpdateUnknownID(t *testing.T) {
	s, _ := newTestStore(t)

	title := "x"
	_, err := s.UpdateEvent("missing", UpdateEventInput{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteEventTwice(t *testing.T) {
	s, _ := newTestStore(t)

	e, err := s.CreateEvent(CreateEventInput{
		Title:    "e",
		Category: "Work",
		Type:     TypePoint,
		Start:    "2020-01-01",
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteEvent(e.ID))
	assert.ErrorIs(t, s.DeleteEvent(e.ID), ErrNotFound)
}

func TestAddCategory(t *testing.T) {
	s, _ := newTestStore(t)

	categories, err := s.AddCategory("Hobbies")
	require.NoError(t, err)
	assert.Equal(t, "Hobbies", categories[len(categories)-1])
}

func TestAddCategoryDuplicate(t *testing.T) {
	s, _ := newTestStore(t)

	before, err := s.ListCategories()
	require.NoError(t, err)

	_, err = s.AddCategory("Work")
	assert.ErrorIs(t, err, ErrDuplicate)

	after, err := s.ListCategories()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAddCategoryEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.AddCategory("   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestWriteFailureDiscardsMutation(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	s, path := newTestStore(t)

	kept, err := s.CreateEvent(CreateEventInput{
		Title:    "kept",
		Category: "Work",
		Type:     TypePoint,
		Start:    "2020-01-01",
	})
	require.NoError(t, err)

	// make the rewrite fail: read still works, write does not
	require.NoError(t, os.Chmod(path, 0o444))
	t.Cleanup(func() { _ = os.Chmod(path, 0o644) })

	_, err = s.CreateEvent(CreateEventInput{
		Title:    "lost",
		Category: "Work",
		Type:     TypePoint,
		Start:    "2021-01-01",
	})
	require.Error(t, err)

	_, err = s.SaveUser("Alice", "1990-05-01")
	require.Error(t, err)

	// the stale on-disk copy stays authoritative
	require.NoError(t, os.Chmod(path, 0o644))

	events, err := s.ListEvents()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, kept.ID, events[0].ID)

	u, err := s.GetUser()
	require.NoError(t, err)
	assert.Empty(t, u.Name)
}

func TestCorruptDataFile(t *testing.T) {
	s, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := s.ListEvents()
	assert.Error(t, err)
}
