// Package store owns the flat-file JSON document holding the user profile,
// events and categories. Every mutation is read-document, change in memory,
// rewrite the whole file. A mutex serializes the cycle so concurrent requests
// cannot interleave their read and write phases; a failed write leaves the
// on-disk copy untouched and authoritative.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrDuplicate    = errors.New("duplicate")
)

var seedCategories = []string{"Work", "Education", "Personal", "Travel", "Health", "Relationships"}

type Store struct {
	path string
	mu   sync.Mutex
	log  zerolog.Logger
}

// Open creates the data file with the seed document if it does not exist yet.
func Open(path string, log zerolog.Logger) (*Store, error) {
	s := &Store{path: path, log: log}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		doc := Document{
			Events:     []Event{},
			Categories: append([]string(nil), seedCategories...),
		}
		if err := s.write(&doc); err != nil {
			return nil, fmt.Errorf("seed data file: %w", err)
		}
		log.Info().Str("path", path).Msg("initialized data file")
	}

	return s, nil
}

func (s *Store) read() (*Document, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decode data file: %w", err)
	}
	if doc.Events == nil {
		doc.Events = []Event{}
	}
	if doc.Categories == nil {
		doc.Categories = []string{}
	}
	return &doc, nil
}

func (s *Store) write(doc *Document) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode data file: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	return nil
}

func (s *Store) GetUser() (UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return UserProfile{}, err
	}
	return doc.User, nil
}

// SaveUser replaces the profile wholesale. Both fields are required.
func (s *Store) SaveUser(name, birthdate string) (UserProfile, error) {
	name = strings.TrimSpace(name)
	birthdate = strings.TrimSpace(birthdate)
	if name == "" || birthdate == "" {
		return UserProfile{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return UserProfile{}, err
	}
	doc.User = UserProfile{Name: name, Birthdate: birthdate}
	if err := s.write(doc); err != nil {
		return UserProfile{}, err
	}
	return doc.User, nil
}

// ListEvents returns the full event list in storage order.
func (s *Store) ListEvents() ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Events, nil
}

func (s *Store) GetEvent(id string) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return Event{}, err
	}
	for _, e := range doc.Events {
		if e.ID == id {
			return e, nil
		}
	}
	return Event{}, ErrNotFound
}

type CreateEventInput struct {
	Title       string
	Description string
	Category    string
	Type        string
	Start       string
	End         string
}

// CreateEvent assigns a fresh id and appends the event. The id is the
// creation timestamp in nanoseconds as a decimal string; there is no
// collision check, mirroring the accepted rapid-fire creation risk.
func (s *Store) CreateEvent(in CreateEventInput) (Event, error) {
	if in.Title == "" || in.Category == "" || in.Type == "" || in.Start == "" {
		return Event{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return Event{}, err
	}

	e := Event{
		ID:          strconv.FormatInt(time.Now().UnixNano(), 10),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Type:        in.Type,
		Start:       in.Start,
	}
	if in.Type == TypeRange && in.End != "" {
		e.End = in.End
	}

	doc.Events = append(doc.Events, e)
	if err := s.write(doc); err != nil {
		return Event{}, err
	}

	s.log.Debug().Str("id", e.ID).Str("category", e.Category).Msg("event created")
	return e, nil
}

// UpdateEventInput carries only the fields present in the request; nil
// fields keep their prior values.
type UpdateEventInput struct {
	Title       *string
	Description *string
	Category    *string
	Type        *string
	Start       *string
	End         *string
}

// UpdateEvent merges the provided fields onto the stored event. The end
// field is normalized against the resulting type: a point event never keeps
// an end, whatever the prior record held.
func (s *Store) UpdateEvent(id string, in UpdateEventInput) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return Event{}, err
	}

	idx := -1
	for i, e := range doc.Events {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Event{}, ErrNotFound
	}

	e := doc.Events[idx]
	if in.Title != nil {
		e.Title = *in.Title
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Category != nil {
		e.Category = *in.Category
	}
	if in.Type != nil {
		e.Type = *in.Type
	}
	if in.Start != nil {
		e.Start = *in.Start
	}
	if in.End != nil {
		e.End = *in.End
	}
	if e.Type != TypeRange {
		e.End = ""
	}

	doc.Events[idx] = e
	if err := s.write(doc); err != nil {
		return Event{}, err
	}

	s.log.Debug().Str("id", id).Msg("event updated")
	return e, nil
}

// DeleteEvent removes the first event matching id. Deleting an unknown id
// reports ErrNotFound, so a second delete of the same id fails.
func (s *Store) DeleteEvent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	for i, e := range doc.Events {
		if e.ID == id {
			doc.Events = append(doc.Events[:i], doc.Events[i+1:]...)
			if err := s.write(doc); err != nil {
				return err
			}
			s.log.Debug().Str("id", id).Msg("event deleted")
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) ListCategories() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Categories, nil
}

// AddCategory appends a category and returns the full updated list.
// Exact-string duplicates are rejected; order is insertion order.
func (s *Store) AddCategory(name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	for _, c := range doc.Categories {
		if c == name {
			return nil, ErrDuplicate
		}
	}

	doc.Categories = append(doc.Categories, name)
	if err := s.write(doc); err != nil {
		return nil, err
	}

	s.log.Debug().Str("category", name).Msg("category added")
	return doc.Categories, nil
}
