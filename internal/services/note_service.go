package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/yukikurage/smart-workspace/internal/models"
	"github.com/yukikurage/smart-workspace/internal/storage"
)

var (
	ErrEmptyFields  = errors.New("title and description are required")
	ErrBadDeadline  = errors.New("deadline must be in YYYY-MM-DD format")
	ErrBadColumn    = errors.New("unknown column")
	ErrNoteNotFound = errors.New("note not found")
)

// NoteService handles the note workflow: every operation is scoped to the
// owning user and runs a full load-mutate-save cycle against the store.
type NoteService struct {
	repo storage.Repository
}

// NewNoteService creates a new NoteService.
func NewNoteService(repo storage.Repository) *NoteService {
	return &NoteService{
		repo: repo,
	}
}

// List returns the user's notes as reconciled views, newest first (ids are
// monotonic, so descending id equals reverse creation order). Legacy
// freeform records are backfilled in the view only; the stored records are
// not rewritten.
func (s *NoteService) List(userID int) ([]models.NoteView, error) {
	store, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load store: %w", err)
	}

	views := make([]models.NoteView, 0)
	for _, note := range store.Notes {
		if note.UserID == userID {
			views = append(views, note.View())
		}
	}

	sort.Slice(views, func(i, j int) bool {
		return views[i].ID > views[j].ID
	})

	return views, nil
}

// CreateNoteInput represents input for creating a note.
type CreateNoteInput struct {
	Title       string
	Description string
	Deadline    string
}

// Create validates the input and appends a new note in the todo column.
// A rejected validation never reaches the store.
func (s *NoteService) Create(userID int, input CreateNoteInput) error {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	deadline := strings.TrimSpace(input.Deadline)

	if title == "" || description == "" {
		return ErrEmptyFields
	}
	if !models.IsValidDateString(deadline) {
		return ErrBadDeadline
	}

	store, err := s.repo.Load()
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	store.Notes = append(store.Notes, models.Note{
		ID:          store.NextNoteID(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Deadline:    deadline,
		ColumnName:  models.ColumnTodo,
	})

	if err := s.repo.Save(store); err != nil {
		return fmt.Errorf("failed to save store: %w", err)
	}

	return nil
}

// Move sets the column of the user's note. A note owned by someone else is
// indistinguishable from a missing id. Moving a note to its current column
// is allowed.
func (s *NoteService) Move(userID, noteID int, column models.Column) error {
	if !column.IsValid() {
		return ErrBadColumn
	}

	store, err := s.repo.Load()
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	for i := range store.Notes {
		note := &store.Notes[i]
		if note.ID == noteID && note.UserID == userID {
			note.ColumnName = column
			if err := s.repo.Save(store); err != nil {
				return fmt.Errorf("failed to save store: %w", err)
			}
			return nil
		}
	}

	return ErrNoteNotFound
}

// Delete removes the user's note. Same not-found policy as Move.
func (s *NoteService) Delete(userID, noteID int) error {
	store, err := s.repo.Load()
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	kept := make([]models.Note, 0, len(store.Notes))
	for _, note := range store.Notes {
		if note.ID == noteID && note.UserID == userID {
			continue
		}
		kept = append(kept, note)
	}

	if len(kept) == len(store.Notes) {
		return ErrNoteNotFound
	}

	store.Notes = kept
	if err := s.repo.Save(store); err != nil {
		return fmt.Errorf("failed to save store: %w", err)
	}

	return nil
}
