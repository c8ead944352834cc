package models

import (
	"regexp"
	"strings"
)

// Column is one of the three fixed workflow states of a note.
type Column string

const (
	ColumnTodo  Column = "todo"
	ColumnDoing Column = "doing"
	ColumnDone  Column = "done"
)

// IsValid reports whether the value is one of the fixed columns.
func (c Column) IsValid() bool {
	switch c {
	case ColumnTodo, ColumnDoing, ColumnDone:
		return true
	}
	return false
}

// Note is a board card stored in the flat document. Records created before
// the title/description split carry a single freeform Text field instead;
// those are reconciled at read time and never rewritten.
type Note struct {
	ID          int    `json:"id"`
	UserID      int    `json:"userId"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Text        string `json:"text,omitempty"`
	Deadline    string `json:"deadline,omitempty"`
	ColumnName  Column `json:"columnName"`
}

// NoteView is the projection of a note exposed to callers. Title and
// description are always non-empty, even for legacy freeform records.
type NoteView struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	ColumnName  Column `json:"column_name"`
}

const (
	legacyTitleLimit = 60
	untitledFallback = "untitled"
)

// View builds the read-time projection of the note. Missing or blank title
// and description are backfilled from the legacy freeform text: the title
// takes its first 60 characters (or "untitled" when the text is blank too)
// and the description takes the full text.
func (n Note) View() NoteView {
	title := strings.TrimSpace(n.Title)
	description := strings.TrimSpace(n.Description)

	if title == "" || description == "" {
		oldText := strings.TrimSpace(n.Text)

		if title == "" {
			if oldText != "" {
				runes := []rune(oldText)
				if len(runes) > legacyTitleLimit {
					runes = runes[:legacyTitleLimit]
				}
				title = string(runes)
			} else {
				title = untitledFallback
			}
		}

		if description == "" {
			description = oldText
		}
	}

	return NoteView{
		ID:          n.ID,
		Title:       title,
		Description: description,
		Deadline:    strings.TrimSpace(n.Deadline),
		ColumnName:  n.ColumnName,
	}
}

var deadlinePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDateString reports whether a deadline value is acceptable: empty
// (no deadline) or strict YYYY-MM-DD digit grouping. The calendar validity
// of the date is deliberately not checked.
func IsValidDateString(value string) bool {
	if value == "" {
		return true
	}
	return deadlinePattern.MatchString(value)
}
