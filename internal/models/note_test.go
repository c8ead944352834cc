package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColumn_IsValid(t *testing.T) {
	require.True(t, ColumnTodo.IsValid())
	require.True(t, ColumnDoing.IsValid())
	require.True(t, ColumnDone.IsValid())
	require.False(t, Column("archived").IsValid())
	require.False(t, Column("").IsValid())
	require.False(t, Column("TODO").IsValid())
}

func TestIsValidDateString(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"2030-01-02", true},
		{"", true},
		{"2024-99-99", true}, // format only, no calendar check
		{"01-02-2030", false},
		{"2030/01/02", false},
		{"2030-1-2", false},
		{"2030-01-02x", false},
		{" 2030-01-02", false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, IsValidDateString(tc.value), "value=%q", tc.value)
	}
}

func TestNote_View_Structured(t *testing.T) {
	note := Note{
		ID:          3,
		UserID:      1,
		Title:       "Buy milk",
		Description: "2%",
		Deadline:    "2030-01-02",
		ColumnName:  ColumnDoing,
	}

	view := note.View()
	require.Equal(t, 3, view.ID)
	require.Equal(t, "Buy milk", view.Title)
	require.Equal(t, "2%", view.Description)
	require.Equal(t, "2030-01-02", view.Deadline)
	require.Equal(t, ColumnDoing, view.ColumnName)
}

func TestNote_View_LegacyFreeform(t *testing.T) {
	text := strings.Repeat("x", 80)
	note := Note{ID: 1, UserID: 1, Text: text, ColumnName: ColumnTodo}

	view := note.View()
	require.Equal(t, strings.Repeat("x", 60), view.Title)
	require.Equal(t, text, view.Description)
	require.Empty(t, view.Deadline)
}

func TestNote_View_LegacyShortText(t *testing.T) {
	note := Note{ID: 1, UserID: 1, Text: "short", ColumnName: ColumnTodo}

	view := note.View()
	require.Equal(t, "short", view.Title)
	require.Equal(t, "short", view.Description)
}

func TestNote_View_BlankEverything(t *testing.T) {
	note := Note{ID: 1, UserID: 1, Text: "   ", ColumnName: ColumnTodo}

	view := note.View()
	require.Equal(t, "untitled", view.Title)
	require.Empty(t, view.Description)
}

func TestNote_View_PartialLegacy(t *testing.T) {
	// A record with a title but no description still backfills the
	// description from the freeform text.
	note := Note{ID: 1, UserID: 1, Title: "kept", Text: "legacy body", ColumnName: ColumnTodo}

	view := note.View()
	require.Equal(t, "kept", view.Title)
	require.Equal(t, "legacy body", view.Description)
}

func TestUser_DisplayName(t *testing.T) {
	require.Equal(t, "Ann", User{Name: "Ann", Username: "ann1"}.DisplayName())
	require.Equal(t, "ann1", User{Username: "ann1"}.DisplayName())
	require.Equal(t, "ann1", User{Name: "   ", Username: "ann1"}.DisplayName())
}

func TestStore_MintIDs(t *testing.T) {
	store := NewStore()
	require.Equal(t, 1, store.NextUserID())
	require.Equal(t, 2, store.NextUserID())
	require.Equal(t, 1, store.NextNoteID())
	require.Equal(t, 2, store.LastUserID)
	require.Equal(t, 1, store.LastNoteID)
}
