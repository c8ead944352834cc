package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// NoteHandlerTestSuite drives the board workflow end to end through the
// HTTP surface: register, create, list, move, delete.
type NoteHandlerTestSuite struct {
	suite.Suite
	env handlerTestEnv

	annCookies []*http.Cookie
	bobCookies []*http.Cookie
}

// SetupTest runs before each test
func (s *NoteHandlerTestSuite) SetupTest() {
	s.env = setupHandlerTestEnv(s.T())
	s.annCookies = s.register("Ann", "ann1", "pw12")
	s.bobCookies = s.register("Bob", "bob1", "pw34")
}

func (s *NoteHandlerTestSuite) register(name, username, password string) []*http.Cookie {
	w := s.env.doJSON(s.T(), http.MethodPost, "/api/register", map[string]string{
		"name":     name,
		"username": username,
		"password": password,
	}, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func (s *NoteHandlerTestSuite) createNote(cookies []*http.Cookie, title, description, deadline string) {
	w := s.env.doJSON(s.T(), http.MethodPost, "/api/notes", map[string]string{
		"title":       title,
		"description": description,
		"deadline":    deadline,
	}, cookies)
	s.Require().Equal(http.StatusOK, w.Code)
}

func (s *NoteHandlerTestSuite) listNotes(cookies []*http.Cookie) []map[string]any {
	w := s.env.doJSON(s.T(), http.MethodGet, "/api/notes", nil, cookies)
	s.Require().Equal(http.StatusOK, w.Code)

	var notes []map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &notes))
	return notes
}

func (s *NoteHandlerTestSuite) TestBoardWorkflow() {
	s.createNote(s.annCookies, "Buy milk", "2%", "")

	notes := s.listNotes(s.annCookies)
	s.Require().Len(notes, 1)
	s.Equal("Buy milk", notes[0]["title"])
	s.Equal("2%", notes[0]["description"])
	s.Equal("", notes[0]["deadline"])
	s.Equal("todo", notes[0]["column_name"])

	noteID := int(notes[0]["id"].(float64))

	// Move to doing.
	w := s.env.doJSON(s.T(), http.MethodPost, "/api/move", map[string]any{
		"id":          noteID,
		"column_name": "doing",
	}, s.annCookies)
	s.Require().Equal(http.StatusOK, w.Code)

	notes = s.listNotes(s.annCookies)
	s.Equal("doing", notes[0]["column_name"])

	// Delete, then delete again.
	w = s.env.doJSON(s.T(), http.MethodDelete, fmt.Sprintf("/api/notes/%d", noteID), nil, s.annCookies)
	s.Require().Equal(http.StatusOK, w.Code)

	s.Empty(s.listNotes(s.annCookies))

	w = s.env.doJSON(s.T(), http.MethodDelete, fmt.Sprintf("/api/notes/%d", noteID), nil, s.annCookies)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *NoteHandlerTestSuite) TestListOrderNewestFirst() {
	s.createNote(s.annCookies, "first", "d", "")
	s.createNote(s.annCookies, "second", "d", "")
	s.createNote(s.annCookies, "third", "d", "")

	notes := s.listNotes(s.annCookies)
	s.Require().Len(notes, 3)
	s.Equal("third", notes[0]["title"])
	s.Equal("second", notes[1]["title"])
	s.Equal("first", notes[2]["title"])
}

func (s *NoteHandlerTestSuite) TestCreateValidation() {
	w := s.env.doJSON(s.T(), http.MethodPost, "/api/notes", map[string]string{
		"title":       "  ",
		"description": "d",
	}, s.annCookies)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.env.doJSON(s.T(), http.MethodPost, "/api/notes", map[string]string{
		"title":       "t",
		"description": "d",
		"deadline":    "01-02-2030",
	}, s.annCookies)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *NoteHandlerTestSuite) TestMoveBadColumn() {
	s.createNote(s.annCookies, "Buy milk", "2%", "")

	w := s.env.doJSON(s.T(), http.MethodPost, "/api/move", map[string]any{
		"id":          1,
		"column_name": "archived",
	}, s.annCookies)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *NoteHandlerTestSuite) TestForeignNoteLooksMissing() {
	s.createNote(s.annCookies, "Ann's note", "private", "")

	notes := s.listNotes(s.annCookies)
	noteID := int(notes[0]["id"].(float64))

	// Bob cannot see it.
	s.Empty(s.listNotes(s.bobCookies))

	// Bob moving or deleting it gets not-found, not forbidden.
	w := s.env.doJSON(s.T(), http.MethodPost, "/api/move", map[string]any{
		"id":          noteID,
		"column_name": "done",
	}, s.bobCookies)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.env.doJSON(s.T(), http.MethodDelete, fmt.Sprintf("/api/notes/%d", noteID), nil, s.bobCookies)
	s.Equal(http.StatusNotFound, w.Code)

	// And the note is untouched for Ann.
	notes = s.listNotes(s.annCookies)
	s.Require().Len(notes, 1)
	s.Equal("todo", notes[0]["column_name"])
}

func (s *NoteHandlerTestSuite) TestRequiresAuth() {
	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/notes"},
		{http.MethodPost, "/api/notes"},
		{http.MethodPost, "/api/move"},
		{http.MethodDelete, "/api/notes/1"},
	}
	for _, p := range paths {
		w := s.env.doJSON(s.T(), p.method, p.path, nil, nil)
		s.Equal(http.StatusUnauthorized, w.Code, "%s %s", p.method, p.path)
	}
}

func (s *NoteHandlerTestSuite) TestDeleteNonNumericID() {
	w := s.env.doJSON(s.T(), http.MethodDelete, "/api/notes/abc", nil, s.annCookies)
	s.Equal(http.StatusNotFound, w.Code)
}

func TestNoteHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NoteHandlerTestSuite))
}
