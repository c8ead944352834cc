package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/smart-workspace/internal/errors"
	"github.com/yukikurage/smart-workspace/internal/middleware"
	"github.com/yukikurage/smart-workspace/internal/models"
	"github.com/yukikurage/smart-workspace/internal/services"
)

// NoteHandler coordinates the note workflow HTTP handlers. All routes sit
// behind RequireAuth, so a missing user id in context is a wiring bug.
type NoteHandler struct {
	noteService *services.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(noteService *services.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// ListNotes returns the current user's notes, newest first.
func (h *NoteHandler) ListNotes(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	notes, err := h.noteService.List(userID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, notes)
}

// CreateNote adds a note to the current user's todo column.
func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateNoteRequest struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Deadline    string `json:"deadline"`
	}

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "invalid request body")
		return
	}

	err := h.noteService.Create(userID, services.CreateNoteInput{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
	})
	if err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// MoveNote sets the column of one of the current user's notes.
func (h *NoteHandler) MoveNote(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type MoveNoteRequest struct {
		ID         int    `json:"id"`
		ColumnName string `json:"column_name"`
	}

	var req MoveNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "invalid request body")
		return
	}

	if err := h.noteService.Move(userID, req.ID, models.Column(req.ColumnName)); err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DeleteNote removes one of the current user's notes.
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	// A non-numeric id can never match a note, so it reports the same
	// not-found as a missing one.
	noteID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		apierrors.NotFound(c, "")
		return
	}

	if err := h.noteService.Delete(userID, noteID); err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func respondNoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyFields),
		errors.Is(err, services.ErrBadDeadline),
		errors.Is(err, services.ErrBadColumn):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNoteNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
