package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/smart-workspace/internal/constants"
	"github.com/yukikurage/smart-workspace/internal/dto"
	apierrors "github.com/yukikurage/smart-workspace/internal/errors"
	"github.com/yukikurage/smart-workspace/internal/middleware"
	"github.com/yukikurage/smart-workspace/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// CheckUsername reports whether a username is already registered.
func (h *AuthHandler) CheckUsername(c *gin.Context) {
	type CheckUsernameRequest struct {
		Username string `json:"username"`
	}

	var req CheckUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "invalid request body")
		return
	}

	taken, err := h.authService.CheckUsername(req.Username)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"taken": taken})
}

// Register creates a new user and initializes the session.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Name     string `json:"name"`
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	if err := setSessionUser(c, user.ID); err != nil {
		apierrors.InternalError(c, "failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "user": dto.ToUserDTO(*user)})
}

// Login authenticates a user and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	if err := setSessionUser(c, user.ID); err != nil {
		apierrors.InternalError(c, "failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "user": dto.ToUserDTO(*user)})
}

// Logout removes the authentication session. A request without a session
// succeeds all the same.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me returns the user behind the current session, or null. No session
// marker means no storage access at all.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			// The user was deleted after the session was established.
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.ToUserDTO(*user)})
}

func setSessionUser(c *gin.Context, userID int) error {
	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, userID)
	return session.Save()
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNameTooShort),
		errors.Is(err, services.ErrCredentialsTooShort),
		errors.Is(err, services.ErrUsernameTaken):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
