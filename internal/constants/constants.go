package constants

// Session cookie and context keys
const (
	SessionCookieName = "workspace_session"
	ContextKeyUserID  = "userId"
)

// Validation minimums enforced at registration
const (
	MinNameLength     = 2
	MinUsernameLength = 2
	MinPasswordLength = 2
)
