package domain

import "errors"

// Authentication / authorization failures. These are terminal for the
// request; callers never retry them.
var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidSession = errors.New("invalid session")
	ErrAdminRequired  = errors.New("admin access required")
	ErrForbidden      = errors.New("forbidden")
)

// Not-found sentinels, one per collection.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrTeamMemberNotFound = errors.New("team member not found")
)

// Uniqueness conflicts on user identity fields.
var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
	ErrPhoneTaken    = errors.New("phone number already exists")
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// FieldErrors is a validation or credential failure with per-field
// detail. Code is the HTTP status the API should answer with; zero
// means 400.
type FieldErrors struct {
	Message string
	Fields  map[string]string
	Code    int
}

func (e *FieldErrors) Error() string { return e.Message }

// NewFieldErrors builds a 400-level FieldErrors.
func NewFieldErrors(message string, fields map[string]string) *FieldErrors {
	return &FieldErrors{Message: message, Fields: fields}
}

// NewCredentialErrors builds a 401-level FieldErrors for login failures.
func NewCredentialErrors(fields map[string]string) *FieldErrors {
	return &FieldErrors{Message: "Invalid credentials", Fields: fields, Code: 401}
}
