package cli

import "fmt"

// NotLoggedInError indicates the command needs a session that isn't there.
type NotLoggedInError struct {
	Role string // "user" or "admin"
}

func (e *NotLoggedInError) Error() string {
	if e.Role == "admin" {
		return "not logged in as admin (run 'shopctl admin login <email>' first)"
	}
	return "not logged in (run 'shopctl login <email>' first)"
}

// ValidationError indicates client-side input validation failed before any
// network call was issued.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// FormatError returns a user-friendly error message prefixed with "error: "
// for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
