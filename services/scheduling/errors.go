package scheduling

// ValidationError marks malformed caller input: bad date, bad time string,
// out-of-bounds duration. Surfaced as a 400, never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError marks a reference to a provider that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ForbiddenError marks an authenticated caller acting on a record that is
// not theirs, or performing a transition their role does not allow.
// Surfaced as a 403.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}
