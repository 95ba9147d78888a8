package report

// FallbackError shows a fixed user-facing message while keeping the
// underlying failure reachable through errors.Is and errors.As.
type FallbackError struct {
	Message string
	Err     error
}

func (e *FallbackError) Error() string { return e.Message }

func (e *FallbackError) Unwrap() error { return e.Err }

// Fallback wraps err behind message. It returns nil when err is nil.
func Fallback(message string, err error) error {
	if err == nil {
		return nil
	}
	return &FallbackError{Message: message, Err: err}
}

// Message is an error whose text is UI copy, shown to the user as written.
// Values compare by text, so package-level Messages work with errors.Is.
type Message string

func (m Message) Error() string { return string(m) }
