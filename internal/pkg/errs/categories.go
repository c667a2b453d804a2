package errs

// Categories every usecase error is marked with. Handlers only look at these.
var (
	ErrNotFound     = New("not found")
	ErrConflict     = New("conflict")
	ErrAuthRejected = New("authentication rejected")
	ErrValidation   = New("validation failed")
	ErrForbidden    = New("forbidden")
)

// Category returns the first category err belongs to, or nil.
func Category(err error) error {
	for _, c := range []error{ErrNotFound, ErrConflict, ErrAuthRejected, ErrValidation, ErrForbidden} {
		if Is(err, c) {
			return c
		}
	}
	return nil
}
