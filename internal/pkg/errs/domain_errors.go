package errs

// Error kinds shared by the domain and usecase layers.
// Concrete errors are marked with one of these so the handler layer can map them to a status.
var (
	ErrNotFound   = New("not found")
	ErrValidation = New("validation failed")
	ErrConflict   = New("conflict")
	ErrForbidden  = New("forbidden")
)

// NotFound, Validation, Conflict and Forbidden build a kind-marked error with a message.
func NotFound(msg string) error   { return Mark(New(msg), ErrNotFound) }
func Validation(msg string) error { return Mark(New(msg), ErrValidation) }
func Conflict(msg string) error   { return Mark(New(msg), ErrConflict) }
func Forbidden(msg string) error  { return Mark(New(msg), ErrForbidden) }
