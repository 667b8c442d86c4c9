package errs

// Sentinels used by the usecase layer. Handlers map them to HTTP status codes.
var (
	// malformed or out-of-range input; the message names the offending field
	ErrInvalidRequest = New("invalid request")

	ErrNotFound = New("not found")

	ErrInsufficientFunds = New("insufficient funds")

	// concurrent modification that could not be resolved by retrying
	ErrConflict = New("conflict")
)

// Invalid returns a client-readable error classified as ErrInvalidRequest.
func Invalid(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrInvalidRequest)
}

// NotFound returns a client-readable error classified as ErrNotFound.
func NotFound(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrNotFound)
}
