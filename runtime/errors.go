package utf8conv

// ErrMoreData is returned by the streaming calls when the current input
// buffer is exhausted and the last-buffer flag is not set. The caller
// supplies the next buffer (MoreHint is a reasonable size) or declares
// end of input with SetLastBuffer(true) and calls again. End of stream
// itself is reported as io.EOF.
//
// ErrMoreData is a flow-control signal, not a failure; malformed input
// never produces an error, only replacement output and the sticky
// invalid-sequence flag.
var ErrMoreData error = errMoreData{}

// Error is the interface satisfied by all of the errors that originate
// from this package.
type Error interface {
	error

	// Resumable returns whether or not the error means that the
	// conversion can continue once the caller supplies more input.
	Resumable() bool
}

type errMoreData struct{}

func (e errMoreData) Error() string   { return "utf8conv: need more input data" }
func (e errMoreData) Resumable() bool { return true }

// Resumable returns whether or not the error means that the conversion
// can continue once the caller supplies more input.
func Resumable(e error) bool {
	if e, ok := e.(Error); ok {
		return e.Resumable()
	}
	return false
}
