package kameloso

import "github.com/pkg/errors"

// Sentinel errors for the parse error taxonomy. Fatal errors (everything
// here except the sanity postpass, which never throws) propagate out of
// ToEvent wrapped with github.com/pkg/errors.Wrap so the raw line rides
// along as context. The caller's line loop decides whether to log,
// reconnect, or continue; the process itself never crashes on a bad line.
var (
	// ErrEmptyLine is returned for a zero-length line.
	ErrEmptyLine = errors.New("kameloso: empty line")

	// ErrUnknownBasicCommand is returned for a prefix-less line whose
	// command is not one of PING, ERROR, PONG, NOTICE or AUTHENTICATE.
	ErrUnknownBasicCommand = errors.New("kameloso: unknown unprefixed command")

	// ErrUnknownNamedCommand is returned for a prefixed line whose command
	// token does not map to any known event kind.
	ErrUnknownNamedCommand = errors.New("kameloso: unknown named command")

	// ErrBadNumeric is returned when a numeric command token fails integer
	// parsing.
	ErrBadNumeric = errors.New("kameloso: malformed numeric")

	// ErrUnknownCTCP is returned for a CTCP-framed body that carries no
	// verb. Any non-empty verb other than ACTION is accepted as
	// CTCP_GENERIC; no verb is rejected as unknown.
	ErrUnknownCTCP = errors.New("kameloso: unknown CTCP verb")

	// ErrMalformedToken is returned when a tokenizer primitive consumes
	// past the end of its input (e.g. a missing expected space).
	ErrMalformedToken = errors.New("kameloso: malformed token")

	// ErrUnknownConnectHint is returned when an ERR_NEEDPONG (513) payload
	// does not match the expected "To connect, type /QUOTE PONG <token>"
	// shape.
	ErrUnknownConnectHint = errors.New("kameloso: unrecognised connect hint")
)

// parseError wraps a sentinel with line context and carries the
// partially-built Event so the caller can inspect what was assembled before
// the failure.
type parseError struct {
	cause error
	event Event
}

func (e *parseError) Error() string { return e.cause.Error() }

func (e *parseError) Cause() error { return e.cause }

// Unwrap returns the sentinel error, so that errors.Is matches it.
func (e *parseError) Unwrap() error { return errors.Cause(e.cause) }

// Event returns the partially-built Event that was under construction when
// the error occurred, for diagnostic purposes.
func (e *parseError) Event() Event { return e.event }

func wrapErr(sentinel error, raw string, ev Event) error {
	return &parseError{cause: errors.Wrap(sentinel, raw), event: ev}
}
