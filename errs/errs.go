// Package errs centralizes the sentinel errors for the LispTick client, so
// call sites can wrap context with fmt.Errorf("...: %w", ...) and callers
// can match with errors.Is.
package errs

import "errors"

// Protocol errors: the server sent something the codec cannot interpret.
var (
	// ErrUnhandledType is raised when a frame or sub-value carries a tag
	// byte the codec does not recognize.
	ErrUnhandledType = errors.New("unhandled type")

	// ErrServerError is raised when the server sends a top-level Error
	// frame, or an Error tag inside a serialized sub-decoder.
	ErrServerError = errors.New("server reported an error")

	// ErrUnexpectedTag is raised when a tag appears somewhere the protocol
	// forbids it (e.g. Array or TimeSeries inside a serialized sub-value).
	ErrUnexpectedTag = errors.New("unexpected tag in this context")

	// ErrMalformedSize is raised when a length or element-count field is
	// negative or otherwise impossible.
	ErrMalformedSize = errors.New("malformed size")
)

// Transport errors: the byte stream itself misbehaved.
var (
	// ErrShortRead is raised when the stream closes in the middle of a
	// frame, i.e. not at a frame boundary.
	ErrShortRead = errors.New("short read: stream closed mid-frame")

	// ErrSendFailed is raised when writing the request envelope makes no
	// progress.
	ErrSendFailed = errors.New("transport connection broken")

	// ErrConnectFailed is raised when the initial dial to the server
	// fails.
	ErrConnectFailed = errors.New("failed to connect to server")
)

// Request-size error, raised before any I/O is attempted.
var ErrMessageTooLarge = errors.New("request message exceeds 64KiB envelope limit")

// Materializer error: the caller-specified point budget was exhausted.
var ErrPointsLimitReached = errors.New("points limit reached, use streaming or a smaller query")
