package api

import "errors"

// ErrorKind classifies a failure at the network boundary
type ErrorKind int

const (
	// KindTransport means the request never produced a response
	KindTransport ErrorKind = iota
	// KindStatus means the server answered with a non-2xx status
	KindStatus
	// KindInvalidJSON means a 2xx body could not be decoded
	KindInvalidJSON
)

// String returns a short name for the kind
func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindInvalidJSON:
		return "invalid_json"
	default:
		return "unknown"
	}
}

// Error is the single error type produced by FetchJSON. Message is ready to
// show to the user.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

// Error returns the user-facing message
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Err
}

// IsNetworkError reports whether err came from FetchJSON
func IsNetworkError(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr)
}
