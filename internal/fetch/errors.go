package fetch

import (
	"errors"
	"fmt"
)

// Kind classifies what went wrong during an upstream fetch.
type Kind int

const (
	// KindNetwork is a transport-level failure before any response arrived.
	KindNetwork Kind = iota + 1
	// KindBadResponse is a non-success HTTP status.
	KindBadResponse
	// KindMalformedData is a response body that could not be parsed.
	KindMalformedData
	// KindEmptyResponse is a well-formed response carrying zero records.
	KindEmptyResponse
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindBadResponse:
		return "bad response"
	case KindMalformedData:
		return "malformed data"
	case KindEmptyResponse:
		return "empty response"
	default:
		return "unknown"
	}
}

// Error is a failed upstream fetch with enough context for the caller to
// decide what to tell the user.
type Error struct {
	Kind       Kind
	URL        string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("error while connecting to %s: %v", e.URL, e.Err)
	case KindBadResponse:
		return fmt.Sprintf("bad response (%d) from %s", e.StatusCode, e.URL)
	case KindMalformedData:
		return fmt.Sprintf("malformed data from %s: %v", e.URL, e.Err)
	case KindEmptyResponse:
		return fmt.Sprintf("empty response from %s", e.URL)
	default:
		return fmt.Sprintf("fetch failed for %s", e.URL)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// NetworkError wraps a transport failure for url.
func NetworkError(url string, err error) *Error {
	return &Error{Kind: KindNetwork, URL: url, Err: err}
}

// BadResponse records a non-success status from url.
func BadResponse(url string, status int) *Error {
	return &Error{Kind: KindBadResponse, URL: url, StatusCode: status}
}

// Malformed wraps a parse failure for the body served by url.
func Malformed(url string, err error) *Error {
	return &Error{Kind: KindMalformedData, URL: url, Err: err}
}

// EmptyResponse records that url returned no records.
func EmptyResponse(url string) *Error {
	return &Error{Kind: KindEmptyResponse, URL: url}
}

// IsKind reports whether err is (or wraps) a fetch Error of the given kind.
func IsKind(err error, k Kind) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Kind == k
}
