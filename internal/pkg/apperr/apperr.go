package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies failures so the HTTP layer can pick a status code without
// inspecting error strings.
type Kind int

const (
	KindGeneration Kind = iota
	KindInvalidRequest
	KindConfiguration
	KindQuotaExceeded
	KindEmptyResponse
	KindMalformedUpstream
)

func (k Kind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindConfiguration:
		return "configuration"
	case KindQuotaExceeded:
		return "quota_exceeded"
	case KindEmptyResponse:
		return "empty_response"
	case KindMalformedUpstream:
		return "malformed_upstream"
	default:
		return "generation"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func InvalidRequest(format string, args ...any) *Error {
	return New(KindInvalidRequest, fmt.Sprintf(format, args...))
}

func Configuration(message string) *Error {
	return New(KindConfiguration, message)
}

func QuotaExceeded(err error) *Error {
	return Wrap(KindQuotaExceeded, "quota exceeded", err)
}

func EmptyResponse(message string) *Error {
	return New(KindEmptyResponse, message)
}

func MalformedUpstream(message string, err error) *Error {
	return Wrap(KindMalformedUpstream, message, err)
}

func Generation(message string, err error) *Error {
	return Wrap(KindGeneration, message, err)
}

// KindOf reports the Kind of the first *Error in err's chain. Errors that
// carry no Kind are treated as generation failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindGeneration
}

func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// StatusCode maps a Kind to the HTTP status returned to the client.
func StatusCode(kind Kind) int {
	switch kind {
	case KindInvalidRequest:
		return http.StatusBadRequest
	case KindQuotaExceeded:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
