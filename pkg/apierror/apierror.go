package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed operation for presentation purposes.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
	KindNetwork
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Error is the normalized failure surfaced by the transport and workflows.
// Status is the HTTP status when a response was received, 0 otherwise.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidation reports a client-side validation failure. It never wraps a
// transport error and never reaches the network.
func NewValidation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewNetwork reports that no response was received at all.
func NewNetwork(err error) *Error {
	return &Error{Kind: KindNetwork, Message: "no response from server", Err: err}
}

// FromStatus maps a non-2xx response to an Error, keeping the server's
// message verbatim when it sent one.
func FromStatus(status int, message string) *Error {
	kind := KindUnknown
	switch {
	case status == http.StatusNotFound:
		kind = KindNotFound
	case status == http.StatusConflict || status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		kind = KindConflict
	}
	return &Error{Kind: kind, Status: status, Message: message}
}

// UserMessage returns the text to show the user for err: the server-provided
// message when there is one, otherwise fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" && apiErr.Kind != KindNetwork {
		return apiErr.Message
	}
	return fallback
}

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindValidation
}

// IsNotFound reports whether the server rejected an unknown id.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindNotFound
}
