package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/devhenode/skills-getting-started-with-github-copilot/internal/domain/activity"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrMissingParam = errors.New("missing required query parameter")
)

// Error attaches the failing operation and an optional kind to an error.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Kind != nil {
		return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Kind != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Err}
}

// Wrap annotates err with op. It returns nil for a nil err.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// WrapKind annotates err with op and classifies it as kind.
func WrapKind(op string, kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

// MissingParamError reports an absent required query parameter.
type MissingParamError struct {
	Param string
}

func (e *MissingParamError) Error() string {
	return "missing required query parameter: " + e.Param
}

// Is makes errors.Is(err, ErrMissingParam) hold.
func (e *MissingParamError) Is(target error) bool {
	return target == ErrMissingParam
}

// problem maps err to a status code and the detail shown to clients.
func problem(err error) (int, string) {
	var missing *MissingParamError
	switch {
	case errors.Is(err, activity.ErrActivityNotFound):
		return http.StatusNotFound, "Activity not found"
	case errors.Is(err, activity.ErrAlreadySignedUp):
		return http.StatusBadRequest, "Student already signed up for an activity"
	case errors.Is(err, activity.ErrParticipantNotFound):
		return http.StatusNotFound, "Participant not found in this activity"
	case errors.As(err, &missing):
		return http.StatusUnprocessableEntity, "Missing required query parameter: " + missing.Param
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, http.StatusText(http.StatusBadRequest)
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}
