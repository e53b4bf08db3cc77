package scheduling

import (
	"errors"
	"fmt"
)

// ErrorKind classifies booking failures so the transport layer can map them
// to status codes without inspecting message text.
type ErrorKind string

const (
	KindInvalidRequest     ErrorKind = "invalidRequest"
	KindSpecialistNotFound ErrorKind = "specialistNotFound"
	KindSkillMismatch      ErrorKind = "skillMismatch"
	KindScheduleConflict   ErrorKind = "scheduleConflict"
	KindStoreFailure       ErrorKind = "storeFailure"
)

// BookingError is the typed failure returned by the booking validator.
type BookingError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

func NewInvalidRequestError(msg string) error {
	return &BookingError{Kind: KindInvalidRequest, Message: msg}
}

func NewSpecialistNotFoundError(id string) error {
	return &BookingError{Kind: KindSpecialistNotFound, Message: fmt.Sprintf("specialist %s not found", id)}
}

func NewSkillMismatchError(matched, required int) error {
	return &BookingError{
		Kind:    KindSkillMismatch,
		Message: fmt.Sprintf("specialist covers %d of %d required skills, below the %.0f%% threshold", matched, required, SkillMatchThreshold*100),
	}
}

func NewScheduleConflictError() error {
	return &BookingError{Kind: KindScheduleConflict, Message: "time overlap with another interview"}
}

func NewStoreFailureError(err error) error {
	return &BookingError{Kind: KindStoreFailure, Message: "record store failure", Err: err}
}

// KindOf extracts the ErrorKind from err, defaulting to KindStoreFailure for
// anything that is not a BookingError.
func KindOf(err error) ErrorKind {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindStoreFailure
}
