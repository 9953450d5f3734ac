package appointment

import (
	"errors"
	"fmt"
)

// Repository sentinels. Use cases translate them into the typed errors below.
var (
	ErrNotFound    = errors.New("not found")
	ErrSlotTaken   = errors.New("slot already taken")
	ErrStaleStatus = errors.New("appointment status changed concurrently")
)

type ValidationReason string

const (
	ReasonMissingField       ValidationReason = "missing_field"
	ReasonSlotUnavailable    ValidationReason = "slot_unavailable"
	ReasonSalonClosed        ValidationReason = "salon_closed"
	ReasonServiceUnavailable ValidationReason = "service_unavailable"
	ReasonInvalidSchedule    ValidationReason = "invalid_schedule"
)

// ValidationError is a caller-correctable rejection.
type ValidationError struct {
	Reason ValidationReason
	Field  string
	Err    error
}

func (e *ValidationError) Error() string {
	msg := string(e.Reason)
	if e.Field != "" {
		msg += ": " + e.Field
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func Invalid(reason ValidationReason, field string) error {
	return &ValidationError{Reason: reason, Field: field}
}

type ConflictReason string

const ReasonAlreadyTaken ConflictReason = "already_taken"

// BookingConflict means another booking won the slot.
type BookingConflict struct {
	Reason ConflictReason
	Date   string
	Time   string
}

func (e *BookingConflict) Error() string {
	return fmt.Sprintf("booking conflict (%s) at %s %s", e.Reason, e.Date, e.Time)
}

type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition %s -> %s", e.From, e.To)
}

func IsValidation(err error, reason ValidationReason) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Reason == reason
}

func IsConflict(err error) bool {
	var bc *BookingConflict
	return errors.As(err, &bc)
}

func IsInvalidTransition(err error) bool {
	var it *InvalidTransitionError
	return errors.As(err, &it)
}
