package httperr

import (
	"errors"
	"net/http"
	"strings"
)

// Business codes raised by the use cases outside the booking error taxonomy.
const (
	CodeAppointmentNotFound = "appointment_not_found"
	CodeSalonNotFound       = "salon_not_found"
	CodePlanLimitReached    = "plan_limit_reached"
	CodeUnknownPlan         = "unknown_plan"
)

var businessMessages = map[string]string{
	CodeAppointmentNotFound: "Agendamento não encontrado.",
	CodeSalonNotFound:       "Salão não encontrado.",
	CodePlanLimitReached:    "Limite de agendamentos do plano atingido.",
	CodeUnknownPlan:         "Plano desconhecido.",
}

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

// Status is 404 for *_not_found codes, 409 when the salon state forbids the
// operation and 400 otherwise.
func (e BusinessError) Status() int {
	switch {
	case strings.HasSuffix(e.Code, "_not_found"):
		return http.StatusNotFound
	case e.Code == CodePlanLimitReached:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func (e BusinessError) Message() string {
	if msg, ok := businessMessages[e.Code]; ok {
		return msg
	}
	return "Operação não permitida."
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	return errors.As(err, &be) && be.Code == code
}
