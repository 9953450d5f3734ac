package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
)

var validationMessages = map[domain.ValidationReason]string{
	domain.ReasonMissingField:       "Campo obrigatório ausente ou inválido.",
	domain.ReasonSlotUnavailable:    "Horário indisponível.",
	domain.ReasonSalonClosed:        "Salão fechado para agendamentos.",
	domain.ReasonServiceUnavailable: "Serviço indisponível.",
	domain.ReasonInvalidSchedule:    "Horário de funcionamento inválido.",
}

// FromError writes the response for an error returned by a use case.
func FromError(c *gin.Context, err error) {
	var (
		ve *domain.ValidationError
		bc *domain.BookingConflict
		it *domain.InvalidTransitionError
		be BusinessError
	)

	switch {
	case errors.As(err, &ve):
		msg := validationMessages[ve.Reason]
		if msg == "" {
			msg = "Dados inválidos."
		}
		Write(c, http.StatusUnprocessableEntity, string(ve.Reason), msg)

	case errors.As(err, &bc):
		Write(c, http.StatusConflict, string(bc.Reason), "Horário já reservado. Escolha outro horário.")

	case errors.As(err, &it):
		Write(c, http.StatusConflict, "invalid_transition", "Mudança de status não permitida.")

	case errors.As(err, &be):
		Write(c, be.Status(), be.Code, be.Message())

	default:
		log.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("unhandled error")
		Write(c, http.StatusInternalServerError, "internal_error", "Erro interno. Tente novamente.")
	}
}
