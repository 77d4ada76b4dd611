package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/luxepet-health/clinic-api/internal/httperr"
)

// writeError mapea el tipo de error de negocio al status HTTP. Todo lo
// que no sea un error de negocio se registra completo y al cliente solo
// le llega un mensaje genérico.
func writeError(c *gin.Context, err error, internalCode, internalMessage string) {
	if be, ok := httperr.AsBusiness(err); ok {
		switch be.Kind {
		case httperr.KindValidation:
			httperr.BadRequest(c, be.Code, be.Message)
		case httperr.KindNotFound:
			httperr.NotFound(c, be.Code, be.Message)
		case httperr.KindConflict:
			httperr.Conflict(c, be.Code, be.Message)
		default:
			httperr.Internal(c, internalCode, internalMessage)
		}
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg(internalCode)
	httperr.Internal(c, internalCode, internalMessage)
}
