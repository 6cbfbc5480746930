package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/captain-burah/estateflow-pro/internal/domain"
	"github.com/captain-burah/estateflow-pro/internal/logger"
	"github.com/captain-burah/estateflow-pro/internal/middleware"
)

// respondError maps domain errors onto HTTP status codes: missing records are
// 404, bad payloads 400, disallowed workflow transitions 409, and blocked
// publishes 422 with the per-portal failure detail. Anything else is a 500
// with the detail kept out of the response body.
func respondError(c *gin.Context, err error) {
	var nf *domain.NotFoundError
	var verr *domain.ValidationError
	var iserr *domain.InvalidStateError
	var prerr *domain.PortalReadinessError

	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
	case errors.As(err, &verr):
		body := gin.H{"error": verr.Error()}
		if verr.Field != "" {
			body["field"] = verr.Field
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.As(err, &iserr):
		c.JSON(http.StatusConflict, gin.H{"error": iserr.Error()})
	case errors.As(err, &prerr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    "property is not ready for publishing",
			"failures": prerr.Failures,
		})
	default:
		logger.ErrorContext(c.Request.Context(), "request failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
