package backoffice

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/drafts"
	"github.com/light-bringer/backoffice-service/internal/pkg/logging"
)

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// statusForError converts domain errors to HTTP status codes.
func statusForError(err error) int {
	var verr *drafts.ValidationError

	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrNotificationNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict

	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidCostPrice),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidThreshold),
		errors.Is(err, domain.ErrEmptySale),
		errors.Is(err, domain.ErrInvalidSaleQuantity),
		errors.Is(err, domain.ErrInvalidUnitPrice),
		errors.Is(err, domain.ErrMissingPaymentMethod),
		errors.Is(err, domain.ErrInvalidPhone),
		errors.Is(err, domain.ErrEmptyUserName),
		errors.Is(err, domain.ErrEmptyEmail),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// writeError replies with the mapped status. Unmapped errors are logged and
// their message is not exposed.
func (h *Handler) writeError(c *gin.Context, funcName string, err error) {
	code := statusForError(err)
	if code == http.StatusInternalServerError {
		logging.LogError(h.logger, "transport.http", funcName, c.FullPath(), nil, err)
		c.JSON(code, errorResponse{Error: "internal server error"})
		return
	}

	resp := errorResponse{Error: err.Error()}
	var verr *drafts.ValidationError
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
	}
	c.JSON(code, resp)
}

// badRequest replies 400 for malformed input that never reached a usecase.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}
