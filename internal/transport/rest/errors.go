package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahsanali17/crowdfund-backend/internal/domain"
)

// ErrorResponse is the JSON body for every failed request.
type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError is the wire form of a field-level validation error.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func errorBody(code, message string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message}
}

// writeError maps domain errors to HTTP statuses with stable machine codes.
func writeError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		fields := make([]FieldError, len(vErr.Errors))
		for i, fe := range vErr.Errors {
			fields[i] = FieldError{Field: fe.Field, Message: fe.Message}
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "VALIDATION",
			Message: vErr.Error(),
			Fields:  fields,
		})
		return
	}

	status, code := http.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrValidation):
		status, code = http.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = http.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrNotCreator):
		status, code = http.StatusForbidden, "NOT_CREATOR"
	case errors.Is(err, domain.ErrEventNotFound):
		status, code = http.StatusNotFound, "EVENT_NOT_FOUND"
	case errors.Is(err, domain.ErrIndexOutOfRange):
		status, code = http.StatusNotFound, "MILESTONE_NOT_FOUND"
	case errors.Is(err, domain.ErrNotActive):
		status, code = http.StatusConflict, "EVENT_NOT_ACTIVE"
	case errors.Is(err, domain.ErrAlreadyClosed):
		status, code = http.StatusConflict, "EVENT_CLOSED"
	case errors.Is(err, domain.ErrGoalReached):
		status, code = http.StatusConflict, "GOAL_REACHED"
	case errors.Is(err, domain.ErrNotCompleted):
		status, code = http.StatusConflict, "EVENT_NOT_COMPLETED"
	case errors.Is(err, domain.ErrGoalNotReached):
		status, code = http.StatusConflict, "GOAL_NOT_REACHED"
	case errors.Is(err, domain.ErrNoContribution):
		status, code = http.StatusConflict, "NO_CONTRIBUTION"
	case errors.Is(err, domain.ErrNoMilestones):
		status, code = http.StatusConflict, "NO_MILESTONES"
	case errors.Is(err, domain.ErrMilestoneLimitExceeded):
		status, code = http.StatusUnprocessableEntity, "MILESTONE_LIMIT_EXCEEDED"
	case errors.Is(err, domain.ErrOperationInProgress):
		status, code = http.StatusConflict, "OPERATION_IN_PROGRESS"
	case errors.Is(err, domain.ErrTransferFailed):
		status, code = http.StatusBadGateway, "TRANSFER_FAILED"
	}

	c.JSON(status, errorBody(code, err.Error()))
}
