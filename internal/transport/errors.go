package transport

import (
	"net/http"

	"github.com/goodnatureofminers/passblock-backend/internal/model"
)

type errorBody struct {
	Kind    model.ErrorKind         `json:"kind"`
	Message string                  `json:"message"`
	Result  *model.SubmissionResult `json:"result,omitempty"`
}

// httpStatus maps an error kind to the status code clients see.
func httpStatus(kind model.ErrorKind) int {
	switch kind {
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindBlockNotActive, model.KindDuplicateSubmission, model.KindAlreadySolved:
		return http.StatusConflict
	case model.KindInsufficientBudget:
		return http.StatusTooManyRequests
	case model.KindForbidden:
		return http.StatusForbidden
	case model.KindInvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
