package handlers

import (
	"net/http"

	"github.com/campusledger/fees.api/service"
	"github.com/campusledger/fees.api/utils"
	"github.com/companieshouse/chs.go/log"
)

// statusForResponseType maps a service response type onto the HTTP status returned to the client
func statusForResponseType(responseType service.ResponseType) int {
	switch responseType {
	case service.InvalidData:
		return http.StatusBadRequest
	case service.Forbidden:
		return http.StatusForbidden
	case service.NotFound:
		return http.StatusNotFound
	case service.Conflict:
		return http.StatusConflict
	case service.AmountMismatch, service.AttemptNotFound:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError logs a failed service call and writes its message to the client.
// Internal errors are not echoed back.
func writeServiceError(w http.ResponseWriter, req *http.Request, message string, responseType service.ResponseType, err error) {
	log.ErrorR(req, err, log.Data{"service_response_type": responseType.String()})

	status := statusForResponseType(responseType)
	if status != http.StatusInternalServerError {
		message = err.Error()
	}
	utils.WriteMessage(w, req, message, status)
}
