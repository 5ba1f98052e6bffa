// Package response is the single place API responses are rendered. Every
// handler funnels successes and failures through here so the envelope shape
// and the error taxonomy stay consistent across components.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/Lah112/Hospital-Management-System-Final/pkg/logger"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// Envelope is the response body shape shared by every endpoint.
type Envelope map[string]interface{}

// WriteJSON writes a success envelope with the given status code. The payload
// map is merged into {"success": true}.
func WriteJSON(w http.ResponseWriter, log *logger.Logger, statusCode int, payload Envelope) {
	body := Envelope{"success": true}
	for k, v := range payload {
		body[k] = v
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Error("Failed to encode JSON response")
	}
}

// WriteError renders err as {"success": false, "message": ...} using the
// status mapped from the error taxonomy. Internal causes are logged, never
// exposed.
func WriteError(w http.ResponseWriter, log *logger.Logger, err error) {
	appErr := types.AsAppError(err)

	if appErr.Type == types.ErrorTypeInternal {
		log.WithError(appErr.Cause).Error(appErr.Message)
	} else {
		log.WithField("error_type", string(appErr.Type)).Debug(appErr.Message)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.HTTPStatus())
	if encErr := json.NewEncoder(w).Encode(Envelope{
		"success": false,
		"message": appErr.Message,
	}); encErr != nil {
		log.WithError(encErr).Error("Failed to encode error response")
	}
}
