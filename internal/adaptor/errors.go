package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"teide-booking/internal/usecase"
	"teide-booking/pkg/utils"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// handleServiceError maps usecase errors onto HTTP responses. Internal
// details are logged, never returned.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var verr *usecase.ValidationError

	switch {
	case errors.As(err, &verr):
		log.Warn(operation+" validation failed",
			zap.Any("errors", verr.Fields),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", verr.Fields)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, notFoundMessage(err))

	case errors.Is(err, usecase.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized",
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, "Invalid credentials")

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// notFoundMessage turns "not found: booking X" into "booking X not found".
func notFoundMessage(err error) string {
	msg := err.Error()
	subject := strings.TrimPrefix(msg, usecase.ErrNotFound.Error()+": ")
	if subject == msg || subject == "" {
		return "Not found"
	}
	return subject + " not found"
}

// decodeJSON reads a JSON body into dst. Type mismatches are reported per
// field so clients see the same error shape as validation failures.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		utils.ResponseBadRequest(w, "Validation failed", map[string]string{
			typeErr.Field: "Must be a " + jsonTypeName(typeErr.Type.Kind().String()),
		})
		return false
	}

	utils.ResponseBadRequest(w, "Invalid request body", nil)
	return false
}

func jsonTypeName(kind string) string {
	switch kind {
	case "float32", "float64", "int", "int32", "int64":
		return "number"
	case "slice", "array":
		return "list"
	case "bool":
		return "boolean"
	default:
		return kind
	}
}
