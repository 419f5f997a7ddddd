package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	domainErrors "github.com/aidynbek/paysim/internal/domain/errors"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError translates engine errors into the uniform error envelope.
// Validation errors and invalid-request/invalid-status map to 400, missing
// resources to 404. Anything else is a defect, not a modeled state.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *domainErrors.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
			Code:    domainErrors.CodeValidationError,
			Message: validationErr.Message,
		}})
		return
	}

	var domainErr *domainErrors.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		if errors.Is(err, domainErrors.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, ErrorResponse{Error: ErrorBody{
			Code:    domainErr.Code,
			Message: domainErr.Message,
		}})
		return
	}

	log.Error().Err(err).Msg("unhandled error in handler")
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorBody{
		Code:    domainErrors.CodeInternal,
		Message: "internal server error",
	}})
}

// decodeRequired decodes a mandatory JSON body into dst. An absent,
// unparseable or empty ({}) body is an invalid request; a well-formed body
// failing the struct's validate tags is a validation error.
func decodeRequired(r *http.Request, dst any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return domainErrors.NewInvalidRequest("Request body is required")
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return domainErrors.NewInvalidRequest("Request body is required")
	}

	var probe map[string]any
	if err := json.Unmarshal(body, &probe); err != nil || len(probe) == 0 {
		return domainErrors.NewInvalidRequest("Request body is required")
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return domainErrors.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return validateStruct(dst)
}

// decodeOptional decodes a JSON body into dst when one is supplied.
// An absent or unparseable body leaves dst untouched so the engine applies
// its defaults, mirroring a gateway that tolerates empty POST bodies.
func decodeOptional(r *http.Request, dst any) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return
	}
	_ = json.Unmarshal(body, dst)
}

func validateStruct(dst any) error {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}
	if ve, ok := err.(validator.ValidationErrors); ok && len(ve) > 0 {
		return domainErrors.NewValidationError(jsonFieldName(ve[0].Field()), messageForTag(ve[0]))
	}
	return domainErrors.NewValidationError("body", err.Error())
}

func messageForTag(fe validator.FieldError) string {
	field := jsonFieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// jsonFieldName lowercases the struct field name to match the JSON key.
// Good enough for the single-word fields this API exposes.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return string(field[0]|0x20) + field[1:]
}
