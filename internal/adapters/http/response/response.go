package response

import (
	"encoding/json"
	"net/http"

	"gateguard/internal/platform/validator"
)

// ValidationErrorResponse lists field errors in declaration order. Code is
// null unless validation stopped on the first error.
type ValidationErrorResponse struct {
	Errors []validator.FieldError `json:"errors"`
	Code   *string                `json:"code"`
}

type DataResponse struct {
	Data interface{} `json:"data"`
}

// RespondJSON encodes before writing the header so an unencodable payload
// still turns into a clean 500.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal server error"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func RespondError(w http.ResponseWriter, status int, err error) {
	RespondJSON(w, status, map[string]string{"error": err.Error()})
}

// NewValidationErrorResponse shapes ve for the wire. A field-level error is
// reported under the empty field name.
func NewValidationErrorResponse(ve *validator.ValidationError) ValidationErrorResponse {
	fields := ve.Fields()
	if fields == nil {
		fields = []validator.FieldError{{Message: ve.Message}}
	}

	var code *string
	if ve.Code != "" {
		code = &ve.Code
	}

	return ValidationErrorResponse{Errors: fields, Code: code}
}

func RespondValidationError(w http.ResponseWriter, status int, ve *validator.ValidationError) {
	RespondJSON(w, status, NewValidationErrorResponse(ve))
}
