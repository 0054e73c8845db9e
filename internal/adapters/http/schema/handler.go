package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gateguard/internal/adapters/http/response"
	"gateguard/internal/core/domain/definition"
	httpErrors "gateguard/internal/platform/http"
	"gateguard/internal/platform/logger"
	"gateguard/internal/platform/validator"
)

type Handler struct {
	manager Manager
}

func NewHandler(manager Manager) *Handler {
	return &Handler{
		manager: manager,
	}
}

func (h *Handler) mapDomainError(err error) error {
	switch {
	case errors.Is(err, definition.ErrDefinitionNotFound):
		return httpErrors.NewNotFound("Schema not found", err)
	case errors.Is(err, definition.ErrInvalidDefinition):
		return httpErrors.NewBadRequest(err.Error(), err)
	default:
		var alreadyExistsErr *definition.AlreadyExistsError
		if errors.As(err, &alreadyExistsErr) {
			return httpErrors.NewConflict("Schema already exists", err)
		}
		return err
	}
}

func (h *Handler) ListSchemas(w http.ResponseWriter, r *http.Request) error {
	defs, err := h.manager.ListDefinitions(r.Context())
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, defs)
	return nil
}

func (h *Handler) GetSchema(w http.ResponseWriter, r *http.Request) error {
	def, err := h.manager.GetDefinition(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, def)
	return nil
}

func (h *Handler) CreateSchema(w http.ResponseWriter, r *http.Request) error {
	def, err := decodeDefinition(r)
	if err != nil {
		return err
	}

	created, err := h.manager.RegisterDefinition(r.Context(), def)
	if err != nil {
		return h.respondDefinitionError(w, r, err)
	}

	response.RespondJSON(w, http.StatusCreated, created)
	return nil
}

// ReplaceSchema takes the schema name from the path. A body naming a
// different schema is rejected.
func (h *Handler) ReplaceSchema(w http.ResponseWriter, r *http.Request) error {
	name := chi.URLParam(r, "name")

	def, err := decodeDefinition(r)
	if err != nil {
		return err
	}
	if def.Name == "" {
		def.Name = name
	}
	if def.Name != name {
		return httpErrors.NewBadRequest(fmt.Sprintf("Schema name %q does not match path %q", def.Name, name), nil)
	}

	replaced, err := h.manager.ReplaceDefinition(r.Context(), def)
	if err != nil {
		return h.respondDefinitionError(w, r, err)
	}

	response.RespondJSON(w, http.StatusOK, replaced)
	return nil
}

func (h *Handler) DeleteSchema(w http.ResponseWriter, r *http.Request) error {
	if err := h.manager.DeleteDefinition(r.Context(), chi.URLParam(r, "name")); err != nil {
		return h.mapDomainError(err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// Validate runs the request body through the named schema. The optional
// stop_on_error query parameter overrides the schema's own setting.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) error {
	contextLogger := logger.FromContext(r.Context())
	name := chi.URLParam(r, "name")

	var stopOnError *bool
	if raw := r.URL.Query().Get("stop_on_error"); raw != "" {
		stop, err := strconv.ParseBool(raw)
		if err != nil {
			return httpErrors.NewBadRequest("stop_on_error must be a boolean", err)
		}
		stopOnError = &stop
	}

	var payload map[string]any
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return decodeError(err, "request body must be a JSON object")
	}
	if payload == nil {
		return httpErrors.NewBadRequest("request body must be a JSON object", nil)
	}

	data, err := h.manager.Validate(r.Context(), name, payload, stopOnError)
	if err != nil {
		var validationErr *validator.ValidationError
		if errors.As(err, &validationErr) {
			contextLogger.Debug("Payload failed validation", logger.String("schema", name), logger.Int("fields", len(validationErr.Fields())))
		}
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, response.DataResponse{Data: data})
	return nil
}

// respondDefinitionError reports struct tag violations field by field and
// leaves everything else to mapDomainError.
func (h *Handler) respondDefinitionError(w http.ResponseWriter, r *http.Request, err error) error {
	var validationErr *validator.ValidationError
	if errors.Is(err, definition.ErrInvalidDefinition) && errors.As(err, &validationErr) {
		logger.FromContext(r.Context()).Warn("Schema definition rejected", logger.Error(err))
		response.RespondValidationError(w, http.StatusBadRequest, validationErr)
		return nil
	}
	return h.mapDomainError(err)
}

func decodeDefinition(r *http.Request) (*definition.Definition, error) {
	var def definition.Definition
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&def); err != nil {
		logger.FromContext(r.Context()).Warn("Failed to decode schema definition", logger.Error(err))
		return nil, decodeError(err, "invalid schema definition payload")
	}
	return &def, nil
}

func decodeError(err error, message string) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return httpErrors.NewPayloadTooLarge("Request body too large", err)
	}
	return httpErrors.NewBadRequest(message, err)
}
