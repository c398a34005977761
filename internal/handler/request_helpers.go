package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/logger"
	"github.com/osse101/CraftLedger_Go/internal/validation"
)

// maxBodyBytes bounds request bodies read by the JSON decoder
const maxBodyBytes = 1 << 20

// DecodeRequest decodes a JSON request body into req. On failure the 400
// response has already been written and the handler should return.
func DecodeRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}
	log.Debug(fmt.Sprintf("%s request decoded", actionName))
	return nil
}

// DecodeAndValidateRequest decodes the body and checks its `validate` tags.
// If this returns an error, the response has already been written.
//
// Example usage:
//
//	var req SetQuantityRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Set quantity"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	if err := DecodeRequest(r, w, req, actionName); err != nil {
		return err
	}

	return DecodeValidate(w, req)
}

// DecodeValidate checks the `validate` tags of an already decoded value.
// If this returns an error, the response has already been written.
func DecodeValidate(w http.ResponseWriter, v interface{}) error {
	if err := validation.Struct(v); err != nil {
		respondValidationError(w, err)
		return err
	}
	return nil
}

func respondValidationError(w http.ResponseWriter, err error) {
	var invalid *validation.InvalidError
	if !errors.As(err, &invalid) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Error:  ErrMsgInvalidRequestSummary,
		Fields: invalid.Fields,
	})
}

// pathID reads a positive integer URL parameter. On failure the 400 response
// has already been written.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil || !domain.ValidID(id) {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidID, name))
		return 0, false
	}
	return id, true
}
