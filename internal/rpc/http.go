package rpc

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/CraftLedger_Go/internal/handler"
	"github.com/osse101/CraftLedger_Go/internal/logger"
)

// Request is one call of the contract
type Request struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// Response carries either a result or an error message
type Response struct {
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ServeHTTP handles POST /api/v1/rpc
// @Summary Call contract
// @Description Invokes one method by name with a JSON payload. Writes return true on success.
// @Tags rpc
// @Accept json
// @Produce json
// @Param request body Request true "Call"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/rpc [post]
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil || req.Method == "" {
		writeResponse(w, http.StatusBadRequest, Response{Error: ErrMsgInvalidRequest})
		return
	}

	result, err := d.Call(r.Context(), req.Method, req.Params)
	if err != nil {
		status, msg := statusFor(err)
		if status >= http.StatusInternalServerError {
			log.Error(LogMsgCallFailed, "method", req.Method, "error", err)
		} else {
			log.Warn(LogMsgCallRejected, "method", req.Method, "error", err, "status", status)
		}
		writeResponse(w, status, Response{Error: msg})
		return
	}

	writeResponse(w, http.StatusOK, Response{Result: result})
}

func statusFor(err error) (int, string) {
	if errors.Is(err, ErrUnknownMethod) {
		return http.StatusNotFound, err.Error()
	}
	return handler.MapServiceError(err)
}

func writeResponse(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Failed to encode RPC response", "error", err)
	}
}
