package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Acon1tum/hris-test-sub000/internal"
	"github.com/Acon1tum/hris-test-sub000/pkg/logger"
)

// BaseHandler provides the envelope writers shared by every feature handler.
type BaseHandler struct {
	Logger *slog.Logger
}

func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.L()
	}
	return &BaseHandler{Logger: lg}
}

func (h *BaseHandler) writeEnvelope(w http.ResponseWriter, status int, env internal.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		h.Logger.Error("failed to encode response", "error", err)
	}
}

// WriteData writes a success envelope with a data payload.
func (h *BaseHandler) WriteData(w http.ResponseWriter, status int, data interface{}) {
	h.writeEnvelope(w, status, internal.Envelope{Success: true, Data: data})
}

// WriteMessage writes a success envelope with a message and optional payload.
func (h *BaseHandler) WriteMessage(w http.ResponseWriter, status int, message string, data interface{}) {
	h.writeEnvelope(w, status, internal.Envelope{Success: true, Message: message, Data: data})
}

// WriteError writes a failure envelope with a single error string.
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.writeEnvelope(w, status, internal.Envelope{Success: false, Error: message})
}

// HandleServiceError is the single translation point from service errors to
// HTTP responses. Anything that is not an AppError is logged and collapsed to
// a generic message so internals never leak to the client.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		if appErr.Cause != nil {
			h.Logger.Error("service error", "code", appErr.Code, "error", appErr.Cause)
		}
		env := internal.Envelope{Success: false}
		if appErr.Type == internal.ErrorTypeValidation && !appErr.Fields.Empty() {
			env.Message = appErr.Message
			env.Errors = appErr.Fields
		} else {
			env.Error = appErr.Message
		}
		h.writeEnvelope(w, appErr.StatusCode, env)
		return
	}

	h.Logger.Error("unexpected error", "error", err)
	h.WriteError(w, http.StatusInternalServerError, "internal server error")
}

// ExtractTokenFromHeader extracts a Bearer token from the Authorization header.
func (h *BaseHandler) ExtractTokenFromHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ""
	}
	return authHeader[7:]
}
