package transport

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"

	errors "github.com/santhosh9133/sterline-hr/internal"
	"github.com/santhosh9133/sterline-hr/pkg/logger"
)

// Envelope is the JSON shape every endpoint answers with.
type Envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Errors     []string    `json:"errors,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func NewPagination(page, limit int, total int64) *Pagination {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return &Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// BaseHandler provides the response helpers shared by all HTTP handlers.
type BaseHandler struct {
	Logger *slog.Logger
}

func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// WriteJSON writes an arbitrary JSON payload.
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteData answers success with a data payload.
func (h *BaseHandler) WriteData(w http.ResponseWriter, status int, data interface{}) {
	h.WriteJSON(w, status, Envelope{Success: true, Data: data})
}

// WriteMessage answers success with a message only.
func (h *BaseHandler) WriteMessage(w http.ResponseWriter, status int, message string) {
	h.WriteJSON(w, status, Envelope{Success: true, Message: message})
}

// WriteMessageData answers success with both message and data.
func (h *BaseHandler) WriteMessageData(w http.ResponseWriter, status int, message string, data interface{}) {
	h.WriteJSON(w, status, Envelope{Success: true, Message: message, Data: data})
}

// WritePage answers success with a data list and pagination block.
func (h *BaseHandler) WritePage(w http.ResponseWriter, data interface{}, p *Pagination) {
	h.WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, Pagination: p})
}

// WriteError answers failure with a message.
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.Logger.Warn("http error", "status", status, "message", message)
	h.WriteJSON(w, status, Envelope{Success: false, Message: message})
}

// WriteErrorList answers failure with field-level messages attached.
func (h *BaseHandler) WriteErrorList(w http.ResponseWriter, status int, message string, errs []string) {
	h.Logger.Warn("http error", "status", status, "message", message, "errors", errs)
	h.WriteJSON(w, status, Envelope{Success: false, Message: message, Errors: errs})
}

// WriteAppError maps a service error onto the envelope. Unexpected errors
// become 500 with the underlying error text attached for diagnostics.
func (h *BaseHandler) WriteAppError(w http.ResponseWriter, err error) {
	if appErr, ok := errors.IsAppError(err); ok {
		if msgs := appErr.FieldMessages(); msgs != nil {
			h.WriteErrorList(w, appErr.StatusCode, appErr.Message, msgs)
			return
		}
		if appErr.StatusCode == http.StatusInternalServerError && appErr.Cause != nil {
			h.Logger.Error("internal error", "message", appErr.Message, "cause", appErr.Cause)
			h.WriteErrorList(w, appErr.StatusCode, appErr.Message, []string{appErr.Cause.Error()})
			return
		}
		h.WriteError(w, appErr.StatusCode, appErr.Message)
		return
	}

	h.Logger.Error("unexpected error", "error", err)
	h.WriteErrorList(w, http.StatusInternalServerError, "Internal server error", []string{err.Error()})
}

// ExtractTokenFromHeader extracts a Bearer token from the Authorization header.
func (h *BaseHandler) ExtractTokenFromHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ""
	}

	return authHeader[7:]
}
