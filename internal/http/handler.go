package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/tripdesk/concierge/internal/domain"
	"github.com/tripdesk/concierge/internal/observability"
)

// Handler handles HTTP requests.
type Handler struct {
	concierge *domain.ConciergeService
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(concierge *domain.ConciergeService) *Handler {
	return &Handler{
		concierge: concierge,
	}
}

// errorResponse is the body for every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// HandleChat processes one concierge chat turn.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	var req domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	ctx = observability.WithUserID(ctx, req.UserID)
	logger := observability.FromContext(ctx)
	logger.Info("chat request received",
		zap.String("trip_id", req.TripID),
		zap.Int("history_turns", len(req.ConversationHistory)),
	)

	result, err := h.concierge.Handle(ctx, &req)
	if err != nil {
		logger.Error("chat request failed", zap.Error(err))
		writeError(w, statusFor(err), err)
		return
	}

	logger.Info("chat request succeeded",
		zap.Bool("has_structured_data", result.StructuredData != nil),
	)

	w.Header().Set("Content-Type", "application/json")
	if encodeErr := json.NewEncoder(w).Encode(result); encodeErr != nil {
		logger.Error("failed to encode response", zap.Error(encodeErr))
	}
}

// statusFor maps pipeline errors to HTTP status codes: input and
// configuration errors are the caller's fault, provider failures are
// upstream, everything else is unexpected.
func statusFor(err error) int {
	var providerErr *domain.ProviderError

	switch {
	case errors.Is(err, domain.ErrEmptyPrompt), errors.Is(err, domain.ErrNoCredentials):
		return http.StatusBadRequest
	case errors.As(err, &providerErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	}); err != nil {
		// Already written status, can't change it, just log.
		return
	}
}
