package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"markdown-spellcheck/internal/batch"
	"markdown-spellcheck/internal/contextutil"
)

// CheckBatchHandler handles HTTP requests for batch document checks.
type CheckBatchHandler struct {
	batchService batch.Service
}

// NewCheckBatchHandler creates a new CheckBatchHandler.
func NewCheckBatchHandler(batchService batch.Service) *CheckBatchHandler {
	return &CheckBatchHandler{
		batchService: batchService,
	}
}

// CheckBatchRequest represents the HTTP request payload for a batch check.
// The enable flags are pointers so an omitted field can fall back to its
// default instead of reading as false.
type CheckBatchRequest struct {
	Text                        string   `json:"text"`
	ChunkSize                   int      `json:"chunkSize,omitempty"`
	CustomWords                 []string `json:"customWords,omitempty"`
	EnableGrammar               *bool    `json:"enableGrammar,omitempty"`
	EnableStyle                 *bool    `json:"enableStyle,omitempty"`
	EnableContextualSuggestions *bool    `json:"enableContextualSuggestions,omitempty"`
	EnableCodeSpellCheck        *bool    `json:"enableCodeSpellCheck,omitempty"`
	StyleGuide                  string   `json:"styleGuide,omitempty"`
	Language                    string   `json:"language,omitempty"`
	AuthToken                   string   `json:"authToken,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ServeHTTP handles HTTP requests for batch document checks.
func (h *CheckBatchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req CheckBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Text == "" {
		h.writeError(w, http.StatusBadRequest, "Text is required")
		return
	}

	// The body token drives external custom-word lookup; a bearer token in
	// the Authorization header serves as fallback when the body omits it.
	authToken := req.AuthToken
	if authToken == "" {
		authToken = bearerToken(r)
	}

	svcReq := batch.Request{
		Text:                        req.Text,
		ChunkSize:                   req.ChunkSize,
		CustomWords:                 req.CustomWords,
		EnableGrammar:               boolOrDefault(req.EnableGrammar, true),
		EnableStyle:                 boolOrDefault(req.EnableStyle, true),
		EnableContextualSuggestions: boolOrDefault(req.EnableContextualSuggestions, true),
		EnableCodeSpellCheck:        boolOrDefault(req.EnableCodeSpellCheck, false),
		StyleGuide:                  req.StyleGuide,
		Language:                    req.Language,
		AuthToken:                   authToken,
	}

	resp, err := h.batchService.ProcessBatch(ctx, svcReq)
	if err != nil {
		h.handleServiceError(w, ctx, err, "Failed to process batch check")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// handleServiceError maps service errors to appropriate HTTP status codes and responses.
func (h *CheckBatchHandler) handleServiceError(w http.ResponseWriter, ctx context.Context, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "service error", "error", err)

	var validationErr *batch.ValidationError
	if errors.As(err, &validationErr) {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("Validation error: %s", validationErr.Error()))
		return
	}

	if errors.Is(err, batch.ErrInvalidInput) {
		h.writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if errors.Is(err, batch.ErrExternalService) {
		h.writeError(w, http.StatusBadGateway, "External service error")
		return
	}

	h.writeError(w, http.StatusInternalServerError, defaultMsg)
}

// writeError writes an error response.
func (h *CheckBatchHandler) writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// bearerToken extracts the bearer token from the Authorization header, or
// returns an empty string when absent.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if strings.HasPrefix(auth, prefix) {
		return strings.TrimSpace(auth[len(prefix):])
	}
	return ""
}
