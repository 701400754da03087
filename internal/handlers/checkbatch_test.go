package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"markdown-spellcheck/internal/analyzer"
	"markdown-spellcheck/internal/batch"
	"markdown-spellcheck/internal/batch/mocks"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func postCheckBatch(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/check-batch", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestCheckBatchHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockService(ctrl)
	svc.EXPECT().
		ProcessBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req batch.Request) (*batch.Response, error) {
			if req.Text != "Helo world" {
				t.Errorf("Text = %q, want %q", req.Text, "Helo world")
			}
			if !req.EnableGrammar || !req.EnableStyle || !req.EnableContextualSuggestions {
				t.Error("omitted enable flags should default to true")
			}
			if req.EnableCodeSpellCheck {
				t.Error("omitted code spell check should default to false")
			}
			return &batch.Response{
				Results: analyzer.EmptyResult(),
				Statistics: batch.Statistics{
					Characters: 10,
					Chunks:     1,
				},
				BatchInfo: batch.BatchInfo{ChunkCount: 1, MaxConcurrency: 3},
			}, nil
		})

	w := postCheckBatch(t, NewCheckBatchHandler(svc), `{"text":"Helo world"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}
	var resp batch.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Statistics.Chunks != 1 {
		t.Errorf("Statistics.Chunks = %d, want 1", resp.Statistics.Chunks)
	}
	if resp.Results == nil || resp.Results.Spelling == nil {
		t.Error("results arrays must be present even when empty")
	}
}

func TestCheckBatchHandler_ExplicitFlags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockService(ctrl)
	svc.EXPECT().
		ProcessBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req batch.Request) (*batch.Response, error) {
			if req.EnableGrammar || req.EnableStyle {
				t.Error("explicit false flags must be honored")
			}
			if !req.EnableCodeSpellCheck {
				t.Error("explicit true code spell check must be honored")
			}
			if req.AuthToken != "tok123" {
				t.Errorf("AuthToken = %q, want body token %q", req.AuthToken, "tok123")
			}
			return &batch.Response{Results: analyzer.EmptyResult()}, nil
		})

	body := `{"text":"x","enableGrammar":false,"enableStyle":false,"enableCodeSpellCheck":true,"authToken":"tok123"}`
	w := postCheckBatch(t, NewCheckBatchHandler(svc), body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestCheckBatchHandler_EmptyText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockService(ctrl) // ProcessBatch must not be called

	w := postCheckBatch(t, NewCheckBatchHandler(svc), `{"text":""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error != "Text is required" {
		t.Errorf("error = %q, want %q", resp.Error, "Text is required")
	}
}

func TestCheckBatchHandler_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockService(ctrl)

	w := postCheckBatch(t, NewCheckBatchHandler(svc), `{not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestCheckBatchHandler_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockService(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/check-batch", nil)
	w := httptest.NewRecorder()
	NewCheckBatchHandler(svc).ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}

func TestCheckBatchHandler_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockService(ctrl)
	svc.EXPECT().
		ProcessBatch(gomock.Any(), gomock.Any()).
		Return(nil, &batch.ValidationError{Field: "text", Message: "too long"})

	w := postCheckBatch(t, NewCheckBatchHandler(svc), `{"text":"x"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestCheckBatchHandler_ExternalServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockService(ctrl)
	svc.EXPECT().
		ProcessBatch(gomock.Any(), gomock.Any()).
		Return(nil, batch.WrapError(batch.ErrExternalService, "spell service"))

	w := postCheckBatch(t, NewCheckBatchHandler(svc), `{"text":"x"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadGateway)
	}
}

func TestCheckBatchHandler_UnknownError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockService(ctrl)
	svc.EXPECT().
		ProcessBatch(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("boom"))

	w := postCheckBatch(t, NewCheckBatchHandler(svc), `{"text":"x"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestCheckBatchHandler_AuthToken(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		header    string
		wantToken string
	}{
		{
			name:      "body token",
			body:      `{"text":"x","authToken":"body-token"}`,
			wantToken: "body-token",
		},
		{
			name:      "header fallback",
			body:      `{"text":"x"}`,
			header:    "Bearer header-token",
			wantToken: "header-token",
		},
		{
			name:      "body token wins over header",
			body:      `{"text":"x","authToken":"body-token"}`,
			header:    "Bearer header-token",
			wantToken: "body-token",
		},
		{
			name:      "no token",
			body:      `{"text":"x"}`,
			wantToken: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mocks.NewMockService(ctrl)
			svc.EXPECT().
				ProcessBatch(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, req batch.Request) (*batch.Response, error) {
					if req.AuthToken != tt.wantToken {
						t.Errorf("AuthToken = %q, want %q", req.AuthToken, tt.wantToken)
					}
					return &batch.Response{Results: analyzer.EmptyResult()}, nil
				})

			req := httptest.NewRequest(http.MethodPost, "/check-batch", bytes.NewBufferString(tt.body))
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			NewCheckBatchHandler(svc).ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}
		})
	}
}
