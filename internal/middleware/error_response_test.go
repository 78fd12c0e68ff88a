package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestWriteErrorResponse_WritesUnifiedFormat は統一エラーフォーマットでレスポンスが書き込まれることを検証する。
func TestWriteErrorResponse_WritesUnifiedFormat(t *testing.T) {
	w := httptest.NewRecorder()

	WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")

	resp := w.Result()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}

	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/json")
	}

	var body ErrorResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}

	if body.Error.Message != "invalid request body" {
		t.Errorf("error.message = %q, want %q", body.Error.Message, "invalid request body")
	}
	if body.Error.Code != http.StatusBadRequest {
		t.Errorf("error.code = %d, want %d", body.Error.Code, http.StatusBadRequest)
	}
}

// TestWriteErrorResponse_CodeMirrorsStatus はcodeフィールドが常にHTTPステータスコードと一致することを検証する。
func TestWriteErrorResponse_CodeMirrorsStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
	}{
		{"BadRequest", http.StatusBadRequest, "email is required"},
		{"Unauthorized", http.StatusUnauthorized, "unauthorized"},
		{"Forbidden", http.StatusForbidden, "forbidden"},
		{"NotFound", http.StatusNotFound, "user"},
		{"Conflict", http.StatusConflict, "email already exists"},
		{"Internal", http.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			WriteErrorResponse(w, tt.statusCode, tt.message)

			resp := w.Result()
			if resp.StatusCode != tt.statusCode {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.statusCode)
			}

			var body ErrorResponseBody
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode: %v", err)
			}

			if body.Error.Code != tt.statusCode {
				t.Errorf("error.code = %d, want %d", body.Error.Code, tt.statusCode)
			}
			if body.Error.Message != tt.message {
				t.Errorf("error.message = %q, want %q", body.Error.Message, tt.message)
			}
		})
	}
}

// TestWriteInternalServerError_ReturnsGenericMessage は内部エラーが詳細を伏せた統一メッセージで返ることを検証する。
func TestWriteInternalServerError_ReturnsGenericMessage(t *testing.T) {
	w := httptest.NewRecorder()

	WriteInternalServerError(w)

	resp := w.Result()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusInternalServerError)
	}

	var body ErrorResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	if body.Error.Message != "internal error" {
		t.Errorf("error.message = %q, want %q", body.Error.Message, "internal error")
	}
	if body.Error.Code != http.StatusInternalServerError {
		t.Errorf("error.code = %d, want %d", body.Error.Code, http.StatusInternalServerError)
	}
}

// TestErrorResponseBody_WireShape はJSONのキー構造が契約どおりであることを検証する。
func TestErrorResponseBody_WireShape(t *testing.T) {
	w := httptest.NewRecorder()

	WriteErrorResponse(w, http.StatusNotFound, "user")

	var raw map[string]interface{}
	if err := json.NewDecoder(w.Result().Body).Decode(&raw); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	errObj, ok := raw["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected top-level 'error' object, got %v", raw)
	}

	if _, ok := errObj["message"].(string); !ok {
		t.Error("error.message should be a string")
	}
	if code, ok := errObj["code"].(float64); !ok || int(code) != http.StatusNotFound {
		t.Errorf("error.code = %v, want %d as number", errObj["code"], http.StatusNotFound)
	}
}
