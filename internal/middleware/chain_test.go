package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestMiddlewareChain_NormalRequest は
// RequestID -> Logging -> Recovery のチェーンで正常リクエストが通ることを検証する。
func TestMiddlewareChain_NormalRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	requestIDMW := NewRequestIDMiddleware()
	loggingMW := NewLoggingMiddleware(logger)
	recoveryMW := NewRecoveryMiddleware()

	handler := requestIDMW(loggingMW(recoveryMW(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusOK)
	}

	headerID := w.Result().Header.Get("X-Request-ID")
	if headerID == "" {
		t.Fatal("expected X-Request-ID header")
	}

	// アクセスログにレスポンスヘッダーと同じリクエストIDが含まれること
	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON log: %v", err)
	}
	if entry["request_id"] != headerID {
		t.Errorf("request_id = %q, want %q", entry["request_id"], headerID)
	}
}

// TestMiddlewareChain_PanicIsLoggedAsServerError は
// panicがRecoveryで500に変換され、外側のLoggingにも500として記録されることを検証する。
func TestMiddlewareChain_PanicIsLoggedAsServerError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Recoveryのログはテスト出力を汚すのでデフォルトも差し替える
	orig := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	defer slog.SetDefault(orig)

	requestIDMW := NewRequestIDMiddleware()
	loggingMW := NewLoggingMiddleware(logger)
	recoveryMW := NewRecoveryMiddleware()

	handler := requestIDMW(loggingMW(recoveryMW(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusInternalServerError)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header on panic response")
	}

	var body ErrorResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Error.Message != "internal error" {
		t.Errorf("error.message = %q, want %q", body.Error.Message, "internal error")
	}

	// アクセスログ側にも500が記録されること
	if !bytes.Contains(buf.Bytes(), []byte(`"status":500`)) {
		t.Error("expected access log entry with status 500")
	}
}
