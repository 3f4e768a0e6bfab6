package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// fakeTokenizer splits on whitespace and upper-cases each token.
type fakeTokenizer struct {
	err error
}

func (f *fakeTokenizer) Text2Tokens(line string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return strings.Fields(strings.ToUpper(line)), nil
}

func (f *fakeTokenizer) Tokens2Text(tokens []string) string {
	return strings.Join(tokens, "")
}

func newTestHandler(t *testing.T, tok *fakeTokenizer, optFns ...Option) http.Handler {
	t.Helper()
	quiet := WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	return NewHandler(tok, append([]Option{quiet}, optFns...)...)
}

func postJSON(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/tokenize", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	h := newTestHandler(t, &fakeTokenizer{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestHandleBackends(t *testing.T) {
	h := newTestHandler(t, &fakeTokenizer{})
	req := httptest.NewRequest(http.MethodGet, "/backends", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var keys []string
	if err := json.Unmarshal(rec.Body.Bytes(), &keys); err != nil {
		t.Fatal(err)
	}
	if len(keys) == 0 {
		t.Error("expected at least one backend key")
	}
}

func TestHandleTokenize(t *testing.T) {
	h := newTestHandler(t, &fakeTokenizer{})
	rec := postJSON(t, h, `{"text":"hello world\nsecond line"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body)
	}
	var resp struct {
		Lines []struct {
			Text   string   `json:"text"`
			Tokens []string `json:"tokens"`
		} `json:"lines"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(resp.Lines))
	}
	if got := strings.Join(resp.Lines[0].Tokens, " "); got != "HELLO WORLD" {
		t.Errorf("first line tokens = %q, want %q", got, "HELLO WORLD")
	}
}

func TestHandleTokens2Text(t *testing.T) {
	h := newTestHandler(t, &fakeTokenizer{})
	rec := postJSON(t, h, `{"tokens":["a","b","c"]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Text != "abc" {
		t.Errorf("text = %q, want %q", resp.Text, "abc")
	}
}

func TestHandleTokenizeErrors(t *testing.T) {
	tests := []struct {
		name       string
		tok        *fakeTokenizer
		method     string
		body       string
		optFns     []Option
		wantStatus int
	}{
		{
			name:       "method not allowed",
			tok:        &fakeTokenizer{},
			method:     http.MethodGet,
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "invalid json",
			tok:        &fakeTokenizer{},
			body:       `{"text":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing text",
			tok:        &fakeTokenizer{},
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "oversized text",
			tok:        &fakeTokenizer{},
			body:       `{"text":"aaaaaaaaaa"}`,
			optFns:     []Option{WithMaxTextBytes(4)},
			wantStatus: http.StatusRequestEntityTooLarge,
		},
		{
			name:       "backend failure surfaces as 500",
			tok:        &fakeTokenizer{err: errors.New("espeak exploded")},
			body:       `{"text":"hello"}`,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, tt.tok, tt.optFns...)
			method := tt.method
			if method == "" {
				method = http.MethodPost
			}
			req := httptest.NewRequest(method, "/tokenize", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{"DEBUG", slog.LevelDebug, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLogLevel(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
