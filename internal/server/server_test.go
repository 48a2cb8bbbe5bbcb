package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agrobot/internal/bot"
	"agrobot/internal/reply"

	"go.uber.org/zap"
)

type fakePipeline struct {
	answer reply.Bilingual
	status int
	last   bot.Message
	calls  int
}

func (f *fakePipeline) Handle(ctx context.Context, msg bot.Message) (reply.Bilingual, int) {
	f.calls++
	f.last = msg
	return f.answer, f.status
}

func newTestServer(p Pipeline) *Server {
	return New(p, zap.NewNop(), 0)
}

func doChat(t *testing.T, h http.Handler, method, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/api/chat", nil)
	} else {
		req = httptest.NewRequest(method, "/api/chat", strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeReply(t *testing.T, rec *httptest.ResponseRecorder) reply.Bilingual {
	t.Helper()
	var b reply.Bilingual
	if err := json.Unmarshal(rec.Body.Bytes(), &b); err != nil {
		t.Fatalf("response is not a reply envelope: %v\n%s", err, rec.Body.String())
	}
	return b
}

func TestChatPostForwardsToPipeline(t *testing.T) {
	p := &fakePipeline{answer: reply.Greeting, status: http.StatusOK}
	h := newTestServer(p).Handler()

	rec := doChat(t, h, http.MethodPost, `{"message": "hi", "coords": {"lat": 28.6, "lon": 77.2}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	got := decodeReply(t, rec)
	if got != reply.Greeting {
		t.Fatalf("got %+v, want greeting envelope", got)
	}
	if p.last.Text != "hi" {
		t.Errorf("pipeline got text %q", p.last.Text)
	}
	if p.last.Coords == nil || p.last.Coords.Lat != 28.6 || p.last.Coords.Lon != 77.2 {
		t.Errorf("pipeline got coords %+v", p.last.Coords)
	}
}

func TestChatPostNullCoords(t *testing.T) {
	p := &fakePipeline{answer: reply.LocationRequest, status: http.StatusOK}
	h := newTestServer(p).Handler()

	rec := doChat(t, h, http.MethodPost, `{"message": "weather", "coords": null}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if p.last.Coords != nil {
		t.Errorf("expected nil coords, got %+v", p.last.Coords)
	}
}

func TestChatMalformedJSON(t *testing.T) {
	p := &fakePipeline{}
	h := newTestServer(p).Handler()

	rec := doChat(t, h, http.MethodPost, `{"message": `)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	got := decodeReply(t, rec)
	if got != reply.InvalidJSON {
		t.Fatalf("got %+v, want fixed invalid-format reply", got)
	}
	if p.calls != 0 {
		t.Fatal("pipeline must not run for malformed input")
	}
}

func TestChatEmptyMessage(t *testing.T) {
	p := &fakePipeline{}
	h := newTestServer(p).Handler()

	for _, body := range []string{`{"message": ""}`, `{"message": "   "}`, `{}`} {
		rec := doChat(t, h, http.MethodPost, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
		got := decodeReply(t, rec)
		if got != reply.EmptyMessage {
			t.Errorf("body %s: got %+v, want fixed empty-message reply", body, got)
		}
	}
	if p.calls != 0 {
		t.Fatal("pipeline must not run for empty messages")
	}
}

func TestChatMethodNotAllowed(t *testing.T) {
	h := newTestServer(&fakePipeline{}).Handler()

	for _, method := range []string{http.MethodPut, http.MethodDelete, http.MethodPatch} {
		rec := doChat(t, h, method, "")
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s: status = %d, want 405", method, rec.Code)
		}
	}
}

func TestChatGetPlaceholder(t *testing.T) {
	h := newTestServer(&fakePipeline{}).Handler()

	rec := doChat(t, h, http.MethodGet, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Use POST") {
		t.Fatalf("unexpected placeholder body: %s", rec.Body.String())
	}
}

func TestChatPipelineStatusPropagates(t *testing.T) {
	p := &fakePipeline{answer: reply.GenerativeFailure, status: http.StatusInternalServerError}
	h := newTestServer(p).Handler()

	rec := doChat(t, h, http.MethodPost, `{"message": "anything"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	got := decodeReply(t, rec)
	if got != reply.GenerativeFailure {
		t.Fatalf("got %+v, want fixed apology reply", got)
	}
}

func TestStatusEndpoint(t *testing.T) {
	h := newTestServer(&fakePipeline{}).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "online") {
		t.Fatalf("unexpected status body: %s", rec.Body.String())
	}
}
