package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("lat") != "28.6" || q.Get("lon") != "77.2" {
			t.Errorf("unexpected coordinates: lat=%s lon=%s", q.Get("lat"), q.Get("lon"))
		}
		if q.Get("units") != "metric" {
			t.Errorf("expected metric units, got %s", q.Get("units"))
		}
		if q.Get("appid") != "test-key" {
			t.Errorf("expected api key in query, got %s", q.Get("appid"))
		}
		w.Write([]byte(`{"name":"Delhi","weather":[{"description":"clear sky"}],"main":{"temp":30}}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	sum, err := c.Current(context.Background(), 28.6, 77.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.City != "Delhi" || sum.Description != "clear sky" || sum.TempC != 30 {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	b := sum.Bilingual()
	for _, want := range []string{"Delhi", "clear sky", "30"} {
		if !strings.Contains(b.English, want) {
			t.Errorf("english reply %q missing %q", b.English, want)
		}
	}
	if !strings.Contains(b.Hindi, "Delhi") {
		t.Errorf("hindi reply %q missing city", b.Hindi)
	}
}

func TestCurrentProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod":401,"message":"Invalid API key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("bad-key", WithBaseURL(srv.URL))
	if _, err := c.Current(context.Background(), 28.6, 77.2); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestCurrentMalformedPayload(t *testing.T) {
	tests := []string{
		`not json`,
		`{"name":"Delhi","weather":[],"main":{"temp":30}}`,
	}
	for _, body := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))
		c := NewClient("test-key", WithBaseURL(srv.URL))
		if _, err := c.Current(context.Background(), 1, 2); err == nil {
			t.Errorf("expected error for payload %q", body)
		}
		srv.Close()
	}
}

func TestCurrentTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed on purpose

	c := NewClient("test-key", WithBaseURL(srv.URL))
	if _, err := c.Current(context.Background(), 1, 2); err == nil {
		t.Fatal("expected transport error")
	}
}
