package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"agrobot/internal/bot"
	"agrobot/internal/reply"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Pipeline is the message-understanding service the server fronts.
type Pipeline interface {
	Handle(ctx context.Context, msg bot.Message) (reply.Bilingual, int)
}

// Server exposes the pipeline over HTTP.
type Server struct {
	pipeline Pipeline
	log      *zap.Logger
	port     int
}

func New(pipeline Pipeline, log *zap.Logger, port int) *Server {
	if port == 0 {
		port = 8080
	}
	return &Server{
		pipeline: pipeline,
		log:      log,
		port:     port,
	}
}

// Start runs the HTTP server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.log.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info("starting http server", zap.Int("port", s.port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Handler builds the route mux; exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

type chatRequest struct {
	Message string `json:"message"`
	Coords  *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coords"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		// Placeholder body instead of the reply envelope; browsers land here.
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "AgroBot chat endpoint. Use POST to send messages.",
		})
		return
	case http.MethodPost:
	default:
		writeJSON(w, http.StatusMethodNotAllowed, reply.MethodNotAllowed)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, reply.InvalidJSON)
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeJSON(w, http.StatusBadRequest, reply.EmptyMessage)
		return
	}

	msg := bot.Message{Text: req.Message}
	if req.Coords != nil {
		msg.Coords = &bot.Coords{Lat: req.Coords.Lat, Lon: req.Coords.Lon}
	}

	turnCtx, cancel := context.WithTimeout(r.Context(), 2*time.Minute)
	defer cancel()

	answer, status := s.pipeline.Handle(turnCtx, msg)
	writeJSON(w, status, answer)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, reply.MethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "online",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
