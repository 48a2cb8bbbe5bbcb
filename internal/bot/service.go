package bot

import (
	"context"
	"net/http"
	"time"

	"agrobot/internal/intent"
	"agrobot/internal/llm"
	"agrobot/internal/metrics"
	"agrobot/internal/normalize"
	"agrobot/internal/reply"
	"agrobot/internal/weather"

	"go.uber.org/zap"
)

// Message is one incoming user turn. Text is non-empty by the time it
// reaches Handle; the transport boundary rejects empty messages first.
type Message struct {
	Text   string
	Coords *Coords
}

type Coords struct {
	Lat float64
	Lon float64
}

// WeatherClient is the slice of the weather gateway the pipeline needs.
type WeatherClient interface {
	Current(ctx context.Context, lat, lon float64) (weather.Summary, error)
}

// Service runs the message-understanding pipeline: normalize, route to a
// deterministic intent when possible, fall back to the generative backend
// otherwise. Stateless across requests.
type Service struct {
	weather WeatherClient
	gen     llm.Generator
	log     *zap.Logger
	now     func() time.Time
}

type Option func(*Service)

// WithClock overrides the time source; tests pin the prompt date with it.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(w WeatherClient, g llm.Generator, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		weather: w,
		gen:     g,
		log:     log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var canned = map[intent.Intent]reply.Bilingual{
	intent.Greeting:    reply.Greeting,
	intent.Thanks:      reply.Thanks,
	intent.Acknowledge: reply.Acknowledge,
	intent.Farewell:    reply.Farewell,
}

// Handle resolves one message to a bilingual reply and an HTTP status.
// Every path terminates in the envelope; no error escapes unstructured.
func (s *Service) Handle(ctx context.Context, msg Message) (reply.Bilingual, int) {
	start := time.Now()
	normalized := normalize.Normalize(msg.Text)
	routed := intent.Route(normalized)

	// Script signal is recorded for diagnostics only; it does not steer
	// routing or reply-language selection.
	s.log.Debug("message routed",
		zap.String("intent", routed.String()),
		zap.Bool("devanagari", normalize.ContainsDevanagari(msg.Text)),
	)

	defer func() {
		metrics.MessagesRouted.WithLabelValues(routed.String()).Inc()
		metrics.HandleDuration.WithLabelValues(routed.String()).Observe(time.Since(start).Seconds())
	}()

	if fixed, ok := canned[routed]; ok {
		return fixed, http.StatusOK
	}

	switch routed {
	case intent.WeatherRequest:
		return s.handleWeather(ctx, msg.Coords), http.StatusOK
	case intent.SchemeInquiry:
		if !intent.KnownScheme(normalized) {
			return reply.SchemeClarification, http.StatusOK
		}
		// A named scheme is a gate into the generative path, not a
		// terminal answer.
	}

	return s.generate(ctx, msg)
}

func (s *Service) handleWeather(ctx context.Context, coords *Coords) reply.Bilingual {
	if coords == nil || coords.Lat == 0 || coords.Lon == 0 {
		return reply.LocationRequest
	}

	sum, err := s.weather.Current(ctx, coords.Lat, coords.Lon)
	if err != nil {
		// Degraded informational reply, still a normal response.
		s.log.Warn("weather lookup failed", zap.Error(err))
		metrics.UpstreamFailures.WithLabelValues("weather").Inc()
		return reply.WeatherUnavailable
	}
	return sum.Bilingual()
}

func (s *Service) generate(ctx context.Context, msg Message) (reply.Bilingual, int) {
	system := systemPrompt(s.now(), msg.Coords)

	// The backend sees the original message, not the normalized form.
	text, err := s.gen.Generate(ctx, system, msg.Text)
	if err != nil {
		s.log.Error("generative backend failed", zap.Error(err))
		metrics.UpstreamFailures.WithLabelValues("llm").Inc()
		return reply.GenerativeFailure, http.StatusInternalServerError
	}

	// One bilingual-capable completion fills both fields verbatim.
	return reply.Same(text), http.StatusOK
}
