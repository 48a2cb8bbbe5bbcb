package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"agrobot/internal/reply"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Summary is the slice of the provider payload the assistant reports.
// It is either fully populated or not produced at all.
type Summary struct {
	City        string
	Description string
	TempC       float64
}

// Client is a thin gateway to the OpenWeatherMap current-weather endpoint.
// One synchronous request per call, metric units, no retry, no cache.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

type Option func(*Client)

// WithBaseURL overrides the provider endpoint; tests point it at a local
// httptest server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpc:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// payload mirrors the fields of the provider response we consume.
type payload struct {
	Name    string `json:"name"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// Current fetches the weather at the given coordinates. Any transport,
// status or payload-shape failure comes back as an error; the caller maps
// it to the fixed bilingual fallback rather than letting it escape.
func (c *Client) Current(ctx context.Context, lat, lon float64) (Summary, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%v", lat))
	q.Set("lon", fmt.Sprintf("%v", lon))
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Summary{}, fmt.Errorf("weather: build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Summary{}, fmt.Errorf("weather: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Summary{}, fmt.Errorf("weather: provider returned status %d", resp.StatusCode)
	}

	var p payload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return Summary{}, fmt.Errorf("weather: decode response: %w", err)
	}
	if len(p.Weather) == 0 {
		return Summary{}, fmt.Errorf("weather: response missing conditions")
	}

	return Summary{
		City:        p.Name,
		Description: p.Weather[0].Description,
		TempC:       p.Main.Temp,
	}, nil
}

// Bilingual formats the localized success strings.
func (s Summary) Bilingual() reply.Bilingual {
	return reply.Bilingual{
		Hindi:   fmt.Sprintf("🌤 वर्तमान मौसम %s में: %s, तापमान: %g°C है।", s.City, s.Description, s.TempC),
		English: fmt.Sprintf("🌤 Current weather in %s: %s, Temp: %g°C.", s.City, s.Description, s.TempC),
	}
}
