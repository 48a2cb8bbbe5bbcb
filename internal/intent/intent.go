package intent

import "strings"

// Intent is the coarse category a normalized message resolves to before a
// reply is produced. It is recomputed per message, never stored.
type Intent int

const (
	Unmatched Intent = iota
	Greeting
	Thanks
	Acknowledge
	Farewell
	WeatherRequest
	SchemeInquiry
)

func (i Intent) String() string {
	switch i {
	case Greeting:
		return "greeting"
	case Thanks:
		return "thanks"
	case Acknowledge:
		return "acknowledge"
	case Farewell:
		return "farewell"
	case WeatherRequest:
		return "weather_request"
	case SchemeInquiry:
		return "scheme_inquiry"
	default:
		return "unmatched"
	}
}

// smallTalk maps canonical keywords to their intents, in match priority
// order. Matching is substring containment on normalized text, first hit
// wins, so the order here is part of the routing contract.
var smallTalk = []struct {
	keyword string
	intent  Intent
}{
	{"hello", Greeting},
	{"thank you", Thanks},
	{"ok", Acknowledge},
	{"bye", Farewell},
}

// knownSchemes is the closed set of scheme names the assistant recognizes.
// A scheme inquiry that names one of these falls through to the generative
// backend for a detailed answer instead of the clarification prompt.
var knownSchemes = []string{
	"pm kisan",
	"soil health card",
	"kisan credit card",
}

// Route resolves normalized text to an Intent. Pure; the caller decides
// what each intent means for the response.
func Route(normalized string) Intent {
	for _, st := range smallTalk {
		if strings.Contains(normalized, st.keyword) {
			return st.intent
		}
	}
	if strings.Contains(normalized, "weather") || strings.Contains(normalized, "mausam") {
		return WeatherRequest
	}
	if strings.Contains(normalized, "scheme") {
		return SchemeInquiry
	}
	return Unmatched
}

// KnownScheme reports whether normalized text names one of the recognized
// government schemes.
func KnownScheme(normalized string) bool {
	for _, s := range knownSchemes {
		if strings.Contains(normalized, s) {
			return true
		}
	}
	return false
}
