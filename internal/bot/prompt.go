package bot

import (
	"fmt"
	"strings"
	"time"
)

// systemPrompt embeds the assistant persona, the bilingual directive, the
// current date and the caller's coordinates (or an explicit unknown marker)
// into the instruction the generative backend receives.
func systemPrompt(now time.Time, coords *Coords) string {
	lat, lon := "unknown", "unknown"
	if coords != nil {
		lat = fmt.Sprintf("%v", coords.Lat)
		lon = fmt.Sprintf("%v", coords.Lon)
	}

	var b strings.Builder
	b.WriteString(`You are "AgroBot", an expert agricultural assistant for Indian farmers.` + "\n")
	b.WriteString("Respond in both Hindi and English. Keep responses short, friendly, and actionable.\n")
	fmt.Fprintf(&b, "Current Date: %s.\n", now.Format("Monday, January 02, 2006"))
	fmt.Fprintf(&b, "User location: latitude %s, longitude %s.\n", lat, lon)
	return b.String()
}
