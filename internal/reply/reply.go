package reply

// Bilingual is the envelope every pipeline path produces: one Hindi string
// and one English string. When the generative backend answers, the same
// text fills both fields; the backend is trusted to produce bilingual
// output on its own and nothing downstream splits or translates it.
type Bilingual struct {
	Hindi   string `json:"reply_hi"`
	English string `json:"reply_en"`
}

// Fixed replies for the deterministic paths. These strings are part of the
// observable contract; tests compare against them verbatim.
var (
	Greeting = Bilingual{
		Hindi:   "नमस्ते! मैं एग्रोबॉट हूँ। खेती से संबंधित सवाल पूछें।",
		English: "Hello! I am AgroBot. Ask me any questions about farming.",
	}
	Thanks = Bilingual{
		Hindi:   "खुशी है कि मैं मदद कर सका।",
		English: "You're welcome! Happy to help.",
	}
	Acknowledge = Bilingual{
		Hindi:   "ठीक है।",
		English: "Okay.",
	}
	Farewell = Bilingual{
		Hindi:   "अलविदा! शुभकामनाएँ।",
		English: "Goodbye! Take care.",
	}

	LocationRequest = Bilingual{
		Hindi:   "🌤 कृपया मौसम जानकारी के लिए स्थान की अनुमति दें।",
		English: "🌤 Please allow location access to get weather.",
	}
	WeatherUnavailable = Bilingual{
		Hindi:   "⚠️ मौसम की जानकारी नहीं मिल पाई।",
		English: "⚠️ Could not fetch weather.",
	}

	SchemeClarification = Bilingual{
		Hindi:   "कृपया बताएं कि आप किस योजना के बारे में जानना चाहते हैं?",
		English: "Please specify which government scheme you want information about (e.g., PM Kisan, Soil Health Card).",
	}

	InvalidJSON = Bilingual{
		Hindi:   "⚠️ अमान्य JSON।",
		English: "⚠️ Invalid JSON format.",
	}
	EmptyMessage = Bilingual{
		Hindi:   "⚠️ कृपया संदेश भेजें।",
		English: "⚠️ Please send a valid message.",
	}
	MethodNotAllowed = Bilingual{
		Hindi:   "⚠️ यह विधि अनुमत नहीं है।",
		English: "⚠️ Method not allowed.",
	}
	GenerativeFailure = Bilingual{
		Hindi:   "⚠️ AI से उत्तर नहीं मिला।",
		English: "⚠️ Could not generate response.",
	}
)

// Same wraps a single backend string into the envelope, reusing it for
// both language fields.
func Same(text string) Bilingual {
	return Bilingual{Hindi: text, English: text}
}
