package normalize

import (
	"regexp"
	"strings"
)

// rule is one step of the rewrite table: a whole-word pattern and its
// canonical replacement. Rules run in declaration order, exactly once each,
// and later rules see the output of earlier ones. The order is contractual:
// filler erasure has to land before shorter patterns would misfire on the
// remnants, so reordering this table changes observable routing.
type rule struct {
	re   *regexp.Regexp
	repl string
}

var rules = []rule{
	{regexp.MustCompile(`\bu\b`), "you"},
	{regexp.MustCompile(`\br\b`), "are"},
	{regexp.MustCompile(`\bpls\b|\bplz\b`), "please"},
	{regexp.MustCompile(`\bthx\b|\btnx\b`), "thanks"},
	{regexp.MustCompile(`\bok\b|\bokay\b|\bthik hai\b|\btheek hai\b`), "ok"},
	{regexp.MustCompile(`\bya\b|\bhaan\b|\byes\b`), "yes"},
	{regexp.MustCompile(`\bna\b|\bnahi\b|\bno\b`), "no"},
	{regexp.MustCompile(`\bhi\b|\bhello\b|\bnamaste\b|\bhola\b`), "hello"},
	{regexp.MustCompile(`\bbye\b|\bbye bye\b|\balvida\b`), "bye"},
	{regexp.MustCompile(`\bmausam\b|\bvedar\b`), "weather"},
	{regexp.MustCompile(`\bfasal\b|\bfassal\b|\bcrop\b`), "crop"},
	{regexp.MustCompile(`\brog\b|\bbimari\b`), "disease"},
	{regexp.MustCompile(`\bkhad\b|\burvarak\b`), "fertilizer"},
	{regexp.MustCompile(`\bbeej\b|\bbeejon\b`), "seeds"},
	{regexp.MustCompile(`\bsinchai\b|\bpani\b`), "irrigation"},
	{regexp.MustCompile(`\bke baare me batao\b|\bke baare me bataiye\b|\bbatao\b`), ""},
	{regexp.MustCompile(`\bkaise kare\b|\bkaise karen\b`), "how to do"},
	{regexp.MustCompile(`\bhelp\b|\bmadad\b|\bany help\b`), "help"},
	{regexp.MustCompile(`\bthank you\b|\bthanks\b|\bdhanyavad\b`), "thank you"},
	{regexp.MustCompile(`\bgovernment\b|\byojana\b|\bsubsidy\b|\bscheme\b`), "scheme"},
}

var spaces = regexp.MustCompile(`\s+`)

// Normalize canonicalizes a raw user message: lower-case, rewrite
// colloquial and romanized-Hindi shorthand to canonical English keywords,
// collapse whitespace, trim. It is pure, never fails, and is idempotent
// (every replacement is a fixed point of the table).
func Normalize(raw string) string {
	text := strings.ToLower(raw)
	for _, r := range rules {
		text = r.re.ReplaceAllString(text, r.repl)
	}
	return strings.TrimSpace(spaces.ReplaceAllString(text, " "))
}
