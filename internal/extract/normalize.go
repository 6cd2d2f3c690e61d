package extract

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// cleaner strips the invisible format runes (zero-width spaces, BOMs, soft
// hyphens) that PDF extractors leave behind, then recomposes to NFC.
var cleaner = transform.Chain(runes.Remove(runes.In(unicode.Cf)), norm.NFC)

var (
	horizontalWS = regexp.MustCompile(`[ \t\f\v]+`)
	blankRuns    = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans extracted text for the heuristic pipeline: unify line
// endings, drop format runes, collapse horizontal whitespace runs and cap
// blank-line runs at one. Single blank lines survive because the downstream
// block splitters key on them.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\u00a0", " ")

	if cleaned, _, err := transform.String(cleaner, text); err == nil {
		text = cleaned
	}

	text = horizontalWS.ReplaceAllString(text, " ")
	text = blankRuns.ReplaceAllString(text, "\n\n")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
