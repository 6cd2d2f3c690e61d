package resume

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const monthPat = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`

const openEndedPat = `(?:Present|Current|Now|Ongoing)`

// dateRangePatterns are tried in priority order against every line of a span;
// the first match wins. Each pattern captures exactly two groups: start, end.
var dateRangePatterns = []*regexp.Regexp{
	// January 2020 - March 2022 / Jan 2020 to Present
	regexp.MustCompile(`(?i)(` + monthPat + `\.?,?\s+\d{4})\s*(?:[-–—]|to|through)\s*(` + monthPat + `\.?,?\s+\d{4}|` + openEndedPat + `)`),
	// 01/2020 - 03/2022
	regexp.MustCompile(`(?i)(\d{1,2}/\d{4})\s*(?:[-–—]|to)\s*(\d{1,2}/\d{4}|` + openEndedPat + `)`),
	// 01/15/2020 - 03/01/2022
	regexp.MustCompile(`(?i)(\d{1,2}/\d{1,2}/\d{2,4})\s*(?:[-–—]|to)\s*(\d{1,2}/\d{1,2}/\d{2,4}|` + openEndedPat + `)`),
	// 2020 - 2022
	regexp.MustCompile(`\b(\d{4})\s+[-–—]\s+(\d{4})\b`),
	// 2020-Present (no spaces)
	regexp.MustCompile(`(?i)\b(\d{4})\s*[-–—]\s*(` + openEndedPat + `|\d{4})\b`),
}

// dateTokenRe matches a single standalone date token (month-year, MM/YYYY or
// a bare plausible year).
var dateTokenRe = regexp.MustCompile(`(?i)` + monthPat + `\.?,?\s+\d{4}|\d{1,2}/\d{4}|\b(?:19|20)\d{2}\b`)

func hasDateRange(line string) bool {
	for _, re := range dateRangePatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// extractDateRange finds the span's start/end dates. Range patterns run first
// in priority order; when none match, standalone tokens are scanned and the
// first two become start and end. A single token becomes the start date only:
// an open-ended "Present" is never assumed.
func extractDateRange(lines []string) (start, end string) {
	for _, re := range dateRangePatterns {
		for _, line := range lines {
			if m := re.FindStringSubmatch(line); m != nil {
				return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
			}
		}
	}

	var tokens []string
	for _, line := range lines {
		tokens = append(tokens, dateTokenRe.FindAllString(line, -1)...)
	}
	switch {
	case len(tokens) >= 2:
		return strings.TrimSpace(tokens[0]), strings.TrimSpace(tokens[1])
	case len(tokens) == 1:
		return strings.TrimSpace(tokens[0]), ""
	}
	return "", ""
}

// isOpenEnded reports whether a raw end-date string means "still there".
func isOpenEnded(raw string) bool {
	lower := strings.ToLower(raw)
	for _, w := range []string{"present", "current", "now", "ongoing"} {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// isDateOnlyLine reports whether a line carries nothing but date content.
// Such lines supply dates to the current entry and never field text.
func isDateOnlyLine(line string) bool {
	rest := stripDateText(line)
	return !strings.ContainsAny(rest, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
}

// stripDateText removes range matches and standalone tokens from a line,
// tidying leftover separators.
func stripDateText(line string) string {
	for _, re := range dateRangePatterns {
		line = re.ReplaceAllString(line, " ")
	}
	line = dateTokenRe.ReplaceAllString(line, " ")
	line = regexp.MustCompile(`\s+`).ReplaceAllString(line, " ")
	return strings.Trim(strings.TrimSpace(line), "|,–—-")
}

var dateLayouts = []string{
	"January 2006", "Jan 2006", "Jan. 2006", "01/2006", "1/2006",
	"01/02/2006", "1/2/2006", "2006",
}

// parseWhen turns a raw date string into a sort key. The boolean is false for
// unparseable input, which the comparator treats as an explicit unknown key
// (unknowns compare equal) instead of failing the sort.
func parseWhen(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || isOpenEnded(raw) {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	if t, err := dateparse.ParseAny(raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// entrySortKey picks the date an entry sorts by: end date when present,
// otherwise start date.
func entrySortKey(start, end string) (time.Time, bool) {
	if end != "" {
		return parseWhen(end)
	}
	return parseWhen(start)
}
