package resume

import (
	"fmt"
	"regexp"
	"strings"
)

var degreeKeywordRe = regexp.MustCompile(`(?i)\b(?:bachelor|master|doctor|phd|ph\.d|associate|diploma|certificate|degree|b\.?sc?|b\.?a|b\.?tech|m\.?sc?|m\.?a|m\.?tech|mba)\b`)

var degreeFieldRe = regexp.MustCompile(`(?i)^(.+?)\s+in\s+(.+)$`)

// ExtractEducation splits an education section into entries. Blocks are
// delimited by date tokens: lines accumulate until one carries a date, which
// closes the block. The first line of a block is the school; the remaining
// lines are scanned for a degree keyword and split into degree/field.
func (p *Parser) ExtractEducation(text string) (entries []EducationEntry) {
	defer p.recoverExtractor("education", func() { entries = nil })

	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return nil
	}

	var block []string
	flush := func() {
		if len(block) == 0 {
			return
		}
		if entry, ok := buildEducation(len(entries)+1, block); ok {
			entries = append(entries, entry)
		}
		block = nil
	}

	for _, line := range lines {
		block = append(block, line)
		if dateTokenRe.MatchString(line) {
			flush()
		}
	}
	flush()

	p.trace.Tracef("education: %d entries", len(entries))
	return entries
}

func buildEducation(seq int, block []string) (EducationEntry, bool) {
	entry := EducationEntry{ID: fmt.Sprintf("edu-%d", seq)}
	entry.StartDate, entry.EndDate = extractDateRange(block)
	entry.School = cleanHeaderLine(block[0])

	for _, line := range block[1:] {
		if !degreeKeywordRe.MatchString(line) {
			continue
		}
		line = stripDateText(line)
		if m := degreeFieldRe.FindStringSubmatch(line); m != nil {
			entry.Degree = strings.TrimSpace(m[1])
			entry.Field = strings.TrimSpace(m[2])
		} else if parts := strings.SplitN(line, ",", 2); len(parts) == 2 {
			entry.Degree = strings.TrimSpace(parts[0])
			entry.Field = strings.TrimSpace(parts[1])
		} else {
			entry.Degree = strings.TrimSpace(line)
		}
		break
	}

	if entry.School == "" && entry.Degree == "" {
		return entry, false
	}
	return entry, true
}
