package resume

import (
	"regexp"
	"strings"
)

// skillSeparatorRe is the separator class skills are split on: commas, bullet
// glyphs, newlines, tabs, pipes and semicolons.
var skillSeparatorRe = regexp.MustCompile("[,•·▪◦‣\n\t|;]")

// ExtractSkills splits a skills section into a flat, deduplicated list.
// Entries are trimmed, 1-49 characters long, deduplicated case-sensitively
// with first-seen order preserved. Re-running on the comma-joined output
// yields the same set.
func (p *Parser) ExtractSkills(text string) (skills []string) {
	defer p.recoverExtractor("skills", func() { skills = nil })

	seen := map[string]bool{}
	for _, part := range skillSeparatorRe.Split(text, -1) {
		part = strings.TrimSpace(part)
		part = strings.TrimLeft(part, "-*")
		part = strings.TrimSpace(part)
		if part == "" || len(part) >= 50 || seen[part] {
			continue
		}
		seen[part] = true
		skills = append(skills, part)
	}

	p.trace.Tracef("skills: %d unique", len(skills))
	return skills
}
