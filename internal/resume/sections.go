package resume

import (
	"sort"
	"strings"
	"unicode"
)

// sectionKeywords is the heading vocabulary. A line qualifies as a heading
// only if its lowercased form contains one of these.
var sectionKeywords = []string{
	"summary", "objective", "profile", "about",
	"experience", "employment", "work history",
	"education", "academic",
	"skills", "technologies", "competencies",
	"languages",
	"certifications", "certificates", "licenses",
	"projects", "portfolio",
	"references", "courses", "coursework",
	"awards", "honors", "achievements",
	"volunteer", "activities", "interests", "publications",
}

// credentialKeywords drive the certification scavenging pass.
var credentialKeywords = []string{
	"certified", "certificate", "certification", "credential", "ccna", "comptia",
}

// headerSectionKey is the key everything before the first heading lands under.
const headerSectionKey = "Header"

// syntheticCertKey is the key injected by the scavenging pass when no
// certification section was found but credential-like lines exist elsewhere.
const syntheticCertKey = "Certifications"

// SplitIntoSections segments raw resume text into sections keyed by the
// literal heading line. Empty lines are skipped and never appear in a body.
// If no certification section was detected, credential-like lines from the
// other sections are scavenged into a synthetic "Certifications" section,
// duplicating those lines by design (recall over precision).
func (p *Parser) SplitIntoSections(text string) SectionMap {
	sections := SectionMap{}
	current := headerSectionKey
	var body []string

	flush := func() {
		if len(body) == 0 {
			return
		}
		joined := strings.Join(body, "\n")
		if prev, ok := sections[current]; ok && prev != "" {
			sections[current] = prev + "\n" + joined
		} else {
			sections[current] = joined
		}
		body = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isSectionHeading(line) {
			flush()
			current = line
			p.trace.Tracef("section heading: %q", line)
			if _, ok := sections[current]; !ok {
				sections[current] = ""
			}
			continue
		}
		body = append(body, line)
	}
	flush()

	p.scavengeCertifications(sections)
	return sections
}

// isSectionHeading classifies a line as a heading when it contains a section
// keyword and at least one formatting signal holds: the line is fully
// uppercase, starts with a capital letter, equals the keyword alone, or is
// the keyword with an optional plural "s" and trailing colon.
func isSectionHeading(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range sectionKeywords {
		if !strings.Contains(lower, kw) {
			continue
		}
		if isAllUpper(line) {
			return true
		}
		if lower == kw {
			return true
		}
		if bare := strings.TrimSuffix(lower, ":"); bare == kw || bare == kw+"s" {
			return true
		}
		r := []rune(line)[0]
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// scavengeCertifications injects a synthetic section from credential-like
// lines found anywhere else, but only when no real one exists.
func (p *Parser) scavengeCertifications(sections SectionMap) {
	for title := range sections {
		if strings.Contains(strings.ToLower(title), "certif") {
			return
		}
	}

	var found []string
	for _, title := range sortedTitles(sections) {
		for _, line := range strings.Split(sections[title], "\n") {
			lower := strings.ToLower(line)
			for _, kw := range credentialKeywords {
				if strings.Contains(lower, kw) {
					found = append(found, line)
					break
				}
			}
		}
	}
	if len(found) > 0 {
		p.trace.Tracef("scavenged %d certification-like lines into synthetic section", len(found))
		sections[syntheticCertKey] = strings.Join(found, "\n")
	}
}

func sortedTitles(sections SectionMap) []string {
	titles := make([]string, 0, len(sections))
	for t := range sections {
		titles = append(titles, t)
	}
	sort.Strings(titles)
	return titles
}
