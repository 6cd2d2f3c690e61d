package resume

import (
	"regexp"
	"strings"
)

var issuerMarkerRe = regexp.MustCompile(`(?i)\b(?:issued\s+by|issuer|issue[d]?|provider|from)\b[:\s]*`)

var credentialIDRe = regexp.MustCompile(`(?i)\b(?:credential\s*id|credential|id)\b\s*[:#]?\s*([A-Za-z0-9][A-Za-z0-9-]+)`)

var monthYearRe = regexp.MustCompile(`(?i)` + monthPat + `\.?,?\s+\d{4}`)

// ExtractCertifications splits a certifications section into blank-line
// delimited blocks. The first line of a block is the name; remaining lines
// are scanned for issuer and credential markers; the first two month-year
// tokens become issue and expiration dates.
func (p *Parser) ExtractCertifications(text string) (entries []CertificationEntry) {
	defer p.recoverExtractor("certifications", func() { entries = nil })

	for _, block := range splitBlocks(text) {
		lines := nonEmptyLines(block)
		if len(lines) == 0 {
			continue
		}
		entry := buildCertification(lines)
		if entry.Name == "" {
			continue
		}
		entries = append(entries, entry)
	}

	p.trace.Tracef("certifications: %d entries", len(entries))
	return entries
}

func buildCertification(lines []string) CertificationEntry {
	entry := CertificationEntry{Name: strings.TrimSpace(lines[0])}

	for _, line := range lines[1:] {
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "issue") || strings.Contains(lower, "provider") || strings.Contains(lower, "from"):
			if entry.Issuer == "" {
				entry.Issuer = strings.TrimSpace(issuerMarkerRe.ReplaceAllString(line, ""))
			}
		case strings.Contains(lower, "credential") || strings.Contains(lower, "id"):
			if entry.CredentialID == "" {
				if m := credentialIDRe.FindStringSubmatch(line); m != nil {
					entry.CredentialID = m[1]
				}
			}
		}
	}

	dates := monthYearRe.FindAllString(strings.Join(lines, "\n"), 2)
	if len(dates) > 0 {
		entry.Date = dates[0]
	}
	if len(dates) > 1 {
		entry.ExpirationDate = dates[1]
	}
	return entry
}
