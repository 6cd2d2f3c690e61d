package resume

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	// Ordered alternatives: /in/ profiles first, then /pub/ legacy profiles.
	linkedinRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_%-]+/?`),
		regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/pub/[A-Za-z0-9_%/-]+`),
	}

	websiteRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?[a-z0-9][a-z0-9-]*\.(?:dev|io|me|com|net|org|co|tech|app|site|xyz)(?:/[^\s,;)]*)?`)

	nameLineRe = regexp.MustCompile(`^[A-Za-z][A-Za-z\s.'-]*$`)
)

// Domains that must never be classified as a personal website.
var nonWebsiteDomains = []string{
	"linkedin.com", "github.com", "twitter.com", "x.com",
	"facebook.com", "instagram.com", "medium.com",
}

// ExtractEmail returns the first email address in the text, or "".
func ExtractEmail(text string) string {
	return emailRe.FindString(text)
}

// ExtractPhone returns the first phone number in the text, or "".
func ExtractPhone(text string) string {
	return strings.TrimSpace(phoneRe.FindString(text))
}

// ExtractLinkedIn returns the first LinkedIn profile URL, scheme-normalized.
func ExtractLinkedIn(text string) string {
	for _, re := range linkedinRes {
		if m := re.FindString(text); m != "" {
			return normalizeURL(m)
		}
	}
	return ""
}

// ExtractWebsite returns the first personal-website URL. LinkedIn, GitHub and
// social domains are excluded so links are never cross-classified.
func ExtractWebsite(text string) string {
	for _, link := range ExtractAllLinks(text) {
		if link.Name == "website" {
			return link.URL
		}
	}
	return ""
}

// ExtractAllLinks returns every typed link found in the text, in the order
// linkedin, github, website. Bare domains are normalized with an https prefix.
func ExtractAllLinks(text string) []NamedLink {
	var links []NamedLink
	seen := map[string]bool{}

	add := func(name, raw string) {
		url := normalizeURL(raw)
		if url == "" || seen[url] {
			return
		}
		seen[url] = true
		links = append(links, NamedLink{Name: name, URL: url})
	}

	if li := ExtractLinkedIn(text); li != "" {
		add("linkedin", li)
	}
	for _, gh := range githubLinkRe.FindAllString(text, -1) {
		add("github", gh)
	}

	// Websites are scanned over text with email addresses blanked out so a
	// mail domain never masquerades as a site.
	scrubbed := emailRe.ReplaceAllString(text, " ")
	for _, site := range websiteRe.FindAllString(scrubbed, -1) {
		if isNonWebsiteDomain(site) {
			continue
		}
		add("website", site)
	}
	return links
}

func isNonWebsiteDomain(url string) bool {
	lower := strings.ToLower(url)
	for _, d := range nonWebsiteDomains {
		if strings.Contains(lower, d) {
			return true
		}
	}
	return false
}

func normalizeURL(raw string) string {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/.,")
	if raw == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(raw), "http") {
		return "https://" + raw
	}
	return raw
}

// extractName scans the first five non-empty lines for something that reads
// like a person's name: only name characters, shorter than 50 runes.
func extractName(text string) string {
	lines := nonEmptyLines(text)
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		if len(line) < 50 && nameLineRe.MatchString(line) && !isSectionHeading(line) {
			return line
		}
	}
	return ""
}

// extractLocation looks for a "City, ST" pattern inside the summary only.
// Deliberately narrow: locations elsewhere in the text belong to employers.
func extractLocation(summary string) string {
	return strings.TrimSpace(locationRe.FindString(summary))
}

// commonJobTitles is the fallback vocabulary when no experience entry
// supplies a position.
var commonJobTitles = []string{
	"Senior Software Engineer", "Software Engineer", "Full Stack Developer",
	"Frontend Developer", "Backend Developer", "Web Developer",
	"DevOps Engineer", "Data Scientist", "Data Analyst", "Data Engineer",
	"Product Manager", "Project Manager", "Program Manager",
	"Business Analyst", "UX Designer", "UI Designer", "Graphic Designer",
	"Marketing Manager", "Sales Manager", "Account Manager",
	"Operations Manager", "Financial Analyst", "Accountant",
	"Customer Success Manager", "Technical Writer",
}

// guessJobTitle prefers the most recent experience's position and falls back
// to the first known title string appearing verbatim in the text.
func guessJobTitle(text string, experiences []ExperienceEntry) string {
	if len(experiences) > 0 && experiences[0].Position != "" {
		return experiences[0].Position
	}
	for _, title := range commonJobTitles {
		if strings.Contains(text, title) {
			return title
		}
	}
	return ""
}

// ExtractPersonalInfo derives contact details from the full text. It runs
// after the experience extractor on purpose: job-title guessing reads the
// extracted experiences first.
func (p *Parser) ExtractPersonalInfo(fullText string, parsed *ParsedResume) (info PersonalInfo) {
	defer p.recoverExtractor("personal info", func() { info = PersonalInfo{} })

	links := ExtractAllLinks(fullText)

	info = PersonalInfo{
		Name:  extractName(fullText),
		Email: ExtractEmail(fullText),
		Phone: ExtractPhone(fullText),
	}
	if parsed != nil {
		info.Location = extractLocation(parsed.Summary)
		info.JobTitle = guessJobTitle(fullText, parsed.Experiences)
	} else {
		info.JobTitle = guessJobTitle(fullText, nil)
	}

	for _, link := range links {
		switch link.Name {
		case "linkedin":
			if info.LinkedInURL == "" {
				info.LinkedInURL = link.URL
				info.Links.LinkedIn = link.URL
				continue
			}
		case "website":
			if info.WebsiteURL == "" {
				info.WebsiteURL = link.URL
				info.Links.Portfolio = link.URL
				continue
			}
		}
		info.Links.AdditionalLinks = append(info.Links.AdditionalLinks, link)
	}

	p.trace.Tracef("personal info: name=%q email=%q phone=%q links=%d",
		info.Name, info.Email, info.Phone, len(links))
	return info
}
