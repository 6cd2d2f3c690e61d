package resume

import (
	"regexp"
	"strings"
)

// Shared constant tables for the Experience and Projects extractors. Both
// algorithms read from the same tables so the two boundary heuristics cannot
// drift apart.

// bulletGlyphRe matches a leading bullet glyph (ASCII or Unicode).
// Unicode glyphs count with or without a following space; ASCII markers
// (-, *, +) need one so that "-2020" style tokens are not misread as bullets.
var bulletGlyphRe = regexp.MustCompile(`^\s*(?:[\x{2022}\x{25CF}\x{25AA}\x{25E6}\x{2023}\x{2043}\x{2219}\x{00B7}\x{27A4}\x{2192}]\s*|[*\-+]\s+)`)

// actionVerbs are first words that mark a line as an achievement bullet even
// without a glyph prefix.
var actionVerbs = map[string]bool{
	"developed": true, "managed": true, "led": true, "created": true,
	"designed": true, "implemented": true, "built": true, "improved": true,
	"increased": true, "reduced": true, "launched": true, "delivered": true,
	"coordinated": true, "analyzed": true, "maintained": true, "established": true,
	"collaborated": true, "spearheaded": true, "executed": true, "organized": true,
	"architected": true, "automated": true, "optimized": true, "mentored": true,
	"streamlined": true, "supported": true, "researched": true, "oversaw": true,
	"owned": true, "drove": true,
}

// companyIndicatorRe matches employer-type nouns.
var companyIndicatorRe = regexp.MustCompile(`(?i)\b(?:inc|llc|ltd|corp|corporation|company|co|group|university|college|institute|technologies|solutions|systems|labs|consulting|agency|studio|bank|ventures)\b\.?`)

// jobTitleIndicatorRe matches role nouns commonly found in job titles.
var jobTitleIndicatorRe = regexp.MustCompile(`(?i)\b(?:engineer|developer|manager|director|analyst|designer|consultant|architect|specialist|coordinator|administrator|intern|lead|officer|scientist|technician|president|founder|head|supervisor|accountant|assistant|associate|executive|programmer)\b`)

// locationRe matches a "City, ST" pattern (up to three capitalized words
// before the state code, so prose ahead of the city is not swallowed).
var locationRe = regexp.MustCompile(`\b[A-Z][a-zA-Z.-]*(?: [A-Z][a-zA-Z.-]*){0,2},\s*[A-Z]{2}\b`)

// projectIndicatorRe matches nouns that suggest a project entry header.
var projectIndicatorRe = regexp.MustCompile(`(?i)\b(?:project|app|application|website|web app|platform|tool|demo|game|bot|api|extension|library)\b`)

// githubLinkRe matches a github repository or profile link.
var githubLinkRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_./-]+`)

// continuationPrefixes mark a line as a wrapped continuation of the previous
// line's content rather than a new entry.
var continuationPrefixes = []string{
	"for ", "using ", "with ", "and ", "in ", "to ", "on ", "of ", "by ",
}

// technologyKeywords is the fallback vocabulary for project technology
// extraction when no explicit tech list is present.
var technologyKeywords = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Go", "Golang",
	"Ruby", "PHP", "Swift", "Kotlin", "Rust", "Scala", "HTML", "CSS", "Sass",
	"React", "Angular", "Vue", "Svelte", "Next.js", "Node.js", "Express",
	"Django", "Flask", "Spring", "Rails", "Laravel", "GraphQL", "REST",
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "SQLite", "Firebase",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Git",
	"Jenkins", "Kafka", "RabbitMQ", "Elasticsearch", "TensorFlow", "PyTorch",
}

// LineFeatures is the feature record produced for every non-empty line before
// boundary detection runs. Classification is a pure function of the line text.
type LineFeatures struct {
	Text           string
	IsBullet       bool
	HasDate        bool
	HasDateRange   bool
	HasCompany     bool
	HasLocation    bool
	HasJobTitle    bool
	HasProjectHint bool
	HasGitHubLink  bool
	IsContinuation bool
}

// ClassifyLine computes the feature record for a single line.
func ClassifyLine(line string) LineFeatures {
	trimmed := strings.TrimSpace(line)
	lower := strings.ToLower(trimmed)

	return LineFeatures{
		Text:           trimmed,
		IsBullet:       isBulletLine(trimmed, lower),
		HasDate:        dateTokenRe.MatchString(trimmed),
		HasDateRange:   hasDateRange(trimmed),
		HasCompany:     companyIndicatorRe.MatchString(trimmed),
		HasLocation:    strings.Contains(trimmed, "|") || locationRe.MatchString(trimmed),
		HasJobTitle:    jobTitleIndicatorRe.MatchString(trimmed),
		HasProjectHint: projectIndicatorRe.MatchString(trimmed),
		HasGitHubLink:  githubLinkRe.MatchString(trimmed),
		IsContinuation: looksLikeContinuation(lower),
	}
}

func classifyLines(lines []string) []LineFeatures {
	feats := make([]LineFeatures, len(lines))
	for i, line := range lines {
		feats[i] = ClassifyLine(line)
	}
	return feats
}

func isBulletLine(trimmed, lower string) bool {
	if trimmed == "" {
		return false
	}
	if bulletGlyphRe.MatchString(trimmed) {
		return true
	}
	first := lower
	if i := strings.IndexAny(first, " \t"); i > 0 {
		first = first[:i]
	}
	first = strings.Trim(first, ".,:;")
	return actionVerbs[first]
}

// looksLikeContinuation reports whether a line reads as the wrapped tail of
// the previous line (leading conjunction or preposition).
func looksLikeContinuation(lower string) bool {
	for _, p := range continuationPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// stripBulletMarker removes a leading bullet glyph, if any. Action-verb
// bullets carry no glyph and pass through unchanged.
func stripBulletMarker(line string) string {
	return strings.TrimSpace(bulletGlyphRe.ReplaceAllString(strings.TrimSpace(line), ""))
}

// nonEmptyLines splits text into trimmed, non-empty lines.
func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
