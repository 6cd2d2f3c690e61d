package resume

import (
	"fmt"
	"regexp"
	"strings"
)

// techListPatterns are tried in order before the keyword fallback. Each
// captures a delimiter-separated technology list.
var techListPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:technologies|tech stack|built with)\s*[:\-]?\s+(.+)`),
	regexp.MustCompile(`\(([^)]+,[^)]+)\)`),
	regexp.MustCompile(`(?i)\busing\s+([A-Za-z0-9#+.][A-Za-z0-9#+.,&/ -]*)`),
}

var urlRe = regexp.MustCompile(`(?i)https?://[^\s,;)]+`)

// ExtractProjects segments a projects section body into project entries. The
// boundary design is shared with the experience extractor but keyed on
// project nouns, GitHub links and bullets; an entry without a name is
// discarded. Like every extractor, it degrades to an empty list on internal
// errors.
func (p *Parser) ExtractProjects(text string) (entries []ProjectEntry) {
	defer p.recoverExtractor("projects", func() { entries = nil })

	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return nil
	}
	feats := classifyLines(lines)

	boundaries := projectBoundaries(feats)
	if len(boundaries) < 2 {
		p.trace.Tracef("projects: %d strict boundaries, relaxing", len(boundaries))
		boundaries = relaxedProjectBoundaries(feats)
	}

	for k, start := range boundaries {
		stop := len(lines)
		if k+1 < len(boundaries) {
			stop = boundaries[k+1]
		}
		entry := buildProject(len(entries)+1, lines[start:stop], feats[start:stop])
		if entry.Name == "" {
			p.trace.Tracef("projects: dropping nameless span at line %d", start)
			continue
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		p.trace.Tracef("projects: structured pass empty, using paragraph blocks")
		entries = p.projectsFromParagraphs(text)
	}

	return mergeProjectFragments(p.trace, entries)
}

// projectBoundaries is the strict pass. "Followed by bullets" is the
// strongest signal a line opens a project; project nouns and GitHub links
// also qualify. Continuation lines never open an entry.
func projectBoundaries(feats []LineFeatures) []int {
	var idx []int
	for i, f := range feats {
		if f.IsBullet || f.IsContinuation {
			continue
		}
		if f.HasDate && isDateOnlyLine(f.Text) {
			continue
		}
		followedByBullet := i+1 < len(feats) && feats[i+1].IsBullet
		if followedByBullet || f.HasProjectHint || f.HasGitHubLink {
			idx = append(idx, i)
		}
	}
	return idx
}

// relaxedProjectBoundaries additionally accepts dated lines, mirroring the
// experience fallback. Known trade-off: on unusual layouts this produces more
// boundaries than real projects; the fragment-merge pass repairs part of the
// damage but no precision safeguard exists beyond it.
func relaxedProjectBoundaries(feats []LineFeatures) []int {
	var idx []int
	for i, f := range feats {
		if f.IsBullet || f.IsContinuation {
			continue
		}
		if f.HasDate && isDateOnlyLine(f.Text) {
			continue
		}
		followedByBullet := i+1 < len(feats) && feats[i+1].IsBullet
		if followedByBullet || f.HasProjectHint || f.HasGitHubLink || f.HasDate || f.HasDateRange {
			idx = append(idx, i)
		}
	}
	return idx
}

func buildProject(seq int, lines []string, feats []LineFeatures) ProjectEntry {
	entry := ProjectEntry{ID: fmt.Sprintf("proj-%d", seq)}
	entry.StartDate, entry.EndDate = extractDateRange(lines)

	span := strings.Join(lines, "\n")
	if gh := githubLinkRe.FindString(span); gh != "" {
		entry.Link = normalizeURL(gh)
	} else if u := urlRe.FindString(span); u != "" {
		entry.Link = u
	}

	var desc []string
	for i, f := range feats {
		if f.IsBullet {
			entry.BulletPoints = append(entry.BulletPoints, stripBulletMarker(lines[i]))
			continue
		}
		if isDateOnlyLine(lines[i]) {
			continue
		}
		if entry.Name == "" {
			entry.Name = cleanProjectName(lines[i])
			continue
		}
		desc = append(desc, lines[i])
	}
	entry.Description = strings.Join(desc, " ")
	entry.Technologies = extractTechnologies(span)
	return entry
}

var parenGroupRe = regexp.MustCompile(`\([^)]*\)`)

// cleanProjectName strips links, date text and parenthesized tech lists from
// a name line.
func cleanProjectName(line string) string {
	line = urlRe.ReplaceAllString(line, " ")
	line = githubLinkRe.ReplaceAllString(line, " ")
	line = parenGroupRe.ReplaceAllString(line, " ")
	line = stripDateText(line)
	return strings.Trim(strings.TrimSpace(line), "|-–:")
}

// extractTechnologies tries the explicit list patterns first, then falls back
// to scanning for known technology keywords (word-boundary matched).
func extractTechnologies(text string) []string {
	for _, re := range techListPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if techs := splitTechList(m[1]); len(techs) > 0 {
				return techs
			}
		}
	}

	var techs []string
	for _, kw := range technologyKeywords {
		re := regexp.MustCompile(`(?i)(?:^|[^A-Za-z0-9.#+])` + regexp.QuoteMeta(kw) + `(?:$|[^A-Za-z0-9#+])`)
		if re.MatchString(text) {
			techs = append(techs, kw)
		}
	}
	return techs
}

func splitTechList(raw string) []string {
	raw = strings.NewReplacer(" and ", ",", "&", ",", "/", ",").Replace(raw)
	var techs []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.Trim(strings.TrimSpace(part), ".;")
		if part != "" && len(part) < 30 {
			techs = append(techs, part)
		}
	}
	return techs
}

// projectsFromParagraphs is the whole-section fallback when the structured
// pass finds nothing: split on blank-line runs, first line of each block is
// the name.
func (p *Parser) projectsFromParagraphs(text string) []ProjectEntry {
	var entries []ProjectEntry
	for _, block := range splitBlocks(text) {
		lines := nonEmptyLines(block)
		if len(lines) == 0 {
			continue
		}
		entry := buildProject(len(entries)+1, lines, classifyLines(lines))
		if entry.Name == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

var blankRunRe = regexp.MustCompile(`\n\s*\n`)

func splitBlocks(text string) []string {
	return blankRunRe.Split(text, -1)
}

// mergeProjectFragments folds an entry whose name starts with a continuation
// word and carries no dates into the preceding entry: the boundary heuristic
// over-segmented and this repairs it. Descriptions and bullets concatenate;
// technology sets union.
func mergeProjectFragments(trace Tracer, entries []ProjectEntry) []ProjectEntry {
	if len(entries) < 2 {
		return entries
	}
	merged := entries[:1]
	for _, entry := range entries[1:] {
		prev := &merged[len(merged)-1]
		if looksLikeContinuation(strings.ToLower(entry.Name)) && entry.StartDate == "" && entry.EndDate == "" {
			trace.Tracef("projects: merging fragment %q into %q", entry.Name, prev.Name)
			prev.Description = joinNonEmpty(" ", prev.Description, entry.Name, entry.Description)
			prev.BulletPoints = append(prev.BulletPoints, entry.BulletPoints...)
			prev.Technologies = unionStrings(prev.Technologies, entry.Technologies)
			if prev.Link == "" {
				prev.Link = entry.Link
			}
			continue
		}
		merged = append(merged, entry)
	}
	return merged
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, sep)
}

func unionStrings(a, b []string) []string {
	seen := make(map[string]bool, len(a))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range b {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
