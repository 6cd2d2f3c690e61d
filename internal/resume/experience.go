package resume

import (
	"fmt"
	"sort"
	"strings"
)

// ExtractExperiences segments an experience section body into job entries.
// Resumes carry no delimiter between jobs, so boundaries are inferred from
// line-level features alone. The function never fails: internal errors are
// recovered at this boundary and an empty list is returned.
func (p *Parser) ExtractExperiences(text string) (entries []ExperienceEntry) {
	defer p.recoverExtractor("experience", func() { entries = nil })

	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return nil
	}
	feats := classifyLines(lines)

	boundaries := experienceBoundaries(feats)
	if len(boundaries) < 2 {
		p.trace.Tracef("experience: %d strict boundaries, relaxing", len(boundaries))
		boundaries = relaxedExperienceBoundaries(feats)
	}
	p.trace.Tracef("experience: %d boundaries over %d lines", len(boundaries), len(lines))

	for k, start := range boundaries {
		stop := len(lines)
		if k+1 < len(boundaries) {
			stop = boundaries[k+1]
		}
		entry := buildExperience(len(entries)+1, lines[start:stop], feats[start:stop])
		if entry.Company == "" && entry.Position == "" && entry.StartDate == "" {
			p.trace.Tracef("experience: dropping empty span at line %d", start)
			continue
		}
		entries = append(entries, entry)
	}

	sortExperiences(entries)
	return entries
}

// experienceBoundaries is the strict first pass. A line starts a new job when:
//
//	(a) it has a job-title indicator and a date or date range, or
//	(b) it has a job-title indicator and the next line has a company or
//	    location indicator, or
//	(c) it has a company indicator and a date, or
//	(d) it directly follows two consecutive bullet lines and carries a
//	    job-title, company or date signal.
//
// Bullet lines are never boundaries.
func experienceBoundaries(feats []LineFeatures) []int {
	var idx []int
	for i, f := range feats {
		if f.IsBullet {
			continue
		}
		switch {
		case f.HasJobTitle && (f.HasDate || f.HasDateRange):
			idx = append(idx, i)
		case f.HasJobTitle && i+1 < len(feats) && (feats[i+1].HasCompany || feats[i+1].HasLocation):
			idx = append(idx, i)
		case f.HasCompany && f.HasDate:
			idx = append(idx, i)
		case i >= 2 && feats[i-1].IsBullet && feats[i-2].IsBullet &&
			(f.HasJobTitle || f.HasCompany || f.HasDate):
			idx = append(idx, i)
		}
	}
	return idx
}

// relaxedExperienceBoundaries is the recall-biased fallback for resumes with
// degenerate layouts: any non-bullet line with a date or job-title signal
// starts an entry. Lines that are nothing but a date stay attached to the
// entry above them instead of opening a new one.
func relaxedExperienceBoundaries(feats []LineFeatures) []int {
	var idx []int
	for i, f := range feats {
		if f.IsBullet {
			continue
		}
		if f.HasDate && isDateOnlyLine(f.Text) {
			continue
		}
		if f.HasDate || f.HasDateRange || f.HasJobTitle {
			idx = append(idx, i)
		}
	}
	return idx
}

// buildExperience extracts one entry from a boundary-to-boundary span.
func buildExperience(seq int, lines []string, feats []LineFeatures) ExperienceEntry {
	entry := ExperienceEntry{ID: fmt.Sprintf("exp-%d", seq)}
	entry.StartDate, entry.EndDate = extractDateRange(lines)

	var headers []string
	for i, f := range feats {
		if f.IsBullet {
			entry.BulletPoints = append(entry.BulletPoints, stripBulletMarker(lines[i]))
			continue
		}
		if isDateOnlyLine(lines[i]) {
			continue
		}
		headers = append(headers, cleanHeaderLine(lines[i]))
	}

	switch {
	case len(headers) >= 2:
		entry.Position = headers[0]
		entry.Company = headers[1]
		if len(headers) > 2 {
			entry.Description = strings.Join(headers[2:], " ")
		}
	case len(headers) == 1:
		entry.Position, entry.Company = splitPositionCompany(headers[0])
	}
	return entry
}

// cleanHeaderLine strips date text from a position/company line and drops a
// trailing "| City, ST" location tail.
func cleanHeaderLine(line string) string {
	line = stripDateText(line)
	if parts := strings.Split(line, "|"); len(parts) > 1 {
		last := strings.TrimSpace(parts[len(parts)-1])
		if locationRe.MatchString(last) {
			line = strings.Join(parts[:len(parts)-1], "|")
		}
	}
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "|,"))
}

// positionCompanySeparators are tried in order when a span has a single
// header line carrying both position and company.
var positionCompanySeparators = []string{",", "|", " at ", " for ", " with "}

func splitPositionCompany(line string) (position, company string) {
	for _, sep := range positionCompanySeparators {
		if strings.Contains(line, sep) {
			parts := strings.SplitN(line, sep, 2)
			return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		}
	}
	return strings.TrimSpace(line), ""
}

// sortExperiences orders entries reverse-chronologically: open-ended entries
// (present/current/now/ongoing) first, then by parsed end date descending
// (start date when no end date exists). Unparseable dates compare equal.
func sortExperiences(entries []ExperienceEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		oi, oj := isOpenEnded(entries[i].EndDate), isOpenEnded(entries[j].EndDate)
		if oi != oj {
			return oi
		}
		ti, iok := entrySortKey(entries[i].StartDate, entries[i].EndDate)
		tj, jok := entrySortKey(entries[j].StartDate, entries[j].EndDate)
		if !iok || !jok {
			return false
		}
		return ti.After(tj)
	})
}
