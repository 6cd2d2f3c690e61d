package resume

import (
	"sort"
	"strings"
)

// SectionMap maps a section heading, exactly as it appeared in the document,
// to the section body (non-empty lines joined by newline).
type SectionMap map[string]string

// Find returns the body of the first section whose title contains one of the
// given keywords (case-insensitive). Titles are checked in sorted order so the
// result is deterministic when several titles match.
func (m SectionMap) Find(keywords ...string) string {
	titles := make([]string, 0, len(m))
	for t := range m {
		titles = append(titles, t)
	}
	sort.Strings(titles)

	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		for _, t := range titles {
			if strings.Contains(strings.ToLower(t), kw) {
				return m[t]
			}
		}
	}
	return ""
}

// NamedLink is a typed link found in the resume text (linkedin, github, website).
type NamedLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Links groups the candidate's online presence.
type Links struct {
	LinkedIn        string      `json:"linkedin"`
	Portfolio       string      `json:"portfolio"`
	AdditionalLinks []NamedLink `json:"additionalLinks"`
}

// PersonalInfo holds contact details extracted from the resume header and body.
// Every field defaults to the empty string when nothing was found.
type PersonalInfo struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	LinkedInURL string `json:"linkedinUrl"`
	WebsiteURL  string `json:"websiteUrl"`
	Location    string `json:"location"`
	JobTitle    string `json:"jobTitle"`
	Links       Links  `json:"links"`
}

// ExperienceEntry is one job entry. Dates are kept as raw strings exactly as
// found in the text; "Present"/"Current" are preserved, never normalized.
type ExperienceEntry struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Description  string   `json:"description"`
	BulletPoints []string `json:"bulletPoints"`
}

// EducationEntry is one education entry.
type EducationEntry struct {
	ID        string `json:"id"`
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ProjectEntry is one project entry. Entries without a name are discarded
// before they reach the result list.
type ProjectEntry struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Link         string   `json:"link"`
	Technologies []string `json:"technologies"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	BulletPoints []string `json:"bulletPoints"`
}

// CertificationEntry is one certification/license entry.
type CertificationEntry struct {
	Name           string `json:"name"`
	Issuer         string `json:"issuer"`
	Date           string `json:"date"`
	ExpirationDate string `json:"expirationDate"`
	CredentialID   string `json:"credentialId"`
}

// ParsedResume is the terminal aggregate produced by the pipeline.
// It is immutable once assembled.
type ParsedResume struct {
	PersonalInfo   PersonalInfo         `json:"personalInfo"`
	Summary        string               `json:"summary"`
	Experiences    []ExperienceEntry    `json:"experiences"`
	Education      []EducationEntry     `json:"education"`
	Skills         []string             `json:"skills"`
	Projects       []ProjectEntry       `json:"projects"`
	Certifications []CertificationEntry `json:"certifications"`
}
