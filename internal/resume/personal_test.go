package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleHeader = `John Doe
Senior Software Engineer
john.doe@example.com | (555) 123-4567
linkedin.com/in/jdoe | github.com/jdoe | jdoe.dev`

func TestExtractEmail(t *testing.T) {
	assert.Equal(t, "john.doe@example.com", ExtractEmail(sampleHeader))
	assert.Equal(t, "", ExtractEmail("no contact details"))
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"(555) 123-4567", "(555) 123-4567"},
		{"call me at 555-123-4567 anytime", "555-123-4567"},
		{"+1 555 123 4567", "+1 555 123 4567"},
		{"no phone here", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractPhone(tt.text), tt.text)
	}
}

func TestExtractLinkedIn(t *testing.T) {
	assert.Equal(t, "https://linkedin.com/in/jdoe", ExtractLinkedIn(sampleHeader))
	assert.Equal(t, "https://www.linkedin.com/pub/jane-doe/1/2/3",
		ExtractLinkedIn("see www.linkedin.com/pub/jane-doe/1/2/3"))
	assert.Equal(t, "", ExtractLinkedIn("github.com/jdoe"))
}

func TestExtractAllLinksTyping(t *testing.T) {
	links := ExtractAllLinks(sampleHeader)

	byName := map[string]string{}
	for _, l := range links {
		byName[l.Name] = l.URL
	}
	assert.Equal(t, "https://linkedin.com/in/jdoe", byName["linkedin"])
	assert.Equal(t, "https://github.com/jdoe", byName["github"])
	assert.Equal(t, "https://jdoe.dev", byName["website"])
	assert.Len(t, links, 3)
}

func TestExtractWebsiteIgnoresEmailDomains(t *testing.T) {
	// The mail domain must not be reported as a personal site.
	assert.Equal(t, "", ExtractWebsite("reach me at jane@gmail.com"))
	assert.Equal(t, "https://jane.io", ExtractWebsite("jane@gmail.com / jane.io"))
}

func TestExtractWebsiteExcludesSocialDomains(t *testing.T) {
	assert.Equal(t, "", ExtractWebsite("linkedin.com/in/jdoe twitter.com/jdoe"))
}

func TestExtractName(t *testing.T) {
	assert.Equal(t, "John Doe", extractName(sampleHeader))

	// Section headings in the first lines are skipped, not mistaken for names.
	assert.Equal(t, "Jane O'Neill", extractName("SUMMARY\nJane O'Neill\njane@x.com"))

	// Nothing name-like in the window.
	assert.Equal(t, "", extractName("john@example.com\n555-123-4567"))
}

func TestExtractLocation(t *testing.T) {
	summary := "Seasoned backend developer based in Austin, TX focused on distributed systems."
	assert.Equal(t, "Austin, TX", extractLocation(summary))
	assert.Equal(t, "", extractLocation("no location in this sentence"))
}

func TestGuessJobTitle(t *testing.T) {
	// The most recent experience wins over the vocabulary scan.
	exps := []ExperienceEntry{{Position: "Staff Engineer"}}
	assert.Equal(t, "Staff Engineer", guessJobTitle(sampleHeader, exps))

	// Fallback: first known title appearing verbatim.
	assert.Equal(t, "Senior Software Engineer", guessJobTitle(sampleHeader, nil))
	assert.Equal(t, "", guessJobTitle("no titles here", nil))
}

func TestExtractPersonalInfo(t *testing.T) {
	p := New(nil)
	info := p.ExtractPersonalInfo(sampleHeader, nil)

	assert.Equal(t, "John Doe", info.Name)
	assert.Equal(t, "john.doe@example.com", info.Email)
	assert.Equal(t, "(555) 123-4567", info.Phone)
	assert.Equal(t, "Senior Software Engineer", info.JobTitle)

	// Typed links land in their dedicated fields; the rest collect in
	// AdditionalLinks.
	assert.Equal(t, "https://linkedin.com/in/jdoe", info.LinkedInURL)
	assert.Equal(t, "https://linkedin.com/in/jdoe", info.Links.LinkedIn)
	assert.Equal(t, "https://jdoe.dev", info.WebsiteURL)
	assert.Equal(t, "https://jdoe.dev", info.Links.Portfolio)
	assert.Equal(t, []NamedLink{{Name: "github", URL: "https://github.com/jdoe"}},
		info.Links.AdditionalLinks)
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "https://jdoe.dev", normalizeURL("jdoe.dev/"))
	assert.Equal(t, "http://jdoe.dev", normalizeURL("http://jdoe.dev"))
	assert.Equal(t, "", normalizeURL("  "))
}
