package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractExperiencesTwoEntries(t *testing.T) {
	text := `Senior Software Engineer
Acme Corporation | San Francisco, CA
January 2021 - Present
• Led migration to Kubernetes
• Reduced deploy time by 80%
Software Engineer
Globex Inc
June 2018 - December 2020
• Developed internal tooling`

	p := New(nil)
	entries := p.ExtractExperiences(text)
	require.Len(t, entries, 2)

	current := entries[0]
	assert.Equal(t, "Senior Software Engineer", current.Position)
	assert.Equal(t, "Acme Corporation", current.Company)
	assert.Equal(t, "January 2021", current.StartDate)
	assert.Equal(t, "Present", current.EndDate)
	assert.Equal(t, []string{
		"Led migration to Kubernetes",
		"Reduced deploy time by 80%",
	}, current.BulletPoints)

	previous := entries[1]
	assert.Equal(t, "Software Engineer", previous.Position)
	assert.Equal(t, "Globex Inc", previous.Company)
	assert.Equal(t, "June 2018", previous.StartDate)
	assert.Equal(t, "December 2020", previous.EndDate)
	assert.Equal(t, []string{"Developed internal tooling"}, previous.BulletPoints)
}

// A compact single-job layout must come back as one entry, not split at the
// date line, and the combined header line must split into position and company.
func TestExtractExperiencesSingleCompactEntry(t *testing.T) {
	text := `Senior Engineer, Acme Corp
January 2020
- Built a thing`

	p := New(nil)
	entries := p.ExtractExperiences(text)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "Senior Engineer", e.Position)
	assert.Equal(t, "Acme Corp", e.Company)
	assert.Equal(t, "January 2020", e.StartDate)
	assert.Equal(t, "", e.EndDate, "a lone date is a start date, never an assumed range")
	assert.Equal(t, []string{"Built a thing"}, e.BulletPoints)
}

func TestExtractExperiencesSortsCurrentFirst(t *testing.T) {
	text := `Software Engineer
Globex Inc
June 2018 - December 2020
• Developed internal tooling
Senior Software Engineer
Acme Corporation | San Francisco, CA
January 2021 - Present
• Led migration to Kubernetes`

	p := New(nil)
	entries := p.ExtractExperiences(text)
	require.Len(t, entries, 2)

	assert.Equal(t, "Present", entries[0].EndDate)
	assert.Equal(t, "Acme Corporation", entries[0].Company)
	assert.Equal(t, "Globex Inc", entries[1].Company)
}

func TestExtractExperiencesEmptyInput(t *testing.T) {
	p := New(nil)
	assert.Empty(t, p.ExtractExperiences(""))
	assert.Empty(t, p.ExtractExperiences("\n  \n"))
}

func TestExperienceBoundaryRules(t *testing.T) {
	tests := []struct {
		name  string
		feats []LineFeatures
		want  []int
	}{
		{
			"title plus date opens",
			[]LineFeatures{{HasJobTitle: true, HasDate: true}},
			[]int{0},
		},
		{
			"title followed by company opens",
			[]LineFeatures{{HasJobTitle: true}, {HasCompany: true}},
			[]int{0},
		},
		{
			"company plus date opens",
			[]LineFeatures{{HasCompany: true, HasDate: true}},
			[]int{0},
		},
		{
			"signal after two bullets opens",
			[]LineFeatures{
				{HasJobTitle: true, HasDate: true},
				{IsBullet: true},
				{IsBullet: true},
				{HasCompany: true},
			},
			[]int{0, 3},
		},
		{
			"bullets never open",
			[]LineFeatures{{IsBullet: true, HasJobTitle: true, HasDate: true}},
			nil,
		},
		{
			"lone title does not open",
			[]LineFeatures{{HasJobTitle: true}, {}},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, experienceBoundaries(tt.feats))
		})
	}
}

func TestCleanHeaderLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme Corporation | San Francisco, CA", "Acme Corporation"},
		{"Software Engineer June 2018 - December 2020", "Software Engineer"},
		{"Globex Inc", "Globex Inc"},
		{"Acme | Platform Team", "Acme | Platform Team"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanHeaderLine(tt.in), tt.in)
	}
}

func TestSplitPositionCompany(t *testing.T) {
	tests := []struct {
		in       string
		position string
		company  string
	}{
		{"Senior Engineer, Acme Corp", "Senior Engineer", "Acme Corp"},
		{"Developer | Globex", "Developer", "Globex"},
		{"Engineer at Initech", "Engineer", "Initech"},
		{"Consultant for Umbrella Group", "Consultant", "Umbrella Group"},
		{"Freelance Designer", "Freelance Designer", ""},
	}
	for _, tt := range tests {
		pos, co := splitPositionCompany(tt.in)
		assert.Equal(t, tt.position, pos, tt.in)
		assert.Equal(t, tt.company, co, tt.in)
	}
}
