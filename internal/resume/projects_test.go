package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractProjectsStructured(t *testing.T) {
	text := `Chess Platform - github.com/jdoe/chess
• Realtime multiplayer chess with spectator mode
• Implemented move validation engine
Weather App (React, TypeScript)
• Displays hourly forecasts`

	p := New(nil)
	entries := p.ExtractProjects(text)
	require.Len(t, entries, 2)

	chess := entries[0]
	assert.Equal(t, "Chess Platform", chess.Name)
	assert.Equal(t, "https://github.com/jdoe/chess", chess.Link)
	assert.Equal(t, []string{
		"Realtime multiplayer chess with spectator mode",
		"Implemented move validation engine",
	}, chess.BulletPoints)
	assert.Empty(t, chess.Technologies)

	weather := entries[1]
	assert.Equal(t, "Weather App", weather.Name)
	assert.Equal(t, []string{"React", "TypeScript"}, weather.Technologies)
	assert.Equal(t, []string{"Displays hourly forecasts"}, weather.BulletPoints)
}

func TestExtractProjectsWithDateRange(t *testing.T) {
	text := `Chess Platform - github.com/jdoe/chess
January 2023 - March 2023
• Realtime multiplayer chess`

	p := New(nil)
	entries := p.ExtractProjects(text)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "Chess Platform", e.Name)
	assert.Equal(t, "January 2023", e.StartDate)
	assert.Equal(t, "March 2023", e.EndDate)
	// The date line feeds the range only; it is not part of the description.
	assert.Equal(t, "", e.Description)
}

// A section with no structural signals falls through to paragraph blocks, and
// a block that opens with a continuation word folds into its predecessor.
func TestExtractProjectsParagraphFallbackAndMerge(t *testing.T) {
	text := `Inventory Tracker
A small warehouse dashboard

using React and Node.js
for internal teams`

	p := New(nil)
	entries := p.ExtractProjects(text)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "Inventory Tracker", e.Name)
	assert.Equal(t, "A small warehouse dashboard using React and Node.js for internal teams", e.Description)
	assert.Equal(t, []string{"React", "Node.js"}, e.Technologies)
}

func TestExtractProjectsEmptyInput(t *testing.T) {
	p := New(nil)
	assert.Empty(t, p.ExtractProjects(""))
}

func TestCleanProjectName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Chess Platform - github.com/jdoe/chess", "Chess Platform"},
		{"Weather App (React, TypeScript)", "Weather App"},
		{"Portfolio Site https://jdoe.dev", "Portfolio Site"},
		{"Budget Tool January 2022 - May 2022", "Budget Tool"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanProjectName(tt.in), tt.in)
	}
}

func TestExtractTechnologies(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"explicit label", "Technologies: React, TypeScript, PostgreSQL", []string{"React", "TypeScript", "PostgreSQL"}},
		{"parenthesized list", "Weather App (React, TypeScript)", []string{"React", "TypeScript"}},
		{"using clause", "built using React and Node.js", []string{"React", "Node.js"}},
		{"keyword fallback", "A Django service backed by PostgreSQL and Redis caching", []string{"Django", "PostgreSQL", "Redis"}},
		{"nothing", "a plain description", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractTechnologies(tt.text))
		})
	}
}

func TestSplitTechList(t *testing.T) {
	assert.Equal(t, []string{"React", "Node.js", "Redis"}, splitTechList("React and Node.js / Redis"))
	assert.Empty(t, splitTechList("  ,  "))
}

func TestMergeProjectFragmentsKeepsDatedEntries(t *testing.T) {
	entries := []ProjectEntry{
		{Name: "Chess Platform"},
		{Name: "using older engine", StartDate: "January 2020"},
	}
	merged := mergeProjectFragments(Nop(), entries)
	// A dated entry is a real entry even when its name reads like a fragment.
	assert.Len(t, merged, 2)
}
