package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDateRangePatterns(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		start string
		end   string
	}{
		{"month year range", []string{"January 2020 - March 2022"}, "January 2020", "March 2022"},
		{"month year to present", []string{"Jan 2020 to Present"}, "Jan 2020", "Present"},
		{"numeric month range", []string{"01/2020 - 03/2022"}, "01/2020", "03/2022"},
		{"full date range", []string{"01/15/2020 - 03/01/2022"}, "01/15/2020", "03/01/2022"},
		{"year range", []string{"2014 - 2018"}, "2014", "2018"},
		{"year to present no spaces", []string{"2020-Present"}, "2020", "Present"},
		{"range on later line wins over nothing", []string{"Acme Corp", "June 2018 - December 2020"}, "June 2018", "December 2020"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := extractDateRange(tt.lines)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestExtractDateRangeStandaloneTokens(t *testing.T) {
	// Two standalone tokens become start and end.
	start, end := extractDateRange([]string{"Joined March 2019", "Left May 2021"})
	assert.Equal(t, "March 2019", start)
	assert.Equal(t, "May 2021", end)

	// A single token is a start date only: "Present" is never assumed.
	start, end = extractDateRange([]string{"January 2020"})
	assert.Equal(t, "January 2020", start)
	assert.Equal(t, "", end)

	start, end = extractDateRange([]string{"no dates here"})
	assert.Equal(t, "", start)
	assert.Equal(t, "", end)
}

func TestIsOpenEnded(t *testing.T) {
	for _, raw := range []string{"Present", "current", "Now", "ongoing", "to present"} {
		assert.True(t, isOpenEnded(raw), raw)
	}
	assert.False(t, isOpenEnded("December 2020"))
	assert.False(t, isOpenEnded(""))
}

func TestParseWhen(t *testing.T) {
	tests := []struct {
		raw string
		ok  bool
	}{
		{"January 2020", true},
		{"Jan 2020", true},
		{"01/2020", true},
		{"2018", true},
		{"Present", false},
		{"not a date", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, ok := parseWhen(tt.raw)
			assert.Equal(t, tt.ok, ok)
		})
	}

	early, _ := parseWhen("June 2018")
	late, _ := parseWhen("January 2020")
	assert.True(t, late.After(early))
}

func TestSortExperiencesOrdering(t *testing.T) {
	entries := []ExperienceEntry{
		{ID: "exp-1", EndDate: "May 2017"},
		{ID: "exp-2", EndDate: "Present"},
		{ID: "exp-3", EndDate: "March 2021"},
	}
	sortExperiences(entries)

	assert.Equal(t, "exp-2", entries[0].ID, "open-ended entries sort first")
	assert.Equal(t, "exp-3", entries[1].ID)
	assert.Equal(t, "exp-1", entries[2].ID)
}

func TestSortExperiencesUnparseableDatesAreStable(t *testing.T) {
	entries := []ExperienceEntry{
		{ID: "exp-1", EndDate: "???"},
		{ID: "exp-2", EndDate: "garbage"},
		{ID: "exp-3", EndDate: "also not a date"},
	}
	sortExperiences(entries)

	// Unparseable dates compare equal; the stable sort keeps detection order.
	assert.Equal(t, []string{"exp-1", "exp-2", "exp-3"},
		[]string{entries[0].ID, entries[1].ID, entries[2].ID})
}

func TestIsDateOnlyLine(t *testing.T) {
	assert.True(t, isDateOnlyLine("January 2020"))
	assert.True(t, isDateOnlyLine("June 2018 - December 2020"))
	assert.False(t, isDateOnlyLine("Acme Corp, June 2018"))
	assert.False(t, isDateOnlyLine("Senior Engineer"))
}
