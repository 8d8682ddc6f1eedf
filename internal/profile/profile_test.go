package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeDeduplicatesAndLowercases(t *testing.T) {
	candidate := &Candidate{
		Skills: []string{"React", "react", "  TypeScript ", "", "SQL", "sql"},
	}

	candidate.Sanitize()

	assert.Equal(t, []string{"react", "typescript", "sql"}, candidate.Skills)
}

func TestPreferredCityStopsAtComma(t *testing.T) {
	candidate := &Candidate{LocationPreference: "Baltimore, MD"}
	assert.Equal(t, "Baltimore", candidate.PreferredCity())

	candidate.LocationPreference = "remote"
	assert.Equal(t, "remote", candidate.PreferredCity())

	candidate.LocationPreference = ""
	assert.Equal(t, "", candidate.PreferredCity())
}

func TestWantsRemote(t *testing.T) {
	assert.True(t, (&Candidate{LocationPreference: "remote"}).WantsRemote())
	assert.True(t, (&Candidate{LocationPreference: " Remote "}).WantsRemote())
	assert.False(t, (&Candidate{LocationPreference: "Baltimore"}).WantsRemote())
}
