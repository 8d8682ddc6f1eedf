package serpapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptExtractsSkillsFromDescription(t *testing.T) {
	items := []map[string]any{
		{
			"job_id":       "xyz",
			"title":        "Frontend Developer",
			"company_name": "Acme",
			"location":     "Baltimore, MD",
			"description":  "We need React and TypeScript experience, AWS a plus.",
			"share_link":   "https://example.com/share",
		},
	}

	listings, err := Adapt(items, "")

	require.NoError(t, err)
	require.Equal(t, 1, listings.Len())

	record := listings.Items[0]
	assert.Equal(t, "xyz", record.SourceID)
	assert.Equal(t, "Acme", record.Employer)
	assert.Contains(t, record.RequiredSkills, "react")
	assert.Contains(t, record.RequiredSkills, "typescript")
	assert.Contains(t, record.RequiredSkills, "aws")
	assert.Equal(t, "https://example.com/share", record.ApplyURL)
	assert.Nil(t, record.ExperienceRequiredYears)
}

func TestAdaptRemoteDetection(t *testing.T) {
	items := []map[string]any{
		{"job_id": "1", "title": "A", "detected_extensions": map[string]any{"work_from_home": true}},
		{"job_id": "2", "title": "B", "location": "Anywhere"},
		{"job_id": "3", "title": "C", "location": "Remote, US"},
		{"job_id": "4", "title": "D", "location": "Baltimore, MD"},
	}

	listings, err := Adapt(items, "")

	require.NoError(t, err)
	assert.True(t, listings.Items[0].IsRemote)
	assert.True(t, listings.Items[1].IsRemote)
	assert.True(t, listings.Items[2].IsRemote)
	assert.False(t, listings.Items[3].IsRemote)
}

func TestAdaptPrefersApplyOptionLink(t *testing.T) {
	items := []map[string]any{
		{
			"job_id":     "1",
			"title":      "A",
			"share_link": "https://example.com/share",
			"apply_options": []any{
				map[string]any{"title": "Company site", "link": "https://example.com/direct"},
			},
		},
	}

	listings, err := Adapt(items, "")

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/direct", listings.Items[0].ApplyURL)
}

func TestAdaptLocationFallback(t *testing.T) {
	items := []map[string]any{
		{"job_id": "1", "title": "A"},
	}

	listings, err := Adapt(items, "Denver, CO")

	require.NoError(t, err)
	assert.Equal(t, "Denver, CO", listings.Items[0].Location)
}

func TestAdaptMalformedPayloadReturnsEmpty(t *testing.T) {
	items := []map[string]any{
		{"apply_options": "not-a-list"},
	}

	listings, err := Adapt(items, "")

	require.Error(t, err)
	assert.Equal(t, 0, listings.Len())
}
