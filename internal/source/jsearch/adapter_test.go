package jsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptFullPayload(t *testing.T) {
	items := []map[string]any{
		{
			"job_id":                  "abc123",
			"job_title":               "Senior Frontend Developer",
			"employer_name":           "Acme",
			"job_description":         "Build UIs with React and TypeScript",
			"job_city":                "Baltimore",
			"job_state":               "MD",
			"job_is_remote":           true,
			"job_apply_link":          "https://example.com/apply",
			"job_min_salary":          float64(90000),
			"job_max_salary":          float64(120000),
			"job_salary_currency":     "USD",
			"job_posted_at_timestamp": float64(1717200000),
			"job_required_skills":     []any{"react", "typescript"},
			"job_required_experience": map[string]any{
				"no_experience_required":        false,
				"required_experience_in_months": float64(48),
			},
		},
	}

	listings, err := Adapt(items, "Chicago, IL")

	require.NoError(t, err)
	require.Equal(t, 1, listings.Len())

	record := listings.Items[0]
	assert.Equal(t, "abc123", record.SourceID)
	assert.Equal(t, "Senior Frontend Developer", record.Title)
	assert.Equal(t, "Acme", record.Employer)
	assert.Equal(t, "Baltimore, MD", record.Location)
	assert.True(t, record.IsRemote)
	assert.Equal(t, []string{"react", "typescript"}, record.RequiredSkills)

	require.NotNil(t, record.ExperienceRequiredYears)
	assert.Equal(t, 4, *record.ExperienceRequiredYears)

	require.NotNil(t, record.Compensation)
	assert.Equal(t, 90000, record.Compensation.Min)
	assert.Equal(t, 120000, record.Compensation.Max)
	assert.Equal(t, "USD", record.Compensation.Currency)

	require.NotNil(t, record.PostedAt)
	assert.Equal(t, int64(1717200000), record.PostedAt.Unix())
}

func TestAdaptMissingExperienceMeansNoFilter(t *testing.T) {
	items := []map[string]any{
		{
			"job_id":        "1",
			"job_title":     "Nurse",
			"employer_name": "Johns Hopkins",
		},
	}

	listings, err := Adapt(items, "")

	require.NoError(t, err)
	require.Equal(t, 1, listings.Len())
	assert.Nil(t, listings.Items[0].ExperienceRequiredYears)
	assert.Nil(t, listings.Items[0].Compensation)
	assert.Nil(t, listings.Items[0].PostedAt)
}

func TestAdaptLocationFallbacks(t *testing.T) {
	items := []map[string]any{
		{"job_id": "1", "job_title": "A", "job_country": "US"},
		{"job_id": "2", "job_title": "B"},
		{"job_id": "3", "job_title": "C", "job_city": "Austin"},
	}

	listings, err := Adapt(items, "Denver, CO")

	require.NoError(t, err)
	assert.Equal(t, "US", listings.Items[0].Location)
	assert.Equal(t, "Denver, CO", listings.Items[1].Location)
	assert.Equal(t, "Austin", listings.Items[2].Location)
}

func TestAdaptMalformedPayloadReturnsEmpty(t *testing.T) {
	items := []map[string]any{
		{"job_required_experience": "not-an-object"},
	}

	listings, err := Adapt(items, "")

	require.Error(t, err)
	assert.Equal(t, 0, listings.Len())
}

func TestAdaptEmptyInput(t *testing.T) {
	listings, err := Adapt(nil, "")

	require.NoError(t, err)
	assert.Equal(t, 0, listings.Len())
}
