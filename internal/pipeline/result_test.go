package pipeline

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpilot/jobmatch/internal/listing"
	"github.com/careerpilot/jobmatch/internal/scoring"
)

func sampleResult() *Result {
	return &Result{
		Query: "nurse",
		Matches: []Match{
			{
				Listing: &listing.Record{
					SourceID: "js-1",
					Title:    "Registered Nurse",
					Employer: "Johns Hopkins",
					Location: "Baltimore, MD",
					ApplyURL: "https://example.com/apply",
					Compensation: &listing.CompensationRange{
						Min: 70000, Max: 90000, Currency: "USD",
					},
				},
				Fit: &scoring.FitResult{Score: 91, Explanation: "Excellent match! Your skills and experience align perfectly with this role."},
			},
			{
				Listing: &listing.Record{SourceID: "js-2", Title: "Night Nurse", Employer: "Johns Hopkins"},
				Fit:     &scoring.FitResult{Score: 74},
			},
			{
				Listing: &listing.Record{SourceID: "sa-1", Title: "Chef"},
				Fit:     &scoring.FitResult{Score: 48},
			},
		},
	}
}

func TestReportByEmployerGroupsMatches(t *testing.T) {
	report := sampleResult().ReportByEmployer()

	entries, ok := report["Johns Hopkins"]
	require.True(t, ok)
	require.Len(t, entries, 2)
	assert.Equal(t, "Registered Nurse", entries[0]["title"])
	assert.Equal(t, "91", entries[0]["score"])
	assert.Equal(t, "70000-90000 USD", entries[0]["salary"])
	assert.Equal(t, "https://example.com/apply", entries[0]["apply_url"])

	unknown, ok := report["(unknown employer)"]
	require.True(t, ok)
	assert.Equal(t, "Chef", unknown[0]["title"])
}

func TestDumpToTmpFileRoundTrips(t *testing.T) {
	result := sampleResult()

	filename, err := result.DumpToTmpFile()
	require.NoError(t, err)
	defer os.Remove(filename)

	data, err := os.ReadFile(filename)
	require.NoError(t, err)

	var decoded Result
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, result.Query, decoded.Query)
	require.Len(t, decoded.Matches, 3)
	assert.Equal(t, 91, decoded.Matches[0].Fit.Score)
}
