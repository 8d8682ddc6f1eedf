package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/careerpilot/jobmatch/internal/listing"
	"github.com/careerpilot/jobmatch/internal/scoring"
)

// Match pairs a retained listing with its fit annotation. The listing itself
// is never mutated by scoring.
type Match struct {
	Listing *listing.Record    `json:"listing"`
	Fit     *scoring.FitResult `json:"fit"`
}

// Result is the ranked outcome of one search.
type Result struct {
	Query       string       `json:"query"`
	Location    string       `json:"location,omitempty"`
	Matches     []Match      `json:"matches"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

func (r *Result) Len() int {
	return len(r.Matches)
}

// ReportByEmployer groups the ranked matches by employer for compact
// console reporting.
func (r *Result) ReportByEmployer() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, match := range r.Matches {
		key := match.Listing.Employer
		if key == "" {
			key = "(unknown employer)"
		}

		entry := map[string]string{
			"title":       match.Listing.Title,
			"location":    match.Listing.Location,
			"source_id":   match.Listing.SourceID,
			"score":       fmt.Sprintf("%d", match.Fit.Score),
			"explanation": match.Fit.Explanation,
		}
		if match.Listing.ApplyURL != "" {
			entry["apply_url"] = match.Listing.ApplyURL
		}
		if match.Listing.Compensation != nil {
			entry["salary"] = fmt.Sprintf("%d-%d %s",
				match.Listing.Compensation.Min,
				match.Listing.Compensation.Max,
				match.Listing.Compensation.Currency,
			)
		}

		report[key] = append(report[key], entry)
	}
	return report
}

// DumpToTmpFile writes the full result as indented JSON to a temporary file
// and returns its name.
func (r *Result) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "matches_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
