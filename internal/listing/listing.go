package listing

import (
	"encoding/json"
	"os"
	"strings"
	"time"
)

// CompensationRange is the advertised salary span for a listing.
type CompensationRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// Record is the canonical, provider-agnostic representation of a job
// listing. Every source adapter produces this shape and nothing downstream
// ever sees provider-specific payloads. A Record is constructed once per raw
// payload and never mutated afterwards; scoring results are attached as a
// separate annotation by the pipeline.
type Record struct {
	SourceID                string             `json:"source_id"`
	Title                   string             `json:"title"`
	Employer                string             `json:"employer"`
	Description             string             `json:"description,omitempty"`
	RequiredSkills          []string           `json:"required_skills,omitempty"`
	ExperienceRequiredYears *int               `json:"experience_required_years,omitempty"`
	Location                string             `json:"location"`
	IsRemote                bool               `json:"is_remote"`
	Compensation            *CompensationRange `json:"compensation,omitempty"`
	PostedAt                *time.Time         `json:"posted_at,omitempty"`
	ApplyURL                string             `json:"apply_url,omitempty"`
}

// DedupKey identifies the real-world posting behind the record. Two records
// sharing a key are the same posting published via different providers.
func (r *Record) DedupKey() string {
	return normalize(r.Title) + "|" + normalize(r.Employer)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Listings is an ordered collection of records. Order expresses source
// priority: callers concatenate adapter outputs in the order duplicates
// should be resolved.
type Listings struct {
	Items []*Record
}

func (l *Listings) Len() int {
	return len(l.Items)
}

// Append adds the other collection's records after the receiver's own,
// preserving both orders.
func (l *Listings) Append(other *Listings) {
	if other == nil {
		return
	}
	l.Items = append(l.Items, other.Items...)
}

// Dedupe collapses records sharing a DedupKey. The first-seen record wins
// and later duplicates are discarded, so the result is input-order stable
// and the operation is idempotent.
func (l *Listings) Dedupe() *Listings {
	seen := make(map[string]struct{}, len(l.Items))
	kept := make([]*Record, 0, len(l.Items))

	for _, record := range l.Items {
		key := record.DedupKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, record)
	}

	return &Listings{Items: kept}
}

// DumpToTmpFile writes the collection as indented JSON to a temporary file
// and returns its name.
func (l *Listings) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "listings_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return "", err
	}
	return file.Name(), nil
}
