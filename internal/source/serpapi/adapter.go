package serpapi

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/careerpilot/jobmatch/internal/listing"
	"github.com/careerpilot/jobmatch/internal/skills"
)

// jobPayload mirrors the google_jobs result schema.
type jobPayload struct {
	JobID       string `json:"job_id"`
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	ShareLink   string `json:"share_link"`

	DetectedExtensions struct {
		ScheduleType string `json:"schedule_type"`
		WorkFromHome bool   `json:"work_from_home"`
	} `json:"detected_extensions"`

	ApplyOptions []struct {
		Title string `json:"title"`
		Link  string `json:"link"`
	} `json:"apply_options"`
}

// Adapt converts raw google_jobs results into canonical records. SerpAPI
// publishes no structured skills or experience requirement, so required
// skills come from scanning the description and the experience field stays
// absent (full credit downstream).
func Adapt(items []map[string]any, fallbackLocation string) (*listing.Listings, error) {
	var payloads []*jobPayload

	cfg := &mapstructure.DecoderConfig{
		Result:           &payloads,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return &listing.Listings{}, err
	}
	if err := decoder.Decode(items); err != nil {
		return &listing.Listings{}, fmt.Errorf("decoding serpapi items: %w", err)
	}

	records := make([]*listing.Record, 0, len(payloads))
	for _, payload := range payloads {
		records = append(records, payload.toRecord(fallbackLocation))
	}

	return &listing.Listings{Items: records}, nil
}

func (p *jobPayload) toRecord(fallbackLocation string) *listing.Record {
	location := strings.TrimSpace(p.Location)
	if location == "" {
		location = fallbackLocation
	}

	record := &listing.Record{
		SourceID:       p.JobID,
		Title:          p.Title,
		Employer:       p.CompanyName,
		Description:    p.Description,
		RequiredSkills: skills.ExtractFromText(p.Description, skills.KnownSkills()),
		Location:       location,
		IsRemote:       p.isRemote(),
		ApplyURL:       p.applyURL(),
	}

	return record
}

func (p *jobPayload) isRemote() bool {
	if p.DetectedExtensions.WorkFromHome {
		return true
	}
	location := strings.ToLower(p.Location)
	return strings.Contains(location, "remote") || strings.Contains(location, "anywhere")
}

func (p *jobPayload) applyURL() string {
	if len(p.ApplyOptions) > 0 {
		return p.ApplyOptions[0].Link
	}
	return p.ShareLink
}
