package jsearch

import (
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/careerpilot/jobmatch/internal/listing"
)

// jobPayload mirrors the JSearch item schema. Fields the engine does not
// consume are omitted.
type jobPayload struct {
	JobID             string   `json:"job_id"`
	JobTitle          string   `json:"job_title"`
	EmployerName      string   `json:"employer_name"`
	JobDescription    string   `json:"job_description"`
	JobCity           string   `json:"job_city"`
	JobState          string   `json:"job_state"`
	JobCountry        string   `json:"job_country"`
	JobIsRemote       bool     `json:"job_is_remote"`
	JobApplyLink      string   `json:"job_apply_link"`
	JobMinSalary      float64  `json:"job_min_salary"`
	JobMaxSalary      float64  `json:"job_max_salary"`
	JobSalaryCurrency string   `json:"job_salary_currency"`
	JobPostedAt       int64    `json:"job_posted_at_timestamp"`
	JobRequiredSkills []string `json:"job_required_skills"`

	JobRequiredExperience struct {
		NoExperienceRequired       bool `json:"no_experience_required"`
		RequiredExperienceInMonths int  `json:"required_experience_in_months"`
	} `json:"job_required_experience"`
}

// Adapt converts raw JSearch items into canonical records. A payload that
// cannot be decoded yields an empty collection and an error; it never
// panics. The fallbackLocation fills records whose payload carries no
// location of its own.
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
		return &listing.Listings{}, fmt.Errorf("decoding jsearch items: %w", err)
	}

	records := make([]*listing.Record, 0, len(payloads))
	for _, payload := range payloads {
		records = append(records, payload.toRecord(fallbackLocation))
	}

	return &listing.Listings{Items: records}, nil
}

func (p *jobPayload) toRecord(fallbackLocation string) *listing.Record {
	record := &listing.Record{
		SourceID:       p.JobID,
		Title:          p.JobTitle,
		Employer:       p.EmployerName,
		Description:    p.JobDescription,
		RequiredSkills: p.JobRequiredSkills,
		Location:       p.location(fallbackLocation),
		IsRemote:       p.JobIsRemote,
		ApplyURL:       p.JobApplyLink,
	}

	// An absent requirement means "no experience filter", which the scorer
	// treats as full credit. Only an explicit positive requirement is kept.
	if months := p.JobRequiredExperience.RequiredExperienceInMonths; months > 0 && !p.JobRequiredExperience.NoExperienceRequired {
		years := months / 12
		record.ExperienceRequiredYears = &years
	}

	if p.JobMinSalary > 0 || p.JobMaxSalary > 0 {
		record.Compensation = &listing.CompensationRange{
			Min:      int(p.JobMinSalary),
			Max:      int(p.JobMaxSalary),
			Currency: p.JobSalaryCurrency,
		}
	}

	if p.JobPostedAt > 0 {
		postedAt := time.Unix(p.JobPostedAt, 0).UTC()
		record.PostedAt = &postedAt
	}

	return record
}

func (p *jobPayload) location(fallback string) string {
	parts := make([]string, 0, 2)
	if p.JobCity != "" {
		parts = append(parts, p.JobCity)
	}
	if p.JobState != "" {
		parts = append(parts, p.JobState)
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	if p.JobCountry != "" {
		return p.JobCountry
	}
	if fallback != "" {
		return fallback
	}
	return "Remote"
}
