// Package profile holds the candidate attributes the scoring engine matches
// listings against. The data originates from the user's stored profile and
// LLM resume extraction; both are external collaborators here.
package profile

import "strings"

// Candidate is the searcher's stated and extracted attributes. Skills and
// TargetRoles may be empty; the scoring engine degrades to its neutral
// defaults instead of failing.
type Candidate struct {
	Skills             []string `mapstructure:"skills" json:"skills"`
	ExperienceYears    int      `mapstructure:"experience-years" json:"experience_years" validate:"min=0"`
	TargetRoles        []string `mapstructure:"target-roles" json:"target_roles"`
	LocationPreference string   `mapstructure:"location-preference" json:"location_preference"`
}

// Sanitize lower-cases and de-duplicates skills while preserving first-seen
// order. Multiple extraction passes over the same resume commonly produce
// duplicate entries; scoring treats skill order as irrelevant but the
// matching-skills output reuses it for display.
func (c *Candidate) Sanitize() {
	seen := make(map[string]struct{}, len(c.Skills))
	cleaned := make([]string, 0, len(c.Skills))

	for _, skill := range c.Skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		cleaned = append(cleaned, skill)
	}

	c.Skills = cleaned
	c.LocationPreference = strings.TrimSpace(c.LocationPreference)
}

// PreferredCity returns the city/region token of the location preference:
// the substring before the first comma, trimmed. Empty when no preference
// is set.
func (c *Candidate) PreferredCity() string {
	city, _, _ := strings.Cut(c.LocationPreference, ",")
	return strings.TrimSpace(city)
}

// WantsRemote reports whether the candidate asked for remote work.
func (c *Candidate) WantsRemote() bool {
	return strings.EqualFold(strings.TrimSpace(c.LocationPreference), "remote")
}
