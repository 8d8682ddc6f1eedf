// Package scoring computes the 0-100 fit score between a candidate profile
// and a canonical listing. Scoring is deterministic: the same profile,
// listing and synonym table always produce the same result, and no call ever
// fails. Missing listing data resolves to neutral or full-credit defaults so
// every listing receives a score.
package scoring

import (
	"math"
	"strings"

	"github.com/careerpilot/jobmatch/internal/listing"
	"github.com/careerpilot/jobmatch/internal/profile"
	"github.com/careerpilot/jobmatch/internal/skills"
)

// Category weights. Skills are the strongest suitability predictor; location
// is weighted lowest because remote-friendly search already filters most
// mismatches upstream.
const (
	skillsWeight     = 0.4
	roleWeight       = 0.3
	experienceWeight = 0.2
	locationWeight   = 0.1
)

const (
	// neutralSkillsScore applies when a listing exposes no structured
	// skills: absence of data neither penalizes nor counts as a perfect
	// match.
	neutralSkillsScore = 70
	// roleMismatchScore is the partial-credit floor when no target role
	// relates to the listing title.
	roleMismatchScore = 40
	// experienceCloseScore applies when the candidate is within two years
	// below the requirement.
	experienceCloseScore    = 70
	experienceFarScore      = 40
	experienceCloseTolerance = 2
	// locationMismatchScore is never zero: cross-relocation candidates
	// still deserve visibility, just not top ranking.
	locationMismatchScore = 50

	fullScore = 100
)

// maxMatchingSkills caps the matched-skill list to a display-friendly length.
const maxMatchingSkills = 5

// Explanation tier thresholds. UI color-coding relies on the 85/70/50
// boundaries; do not change them without coordinating with consumers.
const (
	tierExcellent = 85
	tierStrong    = 70
	tierGood      = 50
)

const (
	explanationExcellent = "Excellent match! Your skills and experience align perfectly with this role."
	explanationStrong    = "Strong match. You have the core skills, though some secondary requirements may differ."
	explanationGood      = "Good potential. This role matches your target title, but you may need to highlight specific skills."
	explanationPartial   = "Partial match. Consider how your transferable skills could apply to this specific role."
)

// Breakdown carries the per-category sub-scores, each in [0,100].
type Breakdown struct {
	SkillsMatch     int `json:"skills_match"`
	RoleMatch       int `json:"role_match"`
	ExperienceMatch int `json:"experience_match"`
	LocationMatch   int `json:"location_match"`
}

// FitResult is the engine's output for one profile/listing pair.
type FitResult struct {
	Score          int       `json:"score"`
	Explanation    string    `json:"explanation"`
	Breakdown      Breakdown `json:"breakdown"`
	MatchingSkills []string  `json:"matching_skills,omitempty"`
}

// Engine scores listings against a candidate profile using an injected
// skill normalizer. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	normalizer *skills.Normalizer
}

func NewEngine(normalizer *skills.Normalizer) *Engine {
	return &Engine{normalizer: normalizer}
}

// Score computes the weighted fit score for the pair.
func (e *Engine) Score(candidate *profile.Candidate, record *listing.Record) *FitResult {
	skillsMatch, matchingSkills := e.skillsMatch(candidate, record)
	roleMatch := roleMatch(candidate.TargetRoles, record.Title)
	experienceMatch := experienceMatch(candidate.ExperienceYears, record.ExperienceRequiredYears)
	locationMatch := locationMatch(candidate, record)

	weighted := float64(skillsMatch)*skillsWeight +
		float64(roleMatch)*roleWeight +
		float64(experienceMatch)*experienceWeight +
		float64(locationMatch)*locationWeight

	score := clamp(int(math.Round(weighted)))

	return &FitResult{
		Score:       score,
		Explanation: explain(score),
		Breakdown: Breakdown{
			SkillsMatch:     skillsMatch,
			RoleMatch:       roleMatch,
			ExperienceMatch: experienceMatch,
			LocationMatch:   locationMatch,
		},
		MatchingSkills: matchingSkills,
	}
}

// skillsMatch returns the skills sub-score and the candidate skills (in
// candidate order) that matched at least one required skill. A required
// skill counts as matched when the normalizer relates it to any candidate
// skill or when it appears verbatim in the description.
func (e *Engine) skillsMatch(candidate *profile.Candidate, record *listing.Record) (int, []string) {
	if len(record.RequiredSkills) == 0 {
		return neutralSkillsScore, nil
	}

	description := strings.ToLower(record.Description)

	matchedCount := 0
	matchedCandidate := make(map[int]struct{})

	for _, required := range record.RequiredSkills {
		matched := false

		for idx, candidateSkill := range candidate.Skills {
			if e.normalizer.Matches(candidateSkill, required) {
				matched = true
				matchedCandidate[idx] = struct{}{}
			}
		}

		if !matched && required != "" && strings.Contains(description, strings.ToLower(required)) {
			matched = true
		}

		if matched {
			matchedCount++
		}
	}

	score := int(math.Round(float64(fullScore*matchedCount) / float64(len(record.RequiredSkills))))
	if score > fullScore {
		score = fullScore
	}

	matching := make([]string, 0, len(matchedCandidate))
	for idx, candidateSkill := range candidate.Skills {
		if _, ok := matchedCandidate[idx]; ok {
			matching = append(matching, candidateSkill)
			if len(matching) == maxMatchingSkills {
				break
			}
		}
	}
	if len(matching) == 0 {
		matching = nil
	}

	return score, matching
}

func roleMatch(targetRoles []string, title string) int {
	loweredTitle := strings.ToLower(strings.TrimSpace(title))

	for _, role := range targetRoles {
		loweredRole := strings.ToLower(strings.TrimSpace(role))
		if loweredRole == "" || loweredTitle == "" {
			continue
		}
		if strings.Contains(loweredTitle, loweredRole) || strings.Contains(loweredRole, loweredTitle) {
			return fullScore
		}
	}

	return roleMismatchScore
}

func experienceMatch(candidateYears int, requiredYears *int) int {
	if requiredYears == nil {
		// No requirement published means no experience filter, not a
		// zero-year requirement.
		return fullScore
	}

	switch {
	case candidateYears >= *requiredYears:
		return fullScore
	case candidateYears >= *requiredYears-experienceCloseTolerance:
		return experienceCloseScore
	default:
		return experienceFarScore
	}
}

func locationMatch(candidate *profile.Candidate, record *listing.Record) int {
	if candidate.WantsRemote() || record.IsRemote {
		return fullScore
	}

	city := strings.ToLower(candidate.PreferredCity())
	if city == "" {
		// No stated preference means no location constraint.
		return fullScore
	}

	if strings.Contains(strings.ToLower(record.Location), city) {
		return fullScore
	}

	return locationMismatchScore
}

func explain(score int) string {
	switch {
	case score >= tierExcellent:
		return explanationExcellent
	case score >= tierStrong:
		return explanationStrong
	case score >= tierGood:
		return explanationGood
	default:
		return explanationPartial
	}
}

// clamp guards against future weight changes pushing the sum out of range;
// with the current weights the weighted sum of [0,100] values cannot escape
// the interval.
func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > fullScore {
		return fullScore
	}
	return score
}
