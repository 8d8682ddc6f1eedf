package skills

import "strings"

// KnownSkills returns the vocabulary scanned by ExtractFromText. It covers
// the skills most commonly named verbatim inside listing descriptions.
func KnownSkills() []string {
	return []string{
		"react",
		"typescript",
		"node.js",
		"aws",
		"python",
		"sql",
		"docker",
		"javascript",
		"next.js",
		"java",
		"c#",
		"go",
		"kubernetes",
		"customer service",
		"hospitality",
		"nursing",
		"patient care",
		"sales",
		"leadership",
		"project management",
		"data analysis",
		"excel",
		"communication",
		"scheduling",
		"inventory",
	}
}

// ExtractFromText scans free text for occurrences of known skills. It is the
// fallback used by adapters whose provider exposes no structured skill list.
// Matching is case-insensitive substring containment; the returned skills
// keep the vocabulary order.
func ExtractFromText(text string, vocabulary []string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lowered := strings.ToLower(text)

	var found []string
	for _, skill := range vocabulary {
		if strings.Contains(lowered, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}

	return found
}
