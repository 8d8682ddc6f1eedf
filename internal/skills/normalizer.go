package skills

import (
	"strings"
)

// minTokenLength guards against stray punctuation-only tokens producing matches.
const minTokenLength = 2

// Table maps a canonical skill name to the variant phrases considered
// equivalent to it. The table is immutable after construction: the engine
// never learns new entries at runtime.
type Table map[string][]string

// Normalizer decides whether two free-text skill tokens refer to the same
// competency. It is safe for concurrent use.
type Normalizer struct {
	table Table
}

// NewNormalizer creates a normalizer backed by the provided variation table.
// A nil table disables synonym lookup but keeps exact and containment matching.
func NewNormalizer(table Table) *Normalizer {
	normalized := make(Table, len(table))
	for canonical, variants := range table {
		key := normalizeToken(canonical)
		if key == "" {
			continue
		}
		cleaned := make([]string, 0, len(variants))
		for _, variant := range variants {
			if v := normalizeToken(variant); v != "" {
				cleaned = append(cleaned, v)
			}
		}
		normalized[key] = cleaned
	}

	return &Normalizer{table: normalized}
}

// Matches reports whether the candidate token and the job token refer to the
// same skill. The check is symmetric and never fails: empty or malformed
// tokens simply do not match.
func (n *Normalizer) Matches(a, b string) bool {
	a = normalizeToken(a)
	b = normalizeToken(b)

	if len([]rune(a)) < minTokenLength || len([]rune(b)) < minTokenLength {
		return false
	}

	if a == b {
		return true
	}

	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	return n.variantMatch(a, b) || n.variantMatch(b, a)
}

// variantMatch reports whether canonical is a table key and other
// equals or contains one of its variants.
func (n *Normalizer) variantMatch(canonical, other string) bool {
	variants, ok := n.table[canonical]
	if !ok {
		return false
	}

	for _, variant := range variants {
		if other == variant || strings.Contains(other, variant) || strings.Contains(variant, other) {
			return true
		}
	}

	return false
}

func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
