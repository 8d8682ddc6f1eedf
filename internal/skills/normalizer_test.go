package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesExactCaseInsensitive(t *testing.T) {
	n := NewNormalizer(DefaultTable())

	assert.True(t, n.Matches("React", "react"))
	assert.True(t, n.Matches("  sql ", "SQL"))
}

func TestMatchesSubstringBothDirections(t *testing.T) {
	n := NewNormalizer(DefaultTable())

	assert.True(t, n.Matches("react", "react.js"))
	assert.True(t, n.Matches("react.js", "react"))
}

func TestMatchesViaVariantGroup(t *testing.T) {
	n := NewNormalizer(DefaultTable())

	assert.True(t, n.Matches("hospitality", "front desk"))
	assert.True(t, n.Matches("front desk", "hospitality"))
	assert.True(t, n.Matches("customer service", "guest service"))
}

func TestMatchesIsSymmetric(t *testing.T) {
	n := NewNormalizer(DefaultTable())

	pairs := [][2]string{
		{"hospitality", "hotel"},
		{"react", "react.js"},
		{"nursing", "patient care"},
		{"python", "java"},
		{"", "react"},
	}

	for _, pair := range pairs {
		assert.Equal(t, n.Matches(pair[0], pair[1]), n.Matches(pair[1], pair[0]),
			"matches(%q, %q) must be symmetric", pair[0], pair[1])
	}
}

func TestMatchesRejectsShortTokens(t *testing.T) {
	n := NewNormalizer(DefaultTable())

	assert.False(t, n.Matches("r", "react"))
	assert.False(t, n.Matches("react", "."))
	assert.False(t, n.Matches("", ""))
}

func TestMatchesNoFalsePositiveAcrossGroups(t *testing.T) {
	n := NewNormalizer(DefaultTable())

	assert.False(t, n.Matches("nursing", "hotel"))
	assert.False(t, n.Matches("python", "hospitality"))
}

func TestNewNormalizerCustomTable(t *testing.T) {
	n := NewNormalizer(Table{
		"welding": {"mig", "tig"},
	})

	assert.True(t, n.Matches("welding", "tig"))
	assert.False(t, n.Matches("welding", "front desk"))
}

func TestTableMergeAppendsVariants(t *testing.T) {
	table := DefaultTable().Merge(Table{
		"hospitality":      {"innkeeping"},
		"forklift driving": {"forklift"},
	})

	n := NewNormalizer(table)

	assert.True(t, n.Matches("hospitality", "innkeeping"))
	assert.True(t, n.Matches("hospitality", "hotel"))
	assert.True(t, n.Matches("forklift driving", "forklift"))
}
