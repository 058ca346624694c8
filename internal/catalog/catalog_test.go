package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDomain(t *testing.T) {
	require.Equal(t, "General", NormalizeDomain(""))
	require.Equal(t, "Healthcare", NormalizeDomain("healthcare"))
	require.Equal(t, "Healthcare", NormalizeDomain("HEALTHCARE"))
	require.Equal(t, "E-Commerce", NormalizeDomain("ecommerce"))
	require.Equal(t, "Finance", NormalizeDomain("Finance"))
	require.Equal(t, "Banking", NormalizeDomain("banking"))
	require.Equal(t, "Business", NormalizeDomain("business"))

	// Unrecognized domains pass through unchanged
	require.Equal(t, "Agriculture", NormalizeDomain("Agriculture"))
}

func TestNormalizeType(t *testing.T) {
	require.Equal(t, "Mini Project", NormalizeType(""))
	require.Equal(t, "Mini Project", NormalizeType("mini"))
	require.Equal(t, "Mini Project", NormalizeType("Mini Project"))
	require.Equal(t, "Final Project", NormalizeType("final year project"))
	require.Equal(t, "Hackathon Project", NormalizeType("HACKATHON"))
	require.Equal(t, "Capstone", NormalizeType("Capstone"))
}

func TestNormalizeSkillLevel(t *testing.T) {
	require.Equal(t, "beginner", NormalizeSkillLevel("beginner"))
	require.Equal(t, "intermediate", NormalizeSkillLevel("Intermediate"))
	require.Equal(t, "advanced", NormalizeSkillLevel("ADVANCED"))
	require.Equal(t, "beginner", NormalizeSkillLevel(""))
	require.Equal(t, "beginner", NormalizeSkillLevel("expert"))
}

func TestFilter_MatchesDomainTypeAndTag(t *testing.T) {
	got := Filter("Healthcare", "Mini Project", "beginner")
	require.NotEmpty(t, got)
	for _, tpl := range got {
		require.Equal(t, "Healthcare", tpl.Domain)
		require.Equal(t, "Mini Project", tpl.Type)
		require.True(t, tpl.HasSkillTag("beginner"))
	}
}

func TestFilter_CaseInsensitive(t *testing.T) {
	lower := Filter("healthcare", "mini project", "beginner")
	canonical := Filter("Healthcare", "Mini Project", "beginner")
	require.Equal(t, canonical, lower)
}

func TestFilter_NoMatches(t *testing.T) {
	require.Empty(t, Filter("Healthcare", "Hackathon Project", "beginner"))
	require.Empty(t, Filter("Agriculture", "Mini Project", "beginner"))
}

func TestFindByID(t *testing.T) {
	tpl, ok := FindByID(101)
	require.True(t, ok)
	require.Equal(t, 101, tpl.ID)
	require.Equal(t, "Healthcare", tpl.Domain)

	_, ok = FindByID(999)
	require.False(t, ok)
}

func TestCatalog_UniqueIDs(t *testing.T) {
	seen := make(map[int]bool)
	for _, tpl := range All() {
		require.False(t, seen[tpl.ID], "duplicate template id %d", tpl.ID)
		seen[tpl.ID] = true
		require.NotEmpty(t, tpl.Title)
		require.NotEmpty(t, tpl.SkillTags)
	}
}
