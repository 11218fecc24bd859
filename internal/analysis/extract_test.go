package analysis

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/taxonomy"
)

func TestExtractSkillsAndKeywords_WholeWordOnly(t *testing.T) {
	tax := taxonomy.Default()

	skills, _ := ExtractSkillsAndKeywords(tax, "I worked at Google on search")
	for _, s := range skills {
		assert.NotEqual(t, "Go", s.Skill, "Go must not match inside Google")
	}

	skills, _ = ExtractSkillsAndKeywords(tax, "I write Go services")
	require.Len(t, skills, 1)
	assert.Equal(t, "Go", skills[0].Skill)
	assert.Equal(t, "programming", skills[0].Category)
}

func TestExtractSkillsAndKeywords_ConfidenceSaturation(t *testing.T) {
	tax := taxonomy.Default()

	expected := []float64{0.2, 0.4, 0.6, 0.8, 1.0, 1.0}
	for occurrences := 1; occurrences <= 6; occurrences++ {
		text := strings.TrimSpace(strings.Repeat("Python ", occurrences))
		skills, _ := ExtractSkillsAndKeywords(tax, text)
		require.Len(t, skills, 1, "occurrences=%d", occurrences)
		assert.InDelta(t, expected[occurrences-1], skills[0].Confidence, 1e-9,
			"confidence for %d occurrences", occurrences)
	}
}

func TestExtractSkillsAndKeywords_TaxonomyEnumerationOrder(t *testing.T) {
	tax := taxonomy.Default()

	// Mention skills in reverse taxonomy order; output must still follow
	// taxonomy order (category then skill), not discovery order.
	skills, _ := ExtractSkillsAndKeywords(tax, "Leadership Docker MongoDB React Python")

	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Skill
	}
	assert.Equal(t, []string{"Python", "React", "MongoDB", "Docker", "Leadership"}, names)
}

func TestExtractSkillsAndKeywords_SpecialCharacterSkills(t *testing.T) {
	tax := taxonomy.Default()

	skills, _ := ExtractSkillsAndKeywords(tax, "Shipped C++ and C# services")

	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Skill
	}
	assert.Contains(t, names, "C++")
	assert.Contains(t, names, "C#")
	// "C" also fires: "+" and "#" are not word characters, so the C in
	// C++ and C# sits on a word boundary
	assert.Contains(t, names, "C")
}

func TestExtractSkillsAndKeywords_KeywordPassSpansWholeVocabulary(t *testing.T) {
	tax := taxonomy.Default()

	_, keywords := ExtractSkillsAndKeywords(tax, "Python Python git")

	require.Len(t, keywords, 2)
	assert.Equal(t, "Python", keywords[0].Keyword)
	assert.Equal(t, 2, keywords[0].Count)
	assert.Equal(t, "Git", keywords[1].Keyword)
	assert.Equal(t, 1, keywords[1].Count)
}

func TestExtractSkillsAndKeywords_KeywordCapKeepsTaxonomyOrder(t *testing.T) {
	tax := taxonomy.Default()

	// Mention more than 20 vocabulary entries; the list is cut to the first
	// 20 in taxonomy order, regardless of per-keyword counts.
	var sb strings.Builder
	all := tax.AllSkills()
	for i := 0; i < 25; i++ {
		sb.WriteString(all[i])
		sb.WriteString(" ")
	}
	// inflate the count of a late entry; it must still be cut, not promoted
	for i := 0; i < 10; i++ {
		sb.WriteString(all[24])
		sb.WriteString(" ")
	}

	_, keywords := ExtractSkillsAndKeywords(tax, sb.String())

	require.Len(t, keywords, 20)
	for i, kw := range keywords {
		assert.Equal(t, all[i], kw.Keyword, fmt.Sprintf("keyword %d out of taxonomy order", i))
	}
}

func TestExtractSkillsAndKeywords_EmptyText(t *testing.T) {
	tax := taxonomy.Default()

	skills, keywords := ExtractSkillsAndKeywords(tax, "")

	assert.Empty(t, skills)
	assert.Empty(t, keywords)
}
