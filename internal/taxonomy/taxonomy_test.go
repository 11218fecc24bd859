package taxonomy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsEmbeddedConfig(t *testing.T) {
	tax := Default()

	require.Len(t, tax.Categories, 6)
	assert.Equal(t, "programming", tax.Categories[0].Name)
	assert.Equal(t, "soft_skills", tax.Categories[5].Name)

	assert.Contains(t, tax.Categories[0].Skills, "Go")
	assert.Contains(t, tax.Categories[0].Skills, "C++")
	assert.Contains(t, tax.Categories[0].Skills, "C#")

	require.NotEmpty(t, tax.Sections.Contact)
	require.NotEmpty(t, tax.Sections.Experience)
	require.NotEmpty(t, tax.Sections.Education)
	require.NotEmpty(t, tax.Sections.Skills)
	require.NotEmpty(t, tax.Sections.Projects)
}

func TestAllSkills_FlattensInDeclarationOrder(t *testing.T) {
	tax, err := Parse([]byte(`{
		"categories": [
			{"name": "first", "skills": ["A", "B"]},
			{"name": "second", "skills": ["C"]}
		],
		"sections": {
			"contact": ["email"],
			"experience": ["experience"],
			"education": ["education"],
			"skills": ["skills"],
			"projects": ["projects"]
		}
	}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, tax.AllSkills())
	assert.Equal(t, 3, tax.SkillCount())
}

func TestAllSkills_CachedViewIsStable(t *testing.T) {
	tax := Default()

	first := tax.AllSkills()
	second := tax.AllSkills()

	assert.Equal(t, first, second)
	// same backing array, computed once
	assert.Same(t, &first[0], &second[0])
}

func TestParse_RejectsMissingSections(t *testing.T) {
	_, err := Parse([]byte(`{
		"categories": [{"name": "x", "skills": ["A"]}],
		"sections": {
			"contact": ["email"],
			"experience": ["experience"],
			"education": ["education"],
			"skills": ["skills"]
		}
	}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.NotEmpty(t, validationErr.Errors)
}

func TestParse_RejectsEmptyCategories(t *testing.T) {
	_, err := Parse([]byte(`{
		"categories": [],
		"sections": {
			"contact": ["email"],
			"experience": ["experience"],
			"education": ["education"],
			"skills": ["skills"],
			"projects": ["projects"]
		}
	}`))
	assert.Error(t, err)
}

func TestParse_RejectsNonStringSkills(t *testing.T) {
	_, err := Parse([]byte(`{
		"categories": [{"name": "x", "skills": ["A", 42]}],
		"sections": {
			"contact": ["email"],
			"experience": ["experience"],
			"education": ["education"],
			"skills": ["skills"],
			"projects": ["projects"]
		}
	}`))

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestParse_RejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{not json`))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/taxonomy.json")
	assert.Error(t, err)
}
