// Package taxonomy provides the skill vocabulary and section-phrase
// configuration the analyzer scans against. The taxonomy is data, not code:
// the default configuration is compiled in, and an alternate JSON document
// can be loaded at startup without touching any matching logic.
package taxonomy

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

//go:embed data/default.json
var defaultConfig []byte

//go:embed data/taxonomy_schema.json
var configSchema string

// Category holds a named, ordered list of canonical skill labels.
// The order within a category is meaningful: it defines the tie-break
// order used when the keyword list is truncated.
type Category struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// SectionPhrases holds the indicator phrases for each of the five standard
// resume sections. A section counts as present when any one of its phrases
// appears in the text.
type SectionPhrases struct {
	Contact    []string `json:"contact"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
	Skills     []string `json:"skills"`
	Projects   []string `json:"projects"`
}

// Taxonomy is the loaded skill and section configuration
type Taxonomy struct {
	Categories []Category     `json:"categories"`
	Sections   SectionPhrases `json:"sections"`

	flattenOnce sync.Once
	allSkills   []string
}

// Default returns the compiled-in taxonomy.
// The embedded document is validated at build time by tests, so a parse
// failure here is a packaging bug and panics.
func Default() *Taxonomy {
	tax, err := Parse(defaultConfig)
	if err != nil {
		panic(fmt.Sprintf("embedded taxonomy is invalid: %v", err))
	}
	return tax
}

// Parse validates a taxonomy JSON document against the configuration schema
// and unmarshals it.
func Parse(data []byte) (*Taxonomy, error) {
	if err := validateConfig(string(data)); err != nil {
		return nil, err
	}

	var tax Taxonomy
	if err := json.Unmarshal(data, &tax); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy JSON: %w", err)
	}

	return &tax, nil
}

// Load reads and parses a taxonomy configuration file
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}

	tax, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid taxonomy file %s: %w", path, err)
	}

	return tax, nil
}

// AllSkills returns the taxonomy flattened into a single keyword vocabulary,
// in category-then-skill declaration order. The slice is computed once and
// cached; callers must not modify it.
func (t *Taxonomy) AllSkills() []string {
	t.flattenOnce.Do(func() {
		total := 0
		for _, cat := range t.Categories {
			total += len(cat.Skills)
		}
		t.allSkills = make([]string, 0, total)
		for _, cat := range t.Categories {
			t.allSkills = append(t.allSkills, cat.Skills...)
		}
	})
	return t.allSkills
}

// SkillCount returns the total number of skills across all categories
func (t *Taxonomy) SkillCount() int {
	return len(t.AllSkills())
}
