package parsing

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed taxonomy.yaml
var defaultTaxonomyYAML []byte

// taxonomyFile is the YAML layout of a keyword taxonomy
type taxonomyFile struct {
	Skills []struct {
		Name    string   `yaml:"name"`
		Aliases []string `yaml:"aliases"`
	} `yaml:"skills"`
	Phrases []string `yaml:"phrases"`
}

// Taxonomy maps skill aliases to canonical names and lists phrases worth
// extracting verbatim. It is immutable after construction.
type Taxonomy struct {
	canonical map[string]string // folded name or alias -> canonical name
	phrases   []string          // folded multi-word entries, longest first
}

// DefaultTaxonomy returns the built-in taxonomy
func DefaultTaxonomy() *Taxonomy {
	t, err := ParseTaxonomy(defaultTaxonomyYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded taxonomy: %v", err))
	}
	return t
}

// LoadTaxonomy reads a taxonomy YAML file
func LoadTaxonomy(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Message: fmt.Sprintf("failed to read taxonomy %s", path), Cause: err}
	}
	return ParseTaxonomy(data)
}

// ParseTaxonomy builds a taxonomy from YAML. Every skill needs a name.
func ParseTaxonomy(data []byte) (*Taxonomy, error) {
	var file taxonomyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &ParseError{Message: "failed to parse taxonomy YAML", Cause: err}
	}

	t := &Taxonomy{canonical: make(map[string]string)}
	seenPhrase := make(map[string]bool)
	addPhrase := func(p string) {
		if strings.Contains(p, " ") && !seenPhrase[p] {
			seenPhrase[p] = true
			t.phrases = append(t.phrases, p)
		}
	}

	for i, skill := range file.Skills {
		name := strings.TrimSpace(skill.Name)
		if name == "" {
			return nil, &ValidationError{Field: fmt.Sprintf("skills[%d].name", i), Message: "name is required"}
		}
		for _, term := range append([]string{name}, skill.Aliases...) {
			key := fold(strings.TrimSpace(term))
			if key == "" {
				continue
			}
			if _, exists := t.canonical[key]; !exists {
				t.canonical[key] = name
			}
			addPhrase(key)
		}
	}
	for _, phrase := range file.Phrases {
		addPhrase(fold(strings.TrimSpace(phrase)))
	}

	// longest first so "react native" wins over "react"
	sort.SliceStable(t.phrases, func(i, j int) bool { return len(t.phrases[i]) > len(t.phrases[j]) })
	return t, nil
}

// Canonical returns the canonical form of a skill name or alias
func (t *Taxonomy) Canonical(term string) (string, bool) {
	if t == nil {
		return "", false
	}
	name, ok := t.canonical[fold(strings.TrimSpace(term))]
	return name, ok
}

// Phrases returns the folded multi-word entries, longest first
func (t *Taxonomy) Phrases() []string {
	if t == nil {
		return nil
	}
	return t.phrases
}

// Size returns the number of names and aliases
func (t *Taxonomy) Size() int {
	if t == nil {
		return 0
	}
	return len(t.canonical)
}
