// Package guidelines serves the static briefing content shown for each
// volunteer role. The content is fixed at build time; it is display
// material, not configuration.
package guidelines

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed guidelines.yaml
var rawGuidelines []byte

// Section is one titled block of a role's briefing
type Section struct {
	Heading string   `yaml:"heading"`
	Points  []string `yaml:"points"`
}

// Document is the full briefing for one role
type Document struct {
	Role     string    `yaml:"role"`
	Summary  string    `yaml:"summary"`
	Sections []Section `yaml:"sections"`
}

var byLabel map[string]Document

func init() {
	var docs []Document
	if err := yaml.Unmarshal(rawGuidelines, &docs); err != nil {
		panic(fmt.Sprintf("guidelines: embedded content does not parse: %v", err))
	}

	byLabel = make(map[string]Document, len(docs))
	for _, doc := range docs {
		byLabel[strings.ToLower(doc.Role)] = doc
	}
}

// Lookup returns the briefing for a role label, matched
// case-insensitively. Roles without briefing content report ok=false.
func Lookup(label string) (Document, bool) {
	doc, ok := byLabel[strings.ToLower(strings.TrimSpace(label))]
	return doc, ok
}

// Roles lists the role labels that carry briefing content, sorted
func Roles() []string {
	labels := make([]string, 0, len(byLabel))
	for _, doc := range byLabel {
		labels = append(labels, doc.Role)
	}
	sort.Strings(labels)
	return labels
}
