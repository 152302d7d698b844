// Package moderation rewrites free text using an ordered list of
// case-insensitive substring replacement rules.
package moderation

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Rule replaces every case-insensitive occurrence of Pattern with Replacement.
type Rule struct {
	Pattern     string
	Replacement string
}

type compiledRule struct {
	rx          *regexp.Regexp
	replacement string
}

// Filter applies its rules one after another. Each rule runs over the output
// of the previous one, so a later rule can match text an earlier rule produced.
type Filter struct {
	rules []compiledRule
}

// New compiles rules in order. Rules with an empty pattern are skipped.
func New(rules []Rule) *Filter {
	f := &Filter{rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		if r.Pattern == "" {
			continue
		}
		f.rules = append(f.rules, compiledRule{
			rx:          regexp.MustCompile("(?i)" + regexp.QuoteMeta(r.Pattern)),
			replacement: r.Replacement,
		})
	}
	return f
}

// Sanitize returns text with every rule applied in order.
func (f *Filter) Sanitize(text string) string {
	if f == nil {
		return text
	}
	for _, r := range f.rules {
		text = r.rx.ReplaceAllLiteralString(text, r.replacement)
	}
	return text
}

// Len returns the number of active rules.
func (f *Filter) Len() int {
	if f == nil {
		return 0
	}
	return len(f.rules)
}

// LoadRules reads a YAML mapping of pattern to replacement, keeping the order
// in which the keys appear in the document.
func LoadRules(r io.Reader) ([]Rule, error) {
	var doc yaml.Node
	err := yaml.NewDecoder(r).Decode(&doc)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("moderation rules: line %d: expected a mapping of pattern to replacement", root.Line)
	}
	rules := make([]Rule, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("moderation rules: line %d: pattern and replacement must be strings", key.Line)
		}
		rules = append(rules, Rule{Pattern: key.Value, Replacement: value.Value})
	}
	return rules, nil
}

// LoadFile loads rules from the YAML file at path. An empty path yields a
// filter with no rules.
func LoadFile(path string) (*Filter, error) {
	if path == "" {
		return New(nil), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	rules, err := LoadRules(file)
	if err != nil {
		return nil, err
	}
	return New(rules), nil
}
