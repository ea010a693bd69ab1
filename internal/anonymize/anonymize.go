// Package anonymize rewrites client and employer identifiers in resume
// text using an ordered list of pattern rules. The rule list is data:
// swapping it never touches the substitution algorithm.
package anonymize

import (
	"fmt"
	"regexp"

	"cvgen/internal/model"
)

// Rule is one pattern→replacement substitution. Patterns are matched
// case-insensitively over the whole input; Replacement may reference
// capture groups ($1) to keep a residual token while normalizing the
// label around it.
type Rule struct {
	Pattern     string `json:"pattern"`
	Replacement string `json:"replacement"`
	// Note names what the rule redacts, for rule-file maintenance.
	Note string `json:"note,omitempty"`
}

type compiledRule struct {
	re          *regexp.Regexp
	replacement string
}

// Anonymizer applies its rules in declaration order, feeding each
// rule's output into the next. Order is a contract: specific patterns
// must precede catch-alls, otherwise a general rule would fire on (or
// double-substitute) text a specific rule was meant to own.
type Anonymizer struct {
	rules []compiledRule
}

// New compiles the rule list. Rules keep their given order.
func New(rules []Rule) (*Anonymizer, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		re, err := regexp.Compile("(?i)" + r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("anonymize: rule %q: %w", r.Pattern, err)
		}
		compiled = append(compiled, compiledRule{re: re, replacement: r.Replacement})
	}
	return &Anonymizer{rules: compiled}, nil
}

// Apply runs every rule over text as a global substitution.
func (a *Anonymizer) Apply(text string) string {
	out := text
	for _, r := range a.rules {
		out = r.re.ReplaceAllString(out, r.replacement)
	}
	return out
}

// Redact rewrites every text-bearing field of every work entry in
// place and suppresses the direct contact fields. It runs exactly once
// per generation, before any display text is derived, so raw client
// names never reach a template. Email and phone are cleared rather
// than pattern-replaced; downstream renderers skip empty fields.
func (a *Anonymizer) Redact(r *model.Resume) {
	for i := range r.Work {
		w := &r.Work[i]
		w.Name = a.Apply(w.Name)
		w.Position = a.Apply(w.Position)
		w.Summary = a.Apply(w.Summary)
		for j, h := range w.Highlights {
			w.Highlights[j] = a.Apply(h)
		}
	}
	r.Basics.Email = ""
	r.Basics.Phone = ""
}
