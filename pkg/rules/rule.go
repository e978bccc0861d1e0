package rules

import (
	"fmt"
	"regexp"

	"github.com/arthur-debert/flexion/pkg/errors"
)

// Rule is an immutable pattern/replacement pair. The replacement is a
// template in regexp.Expand syntax, so $1 and ${1} refer to capture groups
// of the pattern.
type Rule struct {
	re          *regexp.Regexp
	replacement string

	// literal holds the original pattern string when the rule was built from
	// one. Only string-form patterns participate in the uncountable-removal
	// side effect on insertion; precompiled rules carry no literal.
	literal string
}

// NewRule compiles pattern as a regular expression and returns the rule.
// A plain word therefore matches that exact substring. Malformed syntax
// returns an error with code PATTERN_INVALID.
func NewRule(pattern, replacement string) (Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, errors.Wrapf(err, errors.ErrPatternInvalid, "invalid rule pattern %q", pattern)
	}
	return Rule{re: re, replacement: replacement, literal: pattern}, nil
}

// MustRule is like NewRule but panics on a malformed pattern. Use it for
// known-good seed data, the same way regexp.MustCompile is used.
func MustRule(pattern, replacement string) Rule {
	r, err := NewRule(pattern, replacement)
	if err != nil {
		panic(fmt.Sprintf("rules: MustRule(%q, %q): %v", pattern, replacement, err))
	}
	return r
}

// RegexpRule builds a rule from an already compiled regexp. It cannot fail
// and carries no literal pattern source.
func RegexpRule(re *regexp.Regexp, replacement string) Rule {
	return Rule{re: re, replacement: replacement}
}

// Pattern returns the pattern source
func (r Rule) Pattern() string {
	if r.re == nil {
		return ""
	}
	return r.re.String()
}

// Replacement returns the replacement template
func (r Rule) Replacement() string {
	return r.replacement
}

// Regexp returns the compiled pattern
func (r Rule) Regexp() *regexp.Regexp {
	return r.re
}
