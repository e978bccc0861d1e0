package rules

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/flexion/pkg/errors"
)

// splitInitial splits a word into its first rune and the remaining suffix
func splitInitial(word string) (string, string) {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError && size == 0 {
		return "", ""
	}
	return word[:size], word[size:]
}

// irregularPluralRules synthesizes the pluralization rules for an irregular
// singular/plural pair. It is a pure function; the store inserts the
// returned rules in order, so the last rule listed here ends up with the
// highest precedence.
//
// When the two words share a first letter, two case-insensitive rules with a
// captured initial are enough: the back-reference preserves the case of the
// matched input's first letter. When the initials differ no back-reference
// can map one initial to the other, so upper- and lower-initial variants are
// enumerated with the target initial hardcoded in the matching case.
func irregularPluralRules(singular, plural string) ([]Rule, error) {
	if singular == "" || plural == "" {
		return nil, errors.Newf(errors.ErrInvalidInput, "irregular pair needs two non-empty words, got %q/%q", singular, plural)
	}

	s0, srest := splitInitial(singular)
	p0, prest := splitInitial(plural)

	var specs [][2]string
	if strings.ToUpper(s0) == strings.ToUpper(p0) {
		specs = [][2]string{
			{"(?i)(" + s0 + ")" + srest + "$", "${1}" + prest},
			{"(?i)(" + p0 + ")" + prest + "$", "${1}" + prest},
		}
	} else {
		specs = [][2]string{
			{strings.ToUpper(s0) + "(?i)" + srest + "$", strings.ToUpper(p0) + prest},
			{strings.ToLower(s0) + "(?i)" + srest + "$", strings.ToLower(p0) + prest},
			{strings.ToUpper(p0) + "(?i)" + prest + "$", strings.ToUpper(p0) + prest},
			{strings.ToLower(p0) + "(?i)" + prest + "$", strings.ToLower(p0) + prest},
		}
	}
	return buildRules(specs)
}

// irregularSingularRules synthesizes the singularization rules for an
// irregular pair, mirroring irregularPluralRules in the opposite direction.
func irregularSingularRules(singular, plural string) ([]Rule, error) {
	if singular == "" || plural == "" {
		return nil, errors.Newf(errors.ErrInvalidInput, "irregular pair needs two non-empty words, got %q/%q", singular, plural)
	}

	s0, srest := splitInitial(singular)
	p0, prest := splitInitial(plural)

	var specs [][2]string
	if strings.ToUpper(s0) == strings.ToUpper(p0) {
		specs = [][2]string{
			{"(?i)(" + s0 + ")" + srest + "$", "${1}" + srest},
			{"(?i)(" + p0 + ")" + prest + "$", "${1}" + srest},
		}
	} else {
		specs = [][2]string{
			{strings.ToUpper(s0) + "(?i)" + srest + "$", strings.ToUpper(s0) + srest},
			{strings.ToLower(s0) + "(?i)" + srest + "$", strings.ToLower(s0) + srest},
			{strings.ToUpper(p0) + "(?i)" + prest + "$", strings.ToUpper(s0) + srest},
			{strings.ToLower(p0) + "(?i)" + prest + "$", strings.ToLower(s0) + srest},
		}
	}
	return buildRules(specs)
}

// buildRules compiles pattern/replacement specs. Irregular words are not
// QuoteMeta'd: plain words compile unchanged, and a metacharacter in a pair
// surfaces the same PATTERN_INVALID error as any other malformed rule.
func buildRules(specs [][2]string) ([]Rule, error) {
	out := make([]Rule, 0, len(specs))
	for _, spec := range specs {
		r, err := NewRule(spec[0], spec[1])
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
