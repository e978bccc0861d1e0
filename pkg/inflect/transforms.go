package inflect

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/flexion/pkg/rules"
)

// The classic hump-splitting substitutions, applied after acronym spans
// have been normalized.
var (
	humpUpperRe = regexp.MustCompile(`([A-Z\d]+)([A-Z][a-z])`)
	humpLowerRe = regexp.MustCompile(`([a-z\d])([A-Z])`)
)

func pluralize(r Rules, word string) string {
	if word == "" {
		return word
	}
	if r.IsUncountable(word) {
		return word
	}
	return Apply(r.Chain(rules.Plurals), word)
}

func singularize(r Rules, word string) string {
	if word == "" {
		return word
	}
	if r.IsUncountable(word) {
		return word
	}
	return Apply(r.Chain(rules.Singulars), word)
}

// camelize converts an underscored word to CamelCase. "/" is kept as a path
// separator with each segment camelized on its own. Tokens found in the
// acronym table come out in their canonical form.
func camelize(r Rules, word string, lower bool) string {
	segments := strings.Split(word, "/")
	for i, segment := range segments {
		segments[i] = camelizeSegment(r, segment)
	}
	out := strings.Join(segments, "/")
	if lower {
		out = lowerLeading(r, out)
	}
	return out
}

func camelizeSegment(r Rules, segment string) string {
	var b strings.Builder
	for _, token := range strings.Split(segment, "_") {
		if token == "" {
			continue
		}
		if canonical, ok := r.Acronym(token); ok {
			b.WriteString(canonical)
			continue
		}
		b.WriteString(upperFirst(token))
	}
	return b.String()
}

// lowerLeading downcases the leading acronym span if the string starts with
// one, otherwise just the first rune. This is what turns "HTMLParser" into
// "htmlParser" rather than "hTMLParser".
func lowerLeading(r Rules, s string) string {
	if loc := r.AcronymRegexp().FindStringIndex(s); loc != nil && loc[0] == 0 {
		return strings.ToLower(s[:loc[1]]) + s[loc[1]:]
	}
	return lowerFirst(s)
}

// underscore converts a CamelCase word to snake_case. Acronym spans are
// collapsed to a single lowercase token first so "HTMLParser" becomes
// "html_parser" instead of "html_parser" being split letter by letter.
func underscore(r Rules, word string) string {
	w := foldAcronyms(r, word)
	w = humpUpperRe.ReplaceAllString(w, "${1}_${2}")
	w = humpLowerRe.ReplaceAllString(w, "${1}_${2}")
	w = strings.ReplaceAll(w, "-", "_")
	return strings.ToLower(w)
}

// foldAcronyms lowercases every acronym span that sits on a word boundary,
// inserting "_" when the span directly follows a letter or digit. RE2 has no
// lookaround, so the boundary conditions are checked in code around the
// matcher's plain matches.
func foldAcronyms(r Rules, word string) string {
	matches := r.AcronymRegexp().FindAllStringIndex(word, -1)
	if matches == nil {
		return word
	}

	var b strings.Builder
	last := 0
	for _, loc := range matches {
		start, end := loc[0], loc[1]
		ok, sep := boundaryBefore(word, start)
		if !ok || !boundaryAfter(word, end) {
			continue
		}
		b.WriteString(word[last:start])
		if sep {
			b.WriteByte('_')
		}
		b.WriteString(strings.ToLower(word[start:end]))
		last = end
	}
	b.WriteString(word[last:])
	return b.String()
}

// boundaryBefore reports whether an acronym span may start at start, and
// whether a separating underscore is needed. A span may follow the start of
// the string, a letter or digit (separator needed), or a non-word rune; it
// may not extend an existing underscore.
func boundaryBefore(word string, start int) (ok bool, sep bool) {
	if start == 0 {
		return true, false
	}
	prev, _ := utf8.DecodeLastRuneInString(word[:start])
	if prev == '_' {
		return false, false
	}
	if unicode.IsLetter(prev) || unicode.IsDigit(prev) {
		return true, true
	}
	return true, false
}

// boundaryAfter reports whether an acronym span may end at end: at the end
// of the string or before any rune that is not a lowercase letter.
func boundaryAfter(word string, end int) bool {
	if end == len(word) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(word[end:])
	return !unicode.IsLower(next)
}

// humanize turns an attribute-style name into readable text: the first
// matching human rule is applied, a trailing "_id" is stripped, underscores
// become spaces, tokens are lowercased unless the acronym table supplies a
// canonical form, and the first letter is capitalized.
func humanize(r Rules, word string) string {
	w := Apply(r.Chain(rules.Humans), word)
	w = strings.TrimSuffix(w, "_id")
	w = strings.ReplaceAll(w, "_", " ")

	tokens := strings.Split(w, " ")
	for i, token := range tokens {
		if token == "" {
			continue
		}
		if canonical, ok := r.Acronym(token); ok {
			tokens[i] = canonical
		} else {
			tokens[i] = strings.ToLower(token)
		}
	}
	return upperFirst(strings.Join(tokens, " "))
}

// titleize capitalizes each word of the humanized form, leaving acronym
// tokens in their canonical case
func titleize(r Rules, word string) string {
	h := humanize(r, underscore(r, word))
	tokens := strings.Split(h, " ")
	for i, token := range tokens {
		if token == "" {
			continue
		}
		if _, ok := r.Acronym(token); ok {
			continue
		}
		tokens[i] = upperFirst(token)
	}
	return strings.Join(tokens, " ")
}

func tableize(r Rules, word string) string {
	return pluralize(r, underscore(r, word))
}

// classify derives a class name from a table name. A schema qualifier
// ("public.users") is stripped first.
func classify(r Rules, tableName string) string {
	name := tableName
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return camelize(r, singularize(r, name), false)
}

func foreignKey(r Rules, word string) string {
	return underscore(r, Demodulize(word)) + "_id"
}

// Dasherize replaces underscores with dashes
func Dasherize(word string) string {
	return strings.ReplaceAll(word, "_", "-")
}

// Demodulize strips everything up to and including the last "::" or "/"
func Demodulize(path string) string {
	if i := strings.LastIndex(path, "::"); i >= 0 {
		path = path[i+2:]
	}
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}
	return path
}

// Ordinal returns the ordinal suffix for n: "st", "nd", "rd" or "th"
func Ordinal(n int) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	switch abs % 100 {
	case 11, 12, 13:
		return "th"
	}
	switch abs % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// Ordinalize returns n with its ordinal suffix appended: 1 becomes "1st"
func Ordinalize(n int) string {
	return strconv.Itoa(n) + Ordinal(n)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
