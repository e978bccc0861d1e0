package inflect

import (
	"regexp"
	"sync"

	"github.com/arthur-debert/flexion/pkg/errors"
	"github.com/arthur-debert/flexion/pkg/registry"
	"github.com/arthur-debert/flexion/pkg/rules"
)

// DefaultLocale is the locale used when none is picked explicitly
const DefaultLocale = "en"

// Rules is the boundary contract the transforms consume. *rules.Store
// satisfies it.
type Rules interface {
	// Chain returns the rule chain for kind, highest precedence first
	Chain(kind rules.Kind) []rules.Rule

	// IsUncountable reports whether word is exempt from inflection
	IsUncountable(word string) bool

	// Acronym returns the canonical form registered for word, if any
	Acronym(word string) (string, bool)

	// AcronymRegexp returns the matcher for registered acronym forms
	AcronymRegexp() *regexp.Regexp
}

// Apply scans chain front-to-back and applies the first rule whose pattern
// matches word, substituting capture references ($1, ${1}) from the
// replacement template. Only the first occurrence of the match is replaced.
// If no rule matches, word is returned unchanged.
func Apply(chain []rules.Rule, word string) string {
	for _, r := range chain {
		re := r.Regexp()
		loc := re.FindStringSubmatchIndex(word)
		if loc == nil {
			continue
		}
		expanded := re.ExpandString(nil, r.Replacement(), word, loc)
		return word[:loc[0]] + string(expanded) + word[loc[1]:]
	}
	return word
}

// Inflector owns the locale-keyed rule stores and a default locale
type Inflector struct {
	mu            sync.RWMutex
	defaultLocale string
	locales       registry.Registry[*rules.Store]
}

// New creates an Inflector whose default locale is "en". Stores are created
// lazily on first access per locale.
func New() *Inflector {
	return &Inflector{
		defaultLocale: DefaultLocale,
		locales:       registry.New[*rules.Store](),
	}
}

// Locale returns the rule store for the named locale, creating it on first
// access. Creation is once-per-key even under concurrent first access. The
// "en" store is seeded with the default English rules; other locales start
// empty.
func (inf *Inflector) Locale(name string) *rules.Store {
	return inf.locales.GetOrCreate(name, func() *rules.Store {
		s := rules.NewStore(name)
		if name == DefaultLocale {
			seedEnglish(s)
		}
		return s
	})
}

// DefaultLocaleName returns the locale used by the non-For transform calls
func (inf *Inflector) DefaultLocaleName() string {
	inf.mu.RLock()
	defer inf.mu.RUnlock()
	return inf.defaultLocale
}

// SetDefaultLocale changes the locale used by the non-For transform calls
func (inf *Inflector) SetDefaultLocale(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "default locale cannot be empty")
	}

	inf.mu.Lock()
	defer inf.mu.Unlock()
	inf.defaultLocale = name
	return nil
}

// Locales returns the names of all locales that have been touched so far
func (inf *Inflector) Locales() []string {
	return inf.locales.List()
}

// Default is the package-level Inflector the convenience functions use
var Default = New()
