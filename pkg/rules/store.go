package rules

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/flexion/pkg/logging"
	"github.com/rs/zerolog"
)

// neverMatch is an empty character class: it cannot match any input,
// including the empty string. It is the acronym matcher's initial state.
var neverMatch = regexp.MustCompile(`[^\s\S]`)

// Store holds the inflection rules for one locale.
//
// All mutations take the write lock because they are multi-step sequences
// (chain rebuild, uncountable bookkeeping, matcher recompilation). Chains and
// the uncountable set are copy-on-write: mutations swap in freshly allocated
// slices, so slices handed out by accessors are stable snapshots and must not
// be modified by callers.
type Store struct {
	mu     sync.RWMutex
	locale string
	logger zerolog.Logger

	plurals      []Rule
	singulars    []Rule
	humans       []Rule
	uncountables []string
	acronyms     map[string]string
	acronymRe    *regexp.Regexp
}

// NewStore creates an empty rule store for the given locale
func NewStore(locale string) *Store {
	return &Store{
		locale:    locale,
		logger:    logging.GetLogger("rules.store"),
		acronyms:  make(map[string]string),
		acronymRe: neverMatch,
	}
}

// Locale returns the locale key this store was created for
func (s *Store) Locale() string {
	return s.locale
}

// prepend builds a fresh slice with r at the front so previously returned
// chain snapshots stay intact.
func prepend(chain []Rule, r Rule) []Rule {
	next := make([]Rule, 0, len(chain)+1)
	next = append(next, r)
	return append(next, chain...)
}

// insertLocked puts r at the front of chain. When touchUncountables is set,
// the rule's literal pattern source (string-form rules only) and its
// replacement are removed from the uncountable set first: a direct rule
// declaration always wins over a prior uncountable declaration for the same
// word, regardless of call order.
func (s *Store) insertLocked(chain *[]Rule, r Rule, touchUncountables bool) {
	if touchUncountables {
		if r.literal != "" {
			s.removeUncountableLocked(r.literal)
		}
		s.removeUncountableLocked(r.replacement)
	}
	*chain = prepend(*chain, r)
}

func (s *Store) removeUncountableLocked(word string) {
	found := false
	for _, w := range s.uncountables {
		if w == word {
			found = true
			break
		}
	}
	if !found {
		return
	}
	next := make([]string, 0, len(s.uncountables))
	for _, w := range s.uncountables {
		if w != word {
			next = append(next, w)
		}
	}
	s.uncountables = next
}

// AddPlural compiles pattern and adds a pluralization rule at the front of
// the plural chain. Malformed patterns return a PATTERN_INVALID error.
func (s *Store) AddPlural(pattern, replacement string) error {
	r, err := NewRule(pattern, replacement)
	if err != nil {
		return err
	}
	s.AddPluralRule(r)
	return nil
}

// AddPluralRule adds a prebuilt pluralization rule at the front of the
// plural chain
func (s *Store) AddPluralRule(r Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertLocked(&s.plurals, r, true)
	s.logger.Debug().Str("locale", s.locale).Str("pattern", r.Pattern()).Msg("Added plural rule")
}

// AddSingular compiles pattern and adds a singularization rule at the front
// of the singular chain. Malformed patterns return a PATTERN_INVALID error.
func (s *Store) AddSingular(pattern, replacement string) error {
	r, err := NewRule(pattern, replacement)
	if err != nil {
		return err
	}
	s.AddSingularRule(r)
	return nil
}

// AddSingularRule adds a prebuilt singularization rule at the front of the
// singular chain
func (s *Store) AddSingularRule(r Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertLocked(&s.singulars, r, true)
	s.logger.Debug().Str("locale", s.locale).Str("pattern", r.Pattern()).Msg("Added singular rule")
}

// AddHuman compiles pattern and adds a humanization rule at the front of the
// human chain. The human chain is independent: it never touches the
// uncountable set.
func (s *Store) AddHuman(pattern, replacement string) error {
	r, err := NewRule(pattern, replacement)
	if err != nil {
		return err
	}
	s.AddHumanRule(r)
	return nil
}

// AddHumanRule adds a prebuilt humanization rule at the front of the human
// chain
func (s *Store) AddHumanRule(r Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertLocked(&s.humans, r, false)
	s.logger.Debug().Str("locale", s.locale).Str("pattern", r.Pattern()).Msg("Added human rule")
}

// AddIrregular registers a bidirectional exception pair such as
// person/people that no single suffix rule can express. It synthesizes
// case-preserving plural and singular rules (see irregular.go) and inserts
// them through the ordinary front-of-chain path. Both words are removed from
// the uncountable set first.
func (s *Store) AddIrregular(singular, plural string) error {
	pluralRules, err := irregularPluralRules(singular, plural)
	if err != nil {
		return err
	}
	singularRules, err := irregularSingularRules(singular, plural)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeUncountableLocked(singular)
	s.removeUncountableLocked(plural)

	for _, r := range pluralRules {
		s.insertLocked(&s.plurals, r, true)
	}
	for _, r := range singularRules {
		s.insertLocked(&s.singulars, r, true)
	}

	s.logger.Debug().
		Str("locale", s.locale).
		Str("singular", singular).
		Str("plural", plural).
		Int("ruleCount", len(pluralRules)+len(singularRules)).
		Msg("Added irregular pair")
	return nil
}

// AddUncountable marks words as exempt from inflection. Words are stored
// lowercased. Duplicates are tolerated: membership is what matters, and
// IsUncountable is neither order- nor count-sensitive.
func (s *Store) AddUncountable(words ...string) {
	if len(words) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]string, 0, len(s.uncountables)+len(words))
	next = append(next, s.uncountables...)
	for _, w := range words {
		next = append(next, strings.ToLower(w))
	}
	s.uncountables = next
	s.logger.Debug().Str("locale", s.locale).Strs("words", words).Msg("Added uncountable words")
}

// AddAcronym stores word under its lowercase form and synchronously
// recompiles the acronym matcher, so a lookup made immediately after
// registration already sees the new acronym.
//
// Acronyms do not survive pluralization: the plural form is a different
// literal string, so callers wanting "APIs" preserved must register it as
// its own acronym.
func (s *Store) AddAcronym(word string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.acronyms[strings.ToLower(word)] = word
	s.rebuildAcronymLocked()
	s.logger.Debug().Str("locale", s.locale).Str("acronym", word).Msg("Added acronym")
}

// rebuildAcronymLocked recompiles the matcher wholesale from the table. The
// alternation is QuoteMeta'd (so the rebuild cannot fail) and ordered
// longest-first (so a prefix like HTTP never shadows HTTPS); the result is
// deterministic even though the table is a map.
func (s *Store) rebuildAcronymLocked() {
	if len(s.acronyms) == 0 {
		s.acronymRe = neverMatch
		return
	}

	forms := make([]string, 0, len(s.acronyms))
	for _, v := range s.acronyms {
		forms = append(forms, v)
	}
	sort.Slice(forms, func(i, j int) bool {
		if len(forms[i]) != len(forms[j]) {
			return len(forms[i]) > len(forms[j])
		}
		return forms[i] < forms[j]
	})
	for i, f := range forms {
		forms[i] = regexp.QuoteMeta(f)
	}
	s.acronymRe = regexp.MustCompile(strings.Join(forms, "|"))
}

// Clear resets the state named by scope. ScopeAll resets the plural,
// singular and human chains and the uncountable set, but not the acronym
// table: acronyms only go away when ScopeAcronyms is requested explicitly.
// Unknown scopes are a no-op; Clear has no failure mode.
func (s *Store) Clear(scope Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch scope {
	case ScopeAll:
		s.plurals = nil
		s.singulars = nil
		s.humans = nil
		s.uncountables = nil
	case ScopePlurals:
		s.plurals = nil
	case ScopeSingulars:
		s.singulars = nil
	case ScopeUncountables:
		s.uncountables = nil
	case ScopeHumans:
		s.humans = nil
	case ScopeAcronyms:
		s.acronyms = make(map[string]string)
		s.acronymRe = neverMatch
	}
	s.logger.Debug().Str("locale", s.locale).Str("scope", scope.String()).Msg("Cleared rules")
}

// Chain returns the rule chain for kind, most recently added rule first.
// The returned slice is a snapshot; callers must not modify it.
func (s *Store) Chain(kind Kind) []Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch kind {
	case Plurals:
		return s.plurals
	case Singulars:
		return s.singulars
	case Humans:
		return s.humans
	default:
		return nil
	}
}

// Plurals returns the pluralization chain
func (s *Store) Plurals() []Rule { return s.Chain(Plurals) }

// Singulars returns the singularization chain
func (s *Store) Singulars() []Rule { return s.Chain(Singulars) }

// Humans returns the humanization chain
func (s *Store) Humans() []Rule { return s.Chain(Humans) }

// IsUncountable reports whether word is registered as uncountable. The
// check is an exact match after lowercasing the query.
func (s *Store) IsUncountable(word string) bool {
	w := strings.ToLower(word)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.uncountables {
		if u == w {
			return true
		}
	}
	return false
}

// Uncountables returns the registered uncountable words. The returned slice
// is a snapshot; it may contain duplicates.
func (s *Store) Uncountables() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uncountables
}

// Acronym looks up the canonical form registered for word (matched by its
// lowercase form)
func (s *Store) Acronym(word string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	canonical, ok := s.acronyms[strings.ToLower(word)]
	return canonical, ok
}

// Acronyms returns a copy of the acronym table keyed by lowercase form
func (s *Store) Acronyms() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.acronyms))
	for k, v := range s.acronyms {
		out[k] = v
	}
	return out
}

// AcronymRegexp returns the compiled alternation of all registered acronym
// canonical forms. Before any acronym is registered (and after clearing the
// acronym scope) the matcher matches nothing.
func (s *Store) AcronymRegexp() *regexp.Regexp {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.acronymRe
}
