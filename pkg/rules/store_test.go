package rules

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreFrontInsertion(t *testing.T) {
	s := NewStore("en")

	require.NoError(t, s.AddPlural(`s$`, "s"))
	require.NoError(t, s.AddPlural(`(quiz)$`, "${1}zes"))

	chain := s.Plurals()
	require.Len(t, chain, 2)
	assert.Equal(t, `(quiz)$`, chain[0].Pattern(), "most recent rule must be at the front")
	assert.Equal(t, `s$`, chain[1].Pattern())
}

func TestStoreNoDeduplication(t *testing.T) {
	s := NewStore("en")

	require.NoError(t, s.AddPlural(`x$`, "xes"))
	require.NoError(t, s.AddPlural(`x$`, "xes"))

	chain := s.Plurals()
	require.Len(t, chain, 2, "re-adding the same rule keeps both entries")
	assert.Equal(t, chain[0].Pattern(), chain[1].Pattern())
}

func TestStoreChainSnapshots(t *testing.T) {
	s := NewStore("en")
	require.NoError(t, s.AddPlural(`a$`, "ae"))

	before := s.Plurals()
	require.NoError(t, s.AddPlural(`b$`, "bs"))

	assert.Len(t, before, 1, "earlier snapshot must not see later insertions")
	assert.Len(t, s.Plurals(), 2)
}

func TestStoreUncountableRemovalOnRule(t *testing.T) {
	t.Run("literal pattern removes uncountable", func(t *testing.T) {
		s := NewStore("en")
		s.AddUncountable("fish")
		require.True(t, s.IsUncountable("fish"))

		require.NoError(t, s.AddPlural("fish", "fishes"))
		assert.False(t, s.IsUncountable("fish"), "rule declaration must win over uncountability")
	})

	t.Run("replacement removes uncountable", func(t *testing.T) {
		s := NewStore("en")
		s.AddUncountable("fishes")

		require.NoError(t, s.AddPlural(`(?i)fish$`, "fishes"))
		assert.False(t, s.IsUncountable("fishes"))
	})

	t.Run("precompiled rule only removes by replacement", func(t *testing.T) {
		s := NewStore("en")
		s.AddUncountable("fish", "fishes")

		s.AddPluralRule(RegexpRule(regexp.MustCompile("fish"), "fishes"))
		assert.True(t, s.IsUncountable("fish"), "no literal source, pattern side effect must not fire")
		assert.False(t, s.IsUncountable("fishes"))
	})

	t.Run("order of declarations does not matter", func(t *testing.T) {
		s := NewStore("en")
		require.NoError(t, s.AddPlural("fish", "fishes"))

		// Marking uncountable after the rule, then re-adding the rule,
		// still ends with the word countable.
		s.AddUncountable("fish")
		require.NoError(t, s.AddPlural("fish", "fishes"))
		assert.False(t, s.IsUncountable("fish"))
	})

	t.Run("human rules leave the uncountable set alone", func(t *testing.T) {
		s := NewStore("en")
		s.AddUncountable("fish")

		require.NoError(t, s.AddHuman("fish", "fish"))
		assert.True(t, s.IsUncountable("fish"))
	})
}

func TestStoreUncountables(t *testing.T) {
	s := NewStore("en")

	s.AddUncountable("Fish", "sheep")
	assert.True(t, s.IsUncountable("fish"), "stored lowercased")
	assert.True(t, s.IsUncountable("FISH"), "query lowercased")
	assert.True(t, s.IsUncountable("sheep"))
	assert.False(t, s.IsUncountable("fishes"))

	// Duplicates are tolerated; membership is unaffected.
	s.AddUncountable("fish")
	assert.True(t, s.IsUncountable("fish"))
	assert.Len(t, s.Uncountables(), 3)
}

func TestStoreAcronyms(t *testing.T) {
	s := NewStore("en")

	t.Run("initial matcher matches nothing", func(t *testing.T) {
		re := s.AcronymRegexp()
		assert.False(t, re.MatchString(""))
		assert.False(t, re.MatchString("anything at all"))
	})

	t.Run("registration is visible immediately", func(t *testing.T) {
		s.AddAcronym("HTML")

		canonical, ok := s.Acronym("html")
		require.True(t, ok)
		assert.Equal(t, "HTML", canonical)

		assert.True(t, s.AcronymRegexp().MatchString("an HTML page"))
		assert.Equal(t, "HTML", s.AcronymRegexp().FindString("SomeHTMLParser"))
	})

	t.Run("lookup is by lowercase form", func(t *testing.T) {
		canonical, ok := s.Acronym("HTML")
		require.True(t, ok)
		assert.Equal(t, "HTML", canonical)

		_, ok = s.Acronym("xml")
		assert.False(t, ok)
	})

	t.Run("longer forms win over their prefixes", func(t *testing.T) {
		s.AddAcronym("HTTP")
		s.AddAcronym("HTTPS")

		assert.Equal(t, "HTTPS", s.AcronymRegexp().FindString("HTTPSConnection"))
	})

	t.Run("metacharacters in acronyms are literal", func(t *testing.T) {
		s2 := NewStore("en")
		s2.AddAcronym("C++")

		assert.True(t, s2.AcronymRegexp().MatchString("a C++ parser"))
		assert.False(t, s2.AcronymRegexp().MatchString("a C parser"))
	})

	t.Run("table copy is detached", func(t *testing.T) {
		table := s.Acronyms()
		table["fake"] = "FAKE"
		_, ok := s.Acronym("fake")
		assert.False(t, ok)
	})
}

func TestStoreClear(t *testing.T) {
	setup := func() *Store {
		s := NewStore("en")
		require.NoError(t, s.AddPlural(`s$`, "s"))
		require.NoError(t, s.AddSingular(`s$`, ""))
		require.NoError(t, s.AddHuman("col_", ""))
		s.AddUncountable("fish")
		s.AddAcronym("HTML")
		return s
	}

	t.Run("clear all spares acronyms", func(t *testing.T) {
		s := setup()
		s.Clear(ScopeAll)

		assert.Empty(t, s.Plurals())
		assert.Empty(t, s.Singulars())
		assert.Empty(t, s.Humans())
		assert.Empty(t, s.Uncountables())

		canonical, ok := s.Acronym("html")
		require.True(t, ok, "clear all must not touch the acronym table")
		assert.Equal(t, "HTML", canonical)
		assert.True(t, s.AcronymRegexp().MatchString("HTML"))
	})

	t.Run("clear acronyms resets table and matcher", func(t *testing.T) {
		s := setup()
		s.Clear(ScopeAcronyms)

		_, ok := s.Acronym("html")
		assert.False(t, ok)
		assert.False(t, s.AcronymRegexp().MatchString("HTML"))
		assert.False(t, s.AcronymRegexp().MatchString(""))

		// Other state untouched.
		assert.Len(t, s.Plurals(), 1)
		assert.True(t, s.IsUncountable("fish"))
	})

	t.Run("scoped clears", func(t *testing.T) {
		tests := []struct {
			scope Scope
			check func(*testing.T, *Store)
		}{
			{ScopePlurals, func(t *testing.T, s *Store) {
				assert.Empty(t, s.Plurals())
				assert.Len(t, s.Singulars(), 1)
			}},
			{ScopeSingulars, func(t *testing.T, s *Store) {
				assert.Empty(t, s.Singulars())
				assert.Len(t, s.Plurals(), 1)
			}},
			{ScopeHumans, func(t *testing.T, s *Store) {
				assert.Empty(t, s.Humans())
				assert.Len(t, s.Plurals(), 1)
			}},
			{ScopeUncountables, func(t *testing.T, s *Store) {
				assert.False(t, s.IsUncountable("fish"))
				assert.Len(t, s.Plurals(), 1)
			}},
		}

		for _, tt := range tests {
			t.Run(tt.scope.String(), func(t *testing.T) {
				s := setup()
				s.Clear(tt.scope)
				tt.check(t, s)
			})
		}
	})

	t.Run("unknown scope is a no-op", func(t *testing.T) {
		s := setup()
		s.Clear(Scope(99))
		assert.Len(t, s.Plurals(), 1)
		assert.True(t, s.IsUncountable("fish"))
	})
}

func TestStoreChainByKind(t *testing.T) {
	s := NewStore("en")
	require.NoError(t, s.AddPlural(`a`, "b"))
	require.NoError(t, s.AddSingular(`c`, "d"))
	require.NoError(t, s.AddHuman(`e`, "f"))

	assert.Equal(t, s.Plurals(), s.Chain(Plurals))
	assert.Equal(t, s.Singulars(), s.Chain(Singulars))
	assert.Equal(t, s.Humans(), s.Chain(Humans))
	assert.Nil(t, s.Chain(Kind(42)))
}

func TestStoreLocale(t *testing.T) {
	assert.Equal(t, "pt", NewStore("pt").Locale())
}
