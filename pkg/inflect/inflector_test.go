package inflect

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/flexion/pkg/errors"
	"github.com/arthur-debert/flexion/pkg/rules"
)

func TestApply(t *testing.T) {
	chain := []rules.Rule{
		rules.MustRule(`(?i)(quiz)$`, "${1}zes"),
		rules.MustRule(`(?i)s$`, "s"),
		rules.MustRule(`$`, "s"),
	}

	t.Run("first matching rule wins", func(t *testing.T) {
		assert.Equal(t, "quizzes", Apply(chain, "quiz"))
		assert.Equal(t, "books", Apply(chain, "book"))
	})

	t.Run("no match returns input unchanged", func(t *testing.T) {
		assert.Equal(t, "word", Apply([]rules.Rule{rules.MustRule(`xyz$`, "-")}, "word"))
	})

	t.Run("empty chain returns input unchanged", func(t *testing.T) {
		assert.Equal(t, "word", Apply(nil, "word"))
	})

	t.Run("only the first occurrence is replaced", func(t *testing.T) {
		got := Apply([]rules.Rule{rules.MustRule(`o`, "0")}, "foo")
		assert.Equal(t, "f0o", got)
	})

	t.Run("capture references expand", func(t *testing.T) {
		got := Apply([]rules.Rule{rules.MustRule(`(?i)(octop)us$`, "${1}i")}, "Octopus")
		assert.Equal(t, "Octopi", got)
	})
}

func TestInflectorLocale(t *testing.T) {
	t.Run("en is seeded on first access", func(t *testing.T) {
		inf := New()
		store := inf.Locale("en")

		assert.NotEmpty(t, store.Plurals())
		assert.NotEmpty(t, store.Singulars())
		assert.True(t, store.IsUncountable("fish"))
	})

	t.Run("other locales start empty", func(t *testing.T) {
		inf := New()
		store := inf.Locale("pt")

		assert.Empty(t, store.Plurals())
		assert.Empty(t, store.Singulars())
		assert.Empty(t, store.Uncountables())
	})

	t.Run("same store on repeated access", func(t *testing.T) {
		inf := New()
		assert.Same(t, inf.Locale("en"), inf.Locale("en"))
	})

	t.Run("distinct locales are independent", func(t *testing.T) {
		inf := New()
		require.NoError(t, inf.Locale("pt").AddPlural(`ão$`, "ões"))

		assert.Equal(t, "balões", inf.PluralizeFor("pt", "balão"))
		assert.Equal(t, "balãos", inf.PluralizeFor("en", "balão"), "en rules must not see pt rules")
	})

	t.Run("concurrent first access yields one store", func(t *testing.T) {
		inf := New()

		const goroutines = 16
		stores := make([]*rules.Store, goroutines)
		var wg sync.WaitGroup
		wg.Add(goroutines)
		for i := 0; i < goroutines; i++ {
			go func(i int) {
				defer wg.Done()
				stores[i] = inf.Locale("en")
			}(i)
		}
		wg.Wait()

		for i := 1; i < goroutines; i++ {
			assert.Same(t, stores[0], stores[i])
		}
	})
}

func TestInflectorDefaultLocale(t *testing.T) {
	inf := New()
	assert.Equal(t, "en", inf.DefaultLocaleName())

	require.NoError(t, inf.SetDefaultLocale("pt"))
	assert.Equal(t, "pt", inf.DefaultLocaleName())

	err := inf.SetDefaultLocale("")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Equal(t, "pt", inf.DefaultLocaleName())

	// The plain transforms follow the default locale.
	require.NoError(t, inf.Locale("pt").AddPlural(`ão$`, "ões"))
	assert.Equal(t, "balões", inf.Pluralize("balão"))
}

func TestInflectorLocales(t *testing.T) {
	inf := New()
	inf.Locale("en")
	inf.Locale("pt")

	assert.Equal(t, []string{"en", "pt"}, inf.Locales())
}
