package inflect

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/arthur-debert/flexion/pkg/rules"
)

// mockRules lets tests script the rule-store boundary without a real Store.
type mockRules struct {
	mock.Mock
}

func (m *mockRules) Chain(kind rules.Kind) []rules.Rule {
	args := m.Called(kind)
	chain, _ := args.Get(0).([]rules.Rule)
	return chain
}

func (m *mockRules) IsUncountable(word string) bool {
	args := m.Called(word)
	return args.Bool(0)
}

func (m *mockRules) Acronym(word string) (string, bool) {
	args := m.Called(word)
	return args.String(0), args.Bool(1)
}

func (m *mockRules) AcronymRegexp() *regexp.Regexp {
	args := m.Called()
	return args.Get(0).(*regexp.Regexp)
}

func TestPluralizeSkipsChainForUncountables(t *testing.T) {
	m := new(mockRules)
	m.On("IsUncountable", "fish").Return(true)

	assert.Equal(t, "fish", pluralize(m, "fish"))

	// The chain must never be consulted for an uncountable word.
	m.AssertNotCalled(t, "Chain", rules.Plurals)
	m.AssertExpectations(t)
}

func TestSingularizeConsultsChain(t *testing.T) {
	chain := []rules.Rule{rules.MustRule(`(?i)s$`, "")}

	m := new(mockRules)
	m.On("IsUncountable", "books").Return(false)
	m.On("Chain", rules.Singulars).Return(chain)

	assert.Equal(t, "book", singularize(m, "books"))
	m.AssertExpectations(t)
}

func TestCamelizePrefersCanonicalForms(t *testing.T) {
	m := new(mockRules)
	m.On("Acronym", "xml").Return("XML", true)
	m.On("Acronym", "reader").Return("", false)

	assert.Equal(t, "XMLReader", camelize(m, "xml_reader", false))
	m.AssertExpectations(t)
}
