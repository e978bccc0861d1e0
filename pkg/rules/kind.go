package rules

import (
	"strings"

	"github.com/arthur-debert/flexion/pkg/errors"
)

// Kind identifies one of the store's rule chains
type Kind int

const (
	Plurals Kind = iota
	Singulars
	Humans
)

// String returns the chain name
func (k Kind) String() string {
	switch k {
	case Plurals:
		return "plurals"
	case Singulars:
		return "singulars"
	case Humans:
		return "humans"
	default:
		return "unknown"
	}
}

// ParseKind parses a chain name into a Kind
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "plural", "plurals":
		return Plurals, nil
	case "singular", "singulars":
		return Singulars, nil
	case "human", "humans":
		return Humans, nil
	default:
		return Plurals, errors.Newf(errors.ErrInvalidInput, "unknown rule chain %q", s)
	}
}

// Scope names the state a Clear call resets. ScopeAll covers the three rule
// chains and the uncountable set but deliberately not the acronym table;
// acronyms are only cleared when ScopeAcronyms is given explicitly.
type Scope int

const (
	ScopeAll Scope = iota
	ScopePlurals
	ScopeSingulars
	ScopeUncountables
	ScopeHumans
	ScopeAcronyms
)

// String returns the scope name
func (s Scope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopePlurals:
		return "plurals"
	case ScopeSingulars:
		return "singulars"
	case ScopeUncountables:
		return "uncountables"
	case ScopeHumans:
		return "humans"
	case ScopeAcronyms:
		return "acronyms"
	default:
		return "unknown"
	}
}

// ParseScope parses a clear scope name. It exists for boundary input (CLI,
// config); Store.Clear itself accepts any Scope and ignores unknown values.
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(s) {
	case "all":
		return ScopeAll, nil
	case "plural", "plurals":
		return ScopePlurals, nil
	case "singular", "singulars":
		return ScopeSingulars, nil
	case "uncountable", "uncountables":
		return ScopeUncountables, nil
	case "human", "humans":
		return ScopeHumans, nil
	case "acronym", "acronyms":
		return ScopeAcronyms, nil
	default:
		return ScopeAll, errors.Newf(errors.ErrInvalidInput, "unknown clear scope %q", s)
	}
}
