// Package config loads inflection rule files and applies them to an
// Inflector. Files are TOML or YAML, discovered under the XDG config
// directory or given explicitly; FLEXION_ environment variables override
// file values.
package config

import (
	"bytes"
	"sort"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/flexion/pkg/errors"
	"github.com/arthur-debert/flexion/pkg/inflect"
)

// Config is the top-level rules file schema
type Config struct {
	// Locale overrides the default locale used by the plain transform calls
	Locale string `koanf:"locale" toml:"locale"`

	// Locales holds per-locale rule declarations keyed by locale name
	Locales map[string]LocaleRules `koanf:"locales" toml:"locales,omitempty"`
}

// LocaleRules is the set of rule declarations for one locale
type LocaleRules struct {
	Uncountables []string        `koanf:"uncountables" toml:"uncountables,omitempty"`
	Acronyms     []string        `koanf:"acronyms" toml:"acronyms,omitempty"`
	Plurals      []RuleSpec      `koanf:"plurals" toml:"plurals,omitempty"`
	Singulars    []RuleSpec      `koanf:"singulars" toml:"singulars,omitempty"`
	Irregulars   []IrregularSpec `koanf:"irregulars" toml:"irregulars,omitempty"`
	Humans       []RuleSpec      `koanf:"humans" toml:"humans,omitempty"`
}

// RuleSpec is a pattern/replacement declaration
type RuleSpec struct {
	Pattern     string `koanf:"pattern" toml:"pattern"`
	Replacement string `koanf:"replacement" toml:"replacement"`
}

// IrregularSpec is a singular/plural exception pair declaration
type IrregularSpec struct {
	Singular string `koanf:"singular" toml:"singular"`
	Plural   string `koanf:"plural" toml:"plural"`
}

// Apply registers everything in the config into the inflector's locale
// stores, in declaration order within each locale. A malformed pattern
// aborts with the PATTERN_INVALID cause wrapped in a CONFIG_PARSE error.
func (c *Config) Apply(inf *inflect.Inflector) error {
	if c.Locale != "" {
		if err := inf.SetDefaultLocale(c.Locale); err != nil {
			return err
		}
	}

	// Locale iteration order is made deterministic; rule order within a
	// locale follows the file.
	names := make([]string, 0, len(c.Locales))
	for name := range c.Locales {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		lr := c.Locales[name]
		store := inf.Locale(name)

		store.AddUncountable(lr.Uncountables...)
		for _, a := range lr.Acronyms {
			store.AddAcronym(a)
		}
		for _, r := range lr.Plurals {
			if err := store.AddPlural(r.Pattern, r.Replacement); err != nil {
				return errors.Wrapf(err, errors.ErrConfigParse, "locale %q: bad plural rule %q", name, r.Pattern)
			}
		}
		for _, r := range lr.Singulars {
			if err := store.AddSingular(r.Pattern, r.Replacement); err != nil {
				return errors.Wrapf(err, errors.ErrConfigParse, "locale %q: bad singular rule %q", name, r.Pattern)
			}
		}
		for _, p := range lr.Irregulars {
			if err := store.AddIrregular(p.Singular, p.Plural); err != nil {
				return errors.Wrapf(err, errors.ErrConfigParse, "locale %q: bad irregular pair %q/%q", name, p.Singular, p.Plural)
			}
		}
		for _, r := range lr.Humans {
			if err := store.AddHuman(r.Pattern, r.Replacement); err != nil {
				return errors.Wrapf(err, errors.ErrConfigParse, "locale %q: bad human rule %q", name, r.Pattern)
			}
		}
	}

	return nil
}

const starterHeader = `# flexion rules file
#
# Rules declared here are registered on top of the built-in English set and
# take precedence over it (most recently added rule wins). Patterns are Go
# regular expressions; replacements may reference capture groups as ${1}.
#
# Place this file at $XDG_CONFIG_HOME/flexion/rules.toml or pass it with
# --rules.

`

// Starter renders a commented starter rules file for the genconfig command
func Starter() ([]byte, error) {
	starter := Config{
		Locale: "en",
		Locales: map[string]LocaleRules{
			"en": {
				Uncountables: []string{"gear"},
				Acronyms:     []string{"HTML", "API"},
				Plurals: []RuleSpec{
					{Pattern: "(?i)(kin)$", Replacement: "${1}e"},
				},
				Singulars: []RuleSpec{
					{Pattern: "(?i)(kin)e$", Replacement: "${1}"},
				},
				Irregulars: []IrregularSpec{
					{Singular: "person", Plural: "people"},
				},
				Humans: []RuleSpec{
					{Pattern: "legacy_col_", Replacement: ""},
				},
			},
		},
	}

	body, err := toml.Marshal(starter)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render starter config")
	}

	var buf bytes.Buffer
	buf.WriteString(starterHeader)
	buf.Write(body)
	return buf.Bytes(), nil
}
