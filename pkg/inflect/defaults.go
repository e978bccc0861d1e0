package inflect

import (
	"fmt"

	"github.com/arthur-debert/flexion/pkg/rules"
)

// Default English rules. Registration order matters: every rule goes to the
// front of its chain, so the last entry of each table ends up with the
// highest precedence, and the irregular pairs registered afterwards shadow
// all of them.

var defaultPlurals = []rules.Rule{
	rules.MustRule(`$`, "s"),
	rules.MustRule(`(?i)s$`, "s"),
	rules.MustRule(`(?i)^(ax|test)is$`, "${1}es"),
	rules.MustRule(`(?i)(octop|vir)us$`, "${1}i"),
	rules.MustRule(`(?i)(octop|vir)i$`, "${1}i"),
	rules.MustRule(`(?i)(alias|status)$`, "${1}es"),
	rules.MustRule(`(?i)(bu)s$`, "${1}ses"),
	rules.MustRule(`(?i)(buffal|tomat)o$`, "${1}oes"),
	rules.MustRule(`(?i)([ti])um$`, "${1}a"),
	rules.MustRule(`(?i)([ti])a$`, "${1}a"),
	rules.MustRule(`(?i)sis$`, "ses"),
	rules.MustRule(`(?i)(?:([^f])fe|([lr])f)$`, "${1}${2}ves"),
	rules.MustRule(`(?i)(hive)$`, "${1}s"),
	rules.MustRule(`(?i)([^aeiouy]|qu)y$`, "${1}ies"),
	rules.MustRule(`(?i)(x|ch|ss|sh)$`, "${1}es"),
	rules.MustRule(`(?i)(matr|vert|ind)(?:ix|ex)$`, "${1}ices"),
	rules.MustRule(`(?i)^(m|l)ouse$`, "${1}ice"),
	rules.MustRule(`(?i)^(m|l)ice$`, "${1}ice"),
	rules.MustRule(`(?i)^(ox)$`, "${1}en"),
	rules.MustRule(`(?i)^(oxen)$`, "${1}"),
	rules.MustRule(`(?i)(quiz)$`, "${1}zes"),
}

var defaultSingulars = []rules.Rule{
	rules.MustRule(`(?i)s$`, ""),
	rules.MustRule(`(?i)(ss)$`, "${1}"),
	rules.MustRule(`(?i)(n)ews$`, "${1}ews"),
	rules.MustRule(`(?i)([ti])a$`, "${1}um"),
	rules.MustRule(`(?i)((a)naly|(b)a|(d)iagno|(p)arenthe|(p)rogno|(s)ynop|(t)he)(sis|ses)$`, "${1}sis"),
	rules.MustRule(`(?i)(^analy)(sis|ses)$`, "${1}sis"),
	rules.MustRule(`(?i)([^f])ves$`, "${1}fe"),
	rules.MustRule(`(?i)(hive)s$`, "${1}"),
	rules.MustRule(`(?i)(tive)s$`, "${1}"),
	rules.MustRule(`(?i)([lr])ves$`, "${1}f"),
	rules.MustRule(`(?i)([^aeiouy]|qu)ies$`, "${1}y"),
	rules.MustRule(`(?i)(s)eries$`, "${1}eries"),
	rules.MustRule(`(?i)(m)ovies$`, "${1}ovie"),
	rules.MustRule(`(?i)(x|ch|ss|sh)es$`, "${1}"),
	rules.MustRule(`(?i)^(m|l)ice$`, "${1}ouse"),
	rules.MustRule(`(?i)(bus)(es)?$`, "${1}"),
	rules.MustRule(`(?i)(o)es$`, "${1}"),
	rules.MustRule(`(?i)(shoe)s$`, "${1}"),
	rules.MustRule(`(?i)(cris|test)(is|es)$`, "${1}is"),
	rules.MustRule(`(?i)^(a)x[ie]s$`, "${1}xis"),
	rules.MustRule(`(?i)(octop|vir)(us|i)$`, "${1}us"),
	rules.MustRule(`(?i)(alias|status)(es)?$`, "${1}"),
	rules.MustRule(`(?i)^(ox)en`, "${1}"),
	rules.MustRule(`(?i)(vert|ind)ices$`, "${1}ex"),
	rules.MustRule(`(?i)(matr)ices$`, "${1}ix"),
	rules.MustRule(`(?i)(quiz)zes$`, "${1}"),
	rules.MustRule(`(?i)(database)s$`, "${1}"),
}

var defaultIrregulars = [][2]string{
	{"person", "people"},
	{"man", "men"},
	{"child", "children"},
	{"sex", "sexes"},
	{"move", "moves"},
	{"zombie", "zombies"},
}

var defaultUncountables = []string{
	"equipment",
	"information",
	"rice",
	"money",
	"species",
	"series",
	"fish",
	"sheep",
	"jeans",
	"police",
}

// seedEnglish registers the default English rule set into s
func seedEnglish(s *rules.Store) {
	for _, r := range defaultPlurals {
		s.AddPluralRule(r)
	}
	for _, r := range defaultSingulars {
		s.AddSingularRule(r)
	}
	for _, pair := range defaultIrregulars {
		if err := s.AddIrregular(pair[0], pair[1]); err != nil {
			panic(fmt.Sprintf("inflect: bad default irregular %q/%q: %v", pair[0], pair[1], err))
		}
	}
	s.AddUncountable(defaultUncountables...)
}
