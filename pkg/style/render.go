package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/flexion/pkg/rules"
)

// RenderRule renders a single rule as "pattern -> replacement"
func RenderRule(r rules.Rule) string {
	replacement := r.Replacement()
	if replacement == "" {
		replacement = `""`
	}
	return fmt.Sprintf("%s %s %s",
		PatternStyle.Render(r.Pattern()),
		MutedStyle.Render("->"),
		ReplacementStyle.Render(replacement))
}

// RenderChain renders a titled rule chain, highest precedence first
func RenderChain(title string, chain []rules.Rule) string {
	var b strings.Builder
	b.WriteString(SubtitleStyle.Render(title))
	b.WriteString("\n")
	if len(chain) == 0 {
		b.WriteString(ListItemStyle.Render(MutedStyle.Render("(empty)")))
		b.WriteString("\n")
		return b.String()
	}
	for _, r := range chain {
		b.WriteString(ListItemStyle.Render(RenderRule(r)))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderWordList renders a titled list of words
func RenderWordList(title string, words []string) string {
	var b strings.Builder
	b.WriteString(SubtitleStyle.Render(title))
	b.WriteString("\n")
	if len(words) == 0 {
		b.WriteString(ListItemStyle.Render(MutedStyle.Render("(empty)")))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(ListItemStyle.Render(NormalStyle.Render(strings.Join(words, ", "))))
	b.WriteString("\n")
	return b.String()
}

// RenderField renders a labeled value line for the check report
func RenderField(label, value string) string {
	return fmt.Sprintf("%s %s", MutedStyle.Render(label+":"), NormalStyle.Render(value))
}
