package style

import (
	"strings"
	"testing"

	"github.com/arthur-debert/flexion/pkg/rules"
)

func TestRenderRule(t *testing.T) {
	r := rules.MustRule(`(?i)(octop)us$`, "${1}i")

	result := RenderRule(r)
	if !strings.Contains(result, "(?i)(octop)us$") {
		t.Errorf("Expected output to contain the pattern, got %q", result)
	}
	if !strings.Contains(result, "${1}i") {
		t.Errorf("Expected output to contain the replacement, got %q", result)
	}
}

func TestRenderRuleEmptyReplacement(t *testing.T) {
	r := rules.MustRule(`(?i)s$`, "")

	result := RenderRule(r)
	if !strings.Contains(result, `""`) {
		t.Errorf("Expected empty replacement rendered as quotes, got %q", result)
	}
}

func TestRenderChain(t *testing.T) {
	chain := []rules.Rule{
		rules.MustRule(`(?i)(quiz)$`, "${1}zes"),
		rules.MustRule(`$`, "s"),
	}

	result := RenderChain("plurals", chain)
	if !strings.Contains(result, "plurals") {
		t.Error("Expected output to contain the title")
	}
	if !strings.Contains(result, "(?i)(quiz)$") {
		t.Error("Expected output to contain the first rule")
	}
}

func TestRenderChainEmpty(t *testing.T) {
	result := RenderChain("humans", nil)
	if !strings.Contains(result, "(empty)") {
		t.Errorf("Expected '(empty)' marker, got %q", result)
	}
}

func TestRenderWordList(t *testing.T) {
	result := RenderWordList("uncountables", []string{"fish", "sheep"})
	if !strings.Contains(result, "fish, sheep") {
		t.Errorf("Expected joined word list, got %q", result)
	}

	empty := RenderWordList("acronyms", nil)
	if !strings.Contains(empty, "(empty)") {
		t.Errorf("Expected '(empty)' marker, got %q", empty)
	}
}

func TestRenderField(t *testing.T) {
	result := RenderField("plural", "octopi")
	if !strings.Contains(result, "plural:") {
		t.Errorf("Expected label with colon, got %q", result)
	}
	if !strings.Contains(result, "octopi") {
		t.Errorf("Expected value, got %q", result)
	}
}
