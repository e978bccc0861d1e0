package flexion

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/flexion/pkg/config"
	flexerrors "github.com/arthur-debert/flexion/pkg/errors"
)

// runCommand executes the CLI with args and returns its combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestPluralizeCmd(t *testing.T) {
	out, err := runCommand(t, "pluralize", "octopus")
	require.NoError(t, err)
	assert.Equal(t, "octopi\n", out)
}

func TestPluralizeCmdMultipleWords(t *testing.T) {
	out, err := runCommand(t, "pluralize", "book", "bus", "fish")
	require.NoError(t, err)
	assert.Equal(t, "books\nbuses\nfish\n", out)
}

func TestSingularizeCmd(t *testing.T) {
	out, err := runCommand(t, "singularize", "matrices")
	require.NoError(t, err)
	assert.Equal(t, "matrix\n", out)
}

func TestTransformCmdRequiresArgs(t *testing.T) {
	_, err := runCommand(t, "pluralize")
	require.Error(t, err)
}

func TestCamelizeCmd(t *testing.T) {
	out, err := runCommand(t, "camelize", "employee_salary")
	require.NoError(t, err)
	assert.Equal(t, "EmployeeSalary\n", out)

	out, err = runCommand(t, "camelize", "--lower", "employee_salary")
	require.NoError(t, err)
	assert.Equal(t, "employeeSalary\n", out)
}

func TestOrdinalizeCmd(t *testing.T) {
	out, err := runCommand(t, "ordinalize", "1", "2", "3", "11", "21")
	require.NoError(t, err)
	assert.Equal(t, "1st\n2nd\n3rd\n11th\n21st\n", out)
}

func TestOrdinalizeCmdBadNumber(t *testing.T) {
	_, err := runCommand(t, "ordinalize", "nope")
	require.Error(t, err)
	assert.True(t, flexerrors.IsErrorCode(err, flexerrors.ErrInvalidInput))
}

func TestRulesCmdJSON(t *testing.T) {
	out, err := runCommand(t, "rules", "--format", "json")
	require.NoError(t, err)

	var dump struct {
		Locale       string   `json:"locale"`
		Plurals      []any    `json:"plurals"`
		Singulars    []any    `json:"singulars"`
		Uncountables []string `json:"uncountables"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &dump))

	assert.Equal(t, "en", dump.Locale)
	assert.NotEmpty(t, dump.Plurals)
	assert.NotEmpty(t, dump.Singulars)
	assert.Contains(t, dump.Uncountables, "fish")
}

func TestRulesCmdSection(t *testing.T) {
	out, err := runCommand(t, "rules", "uncountables", "--format", "plain")
	require.NoError(t, err)

	assert.Contains(t, out, "uncountables:")
	assert.Contains(t, out, "fish")
	assert.NotContains(t, out, "plurals:")
}

func TestRulesCmdUnknownFormat(t *testing.T) {
	_, err := runCommand(t, "rules", "--format", "bogus")
	require.Error(t, err)
	assert.True(t, flexerrors.IsErrorCode(err, flexerrors.ErrInvalidInput))
}

func TestCheckCmd(t *testing.T) {
	out, err := runCommand(t, "check", "fish")
	require.NoError(t, err)

	assert.Contains(t, out, "word:        fish")
	assert.Contains(t, out, "uncountable: true")
	assert.Contains(t, out, "plural:      fish")
}

func TestCheckCmdCountable(t *testing.T) {
	out, err := runCommand(t, "check", "octopus")
	require.NoError(t, err)

	assert.Contains(t, out, "uncountable: false")
	assert.Contains(t, out, "plural:      octopi")
	assert.Contains(t, out, "acronym:     no")
}

func TestRulesFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	body := "locale = \"en\"\n\n[locales.pt]\nplurals = [{ pattern = \"ão$\", replacement = \"ões\" }]\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	out, err := runCommand(t, "--rules", path, "--locale", "pt", "pluralize", "balão")
	require.NoError(t, err)
	assert.Equal(t, "balões\n", out)
}

func TestRulesFileFlagMissing(t *testing.T) {
	_, err := runCommand(t, "--rules", "/does/not/exist.toml", "pluralize", "book")
	require.Error(t, err)
	assert.True(t, flexerrors.IsErrorCode(err, flexerrors.ErrConfigLoad))
}

func TestGenConfigCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")

	out, err := runCommand(t, "genconfig", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	cfg, err := config.Load(afero.NewOsFs(), path)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
}

func TestExplainCmdListsTopics(t *testing.T) {
	out, err := runCommand(t, "explain")
	require.NoError(t, err)

	assert.Contains(t, out, "Available topics:")
	assert.Contains(t, out, "rules")
	assert.Contains(t, out, "locales")
}

func TestExplainCmdUnknownTopic(t *testing.T) {
	_, err := runCommand(t, "explain", "nonsense")
	require.Error(t, err)
	assert.True(t, flexerrors.IsErrorCode(err, flexerrors.ErrNotFound))
}

func TestVersionCmd(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "flexion version")
}

func TestNoSubcommand(t *testing.T) {
	_, err := runCommand(t)
	require.Error(t, err)
}
