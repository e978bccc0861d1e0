package flexion

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/flexion/pkg/errors"
	"github.com/arthur-debert/flexion/pkg/inflect"
	"github.com/arthur-debert/flexion/pkg/rules"
	"github.com/arthur-debert/flexion/pkg/style"
)

// ruleDump is the machine-readable form of a rule
type ruleDump struct {
	Pattern     string `json:"pattern" yaml:"pattern"`
	Replacement string `json:"replacement" yaml:"replacement"`
}

// localeDump is the machine-readable form of a locale's rule store
type localeDump struct {
	Locale       string            `json:"locale" yaml:"locale"`
	Plurals      []ruleDump        `json:"plurals,omitempty" yaml:"plurals,omitempty"`
	Singulars    []ruleDump        `json:"singulars,omitempty" yaml:"singulars,omitempty"`
	Humans       []ruleDump        `json:"humans,omitempty" yaml:"humans,omitempty"`
	Uncountables []string          `json:"uncountables,omitempty" yaml:"uncountables,omitempty"`
	Acronyms     map[string]string `json:"acronyms,omitempty" yaml:"acronyms,omitempty"`
}

func dumpChain(chain []rules.Rule) []ruleDump {
	out := make([]ruleDump, 0, len(chain))
	for _, r := range chain {
		out = append(out, ruleDump{Pattern: r.Pattern(), Replacement: r.Replacement()})
	}
	return out
}

func newRulesCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:       "rules [plurals|singulars|humans|uncountables|acronyms]",
		Short:     MsgRulesShort,
		Long:      MsgRulesLong,
		GroupID:   "rules",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"plurals", "singulars", "humans", "uncountables", "acronyms"},
		RunE: func(cmd *cobra.Command, args []string) error {
			section := ""
			if len(args) == 1 {
				section = strings.ToLower(args[0])
			}

			store := inflect.Default.Locale(opts.targetLocale())
			dump := localeDump{Locale: store.Locale()}
			if section == "" || section == "plurals" {
				dump.Plurals = dumpChain(store.Plurals())
			}
			if section == "" || section == "singulars" {
				dump.Singulars = dumpChain(store.Singulars())
			}
			if section == "" || section == "humans" {
				dump.Humans = dumpChain(store.Humans())
			}
			if section == "" || section == "uncountables" {
				dump.Uncountables = store.Uncountables()
			}
			if section == "" || section == "acronyms" {
				dump.Acronyms = store.Acronyms()
			}

			switch strings.ToLower(format) {
			case "table":
				if !styledOutput() {
					return renderRulesPlain(cmd, dump)
				}
				return renderRulesTable(cmd, dump)
			case "plain", "text":
				return renderRulesPlain(cmd, dump)
			case "json":
				out, err := json.MarshalIndent(dump, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(out))
				return nil
			case "yaml":
				out, err := yaml.Marshal(dump)
				if err != nil {
					return err
				}
				cmd.Print(string(out))
				return nil
			default:
				return errors.Newf(errors.ErrInvalidInput, "unknown format %q", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", MsgFlagFormat)
	return cmd
}

func renderRulesTable(cmd *cobra.Command, dump localeDump) error {
	writer := cmd.OutOrStdout()
	fmt.Fprintln(writer, style.TitleStyle.Render("Rules for locale "+dump.Locale))

	sections := []struct {
		title string
		rules []ruleDump
	}{
		{"plurals", dump.Plurals},
		{"singulars", dump.Singulars},
		{"humans", dump.Humans},
	}
	for _, section := range sections {
		if section.rules == nil {
			continue
		}
		data := pterm.TableData{{"#", "Pattern", "Replacement"}}
		for i, r := range section.rules {
			data = append(data, []string{strconv.Itoa(i), r.Pattern, r.Replacement})
		}
		fmt.Fprintln(writer, style.SubtitleStyle.Render(section.title))
		rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(writer, rendered)
	}

	if dump.Uncountables != nil {
		fmt.Fprintln(writer, style.RenderWordList("uncountables", dump.Uncountables))
	}
	if dump.Acronyms != nil {
		fmt.Fprintln(writer, style.RenderWordList("acronyms", acronymForms(dump.Acronyms)))
	}
	return nil
}

// acronymForms returns the canonical forms sorted for stable output
func acronymForms(table map[string]string) []string {
	forms := make([]string, 0, len(table))
	for _, v := range table {
		forms = append(forms, v)
	}
	sort.Strings(forms)
	return forms
}

func renderRulesPlain(cmd *cobra.Command, dump localeDump) error {
	cmd.Println("locale: " + dump.Locale)

	sections := []struct {
		title string
		rules []ruleDump
	}{
		{"plurals", dump.Plurals},
		{"singulars", dump.Singulars},
		{"humans", dump.Humans},
	}
	for _, section := range sections {
		if section.rules == nil {
			continue
		}
		cmd.Println(section.title + ":")
		for _, r := range section.rules {
			cmd.Printf("  %s -> %q\n", r.Pattern, r.Replacement)
		}
	}

	if dump.Uncountables != nil {
		cmd.Println("uncountables: " + strings.Join(dump.Uncountables, ", "))
	}
	if dump.Acronyms != nil {
		cmd.Println("acronyms: " + strings.Join(acronymForms(dump.Acronyms), ", "))
	}
	return nil
}
