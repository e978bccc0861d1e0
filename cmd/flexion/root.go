package flexion

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/flexion/internal/version"
	"github.com/arthur-debert/flexion/pkg/config"
	"github.com/arthur-debert/flexion/pkg/inflect"
	"github.com/arthur-debert/flexion/pkg/logging"
)

// rootOptions carries the global flag values into the subcommands
type rootOptions struct {
	verbosity int
	locale    string
	rulesFile string
}

// targetLocale resolves the locale the command should use: the --locale
// flag when given, the inflector's default otherwise.
func (o *rootOptions) targetLocale() string {
	if o.locale != "" {
		return o.locale
	}
	return inflect.Default.DefaultLocaleName()
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "flexion",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return loadRules(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given: show help but signal incorrect usage
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.locale, "locale", "", MsgFlagLocale)
	rootCmd.PersistentFlags().StringVar(&opts.rulesFile, "rules", "", MsgFlagRules)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "words",
		Title: "WORD TRANSFORMS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "rules",
		Title: "RULES:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	for _, cmd := range newTransformCmds(opts) {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(newRulesCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newExplainCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadRules applies the configured rules file to the default inflector. An
// explicit --rules path must exist; discovery tolerates a missing file.
func loadRules(opts *rootOptions) error {
	fsys := afero.NewOsFs()

	if opts.rulesFile != "" {
		cfg, err := config.Load(fsys, opts.rulesFile)
		if err != nil {
			return err
		}
		return cfg.Apply(inflect.Default)
	}

	cfg, path, err := config.Discover(fsys)
	if err != nil {
		return err
	}
	if path != "" {
		log.Debug().Str("path", path).Msg("Applying discovered rules file")
	}
	return cfg.Apply(inflect.Default)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("flexion version %s\n", version.Version)
			cmd.Printf("  commit: %s\n", version.Commit)
			cmd.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     MsgCompletionShort,
		GroupID:   "misc",
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
