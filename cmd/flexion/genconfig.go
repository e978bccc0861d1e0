package flexion

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/flexion/pkg/config"
	"github.com/arthur-debert/flexion/pkg/errors"
)

func newGenConfigCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		GroupID: "rules",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			starter, err := config.Starter()
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = filepath.Join(xdg.ConfigHome, "flexion", "rules.toml")
			}

			fsys := afero.NewOsFs()
			if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrConfigLoad, "failed to create config directory for %s", path)
			}
			if err := afero.WriteFile(fsys, path, starter, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrConfigLoad, "failed to write starter rules file %s", path)
			}

			if styledOutput() {
				pterm.Success.Printfln(MsgConfigWritten, path)
			} else {
				cmd.Printf(MsgConfigWritten+"\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	return cmd
}
