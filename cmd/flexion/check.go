package flexion

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/flexion/pkg/inflect"
	"github.com/arthur-debert/flexion/pkg/style"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "check <word>",
		Short:   MsgCheckShort,
		GroupID: "rules",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]
			locale := opts.targetLocale()
			store := inflect.Default.Locale(locale)

			uncountable := store.IsUncountable(word)
			canonical, isAcronym := store.Acronym(word)

			if !styledOutput() {
				cmd.Printf("word:        %s\n", word)
				cmd.Printf("locale:      %s\n", locale)
				cmd.Printf("uncountable: %v\n", uncountable)
				if isAcronym {
					cmd.Printf("acronym:     %s\n", canonical)
				} else {
					cmd.Printf("acronym:     no\n")
				}
				cmd.Printf("plural:      %s\n", inflect.Default.PluralizeFor(locale, word))
				cmd.Printf("singular:    %s\n", inflect.Default.SingularizeFor(locale, word))
				return nil
			}

			writer := cmd.OutOrStdout()
			fmt.Fprintln(writer, style.TitleStyle.Render(style.WordStyle.Render(word)))
			fmt.Fprintln(writer, style.RenderField("locale", locale))
			fmt.Fprintln(writer, style.RenderField("uncountable", strconv.FormatBool(uncountable)))
			if isAcronym {
				fmt.Fprintln(writer, style.RenderField("acronym", canonical))
			} else {
				fmt.Fprintln(writer, style.RenderField("acronym", "no"))
			}
			fmt.Fprintln(writer, style.RenderField("plural", inflect.Default.PluralizeFor(locale, word)))
			fmt.Fprintln(writer, style.RenderField("singular", inflect.Default.SingularizeFor(locale, word)))
			return nil
		},
	}
}
