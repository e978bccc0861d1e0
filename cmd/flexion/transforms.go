package flexion

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/flexion/pkg/errors"
	"github.com/arthur-debert/flexion/pkg/inflect"
)

// transformSpec describes one word-transform command
type transformSpec struct {
	use   string
	short string
	fn    func(inf *inflect.Inflector, locale, word string) string
}

var transformSpecs = []transformSpec{
	{"pluralize", MsgPluralizeShort, func(inf *inflect.Inflector, locale, word string) string {
		return inf.PluralizeFor(locale, word)
	}},
	{"singularize", MsgSingularizeShort, func(inf *inflect.Inflector, locale, word string) string {
		return inf.SingularizeFor(locale, word)
	}},
	{"underscore", MsgUnderscoreShort, func(inf *inflect.Inflector, locale, word string) string {
		return inf.UnderscoreFor(locale, word)
	}},
	{"humanize", MsgHumanizeShort, func(inf *inflect.Inflector, locale, word string) string {
		return inf.HumanizeFor(locale, word)
	}},
	{"titleize", MsgTitleizeShort, func(inf *inflect.Inflector, locale, word string) string {
		return inf.TitleizeFor(locale, word)
	}},
	{"tableize", MsgTableizeShort, func(inf *inflect.Inflector, locale, word string) string {
		return inf.TableizeFor(locale, word)
	}},
	{"classify", MsgClassifyShort, func(inf *inflect.Inflector, locale, word string) string {
		return inf.ClassifyFor(locale, word)
	}},
	{"dasherize", MsgDasherizeShort, func(inf *inflect.Inflector, locale, word string) string {
		return inf.Dasherize(word)
	}},
}

// newTransformCmds builds the word-transform commands. Each takes one or
// more words and prints one result per line.
func newTransformCmds(opts *rootOptions) []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(transformSpecs)+2)

	for _, spec := range transformSpecs {
		fn := spec.fn
		cmds = append(cmds, &cobra.Command{
			Use:     spec.use + " <word>...",
			Short:   spec.short,
			GroupID: "words",
			Args:    cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, word := range args {
					cmd.Println(fn(inflect.Default, opts.targetLocale(), word))
				}
				return nil
			},
		})
	}

	cmds = append(cmds, newCamelizeCmd(opts), newOrdinalizeCmd())
	return cmds
}

func newCamelizeCmd(opts *rootOptions) *cobra.Command {
	var lower bool

	cmd := &cobra.Command{
		Use:     "camelize <word>...",
		Short:   MsgCamelizeShort,
		GroupID: "words",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, word := range args {
				if lower {
					cmd.Println(inflect.Default.CamelizeLowerFor(opts.targetLocale(), word))
				} else {
					cmd.Println(inflect.Default.CamelizeFor(opts.targetLocale(), word))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&lower, "lower", false, MsgFlagLower)
	return cmd
}

func newOrdinalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ordinalize <number>...",
		Short:   MsgOrdinalizeShort,
		GroupID: "words",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return errors.Newf(errors.ErrInvalidInput, MsgErrBadNumber, arg)
				}
				cmd.Println(inflect.Ordinalize(n))
			}
			return nil
		},
	}
}
