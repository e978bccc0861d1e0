package flexion

import (
	"embed"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/flexion/pkg/errors"
)

//go:embed topics/*.md
var topicFiles embed.FS

// topicNames lists the embedded documentation topics
func topicNames() []string {
	entries, err := topicFiles.ReadDir("topics")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "explain [topic]",
		Short:     MsgExplainShort,
		GroupID:   "misc",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: topicNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.Println(MsgAvailableTopic)
				for _, name := range topicNames() {
					cmd.Println("  " + name)
				}
				return nil
			}

			name := strings.ToLower(args[0])
			content, err := topicFiles.ReadFile("topics/" + name + ".md")
			if err != nil {
				return errors.Newf(errors.ErrNotFound, MsgErrUnknownTopic, name)
			}

			cmd.Print(renderMarkdown(string(content)))
			return nil
		},
	}
}

// renderMarkdown renders markdown for the terminal through glamour, falling
// back to the raw content when rendering is unavailable.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
