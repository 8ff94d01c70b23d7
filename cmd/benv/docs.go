package benv

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"benv/pkg/cobrax/topics"
	"benv/pkg/errors"
	"benv/pkg/ui"
)

//go:embed docs/*.md
var docsContent embed.FS

// docsFS returns the embedded topic files rooted at their own names.
func docsFS() fs.FS {
	sub, err := fs.Sub(docsContent, "docs")
	if err != nil {
		return docsContent
	}
	return sub
}

// docsRenderer picks glamour for terminals and plain text for pipes.
func docsRenderer(noColor bool) topics.Renderer {
	if ui.DetectFormat(os.Stdout, noColor) == ui.FormatTerminal {
		return topics.NewGlamourRenderer()
	}
	return &topics.PlainRenderer{}
}

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "docs [topic]",
		Short:   MsgDocsShort,
		Example: MsgDocsExample,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			m, err := topics.New(docsFS())
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return m.List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			noColor, _ := cmd.Root().PersistentFlags().GetBool("no-color")
			m, err := topics.NewWithOptions(docsFS(), topics.Options{
				Renderer: docsRenderer(noColor),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, MsgDocsAvailable)
				for _, name := range m.List() {
					fmt.Fprintf(out, "  %s\n", name)
				}
				fmt.Fprint(out, MsgDocsHint)
				return nil
			}

			t, ok := m.Get(args[0])
			if !ok {
				return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownTopic, args[0])
			}
			fmt.Fprint(out, m.Render(t))
			return nil
		},
	}
}
