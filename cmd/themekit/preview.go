package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/themekit/internal/render"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

type previewOptions struct {
	width int
	plain bool
}

func newPreviewCmd(app *appContext) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show every widget kind in every state",
		Long: `Show every widget kind in every state of the active theme.

On a terminal each style is drawn as a coloured swatch. Otherwise, or with
--plain, a table of the headline colour of each style is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, app, opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 40, "Width of bars and rules in cells")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Print a table even on a terminal")

	return cmd
}

func runPreview(cmd *cobra.Command, app *appContext, opts *previewOptions) error {
	sheet := app.manager.Active()
	out := cmd.OutOrStdout()

	if opts.plain || !isTerminal(out) {
		return writePreviewTable(out, sheet)
	}

	preview, err := render.New(sheet, render.Options{Width: opts.width, Output: out}).Preview()
	if err != nil {
		return newCommandError("preview theme", sheet.Name(), err, "Report this theme; every kind should resolve.")
	}
	fmt.Fprintln(out, preview)
	return nil
}

func writePreviewTable(out io.Writer, sheet theme.StyleSheet) error {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "# %s\n", sheet.Name())
	fmt.Fprintln(writer, "KIND\tSTATE\tCHECKED\tCOLOUR")

	for _, kind := range style.Kinds() {
		states := kind.States()
		if states == nil {
			states = []string{""}
		}
		checks := []bool{false}
		if kind.Checkable() {
			checks = []bool{false, true}
		}
		for _, state := range states {
			for _, checked := range checks {
				record, err := theme.ResolveNamed(sheet, kind, state, checked)
				if err != nil {
					return err
				}
				headline, _ := render.Headline(record)
				checkedCol := "-"
				if kind.Checkable() {
					checkedCol = fmt.Sprintf("%t", checked)
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", kind, valueOrFallback(state, "-"), checkedCol, headline.HexA())
			}
		}
	}
	return writer.Flush()
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
