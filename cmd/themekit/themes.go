package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

type themesOptions struct {
	jsonOutput bool
}

func newThemesCmd(app *appContext) *cobra.Command {
	opts := &themesOptions{}

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemes(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type themeSummary struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Dark        bool   `json:"dark"`
	Active      bool   `json:"active"`
}

type describedSheet interface {
	Description() (string, bool)
	Dark() bool
}

func summarize(app *appContext) []themeSummary {
	active := app.manager.Active().Name()
	sheets := app.manager.Registry().Sheets()

	summaries := make([]themeSummary, 0, len(sheets))
	for _, sheet := range sheets {
		summary := themeSummary{Name: sheet.Name(), Active: sheet.Name() == active}
		if described, ok := sheet.(describedSheet); ok {
			summary.Description, _ = described.Description()
			summary.Dark = described.Dark()
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

func runThemes(cmd *cobra.Command, app *appContext, opts *themesOptions) error {
	summaries := summarize(app)

	if opts.jsonOutput || app.cfg.Format == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(summaries)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "\tNAME\tMODE\tDESCRIPTION")
	for _, s := range summaries {
		marker := ""
		if s.Active {
			marker = "*"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", marker, s.Name, mode(s.Dark), valueOrFallback(s.Description, "-"))
	}
	return writer.Flush()
}

func mode(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

var _ describedSheet = theme.Theme{}
