package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/render"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

type resolveOptions struct {
	state   string
	checked bool
}

func newResolveCmd(app *appContext) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <kind>",
		Short: "Resolve the style of one widget kind in one state",
		Long: `Resolve the style record the active theme produces for a widget kind.

Kinds: container, radio, text_input, button, scrollable, slider,
progress_bar, checkbox, rule.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.state, "state", "", "Interaction state (default is the rest state)")
	cmd.Flags().BoolVar(&opts.checked, "checked", false, "Resolve a checkbox as checked")

	return cmd
}

// resolvedRecord is the envelope written by json and yaml output.
type resolvedRecord struct {
	Theme   string `json:"theme" yaml:"theme"`
	Kind    string `json:"kind" yaml:"kind"`
	State   string `json:"state,omitempty" yaml:"state,omitempty"`
	Checked *bool  `json:"checked,omitempty" yaml:"checked,omitempty"`
	Style   any    `json:"style" yaml:"style"`
}

func runResolve(cmd *cobra.Command, app *appContext, kindName string, opts *resolveOptions) error {
	kind, err := style.ParseKind(kindName)
	if err != nil {
		return newCommandError("resolve style", fmt.Sprintf("widget kind %q", kindName), err,
			"Use one of container, radio, text_input, button, scrollable, slider, progress_bar, checkbox or rule.")
	}

	sheet := app.manager.Active()
	record, err := theme.ResolveNamed(sheet, kind, opts.state, opts.checked)
	if err != nil {
		return newCommandError("resolve style", fmt.Sprintf("%s in state %q", kind, opts.state), err,
			fmt.Sprintf("States for %s: %s.", kind, statesHint(kind)))
	}

	envelope := resolvedRecord{Theme: sheet.Name(), Kind: kind.String(), State: opts.state, Style: record}
	if kind.Checkable() {
		envelope.Checked = &opts.checked
	}

	out := cmd.OutOrStdout()
	switch app.cfg.Format {
	case config.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(envelope)
	case config.FormatYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(envelope); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return writeResolveText(out, sheet, kind, opts, record)
	}
}

func writeResolveText(out io.Writer, sheet theme.StyleSheet, kind style.Kind, opts *resolveOptions, record any) error {
	swatch, err := render.New(sheet, render.Options{Output: out}).Kind(kind, opts.state, opts.checked)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, swatch)
	if headline, ok := render.Headline(record); ok {
		fmt.Fprintf(out, "%s %s\n", kind, headline.HexA())
	}
	return nil
}

func statesHint(kind style.Kind) string {
	states := kind.States()
	if len(states) == 0 {
		return "none, it has a single style"
	}
	return strings.Join(states, ", ")
}
