package main

import (
	"github.com/spf13/cobra"
)

// skipSetupAnnotation marks commands that run without config or themes.
const skipSetupAnnotation = "themekit/skip-setup"

type rootFlags struct {
	configFile string
	theme      string
	format     string
	logLevel   string
	colors     map[string]string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{}

	cmd := &cobra.Command{
		Use:           "themekit",
		Short:         "themekit resolves widget styles from a colour palette",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipSetupAnnotation] == "true" {
				return nil
			}
			return app.setup(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Config file (default is <user config dir>/themekit/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "Default Dark", "Theme to resolve against")
	cmd.PersistentFlags().StringVar(&flags.format, "format", "text", "Output format: text, json or yaml")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().StringToStringVar(&flags.colors, "color", nil, "Override a palette role, e.g. --color accent=#FF0080")

	cmd.AddCommand(newThemesCmd(app))
	cmd.AddCommand(newResolveCmd(app))
	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newGalleryCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
