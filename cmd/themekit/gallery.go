package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/tui/gallery"
)

func newGalleryCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse widget states interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, app)
		},
	}

	return cmd
}

func runGallery(cmd *cobra.Command, app *appContext) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("start gallery", "standard output is not a terminal", errNotTerminal,
			"Run 'themekit preview' for non-interactive output.")
	}

	log := app.log.WithComponent("command.gallery")
	log.Info("launching gallery")

	model := gallery.NewModel(app.manager, gallery.Options{Output: cmd.OutOrStdout(), Logger: app.log})
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := program.Run(); err != nil {
		log.Error(err, "gallery exited with error")
		return newCommandError("run gallery", "interactive session", err, "Try a larger terminal window.")
	}
	return nil
}
