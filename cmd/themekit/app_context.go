package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// appContext bundles the services built once per invocation.
type appContext struct {
	cfg     *config.Config
	log     *logger.Logger
	manager *theme.Manager
}

func (a *appContext) setup(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(config.Options{File: flags.configFile, Flags: cmd.Flags()})
	if err != nil {
		return newCommandError("load configuration", "reading themekit settings", err, "Check the config file and THEMEKIT_* environment variables.")
	}

	log, err := logger.New(logger.Options{Level: cfg.LogLevel, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return newCommandError("create logger", "configuring log output", err, "Use one of debug, info, warn or error.")
	}
	log.WithFields(map[string]any{"source": cfg.Source, "theme": cfg.Theme}).Debug("configuration loaded")

	manager := theme.NewManager(nil, log)
	if err := manager.Select(cfg.Theme); err != nil {
		return newCommandError("select theme", fmt.Sprintf("theme %q", cfg.Theme), err,
			fmt.Sprintf("Run 'themekit themes' to list available themes (%s).", strings.Join(manager.Registry().Names(), ", ")))
	}

	if len(flags.colors) > 0 {
		custom, err := customTheme(manager.Active(), flags.colors)
		if err != nil {
			return newCommandError("apply colour overrides", "building a custom palette", err,
				"Use role=#RRGGBB with roles surface, background, accent, active, hovered or text.")
		}
		if err := manager.Registry().Register(custom); err != nil {
			return newCommandError("apply colour overrides", "registering the custom theme", err, "Pick a different base theme.")
		}
		manager.Use(custom)
	}

	a.cfg = cfg
	a.log = log
	a.manager = manager
	return nil
}

type paletteSource interface {
	Colors() theme.Palette
	Dark() bool
}

// customTheme derives a theme from base with the given palette roles replaced.
func customTheme(base theme.StyleSheet, overrides map[string]string) (theme.Theme, error) {
	source, ok := base.(paletteSource)
	if !ok {
		return theme.Theme{}, fmt.Errorf("theme %q does not expose a palette", base.Name())
	}

	spec := source.Colors().Spec()
	slots := map[string]**color.Color{
		"surface":    &spec.Surface,
		"background": &spec.Background,
		"accent":     &spec.Accent,
		"active":     &spec.Active,
		"hovered":    &spec.Hovered,
		"text":       &spec.Text,
	}

	roles := make([]string, 0, len(overrides))
	for role := range overrides {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	for _, role := range roles {
		slot, ok := slots[strings.ToLower(strings.TrimSpace(role))]
		if !ok {
			return theme.Theme{}, fmt.Errorf("unknown palette role %q", role)
		}
		c, err := color.ParseHex(overrides[role])
		if err != nil {
			return theme.Theme{}, err
		}
		*slot = theme.Ptr(c)
	}

	colors, err := theme.NewPalette(spec)
	if err != nil {
		return theme.Theme{}, err
	}
	return theme.NewTheme(base.Name()+" (custom)", "", source.Dark(), colors)
}
