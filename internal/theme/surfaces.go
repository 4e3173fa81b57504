package theme

import (
	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/style"
)

const (
	progressBarBorderRadius float32 = 10.0

	ruleWidth   uint16  = 2
	ruleRadius  float32 = 1.0
	rulePadding uint16  = 15
)

// Container resolves the root box every view sits in.
func (t Theme) Container() style.Container {
	return style.Container{
		Background:   t.colors.background,
		TextColor:    t.colors.text,
		BorderRadius: 0,
		BorderWidth:  0,
		BorderColor:  color.Transparent,
	}
}

// ProgressBar resolves a progress bar.
func (t Theme) ProgressBar() style.ProgressBar {
	return style.ProgressBar{
		Background:   t.colors.surface,
		Bar:          t.colors.active,
		BorderRadius: progressBarBorderRadius,
	}
}

// Rule resolves a divider.
func (t Theme) Rule() style.Rule {
	return style.Rule{
		Color:    t.colors.surface,
		Width:    ruleWidth,
		Radius:   ruleRadius,
		FillMode: style.FillPadded(rulePadding),
	}
}
