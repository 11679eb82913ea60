package ui

import (
	lib "github.com/charmbracelet/charm/ui/common"
	te "github.com/muesli/termenv"
)

type StyleFunc func(string) string

var (
	BrightGrayFg    = NewFgStyle(lib.NewColorPair("#979797", "#847A85"))
	DimBrightGrayFg = NewFgStyle(lib.NewColorPair("#4D4D4D", "#C2B8C2"))

	FuchsiaFg     = NewFgStyle(lib.Fuschia)
	DullFuchsiaFg = NewFgStyle(lib.NewColorPair("#AD58B4", "#F793FF"))

	// Letter row colors
	RowLinePrimaryFocused     = FuchsiaFg
	RowLineSecondaryFocused   = DullFuchsiaFg
	RowLinePrimaryUnfocused   = BrightGrayFg
	RowLineSecondaryUnfocused = DimBrightGrayFg

	// Direction and type tabs in the listing header
	TabColor         = NewFgStyle(lib.NewColorPair("#626262", "#909090"))
	SelectedTabColor = FuchsiaFg
)

// Returns a termenv style with foreground and background options.
func NewStyle(fg, bg lib.ColorPair, bold bool) func(string) string {
	s := te.Style{}.Foreground(fg.Color()).Background(bg.Color())
	if bold {
		s = s.Bold()
	}
	return s.Styled
}

// Returns a new termenv style with background options only.
func NewFgStyle(c lib.ColorPair) StyleFunc {
	return te.Style{}.Foreground(c.Color()).Styled
}
