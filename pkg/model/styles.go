package model

import (
	"fmt"
	"strings"

	lib "github.com/charmbracelet/charm/ui/common"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	te "github.com/muesli/termenv"
)

type styleFunc func(string) string

const (
	darkGrayHex = "#333333"
)

var (
	normalFg    = newFgStyle(lib.NewColorPair("#dddddd", "#1a1a1a"))
	dimNormalFg = newFgStyle(lib.NewColorPair("#777777", "#A49FA5"))

	brightGrayFg    = newFgStyle(lib.NewColorPair("#979797", "#847A85"))
	dimBrightGrayFg = newFgStyle(lib.NewColorPair("#4D4D4D", "#C2B8C2"))

	grayFg     = newFgStyle(lib.NewColorPair("#626262", "#909090"))
	midGrayFg  = newFgStyle(lib.NewColorPair("#4A4A4A", "#B2B2B2"))
	darkGrayFg = newFgStyle(lib.NewColorPair("#3C3C3C", "#DDDADA"))

	greenFg        = newFgStyle(lib.NewColorPair("#04B575", "#04B575"))
	semiDimGreenFg = newFgStyle(lib.NewColorPair("#036B46", "#35D79C"))
	dimGreenFg     = newFgStyle(lib.NewColorPair("#0B5137", "#72D2B0"))

	fuchsiaFg    = newFgStyle(lib.Fuschia)
	dimFuchsiaFg = newFgStyle(lib.NewColorPair("#99519E", "#F1A8FF"))

	dullFuchsiaFg    = newFgStyle(lib.NewColorPair("#AD58B4", "#F793FF"))
	dimDullFuchsiaFg = newFgStyle(lib.NewColorPair("#6B3A6F", "#F6C9FF"))

	indigoFg    = newFgStyle(lib.Indigo)
	dimIndigoFg = newFgStyle(lib.NewColorPair("#494690", "#9498FF"))

	subtleIndigoFg    = newFgStyle(lib.NewColorPair("#514DC1", "#7D79F6"))
	dimSubtleIndigoFg = newFgStyle(lib.NewColorPair("#383584", "#BBBDFF"))

	yellowFg     = newFgStyle(lib.YellowGreen)                        // renders light green on light backgrounds
	dullYellowFg = newFgStyle(lib.NewColorPair("#9BA92F", "#6BCB94")) // renders light green on light backgrounds
	redFg        = newFgStyle(lib.Red)
	faintRedFg   = newFgStyle(lib.FaintRed)

	fuschia = lipgloss.Color("205")

	dialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 0).
			BorderTop(true).
			BorderLeft(true).
			BorderRight(true).
			BorderBottom(true)
)

// Returns a new termenv style with background options only.
func newFgStyle(c lib.ColorPair) styleFunc {
	return te.Style{}.Foreground(c.Color()).Styled
}

func colorGrid(xSteps, ySteps int) [][]string {
	x0y0, _ := colorful.Hex("#F25D94")
	x1y0, _ := colorful.Hex("#EDFF82")
	x0y1, _ := colorful.Hex("#643AFF")
	x1y1, _ := colorful.Hex("#14F9D5")

	x0 := make([]colorful.Color, ySteps)
	for i := range x0 {
		x0[i] = x0y0.BlendLuv(x0y1, float64(i)/float64(ySteps))
	}

	x1 := make([]colorful.Color, ySteps)
	for i := range x1 {
		x1[i] = x1y0.BlendLuv(x1y1, float64(i)/float64(ySteps))
	}

	grid := make([][]string, ySteps)
	for x := 0; x < ySteps; x++ {
		y0 := x0[x]
		grid[x] = make([]string, xSteps)
		for y := 0; y < xSteps; y++ {
			grid[x][y] = y0.BlendLuv(x1[x], float64(y)/float64(xSteps)).Hex()
		}
	}

	return grid
}

func errorView(err error, fatal bool) string {
	exitMsg := "press any key to "
	if fatal {
		exitMsg += "exit"
	} else {
		exitMsg += "return"
	}
	s := fmt.Sprintf("%s\n\n%v\n\n%s",
		te.String(" ERROR ").
			Foreground(lib.Cream.Color()).
			Background(lib.Red.Color()).
			String(),
		err,
		lib.Subtle(exitMsg),
	)
	return dialogBoxStyle.Copy().Align(lipgloss.Center).Render(s)
}

// Lightweight version of reflow's indent function.
func indent(s string, n int) string {
	if n <= 0 || s == "" {
		return s
	}
	l := strings.Split(s, "\n")
	b := strings.Builder{}
	i := strings.Repeat(" ", n)
	for _, v := range l {
		fmt.Fprintf(&b, "%s%s\n", i, v)
	}
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
