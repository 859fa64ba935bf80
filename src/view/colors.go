package view

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

//Color is one of the eight basic terminal colors
type Color int

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var (
	colorNames = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}
	fgColors   = []aurora.Color{aurora.BlackFg, aurora.RedFg, aurora.GreenFg, aurora.YellowFg, aurora.BlueFg, aurora.MagentaFg, aurora.CyanFg, aurora.WhiteFg}
	bgColors   = []aurora.Color{aurora.BlackBg, aurora.RedBg, aurora.GreenBg, aurora.YellowBg, aurora.BlueBg, aurora.MagentaBg, aurora.CyanBg, aurora.WhiteBg}
)

//ParseColor returns the color by its name, case insensitive
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, cn := range colorNames {
		if cn == n {
			return Color(i), nil
		}
	}
	return Black, fmt.Errorf("unknown color %q, expected one of %s", name, strings.Join(colorNames, ", "))
}

//ColorNames returns the names accepted by ParseColor
func ColorNames() []string {
	return append([]string(nil), colorNames...)
}

func (c Color) String() string {
	if !c.valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

func (c Color) valid() bool {
	return c >= Black && c <= White
}

func (c Color) fg() aurora.Color {
	if !c.valid() {
		return aurora.WhiteFg
	}
	return fgColors[c]
}

func (c Color) bg() aurora.Color {
	if !c.valid() {
		return aurora.BlackBg
	}
	return bgColors[c]
}
