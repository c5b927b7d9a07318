// Package theme is the gold-on-black palette shared by the browser and the
// statblock list.
package theme

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	Accent     = tcell.ColorGold
	Background = tcell.ColorBlack
	Text       = tcell.ColorWhite
	Muted      = tcell.ColorDimGray
	Secondary  = tcell.ColorLightGray
	Tertiary   = tcell.ColorAqua
)

var (
	// Plain is ordinary text on the background.
	Plain = tcell.StyleDefault.Foreground(Text).Background(Background)
	// Highlight marks the chosen entry: background text on the accent.
	Highlight = tcell.StyleDefault.Foreground(Background).Background(Accent)
	// Heading is bold accent text.
	Heading = tcell.StyleDefault.Foreground(Accent).Background(Background).Attributes(tcell.AttrBold)
	// Rule draws separators.
	Rule = tcell.StyleDefault.Foreground(Muted).Background(Background)
)

// Palette is the tview theme built from the colors above.
func Palette() tview.Theme {
	return tview.Theme{
		PrimitiveBackgroundColor:    Background,
		ContrastBackgroundColor:     Background,
		MoreContrastBackgroundColor: Background,
		BorderColor:                 Accent,
		TitleColor:                  Accent,
		GraphicsColor:               Accent,
		PrimaryTextColor:            Text,
		SecondaryTextColor:          Secondary,
		TertiaryTextColor:           Tertiary,
		InverseTextColor:            Background,
		ContrastSecondaryTextColor:  Background,
	}
}

// Apply installs Palette for every primitive created afterwards.
func Apply() {
	tview.Styles = Palette()
}
