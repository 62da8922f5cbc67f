package render

import "github.com/gdamore/tcell/v2"

// Palette colors, authored as truecolor and downsampled in ColorMode256
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbArenaRing  = tcell.NewRGBColor(90, 95, 120)   // Dim slate
	RgbHealthy    = tcell.NewRGBColor(80, 200, 120)  // Soft green
	RgbInfected   = tcell.NewRGBColor(255, 140, 60)  // Orange
	RgbDead       = tcell.NewRGBColor(110, 110, 110) // Gray
	RgbVirusFree  = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbVirusTaken = tcell.NewRGBColor(200, 90, 220)  // Purple, antibodies docked
	RgbAntibody   = tcell.NewRGBColor(100, 180, 255) // Sky blue
	RgbFlash      = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
	RgbLeukocyte  = tcell.NewRGBColor(240, 240, 240) // Near white
	RgbCountdown  = tcell.NewRGBColor(255, 200, 150) // Pale orange
	RgbStatusText = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbStatusBg   = tcell.NewRGBColor(40, 42, 60)    // Slightly lifted background
	RgbPausedBg   = tcell.NewRGBColor(200, 50, 50)   // Red badge
	RgbRunningBg  = tcell.NewRGBColor(60, 160, 90)   // Green badge
	RgbAxis       = tcell.NewRGBColor(70, 72, 90)    // Chart frame
)

// ColorMode selects how palette colors reach the terminal
type ColorMode uint8

const (
	ColorModeTrueColor ColorMode = iota
	ColorMode256
)

// ParseColorMode maps a -color flag value; unknown values mean truecolor
func ParseColorMode(s string) ColorMode {
	switch s {
	case "256":
		return ColorMode256
	default:
		return ColorModeTrueColor
	}
}

var xterm256 = func() []tcell.Color {
	p := make([]tcell.Color, 0, 240)
	// Skip the 16 terminal-themed colors, their RGB is not fixed
	for i := 16; i < 256; i++ {
		p = append(p, tcell.PaletteColor(i))
	}
	return p
}()

// Color converts a palette color for the mode
func (m ColorMode) Color(c tcell.Color) tcell.Color {
	if m == ColorMode256 {
		return tcell.FindColor(c, xterm256)
	}
	return c
}

// Style returns a foreground style over the default background
func (m ColorMode) Style(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(m.Color(fg)).Background(m.Color(RgbBackground))
}

// StyleBg returns a style with explicit foreground and background
func (m ColorMode) StyleBg(fg, bg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(m.Color(fg)).Background(m.Color(bg))
}
