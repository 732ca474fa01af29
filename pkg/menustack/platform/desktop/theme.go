package desktop

import "github.com/veandco/go-sdl2/sdl"

// Theme defines the colours and font used to draw screens.
type Theme struct {
	BackgroundColor      sdl.Color // Screen background
	PanelColor           sdl.Color // Overlay dialog background
	ShadeColor           sdl.Color // Dims the screens beneath an overlay
	TextColor            sdl.Color // Default text colour
	HighlightColor       sdl.Color // Focused line background
	HighlightedTextColor sdl.Color // Text on the focused line
	FontPath             string    // TTF font; empty draws placeholder bars instead of text
	FontSize             int
}

// DefaultTheme returns a dark palette.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		BackgroundColor:      HexToColor(0x101820),
		PanelColor:           HexToColor(0x2A3440),
		ShadeColor:           sdl.Color{R: 0, G: 0, B: 0, A: 160},
		TextColor:            HexToColor(0xFFFFFF),
		HighlightColor:       HexToColor(0xFFFFFF),
		HighlightedTextColor: HexToColor(0x000000),
		FontPath:             fontPath,
		FontSize:             24,
	}
}

// HexToColor converts 0xRRGGBB to an opaque colour.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}
