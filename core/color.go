package core

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Palette of the LCD color constants
var (
	RGBBlack  = RGB{0, 0, 0}
	RGBWhite  = RGB{255, 255, 255}
	RGBRed    = RGB{255, 0, 0}
	RGBGreen  = RGB{0, 255, 0}
	RGBBlue   = RGB{0, 0, 255}
	RGBYellow = RGB{255, 255, 0}
)

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// Hex renders the color as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseRGB accepts #rrggbb (leading '#' optional) or a palette name
func ParseRGB(s string) (RGB, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black":
		return RGBBlack, nil
	case "white":
		return RGBWhite, nil
	case "red":
		return RGBRed, nil
	case "green":
		return RGBGreen, nil
	case "blue":
		return RGBBlue, nil
	case "yellow":
		return RGBYellow, nil
	}

	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
