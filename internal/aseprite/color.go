package aseprite

import (
	"image/color"
	"strconv"
)

// HexColor is a tag color as four 8-bit channels.
type HexColor struct {
	R, G, B, A uint8
}

// Color is a tag color with every channel normalized to [0, 1].
type Color struct {
	R, G, B, A float32
}

// ParseColor decodes "#RRGGBB" or "#RRGGBBAA". Alpha defaults to 255 when omitted.
func ParseColor(s string) (HexColor, error) {
	if len(s) != 7 && len(s) != 9 {
		return HexColor{}, &ColorError{Kind: ColorWrongLength, Value: s, Length: len(s)}
	}
	if s[0] != '#' {
		return HexColor{}, &ColorError{Kind: ColorMissingHash, Value: s, Length: len(s)}
	}

	var channels [4]uint8
	channels[3] = 255
	for i, offset := 0, 1; offset < len(s); i, offset = i+1, offset+2 {
		v, err := strconv.ParseUint(s[offset:offset+2], 16, 8)
		if err != nil {
			return HexColor{}, &ColorError{
				Kind:   ColorInvalidHex,
				Value:  s,
				Length: len(s),
				Offset: offset,
				Err:    err,
			}
		}
		channels[i] = uint8(v)
	}

	return HexColor{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
}

// Normalize scales every channel to [0, 1].
func (c HexColor) Normalize() Color {
	return Color{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

// NRGBA converts the color for use with image/color.
func (c HexColor) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color. Channels are non-premultiplied, as exported.
func (c HexColor) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts the normalized color back to 8-bit channels, rounding to nearest.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}
