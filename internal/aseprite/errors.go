package aseprite

import (
	"fmt"
)

// Features reported by UnsupportedError.
const (
	FeatureFrameRotation  = "Frame Rotation"
	FeatureSpriteTrimming = "Sprite Trimming"
	FeatureCelTrimming    = "Cel Trimming"
	FeatureFramesDict     = "Frames as dictionary"
)

// ReadError reports that the sheet bytes could not be read.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("could not read sprite sheet: %v", e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// SyntaxError reports that the sheet bytes are not a well-formed Aseprite JSON document.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("could not parse sprite sheet JSON: %v", e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// UnsupportedError reports an Aseprite feature the loader refuses to interpret.
type UnsupportedError struct {
	Feature string
}

func (e *UnsupportedError) Error() string {
	return "unsupported aseprite feature used: " + e.Feature
}

// InvalidTagRangeError reports a frame tag whose From is after its To.
type InvalidTagRangeError struct {
	From, To uint
}

func (e *InvalidTagRangeError) Error() string {
	return fmt.Sprintf("invalid frame tag range (from %d to %d)", e.From, e.To)
}

// FrameIndexError reports a frame tag pointing past the end of the frame list.
type FrameIndexError struct {
	// Index is the first out-of-range frame in playback order
	Index uint
	Len   int
}

func (e *FrameIndexError) Error() string {
	return fmt.Sprintf("frame index %d out of range (sheet has %d frames)", e.Index, e.Len)
}

// ColorErrorKind classifies a ColorError.
type ColorErrorKind uint8

const (
	ColorMissingHash ColorErrorKind = iota + 1
	ColorWrongLength
	ColorInvalidHex
)

// ColorError reports a malformed tag color string.
type ColorError struct {
	Kind  ColorErrorKind
	Value string

	// Length is the byte length of Value
	Length int

	// Offset is the byte offset of the malformed hex group, for ColorInvalidHex
	Offset int

	Err error
}

func (e *ColorError) Error() string {
	switch e.Kind {
	case ColorMissingHash:
		return fmt.Sprintf("color string %q must begin with #", e.Value)
	case ColorWrongLength:
		return fmt.Sprintf("color string must have length 7 or 9; was %d", e.Length)
	case ColorInvalidHex:
		group := e.Value
		if e.Offset >= 0 && e.Offset+2 <= len(e.Value) {
			group = e.Value[e.Offset : e.Offset+2]
		}
		return fmt.Sprintf("invalid color value %q at offset %d: %v", group, e.Offset, e.Err)
	default:
		return fmt.Sprintf("invalid color %q", e.Value)
	}
}

func (e *ColorError) Unwrap() error { return e.Err }

// TagError attaches the frame tag name to a failure raised while building its state.
type TagError struct {
	Tag string
	Err error
}

func (e *TagError) Error() string {
	return fmt.Sprintf("frame tag %q: %v", e.Tag, e.Err)
}

func (e *TagError) Unwrap() error { return e.Err }
