// Package aseprite turns Aseprite JSON sprite-sheet exports into validated animation data.
// A sheet export contains a flat list of frames packed into one image and a meta block
// whose frame tags name the animation clips. Every tag becomes a State with its frames
// ordered for playback, their durations and their atlas rectangles.
package aseprite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
)

// Sheet is the root of an Aseprite JSON export.
// It only lives while an Animation is being built.
type Sheet struct {
	// Frames holds every exported cel, as an array or as a name-keyed object
	Frames Frames `json:"frames"`

	// Meta carries the sheet size, image reference and frame tags
	Meta Meta `json:"meta"`
}

// Frame is one exported frame of the sheet.
type Frame struct {
	// Filename is the identifier Aseprite generated for the frame, e.g. "hero 0.aseprite"
	Filename string `json:"filename"`

	// Frame is the frame's rectangle inside the sheet image
	Frame Rect `json:"frame"`

	// Rotated reports whether the packer rotated the frame by 90 degrees
	Rotated bool `json:"rotated"`

	// Trimmed reports whether transparent borders were cut from the frame
	Trimmed bool `json:"trimmed"`

	// SpriteSourceSize is the trimmed rectangle relative to the untrimmed sprite
	SpriteSourceSize Rect `json:"spriteSourceSize"`

	// SourceSize is the untrimmed sprite size
	SourceSize Size `json:"sourceSize"`

	// Duration is how long the frame is shown, in milliseconds
	Duration uint64 `json:"duration"`
}

// Frames is the "frames" member of a sheet. Aseprite exports it either as an array
// ("Array" mode) or as an object keyed by frame filename ("Hash" mode). Only the
// array form can be interpreted; the object form decodes but is rejected when
// states are built.
type Frames struct {
	List []Frame
	Dict map[string]Frame

	isDict bool
}

// FramesList wraps an ordered frame list.
func FramesList(frames ...Frame) Frames {
	return Frames{List: frames}
}

// FramesDict wraps a name-keyed frame map.
func FramesDict(frames map[string]Frame) Frames {
	return Frames{Dict: frames, isDict: true}
}

// IsDict reports whether the frames were exported as a name-keyed object.
func (f Frames) IsDict() bool {
	return f.isDict
}

// Len returns the number of frames in either representation.
func (f Frames) Len() int {
	if f.isDict {
		return len(f.Dict)
	}
	return len(f.List)
}

// UnmarshalJSON decodes an array into List and an object into Dict.
func (f *Frames) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("frames: empty value")
	}

	switch trimmed[0] {
	case '[':
		var list []Frame
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		*f = FramesList(list...)
		return nil
	case '{':
		var dict map[string]Frame
		if err := json.Unmarshal(trimmed, &dict); err != nil {
			return err
		}
		*f = FramesDict(dict)
		return nil
	default:
		return fmt.Errorf("frames: expected an array or an object, got %.16s", trimmed)
	}
}

// MarshalJSON writes the frames back in the representation they were read in.
func (f Frames) MarshalJSON() ([]byte, error) {
	if f.isDict {
		return json.Marshal(f.Dict)
	}
	if f.List == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(f.List)
}

// FrameTag names an inclusive range of frames that forms one animation clip.
type FrameTag struct {
	Name      string    `json:"name"`
	From      uint      `json:"from"`
	To        uint      `json:"to"`
	Direction Direction `json:"direction"`

	// Color is the tag color as exported, "#RRGGBB" or "#RRGGBBAA"
	Color string `json:"color"`
}

// Meta is the sheet-wide metadata block.
type Meta struct {
	App     string `json:"app"`
	Version string `json:"version"`

	// Image is the file name of the packed sheet image, relative to the JSON file
	Image string `json:"image"`

	Format string `json:"format"`
	Size   Size   `json:"size"`
	Scale  string `json:"scale"`

	FrameTags []FrameTag `json:"frameTags"`

	// Layers is only present when the export includes layer info
	Layers []Layer `json:"layers,omitempty"`

	// Slices are kept undecoded
	Slices []json.RawMessage `json:"slices,omitempty"`
}

// Layer describes one sprite layer. It is informational only.
type Layer struct {
	Name      string `json:"name"`
	Opacity   uint8  `json:"opacity"`
	BlendMode string `json:"blendMode"`
}

// Rect is an axis-aligned rectangle in sheet pixels.
type Rect struct {
	X uint32 `json:"x"`
	Y uint32 `json:"y"`
	W uint32 `json:"w"`
	H uint32 `json:"h"`
}

// Size returns the rectangle's extents.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Bounds converts the rectangle to min/max corner form.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X)+int(r.W), int(r.Y)+int(r.H))
}

// Size is a width and height in pixels.
type Size struct {
	W uint32 `json:"w"`
	H uint32 `json:"h"`
}

// Point converts the size to an image.Point.
func (s Size) Point() image.Point {
	return image.Pt(int(s.W), int(s.H))
}

// Direction is the playback direction of a frame tag.
type Direction uint8

const (
	// Forward plays a tag from its first frame to its last
	Forward Direction = iota
	// Reverse plays a tag from its last frame to its first
	Reverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	switch d {
	case Forward, Reverse:
		return []byte(d.String()), nil
	default:
		return nil, fmt.Errorf("unknown direction %d", uint8(d))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Only "forward" and "reverse" are accepted.
func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "forward":
		*d = Forward
	case "reverse":
		*d = Reverse
	default:
		return fmt.Errorf("unsupported tag direction %q", text)
	}
	return nil
}
