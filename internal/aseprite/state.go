package aseprite

import "time"

// State is one animation clip built from a frame tag. Frames are addressed by a
// zero-based local index in playback order; index 0 is the first frame shown.
type State struct {
	Name      string
	Direction Direction
	Color     Color

	// Handle is the layout handle returned by the registry, zero when none was configured
	Handle LayoutHandle

	// durations in milliseconds, parallel to layout's rectangles
	durations []uint64
	layout    *AtlasLayout
}

// newState validates the tag's frames and packs them into a fresh layout.
// Nothing is kept when any step fails. The layout is registered later by the caller.
func newState(tag *FrameTag, sheet *Sheet) (*State, error) {
	if sheet.Frames.IsDict() {
		return nil, &UnsupportedError{Feature: FeatureFramesDict}
	}
	if tag.From > tag.To {
		return nil, &InvalidTagRangeError{From: tag.From, To: tag.To}
	}
	// Checked on the unsigned values; converting first could wrap to a negative int.
	if n := uint(len(sheet.Frames.List)); tag.To >= n {
		index := tag.To
		if tag.Direction == Forward {
			index = max(tag.From, n)
		}
		return nil, &FrameIndexError{Index: index, Len: len(sheet.Frames.List)}
	}

	durations := make([]uint64, 0, tag.To-tag.From+1)
	layout := NewAtlasLayout(sheet.Meta.Size)
	for frame, err := range sheet.Frames.slice(int(tag.From), int(tag.To), tag.Direction) {
		if err != nil {
			return nil, err
		}
		if err := validateFrame(frame); err != nil {
			return nil, err
		}
		layout.Add(frame.Frame)
		durations = append(durations, frame.Duration)
	}

	color, err := ParseColor(tag.Color)
	if err != nil {
		return nil, err
	}

	layout.freeze()

	return &State{
		Name:      tag.Name,
		Direction: tag.Direction,
		Color:     color.Normalize(),
		durations: durations,
		layout:    layout,
	}, nil
}

// Len returns the number of frames in the state.
func (s *State) Len() int {
	return len(s.durations)
}

// First returns the local index of the first frame. It is always 0.
func (s *State) First() int {
	return 0
}

// Last returns the local index of the last frame.
func (s *State) Last() int {
	return len(s.durations) - 1
}

// Duration returns the display time of frame i in milliseconds.
func (s *State) Duration(i int) (uint64, bool) {
	if i < 0 || i >= len(s.durations) {
		return 0, false
	}
	return s.durations[i], true
}

// FrameDuration is Duration as a time.Duration; it is zero for an out-of-range index.
func (s *State) FrameDuration(i int) time.Duration {
	ms, _ := s.Duration(i)
	return time.Duration(ms) * time.Millisecond
}

// Durations returns a copy of the per-frame durations in milliseconds.
func (s *State) Durations() []uint64 {
	out := make([]uint64, len(s.durations))
	copy(out, s.durations)
	return out
}

// TotalDuration is the time one pass over every frame takes.
func (s *State) TotalDuration() time.Duration {
	var total uint64
	for _, d := range s.durations {
		total += d
	}
	return time.Duration(total) * time.Millisecond
}

// Layout returns the frozen atlas layout of the state.
func (s *State) Layout() *AtlasLayout {
	return s.layout
}
