package aseprite

import (
	"errors"
	"image"
	"math"
	"slices"
	"testing"
	"time"
)

// testFrame creates an untrimmed, unrotated frame at (x, y) with size w×h.
func testFrame(x, y, w, h uint32, duration uint64) Frame {
	return Frame{
		Frame:            Rect{X: x, Y: y, W: w, H: h},
		SpriteSourceSize: Rect{X: 0, Y: 0, W: w, H: h},
		SourceSize:       Size{W: w, H: h},
		Duration:         duration,
	}
}

// testSheet creates a 128×128 sheet over the given frames and tags.
func testSheet(frames Frames, tags ...FrameTag) *Sheet {
	return &Sheet{
		Frames: frames,
		Meta: Meta{
			Image:     "sheet.png",
			Size:      Size{W: 128, H: 128},
			FrameTags: tags,
		},
	}
}

func threeFrames() Frames {
	return FramesList(
		testFrame(0, 0, 32, 32, 100),
		testFrame(32, 0, 32, 32, 150),
		testFrame(64, 0, 32, 32, 200),
	)
}

// TestNewState_Directions tests duration and rectangle order for both directions
func TestNewState_Directions(t *testing.T) {
	tests := []struct {
		name          string
		direction     Direction
		wantDurations []uint64
		wantFirstRect image.Rectangle
	}{
		{"forward", Forward, []uint64{100, 150, 200}, image.Rect(0, 0, 32, 32)},
		{"reverse", Reverse, []uint64{200, 150, 100}, image.Rect(64, 0, 96, 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := FrameTag{Name: "walk", From: 0, To: 2, Direction: tt.direction, Color: "#000000"}
			state, err := newState(&tag, testSheet(threeFrames(), tag))
			if err != nil {
				t.Fatalf("newState error: %v", err)
			}

			if got := state.Durations(); !slices.Equal(got, tt.wantDurations) {
				t.Errorf("Expected durations %v, got %v", tt.wantDurations, got)
			}
			if state.Layout().Len() != 3 {
				t.Fatalf("Expected 3 rectangles, got %d", state.Layout().Len())
			}
			if r, _ := state.Layout().Rect(0); r != tt.wantFirstRect {
				t.Errorf("Expected local frame 0 at %v, got %v", tt.wantFirstRect, r)
			}
			if state.First() != 0 || state.Last() != 2 {
				t.Errorf("Expected local range [0, 2], got [%d, %d]", state.First(), state.Last())
			}
			if state.Direction != tt.direction {
				t.Errorf("Expected direction %v, got %v", tt.direction, state.Direction)
			}
		})
	}
}

// TestNewState_LocalIndices tests that a tag in the middle of the sheet is zero-based
func TestNewState_LocalIndices(t *testing.T) {
	frames := FramesList(
		testFrame(0, 0, 16, 16, 10),
		testFrame(16, 0, 16, 16, 20),
		testFrame(32, 0, 16, 16, 30),
		testFrame(48, 0, 16, 16, 40),
	)
	tag := FrameTag{Name: "mid", From: 2, To: 3, Color: "#FFFFFF"}

	state, err := newState(&tag, testSheet(frames, tag))
	if err != nil {
		t.Fatalf("newState error: %v", err)
	}

	if state.Len() != 2 {
		t.Fatalf("Expected 2 frames, got %d", state.Len())
	}
	if d, ok := state.Duration(0); !ok || d != 30 {
		t.Errorf("Expected local frame 0 duration 30, got %d (ok=%v)", d, ok)
	}
	if _, ok := state.Duration(2); ok {
		t.Error("Expected local frame 2 to be out of range")
	}
	if got := state.FrameDuration(1); got != 40*time.Millisecond {
		t.Errorf("Expected 40ms, got %v", got)
	}
	if got := state.TotalDuration(); got != 70*time.Millisecond {
		t.Errorf("Expected total 70ms, got %v", got)
	}
}

// TestNewState_InvalidRange tests that from > to fails before any frame is read
func TestNewState_InvalidRange(t *testing.T) {
	for _, dir := range []Direction{Forward, Reverse} {
		tag := FrameTag{Name: "bad", From: 5, To: 2, Direction: dir, Color: "#000000"}

		// No frames at all: touching one would fail with a different error
		_, err := newState(&tag, testSheet(FramesList(), tag))

		var rangeErr *InvalidTagRangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("%v: expected *InvalidTagRangeError, got %v", dir, err)
		}
		if rangeErr.From != 5 || rangeErr.To != 2 {
			t.Errorf("%v: expected range (5, 2), got (%d, %d)", dir, rangeErr.From, rangeErr.To)
		}
	}
}

// TestNewState_DictFrames tests that dictionary frames are rejected whatever the range
func TestNewState_DictFrames(t *testing.T) {
	frames := FramesDict(map[string]Frame{"hero 0.aseprite": testFrame(0, 0, 8, 8, 10)})
	tags := []FrameTag{
		{Name: "ok", From: 0, To: 0, Color: "#000000"},
		{Name: "inverted", From: 3, To: 1, Color: "#000000"},
		{Name: "bad color", From: 0, To: 0, Color: "nope"},
	}

	for _, tag := range tags {
		_, err := newState(&tag, testSheet(frames, tag))

		var unsupported *UnsupportedError
		if !errors.As(err, &unsupported) || unsupported.Feature != FeatureFramesDict {
			t.Errorf("Tag %q: expected dictionary unsupported error, got %v", tag.Name, err)
		}
	}
}

// TestNewState_UnsupportedFrames tests the frame validation rules
func TestNewState_UnsupportedFrames(t *testing.T) {
	rotated := testFrame(32, 0, 32, 32, 150)
	rotated.Rotated = true

	trimmed := testFrame(32, 0, 32, 32, 150)
	trimmed.Trimmed = true

	smallSource := testFrame(32, 0, 32, 32, 150)
	smallSource.SourceSize = Size{W: 40, H: 32}

	celTrimmed := testFrame(32, 0, 32, 32, 150)
	celTrimmed.SpriteSourceSize = Rect{X: 2, Y: 2, W: 28, H: 28}

	rotatedAndTrimmed := trimmed
	rotatedAndTrimmed.Rotated = true

	tests := []struct {
		name        string
		frame       Frame
		wantFeature string
	}{
		{"rotated", rotated, FeatureFrameRotation},
		{"trimmed flag", trimmed, FeatureSpriteTrimming},
		{"source size mismatch", smallSource, FeatureSpriteTrimming},
		{"cel trimmed", celTrimmed, FeatureCelTrimming},
		{"rotation checked first", rotatedAndTrimmed, FeatureFrameRotation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frames := FramesList(testFrame(0, 0, 32, 32, 100), tt.frame, testFrame(64, 0, 32, 32, 200))
			tag := FrameTag{Name: "walk", From: 0, To: 2, Color: "#000000"}

			state, err := newState(&tag, testSheet(frames, tag))
			if state != nil {
				t.Error("Expected no state on failure")
			}

			var unsupported *UnsupportedError
			if !errors.As(err, &unsupported) {
				t.Fatalf("Expected *UnsupportedError, got %v", err)
			}
			if unsupported.Feature != tt.wantFeature {
				t.Errorf("Expected feature %q, got %q", tt.wantFeature, unsupported.Feature)
			}
		})
	}
}

// TestNewState_FirstFailureInPlaybackOrder tests that reverse tags report the last frame first
func TestNewState_FirstFailureInPlaybackOrder(t *testing.T) {
	rotated := testFrame(0, 0, 32, 32, 100)
	rotated.Rotated = true
	celTrimmed := testFrame(64, 0, 32, 32, 200)
	celTrimmed.SpriteSourceSize = Rect{W: 16, H: 16}

	frames := FramesList(rotated, testFrame(32, 0, 32, 32, 150), celTrimmed)

	forward := FrameTag{Name: "f", From: 0, To: 2, Direction: Forward, Color: "#000000"}
	_, err := newState(&forward, testSheet(frames, forward))
	var unsupported *UnsupportedError
	if !errors.As(err, &unsupported) || unsupported.Feature != FeatureFrameRotation {
		t.Errorf("Forward: expected rotation error, got %v", err)
	}

	reverse := FrameTag{Name: "r", From: 0, To: 2, Direction: Reverse, Color: "#000000"}
	_, err = newState(&reverse, testSheet(frames, reverse))
	if !errors.As(err, &unsupported) || unsupported.Feature != FeatureCelTrimming {
		t.Errorf("Reverse: expected cel trimming error, got %v", err)
	}
}

// TestNewState_BadColor tests that a color error discards the state
func TestNewState_BadColor(t *testing.T) {
	tag := FrameTag{Name: "walk", From: 0, To: 2, Color: "112233"}

	state, err := newState(&tag, testSheet(threeFrames(), tag))
	if state != nil {
		t.Error("Expected no state on failure")
	}
	var colorErr *ColorError
	if !errors.As(err, &colorErr) {
		t.Fatalf("Expected *ColorError, got %v", err)
	}
	if colorErr.Kind != ColorWrongLength {
		t.Errorf("Expected wrong length kind, got %d", colorErr.Kind)
	}
}

// TestNewState_TagPastFrameList tests that a tag ending past the last frame fails
// before any frame is read, including values that overflow int
func TestNewState_TagPastFrameList(t *testing.T) {
	tests := []struct {
		name      string
		tag       FrameTag
		wantIndex uint
	}{
		{"forward past end", FrameTag{From: 1, To: 4, Direction: Forward}, 3},
		{"forward starts past end", FrameTag{From: 5, To: 6, Direction: Forward}, 5},
		{"reverse past end", FrameTag{From: 0, To: 4, Direction: Reverse}, 4},
		{"max uint forward", FrameTag{From: 0, To: math.MaxUint, Direction: Forward}, 3},
		{"max uint reverse", FrameTag{From: 0, To: math.MaxUint, Direction: Reverse}, math.MaxUint},
		{"max uint single frame", FrameTag{From: math.MaxUint, To: math.MaxUint}, math.MaxUint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := tt.tag
			tag.Name = "long"
			tag.Color = "#000000"

			state, err := newState(&tag, testSheet(threeFrames(), tag))
			if state != nil {
				t.Fatalf("Expected no state, got one with %d frames", state.Len())
			}
			var idxErr *FrameIndexError
			if !errors.As(err, &idxErr) {
				t.Fatalf("Expected *FrameIndexError, got %v", err)
			}
			if idxErr.Index != tt.wantIndex || idxErr.Len != 3 {
				t.Errorf("Expected index %d of 3, got index %d of %d", tt.wantIndex, idxErr.Index, idxErr.Len)
			}
		})
	}
}

// TestNewState_FrameCount tests that a state holds exactly to-from+1 frames
func TestNewState_FrameCount(t *testing.T) {
	for from := uint(0); from < 3; from++ {
		for to := from; to < 3; to++ {
			for _, dir := range []Direction{Forward, Reverse} {
				tag := FrameTag{Name: "n", From: from, To: to, Direction: dir, Color: "#000000"}
				state, err := newState(&tag, testSheet(threeFrames(), tag))
				if err != nil {
					t.Fatalf("(%d, %d, %v): newState error: %v", from, to, dir, err)
				}
				if state.Len() != int(to-from+1) || state.Last() != int(to-from) {
					t.Errorf("(%d, %d, %v): expected %d frames, got %d (last %d)", from, to, dir, to-from+1, state.Len(), state.Last())
				}
			}
		}
	}
}
