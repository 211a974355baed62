package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/gonewx/aseanim/internal/aseprite"
)

const storeSheetJSON = `{
  "frames": [
    {"frame": {"x": 0, "y": 0, "w": 16, "h": 16}, "spriteSourceSize": {"x": 0, "y": 0, "w": 16, "h": 16}, "sourceSize": {"w": 16, "h": 16}, "duration": 100},
    {"frame": {"x": 16, "y": 0, "w": 16, "h": 16}, "spriteSourceSize": {"x": 0, "y": 0, "w": 16, "h": 16}, "sourceSize": {"w": 16, "h": 16}, "duration": 200},
    {"frame": {"x": 0, "y": 16, "w": 16, "h": 16}, "spriteSourceSize": {"x": 0, "y": 0, "w": 16, "h": 16}, "sourceSize": {"w": 16, "h": 16}, "duration": 300}
  ],
  "meta": {"image": "bat.png", "size": {"w": 32, "h": 32},
    "frameTags": [
      {"name": "fly", "from": 0, "to": 1, "direction": "forward", "color": "#ff000080"},
      {"name": "fall", "from": 1, "to": 2, "direction": "reverse", "color": "#0000ff"}
    ]}
}`

func createTestResourceFile(t *testing.T) *ResourceFile {
	t.Helper()

	f, err := Open(filepath.Join(t.TempDir(), "sprites.res"))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func parseTestAnimation(t *testing.T) *aseprite.Animation {
	t.Helper()

	anim, err := aseprite.Parse([]byte(storeSheetJSON), aseprite.Options{})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return anim
}

func TestNewAnimationRecord(t *testing.T) {
	rec := NewAnimationRecord(parseTestAnimation(t))

	if rec.Image != "bat.png" {
		t.Errorf("Expected image 'bat.png', got %q", rec.Image)
	}
	if len(rec.States) != 2 || rec.States[0].Name != "fall" || rec.States[1].Name != "fly" {
		t.Fatalf("Expected states [fall fly], got %+v", rec.States)
	}

	fall := rec.States[0]
	if fall.Direction != "reverse" {
		t.Errorf("Expected direction 'reverse', got %q", fall.Direction)
	}
	// reverse: frame 2 first, then frame 1
	if fall.Durations[0] != 300 || fall.Durations[1] != 200 {
		t.Errorf("Expected durations [300 200], got %v", fall.Durations)
	}
	if fall.Frames[0] != (RectRecord{X: 0, Y: 16, W: 16, H: 16}) {
		t.Errorf("Expected first frame at (0,16), got %+v", fall.Frames[0])
	}
	if fall.Color != [4]float32{0, 0, 1, 1} {
		t.Errorf("Expected opaque blue, got %v", fall.Color)
	}
}

func TestResourceFile_AnimationRoundTrip(t *testing.T) {
	f := createTestResourceFile(t)
	anim := parseTestAnimation(t)

	if err := f.PutAnimation("bat", anim); err != nil {
		t.Fatalf("PutAnimation error: %v", err)
	}
	if err := f.PutAnimation("bat_copy", anim); err != nil {
		t.Fatalf("PutAnimation error: %v", err)
	}

	rec, err := f.GetAnimation("bat")
	if err != nil {
		t.Fatalf("GetAnimation error: %v", err)
	}

	fly, ok := rec.State("fly")
	if !ok {
		t.Fatal("Expected stored state 'fly'")
	}
	if len(fly.Frames) != 2 || len(fly.Durations) != 2 {
		t.Errorf("Expected 2 frames and durations, got %d/%d", len(fly.Frames), len(fly.Durations))
	}
	if fly.Frames[1] != (RectRecord{X: 16, Y: 0, W: 16, H: 16}) {
		t.Errorf("Unexpected second frame %+v", fly.Frames[1])
	}
	if fly.Color[3] < 0.50 || fly.Color[3] > 0.51 {
		t.Errorf("Expected alpha ~0.502, got %v", fly.Color[3])
	}

	names, err := f.ListAnimations()
	if err != nil {
		t.Fatalf("ListAnimations error: %v", err)
	}
	if len(names) != 2 || names[0] != "bat" || names[1] != "bat_copy" {
		t.Errorf("Expected [bat bat_copy], got %v", names)
	}
}

func TestResourceFile_NotFound(t *testing.T) {
	f := createTestResourceFile(t)

	if _, err := f.GetAnimation("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for animation, got %v", err)
	}
	if _, err := f.GetImage("ghost.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for image, got %v", err)
	}
}

func TestResourceFile_Images(t *testing.T) {
	f := createTestResourceFile(t)
	data := []byte{0x89, 'P', 'N', 'G'}

	if err := f.PutImage("bat.png", data); err != nil {
		t.Fatalf("PutImage error: %v", err)
	}
	got, err := f.GetImage("bat.png")
	if err != nil {
		t.Fatalf("GetImage error: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("Expected %v, got %v", data, got)
	}
}

func TestResourceFile_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprites.res")

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if err := f.PutAnimation("bat", parseTestAnimation(t)); err != nil {
		t.Fatalf("PutAnimation error: %v", err)
	}
	f.Close()

	f, err = Open(path)
	if err != nil {
		t.Fatalf("Reopen error: %v", err)
	}
	defer f.Close()

	if _, err := f.GetAnimation("bat"); err != nil {
		t.Errorf("Expected stored animation after reopen, got %v", err)
	}
}
