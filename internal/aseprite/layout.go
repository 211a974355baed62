package aseprite

import (
	"image"
	"sync"

	"github.com/google/uuid"
)

// AtlasLayout is an ordered list of frame rectangles inside a sheet image.
// A rectangle's index is its insertion position. Once the owning State is built
// the layout is frozen and Add panics.
type AtlasLayout struct {
	size   image.Point
	rects  []image.Rectangle
	frozen bool
}

// NewAtlasLayout creates an empty layout for a sheet of the given pixel size.
func NewAtlasLayout(size Size) *AtlasLayout {
	return &AtlasLayout{size: size.Point()}
}

// Add appends a frame rectangle and returns its zero-based index.
func (l *AtlasLayout) Add(r Rect) int {
	if l.frozen {
		panic("aseprite: Add on a frozen AtlasLayout")
	}
	l.rects = append(l.rects, r.Bounds())
	return len(l.rects) - 1
}

// Size returns the pixel size of the sheet image the layout refers to.
func (l *AtlasLayout) Size() image.Point {
	return l.size
}

// Len returns the number of rectangles.
func (l *AtlasLayout) Len() int {
	return len(l.rects)
}

// Rect returns the rectangle at index i.
func (l *AtlasLayout) Rect(i int) (image.Rectangle, bool) {
	if i < 0 || i >= len(l.rects) {
		return image.Rectangle{}, false
	}
	return l.rects[i], true
}

// Rects returns a copy of all rectangles in index order.
func (l *AtlasLayout) Rects() []image.Rectangle {
	out := make([]image.Rectangle, len(l.rects))
	copy(out, l.rects)
	return out
}

func (l *AtlasLayout) freeze() {
	l.frozen = true
}

// LayoutHandle identifies a layout registered with a LayoutRegistry.
type LayoutHandle struct {
	ID    uuid.UUID
	Label string
}

// IsZero reports whether the handle was never assigned by a registry.
func (h LayoutHandle) IsZero() bool {
	return h.ID == uuid.Nil
}

// LayoutRegistry receives every finished layout, labelled with its tag name,
// and hands back the handle stored in the State.
type LayoutRegistry interface {
	Register(label string, layout *AtlasLayout) LayoutHandle
}

// LayoutStore is an in-memory LayoutRegistry. It is safe for concurrent use,
// so several sheets may be loaded into one store at the same time.
type LayoutStore struct {
	mu      sync.RWMutex
	layouts map[uuid.UUID]*AtlasLayout
}

// NewLayoutStore creates an empty LayoutStore.
func NewLayoutStore() *LayoutStore {
	return &LayoutStore{layouts: make(map[uuid.UUID]*AtlasLayout)}
}

// Register stores the layout under a fresh random handle.
func (s *LayoutStore) Register(label string, layout *AtlasLayout) LayoutHandle {
	h := LayoutHandle{ID: uuid.New(), Label: label}

	s.mu.Lock()
	s.layouts[h.ID] = layout
	s.mu.Unlock()

	return h
}

// Get looks up a registered layout.
func (s *LayoutStore) Get(h LayoutHandle) (*AtlasLayout, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	layout, ok := s.layouts[h.ID]
	return layout, ok
}

// Len returns the number of registered layouts.
func (s *LayoutStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.layouts)
}
