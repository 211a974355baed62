package utils

import (
	"fmt"
	"image"
	_ "image/png"
	"io"
	"io/fs"
	"log"
	"path"

	"github.com/gonewx/aseanim/internal/aseprite"
	"github.com/hajimehoshi/ebiten/v2"
)

// SheetSource supplies sheet JSON files and the images they reference, by slash-separated name.
type SheetSource interface {
	Open(name string) (io.ReadCloser, error)
}

// FSSource reads sheets from a file system, e.g. os.DirFS or an embedded sub-tree.
type FSSource struct {
	FS fs.FS
}

// Open implements SheetSource.
func (s FSSource) Open(name string) (io.ReadCloser, error) {
	return s.FS.Open(name)
}

// EbitenImageResolver decodes the sheet image referenced in the meta block into an
// *ebiten.Image. References are resolved relative to Dir inside Source.
type EbitenImageResolver struct {
	Source SheetSource
	Dir    string
}

// Resolve implements aseprite.ImageResolver.
func (r *EbitenImageResolver) Resolve(ref string) (any, error) {
	fullPath := path.Join(r.Dir, ref)

	f, err := r.Source.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", fullPath, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", fullPath, err)
	}

	return ebiten.NewImageFromImage(img), nil
}

// LoadAsepriteSheet reads a sheet JSON file from source and builds its animation,
// decoding the sheet image with EbitenImageResolver.
//
// Parameters:
//   - source: Where the JSON and its image live
//   - name: Sheet file name inside source, e.g. "sheets/hero.json"
//   - registry: Receives each state's atlas layout; may be nil
//
// Returns:
//   - *aseprite.Animation: The validated animation, with Image set to an *ebiten.Image
//   - error: Read, syntax, schema or image errors
//
// Example:
//
//	src := utils.FSSource{FS: os.DirFS("assets")}
//	anim, err := utils.LoadAsepriteSheet(src, "sheets/hero.json", nil)
//	if err != nil {
//	    log.Fatalf("Failed to load hero: %v", err)
//	}
func LoadAsepriteSheet(source SheetSource, name string, registry aseprite.LayoutRegistry) (*aseprite.Animation, error) {
	f, err := source.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open sheet '%s': %w", name, err)
	}
	defer f.Close()

	anim, err := aseprite.Load(f, aseprite.Options{
		Resolver: &EbitenImageResolver{Source: source, Dir: path.Dir(name)},
		Registry: registry,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load sheet '%s': %w", name, err)
	}

	log.Printf("[AsepriteLoader] Loaded %s: image=%s, states=%v", name, anim.ImageRef, anim.Names())
	return anim, nil
}

// FrameImages cuts the frames of one state out of the animation's sheet image,
// in playback order.
func FrameImages(anim *aseprite.Animation, stateName string) ([]*ebiten.Image, error) {
	if anim == nil {
		return nil, fmt.Errorf("animation is nil")
	}

	sheet, ok := anim.Image.(*ebiten.Image)
	if !ok {
		return nil, fmt.Errorf("sheet image '%s' is not loaded (got %T)", anim.ImageRef, anim.Image)
	}

	state, ok := anim.State(stateName)
	if !ok {
		return nil, fmt.Errorf("state '%s' not found", stateName)
	}

	rects := state.Layout().Rects()
	frames := make([]*ebiten.Image, len(rects))
	for i, r := range rects {
		if !r.In(sheet.Bounds()) {
			return nil, fmt.Errorf("state '%s' frame %d %v is outside the sheet image %v", stateName, i, r, sheet.Bounds())
		}
		frames[i] = sheet.SubImage(r).(*ebiten.Image)
	}

	return frames, nil
}
