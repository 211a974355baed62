package game

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/gonewx/aseanim/internal/aseprite"
	"github.com/quasilyte/gdata/v2"
)

// sheetsObject is the gdata object all imported sheet files are stored under.
const sheetsObject = "sheets"

// SheetLibrary keeps imported sprite sheets (JSON and image) in the per-user data
// directory managed by gdata, so the viewer can open them without the original files.
// It implements utils.SheetSource.
type SheetLibrary struct {
	gdataManager *gdata.Manager
}

// NewSheetLibrary wraps an open gdata manager.
func NewSheetLibrary(gdataManager *gdata.Manager) *SheetLibrary {
	return &SheetLibrary{gdataManager: gdataManager}
}

// OpenSheetLibrary opens (creating if needed) the gdata storage for appName.
func OpenSheetLibrary(appName string) (*SheetLibrary, error) {
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata storage '%s': %w", appName, err)
	}
	return NewSheetLibrary(manager), nil
}

// Has reports whether a file with this name was imported.
func (l *SheetLibrary) Has(name string) bool {
	return l.gdataManager.ObjectPropExists(sheetsObject, name)
}

// Open implements utils.SheetSource. Unknown names report fs.ErrNotExist.
func (l *SheetLibrary) Open(name string) (io.ReadCloser, error) {
	name = filepath.Base(name)
	if !l.Has(name) {
		return nil, fmt.Errorf("sheet file '%s' not imported: %w", name, fs.ErrNotExist)
	}

	data, err := l.gdataManager.LoadObjectProp(sheetsObject, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load sheet file '%s': %w", name, err)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Store saves raw file bytes under name.
func (l *SheetLibrary) Store(name string, data []byte) error {
	if err := l.gdataManager.SaveObjectProp(sheetsObject, filepath.Base(name), data); err != nil {
		return fmt.Errorf("failed to save sheet file '%s': %w", name, err)
	}
	return nil
}

// ImportSheet copies a sheet JSON file and the image it references into the library.
// The sheet must build cleanly; a sheet with unsupported features is refused
// before anything is written.
//
// Parameters:
//   - sheetPath: Path of the sheet JSON on disk; the image is looked up next to it
//
// Returns:
//   - string: The name the sheet was stored under (its base name)
//   - error: Read, validation or storage error
func (l *SheetLibrary) ImportSheet(sheetPath string) (string, error) {
	data, err := os.ReadFile(sheetPath)
	if err != nil {
		return "", fmt.Errorf("failed to read sheet '%s': %w", sheetPath, err)
	}

	anim, err := aseprite.Parse(data, aseprite.Options{})
	if err != nil {
		return "", fmt.Errorf("refusing to import '%s': %w", sheetPath, err)
	}

	imagePath := filepath.Join(filepath.Dir(sheetPath), filepath.FromSlash(anim.ImageRef))
	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to read sheet image '%s': %w", imagePath, err)
	}

	name := filepath.Base(sheetPath)
	if err := l.Store(filepath.Base(anim.ImageRef), imageData); err != nil {
		return "", err
	}
	if err := l.Store(name, data); err != nil {
		return "", err
	}

	log.Printf("[SheetLibrary] Imported %s (image %s, states %v)", name, anim.ImageRef, anim.Names())
	return name, nil
}
