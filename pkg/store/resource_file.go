// Package store packs built animations into a bbolt resource file, so a game can
// read ready-made frame layouts and durations without parsing sheet exports.
package store

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/gonewx/aseanim/internal/aseprite"
	bolt "go.etcd.io/bbolt"
	"gopkg.in/yaml.v3"
)

var (
	animationsBucket = []byte("animations")
	imagesBucket     = []byte("images")
)

// ErrNotFound is returned when a key is absent from the resource file.
var ErrNotFound = errors.New("not found")

// AnimationRecord is the stored form of an aseprite.Animation.
type AnimationRecord struct {
	Image  string        `yaml:"image"`
	States []StateRecord `yaml:"states"`
}

// StateRecord is the stored form of one state. Frames and Durations are parallel,
// indexed by local frame.
type StateRecord struct {
	Name      string       `yaml:"name"`
	Direction string       `yaml:"direction"`
	Color     [4]float32   `yaml:"color,flow"`
	Durations []uint64     `yaml:"durations,flow"`
	Frames    []RectRecord `yaml:"frames"`
}

// RectRecord is a frame rectangle in sheet pixels.
type RectRecord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// NewAnimationRecord converts an animation; states are ordered by name.
func NewAnimationRecord(anim *aseprite.Animation) AnimationRecord {
	rec := AnimationRecord{Image: anim.ImageRef}
	for _, name := range anim.Names() {
		state, _ := anim.State(name)

		sr := StateRecord{
			Name:      state.Name,
			Direction: state.Direction.String(),
			Color:     [4]float32{state.Color.R, state.Color.G, state.Color.B, state.Color.A},
			Durations: state.Durations(),
		}
		for _, r := range state.Layout().Rects() {
			sr.Frames = append(sr.Frames, RectRecord{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()})
		}
		rec.States = append(rec.States, sr)
	}
	return rec
}

// State looks up a stored state by name.
func (r *AnimationRecord) State(name string) (StateRecord, bool) {
	for _, s := range r.States {
		if s.Name == name {
			return s, true
		}
	}
	return StateRecord{}, false
}

// ResourceFile is an open bbolt resource file.
type ResourceFile struct {
	db *bolt.DB
}

// Open opens or creates the resource file at path and makes sure its buckets exist.
func Open(path string) (*ResourceFile, error) {
	db, err := bolt.Open(path, 0o666, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open resource file %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{animationsBucket, imagesBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare resource file %s: %w", path, err)
	}

	return &ResourceFile{db: db}, nil
}

// Close closes the underlying database.
func (f *ResourceFile) Close() error {
	return f.db.Close()
}

// PutAnimation stores an animation under name, replacing any previous one.
func (f *ResourceFile) PutAnimation(name string, anim *aseprite.Animation) error {
	data, err := yaml.Marshal(NewAnimationRecord(anim))
	if err != nil {
		return fmt.Errorf("failed to encode animation '%s': %w", name, err)
	}

	err = f.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(animationsBucket).Put([]byte(name), data)
	})
	if err != nil {
		return fmt.Errorf("failed to store animation '%s': %w", name, err)
	}

	log.Printf("[ResourceFile] Stored animation %s (%d states)", name, anim.Len())
	return nil
}

// GetAnimation reads a stored animation record.
func (f *ResourceFile) GetAnimation(name string) (*AnimationRecord, error) {
	var rec AnimationRecord
	err := f.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(animationsBucket).Get([]byte(name))
		if data == nil {
			return fmt.Errorf("animation '%s': %w", name, ErrNotFound)
		}
		return yaml.Unmarshal(data, &rec)
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListAnimations returns the stored animation names in sorted order.
func (f *ResourceFile) ListAnimations() ([]string, error) {
	var names []string
	err := f.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(animationsBucket).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// PutImage stores the raw bytes of a sheet image under its reference.
func (f *ResourceFile) PutImage(ref string, data []byte) error {
	err := f.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(imagesBucket).Put([]byte(ref), data)
	})
	if err != nil {
		return fmt.Errorf("failed to store image '%s': %w", ref, err)
	}
	return nil
}

// GetImage reads the raw bytes of a stored sheet image.
func (f *ResourceFile) GetImage(ref string) ([]byte, error) {
	var out []byte
	err := f.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(imagesBucket).Get([]byte(ref))
		if data == nil {
			return fmt.Errorf("image '%s': %w", ref, ErrNotFound)
		}
		// bbolt values are only valid inside the transaction
		out = append([]byte(nil), data...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
