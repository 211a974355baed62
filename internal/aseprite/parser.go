package aseprite

import (
	"encoding/json"
	"io"
)

// ParseSheet decodes Aseprite JSON export bytes. Malformed JSON is reported as a
// *SyntaxError wrapping the encoding/json diagnostic.
func ParseSheet(data []byte) (*Sheet, error) {
	var sheet Sheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		return nil, &SyntaxError{Err: err}
	}
	return &sheet, nil
}

// ReadSheet reads all of r and decodes it with ParseSheet. Reader failures are
// reported as a *ReadError.
func ReadSheet(r io.Reader) (*Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ReadError{Err: err}
	}
	return ParseSheet(data)
}

// Parse decodes sheet bytes and builds the Animation in one step.
//
// Example:
//
//	data, _ := os.ReadFile("assets/hero.json")
//	anim, err := aseprite.Parse(data, aseprite.Options{})
//	if err != nil {
//	    log.Fatalf("Failed to load hero: %v", err)
//	}
//	idle, _ := anim.State("idle")
func Parse(data []byte, opts Options) (*Animation, error) {
	sheet, err := ParseSheet(data)
	if err != nil {
		return nil, err
	}
	return NewAnimation(sheet, opts)
}

// Load is Parse over a reader.
func Load(r io.Reader, opts Options) (*Animation, error) {
	sheet, err := ReadSheet(r)
	if err != nil {
		return nil, err
	}
	return NewAnimation(sheet, opts)
}
