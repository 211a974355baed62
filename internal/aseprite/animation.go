package aseprite

import (
	"fmt"
	"sort"
)

// ImageResolver turns the sheet's image reference into whatever the host uses
// as an image handle, e.g. a decoded *ebiten.Image.
type ImageResolver interface {
	Resolve(ref string) (any, error)
}

// ImageResolverFunc adapts a function to ImageResolver.
type ImageResolverFunc func(ref string) (any, error)

// Resolve calls f(ref).
func (f ImageResolverFunc) Resolve(ref string) (any, error) {
	return f(ref)
}

// Options configures the collaborators used while building an Animation.
// The zero value is valid: the image reference is kept as a string and
// layouts are not registered anywhere.
type Options struct {
	Resolver ImageResolver
	Registry LayoutRegistry
}

// Animation is the validated result of loading a sheet: every frame tag as a
// State keyed by tag name, plus the resolved sheet image.
type Animation struct {
	// ImageRef is the meta image reference as exported
	ImageRef string

	// Image is the resolver's handle for ImageRef, or ImageRef itself without a resolver
	Image any

	states map[string]*State
}

// NewAnimation builds a State for every frame tag in declared order. The first
// failing tag aborts the whole sheet; the error is a *TagError naming it.
// Tags sharing a name overwrite earlier ones.
//
// Layouts reach opts.Registry only after every tag has built, so a failed sheet
// leaves the registry untouched.
func NewAnimation(sheet *Sheet, opts Options) (*Animation, error) {
	states := make(map[string]*State, len(sheet.Meta.FrameTags))
	built := make([]*State, 0, len(sheet.Meta.FrameTags))
	for i := range sheet.Meta.FrameTags {
		tag := &sheet.Meta.FrameTags[i]
		state, err := newState(tag, sheet)
		if err != nil {
			return nil, &TagError{Tag: tag.Name, Err: err}
		}
		states[tag.Name] = state
		built = append(built, state)
	}

	var image any = sheet.Meta.Image
	if opts.Resolver != nil {
		resolved, err := opts.Resolver.Resolve(sheet.Meta.Image)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve sheet image '%s': %w", sheet.Meta.Image, err)
		}
		image = resolved
	}

	if opts.Registry != nil {
		for _, state := range built {
			// overwritten duplicates are not reachable, so their layouts are not registered
			if states[state.Name] == state {
				state.Handle = opts.Registry.Register(state.Name, state.layout)
			}
		}
	}

	return &Animation{
		ImageRef: sheet.Meta.Image,
		Image:    image,
		states:   states,
	}, nil
}

// State looks up a state by tag name.
func (a *Animation) State(name string) (*State, bool) {
	s, ok := a.states[name]
	return s, ok
}

// Len returns the number of states.
func (a *Animation) Len() int {
	return len(a.states)
}

// Names returns the state names in sorted order.
func (a *Animation) Names() []string {
	names := make([]string, 0, len(a.states))
	for name := range a.states {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// States returns a copy of the name to state mapping.
func (a *Animation) States() map[string]*State {
	out := make(map[string]*State, len(a.states))
	for name, s := range a.states {
		out[name] = s
	}
	return out
}
