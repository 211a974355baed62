package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/aseanim/internal/aseprite"
	"github.com/gonewx/aseanim/pkg/components"
	"github.com/gonewx/aseanim/pkg/ecs"
	"github.com/gonewx/aseanim/pkg/embedded"
	"github.com/gonewx/aseanim/pkg/systems"
	"github.com/gonewx/aseanim/pkg/utils"
)

const (
	screenWidth  = 320
	screenHeight = 240
	spriteScale  = 4
)

var (
	configPath = flag.String("config", "", "Loader configuration file; sheets are read from its asset_root")
	sheetName  = flag.String("sheet", "", "Sheet to show: a config sheet name, a library sheet, or an embedded path")
	stateName  = flag.String("state", "", "State to play first")
	useLibrary = flag.Bool("library", false, "Read the sheet from the per-user library (see `aseinfo import`)")
)

// Viewer plays every state of one sprite sheet. Tab cycles through the states.
type Viewer struct {
	entityManager *ecs.EntityManager
	animSystem    *systems.AsepriteAnimationSystem
	layouts       *aseprite.LayoutStore

	entity ecs.EntityID
	states []string
	index  int
	loop   bool
}

// NewViewer loads the chosen sheet and starts playing its first state.
func NewViewer(choice sheetChoice) (*Viewer, error) {
	layouts := aseprite.NewLayoutStore()
	anim, err := utils.LoadAsepriteSheet(choice.source, choice.name, layouts)
	if err != nil {
		return nil, err
	}
	if anim.Len() == 0 {
		return nil, fmt.Errorf("sheet %s has no frame tags to play", choice.name)
	}

	em := ecs.NewEntityManager()
	v := &Viewer{
		entityManager: em,
		animSystem:    systems.NewAsepriteAnimationSystem(em),
		layouts:       layouts,
		states:        anim.Names(),
		loop:          choice.loop,
	}

	v.entity = em.CreateEntity()
	em.AddComponent(v.entity, &components.AsepriteAnimationComponent{Animation: anim})
	em.AddComponent(v.entity, &components.SpriteComponent{Scale: spriteScale})

	start := choice.state
	if start == "" {
		start = v.states[0]
	}
	for i, s := range v.states {
		if s == start {
			v.index = i
		}
	}
	if err := v.animSystem.Play(v.entity, start, v.loop); err != nil {
		return nil, err
	}

	log.Printf("[Viewer] %s: %d states, %d layouts registered", choice.name, len(v.states), layouts.Len())
	return v, nil
}

// Update implements ebiten.Game.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		v.index = (v.index + 1) % len(v.states)
		if err := v.animSystem.Play(v.entity, v.states[v.index], v.loop); err != nil {
			return err
		}
	}

	v.animSystem.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw implements ebiten.Game.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 40, G: 44, B: 52, A: 255})

	sprite, ok := ecs.Get[*components.SpriteComponent](v.entityManager, v.entity)
	if !ok || sprite.Image == nil {
		return
	}
	b := sprite.Image.Bounds()
	sprite.X = (screenWidth - float64(b.Dx())*spriteScale) / 2
	sprite.Y = (screenHeight - float64(b.Dy())*spriteScale) / 2
	screen.DrawImage(sprite.Image, sprite.DrawOptions())

	anim, _ := ecs.Get[*components.AsepriteAnimationComponent](v.entityManager, v.entity)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  frame %d/%d  [Tab] next",
		anim.StateName, anim.CurrentFrame+1, len(anim.Frames)))
}

// Layout implements ebiten.Game.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()

	embedded.Init(assetsFS)

	choice, err := chooseSheet(*configPath, *sheetName, *stateName, *useLibrary)
	if err != nil {
		log.Printf("[Viewer] %v", err)
		os.Exit(1)
	}

	viewer, err := NewViewer(choice)
	if err != nil {
		log.Printf("[Viewer] %v", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("Aseprite Sheet Viewer - " + choice.name)

	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}
