// Package game runs the heart scene inside ebiten's Update/Draw/Layout loop.
package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/iburimskiy/heart-visualization/internal/letter"
	"github.com/iburimskiy/heart-visualization/internal/render"
	"github.com/iburimskiy/heart-visualization/internal/scene"
	"github.com/iburimskiy/heart-visualization/internal/session"
)

// Game implements ebiten.Game.
type Game struct {
	session  *session.Session
	renderer *render.Renderer
	letter   letter.Source
	input    *input
	pointer  render.Pointer
}

// Options are the pieces main wires together.
type Options struct {
	Log     *zap.Logger
	Scene   *scene.Scene
	Music   session.Music
	Dialogs session.Dialogs
	Letter  letter.Source
	Width   int
	Height  int
}

func New(o Options) *Game {
	return &Game{
		session: session.New(session.Options{
			Log:     o.Log,
			Scene:   o.Scene,
			Music:   o.Music,
			Dialogs: o.Dialogs,
			Width:   o.Width,
			Height:  o.Height,
			TPS:     ebiten.DefaultTPS,
		}),
		renderer: render.New(),
		letter:   o.Letter,
		input:    newInput(),
	}
}

func (g *Game) Update() error {
	in := g.input.read()
	g.pointer = render.Pointer{Pos: in.Cursor, Pressed: in.Left.Down}
	if quit := g.session.Step(in); quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.session
	g.renderer.Scene(screen, s.Scene, s.Viewport)
	render.Levels(screen, s.Meter.Levels, s.Viewport.Height)

	status := fmt.Sprintf("%s | %.0f FPS", s.Status(), ebiten.ActualFPS())
	render.HUD(screen, s.UI, g.pointer, g.letter.Text(), status)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.session.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
