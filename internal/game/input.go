package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/heart-visualization/internal/session"
)

// bindings lists the keys in the order their commands are handled.
var bindings = []struct {
	key ebiten.Key
	cmd session.Key
}{
	{ebiten.KeyQ, session.KeyQuit},
	{ebiten.KeyEscape, session.KeyEscape},
	{ebiten.KeySpace, session.KeyPulse},
	{ebiten.KeyM, session.KeyMusic},
	{ebiten.KeyR, session.KeyReset},
	{ebiten.KeyL, session.KeyLetter},
	{ebiten.KeyO, session.KeyChoose},
}

// input turns polled state into edges, one frame at a time.
type input struct {
	prevKey   map[ebiten.Key]bool
	prevMouse map[ebiten.MouseButton]bool
	cursor    image.Point
	keys      []session.Key
}

func newInput() *input {
	return &input{
		prevKey:   map[ebiten.Key]bool{},
		prevMouse: map[ebiten.MouseButton]bool{},
	}
}

// read samples every bound key, both mouse buttons, the cursor and the wheel.
func (in *input) read() session.Input {
	x, y := ebiten.CursorPosition()
	cur := image.Pt(x, y)
	move := cur.Sub(in.cursor)
	in.cursor = cur

	in.keys = in.keys[:0]
	for _, b := range bindings {
		if in.justPressed(b.key) {
			in.keys = append(in.keys, b.cmd)
		}
	}
	_, wy := ebiten.Wheel()

	return session.Input{
		Keys:   in.keys,
		Cursor: cur,
		Move:   move,
		Left:   in.mouse(ebiten.MouseButtonLeft),
		Right:  in.mouse(ebiten.MouseButtonRight),
		Wheel:  wy,
	}
}

func (in *input) justPressed(k ebiten.Key) bool {
	pressed := ebiten.IsKeyPressed(k)
	jp := pressed && !in.prevKey[k]
	in.prevKey[k] = pressed
	return jp
}

func (in *input) mouse(b ebiten.MouseButton) session.Button {
	down := ebiten.IsMouseButtonPressed(b)
	was := in.prevMouse[b]
	in.prevMouse[b] = down
	return session.Button{Down: down, Pressed: down && !was, Released: !down && was}
}
