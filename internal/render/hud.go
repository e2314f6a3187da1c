package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/heart-visualization/internal/ui"
)

// debug font metrics
const (
	charWidth  = 6
	lineHeight = 16
)

// Pointer is the mouse as the controls see it.
type Pointer struct {
	Pos     image.Point
	Pressed bool
}

// HUD draws the buttons, the letter overlay and the status line.
func HUD(screen *ebiten.Image, c *ui.Controller, p Pointer, letter, status string) {
	for _, b := range c.Buttons {
		hovered := !c.Overlay.Visible && p.Pos.In(b.Rect)
		drawButton(screen, b.Rect, c.Label(b.Intent), hovered, hovered && p.Pressed)
	}

	if status != "" {
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
	if c.Notice != "" {
		ebitenutil.DebugPrintAt(screen, c.Notice, 12, 12+lineHeight)
	}

	if c.Overlay.Visible {
		drawLetter(screen, c.Overlay, letter, p.Pos.In(c.Overlay.Close))
	}
}

func drawButton(screen *ebiten.Image, r image.Rectangle, label string, hovered, pressed bool) {
	var bgColor color.Color
	switch {
	case pressed:
		bgColor = color.RGBA{R: 150, G: 20, B: 60, A: 255}
	case hovered:
		bgColor = color.RGBA{R: 200, G: 40, B: 90, A: 255}
	default:
		bgColor = color.RGBA{R: 230, G: 60, B: 110, A: 230}
	}

	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bgColor, false)

	borderColor := color.RGBA{R: 255, G: 200, B: 215, A: 255}
	vector.StrokeRect(screen, x, y, w, h, 2, borderColor, false)

	textX := r.Min.X + (r.Dx()-len(label)*charWidth)/2
	textY := r.Min.Y + (r.Dy()-lineHeight)/2
	ebitenutil.DebugPrintAt(screen, label, textX, textY)
}

func drawLetter(screen *ebiten.Image, o ui.Overlay, letter string, closeHovered bool) {
	b := o.Bounds
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()),
		color.RGBA{A: 150}, false)

	c := o.Content
	vector.DrawFilledRect(screen, float32(c.Min.X), float32(c.Min.Y), float32(c.Dx()), float32(c.Dy()),
		color.RGBA{R: 90, G: 20, B: 45, A: 245}, false)
	vector.StrokeRect(screen, float32(c.Min.X), float32(c.Min.Y), float32(c.Dx()), float32(c.Dy()), 2,
		color.RGBA{R: 255, G: 107, B: 129, A: 255}, false)

	x := o.Close
	closeColor := color.RGBA{R: 255, G: 200, B: 215, A: 255}
	if closeHovered {
		closeColor = color.RGBA{R: 255, A: 255}
	}
	const inset = 8
	vector.StrokeLine(screen, float32(x.Min.X+inset), float32(x.Min.Y+inset), float32(x.Max.X-inset), float32(x.Max.Y-inset), 2, closeColor, true)
	vector.StrokeLine(screen, float32(x.Max.X-inset), float32(x.Min.Y+inset), float32(x.Min.X+inset), float32(x.Max.Y-inset), 2, closeColor, true)

	const pad = 24
	cols := (c.Dx() - 2*pad) / charWidth
	y := c.Min.Y + pad
	for _, line := range ui.Wrap(letter, cols) {
		if y+lineHeight > c.Max.Y-pad/2 {
			break
		}
		ebitenutil.DebugPrintAt(screen, line, c.Min.X+pad, y)
		y += lineHeight
	}
}
