package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Levels draws the music meter as a row of bars in the bottom left corner.
func Levels(screen *ebiten.Image, levels []float64, surfaceHeight int) {
	if len(levels) == 0 {
		return
	}

	const (
		barX      = 20
		barWidth  = 96
		barHeight = 36
	)
	barY := surfaceHeight - barHeight - 20
	segmentWidth := float64(barWidth) / float64(len(levels))

	vector.DrawFilledRect(screen, barX, float32(barY), barWidth, barHeight, color.RGBA{R: 40, G: 10, B: 22, A: 180}, false)
	vector.StrokeRect(screen, barX, float32(barY), barWidth, barHeight, 1, color.RGBA{R: 120, G: 40, B: 70, A: 255}, false)

	for i, l := range levels {
		h := max(2, math.Min(l, 1)*float64(barHeight-6))
		x := float64(barX) + float64(i)*segmentWidth
		y := float64(barY+barHeight-3) - h

		// from deep red at the low end to pink at the high end
		c := barColor(345+float64(i)/float64(len(levels))*15, 0.8, 0.9, uint8(120+135*math.Min(l, 1)))
		vector.DrawFilledRect(screen, float32(x+1), float32(y), float32(segmentWidth-2), float32(h), c, false)
	}
}

// barColor converts hue (degrees), sat and val (both 0-1) to a colour.
func barColor(hue, sat, val float64, alpha uint8) color.RGBA {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	chroma := val * sat
	sector := hue / 60
	mid := chroma * (1 - math.Abs(math.Mod(sector, 2)-1))

	// r, g, b before the base is added, one row per 60 degree sector
	rgb := [6][3]float64{
		{chroma, mid, 0},
		{mid, chroma, 0},
		{0, chroma, mid},
		{0, mid, chroma},
		{mid, 0, chroma},
		{chroma, 0, mid},
	}[int(sector)%6]

	base := val - chroma
	to8 := func(c float64) uint8 { return uint8(math.Round((c + base) * 255)) }
	return color.RGBA{R: to8(rgb[0]), G: to8(rgb[1]), B: to8(rgb[2]), A: alpha}
}
