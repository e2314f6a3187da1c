// Package render paints the scene and the controls onto an ebiten screen.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/heart-visualization/internal/scene"
)

var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// whitePixel is sampled by every triangle, so the vertex colour is the
// final colour.
var whitePixel = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

// Renderer keeps scratch buffers between frames.
type Renderer struct {
	tris     []scene.Triangle
	sprites  []scene.Sprite
	vertices []ebiten.Vertex
	indices  []uint16
}

func New() *Renderer {
	return &Renderer{}
}

// Scene draws the background, the heart and the particles.
func (r *Renderer) Scene(screen *ebiten.Image, s *scene.Scene, vp *scene.Viewport) {
	screen.Fill(s.Background.RGBA(1))
	r.drawHeart(screen, s, vp)
	r.drawParticles(screen, s, vp)
}

func (r *Renderer) drawHeart(screen *ebiten.Image, s *scene.Scene, vp *scene.Viewport) {
	r.tris = s.Triangles(vp, r.tris)
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]

	for _, t := range r.tris {
		if len(r.vertices)+3 > maxVertices {
			r.flush(screen, ebiten.BlendSourceOver)
		}
		base := uint16(len(r.vertices))
		cr, cg, cb, ca := vertexColor(t.Color, 1)
		for k := 0; k < 3; k++ {
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX: t.X[k], DstY: t.Y[k],
				SrcX: 1, SrcY: 1,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			})
		}
		r.indices = append(r.indices, base, base+1, base+2)
	}
	r.flush(screen, ebiten.BlendSourceOver)
}

func (r *Renderer) drawParticles(screen *ebiten.Image, s *scene.Scene, vp *scene.Viewport) {
	r.sprites = s.Sprites(vp, r.sprites)
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]

	blend := ebiten.BlendSourceOver
	if s.Particles.Material.Additive {
		blend = ebiten.BlendLighter
	}

	for _, sp := range r.sprites {
		if len(r.vertices)+4 > maxVertices {
			r.flush(screen, blend)
		}
		base := uint16(len(r.vertices))
		half := sp.Size / 2
		cr, cg, cb, ca := vertexColor(sp.Color, sp.Alpha)
		for _, c := range [4][2]float32{{-half, -half}, {half, -half}, {half, half}, {-half, half}} {
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX: sp.X + c[0], DstY: sp.Y + c[1],
				SrcX: 1, SrcY: 1,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			})
		}
		r.indices = append(r.indices, base, base+1, base+2, base, base+2, base+3)
	}
	r.flush(screen, blend)
}

// ebiten indexes vertices with uint16
const maxVertices = 1 << 16

func (r *Renderer) flush(screen *ebiten.Image, blend ebiten.Blend) {
	if len(r.indices) == 0 {
		return
	}
	screen.DrawTriangles(r.vertices, r.indices, whitePixel, &ebiten.DrawTrianglesOptions{Blend: blend})
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}

// vertexColor returns straight-alpha components, the default colour scale
// mode of DrawTriangles.
func vertexColor(c scene.Color, alpha float64) (r, g, b, a float32) {
	c = c.Clamp()
	return float32(c.R), float32(c.G), float32(c.B), float32(alpha)
}
