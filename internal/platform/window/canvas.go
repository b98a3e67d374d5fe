package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/2022831007/SDL-Game-Project/internal/core"
)

// Canvas draws onto an ebiten image in pixel coordinates.
type Canvas struct {
	dst        *ebiten.Image
	face       font.Face
	background *ebiten.Image
}

var _ core.Canvas = (*Canvas)(nil)

// NewCanvas wraps dst. background may be nil.
func NewCanvas(dst *ebiten.Image, face font.Face, background *ebiten.Image) *Canvas {
	return &Canvas{dst: dst, face: face, background: background}
}

// Size returns the image size in pixels.
func (c *Canvas) Size() (int, int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the whole image.
func (c *Canvas) Clear(bg core.Color) {
	c.dst.Fill(RGBA(bg))
}

// DrawBackground stretches the background image over the canvas, or clears
// to fallback when there is none.
func (c *Canvas) DrawBackground(fallback core.Color) {
	if c.background == nil {
		c.Clear(fallback)
		return
	}
	w, h := c.Size()
	bw, bh := c.background.Bounds().Dx(), c.background.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(bw), float64(h)/float64(bh))
	c.dst.DrawImage(c.background, op)
}

// FillRect fills r.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), RGBA(col), false)
}

// DrawPoint sets a single pixel.
func (c *Canvas) DrawPoint(x, y int, col core.Color) {
	c.dst.Set(x, y, RGBA(col))
}

// DrawText draws text with its top-left corner at (x, y).
func (c *Canvas) DrawText(x, y int, s string, col core.Color) {
	text.Draw(c.dst, s, c.face, x, baseline(c.face, y), RGBA(col))
}

// baseline converts a top edge to the baseline text.Draw expects.
func baseline(face font.Face, top int) int {
	return top + face.Metrics().Ascent.Ceil()
}
