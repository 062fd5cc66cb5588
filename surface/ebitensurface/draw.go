package ebitensurface

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/plus3/shapewars/game"
)

var whiteSubImage *ebiten.Image

// whiteSource returns the 1x1 white source image triangles are filled from.
func whiteSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

func (s *Surface) drawTriangles(screen *ebiten.Image, c color.RGBA) {
	r := float32(c.R) / 0xff
	g := float32(c.G) / 0xff
	b := float32(c.B) / 0xff
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = r
		s.vertices[i].ColorG = g
		s.vertices[i].ColorB = b
		s.vertices[i].ColorA = 1
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(s.vertices, s.indices, whiteSource(), op)
}

func hudText(h game.HUD) string {
	status := fmt.Sprintf("frame %d  enemies %d", h.Frame, h.Enemies)
	if h.Paused {
		status += "  PAUSED"
	}
	return status
}

func (s *Surface) drawHUD(screen *ebiten.Image) {
	msg := hudText(s.hud)

	if s.face == nil {
		ebitenutil.DebugPrint(screen, msg)
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleWithColor(s.fontColor)
	text.Draw(screen, msg, s.face, op)
}
