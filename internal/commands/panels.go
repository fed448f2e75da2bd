package commands

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type panel struct {
	caption string
	img     image.Image
}

// stackPanels composes the panels into a single image, one per row, each with
// a caption strip above it.
func stackPanels(panels []panel, width, panelHeight int) image.Image {
	rowHeight := panelHeight + CaptionHeight
	out := image.NewRGBA(image.Rect(0, 0, width, rowHeight*len(panels)))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for i, p := range panels {
		top := i * rowHeight
		drawCaption(out, p.caption, 8, top+CaptionHeight-5)
		if p.img == nil {
			continue
		}
		rect := image.Rect(0, top+CaptionHeight, width, top+rowHeight)
		draw.Draw(out, rect, p.img, p.img.Bounds().Min, draw.Over)
	}
	return out
}

func drawCaption(dst *image.RGBA, text string, x, y int) {
	dr := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{A: 0xFF}),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	dr.DrawString(text)
}
