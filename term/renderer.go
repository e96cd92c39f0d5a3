package term

import (
	"image"

	"github.com/gdamore/tcell/v2"

	"autumnscene/draw"
	"autumnscene/raster"
	"autumnscene/scene"
)

// upperHalf draws the top pixel as foreground and the bottom as background
const upperHalf = '▀'

// Renderer rasterizes frames into a tcell screen
type Renderer struct {
	screen tcell.Screen
	img    *image.RGBA
}

// NewRenderer draws into screen, which must already be initialized
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the scene to the whole screen and shows it
func (r *Renderer) Render(s *scene.Scene) {
	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	img := r.Rasterize(s, w, h*2)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			top := img.RGBAAt(x, y*2)
			bottom := img.RGBAAt(x, y*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			r.screen.SetContent(x, y, upperHalf, nil, style)
		}
	}
	r.screen.Show()
}

// Rasterize paints the scene into an image of the given size. The image is
// reused while the size is unchanged.
func (r *Renderer) Rasterize(s *scene.Scene, width, height int) *image.RGBA {
	if r.img == nil || r.img.Bounds().Dx() != width || r.img.Bounds().Dy() != height {
		r.img = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	frame := draw.BuildFrame(s, width, height)
	raster.Clear(r.img, frame.Clear)
	raster.Fill(raster.Project(&frame), r.img)
	return r.img
}
