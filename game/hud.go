package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"autumnscene/scene"
)

const (
	hudX          = 8
	hudY          = 8
	hudLineHeight = 16
)

var (
	hudFace       = text.NewGoXFace(basicfont.Face7x13)
	hudBackground = color.RGBA{0, 0, 0, 150}
)

// overlayLines formats the F1 debug overlay
func overlayLines(s *scene.Scene, tps, fps float64, drawn, total int) []string {
	cam := &s.Camera
	m := &s.Man
	view := "orbit"
	if cam.TopDown {
		view = "top-down"
	}
	return []string{
		fmt.Sprintf("%s  TPS %.1f  FPS %.1f", s.Config.Variant, tps, fps),
		fmt.Sprintf("triangles %d / %d", drawn, total),
		fmt.Sprintf("man (%.0f, %.0f) heading %.0f phase %.2f", m.X, m.Z, m.RotationY, m.WalkPhase),
		fmt.Sprintf("camera %s angle %.1f pitch %.1f dist %.0f", view, cam.Angle.Current, cam.Pitch.Current, cam.Distance.Current),
		fmt.Sprintf("wind %.2f  sun %.2f  leaves %d", s.Wind.Strength, s.SunAngle, len(s.Leaves)),
	}
}

func drawOverlay(screen *ebiten.Image, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	vector.DrawFilledRect(screen, hudX-4, hudY-4, float32(width*7+8), float32(len(lines)*hudLineHeight+8), hudBackground, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(hudX, hudY)
	op.ColorScale.ScaleWithColor(color.White)
	op.LineSpacing = hudLineHeight
	text.Draw(screen, strings.Join(lines, "\n"), hudFace, op)
}

// drawGridInfo prints the prop grid cell under the figure at the bottom left
func drawGridInfo(screen *ebiten.Image, s *scene.Scene) {
	cx, cz, n := s.FocusCell()
	h := screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("cell (%d, %d): %d props", cx, cz, n), hudX, h-hudLineHeight-hudY)
}
