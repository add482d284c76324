package scene

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jakecoffman/cp/v2"

	"github.com/davidbecerra/Notes/internal/demo"
	"github.com/davidbecerra/Notes/internal/fonts"
)

const (
	textSize       = 16
	textLeft       = 5
	textTop        = 5
	textLineHeight = 20
)

var (
	floorColor      = cp.FColor{R: 1, G: 0, B: 0, A: 1}
	ballColor       = cp.FColor{R: 0, G: 1, B: 0, A: 1}
	outlineColor    = cp.FColor{R: 0.9, G: 0.9, B: 0.9, A: 1}
	constraintColor = cp.FColor{R: 0.5, G: 1, B: 0.5, A: 1}
	contactColor    = cp.FColor{R: 1, G: 1, B: 0, A: 1}
)

// Scene draws a physics space with the engine's debug-draw routine and overlays status text.
// It flips the engine's y-up world into raylib's y-down screen. The status font is found by name
// at construction; GPU loading is deferred to the first Draw so it runs after the window exists.
type Scene struct {
	height      float64
	font        rl.Font
	fontPath    string
	fontPending bool
}

// New returns a scene for a window of the given height. fontName is looked up under assets/fonts;
// when nothing matches, raylib's default font is used.
func New(height float64, fontName string) *Scene {
	s := &Scene{height: height}
	if fontName != "" {
		if _, full, err := fonts.FindFont(fontName); err == nil {
			s.fontPath = full
			s.fontPending = true
		}
	}
	return s
}

func (s *Scene) ensureFont() {
	if !s.fontPending {
		return
	}
	s.fontPending = false
	f := rl.LoadFontEx(s.fontPath, textSize*2, nil)
	if f.Texture.ID != 0 {
		s.font = f
	}
}

// Draw renders every shape, constraint and contact point in space.
func (s *Scene) Draw(space *cp.Space) {
	s.ensureFont()
	cp.DrawSpace(space, s)
}

// DrawStatus blits lines in white at the top-left corner, one per textLineHeight pixels.
func (s *Scene) DrawStatus(lines []string) {
	y := int32(textTop)
	for _, line := range lines {
		if s.font.Texture.ID != 0 {
			rl.DrawTextEx(s.font, line, rl.NewVector2(textLeft, float32(y)), textSize, 1, rl.White)
		} else {
			rl.DrawText(line, textLeft, y, textSize, rl.White)
		}
		y += textLineHeight
	}
}

func (s *Scene) toScreen(p cp.Vector) rl.Vector2 {
	x, y := demo.ToScreen(p, s.height)
	return rl.NewVector2(x, y)
}

func toColor(c cp.FColor) rl.Color {
	return rl.NewColor(uint8(c.R*255), uint8(c.G*255), uint8(c.B*255), uint8(c.A*255))
}

// DrawCircle draws a filled circle with an outline and a radius line showing its rotation.
func (s *Scene) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, _ interface{}) {
	center := s.toScreen(pos)
	r := float32(radius)
	rl.DrawCircleV(center, r, toColor(fill))
	rl.DrawCircleLinesV(center, r, toColor(outline))
	// screen y points down, so the rotation flips sign
	a := float32(angle)
	edge := rl.NewVector2(center.X+r*math32.Cos(a), center.Y-r*math32.Sin(a))
	rl.DrawLineV(center, edge, toColor(outline))
}

// DrawSegment draws a hairline segment.
func (s *Scene) DrawSegment(a, b cp.Vector, fill cp.FColor, _ interface{}) {
	rl.DrawLineV(s.toScreen(a), s.toScreen(b), toColor(fill))
}

// DrawFatSegment draws a segment with rounded caps of the given radius.
func (s *Scene) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, _ interface{}) {
	pa, pb := s.toScreen(a), s.toScreen(b)
	r := float32(radius)
	c := toColor(fill)
	rl.DrawLineEx(pa, pb, 2*r, c)
	rl.DrawCircleV(pa, r, c)
	rl.DrawCircleV(pb, r, c)
}

// DrawPolygon draws a closed outline through verts.
func (s *Scene) DrawPolygon(count int, verts []cp.Vector, _ float64, outline, _ cp.FColor, _ interface{}) {
	c := toColor(outline)
	for i := 0; i < count; i++ {
		rl.DrawLineV(s.toScreen(verts[i]), s.toScreen(verts[(i+1)%count]), c)
	}
}

// DrawDot draws a point of the given pixel size.
func (s *Scene) DrawDot(size float64, pos cp.Vector, fill cp.FColor, _ interface{}) {
	rl.DrawCircleV(s.toScreen(pos), float32(size)/2, toColor(fill))
}

func (s *Scene) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_CONSTRAINTS | cp.DRAW_COLLISION_POINTS
}

func (s *Scene) OutlineColor() cp.FColor {
	return outlineColor
}

// ShapeColor paints static shapes (the floor) red and everything else (the ball) green.
func (s *Scene) ShapeColor(shape *cp.Shape, _ interface{}) cp.FColor {
	if shape.Body().GetType() == cp.BODY_STATIC {
		return floorColor
	}
	return ballColor
}

func (s *Scene) ConstraintColor() cp.FColor {
	return constraintColor
}

func (s *Scene) CollisionPointColor() cp.FColor {
	return contactColor
}

func (s *Scene) Data() interface{} {
	return nil
}
