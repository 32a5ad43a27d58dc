package screens

import (
	goimage "image"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/avabox/gamebox/game"
	"github.com/avabox/gamebox/ui"
	"github.com/avabox/gamebox/ui/style"
)

// Per-kind piece and cutout colors, indexed by game.ShapeKind.
var (
	shapeFills = [...]color.NRGBA{
		{220, 50, 50, 255},  // circle
		{50, 100, 220, 255}, // square
		{240, 200, 30, 255}, // triangle
		{50, 190, 80, 255},  // star
		{160, 60, 200, 255}, // hexagon
	}
	shapeOutlines = [...]color.NRGBA{
		{180, 40, 40, 255},
		{40, 80, 180, 255},
		{200, 170, 20, 255},
		{40, 150, 60, 255},
		{130, 50, 170, 255},
	}
)

// ShapeSorter is the drag-and-match screen over game.ShapeBoard. It is
// the one screen that follows the finger, so it implements ui.Dragger
// on top of the plain Screen contract.
type ShapeSorter struct {
	nav   *ui.Navigator
	board *game.ShapeBoard
	rng   *rand.Rand

	particles      []starParticle
	confetti       []confettiPiece
	wasCelebrating bool

	backRect goimage.Rectangle
}

func NewShapeSorter(nav *ui.Navigator, board *game.ShapeBoard, rng *rand.Rand) *ShapeSorter {
	return &ShapeSorter{
		nav:      nav,
		board:    board,
		rng:      rng,
		backRect: goimage.Rect(20, 20, 136, 76),
	}
}

func (s *ShapeSorter) OnEnter(prev ui.ScreenID) {
	s.board.Start()
	s.particles = s.particles[:0]
	s.confetti = s.confetti[:0]
	s.wasCelebrating = false
}

func (s *ShapeSorter) OnExit() {}

func (s *ShapeSorter) HandleTap(x, y int) {
	if goimage.Pt(x, y).In(s.backRect) {
		s.nav.Back()
		return
	}
	s.board.Press(float64(x), float64(y))
}

func (s *ShapeSorter) HandleDrag(x, y int) {
	s.board.Drag(float64(x), float64(y))
}

func (s *ShapeSorter) HandleRelease(x, y int) {
	snapped, placed, solved := s.board.Release()
	if !placed {
		return
	}
	clr := shapeFills[snapped.Kind]
	for i := 0; i < 12; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := 150 + s.rng.Float64()*250
		s.particles = append(s.particles, starParticle{
			x: snapped.X, y: snapped.Y,
			vx:     math.Cos(angle) * speed,
			vy:     math.Sin(angle) * speed,
			radius: 4 + s.rng.Float64()*5,
			life:   0.4 + s.rng.Float64()*0.4,
			color:  clr,
		})
		s.particles[len(s.particles)-1].max = s.particles[len(s.particles)-1].life
	}
	if solved {
		for i := 0; i < 80; i++ {
			s.spawnConfetti()
		}
	}
}

func (s *ShapeSorter) spawnConfetti() {
	colors := []color.NRGBA{
		{220, 50, 50, 255}, {50, 100, 220, 255}, {240, 200, 30, 255},
		{50, 190, 80, 255}, {160, 60, 200, 255}, {255, 140, 50, 255},
		{255, 100, 180, 255},
	}
	s.confetti = append(s.confetti, confettiPiece{
		x:     s.rng.Float64() * screenSize,
		y:     -s.rng.Float64() * screenSize,
		vx:    -60 + s.rng.Float64()*120,
		vy:    100 + s.rng.Float64()*200,
		size:  4 + s.rng.Float64()*6,
		life:  5,
		color: colors[s.rng.Intn(len(colors))],
	})
}

func (s *ShapeSorter) Update(dt time.Duration) {
	sec := dt.Seconds()
	s.board.Update(dt)

	for i := range s.particles {
		p := &s.particles[i]
		p.x += p.vx * sec
		p.y += p.vy * sec
		p.vy += 150 * sec
		p.life -= sec
	}
	s.particles = filterParticles(s.particles)

	if s.board.Celebrating() {
		for i := range s.confetti {
			c := &s.confetti[i]
			c.x += c.vx * sec
			c.y += c.vy * sec
			if c.y > screenSize+20 {
				c.y = -40 + s.rng.Float64()*30
				c.x = s.rng.Float64() * screenSize
				c.vy = 100 + s.rng.Float64()*200
			}
		}
	} else if s.wasCelebrating {
		// The board rebuilt itself; clear the party.
		s.confetti = s.confetti[:0]
	}
	s.wasCelebrating = s.board.Celebrating()
}

func (s *ShapeSorter) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{230, 240, 255, 255})

	const dividerY = screenSize/2 + 20
	vector.StrokeLine(screen, 30, dividerY, screenSize-30, dividerY, 2,
		color.NRGBA{200, 210, 230, 255}, true)
	style.DrawLabel(screen, "drag shapes down to match!", screenSize/2, dividerY-20,
		style.LabelTextScale, color.NRGBA{140, 150, 170, 255})

	size := s.board.Config().Size
	shapes := s.board.Shapes()

	for _, sh := range shapes {
		outline := shapeOutlines[sh.Kind]
		drawShape(screen, sh.Kind, sh.TargetX, sh.TargetY, size, outline, 3)
		drawShape(screen, sh.Kind, sh.TargetX, sh.TargetY, size-6, outline, 1)
	}

	dragging := s.board.Dragging()
	for i, sh := range shapes {
		if i == dragging {
			continue // drawn last, on top
		}
		if sh.Placed {
			drawShape(screen, sh.Kind, sh.X, sh.Y, size*sh.Scale(), shapeFills[sh.Kind], 0)
			continue
		}
		drawShape(screen, sh.Kind, sh.X+3, sh.Y+3, size, color.NRGBA{180, 180, 200, 255}, 0)
		drawShape(screen, sh.Kind, sh.X, sh.Y, size, shapeFills[sh.Kind], 0)
	}
	if dragging >= 0 {
		sh := shapes[dragging]
		drawShape(screen, sh.Kind, sh.X+3, sh.Y+3, size+4, color.NRGBA{160, 160, 180, 255}, 0)
		drawShape(screen, sh.Kind, sh.X, sh.Y, size+4, shapeFills[sh.Kind], 0)
	}

	for _, p := range s.particles {
		r := p.radius * (p.life / p.max)
		if r < 1 {
			r = 1
		}
		vector.DrawFilledCircle(screen, float32(p.x), float32(p.y), float32(r), p.color, true)
	}

	if s.board.Celebrating() {
		vector.DrawFilledRect(screen, 0, 0, screenSize, screenSize,
			color.NRGBA{255, 255, 255, 100}, false)
		for _, c := range s.confetti {
			vector.DrawFilledRect(screen, float32(c.x), float32(c.y),
				float32(c.size), float32(c.size*0.6), c.color, false)
		}
		left := s.board.CelebrationLeft().Seconds()
		pulse := style.BannerTextScale * (1 + 0.1*math.Sin(left*8))
		style.DrawLabel(screen, "YAY!", screenSize/2, screenSize/2, pulse,
			style.HSV(left*200, 0.8, 1))
	}

	vector.DrawFilledRect(screen,
		float32(s.backRect.Min.X), float32(s.backRect.Min.Y),
		float32(s.backRect.Dx()), float32(s.backRect.Dy()),
		style.Accent, true)
	style.DrawLabel(screen, "< Back",
		float64(s.backRect.Min.X+s.backRect.Dx()/2),
		float64(s.backRect.Min.Y+s.backRect.Dy()/2),
		style.LabelTextScale, style.TextDark)
}

// drawShape renders a piece or, with strokeWidth > 0, just its outline.
func drawShape(dst *ebiten.Image, kind game.ShapeKind, cx, cy, size float64, clr color.NRGBA, strokeWidth float32) {
	switch kind {
	case game.ShapeCircle:
		if strokeWidth > 0 {
			vector.StrokeCircle(dst, float32(cx), float32(cy), float32(size), strokeWidth, clr, true)
		} else {
			vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(size), clr, true)
		}
	case game.ShapeSquare:
		if strokeWidth > 0 {
			vector.StrokeRect(dst, float32(cx-size), float32(cy-size),
				float32(2*size), float32(2*size), strokeWidth, clr, true)
		} else {
			vector.DrawFilledRect(dst, float32(cx-size), float32(cy-size),
				float32(2*size), float32(2*size), clr, true)
		}
	default:
		xs, ys := shapePoints(kind, cx, cy, size)
		if strokeWidth > 0 {
			strokePolygon(dst, xs, ys, strokeWidth, clr)
		} else {
			fillPolygon(dst, xs, ys, clr)
		}
	}
}

// shapePoints returns the outline vertices for the polygon kinds.
func shapePoints(kind game.ShapeKind, cx, cy, size float64) (xs, ys []float64) {
	switch kind {
	case game.ShapeTriangle:
		xs = []float64{cx, cx - size, cx + size}
		ys = []float64{cy - size, cy + size*0.8, cy + size*0.8}
	case game.ShapeStar:
		for i := 0; i < 10; i++ {
			angle := (-90 + float64(i)*36) * math.Pi / 180
			r := size
			if i%2 == 1 {
				r = size * 0.4
			}
			xs = append(xs, cx+r*math.Cos(angle))
			ys = append(ys, cy+r*math.Sin(angle))
		}
	case game.ShapeHexagon:
		for i := 0; i < 6; i++ {
			angle := (60*float64(i) - 30) * math.Pi / 180
			xs = append(xs, cx+size*math.Cos(angle))
			ys = append(ys, cy+size*math.Sin(angle))
		}
	}
	return xs, ys
}

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

func whiteSrc() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(goimage.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// fillPolygon fans triangles from the centroid, which covers the
// sorter's convex pieces and the five-pointed star.
func fillPolygon(dst *ebiten.Image, xs, ys []float64, clr color.NRGBA) {
	var cx, cy float64
	for i := range xs {
		cx += xs[i]
		cy += ys[i]
	}
	cx /= float64(len(xs))
	cy /= float64(len(ys))

	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255
	vertex := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}

	vs := make([]ebiten.Vertex, 0, len(xs)+1)
	vs = append(vs, vertex(cx, cy))
	for i := range xs {
		vs = append(vs, vertex(xs[i], ys[i]))
	}
	is := make([]uint16, 0, len(xs)*3)
	for i := 0; i < len(xs); i++ {
		is = append(is, 0, uint16(i+1), uint16((i+1)%len(xs)+1))
	}
	dst.DrawTriangles(vs, is, whiteSrc(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func strokePolygon(dst *ebiten.Image, xs, ys []float64, width float32, clr color.NRGBA) {
	for i := range xs {
		j := (i + 1) % len(xs)
		vector.StrokeLine(dst, float32(xs[i]), float32(ys[i]),
			float32(xs[j]), float32(ys[j]), width, clr, true)
	}
}
