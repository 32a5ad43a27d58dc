package screens

import (
	goimage "image"
	"image/color"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/avabox/gamebox/game"
	"github.com/avabox/gamebox/ui"
	"github.com/avabox/gamebox/ui/style"
)

const (
	critterBodyRadius = 32
	critterRiseTime   = 200 * time.Millisecond
	screenSize        = 720
)

// critterLooks are the body/accent color pairs critters cycle through.
var critterLooks = []struct {
	body   color.NRGBA
	accent color.NRGBA
}{
	{color.NRGBA{255, 200, 220, 255}, color.NRGBA{255, 150, 180, 255}}, // bunny
	{color.NRGBA{120, 220, 120, 255}, color.NRGBA{80, 180, 80, 255}},   // frog
	{color.NRGBA{180, 130, 80, 255}, color.NRGBA{140, 100, 60, 255}},   // bear
	{color.NRGBA{255, 230, 100, 255}, color.NRGBA{255, 180, 50, 255}},  // chick
	{color.NRGBA{255, 180, 200, 255}, color.NRGBA{255, 140, 170, 255}}, // piggy
	{color.NRGBA{180, 220, 255, 255}, color.NRGBA{130, 180, 255, 255}}, // alien
}

type starParticle struct {
	x, y, vx, vy float64
	radius       float64
	life, max    float64
	color        color.NRGBA
}

type scorePopup struct {
	x, y float64
	life float64
}

type confettiPiece struct {
	x, y, vx, vy float64
	size         float64
	life         float64
	color        color.NRGBA
}

// Whack is the whack-a-critter game screen. All timing, spawning and
// scoring live in game.Round; this screen only feeds it taps and frame
// time and draws the result.
type Whack struct {
	nav   *ui.Navigator
	log   *zap.Logger
	round *game.Round
	rng   *rand.Rand

	elapsed   float64
	wasEnded  bool
	particles []starParticle
	popups    []scorePopup
	confetti  []confettiPiece

	backRect  goimage.Rectangle
	againRect goimage.Rectangle
	ground    *ebiten.Image
	dot       *ebiten.Image
}

func NewWhack(nav *ui.Navigator, round *game.Round, rng *rand.Rand, log *zap.Logger) *Whack {
	if log == nil {
		log = zap.NewNop()
	}
	return &Whack{
		nav:       nav,
		log:       log.Named("whack"),
		round:     round,
		rng:       rng,
		backRect:  goimage.Rect(20, 20, 136, 76),
		againRect: goimage.Rect(210, 480, 510, 560),
	}
}

func (w *Whack) OnEnter(prev ui.ScreenID) {
	w.round.Start()
	w.elapsed = 0
	w.wasEnded = false
	w.particles = w.particles[:0]
	w.popups = w.popups[:0]
	w.confetti = w.confetti[:0]
	w.log.Debug("round started")
}

func (w *Whack) OnExit() {
	// Leaving mid-round abandons it; re-entry always starts fresh.
	w.round.Reset()
}

func (w *Whack) HandleTap(x, y int) {
	pt := goimage.Pt(x, y)
	if pt.In(w.backRect) {
		w.nav.Back()
		return
	}

	if w.round.Phase() == game.PhaseEnded {
		if pt.In(w.againRect) {
			w.OnEnter(ui.ScreenWhack)
		}
		return
	}

	if w.round.Tap(float64(x), float64(y)) {
		w.burst(float64(x), float64(y))
		w.popups = append(w.popups, scorePopup{x: float64(x), y: float64(y) - 50, life: 0.7})
	}
}

func (w *Whack) burst(x, y float64) {
	colors := []color.NRGBA{
		{255, 255, 100, 255}, {255, 200, 50, 255}, {255, 150, 0, 255},
		{255, 255, 200, 255}, {255, 180, 255, 255}, {150, 255, 255, 255},
	}
	for i := 0; i < 12; i++ {
		angle := w.rng.Float64() * 2 * math.Pi
		speed := 150 + w.rng.Float64()*250
		w.particles = append(w.particles, starParticle{
			x: x, y: y,
			vx:     math.Cos(angle) * speed,
			vy:     math.Sin(angle) * speed,
			radius: 4 + w.rng.Float64()*6,
			life:   0.5, max: 0.5,
			color: colors[w.rng.Intn(len(colors))],
		})
	}
}

func (w *Whack) Update(dt time.Duration) {
	sec := dt.Seconds()
	w.elapsed += sec
	w.round.Update(dt)

	if w.round.Phase() == game.PhaseEnded && !w.wasEnded {
		w.wasEnded = true
		for i := 0; i < 40; i++ {
			w.spawnConfetti()
		}
	}

	for i := range w.particles {
		p := &w.particles[i]
		p.x += p.vx * sec
		p.y += p.vy * sec
		p.vy += 100 * sec
		p.life -= sec
	}
	w.particles = filterParticles(w.particles)

	for i := range w.popups {
		w.popups[i].y -= 100 * sec
		w.popups[i].life -= sec
	}
	w.popups = filterPopups(w.popups)

	if w.wasEnded {
		for i := range w.confetti {
			c := &w.confetti[i]
			c.x += c.vx * sec
			c.y += c.vy * sec
			c.life -= sec
		}
		w.confetti = filterConfetti(w.confetti)
		if len(w.confetti) < 50 {
			w.spawnConfetti()
		}
	}
}

func (w *Whack) spawnConfetti() {
	colors := []color.NRGBA{
		{255, 100, 100, 255}, {100, 255, 100, 255}, {100, 100, 255, 255},
		{255, 255, 100, 255}, {255, 150, 255, 255}, {100, 255, 255, 255},
	}
	w.confetti = append(w.confetti, confettiPiece{
		x:     w.rng.Float64() * screenSize,
		y:     -w.rng.Float64() * screenSize,
		vx:    -30 + w.rng.Float64()*60,
		vy:    100 + w.rng.Float64()*150,
		size:  4 + w.rng.Float64()*6,
		life:  4.0,
		color: colors[w.rng.Intn(len(colors))],
	})
}

func filterParticles(in []starParticle) []starParticle {
	out := in[:0]
	for _, p := range in {
		if p.life > 0 {
			out = append(out, p)
		}
	}
	return out
}

func filterPopups(in []scorePopup) []scorePopup {
	out := in[:0]
	for _, p := range in {
		if p.life > 0 {
			out = append(out, p)
		}
	}
	return out
}

func filterConfetti(in []confettiPiece) []confettiPiece {
	out := in[:0]
	for _, c := range in {
		if c.life > 0 {
			out = append(out, c)
		}
	}
	return out
}

func (w *Whack) Draw(screen *ebiten.Image) {
	screen.DrawImage(w.groundImage(), nil)

	if w.round.Phase() == game.PhaseEnded {
		w.drawEnded(screen)
	} else {
		w.drawPlaying(screen)
	}

	// Back button over everything.
	vector.DrawFilledRect(screen,
		float32(w.backRect.Min.X), float32(w.backRect.Min.Y),
		float32(w.backRect.Dx()), float32(w.backRect.Dy()),
		style.Accent, true)
	style.DrawLabel(screen, "< Back",
		float64(w.backRect.Min.X+w.backRect.Dx()/2),
		float64(w.backRect.Min.Y+w.backRect.Dy()/2),
		style.LabelTextScale, style.TextDark)

	style.DrawLabel(screen, "WHACK!", screenSize/2, 48, style.CardTextScale, style.Text)
}

func (w *Whack) drawPlaying(screen *ebiten.Image) {
	cfg := w.round.Config()

	for _, hole := range cfg.Holes {
		w.drawEllipse(screen, float64(hole.X), float64(hole.Y), 50, 14, color.NRGBA{30, 60, 30, 255})
		w.drawEllipse(screen, float64(hole.X), float64(hole.Y), 42, 10, color.NRGBA{20, 45, 20, 255})
	}

	now := w.round.Elapsed()
	for _, t := range w.round.Targets() {
		w.drawCritter(screen, t, now)
	}

	for _, p := range w.particles {
		r := p.radius * (p.life / p.max)
		if r < 1 {
			r = 1
		}
		vector.DrawFilledCircle(screen, float32(p.x), float32(p.y), float32(r), p.color, true)
	}
	for _, sp := range w.popups {
		style.DrawLabel(screen, "+1", sp.x, sp.y, style.LabelTextScale, color.NRGBA{255, 255, 100, 255})
	}

	// HUD: score right, countdown centered under the header.
	style.DrawLabel(screen, "* "+strconv.Itoa(w.round.Score()),
		screenSize-90, 48, style.CardTextScale, color.NRGBA{255, 255, 100, 255})

	secs := int(w.round.Remaining().Seconds())
	clockColor := color.NRGBA{255, 255, 255, 255}
	if secs <= 5 {
		clockColor = color.NRGBA{255, 80, 80, 255}
	}
	style.DrawLabel(screen, style.FormatClock(secs), screenSize/2, 95, style.LabelTextScale, clockColor)
}

func (w *Whack) drawEnded(screen *ebiten.Image) {
	for _, c := range w.confetti {
		vector.DrawFilledRect(screen, float32(c.x), float32(c.y),
			float32(c.size), float32(c.size), c.color, false)
	}

	style.DrawLabel(screen, "GREAT JOB!", screenSize/2, 260,
		style.BannerTextScale, color.NRGBA{255, 255, 100, 255})
	style.DrawLabel(screen, "Score: "+strconv.Itoa(w.round.Score()), screenSize/2, 370,
		style.CardTextScale, style.Text)

	score := w.round.Score()
	var msg string
	switch {
	case score >= 25:
		msg = "SUPER STAR!"
	case score >= 15:
		msg = "AMAZING!"
	case score >= 8:
		msg = "GREAT WORK!"
	default:
		msg = "NICE TRY!"
	}
	style.DrawLabel(screen, msg, screenSize/2, 420,
		style.LabelTextScale, color.NRGBA{255, 220, 180, 255})

	vector.DrawFilledRect(screen,
		float32(w.againRect.Min.X), float32(w.againRect.Min.Y),
		float32(w.againRect.Dx()), float32(w.againRect.Dy()),
		style.Primary, true)
	style.DrawLabel(screen, "PLAY AGAIN",
		float64(w.againRect.Min.X+w.againRect.Dx()/2),
		float64(w.againRect.Min.Y+w.againRect.Dy()/2),
		style.CardTextScale, style.Text)
}

// drawCritter renders one live target. Critters pop up over rise time
// and every spawn gets a stable look from its hole and age.
func (w *Whack) drawCritter(screen *ebiten.Image, t game.Target, now time.Duration) {
	age := now - t.SpawnedAt
	progress := 1.0
	if age < critterRiseTime {
		progress = float64(age) / float64(critterRiseTime)
	}
	look := critterLooks[(t.Hole+int(t.SpawnedAt/time.Millisecond))%len(critterLooks)]

	offsetY := (1.0 - progress) * critterBodyRadius * 2
	bx := t.X
	by := t.Y - critterBodyRadius - 5 + offsetY

	// Body and belly
	vector.DrawFilledCircle(screen, float32(bx), float32(by), critterBodyRadius, look.body, true)
	vector.DrawFilledCircle(screen, float32(bx), float32(by+5), critterBodyRadius-10, look.accent, true)

	// Eyes
	eyeY := by - 8
	for _, dx := range []float64{-11, 11} {
		ex := bx + dx
		vector.DrawFilledCircle(screen, float32(ex), float32(eyeY), 8, color.NRGBA{255, 255, 255, 255}, true)
		vector.DrawFilledCircle(screen, float32(ex), float32(eyeY), 4, color.NRGBA{0, 0, 0, 255}, true)
		vector.DrawFilledCircle(screen, float32(ex-2), float32(eyeY-2), 2, color.NRGBA{255, 255, 255, 255}, true)
	}

	// Cheeks
	blush := look.accent
	blush.A = 100
	vector.DrawFilledCircle(screen, float32(bx-20), float32(by+5), 6, blush, true)
	vector.DrawFilledCircle(screen, float32(bx+20), float32(by+5), 6, blush, true)
}

// drawEllipse draws a filled ellipse by scaling a cached unit circle.
func (w *Whack) drawEllipse(screen *ebiten.Image, cx, cy, rx, ry float64, clr color.NRGBA) {
	if w.dot == nil {
		const r = 64
		w.dot = ebiten.NewImage(r*2, r*2)
		vector.DrawFilledCircle(w.dot, r, r, r, color.White, true)
	}
	size := float64(w.dot.Bounds().Dx())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rx*2/size, ry*2/size)
	op.GeoM.Translate(cx-rx, cy-ry)
	op.ColorScale.ScaleWithColor(clr)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(w.dot, op)
}

// groundImage lazily renders the grass gradient once.
func (w *Whack) groundImage() *ebiten.Image {
	if w.ground != nil {
		return w.ground
	}
	top := [3]float64{80, 170, 80}
	bottom := [3]float64{50, 130, 50}
	w.ground = ebiten.NewImage(screenSize, screenSize)
	for y := 0; y < screenSize; y++ {
		t := float64(y) / screenSize
		clr := color.NRGBA{
			R: uint8(top[0] + (bottom[0]-top[0])*t),
			G: uint8(top[1] + (bottom[1]-top[1])*t),
			B: uint8(top[2] + (bottom[2]-top[2])*t),
			A: 255,
		}
		vector.DrawFilledRect(w.ground, 0, float32(y), screenSize, 1, clr, false)
	}
	return w.ground
}

