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

type nightStar struct {
	x, y         float64
	radius       float64
	phase, speed float64
}

type trailDot struct {
	x, y      float64
	radius    float64
	life, max float64
	hue       float64
}

// Fireworks is the tap-anywhere fireworks screen. Rockets and bursts
// live in game.FireworksShow; this screen adds the night sky, the
// twinkling stars and the rocket trails.
type Fireworks struct {
	nav  *ui.Navigator
	show *game.FireworksShow
	rng  *rand.Rand

	stars  []nightStar
	trails []trailDot

	backRect goimage.Rectangle
	sky      *ebiten.Image
}

func NewFireworks(nav *ui.Navigator, show *game.FireworksShow, rng *rand.Rand) *Fireworks {
	return &Fireworks{
		nav:      nav,
		show:     show,
		rng:      rng,
		backRect: goimage.Rect(20, 20, 136, 76),
	}
}

func (f *Fireworks) OnEnter(prev ui.ScreenID) {
	f.show.Start()
	f.trails = f.trails[:0]
	f.stars = f.stars[:0]
	for i := 0; i < 50; i++ {
		f.stars = append(f.stars, nightStar{
			x:      f.rng.Float64() * screenSize,
			y:      f.rng.Float64() * (screenSize - 100),
			radius: 1 + f.rng.Float64()*1.5,
			phase:  f.rng.Float64() * 2 * math.Pi,
			speed:  1.5 + f.rng.Float64()*2,
		})
	}
}

func (f *Fireworks) OnExit() {}

func (f *Fireworks) HandleTap(x, y int) {
	if goimage.Pt(x, y).In(f.backRect) {
		f.nav.Back()
		return
	}
	f.show.Launch(float64(x), float64(y))
}

func (f *Fireworks) Update(dt time.Duration) {
	sec := dt.Seconds()
	f.show.Update(dt)

	for i := range f.stars {
		f.stars[i].phase += f.stars[i].speed * sec
	}

	// One trail dot per rocket per frame keeps a steady exhaust line.
	for _, r := range f.show.Rockets() {
		f.trails = append(f.trails, trailDot{
			x:      r.X + f.rng.Float64()*6 - 3,
			y:      r.Y + f.rng.Float64()*4 - 2,
			radius: 1.5 + f.rng.Float64()*1.5,
			life:   0.2 + f.rng.Float64()*0.25,
			max:    0.45,
			hue:    r.Hue + f.rng.Float64()*40 - 20,
		})
	}
	for i := range f.trails {
		f.trails[i].life -= sec
	}
	live := f.trails[:0]
	for _, d := range f.trails {
		if d.life > 0 {
			live = append(live, d)
		}
	}
	f.trails = live
}

func (f *Fireworks) Draw(screen *ebiten.Image) {
	screen.DrawImage(f.skyImage(), nil)

	for _, s := range f.stars {
		glow := (math.Sin(s.phase) + 1) / 2
		b := uint8(120 + 135*glow)
		r := s.radius * (0.6 + 0.4*glow)
		if r < 1 {
			r = 1
		}
		vector.DrawFilledCircle(screen, float32(s.x), float32(s.y), float32(r),
			color.NRGBA{b, b, b, 255}, true)
	}

	for _, d := range f.trails {
		fade := d.life / d.max
		vector.DrawFilledCircle(screen, float32(d.x), float32(d.y),
			float32(math.Max(1, d.radius*fade)), fadeHSV(d.hue, 0.8, fade), true)
	}

	for _, r := range f.show.Rockets() {
		vector.DrawFilledCircle(screen, float32(r.X), float32(r.Y), 4,
			style.HSV(r.Hue, 0.9, 1), true)
		vector.DrawFilledCircle(screen, float32(r.X), float32(r.Y), 2,
			color.NRGBA{255, 255, 255, 255}, true)
	}

	for _, p := range f.show.Sparks() {
		fade := p.Life / p.MaxLife
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y),
			float32(math.Max(1, p.Radius*fade)), fadeHSV(p.Hue, 0.85, fade), true)
	}

	vector.DrawFilledRect(screen,
		float32(f.backRect.Min.X), float32(f.backRect.Min.Y),
		float32(f.backRect.Dx()), float32(f.backRect.Dy()),
		style.Accent, true)
	style.DrawLabel(screen, "< Back",
		float64(f.backRect.Min.X+f.backRect.Dx()/2),
		float64(f.backRect.Min.Y+f.backRect.Dy()/2),
		style.LabelTextScale, style.TextDark)
}

// fadeHSV dims a hue toward black as fade drops from 1 to 0, the way
// sparks cool off.
func fadeHSV(hue, sat, fade float64) color.NRGBA {
	if fade < 0 {
		fade = 0
	}
	return style.HSV(hue, sat, fade)
}

// skyImage lazily renders the night gradient once.
func (f *Fireworks) skyImage() *ebiten.Image {
	if f.sky != nil {
		return f.sky
	}
	top := [3]float64{5, 5, 25}
	bottom := [3]float64{15, 15, 50}
	f.sky = ebiten.NewImage(screenSize, screenSize)
	for y := 0; y < screenSize; y++ {
		t := float64(y) / screenSize
		clr := color.NRGBA{
			R: uint8(top[0] + (bottom[0]-top[0])*t),
			G: uint8(top[1] + (bottom[1]-top[1])*t),
			B: uint8(top[2] + (bottom[2]-top[2])*t),
			A: 255,
		}
		vector.DrawFilledRect(f.sky, 0, float32(y), screenSize, 1, clr, false)
	}
	return f.sky
}
