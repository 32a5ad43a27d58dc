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

type popParticle struct {
	x, y, vx, vy float64
	radius       float64
	life, max    float64
	color        color.NRGBA
}

type popText struct {
	x, y float64
	life float64
}

type cloud struct {
	x, y  float64
	speed float64
	size  float64
	alpha uint8
}

// Bubbles is the bubble-pop game screen: no timer, no score pressure,
// just an endless field of bubbles from game.BubbleField.
type Bubbles struct {
	nav   *ui.Navigator
	log   *zap.Logger
	field *game.BubbleField
	rng   *rand.Rand

	elapsed   float64
	particles []popParticle
	texts     []popText
	clouds    []cloud

	backRect goimage.Rectangle
	bg       *ebiten.Image
}

func NewBubbles(nav *ui.Navigator, field *game.BubbleField, rng *rand.Rand, log *zap.Logger) *Bubbles {
	if log == nil {
		log = zap.NewNop()
	}
	b := &Bubbles{
		nav:      nav,
		log:      log.Named("bubbles"),
		field:    field,
		rng:      rng,
		backRect: goimage.Rect(20, 20, 136, 76),
	}
	for i := 0; i < 6; i++ {
		b.clouds = append(b.clouds, cloud{
			x:     rng.Float64()*(screenSize+200) - 100,
			y:     50 + rng.Float64()*(screenSize-150),
			speed: 8 + rng.Float64()*17,
			size:  40 + rng.Float64()*50,
			alpha: uint8(30 + rng.Intn(40)),
		})
	}
	return b
}

func (b *Bubbles) OnEnter(prev ui.ScreenID) {
	b.field.Start()
	b.elapsed = 0
	b.particles = b.particles[:0]
	b.texts = b.texts[:0]
}

func (b *Bubbles) OnExit() {}

func (b *Bubbles) HandleTap(x, y int) {
	if goimage.Pt(x, y).In(b.backRect) {
		b.nav.Back()
		return
	}

	popped, ok := b.field.Pop(float64(x), float64(y))
	if !ok {
		return
	}
	for i := 0; i < 15; i++ {
		angle := b.rng.Float64() * 2 * math.Pi
		speed := 200 + b.rng.Float64()*300
		b.particles = append(b.particles, popParticle{
			x: popped.X, y: popped.Y,
			vx:     math.Cos(angle) * speed,
			vy:     math.Sin(angle) * speed,
			radius: 4 + b.rng.Float64()*6,
			life:   0.3 + b.rng.Float64()*0.3,
			color:  bubblePalette[b.rng.Intn(len(bubblePalette))],
		})
		b.particles[len(b.particles)-1].max = b.particles[len(b.particles)-1].life
	}
	b.texts = append(b.texts, popText{x: popped.X, y: popped.Y - popped.Radius, life: 0.8})
}

func (b *Bubbles) Update(dt time.Duration) {
	sec := dt.Seconds()
	b.elapsed += sec

	for i := range b.clouds {
		c := &b.clouds[i]
		c.x += c.speed * sec
		if c.x > screenSize+120 {
			c.x = -120
			c.y = 50 + b.rng.Float64()*(screenSize-150)
		}
	}

	for i := range b.particles {
		p := &b.particles[i]
		p.x += p.vx * sec
		p.y += p.vy * sec
		p.vy += 200 * sec
		p.life -= sec
	}
	live := b.particles[:0]
	for _, p := range b.particles {
		if p.life > 0 {
			live = append(live, p)
		}
	}
	b.particles = live

	for i := range b.texts {
		b.texts[i].y -= 120 * sec
		b.texts[i].life -= sec
	}
	liveTexts := b.texts[:0]
	for _, tx := range b.texts {
		if tx.life > 0 {
			liveTexts = append(liveTexts, tx)
		}
	}
	b.texts = liveTexts
}

var bubblePalette = []color.NRGBA{
	{255, 120, 150, 255}, {120, 200, 255, 255}, {180, 130, 255, 255},
	{255, 200, 100, 255}, {100, 230, 180, 255}, {255, 160, 200, 255},
	{150, 220, 255, 255}, {255, 150, 120, 255}, {200, 255, 180, 255},
	{255, 180, 255, 255}, {120, 255, 200, 255}, {255, 230, 130, 255},
}

// bubbleColor gives each bubble a stable color from its position.
func bubbleColor(bub game.Bubble) color.NRGBA {
	return bubblePalette[(int(bub.X)+int(bub.Y))%len(bubblePalette)]
}

func (b *Bubbles) Draw(screen *ebiten.Image) {
	screen.DrawImage(b.background(), nil)

	for _, c := range b.clouds {
		clr := color.NRGBA{255, 255, 255, c.alpha}
		r := float32(c.size / 3)
		vector.DrawFilledCircle(screen, float32(c.x-c.size/2), float32(c.y), r, clr, true)
		vector.DrawFilledCircle(screen, float32(c.x), float32(c.y-5), r*1.3, clr, true)
		vector.DrawFilledCircle(screen, float32(c.x+c.size/2), float32(c.y), r, clr, true)
	}

	for _, bub := range b.field.Bubbles() {
		clr := bubbleColor(bub)
		bob := math.Sin(b.elapsed*2+bub.X*0.01) * 4
		bx := float32(bub.X)
		by := float32(bub.Y + bob)
		r := float32(bub.Radius)

		vector.DrawFilledCircle(screen, bx, by, r, clr, true)
		outline := color.NRGBA{
			R: clr.R - min8(clr.R, 40),
			G: clr.G - min8(clr.G, 40),
			B: clr.B - min8(clr.B, 40),
			A: 255,
		}
		vector.StrokeCircle(screen, bx, by, r, 2, outline, true)
		vector.DrawFilledCircle(screen, bx-r*0.3, by-r*0.3, maxf(3, r/4),
			color.NRGBA{255, 255, 255, 255}, true)
	}

	for _, p := range b.particles {
		r := p.radius * (p.life / p.max)
		if r < 1 {
			r = 1
		}
		vector.DrawFilledCircle(screen, float32(p.x), float32(p.y), float32(r), p.color, true)
	}
	for _, tx := range b.texts {
		style.DrawLabel(screen, "POP!", tx.x, tx.y, style.LabelTextScale,
			color.NRGBA{255, 255, 255, 255})
	}

	style.DrawLabel(screen, "* "+strconv.Itoa(b.field.Pops()),
		screenSize-90, 48, style.CardTextScale, color.NRGBA{255, 255, 100, 255})

	vector.DrawFilledRect(screen,
		float32(b.backRect.Min.X), float32(b.backRect.Min.Y),
		float32(b.backRect.Dx()), float32(b.backRect.Dy()),
		style.Accent, true)
	style.DrawLabel(screen, "< Back",
		float64(b.backRect.Min.X+b.backRect.Dx()/2),
		float64(b.backRect.Min.Y+b.backRect.Dy()/2),
		style.LabelTextScale, style.TextDark)
}

// background lazily renders the blue-to-pink gradient once.
func (b *Bubbles) background() *ebiten.Image {
	if b.bg != nil {
		return b.bg
	}
	top := [3]float64{200, 230, 255}
	bottom := [3]float64{255, 210, 240}
	b.bg = ebiten.NewImage(screenSize, screenSize)
	for y := 0; y < screenSize; y++ {
		t := float64(y) / screenSize
		clr := color.NRGBA{
			R: uint8(top[0] + (bottom[0]-top[0])*t),
			G: uint8(top[1] + (bottom[1]-top[1])*t),
			B: uint8(top[2] + (bottom[2]-top[2])*t),
			A: 255,
		}
		vector.DrawFilledRect(b.bg, 0, float32(y), screenSize, 1, clr, false)
	}
	return b.bg
}

func min8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
