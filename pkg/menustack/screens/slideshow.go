package screens

import (
	"fmt"
	"image"
	"image/draw"
	"strings"
	"time"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/oxport/menustack/pkg/menustack"
	"github.com/oxport/menustack/pkg/menustack/constants"
	"github.com/oxport/menustack/pkg/menustack/input"
)

// Slide is one SVG image of a slideshow.
type Slide struct {
	SVG      string
	Duration time.Duration // Default: constants.DefaultSlideDuration
}

// Slideshow shows full-screen slides one after another, each for its duration
// or until a button is pressed. After the last slide it replaces itself with
// next, or pops when next is nil.
type Slideshow struct {
	menustack.Base

	env    *Env
	nav    menustack.Navigator
	slides []Slide
	icons  []*oksvg.SvgIcon
	next   menustack.Factory

	index    int
	width    int
	height   int
	frame    *image.RGBA
	timer    *menustack.Timer
	finished bool
}

// NewSlideshow returns a factory for a slideshow. Every slide is parsed up
// front; a malformed SVG fails construction.
func NewSlideshow(env *Env, slides []Slide, next menustack.Factory) menustack.Factory {
	return func(nav menustack.Navigator) (menustack.Screen, error) {
		if len(slides) == 0 {
			return nil, fmt.Errorf("screens: slideshow without slides")
		}

		icons := make([]*oksvg.SvgIcon, len(slides))
		for i, slide := range slides {
			icon, err := oksvg.ReadIconStream(strings.NewReader(slide.SVG))
			if err != nil {
				return nil, fmt.Errorf("screens: slide %d: %w", i, err)
			}
			icons[i] = icon
		}

		s := &Slideshow{
			env:    env,
			nav:    nav,
			slides: slides,
			icons:  icons,
			next:   next,
		}
		s.width, s.height = env.displaySize()
		s.timer = menustack.NewTimer(s.duration(0), s.advance)
		s.timer.SetClock(env.now())
		return s, nil
	}
}

func (s *Slideshow) Name() string { return "slideshow" }

func (s *Slideshow) Init() {
	if s.finished {
		return
	}
	s.render()
	s.timer.Start()
}

func (s *Slideshow) Think() {
	s.timer.Think()
}

func (s *Slideshow) Handle(ev input.Event) {
	if ev.IsPress(constants.VirtualButtonA, constants.VirtualButtonB, constants.VirtualButtonStart) {
		s.advance()
	}
}

// Resize re-rasterizes the current slide at the new display size.
func (s *Slideshow) Resize(dx, dy int) {
	s.Base.Resize(dx, dy)
	s.width = max(1, s.width+dx)
	s.height = max(1, s.height+dy)
	if !s.finished {
		s.render()
	}
}

// Index returns the current slide number.
func (s *Slideshow) Index() int {
	return s.index
}

// Frame returns the rasterized current slide.
func (s *Slideshow) Frame() image.Image {
	if s.frame == nil {
		return nil
	}
	return s.frame
}

func (s *Slideshow) View() []string {
	return []string{fmt.Sprintf("%d/%d", s.index+1, len(s.slides))}
}

func (s *Slideshow) advance() {
	if s.finished {
		return
	}

	s.index++
	if s.index < len(s.slides) {
		s.render()
		s.timer.SetInterval(s.duration(s.index))
		return
	}

	s.index = len(s.slides) - 1
	s.finished = true
	s.timer.Stop()
	if s.next != nil {
		s.nav.Replace(s.next)
	} else {
		s.nav.Pop()
	}
}

func (s *Slideshow) duration(i int) time.Duration {
	if d := s.slides[i].Duration; d > 0 {
		return d
	}
	return constants.DefaultSlideDuration
}

func (s *Slideshow) render() {
	w, h := s.width, s.height
	if s.frame == nil || s.frame.Bounds().Dx() != w || s.frame.Bounds().Dy() != h {
		s.frame = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	draw.Draw(s.frame, s.frame.Bounds(), image.Black, image.Point{}, draw.Src)

	icon := s.icons[s.index]
	icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, s.frame, s.frame.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
}
