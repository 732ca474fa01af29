package desktop

import (
	"fmt"
	"image"
	"image/draw"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/oxport/menustack/pkg/menustack"
	"github.com/oxport/menustack/pkg/menustack/internal"
)

type viewer interface {
	View() []string
}

type framer interface {
	Frame() image.Image
}

const (
	lineSpacing  = 8
	panelPadding = 24
)

// Renderer draws the visible screens, bottom to top. Screens providing a
// Frame are blitted to fill the window; screens providing View have their
// lines drawn, inside a centred panel for overlays. A line starting with
// "> " is drawn highlighted.
type Renderer struct {
	window *Window
	theme  Theme
	font   *ttf.Font
	cache  *TextureCache

	frame       *sdl.Texture
	frameBounds image.Rectangle
	rgba        *image.RGBA
}

// NewRenderer prepares drawing on window. A theme without a font is allowed
// and draws bars in place of text.
func NewRenderer(window *Window, theme Theme) (*Renderer, error) {
	r := &Renderer{
		window: window,
		theme:  theme,
		cache:  NewTextureCache(defaultMaxCacheSize),
	}

	if theme.FontPath != "" {
		font, err := ttf.OpenFont(theme.FontPath, theme.FontSize)
		if err != nil {
			return nil, fmt.Errorf("desktop: open font %s: %w", theme.FontPath, err)
		}
		r.font = font
	}
	return r, nil
}

// Render implements menustack.Renderer.
func (r *Renderer) Render(screens []menustack.Screen) {
	renderer := r.window.Renderer
	width, height := r.window.Size()

	setColor(renderer, r.theme.BackgroundColor)
	renderer.Clear()

	for _, s := range screens {
		if f, ok := s.(framer); ok {
			r.drawFrame(f.Frame(), width, height)
		}

		v, ok := s.(viewer)
		if !ok {
			continue
		}
		if s.FullScreen() {
			r.drawLines(v.View(), panelPadding, panelPadding, width-2*panelPadding)
		} else {
			r.drawOverlay(v.View(), width, height)
		}
	}

	r.window.Present()
}

// Close releases textures and the font.
func (r *Renderer) Close() {
	r.cache.Destroy()
	if r.frame != nil {
		r.frame.Destroy()
	}
	if r.font != nil {
		r.font.Close()
	}
}

func (r *Renderer) drawOverlay(lines []string, width, height int) {
	renderer := r.window.Renderer

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	setColor(renderer, r.theme.ShadeColor)
	renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: int32(width), H: int32(height)})

	panelW := width * 3 / 4
	panelH := len(lines)*(r.lineHeight()+lineSpacing) + 2*panelPadding
	panel := sdl.Rect{
		X: int32((width - panelW) / 2),
		Y: int32((height - panelH) / 2),
		W: int32(panelW),
		H: int32(panelH),
	}
	setColor(renderer, r.theme.PanelColor)
	renderer.FillRect(&panel)

	r.drawLines(lines, int(panel.X)+panelPadding, int(panel.Y)+panelPadding, panelW-2*panelPadding)
}

func (r *Renderer) drawLines(lines []string, x, y, maxWidth int) {
	renderer := r.window.Renderer
	lh := r.lineHeight()

	for _, line := range lines {
		color := r.theme.TextColor
		if text, ok := strings.CutPrefix(line, "> "); ok {
			setColor(renderer, r.theme.HighlightColor)
			renderer.FillRect(&sdl.Rect{X: int32(x - 4), Y: int32(y - 2), W: int32(maxWidth + 8), H: int32(lh + 4)})
			color = r.theme.HighlightedTextColor
			line = text
		}
		r.drawText(line, x, y, maxWidth, color)
		y += lh + lineSpacing
	}
}

func (r *Renderer) drawText(text string, x, y, maxWidth int, color sdl.Color) {
	if text == "" {
		return
	}
	renderer := r.window.Renderer

	if r.font == nil {
		setColor(renderer, color)
		w := min(maxWidth, len(text)*r.lineHeight()/2)
		renderer.FillRect(&sdl.Rect{X: int32(x), Y: int32(y + r.lineHeight()/4), W: int32(w), H: int32(r.lineHeight() / 2)})
		return
	}

	key := fmt.Sprintf("%02x%02x%02x|%s", color.R, color.G, color.B, text)
	texture := r.cache.Get(key)
	if texture == nil {
		texture = renderText(renderer, text, r.font, color)
		if texture == nil {
			return
		}
		r.cache.Set(key, texture)
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}
	src := sdl.Rect{W: min(w, int32(maxWidth)), H: h}
	dst := sdl.Rect{X: int32(x), Y: int32(y), W: src.W, H: h}
	renderer.Copy(texture, &src, &dst)
}

// drawFrame uploads img into a streaming texture, recreated when the size
// changes, and stretches it over the window.
func (r *Renderer) drawFrame(img image.Image, width, height int) {
	if img == nil {
		return
	}
	bounds := img.Bounds()

	if r.frame == nil || bounds != r.frameBounds {
		if r.frame != nil {
			r.frame.Destroy()
			r.frame = nil
		}
		texture, err := r.window.Renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, int32(bounds.Dx()), int32(bounds.Dy()))
		if err != nil {
			internal.GetInternalLogger().Error("creating frame texture failed", "error", err)
			return
		}
		r.frame = texture
		r.frameBounds = bounds
		r.rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	}

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		draw.Draw(r.rgba, r.rgba.Bounds(), img, bounds.Min, draw.Src)
		rgba = r.rgba
	}

	pixels, pitch, err := r.frame.Lock(nil)
	if err != nil {
		internal.GetInternalLogger().Error("locking frame texture failed", "error", err)
		return
	}
	for row := 0; row < bounds.Dy(); row++ {
		copy(pixels[row*pitch:row*pitch+bounds.Dx()*4], rgba.Pix[row*rgba.Stride:])
	}
	r.frame.Unlock()

	r.window.Renderer.Copy(r.frame, nil, &sdl.Rect{X: 0, Y: 0, W: int32(width), H: int32(height)})
}

func (r *Renderer) lineHeight() int {
	if r.font == nil {
		return r.theme.FontSize
	}
	return r.font.Height()
}

func renderText(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color) *sdl.Texture {
	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil
	}
	return texture
}

func setColor(renderer *sdl.Renderer, c sdl.Color) {
	renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}
