package lazyimg

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteElement is the Ebitengine Element: an on-screen slot holding the
// placeholder and final image layers for one logical image. The caller's
// own loader fetches and decodes the full image, then hands it over with
// Deliver; the load/error callbacks feed the attached Controller.
type SpriteElement struct {
	rect        Rect
	placeholder *ebiten.Image
	final       *ebiten.Image
	src         string
	complete    bool

	loadFns []func()
	errFns  []func(error)
}

// NewSpriteElement creates an empty slot at the given screen rectangle.
func NewSpriteElement(rect Rect) *SpriteElement {
	return &SpriteElement{rect: rect}
}

// Bounds returns the slot's screen rectangle.
func (e *SpriteElement) Bounds() Rect {
	return e.rect
}

// SetBounds moves or resizes the slot.
func (e *SpriteElement) SetBounds(r Rect) {
	e.rect = r
}

// SetPlaceholder sets the placeholder layer, typically a decoded inline
// preview scaled up to slot size (see DecodePlaceholder, ScalePlaceholder).
func (e *SpriteElement) SetPlaceholder(img *ebiten.Image) {
	e.placeholder = img
}

// Deliver hands the slot its full-resolution image and fires the load
// callbacks. The first delivery wins; later calls are no-ops.
func (e *SpriteElement) Deliver(src string, img *ebiten.Image) {
	if e.complete {
		return
	}
	e.src = src
	e.final = img
	e.complete = true
	for _, fn := range e.loadFns {
		fn()
	}
}

// Fail reports that the full image could not be produced. The slot stays
// incomplete and keeps showing its placeholder; a later Deliver may still
// succeed if the caller retries.
func (e *SpriteElement) Fail(err error) {
	for _, fn := range e.errFns {
		fn(err)
	}
}

// Complete reports whether the full image has been delivered.
func (e *SpriteElement) Complete() bool {
	return e.complete
}

// CurrentSrc returns the delivered source, or "" while incomplete.
func (e *SpriteElement) CurrentSrc() string {
	return e.src
}

// OnLoad registers a load callback. Registration alone never fires it,
// even when delivery already happened — callers who may register late
// check Complete themselves.
func (e *SpriteElement) OnLoad(fn func()) {
	e.loadFns = append(e.loadFns, fn)
}

// OnError registers an error callback.
func (e *SpriteElement) OnError(fn func(error)) {
	e.errFns = append(e.errFns, fn)
}

// Draw renders the slot's layers onto dst according to the controller's
// presentation state and, while one is running, the cross-fade's alphas.
// Layers are stretched to the slot rectangle.
func (e *SpriteElement) Draw(dst *ebiten.Image, p Presentation, f *CrossFade) {
	if p.Empty {
		return
	}

	placeholderAlpha := p.PlaceholderAlpha
	imageAlpha := 0.0
	if p.Reveal {
		imageAlpha = 1
	}
	if f != nil && !f.Done {
		placeholderAlpha = f.PlaceholderAlpha()
		imageAlpha = f.ImageAlpha()
	}

	if e.placeholder != nil && placeholderAlpha > 0 {
		e.drawLayer(dst, e.placeholder, placeholderAlpha)
	}
	if p.Visible && e.final != nil && imageAlpha > 0 {
		e.drawLayer(dst, e.final, imageAlpha)
	}
}

func (e *SpriteElement) drawLayer(dst, src *ebiten.Image, alpha float64) {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(e.rect.Width/float64(w), e.rect.Height/float64(h))
	op.GeoM.Translate(e.rect.X, e.rect.Y)
	a := float32(alpha)
	op.ColorScale.Scale(a, a, a, a)
	dst.DrawImage(src, &op)
}
