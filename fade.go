package lazyimg

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// CrossFade animates the transition from placeholder to final image: the
// final layer fades 0→1 over the duration while the placeholder holds full
// opacity for the same duration (the delayed-hide rule, so it never
// vanishes mid-fade) and then fades 1→0.
//
// There is no global animation manager — callers Update per frame, exactly
// like a tween group. Start one when the load completes and
// Presentation.ShouldFade is true; skip it entirely otherwise.
type CrossFade struct {
	image       *gween.Tween
	placeholder *gween.Tween
	delay       float32

	imageAlpha       float64
	placeholderAlpha float64
	imageDone        bool
	placeholderDone  bool
	Done             bool
}

// StartFade creates a CrossFade for p, or nil when p calls for an instant
// snap (no fade requested, or the image resolved synchronously from
// cache). A nil easing function defaults to ease.Linear.
func StartFade(p Presentation, fn ease.TweenFunc) *CrossFade {
	if !p.ShouldFade {
		return nil
	}
	return NewCrossFade(p.FadeDuration, fn)
}

// NewCrossFade creates a transition of the given length in seconds. Zero
// means DefaultFadeDuration.
func NewCrossFade(duration float32, fn ease.TweenFunc) *CrossFade {
	if duration == 0 {
		duration = DefaultFadeDuration
	}
	if fn == nil {
		fn = ease.Linear
	}
	return &CrossFade{
		image:            gween.New(0, 1, duration, fn),
		placeholder:      gween.New(1, 0, duration, fn),
		delay:            duration,
		placeholderAlpha: 1,
	}
}

// Update advances the transition by dt seconds.
func (f *CrossFade) Update(dt float32) {
	if f.Done {
		return
	}

	if !f.imageDone {
		v, finished := f.image.Update(dt)
		f.imageAlpha = float64(v)
		f.imageDone = finished
	}

	// The placeholder waits out the delay, consuming dt, before its own
	// tween starts; leftover time in the crossing frame carries over.
	if f.delay > 0 {
		f.delay -= dt
		if f.delay >= 0 {
			dt = 0
		} else {
			dt = -f.delay
			f.delay = 0
		}
	}
	if dt > 0 && !f.placeholderDone {
		v, finished := f.placeholder.Update(dt)
		f.placeholderAlpha = float64(v)
		f.placeholderDone = finished
	}

	f.Done = f.imageDone && f.placeholderDone
}

// ImageAlpha returns the final layer's current opacity in [0, 1].
func (f *CrossFade) ImageAlpha() float64 {
	return f.imageAlpha
}

// PlaceholderAlpha returns the placeholder layer's current opacity in [0, 1].
func (f *CrossFade) PlaceholderAlpha() float64 {
	return f.placeholderAlpha
}
