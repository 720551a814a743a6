package lazyimg

// Bounded is implemented by elements that know their on-screen rectangle.
// The viewport observer can only watch Bounded elements; anything else is
// silently never reported (and so never loads — callers attach
// SpriteElement or their own Bounded implementation).
type Bounded interface {
	Bounds() Rect
}

// ViewportEnv is the Ebitengine Environment: intersection is answered by
// polling element rectangles against the viewport each frame, the way a
// camera culls offscreen nodes. There is no native deferred-loading
// primitive in this world, so non-critical images always take the
// observation path.
//
// Call Update once per frame, after moving the viewport.
type ViewportEnv struct {
	viewport  Rect
	observers []*ViewportObserver
}

// NewViewportEnv creates an environment with the given visible rectangle,
// typically the screen or the active camera's view.
func NewViewportEnv(viewport Rect) *ViewportEnv {
	return &ViewportEnv{viewport: viewport}
}

// SetViewport moves the visible rectangle (camera scroll, window resize).
func (e *ViewportEnv) SetViewport(r Rect) {
	e.viewport = r
}

// Viewport returns the current visible rectangle.
func (e *ViewportEnv) Viewport() Rect {
	return e.viewport
}

// SupportsNativeLazyLoad always reports false: Ebitengine images do not
// defer their own loading.
func (e *ViewportEnv) SupportsNativeLazyLoad() bool {
	return false
}

// SupportsIntersection always reports true.
func (e *ViewportEnv) SupportsIntersection() bool {
	return true
}

// NewIntersectionObserver creates a polled observer whose visible bounds
// are the viewport inflated by marginPx.
func (e *ViewportEnv) NewIntersectionObserver(marginPx float64, onIntersect func(Element, Intersection)) IntersectionObserver {
	o := &ViewportObserver{
		env:         e,
		margin:      marginPx,
		onIntersect: onIntersect,
		watched:     make(map[Element]bool),
	}
	e.observers = append(e.observers, o)
	return o
}

// Update polls every observer once. Intersection callbacks (and whatever
// state transitions they trigger) run synchronously inside this call.
func (e *ViewportEnv) Update() {
	for _, o := range e.observers {
		o.check()
	}
}

// ViewportObserver reports watched elements that overlap the
// margin-inflated viewport. Reports repeat every frame while the overlap
// holds; one-shot semantics live in the Registry, not here.
type ViewportObserver struct {
	env         *ViewportEnv
	margin      float64
	onIntersect func(Element, Intersection)
	watched     map[Element]bool
}

// Observe starts watching el. Elements that do not implement Bounded are
// never reported.
func (o *ViewportObserver) Observe(el Element) {
	o.watched[el] = true
}

// Unobserve stops watching el. Idempotent.
func (o *ViewportObserver) Unobserve(el Element) {
	delete(o.watched, el)
}

// check runs one poll. Callbacks may unobserve (deleting during range is
// fine) or observe new elements (visited next frame at the latest).
func (o *ViewportObserver) check() {
	visible := o.env.viewport.Inflate(o.margin)
	for el := range o.watched {
		b, ok := el.(Bounded)
		if !ok {
			continue
		}
		r := b.Bounds()
		if !visible.Intersects(r) {
			continue
		}
		o.onIntersect(el, Intersection{
			Intersecting: true,
			Ratio:        overlapRatio(visible, r),
		})
	}
}

// overlapRatio returns the fraction of r covered by visible, in [0, 1].
// A zero-area r that still intersects reports 1.
func overlapRatio(visible, r Rect) float64 {
	area := r.Width * r.Height
	if area <= 0 {
		return 1
	}
	w := min(visible.X+visible.Width, r.X+r.Width) - max(visible.X, r.X)
	h := min(visible.Y+visible.Height, r.Y+r.Height) - max(visible.Y, r.Y)
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return (w * h) / area
}
