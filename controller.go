package lazyimg

// State is a Controller's position in the load lifecycle.
type State uint8

const (
	// StatePending means visibility has not been granted: the element is
	// far from the viewport and fetching is not yet permitted.
	StatePending State = iota
	// StateVisibleLoading means fetching is permitted but completion has
	// not been confirmed.
	StateVisibleLoading
	// StateLoaded means the full image's load completed. Terminal for
	// this instance.
	StateLoaded
)

// DefaultFadeDuration is used when Config.FadeDuration is zero.
const DefaultFadeDuration float32 = 0.5

// Config describes one logical image to a Controller. The zero value of
// every optional field is a sensible default.
type Config struct {
	// Variants is the normalized candidate list. The first variant's Src
	// is the controller's identity. Empty means render nothing.
	Variants []Variant

	// Critical marks this load as high priority: visibility is granted
	// at construction and no registry subscription is created.
	Critical bool

	// FadeIn requests a timed opacity transition from placeholder to
	// final image. Forced off when the identity already completed a
	// load this session, and suppressed (without being cleared) when
	// the image resolves synchronously from cache.
	FadeIn bool
	// FadeDuration is the transition length in seconds.
	// Zero means DefaultFadeDuration.
	FadeDuration float32

	// OnStartLoad is invoked when visibility is granted, carrying
	// whether the identity was already in the seen-cache at that moment.
	OnStartLoad func(alreadySeen bool)
	// OnLoad is invoked once, after the load completes and the
	// seen-cache is marked.
	OnLoad func()
	// OnError is invoked when the underlying resource fails to resolve.
	// The controller stays in its current state; retry and fallback are
	// the caller's concern.
	OnError func(error)
}

// Controller owns the visibility/load lifecycle for one on-screen image.
// Construct with NewController, attach the element handle with Attach, and
// read the derived layer state with Presentation each frame.
//
// All methods must be called from the game loop; events for one controller
// are strictly ordered relative to each other.
type Controller struct {
	rt       *Runtime
	cfg      Config
	identity string

	// fadeIn is fixed at construction; only its effect is gated by the
	// other flags.
	fadeIn  bool
	visible bool
	loaded  bool
	cached  bool

	element     Element
	unsubscribe func()
	disposed    bool
}

// NewController builds the initial state for one logical image.
//
// Visibility starts granted when any of these hold: the identity already
// completed a load this session, the load is Critical, the environment
// natively defers loading (the element waits on its own), or no
// intersection primitive exists (nothing to wait on). Otherwise the
// controller starts pending and subscribes to the registry on Attach.
func NewController(rt *Runtime, cfg Config) *Controller {
	c := &Controller{
		rt:       rt,
		cfg:      cfg,
		identity: identityOf(cfg.Variants),
	}

	seen := c.identity != "" && rt.Cache.Has(c.identity)
	c.fadeIn = cfg.FadeIn && !seen

	c.visible = true
	if !seen && !cfg.Critical && len(cfg.Variants) > 0 &&
		!rt.Caps.NativeLazyLoad && rt.Caps.Intersection {
		c.visible = false
	}
	return c
}

// Attach hands the controller its element. For a pending controller this
// registers the one-shot visibility subscription; for one that starts
// visible it fires the start-of-load notification and wires the load
// signals immediately.
//
// Attach is called once, when the presentation layer mounts the slot.
func (c *Controller) Attach(el Element) {
	if c.disposed || el == nil {
		return
	}
	c.element = el

	if !c.visible {
		c.unsubscribe = c.rt.Registry.Subscribe(el, c.grantVisibility)
		return
	}

	c.notifyStartLoad(c.rt.Cache.Has(c.identity))
	c.cached = el.CurrentSrc() != ""
	c.hookLoadSignals(el)
}

// grantVisibility is the pending → visible-loading transition, fired by the
// registry's one-shot callback. The work is split in two explicit steps:
// visibility is granted first, and only then is the element's load status
// read, because the element's source state is meaningless before the
// presentation layer has been allowed to request the image.
func (c *Controller) grantVisibility() {
	if c.disposed || c.visible {
		return
	}
	c.unsubscribe = nil

	seen := c.rt.Cache.Has(c.identity)
	c.notifyStartLoad(seen)
	c.visible = true

	c.recordInitialLoadStatus(seen)
	c.hookLoadSignals(c.element)
}

// recordInitialLoadStatus is the second step of the visibility transition:
// an identity that completed a load earlier this session counts as loaded
// already, and a resolved current source at this moment means the resource
// came from local cache (so the fade is suppressed).
func (c *Controller) recordInitialLoadStatus(seen bool) {
	c.loaded = seen
	c.cached = c.element.CurrentSrc() != ""
}

// hookLoadSignals wires the element's load and error callbacks, then
// consults its completion flag directly: a resource that resolved before
// the listener attached would otherwise never report.
func (c *Controller) hookLoadSignals(el Element) {
	el.OnLoad(c.handleLoadComplete)
	el.OnError(c.handleLoadError)
	if el.Complete() {
		c.handleLoadComplete()
	}
}

// handleLoadComplete is the → loaded transition. The seen-cache is marked
// before the state flips so a controller constructed from the on-load hook
// already sees the identity. Exactly one completion takes effect; later
// signals are no-ops.
func (c *Controller) handleLoadComplete() {
	if c.disposed || c.loaded {
		return
	}
	if c.identity != "" {
		c.rt.Cache.Mark(c.identity)
	}
	c.loaded = true
	if c.cfg.OnLoad != nil {
		c.cfg.OnLoad()
	}
}

// handleLoadError forwards the failure and changes nothing: the state
// machine does not advance, the seen-cache is not marked, and the
// placeholder stays up indefinitely.
func (c *Controller) handleLoadError(err error) {
	if c.disposed {
		return
	}
	if c.cfg.OnError != nil {
		c.cfg.OnError(err)
	}
}

func (c *Controller) notifyStartLoad(seen bool) {
	if c.cfg.OnStartLoad != nil {
		c.cfg.OnStartLoad(seen)
	}
}

// Dispose cancels a still-pending registry subscription so the visibility
// callback can never fire against a dead controller. Safe to call more
// than once.
func (c *Controller) Dispose() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.disposed = true
}

// Identity returns the canonical key for this controller's image.
func (c *Controller) Identity() string {
	return c.identity
}

// State reports the controller's position in the lifecycle.
func (c *Controller) State() State {
	switch {
	case c.loaded:
		return StateLoaded
	case c.visible:
		return StateVisibleLoading
	default:
		return StatePending
	}
}

// Presentation is the derived layer state for one frame. It is recomputed
// on every call from the controller flags, never stored.
type Presentation struct {
	// Empty means no variants were supplied: draw nothing at all.
	Empty bool
	// Visible means the full image may be requested and drawn.
	Visible bool
	// Reveal means the final layer shows at full opacity (either no fade
	// was requested, or the load has completed).
	Reveal bool
	// ShouldFade means a timed opacity transition applies rather than an
	// instant snap. An image resolved synchronously from cache never
	// animates even when a fade was requested.
	ShouldFade bool
	// PlaceholderAlpha is the placeholder layer's opacity.
	PlaceholderAlpha float64
	// PlaceholderDelay is how long, in seconds, the placeholder holds
	// before hiding, so it does not vanish mid-fade.
	PlaceholderDelay float32
	// FadeDuration is the resolved transition length in seconds.
	FadeDuration float32
}

// Presentation derives the current layer state.
func (c *Controller) Presentation() Presentation {
	p := Presentation{
		Empty:        len(c.cfg.Variants) == 0,
		Visible:      c.visible,
		Reveal:       !c.fadeIn || c.loaded,
		ShouldFade:   c.fadeIn && !c.cached,
		FadeDuration: c.cfg.FadeDuration,
	}
	if p.FadeDuration == 0 {
		p.FadeDuration = DefaultFadeDuration
	}
	if !c.loaded {
		p.PlaceholderAlpha = 1
	}
	if p.ShouldFade {
		p.PlaceholderDelay = p.FadeDuration
	}
	return p
}
