package lazyimg

// LookaheadMargin is how far outside the viewport, in logical pixels, an
// element counts as visible. Loading starts slightly before the element
// scrolls into view so the full image has a head start.
const LookaheadMargin = 200

// Registry multiplexes many one-shot "became visible" subscriptions onto a
// single IntersectionObserver. The observer is created lazily on the first
// subscribe, configured with the lookahead margin, and shared by every
// subscription for the life of the Registry.
//
// Access is not synchronized (no mutex — lazyimg is single-threaded).
type Registry struct {
	env      Environment
	observer IntersectionObserver
	pending  map[Element]func()
}

// NewRegistry creates a Registry backed by env. The underlying observer is
// not created until the first Subscribe.
func NewRegistry(env Environment) *Registry {
	return &Registry{
		env:     env,
		pending: make(map[Element]func()),
	}
}

// Subscribe registers el for observation and arranges for onVisible to be
// invoked exactly once, when the observer first reports el intersecting the
// (margin-inflated) viewport. At most one live subscription exists per
// element; subscribing an already-pending element replaces its callback.
//
// The returned function cancels the subscription. It is safe to call more
// than once, and after the callback has fired; both are no-ops.
//
// If the environment has no intersection support, Subscribe silently does
// not observe and onVisible never fires. Callers are expected to have
// checked Capabilities.Intersection first.
func (r *Registry) Subscribe(el Element, onVisible func()) (unsubscribe func()) {
	if r.env == nil || !r.env.SupportsIntersection() {
		return func() {}
	}
	if r.observer == nil {
		r.observer = r.env.NewIntersectionObserver(LookaheadMargin, r.dispatch)
	}

	r.pending[el] = onVisible
	r.observer.Observe(el)

	return func() {
		if _, ok := r.pending[el]; !ok {
			return
		}
		delete(r.pending, el)
		r.observer.Unobserve(el)
	}
}

// dispatch handles one observation report. The entry is removed and the
// element unobserved before the callback runs, so a callback that
// re-subscribes (or a primitive that reports intersection repeatedly)
// cannot fire twice.
func (r *Registry) dispatch(el Element, in Intersection) {
	if !in.Intersecting && in.Ratio <= 0 {
		return
	}
	fn, ok := r.pending[el]
	if !ok {
		return
	}
	delete(r.pending, el)
	r.observer.Unobserve(el)
	fn()
}
