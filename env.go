package lazyimg

// Element is the handle to an on-screen image slot. The presentation layer
// owns the concrete element (see SpriteElement for the Ebitengine one);
// controllers only observe it and listen for its load signals.
//
// Implementations must be comparable (the Registry keys subscriptions by
// element identity).
type Element interface {
	// Complete reports whether the element's resource has already
	// resolved. Consulted right after listener registration so a load
	// that finished before the listener attached is not missed.
	Complete() bool
	// CurrentSrc returns the resolved current source, or "" if none.
	// A non-empty value at visibility time means the resource came from
	// local cache and rendered synchronously.
	CurrentSrc() string
	// OnLoad registers a callback invoked when the resource resolves.
	OnLoad(fn func())
	// OnError registers a callback invoked when the resource fails.
	OnError(fn func(error))
}

// Intersection is one observation report for an observed element. Some
// environments only populate Ratio, so consumers treat "intersecting" as
// Intersecting OR Ratio > 0.
type Intersection struct {
	Intersecting bool
	Ratio        float64
}

// IntersectionObserver watches elements and reports viewport intersection
// through the callback given at construction. The zero contract is small on
// purpose: observe, unobserve, nothing else.
type IntersectionObserver interface {
	Observe(Element)
	Unobserve(Element)
}

// Environment supplies the capabilities lazyimg consumes but does not
// implement: native deferred loading and viewport intersection. It is
// probed exactly once, at Runtime construction. ViewportEnv is the
// Ebitengine implementation; tests inject stubs.
type Environment interface {
	// SupportsNativeLazyLoad reports whether elements natively defer
	// their own loading. When true, controllers never wait on the
	// Registry — the element handles deferral itself.
	SupportsNativeLazyLoad() bool
	// SupportsIntersection reports whether a viewport-intersection
	// primitive exists. When false (and native lazy-load is also
	// absent), loading degrades to immediate.
	SupportsIntersection() bool
	// NewIntersectionObserver creates an observer whose visible bounds
	// are inflated by marginPx on every side. onIntersect is invoked
	// once per observation report, per element.
	NewIntersectionObserver(marginPx float64, onIntersect func(Element, Intersection)) IntersectionObserver
}
