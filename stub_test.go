package lazyimg

import "errors"

var errTest = errors.New("image fetch failed")

// Test doubles shared across the package tests: a scriptable environment,
// a hand-cranked observer, and a plain element whose load/error signals
// are fired explicitly.

type stubObserver struct {
	onIntersect func(Element, Intersection)
	observed    map[Element]int
	unobserved  map[Element]int
}

func (o *stubObserver) Observe(el Element)   { o.observed[el]++ }
func (o *stubObserver) Unobserve(el Element) { o.unobserved[el]++ }

// report simulates one observation report from the underlying primitive.
func (o *stubObserver) report(el Element, in Intersection) {
	o.onIntersect(el, in)
}

type stubEnv struct {
	nativeLazy   bool
	intersection bool

	created    int
	lastMargin float64
	observer   *stubObserver
}

func (e *stubEnv) SupportsNativeLazyLoad() bool { return e.nativeLazy }
func (e *stubEnv) SupportsIntersection() bool   { return e.intersection }

func (e *stubEnv) NewIntersectionObserver(marginPx float64, onIntersect func(Element, Intersection)) IntersectionObserver {
	e.created++
	e.lastMargin = marginPx
	e.observer = &stubObserver{
		onIntersect: onIntersect,
		observed:    make(map[Element]int),
		unobserved:  make(map[Element]int),
	}
	return e.observer
}

// deferringEnv returns an environment that forces the deferred path:
// no native lazy-load, intersection available.
func deferringEnv() *stubEnv {
	return &stubEnv{intersection: true}
}

type stubElement struct {
	complete bool
	src      string
	loadFns  []func()
	errFns   []func(error)
}

func (e *stubElement) Complete() bool         { return e.complete }
func (e *stubElement) CurrentSrc() string     { return e.src }
func (e *stubElement) OnLoad(fn func())       { e.loadFns = append(e.loadFns, fn) }
func (e *stubElement) OnError(fn func(error)) { e.errFns = append(e.errFns, fn) }

// fireLoad simulates the element's native load-completion signal.
func (e *stubElement) fireLoad() {
	e.complete = true
	for _, fn := range e.loadFns {
		fn()
	}
}

// fireError simulates the element's native error signal.
func (e *stubElement) fireError(err error) {
	for _, fn := range e.errFns {
		fn(err)
	}
}

func oneVariant(src string) []Variant {
	return []Variant{{Src: src, AspectRatio: 1.5}}
}
