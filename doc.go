// Package lazyimg is a progressive-image-loading controller for [Ebitengine].
//
// Given a set of candidate image representations (a tiny inline placeholder,
// a low-fidelity vector placeholder, one or more full-resolution sources),
// lazyimg decides when to begin fetching the full image, which layer to show
// until the real image is ready, and performs a cross-fade between
// placeholder and final image exactly once per logical image identity.
//
// # Quick start
//
// Create one [Runtime] per process, then one [Controller] per on-screen
// image:
//
//	env := lazyimg.NewViewportEnv(lazyimg.Rect{Width: 640, Height: 480})
//	rt := lazyimg.NewRuntime(env)
//
//	ctrl := lazyimg.NewController(rt, lazyimg.Config{
//		Variants: []lazyimg.Variant{{Src: "hero.png", Base64: tinyPlaceholder}},
//		FadeIn:   true,
//	})
//	el := lazyimg.NewSpriteElement(lazyimg.Rect{X: 100, Y: 2000, Width: 64, Height: 64})
//	ctrl.Attach(el)
//
// Each frame, advance the viewport observer and read the derived
// presentation state:
//
//	env.Update()                 // fires visibility callbacks
//	p := ctrl.Presentation()     // which layer shows, whether to fade
//	el.Draw(screen, p, fade)
//
// When the full-resolution image arrives (decoded by your own loader —
// lazyimg performs no decoding or transport itself), deliver it:
//
//	el.Deliver("hero.png", img)  // fires the controller's load transition
//
// # Model
//
// A [Controller] owns a three-state lifecycle: pending (offscreen, fetch not
// permitted), visible-loading (fetch permitted), loaded. Non-critical images
// start pending and wait for the shared [Registry] to report them near the
// viewport (with a 200px lookahead margin); critical images, and images
// whose identity already completed a load this session, start visible
// immediately. A previously-seen identity never re-animates: the [SeenCache]
// records every completed load for the life of the process.
//
// All of lazyimg is single-threaded: state transitions happen on discrete
// events delivered from the game loop, matching Ebitengine's own model.
//
// [Ebitengine]: https://ebitengine.org
package lazyimg
