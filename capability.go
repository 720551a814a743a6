package lazyimg

// Capabilities is the probed deferred-loading support of an Environment.
// These are environment facts, not per-image state: probed once at Runtime
// construction and reused by every controller.
type Capabilities struct {
	// NativeLazyLoad is true when elements defer their own loading.
	NativeLazyLoad bool
	// Intersection is true when a viewport-intersection primitive exists.
	Intersection bool
}

// DetectCapabilities probes env. Called by NewRuntime; exported so tests
// and diagnostics can probe directly.
func DetectCapabilities(env Environment) Capabilities {
	if env == nil {
		return Capabilities{}
	}
	return Capabilities{
		NativeLazyLoad: env.SupportsNativeLazyLoad(),
		Intersection:   env.SupportsIntersection(),
	}
}
