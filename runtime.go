package lazyimg

// Runtime owns the shared services every Controller consults: the
// environment, its capabilities (probed once, here), the seen-cache, and
// the intersection registry. Create one per process; tests create isolated
// instances so cached identities and pending subscriptions never leak
// between cases.
type Runtime struct {
	Env      Environment
	Caps     Capabilities
	Cache    *SeenCache
	Registry *Registry
}

// NewRuntime probes env and wires the shared services around it.
func NewRuntime(env Environment) *Runtime {
	return &Runtime{
		Env:      env,
		Caps:     DetectCapabilities(env),
		Cache:    NewSeenCache(),
		Registry: NewRegistry(env),
	}
}
