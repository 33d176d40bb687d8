package di

// AccessLevel decides whether a registration may be replaced later.
type AccessLevel int

const (
	// AccessInherit is the zero value. Registrations treat it as AccessFinal,
	// forwardings inherit the target's level.
	AccessInherit AccessLevel = iota
	// AccessFinal registrations cannot be overridden.
	AccessFinal
	// AccessOpen registrations are replaced by any later registration of the same key.
	AccessOpen
)

// String returns the string representation of the access level.
func (a AccessLevel) String() string {
	switch a {
	case AccessFinal:
		return "final"
	case AccessOpen:
		return "open"
	default:
		return "inherit"
	}
}

func (a AccessLevel) orDefault() AccessLevel {
	if a == AccessInherit {
		return AccessFinal
	}
	return a
}

// Lifetime selects how a storage caches what its factory produces.
type Lifetime int

const (
	// LifetimeWeak shares the instance while something outside the registry still
	// references it. This is the default.
	LifetimeWeak Lifetime = iota
	// LifetimeContainer builds once and keeps the instance for the registry's lifetime.
	LifetimeContainer
	// LifetimeTransient builds a new instance on every resolution.
	LifetimeTransient
)

// String returns the string representation of the lifetime.
func (l Lifetime) String() string {
	switch l {
	case LifetimeContainer:
		return "container"
	case LifetimeTransient:
		return "transient"
	default:
		return "weak"
	}
}

// RegisterOptions holds the merged registration options.
type RegisterOptions struct {
	Name        string
	AccessLevel AccessLevel
	Lifetime    Lifetime
}

// RegisterOption is a configuration option for service registration.
type RegisterOption func(*RegisterOptions)

// Named registers under a name, so several registrations of one type can coexist.
func Named(name string) RegisterOption {
	return func(o *RegisterOptions) { o.Name = name }
}

// WithAccess sets the access level.
func WithAccess(level AccessLevel) RegisterOption {
	return func(o *RegisterOptions) { o.AccessLevel = level }
}

// Final forbids later overrides (default).
func Final() RegisterOption { return WithAccess(AccessFinal) }

// Open allows later registrations of the same key to replace this one.
func Open() RegisterOption { return WithAccess(AccessOpen) }

// WithLifetime sets the lifetime policy.
func WithLifetime(l Lifetime) RegisterOption {
	return func(o *RegisterOptions) { o.Lifetime = l }
}

// AsContainer keeps one instance for the registry's lifetime.
func AsContainer() RegisterOption { return WithLifetime(LifetimeContainer) }

// AsWeak shares the instance while it is referenced elsewhere (default).
func AsWeak() RegisterOption { return WithLifetime(LifetimeWeak) }

// AsTransient builds a new instance per resolution.
func AsTransient() RegisterOption { return WithLifetime(LifetimeTransient) }

func mergeOptions(opts []RegisterOption) RegisterOptions {
	o := RegisterOptions{AccessLevel: AccessFinal, Lifetime: LifetimeWeak}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.AccessLevel = o.AccessLevel.orDefault()
	return o
}

type resolveOptions struct {
	name string
	args Arguments
}

// ResolveOption configures a single resolution.
type ResolveOption func(*resolveOptions)

// ResolveNamed resolves the registration made with Named(name).
func ResolveNamed(name string) ResolveOption {
	return func(o *resolveOptions) { o.name = name }
}

// WithArguments passes call-specific arguments through to the factory.
func WithArguments(args ...any) ResolveOption {
	return func(o *resolveOptions) { o.args = NewArguments(args...) }
}

// WithArgumentBundle passes a prepared bundle through to the factory.
func WithArgumentBundle(args Arguments) ResolveOption {
	return func(o *resolveOptions) { o.args = args }
}

func mergeResolveOptions(opts []ResolveOption) resolveOptions {
	var o resolveOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

type forwardOptions struct {
	name  string
	level AccessLevel
}

// ForwardOption configures an alias created with Implements.
type ForwardOption func(*forwardOptions)

// ForwardNamed aliases under a named key.
func ForwardNamed(name string) ForwardOption {
	return func(o *forwardOptions) { o.name = name }
}

// ForwardAccess overrides the access level the alias is checked with. Without it the
// alias uses the target's level.
func ForwardAccess(level AccessLevel) ForwardOption {
	return func(o *forwardOptions) { o.level = level }
}

func mergeForwardOptions(opts []ForwardOption) forwardOptions {
	var o forwardOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
