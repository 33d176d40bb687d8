package di

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/xraph/weave/internal/config"
	"github.com/xraph/weave/internal/errors"
	"github.com/xraph/weave/internal/logger"
	"github.com/xraph/weave/internal/metrics"
)

// TracerName is the instrumentation name used for composition spans.
const TracerName = "github.com/xraph/weave"

// Resolver produces instances by key. Factories receive one to resolve their own
// dependencies.
type Resolver interface {
	// OptionalResolve returns false when nothing is registered for key.
	OptionalResolve(key ServiceKey, args Arguments) (any, bool)
}

// Registrator is what assemblies register against.
type Registrator interface {
	Register(key ServiceKey, opts RegisterOptions, factory Factory) (Forwarding, error)
	// Lookup returns a handle to an existing registration, for aliasing it.
	Lookup(key ServiceKey) (Forwarding, error)
}

// ServiceInfo contains diagnostic information about one key.
type ServiceInfo struct {
	Key          ServiceKey
	Lifetime     Lifetime
	AccessLevel  AccessLevel
	Forwarded    bool
	Instantiated bool
}

// Registry maps service keys to storages. It is safe for concurrent use; the lock
// only covers the map, never a factory call, so factories may resolve through the
// registry they were registered in.
type Registry struct {
	id       string
	storages map[ServiceKey]Storage
	mu       sync.RWMutex
	closed   atomic.Bool

	logger  logger.Logger
	metrics metrics.Recorder
	tracer  trace.Tracer
	strict  bool

	// set by options, consumed by New
	prom      prometheus.Registerer
	namespace string
	noMetrics bool
	pending   []Assembly
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger. The default is a noop logger.
func WithLogger(l logger.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records registry activity.
func WithMetrics(m metrics.Recorder) Option {
	return func(r *Registry) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithTracer sets the tracer used by Apply. The default is the global otel tracer.
func WithTracer(t trace.Tracer) Option {
	return func(r *Registry) {
		if t != nil {
			r.tracer = t
		}
	}
}

// WithStrictAssertions makes duplicate final registrations and a second shared
// registry panic instead of only logging a warning.
func WithStrictAssertions(strict bool) Option {
	return func(r *Registry) { r.strict = strict }
}

// WithPrometheus registers a metrics collector with reg when the registry is built.
func WithPrometheus(reg prometheus.Registerer) Option {
	return func(r *Registry) { r.prom = reg }
}

// WithConfig applies a loaded configuration. Metrics are only collected when a
// Prometheus registerer is also supplied through WithPrometheus.
func WithConfig(cfg config.Config) Option {
	return func(r *Registry) {
		r.strict = cfg.StrictAssertions
		if l, err := logger.ForLevel(cfg.LogLevel); err == nil {
			r.logger = l
		}
		r.noMetrics = !cfg.Metrics.Enabled
		r.namespace = cfg.Metrics.Namespace
		if !cfg.Tracing.Enabled {
			r.tracer = noop.NewTracerProvider().Tracer(TracerName)
		}
	}
}

// WithAssemblies composes the given assemblies into the new registry.
func WithAssemblies(assemblies ...Assembly) Option {
	return func(r *Registry) {
		r.pending = append(r.pending, assemblies...)
	}
}

// New creates a registry. Assemblies passed through WithAssemblies are applied
// after every other option, in the order Flatten gives.
func New(opts ...Option) *Registry {
	r := &Registry{
		id:       uuid.NewString(),
		storages: make(map[ServiceKey]Storage),
		logger:   logger.NewNoopLogger(),
		metrics:  metrics.NewNoOpRecorder(),
		tracer:   otel.Tracer(TracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	if r.prom != nil && !r.noMetrics {
		namespace := r.namespace
		if namespace == "" {
			namespace = metrics.DefaultNamespace
		}
		collector, err := metrics.NewCollector(r.prom, namespace)
		if err != nil {
			r.logger.Warn("metrics disabled", logger.String("registry", r.id), logger.Error(err))
		} else {
			r.metrics = collector
		}
	}

	pending := r.pending
	r.pending = nil
	if len(pending) > 0 {
		r.Apply(context.Background(), pending...)
	}
	return r
}

// ID returns the registry's unique identifier.
func (r *Registry) ID() string { return r.id }

// Register stores factory under key following the access rules:
//
//	existing final, new final: existing kept, duplicate error returned
//	existing final, new open:  new ignored, no error
//	existing open:             replaced
//
// The returned handle always wraps whatever storage ends up under key, so it can
// be aliased even when the registration itself was ignored.
func (r *Registry) Register(key ServiceKey, opts RegisterOptions, factory Factory) (Forwarding, error) {
	if factory == nil {
		return nil, errors.NewServiceError(key.String(), "register", errors.ErrInvalidFactory)
	}
	access := opts.AccessLevel.orDefault()
	lifetime := opts.Lifetime
	candidate := newStorage(lifetime, access, r.instrument(lifetime, factory))

	stored, outcome, err := r.put(key, candidate)
	if err != nil {
		return nil, errors.NewServiceError(key.String(), "register", err)
	}
	r.metrics.ObserveRegistration(lifetime.String(), outcome)

	fields := []logger.Field{
		logger.String("registry", r.id),
		logger.String("key", key.String()),
		logger.String("lifetime", lifetime.String()),
		logger.String("access", access.String()),
		logger.String("outcome", outcome),
	}

	handle := &forwarder{registrar: r, key: key, storage: stored}
	switch outcome {
	case metrics.OutcomeDuplicate:
		err = errors.NewServiceError(key.String(), "register", errors.ErrServiceAlreadyExists(key.String()))
		r.logger.Warn("service already registered as final", fields...)
		r.assert(err)
		return handle, err
	case metrics.OutcomeIgnored:
		r.logger.Debug("open registration ignored, final registration exists", fields...)
	default:
		r.logger.Debug("service registered", fields...)
	}
	return handle, nil
}

// forward stores an alias storage under key with the same rules as Register.
func (r *Registry) forward(key ServiceKey, storage *forwardingStorage) error {
	_, outcome, err := r.put(key, storage)
	if err != nil {
		return errors.NewServiceError(key.String(), "forward", err)
	}
	r.metrics.ObserveForward(outcome)

	fields := []logger.Field{
		logger.String("registry", r.id),
		logger.String("key", key.String()),
		logger.String("access", storage.AccessLevel().String()),
		logger.String("outcome", outcome),
	}

	if outcome == metrics.OutcomeDuplicate {
		err = errors.NewServiceError(key.String(), "forward", errors.ErrServiceAlreadyExists(key.String()))
		r.logger.Warn("forwarding target already registered as final", fields...)
		r.assert(err)
		return err
	}
	r.logger.Debug("service forwarded", fields...)
	return nil
}

// put is the single read-check-write on the map. The closed flag is checked under
// the same lock Close takes, so nothing lands in a closed registry.
func (r *Registry) put(key ServiceKey, candidate Storage) (Storage, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed.Load() {
		return nil, "", errors.ErrRegistryClosed
	}
	defer func() { r.metrics.SetServices(len(r.storages)) }()

	found, exists := r.storages[key]
	switch {
	case !exists:
		r.storages[key] = candidate
		return candidate, metrics.OutcomeInserted, nil
	case found.AccessLevel() == AccessOpen:
		r.storages[key] = candidate
		return candidate, metrics.OutcomeOverwritten, nil
	case candidate.AccessLevel() == AccessOpen:
		return found, metrics.OutcomeIgnored, nil
	default:
		return found, metrics.OutcomeDuplicate, nil
	}
}

// Lookup returns a handle to the storage registered under key.
func (r *Registry) Lookup(key ServiceKey) (Forwarding, error) {
	storage, ok := r.find(key)
	if !ok {
		return nil, errors.NewServiceError(key.String(), "lookup", errors.ErrServiceNotFound(key.String()))
	}
	return &forwarder{registrar: r, key: key, storage: storage}, nil
}

// Registration is Lookup for wiring code: a missing key means assemblies are
// ordered wrongly, so it panics.
func (r *Registry) Registration(key ServiceKey) Forwarding {
	f, err := r.Lookup(key)
	if err != nil {
		panic(err)
	}
	return f
}

// OptionalResolve looks key up and, outside the lock, asks its storage for an
// instance.
func (r *Registry) OptionalResolve(key ServiceKey, args Arguments) (any, bool) {
	instance, ok := r.produce(key, args)
	if ok {
		r.observeResolution(key, metrics.OutcomeHit)
	} else {
		r.observeResolution(key, metrics.OutcomeMiss)
	}
	return instance, ok
}

// produce is OptionalResolve without recording an outcome. Typed resolution uses
// it so that a mismatch is counted once, as a mismatch.
func (r *Registry) produce(key ServiceKey, args Arguments) (any, bool) {
	storage, ok := r.find(key)
	if !ok {
		return nil, false
	}
	return storage.Produce(r, args), true
}

func (r *Registry) find(key ServiceKey) (Storage, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	storage, ok := r.storages[key]
	return storage, ok
}

func (r *Registry) observeResolution(key ServiceKey, outcome string) {
	r.metrics.ObserveResolution(outcome)
	if outcome == metrics.OutcomeMismatch {
		r.logger.Debug("resolved value has unexpected type",
			logger.String("registry", r.id),
			logger.String("key", key.String()),
		)
	}
}

// Has checks if a key is registered
func (r *Registry) Has(key ServiceKey) bool {
	_, ok := r.find(key)
	return ok
}

// Len returns the number of registered keys.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.storages)
}

// Services returns all registered keys, sorted.
func (r *Registry) Services() []ServiceKey {
	r.mu.RLock()
	keys := make([]ServiceKey, 0, len(r.storages))
	for key := range r.storages {
		keys = append(keys, key)
	}
	r.mu.RUnlock()

	slices.SortFunc(keys, func(a, b ServiceKey) int {
		if a.Type != b.Type {
			if a.Type < b.Type {
				return -1
			}
			return 1
		}
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})
	return keys
}

// Inspect returns diagnostic information about a key.
func (r *Registry) Inspect(key ServiceKey) (ServiceInfo, bool) {
	storage, ok := r.find(key)
	if !ok {
		return ServiceInfo{Key: key}, false
	}
	_, forwarded := storage.(*forwardingStorage)
	return ServiceInfo{
		Key:          key,
		Lifetime:     storage.Lifetime(),
		AccessLevel:  storage.AccessLevel(),
		Forwarded:    forwarded,
		Instantiated: storage.Instantiated(),
	}, true
}

// Apply composes assemblies into the registry: Flatten decides the order, then
// each assembly registers in turn.
func (r *Registry) Apply(ctx context.Context, assemblies ...Assembly) {
	ordered := Flatten(assemblies)

	ctx, span := r.tracer.Start(ctx, "weave.compose",
		trace.WithAttributes(
			attribute.String("registry.id", r.id),
			attribute.Int("assembly.count", len(ordered)),
		),
	)
	defer span.End()

	for _, assembly := range ordered {
		r.assemble(ctx, assembly)
	}
	r.logger.Debug("assemblies composed",
		logger.String("registry", r.id),
		logger.Int("assemblies", len(ordered)),
	)
}

func (r *Registry) assemble(ctx context.Context, assembly Assembly) {
	id := AssemblyID(assembly)

	_, span := r.tracer.Start(ctx, "weave.assemble",
		trace.WithAttributes(attribute.String("assembly.id", id)),
	)
	defer span.End()

	assembly.Assemble(r)
	r.logger.Debug("assembly applied",
		logger.String("registry", r.id),
		logger.String("assembly", id),
	)
}

// Close drops every storage and clears the shared slot if it holds this registry.
// Later registrations fail with ErrRegistryClosed.
func (r *Registry) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return errors.ErrRegistryClosed
	}
	RazeShared(r)

	r.mu.Lock()
	r.storages = make(map[ServiceKey]Storage)
	r.mu.Unlock()
	r.metrics.SetServices(0)

	r.logger.Debug("registry closed", logger.String("registry", r.id))
	return nil
}

// instrument counts factory invocations per lifetime.
func (r *Registry) instrument(lifetime Lifetime, factory Factory) Factory {
	label := lifetime.String()
	return func(res Resolver, args Arguments) any {
		r.metrics.ObserveFactory(label)
		return factory(res, args)
	}
}

func (r *Registry) assert(err error) {
	if r.strict {
		panic(err)
	}
}
