// Package weave is a dependency-resolution registry.
//
// A Registry maps service keys (a Go type plus an optional name) to factories with
// a lifetime policy. Registrations can be aliased under further keys, and groups of
// registrations are packaged as assemblies that declare the assemblies they depend
// on.
//
//	r := weave.New(weave.WithAssemblies(StorageAssembly{}, APIAssembly{}))
//	api := weave.MustResolve[*API](r)
package weave

import (
	"github.com/xraph/weave/internal/di"
)

// Registry maps service keys to storages.
type Registry = di.Registry

// Option configures a Registry.
type Option = di.Option

// ServiceKey identifies a registration.
type ServiceKey = di.ServiceKey

// ServiceInfo contains diagnostic information.
type ServiceInfo = di.ServiceInfo

// Factory builds an instance from a resolver and the call's arguments.
type Factory = di.Factory

// Resolver produces instances by key.
type Resolver = di.Resolver

// Registrator is what assemblies register against.
type Registrator = di.Registrator

// Forwarding is a handle to a registration, used for aliasing.
type Forwarding = di.Forwarding

// Arguments is the bundle of values passed to a factory at resolution time.
type Arguments = di.Arguments

// Assembly types.
type (
	Assembly          = di.Assembly
	DependentAssembly = di.DependentAssembly
	Identifiable      = di.Identifiable
	NamedAssembly     = di.NamedAssembly
)

// AccessLevel decides whether a registration may be replaced.
type AccessLevel = di.AccessLevel

// Access levels.
const (
	AccessInherit = di.AccessInherit
	AccessFinal   = di.AccessFinal
	AccessOpen    = di.AccessOpen
)

// Lifetime selects how instances are cached.
type Lifetime = di.Lifetime

// Lifetimes.
const (
	LifetimeWeak      = di.LifetimeWeak
	LifetimeContainer = di.LifetimeContainer
	LifetimeTransient = di.LifetimeTransient
)

// Option types for registration, resolution and forwarding.
type (
	RegisterOptions = di.RegisterOptions
	RegisterOption  = di.RegisterOption
	ResolveOption   = di.ResolveOption
	ForwardOption   = di.ForwardOption
)

// Registry construction.
var (
	New                  = di.New
	WithLogger           = di.WithLogger
	WithMetrics          = di.WithMetrics
	WithPrometheus       = di.WithPrometheus
	WithTracer           = di.WithTracer
	WithStrictAssertions = di.WithStrictAssertions
	WithConfig           = di.WithConfig
	WithAssemblies       = di.WithAssemblies
	AssemblyFunc         = di.AssemblyFunc
)

// Registration options.
var (
	Named        = di.Named
	WithAccess   = di.WithAccess
	Final        = di.Final
	Open         = di.Open
	WithLifetime = di.WithLifetime
	AsContainer  = di.AsContainer
	AsWeak       = di.AsWeak
	AsTransient  = di.AsTransient
)

// Resolution and forwarding options.
var (
	ResolveNamed       = di.ResolveNamed
	WithArguments      = di.WithArguments
	WithArgumentBundle = di.WithArgumentBundle
	ForwardNamed       = di.ForwardNamed
	ForwardAccess      = di.ForwardAccess
)

// Keys, arguments and composition.
var (
	KeyFor       = di.KeyFor
	TypeKey      = di.TypeKey
	NewArguments = di.NewArguments
	Flatten      = di.Flatten
	Closure      = di.Closure
	AssemblyID   = di.AssemblyID
)

// Shared registry slot.
var (
	MakeShared  = di.MakeShared
	RazeShared  = di.RazeShared
	ClearShared = di.ClearShared
	Shared      = di.Shared
)
