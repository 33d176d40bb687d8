package di

import (
	"reflect"
)

// Assembly is a unit of registrations, applied to a registry by Registry.Apply.
type Assembly interface {
	Assemble(r Registrator)
}

// DependentAssembly declares assemblies that must be applied along with it.
type DependentAssembly interface {
	Assembly
	Dependencies() []Assembly
}

// Identifiable overrides the identity assemblies are deduplicated by. Without it
// the identity is the assembly's concrete type.
type Identifiable interface {
	ID() string
}

// NamedAssembly gives an assembly an explicit identity and dependency list.
type NamedAssembly struct {
	Name      string
	DependsOn []Assembly
	Register  func(r Registrator)
}

// ID returns the assembly's name.
func (a NamedAssembly) ID() string { return a.Name }

// Dependencies returns the declared dependencies.
func (a NamedAssembly) Dependencies() []Assembly { return a.DependsOn }

// Assemble runs the registration function, if any.
func (a NamedAssembly) Assemble(r Registrator) {
	if a.Register != nil {
		a.Register(r)
	}
}

// AssemblyFunc adapts a registration function to an Assembly identified by name.
// Function values carry no identity of their own, so the name is what Flatten
// deduplicates on.
func AssemblyFunc(name string, fn func(r Registrator), dependsOn ...Assembly) NamedAssembly {
	return NamedAssembly{Name: name, DependsOn: dependsOn, Register: fn}
}

// AssemblyID returns the identity of an assembly.
func AssemblyID(a Assembly) string {
	if id, ok := a.(Identifiable); ok {
		return id.ID()
	}
	return typeName(reflect.TypeOf(a))
}

// Closure expands roots in order. Each root contributes itself, then its direct
// dependencies in declaration order, then the expansions of those dependencies.
// Duplicates are kept; an assembly that depends on one of its own ancestors is not
// expanded a second time.
//
// For roots [A(B, C), D] where C depends on B the result is [A, B, C, B, D].
func Closure(roots []Assembly) []Assembly {
	g := &assemblyGraph{visiting: make(map[string]bool)}
	result := make([]Assembly, 0, len(roots))
	for _, root := range roots {
		if root == nil {
			continue
		}
		result = append(result, root)
		result = append(result, g.dependencies(root)...)
	}
	return result
}

// Flatten returns the closure of roots with duplicates removed. The first
// occurrence of each identity wins.
//
// For roots [A(B, C), D] where C depends on B the result is [A, B, C, D].
func Flatten(roots []Assembly) []Assembly {
	all := Closure(roots)
	seen := make(map[string]bool, len(all))
	result := make([]Assembly, 0, len(all))
	for _, a := range all {
		id := AssemblyID(a)
		if seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, a)
	}
	return result
}

type assemblyGraph struct {
	visiting map[string]bool
}

// dependencies returns deps(a) followed by the dependencies of each dep.
func (g *assemblyGraph) dependencies(a Assembly) []Assembly {
	dependent, ok := a.(DependentAssembly)
	if !ok {
		return nil
	}

	id := AssemblyID(a)
	if g.visiting[id] {
		return nil
	}
	g.visiting[id] = true
	defer delete(g.visiting, id)

	deps := make([]Assembly, 0, len(dependent.Dependencies()))
	for _, dep := range dependent.Dependencies() {
		if dep != nil {
			deps = append(deps, dep)
		}
	}

	result := append([]Assembly(nil), deps...)
	for _, dep := range deps {
		result = append(result, g.dependencies(dep)...)
	}
	return result
}
