package di

import (
	"fmt"
	"reflect"
	"strconv"
)

// ServiceKey identifies a registration by its Go type and an optional name.
// Two registrations with the same type and name collide; different names coexist.
type ServiceKey struct {
	Type string
	Name string
}

// String returns a human-readable representation of the key
func (k ServiceKey) String() string {
	if k.Name == "" {
		return k.Type
	}
	return fmt.Sprintf("%s[name=%s]", k.Type, k.Name)
}

// KeyOf derives the key for T, optionally qualified by name.
//
//	di.KeyOf[Logger]()          // "github.com/acme/app.Logger"
//	di.KeyOf[*Pool]("replica")  // "*github.com/acme/app.Pool[name=replica]"
func KeyOf[T any](name ...string) ServiceKey {
	return KeyFor(reflect.TypeFor[T](), name...)
}

// TypeKey derives the key from a sample value. Pass a typed nil pointer to name an
// interface: TypeKey((*Logger)(nil)) equals KeyOf[Logger]().
func TypeKey(v any, name ...string) ServiceKey {
	return KeyFor(reflect.TypeOf(v), name...)
}

// KeyFor derives the key for t. A pointer to an interface collapses to the interface
// itself; pointers to concrete types keep their own identity.
func KeyFor(t reflect.Type, name ...string) ServiceKey {
	var n string
	if len(name) > 0 {
		n = name[0]
	}
	return ServiceKey{Type: typeName(normalize(t)), Name: n}
}

func normalize(t reflect.Type) reflect.Type {
	if t != nil && isInterfacePointer(t) {
		return t.Elem()
	}
	return t
}

// typeName renders a fully qualified name, recursing through unnamed composites so
// that element types carry their package path too.
func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.Name() != "" {
		if t.PkgPath() == "" {
			return t.String()
		}
		return t.PkgPath() + "." + t.Name()
	}
	switch t.Kind() {
	case reflect.Pointer:
		return "*" + typeName(t.Elem())
	case reflect.Slice:
		return "[]" + typeName(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + typeName(t.Elem())
	case reflect.Map:
		return "map[" + typeName(t.Key()) + "]" + typeName(t.Elem())
	case reflect.Chan:
		switch t.ChanDir() {
		case reflect.RecvDir:
			return "<-chan " + typeName(t.Elem())
		case reflect.SendDir:
			return "chan<- " + typeName(t.Elem())
		default:
			return "chan " + typeName(t.Elem())
		}
	default:
		return t.String()
	}
}
