package di

// Forwarding is a handle to a registration, used to expose it under more keys.
type Forwarding interface {
	// Key is the key the handle was obtained for.
	Key() ServiceKey
	// AccessLevel is the level of the storage behind the handle.
	AccessLevel() AccessLevel
	// Implements registers key as an alias of this registration. AccessInherit
	// checks the alias with the target's own level.
	Implements(key ServiceKey, level AccessLevel) error
}

type forwarder struct {
	registrar *Registry
	key       ServiceKey
	storage   Storage
}

func (f *forwarder) Key() ServiceKey          { return f.key }
func (f *forwarder) AccessLevel() AccessLevel { return f.storage.AccessLevel() }

func (f *forwarder) Implements(key ServiceKey, level AccessLevel) error {
	return f.registrar.forward(key, &forwardingStorage{target: f.storage, access: level})
}
