package prefix

// InjectionSource supplies values for injectable fields the document leaves out.
// Resolve only reads from it.
type InjectionSource interface {
	Find(name string) (string, bool)
}

// InjectionFunc adapts a lookup function to InjectionSource.
type InjectionFunc func(name string) (string, bool)

func (f InjectionFunc) Find(name string) (string, bool) {
	return f(name)
}

// MapSource is an InjectionSource backed by a map.
type MapSource map[string]string

func (m MapSource) Find(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}
