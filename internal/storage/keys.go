package storage

// ObjectKey names a remote object as prefix followed by file name.
// The prefix carries its own trailing separator, if any.
type ObjectKey struct {
	Prefix string
	Name   string
}

func (k ObjectKey) Key() string {
	return k.Prefix + k.Name
}
