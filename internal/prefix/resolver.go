package prefix

import (
	"slices"
)

// Kind is the value of a document's "type" field.
type Kind string

const (
	KindStatic          Kind = "static"
	KindDateRegionStack Kind = "DateRegionStack"
)

type constructor func(spec Spec, inj InjectionSource) (Formatter, error)

var constructors = map[Kind]constructor{
	KindStatic:          newStatic,
	KindDateRegionStack: newDateRegionStack,
}

// Kinds returns the supported document types in sorted order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(constructors))
	for k := range constructors {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Resolve builds the formatter named by spec.Kind. Injectable fields missing
// from the document are looked up in inj, which may be nil.
func Resolve(spec Spec, inj InjectionSource) (Formatter, error) {
	build, ok := constructors[spec.Kind]
	if !ok {
		return nil, &ErrUnknownFormatterKind{Kind: spec.Kind}
	}
	return build(spec, inj)
}

// ResolveJSON decodes doc and resolves it.
func ResolveJSON(doc []byte, inj InjectionSource) (Formatter, error) {
	spec, err := ParseSpec(doc)
	if err != nil {
		return nil, err
	}
	return Resolve(spec, inj)
}

func newStatic(spec Spec, _ InjectionSource) (Formatter, error) {
	prefix, ok := spec.field("prefix")
	if !ok {
		return nil, &ErrMissingRequiredField{Kind: KindStatic, Field: "prefix"}
	}
	return NewStatic(prefix), nil
}

func newDateRegionStack(spec Spec, inj InjectionSource) (Formatter, error) {
	pattern, ok := spec.field("date")
	if !ok {
		return nil, &ErrMissingRequiredField{Kind: KindDateRegionStack, Field: "date"}
	}
	f, err := NewDateRegionStack(pattern, spec.injectable("region", inj), spec.injectable("stack", inj))
	if err != nil {
		return nil, err
	}
	return f, nil
}
