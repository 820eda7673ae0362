package prefix

import (
	"fmt"
	"strings"
)

// ErrUnknownFormatterKind is returned when a document names a type outside the
// supported set.
type ErrUnknownFormatterKind struct {
	Kind Kind
}

func (e *ErrUnknownFormatterKind) Error() string {
	names := make([]string, 0, len(constructors))
	for _, k := range Kinds() {
		names = append(names, string(k))
	}
	return fmt.Sprintf("unknown prefix formatter type %q (supported: %s)", e.Kind, strings.Join(names, ", "))
}

// ErrMissingRequiredField is returned when a field that must come from the
// document itself is absent.
type ErrMissingRequiredField struct {
	Kind  Kind
	Field string
}

func (e *ErrMissingRequiredField) Error() string {
	return fmt.Sprintf("prefix formatter %q: required field %q is not set", e.Kind, e.Field)
}

// ErrInvalidDatePattern is returned when the date field cannot be compiled.
type ErrInvalidDatePattern struct {
	Pattern string
	Err     error
}

func (e *ErrInvalidDatePattern) Error() string {
	return fmt.Sprintf("invalid date pattern %q: %v", e.Pattern, e.Err)
}

func (e *ErrInvalidDatePattern) Unwrap() error {
	return e.Err
}
