package prefix

import (
	"encoding/json"
	"fmt"
)

// typeKey is the discriminator key of a formatter document.
const typeKey = "type"

// Spec is a decoded formatter document: its type plus every other string field.
type Spec struct {
	Kind   Kind
	Fields map[string]string
}

// ParseSpec decodes a JSON formatter document such as
// {"type": "DateRegionStack", "date": "YYYYMMDD", "region": "us-east-1"}.
func ParseSpec(doc []byte) (Spec, error) {
	var spec Spec
	if err := json.Unmarshal(doc, &spec); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// UnmarshalJSON implements json.Unmarshaler. Null values count as absent.
func (s *Spec) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode prefix formatter: %w", err)
	}

	spec := Spec{Fields: make(map[string]string, len(raw))}
	for key, value := range raw {
		var str *string
		if err := json.Unmarshal(value, &str); err != nil {
			return fmt.Errorf("decode prefix formatter: field %q must be a string", key)
		}
		if str == nil {
			continue
		}
		if key == typeKey {
			spec.Kind = Kind(*str)
			continue
		}
		spec.Fields[key] = *str
	}

	*s = spec
	return nil
}

// field returns a value present in the document.
func (s Spec) field(name string) (string, bool) {
	v, ok := s.Fields[name]
	return v, ok
}

// injectable returns the document value, then the injected value, then "".
func (s Spec) injectable(name string, inj InjectionSource) string {
	if v, ok := s.field(name); ok {
		return v
	}
	if inj != nil {
		if v, ok := inj.Find(name); ok {
			return v
		}
	}
	return ""
}
