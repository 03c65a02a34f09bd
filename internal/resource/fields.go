// Package resource describes the writable surface of each catalog entity:
// which JSON attributes a client may supply on create and patch, and how
// each one is coerced and validated before it touches a model.
package resource

import "fmt"

// Field binds a JSON attribute name to a typed setter on T. The setter
// validates the raw decoded value and assigns it, or reports why it can't.
type Field[T any] struct {
	Name string
	Set  func(*T, any) error
}

// Spec lists the required and optional fields of one entity. Attribute
// names outside these lists are never assignable.
type Spec[T any] struct {
	Required []Field[T]
	Optional []Field[T]
}

// Apply populates a fresh entity from a decoded JSON object using create
// semantics: every required field must be present, optional fields are
// applied when supplied and left to store defaults otherwise.
func (s Spec[T]) Apply(dst *T, data map[string]any) error {
	for _, f := range s.Required {
		v, ok := data[f.Name]
		if !ok {
			return fmt.Errorf("missing required field %q", f.Name)
		}
		if err := f.Set(dst, v); err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
	}
	for _, f := range s.Optional {
		v, ok := data[f.Name]
		if !ok || v == nil {
			continue
		}
		if err := f.Set(dst, v); err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
	}
	return nil
}

// Patch assigns the supplied attributes onto an existing entity. Only
// declared field names are assignable; anything else is rejected so a
// client cannot overwrite identifiers or undeclared columns.
func (s Spec[T]) Patch(dst *T, data map[string]any) error {
	for name, v := range data {
		f, ok := s.lookup(name)
		if !ok {
			return fmt.Errorf("unknown field %q", name)
		}
		if err := f.Set(dst, v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func (s Spec[T]) lookup(name string) (Field[T], bool) {
	for _, f := range s.Required {
		if f.Name == name {
			return f, true
		}
	}
	for _, f := range s.Optional {
		if f.Name == name {
			return f, true
		}
	}
	return Field[T]{}, false
}
