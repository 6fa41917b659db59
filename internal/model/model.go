// Package model defines the structural model of an analyzed Java codebase:
// declared types, their fields and methods, annotations with raw attribute
// text, and call expressions captured from method bodies.
package model

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// TypeKind indicates the syntactic kind of a declared type.
type TypeKind string

const (
	ClassKind     TypeKind = "class"
	InterfaceKind TypeKind = "interface"
	EnumKind      TypeKind = "enum"
	RecordKind    TypeKind = "record"
)

// TypeRef is a reference to a type as it appears in source. Name is the best
// available name: fully qualified when the reference could be resolved against
// imports or same-package declarations, otherwise the simple name as written.
type TypeRef struct {
	Name     string
	TypeArgs []TypeRef
}

// SimpleName returns the last dot-separated segment of the referenced name.
func (r TypeRef) SimpleName() string {
	if i := strings.LastIndexByte(r.Name, '.'); i >= 0 {
		return r.Name[i+1:]
	}
	return r.Name
}

// IsZero reports whether the reference is empty (unresolvable or absent).
func (r TypeRef) IsZero() bool { return r.Name == "" }

// Annotation is one annotation instance: the type name as resolved (or as
// written) plus a mapping from attribute key to the raw source text of its
// value. Values stay undecoded here; the annovalue package interprets them.
// A single-element annotation like @Table("x") is stored under the key "value".
type Annotation struct {
	Name  string
	Attrs *orderedmap.OrderedMap[string, string]
}

// Attr returns the raw text of the named attribute.
func (a *Annotation) Attr(key string) (string, bool) {
	if a.Attrs == nil {
		return "", false
	}
	return a.Attrs.Get(key)
}

// SetAttr records the raw text of an attribute, preserving insertion order.
func (a *Annotation) SetAttr(key, raw string) {
	if a.Attrs == nil {
		a.Attrs = orderedmap.New[string, string]()
	}
	a.Attrs.Set(key, raw)
}

// Annotatable is implemented by every program element that can carry
// annotations. Classification heuristics are written once against this
// interface instead of per element kind.
type Annotatable interface {
	Annotations() []Annotation
}

// Call is one method invocation captured from a method body: the best-effort
// declaring type of the callee, the invoked member name, and the raw text of
// the first argument when one is present.
type Call struct {
	DeclaringType TypeRef
	Method        string
	FirstArgText  string
}

// Param is a formal method parameter.
type Param struct {
	Name string
	Type TypeRef
}

// Field is a declared field.
type Field struct {
	Name      string
	Type      TypeRef
	Modifiers []string
	Annos     []Annotation
}

func (f *Field) Annotations() []Annotation { return f.Annos }

// HasModifier reports whether the field carries the given modifier keyword.
func (f *Field) HasModifier(mod string) bool { return hasModifier(f.Modifiers, mod) }

// Method is a declared method. Calls holds the invocations found in its body
// in source order; it is nil for abstract and interface methods.
type Method struct {
	Name       string
	Params     []Param
	ReturnType TypeRef
	Modifiers  []string
	Annos      []Annotation
	Calls      []Call
}

func (m *Method) Annotations() []Annotation { return m.Annos }

// HasModifier reports whether the method carries the given modifier keyword.
func (m *Method) HasModifier(mod string) bool { return hasModifier(m.Modifiers, mod) }

// Type is a declared type. Name is fully qualified (package + simple name);
// SuperTypes holds both the superclass and super-interfaces as referenced.
type Type struct {
	Name       string
	SimpleName string
	Kind       TypeKind
	Modifiers  []string
	Annos      []Annotation
	SuperTypes []TypeRef
	Fields     []*Field
	Methods    []*Method
}

func (t *Type) Annotations() []Annotation { return t.Annos }

// IsInterface reports whether the type is an interface declaration.
func (t *Type) IsInterface() bool { return t.Kind == InterfaceKind }

// Model is a read-only snapshot of all declared types, in enumeration order
// (discovery order of files, declaration order within a file).
type Model struct {
	Types []*Type
}

// TypeByName returns the declared type with the given qualified name.
func (m *Model) TypeByName(name string) (*Type, bool) {
	for _, t := range m.Types {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

func hasModifier(mods []string, mod string) bool {
	for _, m := range mods {
		if m == mod {
			return true
		}
	}
	return false
}
