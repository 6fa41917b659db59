package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pmeredith/dbscout/internal/model"
)

// AccessMode is a whole-type decision: whether mapping metadata lives on
// fields or on accessor methods.
type AccessMode int

const (
	FieldAccess AccessMode = iota
	PropertyAccess
)

// accessMode returns PropertyAccess iff at least one qualifying accessor on
// the type carries a mapping annotation; otherwise FieldAccess.
func (c *Config) accessMode(t *model.Type) AccessMode {
	for _, m := range t.Methods {
		if !isAccessor(m) {
			continue
		}
		for _, marker := range mappingMarkers {
			if c.hasMarker(m, marker) {
				return PropertyAccess
			}
		}
	}
	return FieldAccess
}

// isAccessor reports whether the method is a zero-parameter, non-void getter:
// a name starting "get" with at least one trailing character, or "is" with at
// least one trailing character when the return type is boolean-shaped.
func isAccessor(m *model.Method) bool {
	if len(m.Params) != 0 || isVoid(m.ReturnType) {
		return false
	}
	if strings.HasPrefix(m.Name, "get") && len(m.Name) > len("get") {
		return true
	}
	if strings.HasPrefix(m.Name, "is") && len(m.Name) > len("is") {
		return booleanShaped(m.ReturnType)
	}
	return false
}

// propertyName derives a property name from an accessor name: strip the
// "get"/"is" prefix and lower-case the first remaining character. If nothing
// remains after the prefix, the accessor name is returned unmodified.
func propertyName(accessor string) string {
	rest := accessor
	switch {
	case strings.HasPrefix(accessor, "get"):
		rest = accessor[len("get"):]
	case strings.HasPrefix(accessor, "is"):
		rest = accessor[len("is"):]
	}
	if rest == "" {
		return accessor
	}
	r, size := utf8.DecodeRuneInString(rest)
	return string(unicode.ToLower(r)) + rest[size:]
}

func isVoid(ref model.TypeRef) bool {
	return ref.IsZero() || ref.Name == "void"
}

func booleanShaped(ref model.TypeRef) bool {
	switch ref.SimpleName() {
	case "boolean", "Boolean":
		return true
	}
	return false
}

// member is the unified view the classifiers work on: a field in field-access
// mode, an accessor method in property-access mode.
type member struct {
	Name string
	Type model.TypeRef
	El   model.Annotatable
}

// members enumerates the mapped members of a type for the given access mode,
// in declaration order.
func members(t *model.Type, mode AccessMode) []member {
	var out []member
	if mode == PropertyAccess {
		for _, m := range t.Methods {
			if isAccessor(m) {
				out = append(out, member{Name: propertyName(m.Name), Type: m.ReturnType, El: m})
			}
		}
		return out
	}
	for _, f := range t.Fields {
		out = append(out, member{Name: f.Name, Type: f.Type, El: f})
	}
	return out
}

// noisy applies the member suppression rules shared by both access modes:
// serialization artifacts, loggers, screaming-case constants, transient
// members, and anything statically or explicitly excluded from persistence.
func (c *Config) noisy(m member) bool {
	switch m.Name {
	case "serialVersionUID", "LOG", "LOGGER":
		return true
	}
	if strings.Contains(m.Name, "_") && m.Name == strings.ToUpper(m.Name) {
		return true
	}
	simple := m.Type.SimpleName()
	for _, suffix := range c.LoggerTypeSuffixes {
		if suffix != "" && strings.HasSuffix(simple, suffix) {
			return true
		}
	}
	if c.hasMarker(m.El, MarkerTransient) {
		return true
	}
	switch el := m.El.(type) {
	case *model.Field:
		if el.HasModifier("static") || el.HasModifier("transient") {
			return true
		}
	case *model.Method:
		if el.HasModifier("static") || el.HasModifier("transient") {
			return true
		}
	}
	return false
}

// relationKind returns the relation marker matching the member, if any, with
// OneToOne > OneToMany > ManyToOne > ManyToMany priority.
func (c *Config) relationKind(el model.Annotatable) (string, bool) {
	for _, marker := range relationMarkers {
		if c.hasMarker(el, marker) {
			return marker, true
		}
	}
	return "", false
}
