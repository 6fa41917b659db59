package extract

import (
	"strings"

	"github.com/pmeredith/dbscout/internal/annovalue"
	"github.com/pmeredith/dbscout/internal/model"
)

// Attribute readers. Each looks up the marker annotation on the element,
// decodes the named attribute through annovalue, and returns nil when the
// annotation or attribute is missing or decodes to an unusable shape. Missing
// stays distinct from false/zero throughout.

func (c *Config) stringAttr(el model.Annotatable, marker, key string) *string {
	raw, ok := c.rawAttr(el, marker, key)
	if !ok {
		return nil
	}
	v := annovalue.Decode(raw)
	if v.Kind == annovalue.KindString {
		return &v.Str
	}
	// Unquoted text (a constant reference, typically) degrades to the raw
	// trimmed token rather than being dropped.
	s := strings.TrimSpace(raw)
	return &s
}

func (c *Config) boolAttr(el model.Annotatable, marker, key string) *bool {
	raw, ok := c.rawAttr(el, marker, key)
	if !ok {
		return nil
	}
	if v := annovalue.Decode(raw); v.Kind == annovalue.KindBool {
		return &v.Bool
	}
	return nil
}

func (c *Config) intAttr(el model.Annotatable, marker, key string) *int {
	raw, ok := c.rawAttr(el, marker, key)
	if !ok {
		return nil
	}
	if v := annovalue.Decode(raw); v.Kind == annovalue.KindInt {
		return &v.Int
	}
	return nil
}

// enumAttr returns the attribute as a single opaque token, e.g. a
// FetchType.LAZY reference.
func (c *Config) enumAttr(el model.Annotatable, marker, key string) *string {
	raw, ok := c.rawAttr(el, marker, key)
	if !ok {
		return nil
	}
	s := strings.TrimSpace(raw)
	return &s
}

// enumArrayAttr returns the attribute as a token list: braced arrays map
// element-wise, a single bare token maps to a one-element list. nil means the
// attribute is absent.
func (c *Config) enumArrayAttr(el model.Annotatable, marker, key string) []string {
	raw, ok := c.rawAttr(el, marker, key)
	if !ok {
		return nil
	}
	return annovalue.Decode(raw).Strings()
}

// classAttr returns a decoded class literal, with the suffix stripped.
func (c *Config) classAttr(el model.Annotatable, marker, key string) *string {
	raw, ok := c.rawAttr(el, marker, key)
	if !ok {
		return nil
	}
	if v := annovalue.Decode(raw); v.Kind == annovalue.KindClass {
		return &v.Str
	}
	return nil
}

func (c *Config) rawAttr(el model.Annotatable, marker, key string) (string, bool) {
	anno, ok := c.findMarker(el, marker)
	if !ok {
		return "", false
	}
	return anno.Attr(key)
}
