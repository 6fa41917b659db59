// Package jsonenc implements compact JSON serialization for the extraction
// records plus a string-aware pretty reformatter. The encoder is deliberately
// bespoke: records distinguish absent optional attributes (encoded as null)
// from present false/zero values, and member order must follow record order
// exactly, so the output is built directly rather than through struct tags.
package jsonenc

import (
	"strconv"
	"strings"
)

// Value is a JSON value that can append its compact encoding.
type Value interface {
	appendTo(b *strings.Builder)
}

// Encode serializes a value as compact JSON text.
func Encode(v Value) string {
	var b strings.Builder
	v.appendTo(&b)
	return b.String()
}

// Str is a JSON string.
type Str string

func (s Str) appendTo(b *strings.Builder) {
	b.WriteByte('"')
	b.WriteString(escape(string(s)))
	b.WriteByte('"')
}

// Bool is a JSON boolean.
type Bool bool

func (v Bool) appendTo(b *strings.Builder) {
	b.WriteString(strconv.FormatBool(bool(v)))
}

// Int is a JSON integer.
type Int int

func (v Int) appendTo(b *strings.Builder) {
	b.WriteString(strconv.Itoa(int(v)))
}

type null struct{}

func (null) appendTo(b *strings.Builder) { b.WriteString("null") }

// Null is the JSON null value.
var Null Value = null{}

// Arr is a JSON array; element order is preserved.
type Arr []Value

func (a Arr) appendTo(b *strings.Builder) {
	b.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			b.WriteByte(',')
		}
		v.appendTo(b)
	}
	b.WriteByte(']')
}

// Member is one object member.
type Member struct {
	Key   string
	Value Value
}

// Obj is a JSON object; member order is preserved.
type Obj []Member

func (o Obj) appendTo(b *strings.Builder) {
	b.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(escape(m.Key))
		b.WriteString(`":`)
		if m.Value == nil {
			b.WriteString("null")
		} else {
			m.Value.appendTo(b)
		}
	}
	b.WriteByte('}')
}

// NullableStr maps a missing string to null.
func NullableStr(s *string) Value {
	if s == nil {
		return Null
	}
	return Str(*s)
}

// NullableBool maps a missing boolean to null.
func NullableBool(v *bool) Value {
	if v == nil {
		return Null
	}
	return Bool(*v)
}

// NullableInt maps a missing integer to null.
func NullableInt(v *int) Value {
	if v == nil {
		return Null
	}
	return Int(*v)
}

// Strings builds a string array value.
func Strings(items []string) Value {
	a := make(Arr, 0, len(items))
	for _, s := range items {
		a = append(a, Str(s))
	}
	return a
}

// escape handles backslash and double quote only; everything else passes
// through unchanged.
func escape(s string) string {
	if !strings.ContainsAny(s, `\"`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == '"' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}
