// Package annovalue reconstructs typed values from the raw source text that
// annotation attributes arrive in. The structural model does not hand back
// structured attribute values, only their textual rendering, so decoding is
// driven purely by the shape of the text. Decoding is total: every input maps
// to exactly one Value, degrading to an opaque enum token when nothing else
// matches.
package annovalue

import (
	"strconv"
	"strings"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindEnum
	KindClass
	KindArray
	KindAnnotation
)

const classSuffix = ".class"

// Value is one decoded annotation attribute value.
type Value struct {
	Kind  Kind
	Str   string  // KindString, KindEnum, KindClass; raw text for KindAnnotation
	Bool  bool    // KindBool
	Int   int     // KindInt
	Elems []Value // KindArray
}

// Decode converts the raw text of one attribute value into a Value. Rules are
// tried in order: quoted string, boolean keyword, integer literal, class
// literal, braced array (split at brace depth zero), inline annotation, and
// finally an opaque enum token.
func Decode(raw string) Value {
	text := strings.TrimSpace(raw)

	if content, next, ok := ScanString(text, 0); ok && next == len(text) {
		return Value{Kind: KindString, Str: content}
	}
	if strings.EqualFold(text, "true") {
		return Value{Kind: KindBool, Bool: true}
	}
	if strings.EqualFold(text, "false") {
		return Value{Kind: KindBool, Bool: false}
	}
	if n, err := strconv.Atoi(text); err == nil {
		return Value{Kind: KindInt, Int: n}
	}
	if strings.HasSuffix(text, classSuffix) {
		return Value{Kind: KindClass, Str: strings.TrimSuffix(text, classSuffix)}
	}
	if len(text) >= 2 && text[0] == '{' && text[len(text)-1] == '}' {
		return Value{Kind: KindArray, Elems: decodeElements(text[1 : len(text)-1])}
	}
	if strings.HasPrefix(text, "@") {
		return Value{Kind: KindAnnotation, Str: text}
	}
	return Value{Kind: KindEnum, Str: text}
}

// Attr extracts a named string attribute from an inline nested-annotation
// value, e.g. name from `@JoinColumn(name = "x")`. Key order and unrelated
// keys in the text do not matter.
func (v Value) Attr(key string) (string, bool) {
	if v.Kind != KindAnnotation {
		return "", false
	}
	return ScanNamedString(v.Str, key)
}

// Strings flattens the value into a list of token strings: arrays map
// element-wise, any scalar maps to a one-element list. This mirrors how
// enum-array attributes like cascade are consumed.
func (v Value) Strings() []string {
	switch v.Kind {
	case KindArray:
		out := make([]string, 0, len(v.Elems))
		for _, e := range v.Elems {
			out = append(out, e.token())
		}
		return out
	default:
		return []string{v.token()}
	}
}

func (v Value) token() string {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindInt:
		return strconv.Itoa(v.Int)
	default:
		return v.Str
	}
}

// decodeElements splits an array body into top-level elements. A depth
// counter over braces and parentheses keeps commas inside nested arrays and
// inline annotations from causing a false split; commas inside string
// literals are skipped via the Scanner.
func decodeElements(body string) []Value {
	if strings.TrimSpace(body) == "" {
		return []Value{}
	}
	elems := []Value{}
	depth := 0
	start := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '"':
			if _, next, ok := ScanString(body, i); ok {
				i = next - 1
			}
		case '{', '(':
			depth++
		case '}', ')':
			depth--
		case ',':
			if depth == 0 {
				elems = append(elems, Decode(body[start:i]))
				start = i + 1
			}
		}
	}
	return append(elems, Decode(body[start:]))
}
