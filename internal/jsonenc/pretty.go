package jsonenc

import "strings"

// Pretty reformats compact JSON into indented text in a single left-to-right
// pass: a newline plus two-space-per-level indentation after each structural
// character and one space after a colon. String-literal state is tracked with
// a one-character escape lookahead so structural characters inside string
// content are never touched. Raw whitespace outside strings is dropped before
// the canonical formatting whitespace is re-inserted. Pure function; the input
// is assumed to be valid JSON.
func Pretty(json string) string {
	if strings.TrimSpace(json) == "" {
		return json
	}

	var out strings.Builder
	out.Grow(len(json) + 64)
	indent := 0
	inString := false
	escaped := false

	for i := 0; i < len(json); i++ {
		c := json[i]

		if inString {
			out.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
			out.WriteByte(c)
		case '{', '[':
			out.WriteByte(c)
			out.WriteByte('\n')
			indent++
			writeIndent(&out, indent)
		case '}', ']':
			out.WriteByte('\n')
			if indent > 0 {
				indent--
			}
			writeIndent(&out, indent)
			out.WriteByte(c)
		case ',':
			out.WriteByte(c)
			out.WriteByte('\n')
			writeIndent(&out, indent)
		case ':':
			out.WriteByte(c)
			out.WriteByte(' ')
		case '\n', '\r', '\t', ' ':
			// dropped; canonical whitespace is re-inserted above
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}

func writeIndent(b *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		b.WriteString("  ")
	}
}
