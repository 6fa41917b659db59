package annovalue

// ScanString reports whether a double-quoted string token begins at start in
// text. On a match it returns the unescaped content and the offset just past
// the closing quote. An unterminated string is not a match; the caller falls
// back to treating the text as opaque.
func ScanString(text string, start int) (content string, next int, ok bool) {
	if start < 0 || start >= len(text) || text[start] != '"' {
		return "", start, false
	}
	var b []byte
	i := start + 1
	for i < len(text) {
		c := text[i]
		if c == '\\' && i+1 < len(text) {
			b = append(b, text[i+1])
			i += 2
			continue
		}
		if c == '"' {
			return string(b), i + 1, true
		}
		b = append(b, c)
		i++
	}
	return "", start, false
}

// ScanNamedString finds the attribute key followed by `=` in text and returns
// the content of the quoted string after it, tolerating whitespace around the
// equals sign. Used for pulling attributes out of inline nested-annotation
// text independent of key order.
func ScanNamedString(text, key string) (string, bool) {
	from := 0
	for {
		i := indexFrom(text, key, from)
		if i < 0 {
			return "", false
		}
		// Reject matches inside a longer identifier, e.g. "name"
		// inside "referencedColumnName".
		if i > 0 && isIdentChar(text[i-1]) {
			from = i + 1
			continue
		}
		j := i + len(key)
		for j < len(text) && (text[j] == ' ' || text[j] == '\t') {
			j++
		}
		if j >= len(text) || text[j] != '=' {
			from = i + 1
			continue
		}
		for j++; j < len(text) && text[j] != '"'; j++ {
		}
		if content, _, ok := ScanString(text, j); ok {
			return content, true
		}
		from = i + 1
	}
}

func indexFrom(s, sub string, from int) int {
	if from >= len(s) {
		return -1
	}
	for i := from; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func isIdentChar(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
