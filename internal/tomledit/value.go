package tomledit

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the right-hand side of a key/value pair. Parsed values keep their
// original text, including any inline comment, so they serialize verbatim.
type Value struct {
	// token is the value text itself, e.g. `"0.2"` or `["a", "b"]`.
	token string
	// suffix is the text following the value through the end of line,
	// typically just "\n", possibly an inline comment.
	suffix string
}

// String returns a value rendering s as a TOML string. Strings containing
// newlines are rendered as multi-line basic strings.
func String(s string) *Value {
	return &Value{token: encodeString(s), suffix: "\n"}
}

// Bool returns a value rendering b as a TOML boolean.
func Bool(b bool) *Value {
	return &Value{token: strconv.FormatBool(b), suffix: "\n"}
}

// Strings returns a value rendering ss as a TOML array of strings.
func Strings(ss []string) *Value {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = encodeBasicString(s)
	}
	return &Value{token: "[" + strings.Join(parts, ", ") + "]", suffix: "\n"}
}

// Clone returns a copy of the value.
func (v *Value) Clone() *Value {
	c := *v
	return &c
}

func (v *Value) raw() string {
	return v.token + v.suffix
}

// AsString decodes the value as a TOML string. The second result reports
// whether the value is a string.
func (v *Value) AsString() (string, bool) {
	s := strings.TrimSpace(v.token)
	if s == "" {
		return "", false
	}
	switch s[0] {
	case '"', '\'':
		decoded, rest, err := scanString(s)
		if err != nil || strings.TrimSpace(rest) != "" {
			return "", false
		}
		return decoded, true
	default:
		return "", false
	}
}

// AsStringSlice decodes the value as a TOML array of strings. The second
// result reports whether the value is such an array.
func (v *Value) AsStringSlice() ([]string, bool) {
	s := strings.TrimSpace(v.token)
	if !strings.HasPrefix(s, "[") {
		return nil, false
	}
	s = s[1:]
	var out []string
	for {
		s = skipArrayFiller(s)
		if s == "" {
			return nil, false
		}
		if s[0] == ']' {
			return out, true
		}
		elem, rest, err := scanString(s)
		if err != nil {
			return nil, false
		}
		out = append(out, elem)
		s = skipArrayFiller(rest)
		if s == "" {
			return nil, false
		}
		switch s[0] {
		case ',':
			s = s[1:]
		case ']':
			return out, true
		default:
			return nil, false
		}
	}
}

// skipArrayFiller drops leading whitespace, newlines and comments, which
// TOML allows between array elements.
func skipArrayFiller(s string) string {
	for {
		s = strings.TrimLeft(s, " \t\r\n")
		if !strings.HasPrefix(s, "#") {
			return s
		}
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s = s[i+1:]
		} else {
			return ""
		}
	}
}

// scanString reads one TOML string from the start of s, returning its
// decoded content and the remaining text.
func scanString(s string) (string, string, error) {
	switch {
	case strings.HasPrefix(s, `"""`):
		end := findMultilineEnd(s[3:], `"""`, true)
		if end < 0 {
			return "", "", fmt.Errorf("unterminated multi-line string")
		}
		decoded, err := decodeMultilineBasic(s[3 : 3+end])
		return decoded, s[3+end+3:], err
	case strings.HasPrefix(s, "'''"):
		end := findMultilineEnd(s[3:], "'''", false)
		if end < 0 {
			return "", "", fmt.Errorf("unterminated multi-line string")
		}
		return trimLeadingNewline(s[3 : 3+end]), s[3+end+3:], nil
	case strings.HasPrefix(s, `"`):
		for i := 1; i < len(s); i++ {
			switch s[i] {
			case '\\':
				i++
			case '"':
				decoded, err := decodeBasic(s[1:i])
				return decoded, s[i+1:], err
			case '\n':
				return "", "", fmt.Errorf("newline in basic string")
			}
		}
		return "", "", fmt.Errorf("unterminated string")
	case strings.HasPrefix(s, "'"):
		i := strings.IndexByte(s[1:], '\'')
		if i < 0 {
			return "", "", fmt.Errorf("unterminated string")
		}
		return s[1 : 1+i], s[1+i+1:], nil
	default:
		return "", "", fmt.Errorf("not a string")
	}
}

// findMultilineEnd locates the closing delimiter in the body of a multi-line
// string, honoring backslash escapes in basic strings. A sequence of four or
// five quotes closes the string with the extra quotes as content, so the
// match is extended past them.
func findMultilineEnd(s, delim string, escapes bool) int {
	for i := 0; i+len(delim) <= len(s); i++ {
		if escapes && s[i] == '\\' {
			i++
			continue
		}
		if s[i:i+len(delim)] == delim {
			for i+len(delim) < len(s) && s[i+len(delim)] == delim[0] {
				i++
			}
			return i
		}
	}
	return -1
}

func trimLeadingNewline(s string) string {
	s = strings.TrimPrefix(s, "\r\n")
	return strings.TrimPrefix(s, "\n")
}

func decodeMultilineBasic(s string) (string, error) {
	return decodeBasic(trimLeadingNewline(s))
}

func decodeBasic(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("dangling backslash")
		}
		switch s[i] {
		case 'b':
			b.WriteByte('\b')
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'f':
			b.WriteByte('\f')
		case 'r':
			b.WriteByte('\r')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case 'u', 'U':
			size := 4
			if s[i] == 'U' {
				size = 8
			}
			if i+size >= len(s) {
				return "", fmt.Errorf("truncated unicode escape")
			}
			code, err := strconv.ParseUint(s[i+1:i+1+size], 16, 32)
			if err != nil {
				return "", fmt.Errorf("invalid unicode escape: %v", err)
			}
			b.WriteRune(rune(code))
			i += size
		case '\n', ' ', '\t', '\r':
			// Line-ending backslash: skip whitespace up to and including
			// the next non-blank character run.
			j := i
			for j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\r' || s[j] == '\n') {
				j++
			}
			i = j - 1
		default:
			return "", fmt.Errorf("invalid escape \\%c", s[i])
		}
	}
	return b.String(), nil
}

func encodeString(s string) string {
	if strings.ContainsRune(s, '\n') {
		return encodeMultilineBasicString(s)
	}
	return encodeBasicString(s)
}

func encodeBasicString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

func encodeMultilineBasicString(s string) string {
	var b strings.Builder
	b.WriteString("\"\"\"\n")
	quotes := 0
	for _, r := range s {
		if r == '"' {
			quotes++
			// Three consecutive quotes would close the string early.
			if quotes == 3 {
				b.WriteString(`\"`)
				quotes = 1
				continue
			}
			b.WriteByte('"')
			continue
		}
		quotes = 0
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteByte('\t')
		case '\n':
			b.WriteByte('\n')
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	if strings.HasSuffix(b.String(), `"`) {
		// A trailing quote would merge into the closing delimiter.
		s := b.String()
		b.Reset()
		b.WriteString(s[:len(s)-1])
		b.WriteString(`\"`)
	}
	b.WriteString(`"""`)
	return b.String()
}
