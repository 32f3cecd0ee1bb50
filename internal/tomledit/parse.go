package tomledit

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Parse builds a Document from TOML text. The resulting document serializes
// back to the exact input. Constructs outside the supported subset (arrays
// of tables, dotted keys, nested table headers inside a section) yield an
// error.
func Parse(src string) (*Document, error) {
	p := &parser{src: src}
	doc := &Document{}

	for {
		mark := p.pos
		decor := p.scanDecor()

		if p.eof() {
			doc.trailer = decor
			return doc, nil
		}

		if p.peek() == '[' {
			entry, err := p.parseHeader(decor)
			if err != nil {
				return nil, err
			}
			if err := p.parseTableBody(entry.table); err != nil {
				return nil, err
			}
			doc.entries = append(doc.entries, entry)
			continue
		}

		p.pos = mark
		kv, err := p.parseKeyValue()
		if err != nil {
			return nil, err
		}
		doc.entries = append(doc.entries, &Entry{
			decor:   kv.decor,
			keyText: kv.keyText,
			key:     kv.key,
			eq:      kv.eq,
			value:   kv.value,
		})
	}
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	return p.src[p.pos]
}

// line returns the current line without consuming it, including its
// terminating newline if present.
func (p *parser) line() string {
	end := strings.IndexByte(p.src[p.pos:], '\n')
	if end < 0 {
		return p.src[p.pos:]
	}
	return p.src[p.pos : p.pos+end+1]
}

// scanDecor consumes blank and comment lines, plus any leading whitespace of
// the following line, and returns them verbatim.
func (p *parser) scanDecor() string {
	start := p.pos
	for !p.eof() {
		line := p.line()
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" || trimmed == "\n" || trimmed == "\r\n" || strings.HasPrefix(trimmed, "#") {
			p.pos += len(line)
			continue
		}
		// Leading whitespace of a content line belongs to the decor so
		// that key and header texts start at their first character.
		p.pos += len(line) - len(trimmed)
		break
	}
	return p.src[start:p.pos]
}

func (p *parser) lineNumber() int {
	return strings.Count(p.src[:p.pos], "\n") + 1
}

func (p *parser) parseHeader(decor string) (*Entry, error) {
	if strings.HasPrefix(p.src[p.pos:], "[[") {
		return nil, errors.Newf("line %d: arrays of tables are not supported", p.lineNumber())
	}
	line := p.line()
	end := strings.IndexByte(line, ']')
	if end < 0 {
		return nil, errors.Newf("line %d: unterminated table header", p.lineNumber())
	}
	name := strings.TrimSpace(line[1:end])
	key, err := decodeKey(name)
	if err != nil {
		return nil, errors.Newf("line %d: invalid table name %q", p.lineNumber(), name)
	}
	p.pos += len(line)
	return &Entry{
		decor:        decor,
		keyText:      line[1:end],
		key:          key,
		table:        &Table{},
		headerSuffix: line[end+1:],
	}, nil
}

// parseTableBody consumes key/value pairs until the next table header or the
// end of input. Decor preceding the next header (or trailing the document)
// is left unconsumed.
func (p *parser) parseTableBody(t *Table) error {
	for {
		mark := p.pos
		p.scanDecor()
		if p.eof() || p.peek() == '[' {
			p.pos = mark
			return nil
		}
		p.pos = mark
		kv, err := p.parseKeyValue()
		if err != nil {
			return err
		}
		t.kvs = append(t.kvs, kv)
	}
}

func (p *parser) parseKeyValue() (*keyValue, error) {
	decor := p.scanDecor()

	keyText, err := p.scanKey()
	if err != nil {
		return nil, err
	}
	key, err := decodeKey(keyText)
	if err != nil {
		return nil, errors.Newf("line %d: invalid key %q", p.lineNumber(), keyText)
	}

	eqStart := p.pos
	for !p.eof() && (p.peek() == ' ' || p.peek() == '\t') {
		p.pos++
	}
	if p.eof() || p.peek() != '=' {
		return nil, errors.Newf("line %d: expected '=' after key %q", p.lineNumber(), key)
	}
	p.pos++
	for !p.eof() && (p.peek() == ' ' || p.peek() == '\t') {
		p.pos++
	}
	eq := p.src[eqStart:p.pos]

	value, err := p.scanValue()
	if err != nil {
		return nil, err
	}

	return &keyValue{
		decor:   decor,
		keyText: keyText,
		key:     key,
		eq:      eq,
		value:   value,
	}, nil
}

func (p *parser) scanKey() (string, error) {
	if p.eof() {
		return "", errors.Newf("line %d: expected a key", p.lineNumber())
	}
	start := p.pos
	switch p.peek() {
	case '"', '\'':
		quote := p.peek()
		p.pos++
		for !p.eof() && p.peek() != quote {
			if quote == '"' && p.peek() == '\\' {
				p.pos++
			}
			p.pos++
		}
		if p.eof() {
			return "", errors.Newf("line %d: unterminated quoted key", p.lineNumber())
		}
		p.pos++
	default:
		for !p.eof() && strings.ContainsRune(bareKeyChars, rune(p.peek())) {
			p.pos++
		}
		if p.pos == start {
			return "", errors.Newf("line %d: expected a key", p.lineNumber())
		}
	}
	if !p.eof() && p.peek() == '.' {
		return "", errors.Newf("line %d: dotted keys are not supported", p.lineNumber())
	}
	return p.src[start:p.pos], nil
}

// scanValue reads one value starting at the current position, then the rest
// of its final line. The value text and the trailing text are kept separate
// so the value can be decoded or replaced without touching inline comments.
func (p *parser) scanValue() (*Value, error) {
	start := p.pos
	var err error
	switch {
	case p.eof():
		return nil, errors.Newf("line %d: expected a value", p.lineNumber())
	case strings.HasPrefix(p.src[p.pos:], `"""`) || strings.HasPrefix(p.src[p.pos:], "'''"):
		err = p.skipString()
	case p.peek() == '"' || p.peek() == '\'':
		err = p.skipString()
	case p.peek() == '[':
		err = p.skipArray()
	default:
		// Scalar: runs to the end of line or an inline comment.
		for !p.eof() && p.peek() != '\n' && p.peek() != '#' {
			p.pos++
		}
		for p.pos > start && (p.src[p.pos-1] == ' ' || p.src[p.pos-1] == '\t') {
			p.pos--
		}
		if p.pos == start {
			err = errors.Newf("line %d: expected a value", p.lineNumber())
		}
	}
	if err != nil {
		return nil, err
	}
	token := p.src[start:p.pos]

	suffixStart := p.pos
	for !p.eof() && p.peek() != '\n' {
		p.pos++
	}
	if !p.eof() {
		p.pos++
	}
	return &Value{token: token, suffix: p.src[suffixStart:p.pos]}, nil
}

func (p *parser) skipString() error {
	s := p.src[p.pos:]
	_, rest, err := scanString(s)
	if err != nil {
		return errors.Newf("line %d: %v", p.lineNumber(), err)
	}
	p.pos += len(s) - len(rest)
	return nil
}

func (p *parser) skipArray() error {
	depth := 0
	for !p.eof() {
		switch p.peek() {
		case '[':
			depth++
			p.pos++
		case ']':
			depth--
			p.pos++
			if depth == 0 {
				return nil
			}
		case '"', '\'':
			if err := p.skipString(); err != nil {
				return err
			}
		case '#':
			for !p.eof() && p.peek() != '\n' {
				p.pos++
			}
		default:
			p.pos++
		}
	}
	return errors.Newf("line %d: unterminated array", p.lineNumber())
}

func decodeKey(s string) (string, error) {
	if s == "" {
		return "", errors.New("empty key")
	}
	switch s[0] {
	case '"':
		if len(s) < 2 || s[len(s)-1] != '"' {
			return "", errors.New("unterminated quoted key")
		}
		return decodeBasic(s[1 : len(s)-1])
	case '\'':
		if len(s) < 2 || s[len(s)-1] != '\'' {
			return "", errors.New("unterminated quoted key")
		}
		return s[1 : len(s)-1], nil
	default:
		for _, r := range s {
			if !strings.ContainsRune(bareKeyChars, r) {
				return "", errors.Newf("invalid character %q in key", r)
			}
		}
		return s, nil
	}
}
