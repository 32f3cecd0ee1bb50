package tomledit

import "strings"

// Document is an ordered collection of top-level entries, each either a
// key/value or a `[table]` section. Serializing an unmodified Document
// reproduces the parsed text exactly.
type Document struct {
	entries []*Entry
	trailer string
}

// Entry is a single top-level item: a key/value pair or a table section.
// The decor is the verbatim text (comments and blank lines) preceding it.
type Entry struct {
	decor   string
	keyText string
	key     string

	// Key/value entries.
	eq    string
	value *Value

	// Table entries.
	table        *Table
	headerSuffix string
}

// Key returns the decoded key of the entry.
func (e *Entry) Key() string { return e.key }

// Decor returns the leading comment block of the entry.
func (e *Entry) Decor() string { return e.decor }

// SetDecor replaces the leading comment block of the entry.
func (e *Entry) SetDecor(decor string) { e.decor = decor }

// Value returns the value of a key/value entry, or nil for a table entry.
func (e *Entry) Value() *Value { return e.value }

// Table returns the table of a section entry, or nil for a key/value entry.
func (e *Entry) Table() *Table { return e.table }

// SetValue replaces the value of a key/value entry, keeping its key and
// decor. Any inline comment attached to the previous value is dropped.
func (e *Entry) SetValue(v *Value) {
	e.value = v.Clone()
}

// Get returns the entry for key, or nil if there is none.
func (d *Document) Get(key string) *Entry {
	for _, e := range d.entries {
		if e.key == key {
			return e
		}
	}
	return nil
}

// SetValue sets key to a value entry. An existing entry is replaced in
// place, keeping its decor; otherwise a new entry is appended.
func (d *Document) SetValue(key string, v *Value) *Entry {
	if e := d.Get(key); e != nil {
		e.eq = " = "
		e.value = v.Clone()
		e.table = nil
		e.headerSuffix = ""
		return e
	}
	e := &Entry{keyText: encodeKey(key), key: key, eq: " = ", value: v.Clone()}
	d.entries = append(d.entries, e)
	return e
}

// SetTable sets key to a table section. An existing entry is replaced in
// place, keeping its decor; otherwise a new entry is appended.
func (d *Document) SetTable(key string, t *Table) *Entry {
	if e := d.Get(key); e != nil {
		e.value = nil
		e.eq = ""
		e.table = t
		e.headerSuffix = "\n"
		return e
	}
	e := &Entry{keyText: encodeKey(key), key: key, table: t, headerSuffix: "\n"}
	d.entries = append(d.entries, e)
	return e
}

// Remove deletes the entry for key, returning it, or nil if there is none.
func (d *Document) Remove(key string) *Entry {
	for i, e := range d.entries {
		if e.key == key {
			d.entries = append(d.entries[:i], d.entries[i+1:]...)
			return e
		}
	}
	return nil
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.entries))
	for _, e := range d.entries {
		keys = append(keys, e.key)
	}
	return keys
}

// String serializes the document back to TOML text.
func (d *Document) String() string {
	var b strings.Builder
	for _, e := range d.entries {
		b.WriteString(e.decor)
		if e.value != nil {
			b.WriteString(e.keyText)
			b.WriteString(e.eq)
			b.WriteString(e.value.raw())
		} else {
			b.WriteString("[")
			b.WriteString(e.keyText)
			b.WriteString("]")
			b.WriteString(e.headerSuffix)
			e.table.write(&b)
		}
	}
	b.WriteString(d.trailer)
	return b.String()
}

// Table is an ordered set of key/value pairs under a `[table]` header.
type Table struct {
	kvs []*keyValue
}

type keyValue struct {
	decor   string
	keyText string
	key     string
	eq      string
	value   *Value
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// Get returns the value for key, or nil if there is none.
func (t *Table) Get(key string) *Value {
	if kv := t.find(key); kv != nil {
		return kv.value
	}
	return nil
}

// Insert sets key to v. An existing key keeps its position and decor;
// otherwise the pair is appended.
func (t *Table) Insert(key string, v *Value) {
	if kv := t.find(key); kv != nil {
		kv.value = v.Clone()
		return
	}
	t.kvs = append(t.kvs, &keyValue{
		keyText: encodeKey(key),
		key:     key,
		eq:      " = ",
		value:   v.Clone(),
	})
}

// Remove deletes key from the table, returning its value, or nil if there
// is none.
func (t *Table) Remove(key string) *Value {
	for i, kv := range t.kvs {
		if kv.key == key {
			t.kvs = append(t.kvs[:i], t.kvs[i+1:]...)
			return kv.value
		}
	}
	return nil
}

// KeyDecor returns the leading comment block of key. The second result
// reports whether the key exists.
func (t *Table) KeyDecor(key string) (string, bool) {
	if kv := t.find(key); kv != nil {
		return kv.decor, true
	}
	return "", false
}

// SetKeyDecor replaces the leading comment block of key. It reports whether
// the key exists.
func (t *Table) SetKeyDecor(key, decor string) bool {
	kv := t.find(key)
	if kv == nil {
		return false
	}
	kv.decor = decor
	return true
}

// Keys returns the table keys in order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.kvs))
	for _, kv := range t.kvs {
		keys = append(keys, kv.key)
	}
	return keys
}

// Len returns the number of key/value pairs in the table.
func (t *Table) Len() int { return len(t.kvs) }

func (t *Table) find(key string) *keyValue {
	for _, kv := range t.kvs {
		if kv.key == key {
			return kv
		}
	}
	return nil
}

func (t *Table) write(b *strings.Builder) {
	for _, kv := range t.kvs {
		b.WriteString(kv.decor)
		b.WriteString(kv.keyText)
		b.WriteString(kv.eq)
		b.WriteString(kv.value.raw())
	}
}

const bareKeyChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

func encodeKey(key string) string {
	if key == "" {
		return `""`
	}
	for _, r := range key {
		if !strings.ContainsRune(bareKeyChars, r) {
			return encodeBasicString(key)
		}
	}
	return key
}
