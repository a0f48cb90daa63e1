// Package jsontree represents JSON-LD values as an ordered tree and renders
// them deterministically: object keys keep their insertion order instead of
// being sorted like encoding/json does with maps.
package jsontree

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
)

// XSD datatypes the writer knows how to render natively.
const (
	XSDBoolean = "http://www.w3.org/2001/XMLSchema#boolean"
	XSDInteger = "http://www.w3.org/2001/XMLSchema#integer"
	XSDDecimal = "http://www.w3.org/2001/XMLSchema#decimal"
	XSDDouble  = "http://www.w3.org/2001/XMLSchema#double"
)

// Value is one node of the abstract value tree.
type Value interface {
	encode(buf *bytes.Buffer, indent int)
}

/* Literals */

// Str is a string literal, optionally carrying a datatype or a language tag.
// Datatype and Language are mutually exclusive.
type Str struct {
	Value    string
	Datatype string
	Language string
}

// String returns a plain string literal.
func String(value string) *Str {
	return &Str{Value: value}
}

// Typed returns a datatyped literal.
func Typed(value string, datatype string) *Str {
	return &Str{Value: value, Datatype: datatype}
}

// Tagged returns a language-tagged literal.
func Tagged(value string, language string) *Str {
	return &Str{Value: value, Language: language}
}

// Bool is a native JSON boolean.
type Bool bool

// Null is the JSON null value.
type Null struct{}

/* Containers */

type entry struct {
	key   string
	value Value
}

// Map is a JSON object preserving the order in which keys were added.
type Map struct {
	entries []entry
}

func NewMap() *Map {
	return &Map{}
}

// Set adds a key or replaces its value in place, keeping its position.
func (m *Map) Set(key string, value Value) *Map {
	for i := range m.entries {
		if m.entries[i].key == key {
			m.entries[i].value = value
			return m
		}
	}
	m.entries = append(m.entries, entry{key: key, value: value})
	return m
}

// Add appends a value under a key. A repeated key turns the existing value
// into an array and appends to it, so that repeated property slots merge.
func (m *Map) Add(key string, value Value) *Map {
	for i := range m.entries {
		if m.entries[i].key == key {
			if array, ok := m.entries[i].value.(*Array); ok {
				array.Append(value)
			} else {
				m.entries[i].value = NewArray(m.entries[i].value, value)
			}
			return m
		}
	}
	m.entries = append(m.entries, entry{key: key, value: value})
	return m
}

func (m *Map) Get(key string) (Value, bool) {
	for i := range m.entries {
		if m.entries[i].key == key {
			return m.entries[i].value, true
		}
	}
	return nil, false
}

func (m *Map) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		keys = append(keys, e.key)
	}
	return keys
}

func (m *Map) Len() int {
	return len(m.entries)
}

// Array is a JSON array.
type Array struct {
	elements []Value
}

func NewArray(values ...Value) *Array {
	return &Array{elements: values}
}

func (a *Array) Append(value Value) *Array {
	a.elements = append(a.elements, value)
	return a
}

func (a *Array) Len() int {
	return len(a.elements)
}

func (a *Array) Values() []Value {
	return a.elements
}

/* Rendering */

// Render writes the value as indented JSON text without a trailing newline.
func Render(v Value) string {
	var buf bytes.Buffer
	v.encode(&buf, 0)
	return buf.String()
}

func writeIndent(buf *bytes.Buffer, indent int) {
	for i := 0; i < indent; i++ {
		buf.WriteString("  ")
	}
}

func writeString(buf *bytes.Buffer, s string) {
	escaped, _ := json.Marshal(s)
	buf.Write(escaped)
}

// integerPattern and decimalPattern recognize values that are already valid
// JSON number literals and can therefore be emitted verbatim.
var (
	integerPattern = regexp.MustCompile(`^-?(0|[1-9][0-9]*)$`)
	decimalPattern = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)
)

func (s *Str) encode(buf *bytes.Buffer, indent int) {
	switch {
	case s.Language != "":
		m := NewMap().
			Set("@value", String(s.Value)).
			Set("@language", String(s.Language))
		m.encode(buf, indent)
	case s.Datatype == "":
		writeString(buf, s.Value)
	case s.Datatype == XSDBoolean && (s.Value == "true" || s.Value == "false"):
		buf.WriteString(s.Value)
	case s.Datatype == XSDInteger && isSafeInteger(s.Value):
		buf.WriteString(s.Value)
	case (s.Datatype == XSDDecimal || s.Datatype == XSDDouble) && isSafeDecimal(s.Value):
		buf.WriteString(s.Value)
	default:
		m := NewMap().
			Set("@value", String(s.Value)).
			Set("@type", String(s.Datatype))
		m.encode(buf, indent)
	}
}

func isSafeInteger(value string) bool {
	if !integerPattern.MatchString(value) {
		return false
	}
	_, err := strconv.ParseInt(value, 10, 64)
	return err == nil
}

func isSafeDecimal(value string) bool {
	if !decimalPattern.MatchString(value) {
		return false
	}
	_, err := strconv.ParseFloat(value, 64)
	return err == nil
}

func (b Bool) encode(buf *bytes.Buffer, _ int) {
	buf.WriteString(strconv.FormatBool(bool(b)))
}

func (Null) encode(buf *bytes.Buffer, _ int) {
	buf.WriteString("null")
}

func (m *Map) encode(buf *bytes.Buffer, indent int) {
	if len(m.entries) == 0 {
		buf.WriteString("{}")
		return
	}
	buf.WriteString("{\n")
	for i, e := range m.entries {
		writeIndent(buf, indent+1)
		writeString(buf, e.key)
		buf.WriteString(": ")
		e.value.encode(buf, indent+1)
		if i < len(m.entries)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	writeIndent(buf, indent)
	buf.WriteString("}")
}

func (a *Array) encode(buf *bytes.Buffer, indent int) {
	if len(a.elements) == 0 {
		buf.WriteString("[]")
		return
	}
	buf.WriteString("[\n")
	for i, element := range a.elements {
		writeIndent(buf, indent+1)
		element.encode(buf, indent+1)
		if i < len(a.elements)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	writeIndent(buf, indent)
	buf.WriteString("]")
}
