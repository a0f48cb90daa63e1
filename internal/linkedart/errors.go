package linkedart

import "fmt"

// UnresolvedTermError reports a vocabulary label with no entry in the term
// table. It aborts the transformation only in strict mode; otherwise the
// literal label is emitted unresolved and the error surfaces as a warning.
type UnresolvedTermError struct {
	Label string
	Path  string // list-item path, ex: "Mona Lisa > title"
}

func (e *UnresolvedTermError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unresolved term %q", e.Label)
	}
	return fmt.Sprintf("unresolved term %q (in %q)", e.Label, e.Path)
}

// MalformedDefinitionError reports an unusable definition-list entry.
// It is always fatal: a term that cannot resolve would poison every later
// lookup, so the transformation fails fast.
type MalformedDefinitionError struct {
	Label  string
	Line   int // 1-based line in the input file
	Reason string
}

func (e *MalformedDefinitionError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("malformed definition (line %d): %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("malformed definition %q (line %d): %s", e.Label, e.Line, e.Reason)
}

// AmbiguousNestingError reports a list item mixing a description with an
// immediate properties list. It is always recovered: the item is treated as
// a described value with itemized sub-values, and the error surfaces as a
// warning.
type AmbiguousNestingError struct {
	Path string
}

func (e *AmbiguousNestingError) Error() string {
	return fmt.Sprintf("ambiguous nesting at %q: treating as a described value with itemized sub-values", e.Path)
}
