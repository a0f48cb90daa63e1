package linkedart

import (
	"strings"

	"github.com/ednadion/lamark/pkg/jsontree"
	"github.com/ednadion/lamark/pkg/lang"
)

// Datatype IRIs assigned by literal annotations.
const (
	XSDDate     = "http://www.w3.org/2001/XMLSchema#date"
	XSDDateTime = "http://www.w3.org/2001/XMLSchema#dateTime"
	XSDTime     = "http://www.w3.org/2001/XMLSchema#time"
	XSDAnyURI   = "http://www.w3.org/2001/XMLSchema#anyURI"
	RDFHTML     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#HTML"
)

// datatypeAnnotations maps the recognized backticked keywords to datatypes.
// A keyword takes precedence over a language code of the same spelling.
var datatypeAnnotations = map[string]string{
	"date":     XSDDate,
	"datetime": XSDDateTime,
	"time":     XSDTime,
	"integer":  jsontree.XSDInteger,
	"decimal":  jsontree.XSDDecimal,
	"double":   jsontree.XSDDouble,
	"boolean":  jsontree.XSDBoolean,
	"html":     RDFHTML,
	"uri":      XSDAnyURI,
}

// TypeLiteral decides the datatype and/or the language tag of a literal
// token. Priority: explicit datatype annotation, explicit language
// annotation, boolean autotyping, plain string carrying the document default
// language. An empty token yields null.
func TypeLiteral(token string, annotation string, opts Options) jsontree.Value {
	token = strings.TrimSpace(token)
	if token == "" {
		return jsontree.Null{}
	}

	annotation = strings.TrimSpace(annotation)
	if annotation != "" {
		if datatype, ok := datatypeAnnotations[strings.ToLower(annotation)]; ok {
			return jsontree.Typed(token, datatype)
		}
		if locale, ok := lang.Lookup(annotation); ok {
			return jsontree.Tagged(token, locale.Tag)
		}
		// Unrecognized annotations fall through to the remaining rules.
	}

	if opts.Autotype {
		if value, ok := lang.BooleanValue(token, opts.Language); ok {
			return jsontree.Bool(value)
		}
	}

	if opts.Language != "" {
		if locale, ok := lang.Lookup(opts.Language); ok {
			return jsontree.Tagged(token, locale.Tag)
		}
		return jsontree.Tagged(token, opts.Language)
	}
	return jsontree.String(token)
}
