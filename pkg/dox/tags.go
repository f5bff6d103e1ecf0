// tags.go defines the directive registry: how each tag family captures
// parameters.
package dox

// Arity describes how a directive captures parameters after its tag word.
type Arity int

const (
	ArityNone Arity = iota // no parameter capture
	ArityWord              // a single following word
	ArityLine              // the rest of the line as one parameter
)

// TagSpec defines the capture behavior for one directive.
type TagSpec struct {
	Arity    Arity
	Required bool // a missing parameter is a parse failure
}

// tagRegistry maps directive names to their capture behavior. Names are
// case-sensitive and lowercase. Adding a new directive = adding one entry
// here plus its rendering rule in the generator.
var tagRegistry = map[string]TagSpec{
	"brief":      {Arity: ArityNone},
	"short":      {Arity: ArityNone},
	"details":    {Arity: ArityNone},
	"note":       {Arity: ArityNone},
	"since":      {Arity: ArityNone},
	"deprecated": {Arity: ArityNone},
	"remark":     {Arity: ArityNone},
	"remarks":    {Arity: ArityNone},
	"par":        {Arity: ArityNone},
	"returns":    {Arity: ArityNone},
	"return":     {Arity: ArityNone},
	"result":     {Arity: ArityNone},

	"a":         {Arity: ArityWord, Required: true},
	"e":         {Arity: ArityWord, Required: true},
	"em":        {Arity: ArityWord, Required: true},
	"b":         {Arity: ArityWord, Required: true},
	"c":         {Arity: ArityWord, Required: true},
	"p":         {Arity: ArityWord, Required: true},
	"emoji":     {Arity: ArityWord, Required: true},
	"retval":    {Arity: ArityWord, Required: true},
	"throw":     {Arity: ArityWord, Required: true},
	"throws":    {Arity: ArityWord, Required: true},
	"exception": {Arity: ArityWord, Required: true},
	"sa":        {Arity: ArityWord},
	"see":       {Arity: ArityWord},
	"param":     {Arity: ArityWord},

	"pre":  {Arity: ArityLine},
	"post": {Arity: ArityLine},
}

// lookupTag returns the capture behavior for a directive name. Unknown
// directives capture nothing; they are not an error (dialect extensibility).
func lookupTag(name string) (TagSpec, bool) {
	spec, ok := tagRegistry[name]
	return spec, ok
}
