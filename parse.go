// Package taginput extracts inline "tag:value" markers from a single line
// of free text, separating them from the ordinary text around them. It is
// the parsing core of a tagged text-input widget: the surrounding UI calls
// Parse on every change and renders the result; this package holds no state
// between calls.
package taginput

import "strings"

// DefaultSeparator is the join separator used when neither the descriptor
// nor the parser supplies one.
const DefaultSeparator = ", "

// Result is the outcome of one parse pass.
type Result struct {
	// DefaultText is the non-tag tokens rejoined with single spaces in
	// their original relative order.
	DefaultText string
	// Tags maps each detected tag name to its accumulated value.
	Tags map[string]Value
	// DetectedOrder lists tag names in first-seen order, once each.
	DetectedOrder []string
}

// Equal reports structural equality with another result. The UI layer is
// expected to diff consecutive results with this before propagating change
// notifications.
func (r Result) Equal(o Result) bool {
	if r.DefaultText != o.DefaultText || len(r.Tags) != len(o.Tags) || len(r.DetectedOrder) != len(o.DetectedOrder) {
		return false
	}
	for i, name := range r.DetectedOrder {
		if o.DetectedOrder[i] != name {
			return false
		}
	}
	for name, v := range r.Tags {
		if !valueEqual(v, o.Tags[name]) {
			return false
		}
	}
	return true
}

// Parser turns raw input lines into Results against a fixed registry.
// A Parser is read-only after construction and safe for concurrent use;
// every Parse call allocates its own accumulator state.
type Parser struct {
	reg         *Registry
	defaultMode Mode
	defaultSep  string
}

// NewParser creates a parser over reg. A nil or empty registry puts the
// parser in dynamic mode, recognizing any "word:value" token.
func NewParser(reg *Registry, opts ...func(*Parser)) *Parser {
	p := &Parser{reg: reg, defaultMode: ModeOverwrite, defaultSep: DefaultSeparator}
	for _, o := range opts {
		o(p)
	}
	return p
}

// WithDefaultMode sets the mode applied to bare-name descriptors and to
// dynamically detected tags. ModeDefault is treated as ModeOverwrite.
func WithDefaultMode(m Mode) func(*Parser) {
	return func(p *Parser) { p.defaultMode = m }
}

// WithDefaultSeparator sets the join separator used by descriptors that do
// not carry their own.
func WithDefaultSeparator(sep string) func(*Parser) {
	return func(p *Parser) { p.defaultSep = sep }
}

// Parse is a convenience over NewParser(reg).Parse(raw).
func Parse(raw string, reg *Registry) Result {
	return NewParser(reg).Parse(raw)
}

// Parse splits raw on single spaces and classifies each token.
//
// With a non-empty registry a token is a tag occurrence iff it starts with
// "name:" for some registered descriptor; registration order breaks ties.
// Colon-containing tokens that match no descriptor stay default text, which
// is what lets a registry act as an allow-list. With an empty registry any
// token with a colon past position 0 is a tag.
//
// Parse never fails: malformed-looking input degrades to empty values or
// default text. Empty tokens produced by consecutive spaces are kept as
// default text so that tag-free input reassembles verbatim.
func (p *Parser) Parse(raw string) Result {
	res := Result{Tags: map[string]Value{}}
	var plain []string
	for _, tok := range strings.Split(raw, " ") {
		d, value, ok := p.classify(tok)
		if !ok {
			plain = append(plain, tok)
			continue
		}
		if _, seen := res.Tags[d.Name]; !seen {
			res.DetectedOrder = append(res.DetectedOrder, d.Name)
		}
		mode := d.Mode
		if mode == ModeDefault {
			mode = p.defaultMode
		}
		if mode == ModeDefault {
			mode = ModeOverwrite
		}
		sep := d.Separator
		if sep == "" {
			sep = p.defaultSep
		}
		res.Tags[d.Name] = merge(mode, res.Tags[d.Name], value, sep)
	}
	res.DefaultText = strings.Join(plain, " ")
	return res
}

// classify decides whether one token is a tag occurrence, splitting it into
// its governing descriptor and value.
func (p *Parser) classify(tok string) (d Descriptor, value string, ok bool) {
	if p.reg.Len() == 0 {
		i := strings.IndexByte(tok, ':')
		if i <= 0 {
			return Descriptor{}, "", false
		}
		return Descriptor{Name: tok[:i]}, tok[i+1:], true
	}
	d, ok = p.reg.match(tok)
	if !ok {
		return Descriptor{}, "", false
	}
	return d, tok[len(d.Name)+1:], true
}
