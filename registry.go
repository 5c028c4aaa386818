package taginput

import "strings"

// Descriptor configures one recognized tag. A zero Separator on a ModeJoin
// descriptor falls back to the parser's default separator.
type Descriptor struct {
	Name      string
	Mode      Mode
	Separator string
}

// Registry is an ordered list of recognized tag descriptors. Order is
// lookup precedence: when more than one descriptor could match a token, the
// first registered one wins. Duplicate names are tolerated; the first
// occurrence governs.
//
// An empty registry switches the parser into dynamic mode, where any
// "word:value" token is treated as a tag.
type Registry struct {
	descs []Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register validates and appends a descriptor. The name must be non-empty
// and contain neither a colon (the value delimiter) nor whitespace (the
// tokenizer boundary). Unknown modes are rejected here so that parsing
// never has to handle them.
func (r *Registry) Register(d Descriptor) error {
	if d.Name == "" {
		return NewConfigError(d.Name, "name", "must not be empty")
	}
	if strings.ContainsRune(d.Name, ':') {
		return NewConfigError(d.Name, "name", "must not contain a colon")
	}
	if strings.ContainsAny(d.Name, " \t\r\n") {
		return NewConfigError(d.Name, "name", "must not contain whitespace")
	}
	if !d.Mode.valid() {
		return NewConfigError(d.Name, "mode", "unrecognized mode")
	}
	r.descs = append(r.descs, d)
	return nil
}

// RegisterName appends a bare-name descriptor that uses the parser's
// default mode and separator.
func (r *Registry) RegisterName(name string) error {
	return r.Register(Descriptor{Name: name})
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.descs)
}

// match returns the first descriptor whose "name:" prefix starts the token,
// in registration order.
func (r *Registry) match(token string) (Descriptor, bool) {
	for _, d := range r.descs {
		if len(token) > len(d.Name) && token[len(d.Name)] == ':' && strings.HasPrefix(token, d.Name) {
			return d, true
		}
	}
	return Descriptor{}, false
}
