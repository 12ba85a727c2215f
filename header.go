package inetheader

import (
	"github.com/zostay/go-inetheader/field"
)

// Header composes a Store with the line-length limit that governs both
// parsing and serializing it. It is the thin façade most callers work
// through; Store, Parser, and field.FoldEncoding remain available
// directly for callers who want lower-level control.
type Header struct {
	store *Store
	limit int
	fold  *field.FoldEncoding
}

// New returns an empty Header configured by opts. With no options, the
// Header has no line-length limit.
func New(opts ...Option) *Header {
	h := &Header{store: NewStore()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SetLineLimit changes the line-length limit used by subsequent Parse and
// Serialize calls. A limit of 0 disables it.
func (h *Header) SetLineLimit(limit int) {
	h.limit = limit
}

// LineLimit returns the currently configured line-length limit.
func (h *Header) LineLimit() int {
	return h.limit
}

// SetFoldEncoding installs fe as the fold encoding Serialize uses, in
// place of the limit-derived default. Passing nil reverts to that default.
func (h *Header) SetFoldEncoding(fe *field.FoldEncoding) {
	h.fold = fe
}

// FoldEncoding returns the fold encoding Serialize will use: the one
// installed by SetFoldEncoding or WithFoldEncoding, or one freshly built
// from the configured line limit if none was installed.
func (h *Header) FoldEncoding() *field.FoldEncoding {
	if h.fold != nil {
		return h.fold
	}
	return field.NewFoldEncoding(h.limit)
}

// Parse reads a header block from buf starting at offset into h's store,
// using h's configured line-length limit. See Parser.Parse for the
// precise contract.
func (h *Header) Parse(buf []byte, offset int) (State, int, error) {
	p := NewParser(h.limit)
	return p.Parse(h.store, buf, offset)
}

// GetAll returns every stored entry in insertion order.
func (h *Header) GetAll() []Entry {
	return h.store.GetAll()
}

// Has reports whether name has at least one entry.
func (h *Header) Has(name string) bool {
	return h.store.Has(name)
}

// GetValue returns the first entry's value for name, or the empty value.
func (h *Header) GetValue(name string) field.Value {
	return h.store.GetValue(name)
}

// GetMulti returns every value stored under name, in insertion order.
func (h *Header) GetMulti(name string) []field.Value {
	return h.store.GetMulti(name)
}

// GetTokens returns the flattened, comma-split tokens of every value
// stored under name. Tokens are not trimmed.
func (h *Header) GetTokens(name string) []string {
	return h.store.GetTokens(name)
}

// Set replaces the first entry named name with value and removes any
// other entries with that name, or appends a new entry if none existed.
func (h *Header) Set(name string, value field.Value) {
	h.store.Set(name, value)
}

// SetMulti is the list-valued form of Set; see Store.SetMulti.
func (h *Header) SetMulti(name string, values []string, oneLine bool) {
	h.store.SetMulti(name, values, oneLine)
}

// Add appends a new entry for name regardless of what is already stored.
func (h *Header) Add(name string, value field.Value) {
	h.store.Add(name, value)
}

// AddMulti is the list-valued form of Add; see Store.AddMulti.
func (h *Header) AddMulti(name string, values []string, oneLine bool) {
	h.store.AddMulti(name, values, oneLine)
}

// Remove deletes every entry named name.
func (h *Header) Remove(name string) {
	h.store.Remove(name)
}

// Len returns the number of entries currently stored.
func (h *Header) Len() int {
	return h.store.Len()
}

// IsValid reports whether parsing ever saw an invalid name charset.
func (h *Header) IsValid() bool {
	return h.store.IsValid()
}

// Serialize renders the header block as a sequence of "Name: value" lines
// terminated by CRLF, folded to satisfy the configured line limit, and
// closed with a trailing blank line. If any entry's value cannot be
// folded to fit the limit, Serialize returns ErrFoldingImpossible and no
// bytes at all: a partially-folded block is never returned.
func (h *Header) Serialize() ([]byte, error) {
	fe := h.FoldEncoding()

	out := make([]byte, 0, 256)
	for _, e := range h.store.GetAll() {
		line := buildLine(e.Name, e.Value)

		parts, err := fe.Fold(line)
		if err != nil {
			return nil, err
		}

		for _, part := range parts {
			out = append(out, part...)
		}
	}

	out = append(out, field.CRLF...)
	return out, nil
}

func buildLine(name field.Name, value field.Value) []byte {
	line := make([]byte, 0, len(name)+2+len(value)+2)
	line = append(line, name.Bytes()...)
	line = append(line, ':', ' ')
	line = append(line, value.Bytes()...)
	line = append(line, field.CRLF...)
	return line
}
