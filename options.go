package inetheader

import "github.com/zostay/go-inetheader/field"

// Option configures a Header at construction time, the usual
// functional-options shape for optional, rarely-changed settings.
type Option func(*Header)

// WithLineLimit sets the line-length limit a Header uses for both parsing
// and serializing. A limit of 0 (the default) disables the limit.
func WithLineLimit(limit int) Option {
	return func(h *Header) {
		h.limit = limit
	}
}

// WithFoldEncoding installs fe as the fold encoding Serialize uses, instead
// of one built from the line-length limit. Useful for callers who need to
// tune the fold encoding itself (via field.NewFoldEncoding) rather than
// just its limit.
func WithFoldEncoding(fe *field.FoldEncoding) Option {
	return func(h *Header) {
		h.fold = fe
	}
}
