package field

import "strings"

// WSP is the set of bytes treated as header folding whitespace: space and
// horizontal tab.
const WSP = " \t"

// Value is a header value: an opaque byte sequence with no embedded CRLF
// (obs-fold has already been collapsed to a single SP by the time a Value
// exists) and with leading/trailing WSP stripped.
type Value string

// NewValue wraps s as a Value, stripping leading and trailing WSP.
func NewValue(s string) Value {
	return Value(strings.Trim(s, WSP))
}

// String returns the value bytes as a string.
func (v Value) String() string {
	return string(v)
}

// Bytes returns the value bytes as a byte slice.
func (v Value) Bytes() []byte {
	return []byte(v)
}

// SplitValues splits a header value on commas, preserving whatever
// whitespace surrounds each token. It does not trim the tokens it returns;
// callers that want trimmed tokens must trim themselves. Returns an empty
// slice for an empty value and a one-element slice when no comma is
// present.
func SplitValues(v Value) []string {
	if len(v) == 0 {
		return []string{}
	}
	return strings.Split(string(v), ",")
}

// JoinValues concatenates values with a bare comma separator, no added
// whitespace.
func JoinValues(values []string) string {
	return strings.Join(values, ",")
}
