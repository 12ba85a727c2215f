// Package field provides the low-level pieces a header line is built from:
// the name token, the value bytes, line location, and line folding. None of
// these types know anything about a particular protocol or about how many
// entries a header collection holds — that lives one level up, in the
// inetheader package.
package field

import "strings"

// Name is a header name token: an opaque sequence of printable ASCII bytes
// (0x21..0x7E). Equality is case-insensitive (strings.EqualFold, which for
// ASCII names is ASCII case-insensitivity; names holding non-ASCII bytes are
// compared with Unicode case folding, not byte by byte); String and Bytes
// return the original casing the caller or the wire supplied.
type Name string

// NewName wraps s as a Name without validating its charset. Charset
// validation belongs to whoever is parsing off the wire, not to the name
// type itself.
func NewName(s string) Name {
	return Name(s)
}

// String returns the name in its original casing.
func (n Name) String() string {
	return string(n)
}

// Bytes returns the name in its original casing as a byte slice.
func (n Name) Bytes() []byte {
	return []byte(n)
}

// Equal reports whether n and other are the same name, compared with
// strings.EqualFold (ASCII case-insensitive for ASCII names).
func (n Name) Equal(other Name) bool {
	return strings.EqualFold(string(n), string(other))
}

// EqualString reports whether n names the same header as s, compared with
// strings.EqualFold (ASCII case-insensitive for ASCII names).
func (n Name) EqualString(s string) bool {
	return strings.EqualFold(string(n), s)
}

// Lower returns a copy of the name lowercased with strings.ToLower, for use
// as a map key by callers who want to hash rather than linear-scan. Non-ASCII
// bytes follow Unicode rules, so the result is not a byte-wise ASCII lowering
// for such names.
func (n Name) Lower() string {
	return strings.ToLower(string(n))
}

// IsEmpty reports whether n holds no bytes at all. The type itself does not
// reject an empty name, and neither does the Parser: an empty name passes
// ValidBytes, so a colon-led line is stored under an empty name without
// latching the store invalid.
func (n Name) IsEmpty() bool {
	return len(n) == 0
}

// ValidByte reports whether b is a legal header name byte under RFC 5322 /
// RFC 7230 / RFC 3261: printable US-ASCII, excluding space.
func ValidByte(b byte) bool {
	return b >= 0x21 && b <= 0x7E
}

// ValidBytes reports whether every byte of s is a legal header name byte.
// An empty s is considered valid: there is no byte to fail the check, the
// same way a loop over zero bytes never finds one out of range.
func ValidBytes(s []byte) bool {
	for _, b := range s {
		if !ValidByte(b) {
			return false
		}
	}
	return true
}
