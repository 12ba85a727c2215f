// Package inetheader provides a generic header-block library for
// Internet-style messages: RFC 5322 mail, RFC 7230 HTTP, and RFC 3261 SIP
// all frame their header section the same way, as a sequence of
// "Name: value" lines terminated by CRLF and closed by a blank line, with
// obs-fold continuation lines permitted for any value. This package parses,
// stores, and re-serializes that block without assigning any protocol- or
// field-specific meaning to what it holds.
//
// The package deliberately stops at the blank line. Body parsing, transport
// I/O, character-set decoding of header values, and URI or date parsing of
// particular fields are all left to callers who know which protocol and
// which fields they are dealing with; this package only knows about names,
// values, and the wire framing between them.
//
// Header is the main entry point: it owns a Store (the ordered,
// case-insensitive multimap of entries) plus the line-length limit used
// when parsing and serializing. field.Name, field.Value, field.FindCRLF,
// and field.FoldEncoding are the lower-level pieces Header is built from,
// and are exported for callers who want to work below the Header façade.
//
// Parsing is resumable: Header.Parse reports whether the buffer it was
// given contains a complete header block, an incomplete one (more bytes
// needed), or a malformed one, and returns an offset into the buffer: where
// the body begins, or where a retry should resume. Callers feeding bytes in
// from a stream can call Parse again with a larger buffer and pick up from
// the returned offset.
package inetheader
