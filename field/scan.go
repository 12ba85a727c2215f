package field

// CRLF is the canonical line terminator this library reads and writes.
const CRLF = "\r\n"

// FindCRLF locates the next CRLF in buf at or after offset. It returns the
// index of the CR byte and true if found. A lone CR or a lone LF does not
// count as a terminator.
func FindCRLF(buf []byte, offset int) (int, bool) {
	for i := offset; i+1 < len(buf); i++ {
		if buf[i] == '\r' && buf[i+1] == '\n' {
			return i, true
		}
	}
	return -1, false
}

// FitsLimit reports whether a line of lineLen bytes (not counting the
// terminator) satisfies the line-length limit, counting the 2-byte CRLF
// against it. A limit of 0 means no limit is enforced.
func FitsLimit(lineLen, limit int) bool {
	if limit == 0 {
		return true
	}
	return lineLen+len(CRLF) <= limit
}

// IsWSP reports whether b is header-folding whitespace: space or
// horizontal tab.
func IsWSP(b byte) bool {
	return b == ' ' || b == '\t'
}
