package inetheader

import (
	"github.com/zostay/go-inetheader/field"
)

// State is the three-valued result of a parse attempt.
type State int

const (
	// StateIncomplete means the buffer ended mid-header-block with no
	// framing error; the caller should retry with more bytes appended,
	// starting from the returned offset.
	StateIncomplete State = iota

	// StateComplete means a blank-line terminator was seen and every
	// preceding line was validated.
	StateComplete

	// StateError means a validation rule (missing colon or a line over
	// the length limit) was violated. Error is terminal for this call;
	// inspect the returned error for which rule failed.
	StateError
)

// String renders the state for diagnostics and test failures.
func (st State) String() string {
	switch st {
	case StateComplete:
		return "Complete"
	case StateIncomplete:
		return "Incomplete"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Parser drives a Store through the header block grammar: it locates
// lines with field.FindCRLF, unfolds obs-fold continuations, validates the
// name charset, and writes entries into the store it was given.
//
// A Parser holds only its configured line-length limit; it keeps no state
// between calls to Parse. Callers resume a truncated parse by calling
// Parse again with a larger buffer and the offset the previous call
// returned.
type Parser struct {
	limit int
}

// NewParser returns a Parser that enforces limit as the maximum length,
// including CRLF, of any header line. A limit of 0 means no limit.
func NewParser(limit int) *Parser {
	return &Parser{limit: limit}
}

// Parse reads header lines from buf starting at offset, writing entries
// into store, until it hits the blank-line terminator, runs out of bytes,
// or finds a malformed line. It returns the resulting state and the
// offset at which the caller should resume — either just past the
// blank-line terminator (Complete), the point before an in-progress
// header line that still needs more bytes (Incomplete), or the offset at
// which the caller started (Error; nothing after the last successfully
// stored entry was consumed).
func (p *Parser) Parse(store *Store, buf []byte, offset int) (State, int, error) {
	start := offset

	for {
		lineStart := start
		crIx, found := field.FindCRLF(buf, start)

		if !found {
			remaining := len(buf) - start
			if field.FitsLimit(remaining, p.limit) {
				return StateIncomplete, lineStart, nil
			}
			return StateError, offset, &ParseError{Offset: lineStart, Err: ErrLineTooLong}
		}

		lineLen := crIx - start
		if !field.FitsLimit(lineLen, p.limit) {
			return StateError, offset, &ParseError{Offset: lineStart, Err: ErrLineTooLong}
		}

		if crIx == start {
			return StateComplete, crIx + 2, nil
		}

		line := buf[start:crIx]
		colonIx := indexByte(line, ':')
		if colonIx < 0 {
			return StateError, offset, &ParseError{Offset: lineStart, Err: ErrMalformedLine}
		}

		rawName := line[:colonIx]
		name := field.NewName(string(rawName))
		if !field.ValidBytes(rawName) {
			store.Invalidate()
		}

		rawValue := trimWSP(line[colonIx+1:])
		value := make([]byte, len(rawValue))
		copy(value, rawValue)

		termEnd := crIx + 2

		for {
			nextCrIx, nextFound := field.FindCRLF(buf, termEnd)
			if !nextFound {
				// An obs-fold may or may not be starting here; either way
				// we can't tell without more bytes. Roll all the way back
				// to the start of this header line so the retry reparses
				// it whole.
				return StateIncomplete, lineStart, nil
			}

			contLine := buf[termEnd:nextCrIx]
			if len(contLine) <= 2 || !field.IsWSP(contLine[0]) {
				break
			}

			if !field.FitsLimit(len(contLine), p.limit) {
				return StateError, offset, &ParseError{Offset: termEnd, Err: ErrLineTooLong}
			}

			value = append(value, ' ')
			value = append(value, trimLeadingWSP(contLine)...)
			termEnd = nextCrIx + 2
		}

		value = trimTrailingWSP(value)

		store.Add(name.String(), field.Value(value))
		start = termEnd
	}
}

func indexByte(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}
	return -1
}

func trimWSP(b []byte) []byte {
	return trimTrailingWSP(trimLeadingWSP(b))
}

func trimLeadingWSP(b []byte) []byte {
	i := 0
	for i < len(b) && field.IsWSP(b[i]) {
		i++
	}
	return b[i:]
}

func trimTrailingWSP(b []byte) []byte {
	i := len(b)
	for i > 0 && field.IsWSP(b[i-1]) {
		i--
	}
	return b[:i]
}
