package field

import "errors"

// ErrFoldingImpossible is returned by FoldEncoding.Fold when a line needs
// to be broken to satisfy the configured limit but some part of it has no
// breakable whitespace within its window. Unlike the forced mid-word break
// some email libraries fall back to, this package fails closed: a caller
// that gets this error gets no partial or overlong output at all.
var ErrFoldingImpossible = errors.New("field: value has no whitespace available to fold on")

// foldIndent is the continuation prefix prepended to every folded part
// after the first. This library fixes it at a single space rather than
// making it configurable, because spec compliance only requires a single
// SP and a configurable indent buys nothing a caller here would use.
const foldIndent = " "

// FoldEncoding folds a raw header line into parts that each satisfy a
// maximum line length, or reports that folding is impossible.
type FoldEncoding struct {
	limit int
}

// NewFoldEncoding returns a FoldEncoding that breaks lines to fit within
// limit bytes, including the CRLF terminator. A limit of 0 disables
// folding: Fold returns the line unbroken.
func NewFoldEncoding(limit int) *FoldEncoding {
	return &FoldEncoding{limit: limit}
}

// Limit returns the configured line-length limit.
func (fe *FoldEncoding) Limit() int {
	return fe.limit
}

// SetLimit changes the configured line-length limit.
func (fe *FoldEncoding) SetLimit(limit int) {
	fe.limit = limit
}

// Fold breaks line, which must already end in CRLF, into one or more parts
// such that each part (continuation parts including their leading SP) is
// no longer than the configured limit. If the limit is 0, line is returned
// as the sole part, unbroken.
//
// The line-breaking strategy is a one-shot walk over line: at each step it
// looks for the last SP/HT within the window the remaining budget allows,
// breaking there and discarding that byte (it becomes the fold point, not
// content). If a step finds no whitespace within its window, folding this
// line is impossible and Fold returns ErrFoldingImpossible — it does not
// force a break mid-word.
//
// The very first window is special: the first SP/HT it sees only marks
// that a candidate search has begun and is never itself the break point,
// so it takes a second SP/HT in that same window before the first part can
// break at all. Every later window breaks on its last SP/HT normally.
func (fe *FoldEncoding) Fold(line []byte) ([][]byte, error) {
	if fe.limit == 0 {
		return [][]byte{line}, nil
	}

	var parts [][]byte
	start := 0
	reserved := len(CRLF)
	firstPart := true
	for {
		indent := 0
		if !firstPart {
			indent = len(foldIndent)
		}
		if len(line)-start+indent <= fe.limit {
			parts = append(parts, line[start:])
			break
		}

		window := fe.limit - reserved
		if window < 0 {
			window = 0
		}
		end := start + window
		if end > len(line)-1 {
			end = len(line) - 1
		}

		var breakAt int
		if firstPart {
			breakAt = lastWSPAfterFirst(line, start, end)
		} else {
			breakAt = lastWSP(line, start, end)
		}
		if breakAt < 0 {
			return nil, ErrFoldingImpossible
		}

		parts = append(parts, line[start:breakAt])
		start = breakAt + 1
		reserved = len(CRLF) + len(foldIndent)
		firstPart = false
	}

	for i := 1; i < len(parts); i++ {
		indented := make([]byte, 0, len(foldIndent)+len(parts[i]))
		indented = append(indented, foldIndent...)
		indented = append(indented, parts[i]...)
		parts[i] = indented
	}

	for i := 0; i < len(parts)-1; i++ {
		parts[i] = append(parts[i], CRLF...)
	}

	return parts, nil
}

// lastWSP returns the index of the last SP/HT byte within line[start:end]
// inclusive, or -1 if none is present.
func lastWSP(line []byte, start, end int) int {
	found := -1
	for i := start; i <= end; i++ {
		if IsWSP(line[i]) {
			found = i
		}
	}
	return found
}

// lastWSPAfterFirst is lastWSP for the first part's window: the first SP/HT
// encountered only flips past the sacrificial first candidate and is never
// itself a valid break point; only a second-or-later SP/HT in the window
// can be returned. A window holding exactly one SP/HT therefore fails the
// same as one holding none.
func lastWSPAfterFirst(line []byte, start, end int) int {
	found := -1
	sawFirst := false
	for i := start; i <= end; i++ {
		if !IsWSP(line[i]) {
			continue
		}
		if !sawFirst {
			sawFirst = true
			continue
		}
		found = i
	}
	return found
}

// Unfold strips all CR and LF bytes from f, collapsing a folded value back
// to its single-line form. It does not collapse the run of whitespace a
// fold leaves behind; callers normalizing an unfolded value to a single SP
// per fold do that themselves during parsing, where the fold boundary is
// still known.
func Unfold(f []byte) []byte {
	uf := make([]byte, 0, len(f))
	for _, b := range f {
		if b != '\r' && b != '\n' {
			uf = append(uf, b)
		}
	}
	return uf
}
