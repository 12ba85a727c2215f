package inetheader

import (
	"github.com/zostay/go-inetheader/field"
)

// Entry is one (name, value) pair held by a Store, in the order it was
// inserted.
type Entry struct {
	Name  field.Name
	Value field.Value
}

// Store is an ordered multimap of header entries. Insertion order is
// preserved, including the relative order of entries that share a name.
// Every lookup, update, and delete matches names case-insensitively.
//
// The zero value is an empty, valid Store ready to use; NewStore exists
// for symmetry with the rest of the package's constructors. A Store is not
// safe for concurrent mutation, though concurrent read-only access to a
// store nobody is mutating is fine.
type Store struct {
	entries []Entry
	invalid bool
}

// NewStore returns an empty, valid Store.
func NewStore() *Store {
	return &Store{}
}

// GetAll returns the entries in insertion order. The returned slice is a
// copy; mutating it does not affect the store.
func (s *Store) GetAll() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries currently stored.
func (s *Store) Len() int {
	return len(s.entries)
}

// Has reports whether at least one entry matches name, case-insensitively.
func (s *Store) Has(name string) bool {
	return s.firstIndex(name) >= 0
}

// GetValue returns the value of the first entry matching name, or the
// empty value if there is no match.
func (s *Store) GetValue(name string) field.Value {
	ix := s.firstIndex(name)
	if ix < 0 {
		return ""
	}
	return s.entries[ix].Value
}

// GetMulti returns every value of entries matching name, in insertion
// order. It returns an empty (non-nil) slice if there is no match.
func (s *Store) GetMulti(name string) []field.Value {
	out := make([]field.Value, 0, 4)
	for _, e := range s.entries {
		if e.Name.EqualString(name) {
			out = append(out, e.Value)
		}
	}
	return out
}

// GetTokens concatenates GetMulti(name) and splits each value on comma,
// returning the flattened token list. Tokens are not trimmed; see
// field.SplitValues.
func (s *Store) GetTokens(name string) []string {
	var out []string
	for _, v := range s.GetMulti(name) {
		out = append(out, field.SplitValues(v)...)
	}
	return out
}

// Set replaces the value of the first entry matching name and removes any
// subsequent matches. If no entry matches, a new one is appended. The
// position of the (possibly new) first match is stable across calls.
func (s *Store) Set(name string, value field.Value) {
	ixs := s.indexesOf(name)

	if len(ixs) == 0 {
		s.entries = append(s.entries, Entry{Name: field.NewName(name), Value: value})
		return
	}

	for i := len(ixs) - 1; i > 0; i-- {
		s.deleteAt(ixs[i])
	}

	s.entries[ixs[0]].Value = value
}

// SetMulti replaces all entries matching name with values. If values is
// empty, SetMulti is a no-op. If oneLine is true, values are joined with a
// comma and stored as a single entry via Set. Otherwise the first value
// lands at the first-match position via Set and the remaining values are
// appended via Add, so a header that previously had entries elsewhere in
// the store keeps its first occurrence's position while new occurrences
// land at the tail.
func (s *Store) SetMulti(name string, values []string, oneLine bool) {
	if len(values) == 0 {
		return
	}

	if oneLine {
		s.Set(name, field.Value(field.JoinValues(values)))
		return
	}

	s.Set(name, field.Value(values[0]))
	for _, v := range values[1:] {
		s.Add(name, field.Value(v))
	}
}

// Add appends a new entry at the tail, regardless of what is already
// stored under name.
func (s *Store) Add(name string, value field.Value) {
	s.entries = append(s.entries, Entry{Name: field.NewName(name), Value: value})
}

// AddMulti appends one entry per value. If values is empty, AddMulti is a
// no-op. If oneLine is true, the values are joined with a comma into a
// single appended entry instead.
func (s *Store) AddMulti(name string, values []string, oneLine bool) {
	if len(values) == 0 {
		return
	}

	if oneLine {
		s.Add(name, field.Value(field.JoinValues(values)))
		return
	}

	for _, v := range values {
		s.Add(name, field.Value(v))
	}
}

// Remove deletes every entry matching name.
func (s *Store) Remove(name string) {
	ixs := s.indexesOf(name)
	for i := len(ixs) - 1; i >= 0; i-- {
		s.deleteAt(ixs[i])
	}
}

// IsValid reports whether the parser that populated this store, if any,
// ever saw an invalid name charset. A freshly constructed, never-parsed
// Store is always valid.
func (s *Store) IsValid() bool {
	return !s.invalid
}

// Invalidate latches the store's valid flag to false. Once invalidated, a
// Store stays invalid for the rest of its life; there is no way to clear
// the latch short of starting a new Store.
func (s *Store) Invalidate() {
	s.invalid = true
}

func (s *Store) firstIndex(name string) int {
	for i, e := range s.entries {
		if e.Name.EqualString(name) {
			return i
		}
	}
	return -1
}

func (s *Store) indexesOf(name string) []int {
	var out []int
	for i, e := range s.entries {
		if e.Name.EqualString(name) {
			out = append(out, i)
		}
	}
	return out
}

func (s *Store) deleteAt(i int) {
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
}
