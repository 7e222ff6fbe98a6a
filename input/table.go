package input

import "bytes"

// An Entry binds one exact input byte sequence to the event it should
// produce. Term restricts the entry to a single terminal type; a nil
// Term applies to every terminal.
type Entry struct {
	Term  *string
	Bytes []byte
	Event Event
}

// A Table is an ordered list of mapping entries. The configuration
// layer only ever appends to it, in source order, and never removes or
// reorders entries: when two entries bind the same byte sequence, the
// later one takes precedence, which Lookup implements by searching
// newest to oldest.
type Table []Entry

// Lookup finds the event bound to the given byte sequence for the
// given terminal type. Entries with a terminal filter only apply when
// the filter matches term exactly.
func (t Table) Lookup(term string, seq []byte) (Event, bool) {
	for i := len(t) - 1; i >= 0; i-- {
		e := t[i]
		if e.Term != nil && *e.Term != term {
			continue
		}
		if bytes.Equal(e.Bytes, seq) {
			return e.Event, true
		}
	}
	return Event{}, false
}
