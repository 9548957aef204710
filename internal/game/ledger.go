package game

// Ledger remembers entity ids whose hit has already been resolved, so a
// burst of input events for one ball scores at most once.
type Ledger struct {
	ids   map[int64]struct{}
	limit int
}

// NewLedger creates a ledger that clears itself once it holds more than
// limit ids. Ids are never reused within a session, so forgetting old ones
// only drops protection for balls that are long gone.
func NewLedger(limit int) *Ledger {
	if limit < 1 {
		limit = 1
	}
	return &Ledger{
		ids:   make(map[int64]struct{}),
		limit: limit,
	}
}

// Has reports whether id was already resolved.
func (l *Ledger) Has(id int64) bool {
	_, ok := l.ids[id]
	return ok
}

// Add records id as resolved.
func (l *Ledger) Add(id int64) {
	l.ids[id] = struct{}{}
}

// Compact clears the ledger if it grew past its limit.
// Returns true if the ledger was cleared.
func (l *Ledger) Compact() bool {
	if len(l.ids) <= l.limit {
		return false
	}
	l.Clear()
	return true
}

// Clear forgets every id.
func (l *Ledger) Clear() {
	clear(l.ids)
}

// Len returns the number of remembered ids.
func (l *Ledger) Len() int {
	return len(l.ids)
}
