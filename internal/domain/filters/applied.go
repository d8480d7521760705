package filters

// Applied is a live filter instance attached to a list.
type Applied struct {
	// Key matches a definition's Key, MinKey or MaxKey.
	Key string `json:"key"`

	// Value is the raw filter value.
	Value string `json:"value"`

	// Label, when non-empty, overrides computed label resolution entirely.
	Label string `json:"label,omitempty"`
}

// ID returns the composite identity used for dedup and removal. Two applied
// filters are the same entry iff key and value both match; changing the
// value changes the identity.
func (a Applied) ID() string {
	return a.Key + "-" + a.Value
}

// Set is an insertion-ordered collection of applied filters. Order is
// display order. Set values are never mutated in place: every operation
// returns a new collection and leaves the receiver untouched, so callers
// replace their own reference.
type Set []Applied

// Contains reports whether the set holds an entry with the given
// composite id.
func (s Set) Contains(id string) bool {
	for _, a := range s {
		if a.ID() == id {
			return true
		}
	}
	return false
}

// Add returns the set with f appended, unless an entry with the same
// composite id already exists, in which case the receiver is returned
// unchanged (first-wins, the candidate is silently dropped).
func (s Set) Add(f Applied) Set {
	if s.Contains(f.ID()) {
		return s
	}
	next := make(Set, len(s), len(s)+1)
	copy(next, s)
	return append(next, f)
}

// Remove returns a new set with the first entry matching id excised,
// preserving the relative order of the rest. Removing an absent id is a
// harmless no-op that still yields a fresh copy. Only the first match is
// removed even if a set built outside Add carries duplicates.
func (s Set) Remove(id string) Set {
	next := make(Set, 0, len(s))
	removed := false
	for _, a := range s {
		if !removed && a.ID() == id {
			removed = true
			continue
		}
		next = append(next, a)
	}
	return next
}
