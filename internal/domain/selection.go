package domain

// ListedSessions is a user's pending, not yet submitted booking selection.
// Entries are unique by SessionKey and kept in insertion order.
// It is not safe for concurrent use; owners serialise access.
type ListedSessions struct {
	order []SessionKey
	slots map[SessionKey]*SessionSlot
}

// NewListedSessions returns an empty selection.
func NewListedSessions() *ListedSessions {
	return &ListedSessions{slots: make(map[SessionKey]*SessionSlot)}
}

// Add inserts slot unless a slot with the same key is already present.
// It reports whether the selection changed.
func (l *ListedSessions) Add(slot *SessionSlot) bool {
	key := slot.Key()
	if _, ok := l.slots[key]; ok {
		return false
	}
	if l.slots == nil {
		l.slots = make(map[SessionKey]*SessionSlot)
	}
	cp := *slot
	l.slots[key] = &cp
	l.order = append(l.order, key)
	return true
}

// Remove deletes the entry for key. It is a no-op when key is absent.
func (l *ListedSessions) Remove(key SessionKey) bool {
	if _, ok := l.slots[key]; !ok {
		return false
	}
	delete(l.slots, key)
	for i, k := range l.order {
		if k == key {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether key is listed.
func (l *ListedSessions) Contains(key SessionKey) bool {
	_, ok := l.slots[key]
	return ok
}

// Len returns the number of listed sessions.
func (l *ListedSessions) Len() int {
	return len(l.order)
}

// List returns the listed slots in insertion order.
func (l *ListedSessions) List() []*SessionSlot {
	out := make([]*SessionSlot, 0, len(l.order))
	for _, k := range l.order {
		out = append(out, l.slots[k])
	}
	return out
}

// Clear empties the selection.
func (l *ListedSessions) Clear() {
	l.order = nil
	l.slots = make(map[SessionKey]*SessionSlot)
}
