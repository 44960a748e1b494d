package core

// entryList is a small owned container that reports every structural
// mutation to its owner, so derived state can be recomputed without a
// separate observer abstraction.
type entryList struct {
	entries []*Entry
	changed func()
}

func (l *entryList) notify() {
	if l.changed != nil {
		l.changed()
	}
}

func (l *entryList) pushBack(e *Entry) {
	l.entries = append(l.entries, e)
	l.notify()
}

func (l *entryList) pushFront(e *Entry) {
	l.entries = append([]*Entry{e}, l.entries...)
	l.notify()
}

// remove deletes by identity, not value equality; two entries may share a
// type but must stay distinguishable by the instance they carry.
func (l *entryList) remove(e *Entry) bool {
	for i, cur := range l.entries {
		if cur == e {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			l.notify()
			return true
		}
	}
	return false
}

func (l *entryList) dropOldest() {
	if len(l.entries) == 0 {
		return
	}
	l.entries = l.entries[1:]
	l.notify()
}

func (l *entryList) clear() {
	if len(l.entries) == 0 {
		return
	}
	l.entries = nil
	l.notify()
}

func (l *entryList) len() int { return len(l.entries) }

// History holds the back stack, the forward stack and the current slot.
//
// The back stack is ordered oldest-first and bounded by the capacity it
// shares with the page cache; pushing past the bound evicts the oldest
// entry. The forward stack is ordered most-recently-superseded-first and is
// unbounded. CanGoBack and CanGoForward are recomputed on every structural
// mutation of either stack.
type History struct {
	capacity     int
	back         entryList
	forward      entryList
	current      *Entry
	canGoBack    bool
	canGoForward bool
}

// NewHistory creates empty stacks with the given back-stack capacity.
func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}
	h := &History{capacity: capacity}
	h.back.changed = h.recompute
	h.forward.changed = h.recompute
	return h
}

func (h *History) recompute() {
	h.canGoBack = h.back.len() > 0
	h.canGoForward = h.forward.len() > 0
}

// CanGoBack reports back-stack occupancy.
func (h *History) CanGoBack() bool { return h.canGoBack }

// CanGoForward reports forward-stack occupancy.
func (h *History) CanGoForward() bool { return h.canGoForward }

// Current returns the entry presently displayed, if any.
func (h *History) Current() *Entry { return h.current }

// SetCurrent replaces the current slot.
func (h *History) SetCurrent(e *Entry) { h.current = e }

// PushBack appends to the back stack, evicting the oldest entry first when
// the capacity bound would be exceeded. With capacity zero the back stack
// stays permanently empty.
func (h *History) PushBack(e *Entry) {
	if h.capacity == 0 {
		return
	}
	for h.back.len() >= h.capacity {
		h.back.dropOldest()
	}
	h.back.pushBack(e)
}

// PushForward prepends to the forward stack, keeping it ordered most recent
// first.
func (h *History) PushForward(e *Entry) { h.forward.pushFront(e) }

// appendForward appends at the oldest end, preserving order during restore.
func (h *History) appendForward(e *Entry) { h.forward.pushBack(e) }

// PeekBack returns the most recent back-stack entry, or nil.
func (h *History) PeekBack() *Entry {
	if n := h.back.len(); n > 0 {
		return h.back.entries[n-1]
	}
	return nil
}

// PeekForward returns the most recent forward-stack entry, or nil.
func (h *History) PeekForward() *Entry {
	if h.forward.len() > 0 {
		return h.forward.entries[0]
	}
	return nil
}

// RemoveBack removes the entry (by identity) from the back stack.
func (h *History) RemoveBack(e *Entry) bool { return h.back.remove(e) }

// RemoveForward removes the entry (by identity) from the forward stack.
func (h *History) RemoveForward(e *Entry) bool { return h.forward.remove(e) }

// ClearForward drops the forward stack. Every committed new navigation does
// this.
func (h *History) ClearForward() { h.forward.clear() }

// Clear drops both stacks and the current slot.
func (h *History) Clear() {
	h.back.clear()
	h.forward.clear()
	h.current = nil
}

// BackEntries returns a copy of the back stack, oldest first.
func (h *History) BackEntries() []*Entry {
	return append([]*Entry(nil), h.back.entries...)
}

// ForwardEntries returns a copy of the forward stack, most recent first.
func (h *History) ForwardEntries() []*Entry {
	return append([]*Entry(nil), h.forward.entries...)
}

// Capacity returns the back-stack bound shared with the page cache.
func (h *History) Capacity() int { return h.capacity }
