package menustack

// StackEntry is one screen on the stack. ID identifies the screen instance
// for its whole lifetime; indices shift, IDs do not.
type StackEntry struct {
	ID     uint64
	Name   string
	Screen Screen
	nav    *navigator
}

// Stack is the ordered sequence of screens; the last entry is the top.
// It is owned by the Controller and only mutated during the apply phase.
type Stack struct {
	entries []StackEntry
	nextID  uint64
}

// NewStack creates a new empty stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0, 8),
	}
}

// Push adds a screen on top and returns its entry.
func (s *Stack) Push(screen Screen, nav *navigator) StackEntry {
	s.nextID++
	entry := StackEntry{
		ID:     s.nextID,
		Name:   nameOf(screen),
		Screen: screen,
		nav:    nav,
	}
	s.entries = append(s.entries, entry)
	return entry
}

// Pop removes and returns the top entry.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = StackEntry{}
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries and returns them, top first.
func (s *Stack) Clear() []StackEntry {
	removed := make([]StackEntry, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		removed = append(removed, s.entries[i])
	}
	s.entries = s.entries[:0]
	return removed
}

// Screens returns all screens, bottom to top.
func (s *Stack) Screens() []Screen {
	screens := make([]Screen, len(s.entries))
	for i, e := range s.entries {
		screens[i] = e.Screen
	}
	return screens
}

// Visible returns the screens that are drawn and ticked: from the nearest
// full-screen entry at or below the top, up to the top. If no screen is
// full-screen the whole stack is visible.
func (s *Stack) Visible() []Screen {
	start := 0
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Screen.FullScreen() {
			start = i
			break
		}
	}
	screens := make([]Screen, 0, len(s.entries)-start)
	for _, e := range s.entries[start:] {
		screens = append(screens, e.Screen)
	}
	return screens
}
