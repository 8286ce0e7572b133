package nav

// History is the environment's navigation surface: where the initial route
// comes from and where route changes are written back.
type History interface {
	Location() string
	Push(path string)
}

// MemoryHistory is a browser-like history stack kept in memory.
type MemoryHistory struct {
	entries []string
	index   int
}

// NewMemoryHistory starts a history at location.
func NewMemoryHistory(location string) *MemoryHistory {
	return &MemoryHistory{entries: []string{Normalize(location)}}
}

// Location returns the current entry.
func (h *MemoryHistory) Location() string { return h.entries[h.index] }

// Push appends path after the current entry, dropping any forward entries.
func (h *MemoryHistory) Push(path string) {
	h.entries = append(h.entries[:h.index+1], path)
	h.index++
}

// Back moves one entry back and returns the new location. ok is false at
// the first entry.
func (h *MemoryHistory) Back() (location string, ok bool) {
	if h.index == 0 {
		return h.Location(), false
	}
	h.index--
	return h.Location(), true
}

// Forward moves one entry forward and returns the new location. ok is false
// at the last entry.
func (h *MemoryHistory) Forward() (location string, ok bool) {
	if h.index == len(h.entries)-1 {
		return h.Location(), false
	}
	h.index++
	return h.Location(), true
}

// Len returns the number of entries.
func (h *MemoryHistory) Len() int { return len(h.entries) }
