package registry

import (
	"sync"

	"monitorscreen/internal/telemetry"
)

// DisplayThreshold is the parameter count from which only the selected
// parameter is rendered. Below it every reading is shown as it arrives.
const DisplayThreshold = 2

// Entry is the most recent reading for a parameter
type Entry struct {
	Name  string
	Value string
	Time  string
}

// Registry tracks every named parameter seen on the connection
type Registry struct {
	mu        sync.RWMutex
	names     []string
	entries   map[string]Entry
	selected  string
	threshold int
}

func New() *Registry {
	return &Registry{
		names:     make([]string, 0),
		entries:   make(map[string]Entry),
		threshold: DisplayThreshold,
	}
}

// Observe records msg and reports whether its name was seen for the first time.
// Messages without a name are not tracked.
func (r *Registry) Observe(msg telemetry.Message) bool {
	if msg.Name == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, known := r.entries[msg.Name]
	if !known {
		r.names = append(r.names, msg.Name)
	}
	r.entries[msg.Name] = Entry{Name: msg.Name, Value: msg.Value, Time: msg.Time}

	return !known
}

// Select makes name the displayed parameter and returns its last reading.
func (r *Registry) Select(name string) Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.selected = name
	entry, ok := r.entries[name]
	if !ok {
		return Entry{Name: name}
	}
	return entry
}

func (r *Registry) Selected() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.selected
}

func (r *Registry) Last(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[name]
	return entry, ok
}

// Names returns parameter names in first-seen order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// ShouldDisplay reports whether a reading for name replaces the on-screen value.
func (r *Registry) ShouldDisplay(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.selected == name || len(r.names) < r.threshold
}
