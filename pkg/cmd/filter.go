package cmd

import (
	"fmt"
	"sync"
)

// Action consumes an event. An error aborts this entry's handling of the
// current event only.
type Action func(ev Event) error

// Predicate is a boolean test over an event, used to gate whether an action
// runs.
type Predicate func(ev Event) bool

// FilterEntry binds an event kind, an action and an ordered set of predicate
// filters. A command holds any number of entries; each is evaluated
// independently on every event, so one event may fire zero, one or many
// entries of the same command.
type FilterEntry struct {
	kind   Kind
	action Action

	mu      sync.RWMutex
	filters []Predicate
}

// NewFilterEntry builds an entry. A nil action is rejected outright; nil
// filters normalize to none.
func NewFilterEntry(kind Kind, action Action, filters ...Predicate) (*FilterEntry, error) {
	if action == nil {
		return nil, fmt.Errorf("filter entry: %w: nil action", ErrInvalidArgument)
	}
	fs := make([]Predicate, 0, len(filters))
	for _, f := range filters {
		if f != nil {
			fs = append(fs, f)
		}
	}
	return &FilterEntry{kind: kind, action: action, filters: fs}, nil
}

// EventKind returns the kind tag this entry accepts.
func (e *FilterEntry) EventKind() Kind { return e.kind }

// AddFilter appends a predicate. Filters cannot be removed.
func (e *FilterEntry) AddFilter(p Predicate) {
	if p == nil {
		return
	}
	e.mu.Lock()
	e.filters = append(e.filters, p)
	e.mu.Unlock()
}

// Notify runs the action if the event's kind matches and every filter passes,
// short-circuiting on the first filter that fails. It reports whether the
// action fired, along with the action's error.
func (e *FilterEntry) Notify(ev Event) (bool, error) {
	if ev == nil || ev.Kind() != e.kind {
		return false, nil
	}
	e.mu.RLock()
	filters := e.filters
	e.mu.RUnlock()
	for _, f := range filters {
		if !f(ev) {
			return false, nil
		}
	}
	return true, e.action(ev)
}
