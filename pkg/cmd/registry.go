package cmd

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

// DefaultBotPrefix is used when a registry is built with an empty prefix.
const DefaultBotPrefix = "&"

// Registry is the collection of live commands and groups for one bot
// instance. It receives every inbound event and offers it to every command's
// filter entries. Construct one registry per bot; nothing here is global.
//
// Registration and dispatch are guarded by a read/write lock, but the expected
// discipline is: register everything, then start the transport. Registering
// during live dispatch is safe only in the sense that it will not race.
type Registry struct {
	mu        sync.RWMutex
	botPrefix string
	commands  []*Command
	groups    map[string]*Group
}

// NewRegistry builds an empty registry with the given global bot prefix.
func NewRegistry(botPrefix string) *Registry {
	if botPrefix == "" {
		botPrefix = DefaultBotPrefix
	}
	return &Registry{
		botPrefix: botPrefix,
		groups:    make(map[string]*Group),
	}
}

// BotPrefix returns the global invocation prefix.
func (r *Registry) BotPrefix() string { return r.botPrefix }

func (r *Registry) addCommand(c *Command) {
	r.mu.Lock()
	r.commands = append(r.commands, c)
	r.mu.Unlock()
}

func (r *Registry) addGroup(g *Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.groups[g.prefix]; exists {
		return fmt.Errorf("group prefix %q already registered", g.prefix)
	}
	r.groups[g.prefix] = g
	return nil
}

// Group returns the group registered under prefix, or nil.
func (r *Registry) Group(prefix string) *Group {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.groups[prefix]
}

// Groups returns all registered groups.
func (r *Registry) Groups() []*Group {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Group, 0, len(r.groups))
	for _, g := range r.groups {
		out = append(out, g)
	}
	return out
}

// Commands returns all registered commands in registration order.
func (r *Registry) Commands() []*Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Command(nil), r.commands...)
}

// Dispatch offers ev to every filter entry of every registered command,
// synchronously and in a single pass. An action's error is confined to that
// command and event: it is logged and the fan-out continues.
func (r *Registry) Dispatch(ev Event) {
	for _, c := range r.Commands() {
		for _, entry := range c.Entries() {
			_, err := entry.Notify(ev)
			switch {
			case err == nil:
			case errors.Is(err, ErrPermissionDenied):
				log.Printf("[WARN] %v", err)
			default:
				log.Printf("[ERR] Command %q: %v", c.Name(), err)
			}
		}
	}
}
