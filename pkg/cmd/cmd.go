// Package cmd provides a transport-agnostic prefix-command core: commands and
// command groups are registered into a Registry, inbound chat events are fanned
// out to every command's filter entries, and a command decides for itself
// whether the message invokes it (prefix match), what the arguments are, and
// whether the actor's roles allow it to run. How events arrive and how replies
// are delivered (Discord, CLI, tests) is defined by adapters.
package cmd

import (
	"fmt"
	"strings"
	"sync"

	"github.com/keshon/prefixkit/pkg/args"
)

// Options describes a command to be registered. Name and Prefix are required;
// everything else is optional display metadata. Group, when set, is the prefix
// of the owning group and is resolved through the registry on demand, so a
// command never holds its parent directly.
type Options struct {
	Name        string
	Prefix      string
	Description string
	Syntax      string
	Examples    []string
	Group       string
	Hidden      bool
}

// Command is a leaf, invokable unit of behavior. A command carries no handler
// of its own; behavior is attached as filter entries via On/OnMessage, each
// guarded by its own predicates. Role sets and entries may be extended after
// construction, but the expected lifecycle is: assemble every command, then
// start the transport. Mutation during live dispatch is guarded by a read/write
// lock but provides no transactional guarantees.
type Command struct {
	name        string
	prefix      string
	description string
	syntax      string
	examples    []string
	group       string
	hidden      bool

	reg *Registry

	mu               sync.RWMutex
	requiredRoles    []string
	blacklistedRoles []string
	onPermissionFail Action
	entries          []*FilterEntry
}

// New validates opts, builds the command and registers it. A missing name or
// prefix is a construction error meant to abort startup, not to be retried.
func New(reg *Registry, opts Options) (*Command, error) {
	if reg == nil {
		return nil, fmt.Errorf("command: %w: nil registry", ErrInvalidArgument)
	}
	if opts.Name == "" {
		return nil, fmt.Errorf("command: name is required")
	}
	if opts.Prefix == "" {
		return nil, fmt.Errorf("command %q: prefix is required", opts.Name)
	}

	c := &Command{
		name:        opts.Name,
		prefix:      opts.Prefix,
		description: opts.Description,
		syntax:      opts.Syntax,
		examples:    append([]string(nil), opts.Examples...),
		group:       opts.Group,
		hidden:      opts.Hidden,
		reg:         reg,
	}
	c.onPermissionFail = c.defaultPermissionFail
	reg.addCommand(c)
	return c, nil
}

func (c *Command) Name() string        { return c.name }
func (c *Command) Prefix() string      { return c.prefix }
func (c *Command) Description() string { return c.description }
func (c *Command) Syntax() string      { return c.syntax }
func (c *Command) Hidden() bool        { return c.hidden }

// Examples returns a copy of the example invocations, without prefixes.
func (c *Command) Examples() []string {
	return append([]string(nil), c.examples...)
}

// Parent resolves the owning group through the registry. Returns nil for a
// standalone command or when the group has not been registered yet.
func (c *Command) Parent() *Group {
	if c.group == "" {
		return nil
	}
	return c.reg.Group(c.group)
}

// On appends a filter entry for the given event kind. Entries are evaluated in
// insertion order and independently of each other; none can be removed.
func (c *Command) On(kind Kind, action Action, filters ...Predicate) error {
	entry, err := NewFilterEntry(kind, action, filters...)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.entries = append(c.entries, entry)
	c.mu.Unlock()
	return nil
}

// OnMessage is On for message events with a typed action.
func (c *Command) OnMessage(action func(*MessageEvent) error, filters ...Predicate) error {
	if action == nil {
		return fmt.Errorf("command %q: %w: nil action", c.name, ErrInvalidArgument)
	}
	return c.On(KindMessage, func(ev Event) error {
		m, ok := ev.(*MessageEvent)
		if !ok {
			return nil
		}
		return action(m)
	}, filters...)
}

// Entries returns a snapshot of the command's filter entries.
func (c *Command) Entries() []*FilterEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*FilterEntry(nil), c.entries...)
}

// Matches reports whether raw invokes this command: either exactly the
// composed prefix (bot prefix, group prefix, command prefix) or that prefix
// followed by a space and arguments.
func (c *Command) Matches(raw string) bool {
	return MatchesInvocation(raw, c.reg.BotPrefix(), c.group, c.prefix)
}

// IsInvocation returns a predicate over message events delegating to Matches.
func (c *Command) IsInvocation() Predicate {
	return func(ev Event) bool {
		m, ok := ev.(*MessageEvent)
		return ok && c.Matches(m.Content)
	}
}

// Args strips the composed prefix from raw and splits the remainder into
// arguments. A no-argument invocation yields an empty slice. Raw must already
// have been accepted by Matches.
func (c *Command) Args(raw string) ([]string, error) {
	rest, err := StripInvocation(raw, c.reg.BotPrefix(), c.group, c.prefix)
	if err != nil {
		return nil, err
	}
	if rest == "" {
		return []string{}, nil
	}
	return args.Split(rest), nil
}

// FullPrefix returns the composed invocation prefix for display purposes.
func (c *Command) FullPrefix() string {
	return composedPrefix(c.reg.BotPrefix(), c.group, c.prefix)
}

// FullSyntax returns the composed prefix followed by the declared syntax.
func (c *Command) FullSyntax() string {
	if c.syntax == "" {
		return c.FullPrefix()
	}
	return c.FullPrefix() + " " + c.syntax
}

// Info renders the command's info block, used by the group help command.
// Returns nil when the command opted out of introspection.
func (c *Command) Info() *Reply {
	if c.hidden {
		return nil
	}
	r := &Reply{
		Title: fmt.Sprintf("Command: %q", c.name),
		Body:  c.description,
		Color: ColorPrompt,
	}
	if parent := c.Parent(); parent != nil {
		r.Fields = append(r.Fields, Field{Name: "Command group", Value: parent.Name()})
	}
	r.Fields = append(r.Fields,
		Field{Name: "Prefix", Value: c.prefix},
		Field{Name: "Syntax", Value: monospace(c.FullSyntax())},
	)
	if len(c.examples) > 0 {
		lines := make([]string, len(c.examples))
		for i, ex := range c.examples {
			lines[i] = monospace(c.FullPrefix() + " " + ex)
		}
		name := "Example"
		if len(c.examples) > 1 {
			name = "Examples"
		}
		r.Fields = append(r.Fields, Field{Name: name, Value: strings.Join(lines, "\n")})
	}
	return r
}

// ErrorReply builds an error-colored reply with the given title and body.
func (c *Command) ErrorReply(title, body string) *Reply {
	return &Reply{Title: title, Body: body, Color: ColorError}
}

// SyntaxErrorReply builds an error reply that restates the command's composed
// syntax and, for grouped commands, points at the group help command.
func (c *Command) SyntaxErrorReply(title string) *Reply {
	r := c.ErrorReply(title, "")
	if parent := c.Parent(); parent != nil {
		r.Body = "Run " + monospace(c.reg.BotPrefix()+parent.Prefix()+" help "+c.prefix) +
			" to see a better description of the command."
	}
	r.Fields = append(r.Fields, Field{Name: "Syntax", Value: monospace(c.FullSyntax())})
	return r
}

// MissingArgumentsReply is SyntaxErrorReply with the standard title.
func (c *Command) MissingArgumentsReply() *Reply {
	return c.SyntaxErrorReply("Missing Argument(s) Error")
}
