package cmd

import (
	"fmt"
	"strings"
)

// Group is a namespace owning a set of commands reachable via its own prefix.
// Groups cannot nest. Children are resolved through the registry by group
// prefix, so the group and its commands never hold each other directly. Every
// group ships a built-in help command.
type Group struct {
	name        string
	prefix      string
	description string
	reg         *Registry
	help        *Command
}

// NewGroup validates, registers the group and attaches its help command.
func NewGroup(reg *Registry, name, prefix, description string) (*Group, error) {
	if reg == nil {
		return nil, fmt.Errorf("group: %w: nil registry", ErrInvalidArgument)
	}
	if name == "" {
		return nil, fmt.Errorf("group: name is required")
	}
	if prefix == "" {
		return nil, fmt.Errorf("group %q: prefix is required", name)
	}

	g := &Group{name: name, prefix: prefix, description: description, reg: reg}
	if err := reg.addGroup(g); err != nil {
		return nil, err
	}

	help, err := New(reg, Options{
		Name:        "Help",
		Prefix:      "help",
		Description: "Gives information about the specified command.",
		Syntax:      "[command]",
		Examples:    []string{"help"},
		Group:       prefix,
	})
	if err != nil {
		return nil, err
	}
	if err := help.OnMessage(g.handleHelp, NotBot(), help.IsInvocation()); err != nil {
		return nil, err
	}
	g.help = help
	return g, nil
}

func (g *Group) Name() string        { return g.name }
func (g *Group) Prefix() string      { return g.prefix }
func (g *Group) Description() string { return g.description }

// Help returns the group's built-in help command.
func (g *Group) Help() *Command { return g.help }

// NewCommand registers a command owned by this group.
func (g *Group) NewCommand(opts Options) (*Command, error) {
	opts.Group = g.prefix
	return New(g.reg, opts)
}

// Children returns the group's commands in registration order, excluding the
// built-in help command. Duplicate prefixes among children are permitted by
// the model; detection is left to the caller.
func (g *Group) Children() []*Command {
	var out []*Command
	for _, c := range g.reg.Commands() {
		if c.group == g.prefix && c != g.help {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the first child whose prefix equals target exactly, or nil.
// Lookup is case-sensitive, consistent with prefix matching.
func (g *Group) Find(target string) *Command {
	for _, c := range g.Children() {
		if c.Prefix() == target {
			return c
		}
	}
	return nil
}

// handleHelp answers a help invocation with exactly one reply: the group
// listing for a bare "help", or the info block of the child named by the first
// argument.
func (g *Group) handleHelp(ev *MessageEvent) error {
	arguments, err := g.help.Args(ev.Content)
	if err != nil {
		return err
	}

	var reply *Reply
	switch {
	case len(arguments) == 0 && g.help.Parent() != nil:
		reply = g.listingReply()
	case len(arguments) == 0:
		reply = g.help.Info()
	default:
		target := arguments[0]
		child := g.Find(target)
		switch {
		case child == nil:
			reply = &Reply{
				Body:  fmt.Sprintf("Command %q not found.", target),
				Color: ColorError,
			}
		case child.Info() == nil:
			reply = &Reply{
				Body:  fmt.Sprintf("Information about command %q is hidden.", target),
				Color: ColorError,
			}
		default:
			reply = child.Info()
		}
	}

	ev.Reply(reply)
	return nil
}

// listingReply renders the group overview: name, description, prefix and the
// prefixes of every child.
func (g *Group) listingReply() *Reply {
	r := &Reply{
		Title: fmt.Sprintf("Command Group: %q", g.name),
		Body:  g.description,
		Color: ColorPrompt,
	}
	r.Fields = append(r.Fields, Field{Name: "Prefix", Value: g.prefix})

	children := g.Children()
	if len(children) == 0 {
		r.Fields = append(r.Fields, Field{Name: "Commands", Value: "This command group contains no commands."})
		return r
	}
	prefixes := make([]string, len(children))
	for i, c := range children {
		prefixes[i] = monospace(c.Prefix())
	}
	r.Fields = append(r.Fields, Field{Name: "Commands", Value: strings.Join(prefixes, ", ")})
	return r
}
