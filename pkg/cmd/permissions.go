package cmd

import (
	"fmt"
	"log"
	"strings"
)

// Authorize reports whether an actor holding actorRoles may pass a gate: any
// blacklisted role rejects immediately, otherwise every required role must be
// held. An empty required set passes trivially.
func Authorize(actorRoles, required, blacklisted []string) bool {
	have := make(map[string]struct{}, len(actorRoles))
	for _, r := range actorRoles {
		have[r] = struct{}{}
	}
	for _, r := range blacklisted {
		if _, ok := have[r]; ok {
			return false
		}
	}
	for _, r := range required {
		if _, ok := have[r]; !ok {
			return false
		}
	}
	return true
}

// RequireRoles adds roles the actor must hold to invoke the command.
func (c *Command) RequireRoles(roles ...string) {
	c.mu.Lock()
	c.requiredRoles = append(c.requiredRoles, roles...)
	c.mu.Unlock()
}

// BlacklistRoles adds roles that bar an actor from invoking the command.
func (c *Command) BlacklistRoles(roles ...string) {
	c.mu.Lock()
	c.blacklistedRoles = append(c.blacklistedRoles, roles...)
	c.mu.Unlock()
}

// RequiredRoles returns a copy of the required role set.
func (c *Command) RequiredRoles() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.requiredRoles...)
}

// BlacklistedRoles returns a copy of the blacklisted role set.
func (c *Command) BlacklistedRoles() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.blacklistedRoles...)
}

// SetOnPermissionFail replaces the action run when Enforce rejects an actor.
func (c *Command) SetOnPermissionFail(a Action) error {
	if a == nil {
		return fmt.Errorf("command %q: %w: nil permission fail action", c.name, ErrInvalidArgument)
	}
	c.mu.Lock()
	c.onPermissionFail = a
	c.mu.Unlock()
	return nil
}

// Authorize evaluates the actor against the command's role gate.
func (c *Command) Authorize(a Actor) bool {
	c.mu.RLock()
	required, blacklisted := c.requiredRoles, c.blacklistedRoles
	c.mu.RUnlock()
	return Authorize(a.Roles, required, blacklisted)
}

// Enforce authorizes the event's actor. On rejection it runs the configured
// permission-fail action (by default a role-permission error reply) and
// returns ErrPermissionDenied so the caller aborts handling of this event.
func (c *Command) Enforce(ev *MessageEvent) error {
	if c.Authorize(ev.Actor) {
		return nil
	}
	c.mu.RLock()
	fail := c.onPermissionFail
	c.mu.RUnlock()
	if fail != nil {
		if err := fail(ev); err != nil {
			log.Printf("[ERR] Permission fail action for %q: %v", c.name, err)
		}
	}
	return fmt.Errorf("command %q: %w", c.name, ErrPermissionDenied)
}

func (c *Command) defaultPermissionFail(ev Event) error {
	m, ok := ev.(*MessageEvent)
	if !ok {
		return nil
	}
	m.Reply(c.PermissionErrorReply())
	return nil
}

// PermissionErrorReply describes the roles required for or blacklisted from
// invoking the command.
func (c *Command) PermissionErrorReply() *Reply {
	required, blacklisted := c.RequiredRoles(), c.BlacklistedRoles()
	var b strings.Builder
	if len(required) > 0 {
		fmt.Fprintf(&b, "The role%s %s is required to invoke the command. ",
			plural(len(required)), joinMonospace(required))
	}
	if len(blacklisted) > 0 {
		fmt.Fprintf(&b, "The role%s %s is blacklisted from invoking the command.",
			plural(len(blacklisted)), joinMonospace(blacklisted))
	}
	body := strings.TrimSpace(b.String())
	if body == "" {
		body = "Unidentified permission error."
	}
	return &Reply{Title: "Role Permission Error", Body: body, Color: ColorError}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func joinMonospace(items []string) string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = monospace(s)
	}
	return strings.Join(out, ", ")
}
