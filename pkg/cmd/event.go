package cmd

import "log"

// Kind tags an event variant. Filter entries match on this tag instead of
// inspecting runtime types.
type Kind string

// KindMessage tags inbound chat messages.
const KindMessage Kind = "message"

// Event is an inbound occurrence offered to every registered command.
type Event interface {
	Kind() Kind
}

// Actor is the identity that produced an event, with its current role set.
type Actor struct {
	ID    string
	Name  string
	Bot   bool
	Roles []string
}

// Replier delivers a reply back to wherever the event came from. Delivery is
// the transport's concern; the core neither retries nor waits for confirmation.
type Replier interface {
	Send(r *Reply) error
}

// MessageEvent is a chat message. Content is the raw text including the bot
// prefix; the core reads nothing beyond content, actor and the reply
// capability.
type MessageEvent struct {
	Content string
	Actor   Actor
	Replier Replier
}

func (*MessageEvent) Kind() Kind { return KindMessage }

// Reply sends r through the event's replier, fire-and-forget. Send failures
// are logged and dropped; a nil replier is a no-op.
func (e *MessageEvent) Reply(r *Reply) {
	if e.Replier == nil {
		return
	}
	if err := e.Replier.Send(r); err != nil {
		log.Println("[ERR] Failed to send reply:", err)
	}
}

// NotBot passes message events whose actor is not an automated participant.
func NotBot() Predicate {
	return func(ev Event) bool {
		m, ok := ev.(*MessageEvent)
		return ok && !m.Actor.Bot
	}
}
