package storage

import (
	"log"
	"time"

	"github.com/keshon/prefixkit/pkg/cmd"
)

// WithHistory records every message invocation of the wrapped action. A
// recording failure is logged and never blocks the command.
func WithHistory(store *Storage, command *cmd.Command) cmd.Middleware {
	return func(next cmd.Action) cmd.Action {
		return func(ev cmd.Event) error {
			if m, ok := ev.(*cmd.MessageEvent); ok {
				arguments, err := command.Args(m.Content)
				if err != nil {
					arguments = nil
				}
				err = store.AppendInvocation(InvocationRecord{
					UserID:   m.Actor.ID,
					Username: m.Actor.Name,
					Command:  command.Name(),
					Args:     arguments,
					Datetime: time.Now(),
				})
				if err != nil {
					log.Println("[ERR] Failed to record invocation:", err)
				}
			}
			return next(ev)
		}
	}
}
