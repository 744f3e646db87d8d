package cmd

import "log"

// Middleware wraps an action (e.g. logging, invocation history, metrics).
// The wrapped value remains an Action, so middlewares compose freely.
type Middleware func(Action) Action

// Apply wraps a in each middleware in turn; the last in the list becomes the
// outermost.
func Apply(a Action, mws ...Middleware) Action {
	for _, mw := range mws {
		a = mw(a)
	}
	return a
}

// WithLogging logs every invocation of the wrapped action for message events.
func WithLogging(commandName string) Middleware {
	return func(next Action) Action {
		return func(ev Event) error {
			if m, ok := ev.(*MessageEvent); ok {
				log.Printf("[INFO] Command %q invoked by %s (%s)", commandName, m.Actor.Name, m.Actor.ID)
			}
			return next(ev)
		}
	}
}
