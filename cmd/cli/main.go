// cmd/cli/main.go
//
// A local console front end for the command core: lines typed on stdin are
// dispatched as message events and replies are printed back. Useful for
// exercising prefix matching and group help without a Discord token.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/keshon/prefixkit/internal/config"
	"github.com/keshon/prefixkit/pkg/cmd"
)

// consoleReplier prints replies to stdout in a rough embed layout.
type consoleReplier struct{}

func (consoleReplier) Send(r *cmd.Reply) error {
	if r.Title != "" {
		fmt.Println("== " + r.Title + " ==")
	}
	if r.Body != "" {
		fmt.Println(r.Body)
	}
	for _, f := range r.Fields {
		fmt.Printf("%s: %s\n", f.Name, f.Value)
	}
	return nil
}

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	reg := cmd.NewRegistry(cfg.BotPrefix)
	if err := registerCommands(reg); err != nil {
		log.Fatal(err)
	}

	actor := cmd.Actor{ID: "console", Name: "console"}
	fmt.Printf("Type commands with the %q prefix, e.g. %secho hello. Ctrl-D exits.\n",
		reg.BotPrefix(), reg.BotPrefix())

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		reg.Dispatch(&cmd.MessageEvent{
			Content: line,
			Actor:   actor,
			Replier: consoleReplier{},
		})
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

func registerCommands(reg *cmd.Registry) error {
	echo, err := cmd.New(reg, cmd.Options{
		Name:        "Echo",
		Prefix:      "echo",
		Description: "Echoes the given arguments back, one per line.",
		Syntax:      "[words]",
		Examples:    []string{`hello "two words"`},
	})
	if err != nil {
		return err
	}
	if err := echo.OnMessage(func(m *cmd.MessageEvent) error {
		arguments, err := echo.Args(m.Content)
		if err != nil {
			return err
		}
		if len(arguments) == 0 {
			m.Reply(echo.MissingArgumentsReply())
			return nil
		}
		m.Reply(&cmd.Reply{Body: strings.Join(arguments, "\n"), Color: cmd.ColorSuccess})
		return nil
	}, echo.IsInvocation()); err != nil {
		return err
	}

	util, err := cmd.NewGroup(reg, "Utility", "util", "Small utility commands.")
	if err != nil {
		return err
	}
	upper, err := util.NewCommand(cmd.Options{
		Name:        "Upper",
		Prefix:      "upper",
		Description: "Uppercases the given arguments.",
		Syntax:      "[words]",
		Examples:    []string{"shout"},
	})
	if err != nil {
		return err
	}
	return upper.OnMessage(func(m *cmd.MessageEvent) error {
		arguments, err := upper.Args(m.Content)
		if err != nil {
			return err
		}
		if len(arguments) == 0 {
			m.Reply(upper.MissingArgumentsReply())
			return nil
		}
		m.Reply(&cmd.Reply{
			Body:  strings.ToUpper(strings.Join(arguments, " ")),
			Color: cmd.ColorSuccess,
		})
		return nil
	}, upper.IsInvocation())
}
