// Package commands assembles the demo command set shared by the bot binaries
// and the docs generator: a standalone ping, a dice group, a mod-gated
// announce command and a per-user invocation history.
package commands

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/keshon/prefixkit/internal/config"
	"github.com/keshon/prefixkit/internal/storage"
	"github.com/keshon/prefixkit/pkg/cmd"
)

// Register wires every demo command into reg. When store is nil the commands
// are registered without invocation recording and the history command carries
// no action; the docs generator uses that mode.
func Register(reg *cmd.Registry, cfg *config.Config, store *storage.Storage) error {
	if err := registerPing(reg, store); err != nil {
		return err
	}
	if err := registerDice(reg, store); err != nil {
		return err
	}
	if err := registerAnnounce(reg, cfg, store); err != nil {
		return err
	}
	return registerHistory(reg, store)
}

// withRecording composes the standard middleware chain for a demo command.
func withRecording(action cmd.Action, store *storage.Storage, c *cmd.Command) cmd.Action {
	mws := []cmd.Middleware{cmd.WithLogging(c.Name())}
	if store != nil {
		mws = append([]cmd.Middleware{storage.WithHistory(store, c)}, mws...)
	}
	return cmd.Apply(action, mws...)
}

func registerPing(reg *cmd.Registry, store *storage.Storage) error {
	ping, err := cmd.New(reg, cmd.Options{
		Name:        "Ping",
		Prefix:      "ping",
		Description: "Checks whether the bot is alive.",
	})
	if err != nil {
		return err
	}

	action := func(ev cmd.Event) error {
		m := ev.(*cmd.MessageEvent)
		m.Reply(&cmd.Reply{Title: "Pong!", Color: cmd.ColorSuccess})
		return nil
	}
	return ping.On(cmd.KindMessage, withRecording(action, store, ping),
		cmd.NotBot(), ping.IsInvocation())
}

var diceFormula = regexp.MustCompile(`(?i)^(\d*)d(\d+)$`)

func registerDice(reg *cmd.Registry, store *storage.Storage) error {
	dice, err := cmd.NewGroup(reg, "Dice", "dice", "Dice rolling and other game mechanics.")
	if err != nil {
		return err
	}

	roll, err := dice.NewCommand(cmd.Options{
		Name:        "Roll",
		Prefix:      "roll",
		Description: "Rolls dice using a formula like `2d6`.",
		Syntax:      "[formula]",
		Examples:    []string{"2d6", "d20"},
	})
	if err != nil {
		return err
	}

	action := func(ev cmd.Event) error {
		m := ev.(*cmd.MessageEvent)
		arguments, err := roll.Args(m.Content)
		if err != nil {
			return err
		}
		if len(arguments) == 0 {
			m.Reply(roll.MissingArgumentsReply())
			return nil
		}

		total, rolls, err := rollDice(arguments[0])
		if err != nil {
			m.Reply(roll.SyntaxErrorReply("Invalid Formula Error"))
			return nil
		}
		m.Reply(&cmd.Reply{
			Title: fmt.Sprintf("🎲 You rolled %d", total),
			Body:  fmt.Sprintf("%s → %s", arguments[0], strings.Join(rolls, " + ")),
			Color: cmd.ColorSuccess,
		})
		return nil
	}
	return roll.On(cmd.KindMessage, withRecording(action, store, roll),
		cmd.NotBot(), roll.IsInvocation())
}

// rollDice evaluates a single NdM formula, N defaulting to 1.
func rollDice(formula string) (int, []string, error) {
	parts := diceFormula.FindStringSubmatch(formula)
	if parts == nil {
		return 0, nil, fmt.Errorf("cannot parse formula %q", formula)
	}
	count := 1
	if parts[1] != "" {
		var err error
		if count, err = strconv.Atoi(parts[1]); err != nil {
			return 0, nil, err
		}
	}
	sides, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, nil, err
	}
	if count < 1 || count > 100 || sides < 2 {
		return 0, nil, fmt.Errorf("formula %q out of range", formula)
	}

	total := 0
	rolls := make([]string, count)
	for i := 0; i < count; i++ {
		n := rand.Intn(sides) + 1
		total += n
		rolls[i] = strconv.Itoa(n)
	}
	return total, rolls, nil
}

func registerAnnounce(reg *cmd.Registry, cfg *config.Config, store *storage.Storage) error {
	announce, err := cmd.New(reg, cmd.Options{
		Name:        "Announce",
		Prefix:      "announce",
		Description: "Repeats the given message as a highlighted announcement. Mods only.",
		Syntax:      "[message]",
		Examples:    []string{`"server restarts in 5 minutes"`},
	})
	if err != nil {
		return err
	}
	if cfg.ModRoleID != "" {
		announce.RequireRoles(cfg.ModRoleID)
	}
	if cfg.BlacklistRoleID != "" {
		announce.BlacklistRoles(cfg.BlacklistRoleID)
	}

	action := func(ev cmd.Event) error {
		m := ev.(*cmd.MessageEvent)
		if err := announce.Enforce(m); err != nil {
			return err
		}
		arguments, err := announce.Args(m.Content)
		if err != nil {
			return err
		}
		if len(arguments) == 0 {
			m.Reply(announce.MissingArgumentsReply())
			return nil
		}
		m.Reply(&cmd.Reply{
			Title: "📢 Announcement",
			Body:  strings.Join(arguments, " "),
			Color: cmd.ColorPrompt,
		})
		return nil
	}
	return announce.On(cmd.KindMessage, withRecording(action, store, announce),
		cmd.NotBot(), announce.IsInvocation())
}

func registerHistory(reg *cmd.Registry, store *storage.Storage) error {
	history, err := cmd.New(reg, cmd.Options{
		Name:        "History",
		Prefix:      "history",
		Description: "Shows your recent command invocations.",
	})
	if err != nil {
		return err
	}
	if store == nil {
		return nil
	}

	action := func(ev cmd.Event) error {
		m := ev.(*cmd.MessageEvent)
		records, err := store.FetchInvocations(m.Actor.ID)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			m.Reply(&cmd.Reply{Body: "No recorded invocations yet.", Color: cmd.ColorPrompt})
			return nil
		}
		lines := make([]string, len(records))
		for i, rec := range records {
			lines[i] = fmt.Sprintf("%s — %s %s",
				rec.Datetime.Format(time.DateTime), rec.Command, strings.Join(rec.Args, " "))
		}
		m.Reply(&cmd.Reply{
			Title: fmt.Sprintf("Recent commands for %s", m.Actor.Name),
			Body:  strings.Join(lines, "\n"),
			Color: cmd.ColorPrompt,
		})
		return nil
	}
	return history.On(cmd.KindMessage, cmd.Apply(action, cmd.WithLogging(history.Name())),
		cmd.NotBot(), history.IsInvocation())
}
