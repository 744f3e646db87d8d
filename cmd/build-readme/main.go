// Regenerates README.md from the registered demo commands. Run from the
// repository root, where README.md.tmpl lives.
package main

import (
	"log"

	"github.com/keshon/prefixkit/internal/commands"
	"github.com/keshon/prefixkit/internal/config"
	"github.com/keshon/prefixkit/internal/docs"
	"github.com/keshon/prefixkit/pkg/cmd"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	reg := cmd.NewRegistry(cfg.BotPrefix)
	if err := commands.Register(reg, cfg, nil); err != nil {
		log.Fatal(err)
	}

	if err := docs.UpdateReadme(reg); err != nil {
		log.Fatal(err)
	}
}
