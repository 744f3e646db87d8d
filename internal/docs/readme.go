// Package docs generates the command reference section of README.md from a
// live registry, so the README never drifts from the registered commands.
package docs

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/keshon/prefixkit/pkg/cmd"
)

// RenderSections renders the markdown command reference: standalone commands
// first, then one section per group. Hidden commands are left out. Groups are
// sorted by prefix so the output is stable across runs.
func RenderSections(reg *cmd.Registry) string {
	var buf bytes.Buffer

	var standalone []*cmd.Command
	for _, c := range reg.Commands() {
		if c.Parent() == nil && !c.Hidden() {
			standalone = append(standalone, c)
		}
	}
	if len(standalone) > 0 {
		buf.WriteString("### Commands\n\n")
		for _, c := range standalone {
			writeCommandLine(&buf, c)
		}
	}

	groups := reg.Groups()
	sort.Slice(groups, func(i, j int) bool { return groups[i].Prefix() < groups[j].Prefix() })
	for _, g := range groups {
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(&buf, "### %s\n\n", g.Name())
		if g.Description() != "" {
			fmt.Fprintf(&buf, "%s\n\n", g.Description())
		}
		for _, c := range g.Children() {
			writeCommandLine(&buf, c)
		}
		writeCommandLine(&buf, g.Help())
	}

	return buf.String()
}

func writeCommandLine(buf *bytes.Buffer, c *cmd.Command) {
	fmt.Fprintf(buf, "- **`%s`** — %s\n", c.FullSyntax(), strings.TrimSpace(c.Description()))
}

// UpdateReadme renders README.md from README.md.tmpl, filling in
// {{.CommandSections}} with the generated reference.
func UpdateReadme(reg *cmd.Registry) error {
	tmplPath := filepath.Join(".", "README.md.tmpl")
	outPath := filepath.Join(".", "README.md")

	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		return err
	}

	data := struct {
		CommandSections string
	}{
		CommandSections: RenderSections(reg),
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return err
	}

	log.Println("[INFO] README.md updated with current commands")
	return nil
}
