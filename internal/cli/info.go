package cli

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2/terminfo"
	"github.com/rs/zerolog/log"

	// register the built-in terminfo database
	_ "github.com/gdamore/tcell/v2/terminfo/base"

	"github.com/Porges/vty/config"
)

// Flags for the `info` command line command, for `go-flags` to parse
// command line args into.
type InfoCommand struct {
	Term string `short:"t" long:"term" value-name:"<name>" description:"terminal name to probe (default: the effective term-name)"`
}

// Executes the info command: look up the terminfo entry for the
// effective (or given) terminal name and report its capabilities.
// (This gets called by `go-flags` when `info` is provided on the
// command line)
func (command *InfoCommand) Execute(args []string) error {
	name := command.Term
	if name == "" {
		cfg, err := config.LoadDefault()
		if err != nil {
			return fmt.Errorf("no terminal name to probe (%w)", err)
		}
		name = *cfg.TermName
	}

	ti, err := terminfo.LookupTerminfo(name)
	if err != nil {
		// Not fatal: the configuration is still usable, the terminal
		// layer will just have nothing to look capabilities up in.
		log.Warn().Err(err).Str("term", name).Msg("no terminfo entry")
		fmt.Printf("%s: no terminfo entry\n", name)
		return nil
	}

	fmt.Printf("name:    %s\n", ti.Name)
	if len(ti.Aliases) > 0 {
		fmt.Printf("aliases: %s\n", strings.Join(ti.Aliases, ", "))
	}
	fmt.Printf("size:    %dx%d\n", ti.Columns, ti.Lines)
	fmt.Printf("colors:  %d\n", ti.Colors)
	fmt.Printf("mouse:   %v\n", ti.Mouse != "")
	return nil
}
