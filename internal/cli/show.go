package cli

import (
	"fmt"

	"github.com/Porges/vty/config"
)

// Flags for the `show` command line command, for `go-flags` to parse
// command line args into.
type ShowCommand struct {
	NoBaseline bool `long:"no-baseline" description:"omit the TERM-derived baseline and show only what the sources specify"`
}

// Executes the show command.
// (This gets called by `go-flags` when `show` is provided on the command
// line)
func (command *ShowCommand) Execute(args []string) error {
	var cfg config.Config
	if command.NoBaseline {
		cfg = config.Load()
	} else {
		var err error
		cfg, err = config.LoadDefault()
		if err != nil {
			return fmt.Errorf("cannot build the baseline configuration (%w)", err)
		}
	}

	out, err := renderYAML(cfg)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
