package cli

import (
	"fmt"
	"os"

	"github.com/Porges/vty/config"
)

// Flags for the `check` command line command, for `go-flags` to parse
// command line args into.
type CheckCommand struct {
	Args struct {
		File string `positional-arg-name:"<file>" required:"true" description:"the config file to parse"`
	} `positional-args:"true"`
}

// Executes the check command: parse one file in isolation and dump the
// fragment it contributes. The library would swallow a read failure;
// here it is surfaced, since inspecting a file you cannot read is
// pointless.
// (This gets called by `go-flags` when `check` is provided on the
// command line)
func (command *CheckCommand) Execute(args []string) error {
	data, err := os.ReadFile(command.Args.File)
	if err != nil {
		return fmt.Errorf("cannot read config file (%w)", err)
	}

	frag := config.Parse(data)
	out, err := renderYAML(frag)
	if err != nil {
		return err
	}
	if out == "{}\n" {
		fmt.Printf("%s contributes nothing\n", command.Args.File)
		return nil
	}
	fmt.Print(out)
	return nil
}
