// Package cli provides the command-line interface for vty-config.
package cli

type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	ShowCommand    ShowCommand    `command:"show" subcommands-optional:"true"`
	CheckCommand   CheckCommand   `command:"check" subcommands-optional:"true"`
	InfoCommand    InfoCommand    `command:"info" subcommands-optional:"true"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true"`
}

var Opts CommandLineOpts
