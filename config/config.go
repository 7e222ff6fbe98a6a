// Package config implements the vty configuration language and its
// sources: a line-oriented directive format (`map`, `debugLog`) parsed
// tolerantly from files and the environment, and the merge rules that
// combine any number of partial configurations into one.
package config

import "github.com/Porges/vty/input"

// A Config is one partially-specified configuration record. Every
// scalar field is a pointer, nil meaning "not specified here": an
// absent field survives merging until some later source overrides it,
// and the terminal layer applies its own defaults to whatever is still
// absent. InputMap is the exception, it only ever accumulates.
//
// A Config produced by one parse pass or source is called a fragment;
// the zero Config is the all-absent fragment and the identity of
// Merge.
type Config struct {
	// Vmin is the minimum number of bytes a terminal read returns.
	Vmin *int
	// Vtime is the read timeout, in the hundredths of a second the
	// termios layer expects. It is passed through unconverted.
	Vtime *int
	// Mouse enables mouse event reporting.
	Mouse *bool
	// BracketedPaste enables bracketed paste mode.
	BracketedPaste *bool
	// DebugLog is the path the terminal layer should log to.
	DebugLog *string
	// InputMap collects the `map` directive entries, in source order.
	InputMap input.Table
	// InputFd and OutputFd are the stream handles the terminal layer
	// should use. They are carried opaquely, never opened or checked.
	InputFd  *uintptr
	OutputFd *uintptr
	// TermName is the terminal type name.
	TermName *string
}

// Merge combines c with a later, higher-precedence fragment: for every
// scalar field the override's value wins when present, and the input
// maps are concatenated with c's entries first. Merge is associative
// and the zero Config is its identity, so folding any ordered sequence
// of fragments is well-defined.
func (c Config) Merge(override Config) Config {
	result := c
	result.Vmin = pick(c.Vmin, override.Vmin)
	result.Vtime = pick(c.Vtime, override.Vtime)
	result.Mouse = pick(c.Mouse, override.Mouse)
	result.BracketedPaste = pick(c.BracketedPaste, override.BracketedPaste)
	result.DebugLog = pick(c.DebugLog, override.DebugLog)
	result.InputFd = pick(c.InputFd, override.InputFd)
	result.OutputFd = pick(c.OutputFd, override.OutputFd)
	result.TermName = pick(c.TermName, override.TermName)

	if len(c.InputMap) > 0 || len(override.InputMap) > 0 {
		table := make(input.Table, 0, len(c.InputMap)+len(override.InputMap))
		table = append(table, c.InputMap...)
		table = append(table, override.InputMap...)
		result.InputMap = table
	}

	return result
}

// MergeAll folds fragments left to right into one configuration.
func MergeAll(fragments []Config) Config {
	var result Config
	for _, f := range fragments {
		result = result.Merge(f)
	}
	return result
}

func pick[T any](base, override *T) *T {
	if override != nil {
		return override
	}
	return base
}
