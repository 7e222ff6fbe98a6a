package cli

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Porges/vty/config"
)

// configView is the yaml rendering of a configuration record. Absent
// fields are omitted so that a fragment dump shows exactly what the
// source specified; byte sequences are escaped for printability.
type configView struct {
	Vmin           *int        `yaml:"vmin,omitempty"`
	Vtime          *int        `yaml:"vtime,omitempty"`
	Mouse          *bool       `yaml:"mouse,omitempty"`
	BracketedPaste *bool       `yaml:"bracketed-paste,omitempty"`
	DebugLog       *string     `yaml:"debug-log,omitempty"`
	InputFd        *uintptr    `yaml:"input-fd,omitempty"`
	OutputFd       *uintptr    `yaml:"output-fd,omitempty"`
	TermName       *string     `yaml:"term-name,omitempty"`
	InputMap       []entryView `yaml:"input-map,omitempty"`
}

type entryView struct {
	Term  string `yaml:"term,omitempty"`
	Bytes string `yaml:"bytes"`
	Event string `yaml:"event"`
}

func viewOf(cfg config.Config) configView {
	view := configView{
		Vmin:           cfg.Vmin,
		Vtime:          cfg.Vtime,
		Mouse:          cfg.Mouse,
		BracketedPaste: cfg.BracketedPaste,
		DebugLog:       cfg.DebugLog,
		InputFd:        cfg.InputFd,
		OutputFd:       cfg.OutputFd,
		TermName:       cfg.TermName,
	}
	for _, e := range cfg.InputMap {
		ev := entryView{
			Bytes: strconv.Quote(string(e.Bytes)),
			Event: e.Event.String(),
		}
		if e.Term != nil {
			ev.Term = *e.Term
		}
		view.InputMap = append(view.InputMap, ev)
	}
	return view
}

// renderYAML formats a configuration for human inspection.
func renderYAML(cfg config.Config) (string, error) {
	out, err := yaml.Marshal(viewOf(cfg))
	if err != nil {
		return "", err
	}
	return string(out), nil
}
