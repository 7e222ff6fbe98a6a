package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
)

// ErrNoTermName is returned by BaselineConfig when the TERM
// environment variable is unset: without a terminal name no capability
// lookup can ever succeed, so unlike every other configuration problem
// this one is not silently absorbed.
var ErrNoTermName = errors.New("TERM environment variable not set")

// environment captures the variables the loader consumes. TERM is the
// terminal name; VTY_CONFIG_FILE names an extra config file to parse;
// VTY_DEBUG_LOG is taken verbatim as the debug log path, bypassing the
// directive grammar.
type environment struct {
	Term       string `env:"TERM"`
	ConfigFile string `env:"VTY_CONFIG_FILE"`
	DebugLog   string `env:"VTY_DEBUG_LOG"`
}

func readEnvironment() environment {
	var e environment
	if err := env.Parse(&e); err != nil {
		log.Debug().Err(err).Msg("could not read environment variables")
	}
	return e
}

// ParseFile reads and parses one configuration file. A file that is
// missing or unreadable contributes the all-absent fragment; that is
// never an error, only a debug-level log line.
func ParseFile(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("skipping unreadable config file")
		return Config{}
	}
	return Parse(data)
}

// UserConfigPath returns the path of the user's config file,
// `vty/config` under the platform config directory.
func UserConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "vty", "config"), nil
}

func userConfig() Config {
	path, err := UserConfigPath()
	if err != nil {
		log.Debug().Err(err).Msg("no user config directory")
		return Config{}
	}
	return ParseFile(path)
}

func envFileConfig(e environment) Config {
	if e.ConfigFile == "" {
		return Config{}
	}
	return ParseFile(e.ConfigFile)
}

func envOverrideConfig(e environment) Config {
	var cfg Config
	if e.DebugLog != "" {
		path := e.DebugLog
		cfg.DebugLog = &path
	}
	return cfg
}

// Load reads every configuration source and merges them in precedence
// order: compiled-in defaults (all absent), then the user config file,
// then the file named by VTY_CONFIG_FILE, then the direct environment
// overrides. Sources that are missing or unreadable contribute
// nothing; Load itself cannot fail.
func Load() Config {
	e := readEnvironment()
	return MergeAll([]Config{
		{},
		userConfig(),
		envFileConfig(e),
		envOverrideConfig(e),
	})
}

// BaselineConfig builds the terminal baseline every program starts
// from: conservative read parameters (one byte per read, a one second
// timeout), mouse and bracketed paste off, the standard input and
// output streams, and the terminal name from TERM. If TERM is unset it
// returns ErrNoTermName and no partial configuration.
func BaselineConfig() (Config, error) {
	term, ok := os.LookupEnv("TERM")
	if !ok || term == "" {
		return Config{}, ErrNoTermName
	}

	vmin := 1
	vtime := 100
	mouse := false
	bracketedPaste := false
	inputFd := uintptr(0)
	outputFd := uintptr(1)

	return Config{
		Vmin:           &vmin,
		Vtime:          &vtime,
		Mouse:          &mouse,
		BracketedPaste: &bracketedPaste,
		InputFd:        &inputFd,
		OutputFd:       &outputFd,
		TermName:       &term,
	}, nil
}

// LoadDefault is the call a terminal program makes at startup: the
// TERM-derived baseline with every other source merged on top.
func LoadDefault() (Config, error) {
	base, err := BaselineConfig()
	if err != nil {
		return Config{}, err
	}
	return base.Merge(Load()), nil
}
