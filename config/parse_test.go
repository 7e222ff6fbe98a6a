package config_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/Porges/vty/config"
	"github.com/Porges/vty/input"
)

func TestParseMapDirective(t *testing.T) {
	t.Run("wildcard terminal", func(t *testing.T) {
		cfg := config.Parse([]byte(`map _ "\x1b[B" KUp []`))

		if len(cfg.InputMap) != 1 {
			t.Fatalf("expected exactly one entry, got %d", len(cfg.InputMap))
		}
		entry := cfg.InputMap[0]
		if entry.Term != nil {
			t.Errorf("expected no terminal filter, got %q", *entry.Term)
		}
		if !bytes.Equal(entry.Bytes, []byte{0x1b, '[', 'B'}) {
			t.Errorf("expected ESC [ B, got %q", entry.Bytes)
		}
		if entry.Event.Key.Code != input.KeyUp {
			t.Errorf("expected KeyUp, got %s", entry.Event.Key)
		}
		if len(entry.Event.Mods) != 0 {
			t.Errorf("expected no modifiers, got %v", entry.Event.Mods)
		}
	})

	t.Run("terminal filter", func(t *testing.T) {
		cfg := config.Parse([]byte(`map "xterm" "\x1b[D" KLeft []`))

		if len(cfg.InputMap) != 1 {
			t.Fatalf("expected exactly one entry, got %d", len(cfg.InputMap))
		}
		entry := cfg.InputMap[0]
		if entry.Term == nil || *entry.Term != "xterm" {
			t.Errorf("expected terminal filter 'xterm', got %v", entry.Term)
		}
		if entry.Event.Key.Code != input.KeyLeft {
			t.Errorf("expected KeyLeft, got %s", entry.Event.Key)
		}
	})

	t.Run("modifiers and payload variants", func(t *testing.T) {
		cfg := config.Parse([]byte(`map _ "\x01" KChar 'a' [MCtrl, MShift]`))

		if len(cfg.InputMap) != 1 {
			t.Fatalf("expected exactly one entry, got %d", len(cfg.InputMap))
		}
		entry := cfg.InputMap[0]
		if entry.Event.Key != input.Char('a') {
			t.Errorf("expected Char('a'), got %s", entry.Event.Key)
		}
		want := []input.Modifier{input.ModCtrl, input.ModShift}
		if !reflect.DeepEqual(entry.Event.Mods, want) {
			t.Errorf("expected %v, got %v", want, entry.Event.Mods)
		}
	})

	t.Run("entries keep source order", func(t *testing.T) {
		cfg := config.Parse([]byte(strings.Join([]string{
			`map _ "\x1b[A" KUp []`,
			`map _ "\x1b[A" KDown []`,
			`map _ "\x1b[B" KDown []`,
		}, "\n")))

		if len(cfg.InputMap) != 3 {
			t.Fatalf("expected three entries, got %d", len(cfg.InputMap))
		}
		if cfg.InputMap[0].Event.Key.Code != input.KeyUp ||
			cfg.InputMap[1].Event.Key.Code != input.KeyDown {
			t.Error("duplicate sequences must stay in source order, not be deduplicated")
		}
	})

	t.Run("no other fields set", func(t *testing.T) {
		cfg := config.Parse([]byte(`map _ "x" KEnter []`))
		if cfg.Vmin != nil || cfg.Vtime != nil || cfg.Mouse != nil ||
			cfg.BracketedPaste != nil || cfg.DebugLog != nil ||
			cfg.InputFd != nil || cfg.OutputFd != nil || cfg.TermName != nil {
			t.Error("a map directive must leave every scalar field absent")
		}
	})
}

func TestParseDebugLogDirective(t *testing.T) {
	cfg := config.Parse([]byte(`debugLog "/tmp/x.log"`))

	if cfg.DebugLog == nil || *cfg.DebugLog != "/tmp/x.log" {
		t.Errorf("expected debug log '/tmp/x.log', got %v", cfg.DebugLog)
	}
	if len(cfg.InputMap) != 0 {
		t.Error("debugLog must not touch the input map")
	}
}

func TestParseTolerance(t *testing.T) {
	t.Run("unknown directives are skipped", func(t *testing.T) {
		cfg := config.Parse([]byte(strings.Join([]string{
			`color fg blue`,
			`map _ "a" KEnter []`,
			`set mouse on`,
		}, "\n")))

		if len(cfg.InputMap) != 1 {
			t.Errorf("expected the one valid directive to survive, got %d entries", len(cfg.InputMap))
		}
	})

	t.Run("malformed directive bodies are skipped whole", func(t *testing.T) {
		cfg := config.Parse([]byte(strings.Join([]string{
			`map _ "a" KNope []`,
			`map _ "b" KEnter`,
			`map _`,
			`debugLog 42`,
			`map _ "c" KEnter []`,
		}, "\n")))

		if len(cfg.InputMap) != 1 {
			t.Fatalf("expected only the last line to parse, got %d entries", len(cfg.InputMap))
		}
		if !bytes.Equal(cfg.InputMap[0].Bytes, []byte("c")) {
			t.Errorf("wrong entry survived: %q", cfg.InputMap[0].Bytes)
		}
		if cfg.DebugLog != nil {
			t.Error("malformed debugLog must not set the field")
		}
	})

	t.Run("lexical garbage does not abort the pass", func(t *testing.T) {
		cfg := config.Parse([]byte("\"unterminated\ndebugLog \"/tmp/log\"\n%%%$^\n"))
		if cfg.DebugLog == nil || *cfg.DebugLog != "/tmp/log" {
			t.Error("parsing must continue past lexically broken lines")
		}
	})

	t.Run("nested block comment only", func(t *testing.T) {
		cfg := config.Parse([]byte("{- outer {- inner -} outer again -}"))
		if !reflect.DeepEqual(cfg, config.Config{}) {
			t.Errorf("expected the all-absent fragment, got %+v", cfg)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if !reflect.DeepEqual(config.Parse(nil), config.Config{}) {
			t.Error("expected the all-absent fragment for empty input")
		}
	})

	t.Run("terminates without trailing newline", func(t *testing.T) {
		// A failing directive attempt at the very end of input must
		// not loop: the fallback consumes what is left of the line.
		cfg := config.Parse([]byte(`map _ "a" KEnter`))
		if !reflect.DeepEqual(cfg, config.Config{}) {
			t.Errorf("expected the all-absent fragment, got %+v", cfg)
		}
	})

	t.Run("directive may span lines through a block comment", func(t *testing.T) {
		cfg := config.Parse([]byte("map {- which terminal?\n any -} _ \"a\" KEnter []"))
		if len(cfg.InputMap) != 1 {
			t.Errorf("expected one entry, got %d", len(cfg.InputMap))
		}
	})

	t.Run("comments between directives", func(t *testing.T) {
		cfg := config.Parse([]byte(strings.Join([]string{
			`-- remap the arrow keys`,
			`map _ "\ESC[A" KUp []`,
			`{- temporarily disabled:`,
			`map _ "\ESC[B" KDown []`,
			`-}`,
			`debugLog "/tmp/vty.log"`,
		}, "\n")))

		if len(cfg.InputMap) != 1 {
			t.Errorf("expected one entry, got %d", len(cfg.InputMap))
		}
		if cfg.DebugLog == nil {
			t.Error("expected the debugLog directive after the comment block to parse")
		}
	})
}
