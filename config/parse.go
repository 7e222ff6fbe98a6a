package config

import (
	"errors"

	"github.com/Porges/vty/input"
)

// Parse interprets src as configuration directives and returns the
// merged fragment. It cannot fail: a line that is not a well-formed
// directive, whatever the reason (unknown name, bad field, lexical
// error), contributes nothing and parsing continues on the next line.
// That trade of validation for availability is deliberate and parse
// errors are never reported.
func Parse(src []byte) Config {
	l := newLexer(src)
	var cfg Config
	for {
		mark := l.pos
		if err := l.skipTrivia(); err == nil {
			if l.atEOF() {
				return cfg
			}
			if frag, err := parseDirective(l); err == nil {
				cfg = cfg.Merge(frag)
				continue
			}
		}
		// Not a directive from here: drop everything through the end
		// of the line and try again. skipLine consumes at least one
		// byte whenever input remains, so the loop always advances.
		l.pos = mark
		l.skipLine()
	}
}

var errUnknownDirective = errors.New("unknown directive")

// parseDirective commits to the directive named by the leading
// identifier and decodes its fields. There are no partial commits: any
// failure in the fields fails the whole attempt.
func parseDirective(l *lexer) (Config, error) {
	tok, err := l.next()
	if err != nil {
		return Config{}, err
	}
	if tok.kind != tokIdent {
		return Config{}, errUnknownDirective
	}
	switch tok.text {
	case "map":
		return parseMap(l)
	case "debugLog":
		return parseDebugLog(l)
	default:
		return Config{}, errUnknownDirective
	}
}

// parseMap decodes `map <term> <bytes> <key> <modifier-list>` into a
// fragment holding exactly one input map entry. <term> is either the
// wildcard `_` or a string naming a terminal type.
func parseMap(l *lexer) (Config, error) {
	var entry input.Entry

	tok, err := l.next()
	if err != nil {
		return Config{}, err
	}
	switch {
	case tok.kind == tokIdent && tok.text == "_":
		// applies to every terminal type
	case tok.kind == tokString:
		term := tok.text
		entry.Term = &term
	default:
		return Config{}, l.errAt(tok.pos, "expected '_' or a terminal name string")
	}

	tok, err = l.expect(tokString)
	if err != nil {
		return Config{}, err
	}
	entry.Bytes = []byte(tok.text)

	key, err := keyEnum.decode(l)
	if err != nil {
		return Config{}, err
	}
	mods, err := decodeList(modifierEnum.decode)(l)
	if err != nil {
		return Config{}, err
	}
	entry.Event = input.Event{Key: key, Mods: mods}

	return Config{InputMap: input.Table{entry}}, nil
}

// parseDebugLog decodes `debugLog <path>` into a fragment with only
// the debug log field set.
func parseDebugLog(l *lexer) (Config, error) {
	tok, err := l.expect(tokString)
	if err != nil {
		return Config{}, err
	}
	path := tok.text
	return Config{DebugLog: &path}, nil
}
