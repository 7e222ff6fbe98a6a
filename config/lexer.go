package config

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// tokenKind discriminates the lexical tokens of the directive language.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokChar
	tokInt
	tokLBracket
	tokRBracket
	tokComma
)

// A token is one lexical unit. text holds the identifier name or the
// decoded bytes of a string literal, ch the value of a character
// literal, num the value of an integer literal.
type token struct {
	kind tokenKind
	pos  int
	text string
	ch   rune
	num  int
}

// A lexer scans tokens out of an in-memory byte buffer. It keeps no
// state besides the position, so callers backtrack by saving and
// restoring pos directly.
type lexer struct {
	src []byte
	pos int
}

func newLexer(src []byte) *lexer {
	return &lexer{src: src}
}

func (l *lexer) atEOF() bool {
	return l.pos >= len(l.src)
}

func (l *lexer) errAt(pos int, format string, args ...any) error {
	return fmt.Errorf("offset %d: %s", pos, fmt.Sprintf(format, args...))
}

// skipTrivia consumes whitespace, `--` line comments, and nested
// `{- -}` block comments. An unterminated block comment is an error.
func (l *lexer) skipTrivia() error {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f':
			l.pos++
		case c == '-' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '-':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		case c == '{' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '-':
			if err := l.skipBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

// skipBlockComment consumes one balanced `{- -}` comment, including
// any nested ones, with l.pos at the opening brace.
func (l *lexer) skipBlockComment() error {
	start := l.pos
	depth := 0
	for l.pos < len(l.src) {
		switch {
		case l.src[l.pos] == '{' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '-':
			depth++
			l.pos += 2
		case l.src[l.pos] == '-' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '}':
			depth--
			l.pos += 2
			if depth == 0 {
				return nil
			}
		default:
			l.pos++
		}
	}
	return l.errAt(start, "unterminated block comment")
}

// skipLine consumes everything up to and including the next line
// terminator (or to the end of input). It always makes progress when
// any input remains, which is what keeps the tolerant parse loop
// terminating.
func (l *lexer) skipLine() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		l.pos++
		if c == '\n' {
			return
		}
	}
}

// next returns the next token after any trivia.
func (l *lexer) next() (token, error) {
	if err := l.skipTrivia(); err != nil {
		return token{}, err
	}
	if l.atEOF() {
		return token{kind: tokEOF, pos: l.pos}, nil
	}

	start := l.pos
	c := l.src[l.pos]
	switch {
	case c == '[':
		l.pos++
		return token{kind: tokLBracket, pos: start}, nil
	case c == ']':
		l.pos++
		return token{kind: tokRBracket, pos: start}, nil
	case c == ',':
		l.pos++
		return token{kind: tokComma, pos: start}, nil
	case c == '"':
		return l.lexString()
	case c == '\'':
		return l.lexChar()
	case c >= '0' && c <= '9':
		return l.lexInt()
	case isIdentStart(c):
		return l.lexIdent()
	default:
		return token{}, l.errAt(start, "unexpected character %q", rune(c))
	}
}

// expect returns the next token if it has the wanted kind and an error
// otherwise.
func (l *lexer) expect(kind tokenKind) (token, error) {
	tok, err := l.next()
	if err != nil {
		return token{}, err
	}
	if tok.kind != kind {
		return token{}, l.errAt(tok.pos, "unexpected token")
	}
	return tok, nil
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9') || c == '\''
}

func (l *lexer) lexIdent() (token, error) {
	start := l.pos
	for l.pos < len(l.src) && isIdentCont(l.src[l.pos]) {
		l.pos++
	}
	return token{kind: tokIdent, pos: start, text: string(l.src[start:l.pos])}, nil
}

func (l *lexer) lexInt() (token, error) {
	start := l.pos
	n := 0
	for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
		n = n*10 + int(l.src[l.pos]-'0')
		l.pos++
	}
	return token{kind: tokInt, pos: start, num: n}, nil
}

// lexString scans a double-quoted string literal and decodes its
// escapes to raw bytes. Escape values above 0xFF cannot be represented
// in an input byte sequence and are rejected; literal multi-byte text
// passes through unchanged.
func (l *lexer) lexString() (token, error) {
	start := l.pos
	l.pos++ // opening quote
	var out []byte
	for {
		if l.atEOF() {
			return token{}, l.errAt(start, "unterminated string literal")
		}
		c := l.src[l.pos]
		switch {
		case c == '"':
			l.pos++
			return token{kind: tokString, pos: start, text: string(out)}, nil
		case c == '\n':
			return token{}, l.errAt(start, "unterminated string literal")
		case c == '\\':
			l.pos++
			r, err := l.escape()
			if err != nil {
				return token{}, err
			}
			if r > 0xFF {
				return token{}, l.errAt(start, "escape value %#x out of byte range", r)
			}
			out = append(out, byte(r))
		default:
			out = append(out, c)
			l.pos++
		}
	}
}

// lexChar scans a single-quoted character literal.
func (l *lexer) lexChar() (token, error) {
	start := l.pos
	l.pos++ // opening quote
	if l.atEOF() {
		return token{}, l.errAt(start, "unterminated character literal")
	}

	var ch rune
	if l.src[l.pos] == '\\' {
		l.pos++
		r, err := l.escape()
		if err != nil {
			return token{}, err
		}
		ch = r
	} else {
		r, size := utf8.DecodeRune(l.src[l.pos:])
		if r == utf8.RuneError && size <= 1 {
			return token{}, l.errAt(l.pos, "invalid character literal")
		}
		ch = r
		l.pos += size
	}

	if l.atEOF() || l.src[l.pos] != '\'' {
		return token{}, l.errAt(start, "unterminated character literal")
	}
	l.pos++
	return token{kind: tokChar, pos: start, ch: ch}, nil
}

// asciiMnemonics names the control characters the way the config
// format has always spelled them (`\ESC`, `\NUL`, ...). Matched
// longest first so that e.g. `\SOH` is not read as `\SO` followed by
// a stray 'H'.
var asciiMnemonics = map[string]rune{
	"NUL": 0x00, "SOH": 0x01, "STX": 0x02, "ETX": 0x03,
	"EOT": 0x04, "ENQ": 0x05, "ACK": 0x06, "BEL": 0x07,
	"BS": 0x08, "HT": 0x09, "LF": 0x0a, "VT": 0x0b,
	"FF": 0x0c, "CR": 0x0d, "SO": 0x0e, "SI": 0x0f,
	"DLE": 0x10, "DC1": 0x11, "DC2": 0x12, "DC3": 0x13,
	"DC4": 0x14, "NAK": 0x15, "SYN": 0x16, "ETB": 0x17,
	"CAN": 0x18, "EM": 0x19, "SUB": 0x1a, "ESC": 0x1b,
	"FS": 0x1c, "GS": 0x1d, "RS": 0x1e, "US": 0x1f,
	"SP": 0x20, "DEL": 0x7f,
}

// escape decodes one escape sequence with l.pos on the byte following
// the backslash.
func (l *lexer) escape() (rune, error) {
	if l.atEOF() {
		return 0, l.errAt(l.pos, "unterminated escape sequence")
	}
	pos := l.pos
	c := l.src[l.pos]
	switch {
	case c == '\\' || c == '"' || c == '\'':
		l.pos++
		return rune(c), nil
	case c == 'n':
		l.pos++
		return '\n', nil
	case c == 't':
		l.pos++
		return '\t', nil
	case c == 'r':
		l.pos++
		return '\r', nil
	case c == 'a':
		l.pos++
		return '\a', nil
	case c == 'b':
		l.pos++
		return '\b', nil
	case c == 'f':
		l.pos++
		return '\f', nil
	case c == 'v':
		l.pos++
		return '\v', nil
	case c == 'x':
		l.pos++
		return l.escapeNumber(16, isHexDigit, hexDigitValue)
	case c == 'o':
		l.pos++
		return l.escapeNumber(8, isOctalDigit, decimalDigitValue)
	case c >= '0' && c <= '9':
		return l.escapeNumber(10, isDecimalDigit, decimalDigitValue)
	default:
		// Longest mnemonic first: all mnemonics are two or three
		// characters long.
		for _, n := range []int{3, 2} {
			if l.pos+n <= len(l.src) {
				if r, ok := asciiMnemonics[string(l.src[l.pos:l.pos+n])]; ok {
					l.pos += n
					return r, nil
				}
			}
		}
		return 0, l.errAt(pos, "unknown escape sequence")
	}
}

func (l *lexer) escapeNumber(base rune, isDigit func(byte) bool, value func(byte) rune) (rune, error) {
	start := l.pos
	var n rune
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		n = n*base + value(l.src[l.pos])
		if n > unicode.MaxRune {
			return 0, l.errAt(start, "escape value out of range")
		}
		l.pos++
	}
	if l.pos == start {
		return 0, l.errAt(start, "empty numeric escape")
	}
	return n, nil
}

func isDecimalDigit(c byte) bool { return c >= '0' && c <= '9' }
func isOctalDigit(c byte) bool   { return c >= '0' && c <= '7' }

func isHexDigit(c byte) bool {
	return isDecimalDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func decimalDigitValue(c byte) rune { return rune(c - '0') }

func hexDigitValue(c byte) rune {
	switch {
	case c >= 'a':
		return rune(c-'a') + 10
	case c >= 'A':
		return rune(c-'A') + 10
	default:
		return rune(c - '0')
	}
}
