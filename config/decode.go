package config

// A decodeFn decodes one value of type T from the token stream.
// Failure leaves the lexer position unspecified; callers that want to
// recover save and restore the position themselves.
type decodeFn[T any] func(*lexer) (T, error)

// decodeInt consumes exactly one integer literal.
func decodeInt(l *lexer) (int, error) {
	tok, err := l.next()
	if err != nil {
		return 0, err
	}
	if tok.kind != tokInt {
		return 0, l.errAt(tok.pos, "expected integer literal")
	}
	return tok.num, nil
}

// decodeChar consumes exactly one character literal.
func decodeChar(l *lexer) (rune, error) {
	tok, err := l.next()
	if err != nil {
		return 0, err
	}
	if tok.kind != tokChar {
		return 0, l.errAt(tok.pos, "expected character literal")
	}
	return tok.ch, nil
}

// decodeList decodes a bracketed, comma-separated list of elements.
// `[]` is the empty list; no trailing separator is accepted.
func decodeList[T any](elem decodeFn[T]) decodeFn[[]T] {
	return func(l *lexer) ([]T, error) {
		if _, err := l.expect(tokLBracket); err != nil {
			return nil, err
		}

		out := []T{}
		mark := l.pos
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokRBracket {
			return out, nil
		}
		l.pos = mark

		for {
			v, err := elem(l)
			if err != nil {
				return nil, err
			}
			out = append(out, v)

			tok, err := l.next()
			if err != nil {
				return nil, err
			}
			switch tok.kind {
			case tokComma:
			case tokRBracket:
				return out, nil
			default:
				return nil, l.errAt(tok.pos, "expected ',' or ']' in list")
			}
		}
	}
}

// An enum describes one closed enumeration for the decoder: a dispatch
// table from variant name to the function that consumes the variant's
// payload tokens (none for nullary variants) and builds the value. The
// decode routine itself never knows any particular variant catalog;
// adding an enumeration means adding a table. Variant names are
// matched exactly and case-sensitively. Duplicate names would be a
// programmer error in the table itself; spelled as a map literal with
// constant keys, the compiler rejects them outright.
type enum[T any] struct {
	name     string
	variants map[string]decodeFn[T]
}

// decode consumes one identifier naming a variant, then that
// variant's payload, if it has one.
func (e enum[T]) decode(l *lexer) (T, error) {
	var zero T
	tok, err := l.next()
	if err != nil {
		return zero, err
	}
	if tok.kind != tokIdent {
		return zero, l.errAt(tok.pos, "expected %s variant name", e.name)
	}
	fn, ok := e.variants[tok.text]
	if !ok {
		return zero, l.errAt(tok.pos, "unknown %s variant %q", e.name, tok.text)
	}
	return fn(l)
}

// nullary builds the table entry for a variant with no payload: it
// consumes no tokens beyond the variant name.
func nullary[T any](v T) decodeFn[T] {
	return func(*lexer) (T, error) { return v, nil }
}

// charPayload builds the table entry for a variant carrying one
// character literal.
func charPayload[T any](mk func(rune) T) decodeFn[T] {
	return func(l *lexer) (T, error) {
		var zero T
		ch, err := decodeChar(l)
		if err != nil {
			return zero, err
		}
		return mk(ch), nil
	}
}

// intPayload builds the table entry for a variant carrying one
// integer literal.
func intPayload[T any](mk func(int) T) decodeFn[T] {
	return func(l *lexer) (T, error) {
		var zero T
		n, err := decodeInt(l)
		if err != nil {
			return zero, err
		}
		return mk(n), nil
	}
}
