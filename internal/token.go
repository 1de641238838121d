package internal

import "fmt"

// tokenKind enumerates the lexical categories of the formula grammar.
type tokenKind int

const (
	tokAdd tokenKind = iota
	tokSub
	tokMul
	tokDiv
	tokLParen
	tokRParen
	tokNumber
	tokCell
)

type token struct {
	kind tokenKind
	text string
}

// tokenize splits a formula body (without the leading '=') into tokens.
// Whitespace is skipped between tokens. A run of uppercase letters
// followed immediately by a run of digits is always lexed as a single
// CELL-shaped token, regardless of whether it names a valid Position --
// validity is decided later by PositionFromString, not here.
func tokenize(src string) ([]token, error) {
	runes := []rune(src)
	var tokens []token

	for i := 0; i < len(runes); {
		ch := runes[i]
		switch {
		case ch == ' ' || ch == '\t':
			i++

		case ch == '+':
			tokens = append(tokens, token{tokAdd, "+"})
			i++
		case ch == '-':
			tokens = append(tokens, token{tokSub, "-"})
			i++
		case ch == '*':
			tokens = append(tokens, token{tokMul, "*"})
			i++
		case ch == '/':
			tokens = append(tokens, token{tokDiv, "/"})
			i++
		case ch == '(':
			tokens = append(tokens, token{tokLParen, "("})
			i++
		case ch == ')':
			tokens = append(tokens, token{tokRParen, ")"})
			i++

		case between(ch, '0', '9'):
			start := i
			for i < len(runes) && between(runes[i], '0', '9') {
				i++
			}
			if i < len(runes) && runes[i] == '.' {
				i++
				for i < len(runes) && between(runes[i], '0', '9') {
					i++
				}
			}
			if i < len(runes) && (runes[i] == 'e' || runes[i] == 'E') {
				i++
				if i < len(runes) && (runes[i] == '+' || runes[i] == '-') {
					i++
				}
				for i < len(runes) && between(runes[i], '0', '9') {
					i++
				}
			}
			tokens = append(tokens, token{tokNumber, string(runes[start:i])})

		case between(ch, 'A', 'Z'):
			start := i
			for i < len(runes) && (between(runes[i], '0', '9') || between(runes[i], 'A', 'Z')) {
				i++
			}
			tokens = append(tokens, token{tokCell, string(runes[start:i])})

		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrFormulaParse, ch)
		}
	}
	return tokens, nil
}

func between(target, lb, ub rune) bool {
	return lb <= target && target <= ub
}
