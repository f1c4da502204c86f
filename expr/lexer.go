package expr

import (
	"strconv"
	"unicode"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPow
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	pos  int
	text string
	num  float64
}

// startsOperand reports whether a token can begin a new operand; two
// operands in a row mean implicit multiplication.
func (t token) startsOperand() bool {
	return t.kind == tokNumber || t.kind == tokIdent || t.kind == tokLParen
}

func (t token) display() string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return t.text
}

// lex splits src into tokens. It fails only on characters outside the
// grammar and on malformed numbers; structural errors belong to the parser.
func lex(src string) ([]token, error) {
	var (
		toks []token
		i    int
	)
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || (c == '.' && i+1 < len(src) && isDigit(src[i+1])):
			tok, next, err := lexNumber(src, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = next
		case isLetter(c):
			start := i
			for i < len(src) && (isLetter(src[i]) || isDigit(src[i])) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, pos: start, text: src[start:i]})
		case c == '*' && i+1 < len(src) && src[i+1] == '*':
			toks = append(toks, token{kind: tokPow, pos: i, text: "**"})
			i += 2
		default:
			kind, known := singles[c]
			if !known {
				r := []rune(src[i:])[0]
				text := string(r)
				if !unicode.IsPrint(r) {
					text = strconv.QuoteRune(r)
				}
				return nil, &ParseError{Pos: i, Token: text, Err: ErrUnexpectedToken}
			}
			toks = append(toks, token{kind: kind, pos: i, text: string(c)})
			i++
		}
	}
	return append(toks, token{kind: tokEOF, pos: len(src)}), nil
}

var singles = map[byte]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'/': tokSlash,
	'^': tokPow,
	'(': tokLParen,
	')': tokRParen,
}

// lexNumber scans digits [. digits] [(e|E) [+-] digits]. An 'e' that is not
// followed by an exponent is left for the identifier scanner, so "2e" lexes
// as 2 followed by the constant e (and is then rejected as implicit
// multiplication).
func lexNumber(src string, start int) (token, int, error) {
	i := start
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	if i < len(src) && src[i] == '.' {
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
		}
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < len(src) && isDigit(src[j]) {
			for j < len(src) && isDigit(src[j]) {
				j++
			}
			i = j
		}
	}
	text := src[start:i]
	if i < len(src) && (src[i] == '.' || isDigit(src[i])) {
		return token{}, 0, &ParseError{Pos: start, Token: src[start : i+1], Err: ErrBadNumber}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// ParseFloat only fails here on out-of-range literals such as 1e999.
		return token{}, 0, &ParseError{Pos: start, Token: text, Err: ErrBadNumber}
	}
	return token{kind: tokNumber, pos: start, text: text, num: v}, i, nil
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
