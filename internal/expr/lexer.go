package expr

import (
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return "'" + t.text + "'"
}

func tokenize(src string) ([]token, error) {
	var toks []token
	runes := []rune(src)
	offset := 0
	for i := 0; i < len(runes); {
		r := runes[i]
		start := offset
		switch {
		case unicode.IsSpace(r):
			i++
			offset += len(string(r))
			continue
		case r >= '0' && r <= '9' || r == '.':
			j, dots := i, 0
			for j < len(runes) && (runes[j] >= '0' && runes[j] <= '9' || runes[j] == '.') {
				if runes[j] == '.' {
					dots++
				}
				j++
			}
			text := string(runes[i:j])
			if dots > 1 || text == "." {
				return nil, &ParseError{Input: src, Pos: start, Msg: "invalid number " + text}
			}
			toks = append(toks, token{kind: tokNumber, text: text, pos: start})
			offset += len(text)
			i = j
			continue
		case unicode.IsLetter(r):
			j := i
			for j < len(runes) && unicode.IsLetter(runes[j]) {
				j++
			}
			text := string(runes[i:j])
			toks = append(toks, token{kind: tokIdent, text: strings.ToLower(text), pos: start})
			offset += len(text)
			i = j
			continue
		case strings.ContainsRune("+-*/^", r):
			toks = append(toks, token{kind: tokOp, text: string(r), pos: start})
		case r == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: start})
		case r == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: start})
		default:
			return nil, &ParseError{Input: src, Pos: start, Msg: "unexpected character " + string(r)}
		}
		i++
		offset += len(string(r))
	}
	return append(toks, token{kind: tokEOF, pos: len(src)}), nil
}
