package lexer

import (
	"strconv"
	"unicode"
)

var keywords = map[string]Token{
	"if":    IfKeyword,
	"defn":  DefnKeyword,
	"true":  Boolean(true),
	"false": Boolean(false),
}

type scanner struct {
	src []rune
	pos int
}

func (s *scanner) next() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	r := s.src[s.pos]
	s.pos++
	return r, true
}

func (s *scanner) peek() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos], true
}

func isClosing(r rune) bool {
	return r == ')' || r == ']'
}

// Tokenize splits source into tokens. It never fails: digit runs that do not
// fit an int64 are dropped and an unterminated string runs to end of input.
func Tokenize(source string) []Token {
	s := scanner{src: []rune(source)}
	tokens := make([]Token, 0, len(s.src)/2)

	for {
		r, ok := s.next()
		if !ok {
			return tokens
		}
		if unicode.IsSpace(r) {
			continue
		}

		if unicode.IsNumber(r) {
			run := []rune{r}
			// the run ends at the first non-digit, so 12abc is Number(12) Name(abc)
			for {
				c, ok := s.peek()
				if !ok || !unicode.IsNumber(c) || isClosing(c) {
					break
				}
				s.pos++
				run = append(run, c)
			}
			if n, err := strconv.ParseInt(string(run), 10, 64); err == nil {
				tokens = append(tokens, Number(n))
			}
			continue
		}

		switch r {
		case '(':
			tokens = append(tokens, OpeningParenthesis)
		case ')':
			tokens = append(tokens, ClosingParenthesis)
		case '[':
			tokens = append(tokens, OpeningBracket)
		case ']':
			tokens = append(tokens, ClosingBracket)
		case '-':
			tokens = append(tokens, NegativeSymbol)
		case '"':
			text := make([]rune, 0)
			for {
				c, ok := s.next()
				if !ok || c == '"' {
					break
				}
				text = append(text, c)
			}
			tokens = append(tokens, String(string(text)))
		default:
			name := []rune{r}
			for {
				c, ok := s.peek()
				if !ok || unicode.IsSpace(c) || isClosing(c) {
					break
				}
				s.pos++
				name = append(name, c)
			}
			if kw, ok := keywords[string(name)]; ok {
				tokens = append(tokens, kw)
			} else {
				tokens = append(tokens, Name(string(name)))
			}
		}
	}
}
