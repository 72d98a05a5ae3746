package lexer

import "fmt"

type TokenType uint8

const (
	LPAREN TokenType = iota + 1
	RPAREN
	LBRACKET
	RBRACKET
	NEGATIVE
	IF
	DEFN
	NUMBER
	STRING
	BOOLEAN
	NAME
)

func (t TokenType) String() string {
	switch t {
	case LPAREN:
		return "OpeningParenthesis"
	case RPAREN:
		return "ClosingParenthesis"
	case LBRACKET:
		return "OpeningBracket"
	case RBRACKET:
		return "ClosingBracket"
	case NEGATIVE:
		return "NegativeSymbol"
	case IF:
		return "IfKeyword"
	case DEFN:
		return "DefnKeyword"
	case NUMBER:
		return "Number"
	case STRING:
		return "String"
	case BOOLEAN:
		return "Boolean"
	case NAME:
		return "Name"
	default:
		return fmt.Sprintf("unknown:%d", t)
	}
}

// Token is one lexical unit. Only the field matching Type is meaningful:
// Number for NUMBER, Bool for BOOLEAN and Text for STRING and NAME.
type Token struct {
	Type   TokenType
	Number int64
	Bool   bool
	Text   string
}

func Number(n int64) Token  { return Token{Type: NUMBER, Number: n} }
func String(s string) Token { return Token{Type: STRING, Text: s} }
func Boolean(b bool) Token  { return Token{Type: BOOLEAN, Bool: b} }
func Name(s string) Token   { return Token{Type: NAME, Text: s} }

var (
	OpeningParenthesis = Token{Type: LPAREN}
	ClosingParenthesis = Token{Type: RPAREN}
	OpeningBracket     = Token{Type: LBRACKET}
	ClosingBracket     = Token{Type: RBRACKET}
	NegativeSymbol     = Token{Type: NEGATIVE}
	IfKeyword          = Token{Type: IF}
	DefnKeyword        = Token{Type: DEFN}
)

func (t Token) String() string {
	switch t.Type {
	case NUMBER:
		return fmt.Sprintf("Number(%d)", t.Number)
	case BOOLEAN:
		return fmt.Sprintf("Boolean(%v)", t.Bool)
	case STRING:
		return fmt.Sprintf("String(%q)", t.Text)
	case NAME:
		return fmt.Sprintf("Name(%s)", t.Text)
	default:
		return t.Type.String()
	}
}
