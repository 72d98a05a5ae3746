package parser

import (
	"risp/engine/ast"
	"risp/engine/lexer"
	"risp/lib/rerror"
)

// Cursor walks a token sequence with one token of lookahead.
type Cursor struct {
	tokens []lexer.Token
	pos    int
}

func NewCursor(tokens []lexer.Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Peek returns the next token without consuming it.
func (c *Cursor) Peek() (lexer.Token, bool) {
	if c.pos >= len(c.tokens) {
		return lexer.Token{}, false
	}
	return c.tokens[c.pos], true
}

// Next consumes and returns the next token.
func (c *Cursor) Next() (lexer.Token, bool) {
	tok, ok := c.Peek()
	if ok {
		c.pos++
	}
	return tok, ok
}

// Done reports whether every token has been consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.tokens)
}

// Position is the index of the next unconsumed token.
func (c *Cursor) Position() int {
	return c.pos
}

func (c *Cursor) expect(tt lexer.TokenType) error {
	tok, ok := c.Next()
	if !ok {
		return rerror.MissingToken()
	}
	if tok.Type != tt {
		return rerror.UnexpectedToken(tok)
	}
	return nil
}

func (c *Cursor) peekIs(tt lexer.TokenType) (bool, error) {
	tok, ok := c.Peek()
	if !ok {
		return false, rerror.MissingToken()
	}
	return tok.Type == tt, nil
}

// Parse parses a whole program: every top-level expression in order.
func Parse(tokens []lexer.Token) ([]ast.Node, error) {
	c := NewCursor(tokens)
	nodes := make([]ast.Node, 0)
	for !c.Done() {
		node, err := ParseNode(c)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// ParseNode parses one expression, leaving c positioned right after it.
func ParseNode(c *Cursor) (ast.Node, error) {
	tok, ok := c.Next()
	if !ok {
		return nil, rerror.MissingToken()
	}
	switch tok.Type {
	case lexer.NUMBER:
		return ast.NumberLiteral{Value: tok.Number}, nil
	case lexer.BOOLEAN:
		return ast.BooleanLiteral{Value: tok.Bool}, nil
	case lexer.STRING:
		return ast.StringLiteral{Value: tok.Text}, nil
	case lexer.NAME:
		return ast.Identifier{Name: tok.Text}, nil
	case lexer.NEGATIVE:
		return parseNegative(c)
	case lexer.LPAREN:
		return parseForm(c)
	default:
		return nil, rerror.UnexpectedToken(tok)
	}
}

func parseNegative(c *Cursor) (ast.Node, error) {
	next, ok := c.Peek()
	if !ok {
		return nil, rerror.MissingToken()
	}
	node, err := ParseNode(c)
	if err != nil {
		return nil, err
	}
	n, ok := node.(ast.NumberLiteral)
	if !ok {
		return nil, rerror.UnexpectedToken(next)
	}
	return ast.NumberLiteral{Value: -n.Value}, nil
}

func parseForm(c *Cursor) (ast.Node, error) {
	head, ok := c.Peek()
	if !ok {
		return nil, rerror.MissingToken()
	}
	switch head.Type {
	case lexer.IF:
		c.Next()
		return parseIf(c)
	case lexer.DEFN:
		c.Next()
		return parseFunctionDeclaration(c)
	case lexer.NAME:
		if head.Text == "list" {
			c.Next()
			elements, err := parseUntilClose(c)
			if err != nil {
				return nil, err
			}
			return ast.ListExpression{Elements: elements}, nil
		}
		return parseCall(c)
	default:
		return nil, rerror.UnexpectedToken(head)
	}
}

func parseCall(c *Cursor) (ast.Node, error) {
	head, _ := c.Peek()
	callee, err := ParseNode(c)
	if err != nil {
		return nil, err
	}
	id, ok := callee.(ast.Identifier)
	if !ok {
		return nil, rerror.UnexpectedToken(head)
	}
	arguments, err := parseUntilClose(c)
	if err != nil {
		return nil, err
	}
	return ast.CallExpression{Name: id.Name, Arguments: arguments}, nil
}

// parseUntilClose parses nodes until the next token is ')' and consumes it.
func parseUntilClose(c *Cursor) ([]ast.Node, error) {
	nodes := make([]ast.Node, 0)
	for {
		closing, err := c.peekIs(lexer.RPAREN)
		if err != nil {
			return nil, err
		}
		if closing {
			c.Next()
			return nodes, nil
		}
		node, err := ParseNode(c)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
}

func parseIf(c *Cursor) (ast.Node, error) {
	var parts [3]ast.Node
	for i := range parts {
		node, err := ParseNode(c)
		if err != nil {
			return nil, err
		}
		parts[i] = node
	}
	if err := c.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return ast.IfExpression{Condition: parts[0], WhenTrue: parts[1], WhenFalse: parts[2]}, nil
}

func parseFunctionDeclaration(c *Cursor) (ast.Node, error) {
	tok, ok := c.Next()
	if !ok {
		return nil, rerror.MissingToken()
	}
	if tok.Type != lexer.NAME {
		return nil, rerror.UnexpectedToken(tok)
	}
	identifier := tok.Text

	if err := c.expect(lexer.LBRACKET); err != nil {
		return nil, err
	}
	parameters := make([]string, 0)
	for {
		tok, ok := c.Next()
		if !ok {
			return nil, rerror.MissingToken()
		}
		if tok.Type == lexer.RBRACKET {
			break
		}
		if tok.Type != lexer.NAME {
			return nil, rerror.UnexpectedToken(tok)
		}
		parameters = append(parameters, tok.Text)
	}

	body, err := ParseNode(c)
	if err != nil {
		return nil, err
	}
	if err := c.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return ast.FunctionDeclaration{Identifier: identifier, Parameters: parameters, Body: body}, nil
}
