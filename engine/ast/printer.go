package ast

import (
	"fmt"
	"strings"
)

// Printer renders a tree back into RISP source form.
type Printer struct{}

var _ Visitor[string] = Printer{}

// Print is shorthand for Accept(node, Printer{}).
func Print(node Node) string {
	s, _ := Accept[string](node, Printer{})
	return s
}

func (p Printer) VisitNumber(n int64) (string, error) {
	return fmt.Sprintf("%d", n), nil
}

func (p Printer) VisitBoolean(b bool) (string, error) {
	return fmt.Sprintf("%v", b), nil
}

func (p Printer) VisitString(s string) (string, error) {
	return fmt.Sprintf(`"%s"`, s), nil
}

func (p Printer) VisitIdentifier(name string) (string, error) {
	return name, nil
}

func (p Printer) VisitList(elements []Node) (string, error) {
	return p.form("list", elements), nil
}

func (p Printer) VisitCall(name string, arguments []Node) (string, error) {
	return p.form(name, arguments), nil
}

func (p Printer) VisitIf(condition, whenTrue, whenFalse Node) (string, error) {
	return p.form("if", []Node{condition, whenTrue, whenFalse}), nil
}

func (p Printer) VisitFunctionDeclaration(identifier string, parameters []string, body Node) (string, error) {
	return fmt.Sprintf("(defn %s [%s] %s)", identifier, strings.Join(parameters, " "), Print(body)), nil
}

func (p Printer) form(head string, nodes []Node) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(head)
	for _, n := range nodes {
		sb.WriteByte(' ')
		sb.WriteString(Print(n))
	}
	sb.WriteByte(')')
	return sb.String()
}
