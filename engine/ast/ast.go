package ast

import "fmt"

// Visitor is implemented by anything that walks the tree, e.g. the
// interpreter (T = value.Value) and the Printer (T = string).
type Visitor[T any] interface {
	VisitNumber(n int64) (T, error)
	VisitBoolean(b bool) (T, error)
	VisitString(s string) (T, error)
	VisitIdentifier(name string) (T, error)
	VisitList(elements []Node) (T, error)
	VisitCall(name string, arguments []Node) (T, error)
	VisitIf(condition, whenTrue, whenFalse Node) (T, error)
	VisitFunctionDeclaration(identifier string, parameters []string, body Node) (T, error)
}

type Node interface {
	node()
}

var _ Node = NumberLiteral{}
var _ Node = BooleanLiteral{}
var _ Node = StringLiteral{}
var _ Node = Identifier{}
var _ Node = ListExpression{}
var _ Node = CallExpression{}
var _ Node = IfExpression{}
var _ Node = FunctionDeclaration{}

type NumberLiteral struct {
	Value int64
}

type BooleanLiteral struct {
	Value bool
}

type StringLiteral struct {
	Value string
}

type Identifier struct {
	Name string
}

type ListExpression struct {
	Elements []Node
}

type CallExpression struct {
	Name      string
	Arguments []Node
}

type IfExpression struct {
	Condition Node
	WhenTrue  Node
	WhenFalse Node
}

type FunctionDeclaration struct {
	Identifier string
	Parameters []string
	Body       Node
}

func (NumberLiteral) node()       {}
func (BooleanLiteral) node()      {}
func (StringLiteral) node()       {}
func (Identifier) node()          {}
func (ListExpression) node()      {}
func (CallExpression) node()      {}
func (IfExpression) node()        {}
func (FunctionDeclaration) node() {}

// Accept dispatches node to the matching method of v.
func Accept[T any](node Node, v Visitor[T]) (T, error) {
	switch n := node.(type) {
	case NumberLiteral:
		return v.VisitNumber(n.Value)
	case BooleanLiteral:
		return v.VisitBoolean(n.Value)
	case StringLiteral:
		return v.VisitString(n.Value)
	case Identifier:
		return v.VisitIdentifier(n.Name)
	case ListExpression:
		return v.VisitList(n.Elements)
	case CallExpression:
		return v.VisitCall(n.Name, n.Arguments)
	case IfExpression:
		return v.VisitIf(n.Condition, n.WhenTrue, n.WhenFalse)
	case FunctionDeclaration:
		return v.VisitFunctionDeclaration(n.Identifier, n.Parameters, n.Body)
	}
	panic(fmt.Sprintf("unexpected node type: %T", node))
}

// Clone returns a deep copy of node that shares no slices with the original.
func Clone(node Node) Node {
	switch n := node.(type) {
	case ListExpression:
		return ListExpression{Elements: cloneAll(n.Elements)}
	case CallExpression:
		return CallExpression{Name: n.Name, Arguments: cloneAll(n.Arguments)}
	case IfExpression:
		return IfExpression{
			Condition: Clone(n.Condition),
			WhenTrue:  Clone(n.WhenTrue),
			WhenFalse: Clone(n.WhenFalse),
		}
	case FunctionDeclaration:
		params := make([]string, len(n.Parameters))
		copy(params, n.Parameters)
		return FunctionDeclaration{Identifier: n.Identifier, Parameters: params, Body: Clone(n.Body)}
	default:
		// literals and identifiers hold no references
		return node
	}
}

func cloneAll(nodes []Node) []Node {
	ret := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		ret = append(ret, Clone(n))
	}
	return ret
}

// Equal reports whether two trees are structurally identical. Nil and empty
// child sequences compare equal.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case ListExpression:
		y, ok := b.(ListExpression)
		return ok && equalAll(x.Elements, y.Elements)
	case CallExpression:
		y, ok := b.(CallExpression)
		return ok && x.Name == y.Name && equalAll(x.Arguments, y.Arguments)
	case IfExpression:
		y, ok := b.(IfExpression)
		return ok && Equal(x.Condition, y.Condition) && Equal(x.WhenTrue, y.WhenTrue) && Equal(x.WhenFalse, y.WhenFalse)
	case FunctionDeclaration:
		y, ok := b.(FunctionDeclaration)
		if !ok || x.Identifier != y.Identifier || len(x.Parameters) != len(y.Parameters) {
			return false
		}
		for i := range x.Parameters {
			if x.Parameters[i] != y.Parameters[i] {
				return false
			}
		}
		return Equal(x.Body, y.Body)
	default:
		// literals and identifiers are comparable
		return a == b
	}
}

func equalAll(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
