package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"risp/engine/ast"
)

type Value interface {
	isValue()
	Type() Type
	Equal(v Value) bool
	// Truthy decides which branch an if-expression takes.
	Truthy() bool
	// Display is the form printed by println and the REPL.
	Display() string
	// String is a debug form that keeps the variant visible.
	String() string
	Clone() Value
}

var _ Value = Number(0)
var _ Value = String("")
var _ Value = Boolean(true)
var _ Value = List([]Value{Number(0), Boolean(true)})
var _ Value = Function{}
var _ Value = nil_{}

type Number int64

func (n Number) isValue()   {}
func (n Number) Type() Type { return Types.Number }
func (n Number) Equal(v Value) bool {
	switch v.(type) {
	case Number:
		return v.(Number) == n
	default:
		return false
	}
}
func (n Number) Truthy() bool    { return n > 0 }
func (n Number) Display() string { return strconv.FormatInt(int64(n), 10) }
func (n Number) String() string  { return fmt.Sprintf("Number(%d)", int64(n)) }
func (n Number) Clone() Value    { return Number(n) }

type String string

func (s String) isValue()   {}
func (s String) Type() Type { return Types.String }
func (s String) Equal(v Value) bool {
	switch v.(type) {
	case String:
		return v.(String) == s
	default:
		return false
	}
}
func (s String) Truthy() bool    { return len(s) > 0 }
func (s String) Display() string { return string(s) }
func (s String) String() string  { return fmt.Sprintf("String(%q)", string(s)) }
func (s String) Clone() Value    { return String(s) }

type Boolean bool

func (b Boolean) isValue()   {}
func (b Boolean) Type() Type { return Types.Boolean }
func (b Boolean) Equal(v Value) bool {
	switch v.(type) {
	case Boolean:
		return v.(Boolean) == b
	default:
		return false
	}
}
func (b Boolean) Truthy() bool    { return bool(b) }
func (b Boolean) Display() string { return strconv.FormatBool(bool(b)) }
func (b Boolean) String() string  { return fmt.Sprintf("Boolean(%v)", bool(b)) }
func (b Boolean) Clone() Value    { return Boolean(b) }

type nil_ struct{}

var Nil = nil_{}

func (n nil_) isValue()   {}
func (n nil_) Type() Type { return Types.Nil }
func (n nil_) Equal(v Value) bool {
	switch v.(type) {
	case nil_:
		return true
	default:
		return false
	}
}
func (n nil_) Truthy() bool    { return false }
func (n nil_) Display() string { return "nil" }
func (n nil_) String() string  { return "Nil" }
func (n nil_) Clone() Value    { return Nil }

type List []Value

func NewList(values ...Value) List {
	ret := make([]Value, 0, len(values))
	ret = append(ret, values...)
	return List(ret)
}

func (l List) isValue()   {}
func (l List) Type() Type { return Types.List }
func (l List) Equal(right Value) bool {
	switch right.(type) {
	case List:
		r := right.(List)
		if len(r) != len(l) {
			return false
		}
		for i, lv := range l {
			if !lv.Equal(r[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
func (l List) Truthy() bool { return len(l) > 0 }
func (l List) Display() string {
	parts := lo.Map(l, func(v Value, _ int) string { return v.Display() })
	return "(" + strings.Join(parts, " ") + ")"
}
func (l List) String() string {
	parts := lo.Map(l, func(v Value, _ int) string { return v.String() })
	return "List([" + strings.Join(parts, ", ") + "])"
}
func (l List) Clone() Value {
	clone := make([]Value, 0, len(l))
	for _, v := range l {
		clone = append(clone, v.Clone())
	}
	return List(clone)
}

// Function is a user-defined function. It owns a private copy of its body
// and does not capture the environment it was declared in.
type Function struct {
	Identifier string
	Parameters []string
	Body       ast.Node
}

func NewFunction(identifier string, parameters []string, body ast.Node) Function {
	params := make([]string, len(parameters))
	copy(params, parameters)
	return Function{Identifier: identifier, Parameters: params, Body: ast.Clone(body)}
}

// Arity is the exact number of arguments every call must supply.
func (f Function) Arity() int { return len(f.Parameters) }

func (f Function) isValue()   {}
func (f Function) Type() Type { return Types.Function }
func (f Function) Equal(v Value) bool {
	other, ok := v.(Function)
	if !ok || other.Identifier != f.Identifier || len(other.Parameters) != len(f.Parameters) {
		return false
	}
	for i, p := range f.Parameters {
		if other.Parameters[i] != p {
			return false
		}
	}
	return ast.Equal(f.Body, other.Body)
}
func (f Function) Truthy() bool    { return true }
func (f Function) Display() string { return fmt.Sprintf("#<Function:%s>", f.Identifier) }
func (f Function) String() string {
	return fmt.Sprintf("Function(%s [%s])", f.Identifier, strings.Join(f.Parameters, " "))
}
func (f Function) Clone() Value {
	return NewFunction(f.Identifier, f.Parameters, f.Body)
}
