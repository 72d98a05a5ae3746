package interpreter

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"risp/engine/ast"
	"risp/lib/rerror"
	"risp/lib/value"
)

type builtin func(i *Interpreter, arguments []ast.Node) (value.Value, error)

// Builtins are resolved before any user binding, so defining a function
// called "add" never shadows the builtin.
func lookupBuiltin(name string) (builtin, bool) {
	switch name {
	case "add":
		return add, true
	case "subtract":
		return subtract, true
	case "define":
		return define, true
	case "car":
		return car, true
	case "cdr":
		return cdr, true
	case "is-empty":
		return isEmpty, true
	case "is-nil":
		return isNil, true
	case "append":
		return appendList, true
	case "prepend":
		return prependList, true
	case "println":
		return printLine, true
	}
	return nil, false
}

// IsBuiltin reports whether name is handled natively by the interpreter.
func IsBuiltin(name string) bool {
	_, ok := lookupBuiltin(name)
	return ok
}

func add(i *Interpreter, arguments []ast.Node) (value.Value, error) {
	numbers, err := i.numberArguments("add", arguments)
	if err != nil {
		return value.Nil, err
	}
	return value.Number(lo.SumBy(numbers, func(n int64) int64 { return n })), nil
}

func subtract(i *Interpreter, arguments []ast.Node) (value.Value, error) {
	numbers, err := i.numberArguments("subtract", arguments)
	if err != nil {
		return value.Nil, err
	}
	return value.Number(lo.Reduce(numbers[1:], func(acc int64, n int64, _ int) int64 {
		return acc - n
	}, numbers[0])), nil
}

// numberArguments evaluates the arguments in order and requires at least
// one, all of them numbers. It stops at the first argument that fails or is
// not a number.
func (i *Interpreter) numberArguments(name string, arguments []ast.Node) ([]int64, error) {
	numbers := make([]int64, 0, len(arguments))
	for _, argument := range arguments {
		v, err := i.Evaluate(argument)
		if err != nil {
			return nil, err
		}
		n, ok := v.(value.Number)
		if !ok {
			return nil, rerror.TypeMismatch(value.Types.Number, v.Type(),
				fmt.Sprintf("%s requires all arguments to be Numbers", name))
		}
		numbers = append(numbers, int64(n))
	}
	if len(numbers) == 0 {
		return nil, rerror.TooFewArguments("%s requires at least one argument", name)
	}
	return numbers, nil
}

func define(i *Interpreter, arguments []ast.Node) (value.Value, error) {
	if len(arguments) != 2 {
		return value.Nil, rerror.ArgumentError("define expects 2 arguments, got %d", len(arguments))
	}
	id, ok := arguments[0].(ast.Identifier)
	if !ok {
		return value.Nil, rerror.ArgumentError("define expects an identifier, got %s", ast.Print(arguments[0]))
	}
	v, err := i.Evaluate(arguments[1])
	if err != nil {
		return value.Nil, err
	}
	i.envs.Set(id.Name, v)
	i.logger.Debug("defined", zap.String("name", id.Name), zap.Stringer("value", v), zap.Int("depth", i.envs.Depth()))
	return v, nil
}

// exactly evaluates arguments after checking there are n of them.
func (i *Interpreter) exactly(name string, n int, arguments []ast.Node) ([]value.Value, error) {
	if len(arguments) != n {
		return nil, rerror.ArgumentError("%s expects %d argument(s), got %d", name, n, len(arguments))
	}
	return i.evaluateAll(arguments)
}

func asList(name string, v value.Value) (value.List, error) {
	l, ok := v.(value.List)
	if !ok {
		return nil, rerror.TypeMismatch(value.Types.List, v.Type(), fmt.Sprintf("%s requires a List", name))
	}
	return l, nil
}

// car returns the first element of a list, or nil for an empty list.
func car(i *Interpreter, arguments []ast.Node) (value.Value, error) {
	values, err := i.exactly("car", 1, arguments)
	if err != nil {
		return value.Nil, err
	}
	l, err := asList("car", values[0])
	if err != nil {
		return value.Nil, err
	}
	if len(l) == 0 {
		return value.Nil, nil
	}
	return l[0], nil
}

// cdr returns everything but the first element; the cdr of an empty list is
// an empty list.
func cdr(i *Interpreter, arguments []ast.Node) (value.Value, error) {
	values, err := i.exactly("cdr", 1, arguments)
	if err != nil {
		return value.Nil, err
	}
	l, err := asList("cdr", values[0])
	if err != nil {
		return value.Nil, err
	}
	if len(l) == 0 {
		return value.NewList(), nil
	}
	return value.NewList(l[1:]...), nil
}

func isEmpty(i *Interpreter, arguments []ast.Node) (value.Value, error) {
	values, err := i.exactly("is-empty", 1, arguments)
	if err != nil {
		return value.Nil, err
	}
	l, err := asList("is-empty", values[0])
	if err != nil {
		return value.Nil, err
	}
	return value.Boolean(len(l) == 0), nil
}

func isNil(i *Interpreter, arguments []ast.Node) (value.Value, error) {
	values, err := i.exactly("is-nil", 1, arguments)
	if err != nil {
		return value.Nil, err
	}
	return value.Boolean(values[0].Equal(value.Nil)), nil
}

// appendList is (append list v): a new list with v after the last element.
func appendList(i *Interpreter, arguments []ast.Node) (value.Value, error) {
	values, err := i.exactly("append", 2, arguments)
	if err != nil {
		return value.Nil, err
	}
	l, err := asList("append", values[0])
	if err != nil {
		return value.Nil, err
	}
	ret := value.NewList(l...)
	return append(ret, values[1]), nil
}

// prependList is (prepend list v): a new list with v before the first element.
func prependList(i *Interpreter, arguments []ast.Node) (value.Value, error) {
	values, err := i.exactly("prepend", 2, arguments)
	if err != nil {
		return value.Nil, err
	}
	l, err := asList("prepend", values[0])
	if err != nil {
		return value.Nil, err
	}
	return value.NewList(append([]value.Value{values[1]}, l...)...), nil
}

// printLine writes the display forms of its arguments, space separated, and
// returns them as a list.
func printLine(i *Interpreter, arguments []ast.Node) (value.Value, error) {
	values, err := i.evaluateAll(arguments)
	if err != nil {
		return value.Nil, err
	}
	line := strings.Join(lo.Map(values, func(v value.Value, _ int) string { return v.Display() }), " ")
	if _, err := fmt.Fprintln(i.out, line); err != nil {
		i.logger.Warn("println failed", zap.Error(err))
	}
	return value.List(values), nil
}
