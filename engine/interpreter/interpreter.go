package interpreter

import (
	"io"
	"os"

	"go.uber.org/zap"

	"risp/engine/ast"
	"risp/lib/rerror"
	"risp/lib/value"
)

// Interpreter evaluates trees against one long-lived EnvironmentStack, so
// definitions made by one Evaluate call are visible to the next.
type Interpreter struct {
	envs   *EnvironmentStack
	out    io.Writer
	logger *zap.Logger
}

var _ ast.Visitor[value.Value] = (*Interpreter)(nil)

type Option func(*Interpreter)

// WithOutput sets where println writes. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

func WithLogger(logger *zap.Logger) Option {
	return func(i *Interpreter) { i.logger = logger }
}

// WithEnvironments evaluates against an existing stack instead of a fresh one.
func WithEnvironments(envs *EnvironmentStack) Option {
	return func(i *Interpreter) { i.envs = envs }
}

func NewInterpreter(opts ...Option) *Interpreter {
	i := &Interpreter{
		envs:   NewEnvironmentStack(),
		out:    os.Stdout,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Evaluate evaluates node against envs with a throwaway interpreter. It
// prints to stdout unless opts say otherwise.
func Evaluate(node ast.Node, envs *EnvironmentStack, opts ...Option) (value.Value, error) {
	return NewInterpreter(append([]Option{WithEnvironments(envs)}, opts...)...).Evaluate(node)
}

func (i *Interpreter) Evaluate(node ast.Node) (value.Value, error) {
	return ast.Accept[value.Value](node, i)
}

func (i *Interpreter) Environments() *EnvironmentStack {
	return i.envs
}

func (i *Interpreter) VisitNumber(n int64) (value.Value, error) {
	return value.Number(n), nil
}

func (i *Interpreter) VisitBoolean(b bool) (value.Value, error) {
	return value.Boolean(b), nil
}

func (i *Interpreter) VisitString(s string) (value.Value, error) {
	return value.String(s), nil
}

// VisitIdentifier evaluates an unbound name to Nil rather than failing.
func (i *Interpreter) VisitIdentifier(name string) (value.Value, error) {
	return i.envs.Get(name).OrElse(value.Nil), nil
}

func (i *Interpreter) VisitList(elements []ast.Node) (value.Value, error) {
	ret, err := i.evaluateAll(elements)
	if err != nil {
		return value.Nil, err
	}
	return value.List(ret), nil
}

func (i *Interpreter) VisitIf(condition, whenTrue, whenFalse ast.Node) (value.Value, error) {
	cond, err := i.Evaluate(condition)
	if err != nil {
		return value.Nil, err
	}
	if cond.Truthy() {
		return i.Evaluate(whenTrue)
	}
	return i.Evaluate(whenFalse)
}

func (i *Interpreter) VisitFunctionDeclaration(identifier string, parameters []string, body ast.Node) (value.Value, error) {
	f := value.NewFunction(identifier, parameters, body)
	i.envs.Set(identifier, f)
	i.logger.Debug("declared function",
		zap.String("name", identifier),
		zap.Strings("parameters", parameters),
		zap.Int("depth", i.envs.Depth()),
	)
	return f, nil
}

// VisitCall runs a builtin when name is one, otherwise calls the user
// function bound to name.
func (i *Interpreter) VisitCall(name string, arguments []ast.Node) (value.Value, error) {
	if fn, ok := lookupBuiltin(name); ok {
		return fn(i, arguments)
	}
	bound := i.envs.Get(name)
	if bound.IsAbsent() {
		return value.Nil, rerror.UndefinedFunction(name)
	}
	f, ok := bound.MustGet().(value.Function)
	if !ok {
		return value.Nil, rerror.NotAFunction(name)
	}
	return i.call(f, arguments)
}

func (i *Interpreter) call(f value.Function, arguments []ast.Node) (value.Value, error) {
	if f.Arity() != len(arguments) {
		return value.Nil, rerror.TooFewArguments("%s expects %d arguments, got %d", f.Identifier, f.Arity(), len(arguments))
	}
	// arguments are evaluated in the caller's frame, before the callee's is pushed
	bindings := make(map[string]value.Value, len(arguments))
	for idx, arg := range arguments {
		v, err := i.Evaluate(arg)
		if err != nil {
			return value.Nil, err
		}
		bindings[f.Parameters[idx]] = v
	}

	i.envs.PushEnvironment(bindings)
	i.logger.Debug("entering function", zap.String("name", f.Identifier), zap.Int("depth", i.envs.Depth()))
	defer func() {
		_ = i.envs.PopEnvironment()
		i.logger.Debug("leaving function", zap.String("name", f.Identifier), zap.Int("depth", i.envs.Depth()))
	}()

	return i.Evaluate(f.Body)
}

func (i *Interpreter) evaluateAll(nodes []ast.Node) ([]value.Value, error) {
	ret := make([]value.Value, 0, len(nodes))
	for _, n := range nodes {
		v, err := i.Evaluate(n)
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}
