package engine

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"risp/engine/ast"
	"risp/engine/interpreter"
	"risp/engine/lexer"
	"risp/engine/parser"
	"risp/lib/rerror"
	"risp/lib/timer"
	"risp/lib/value"
)

var evaluations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "risp_evaluations_total",
	Help: "Top-level expressions evaluated, by outcome",
}, []string{"outcome"})

// Engine drives source text through tokenize, parse and evaluate against a
// single interpreter, so bindings persist across Run calls.
type Engine struct {
	ip     *interpreter.Interpreter
	logger *zap.Logger
}

func NewEngine(logger *zap.Logger, opts ...interpreter.Option) *Engine {
	opts = append([]interpreter.Option{interpreter.WithLogger(logger)}, opts...)
	return &Engine{
		ip:     interpreter.NewInterpreter(opts...),
		logger: logger,
	}
}

func (e *Engine) Interpreter() *interpreter.Interpreter {
	return e.ip
}

// Run evaluates every top-level expression of source in order and returns
// the value of the last one, or Nil when there is none. Evaluation stops at
// the first failure; bindings made before it are kept.
func (e *Engine) Run(source string) (value.Value, error) {
	nodes, err := Parse(source)
	if err != nil {
		return value.Nil, err
	}
	var ret value.Value = value.Nil
	for _, node := range nodes {
		ret, err = e.evaluate(node)
		if err != nil {
			return value.Nil, err
		}
	}
	return ret, nil
}

// RunFile reads path and runs it as a program.
func (e *Engine) RunFile(path string) (value.Value, error) {
	e.logger.Info("loading file", zap.String("path", path))
	source, err := os.ReadFile(path)
	if err != nil {
		return value.Nil, rerror.IO(err, path)
	}
	return e.Run(string(source))
}

func (e *Engine) evaluate(node ast.Node) (value.Value, error) {
	defer timer.Start("risp.eval").Stop()
	ret, err := e.ip.Evaluate(node)
	if err != nil {
		evaluations.WithLabelValues("error").Inc()
		e.logger.Debug("evaluation failed", zap.String("expression", ast.Print(node)), zap.Error(err))
		return value.Nil, err
	}
	evaluations.WithLabelValues("ok").Inc()
	return ret, nil
}

// Parse tokenizes and parses a whole program.
func Parse(source string) ([]ast.Node, error) {
	defer timer.Start("risp.parse").Stop()
	return parser.Parse(lexer.Tokenize(source))
}

// ParseAndEvaluate evaluates the first expression of source with a fresh
// interpreter; anything after it is ignored.
func ParseAndEvaluate(source string) (value.Value, error) {
	node, err := parser.ParseNode(parser.NewCursor(lexer.Tokenize(source)))
	if err != nil {
		return value.Nil, err
	}
	return interpreter.NewInterpreter().Evaluate(node)
}
