package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"risp/engine"
	"risp/engine/interpreter"
)

type scriptedInput struct {
	lines   []string
	history []string
}

func (s *scriptedInput) Prompt(string) (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	if line == "^C" {
		return "", liner.ErrPromptAborted
	}
	return line, nil
}

func (s *scriptedInput) AppendHistory(item string) {
	s.history = append(s.history, item)
}

func TestRepl(t *testing.T) {
	out := &bytes.Buffer{}
	e := engine.NewEngine(zaptest.NewLogger(t), interpreter.WithOutput(out))
	in := &scriptedInput{lines: []string{
		"(define x 5)",
		"",
		"(add x",
		"^C",
		"(defn twice [a] (add a a))",
		"(twice x)",
		"(car 1)",
		"unknown",
	}}

	code := repl(e, in, out)
	assert.Equal(t, 0, code)
	assert.Equal(t, banner+"\n\n"+
		"5\n"+
		"MissingToken: input ended before a required token\n"+
		"#<Function:twice>\n"+
		"10\n"+
		"TypeError{expected: List, actual: Number}: car requires a List\n"+
		"nil\n"+
		"\n", out.String())
	assert.Equal(t, []string{"(define x 5)", "(add x", "(defn twice [a] (add a a))", "(twice x)", "(car 1)", "unknown"}, in.history)
}

func TestRepl_Quit(t *testing.T) {
	out := &bytes.Buffer{}
	e := engine.NewEngine(zaptest.NewLogger(t), interpreter.WithOutput(out))
	in := &scriptedInput{lines: []string{":quit", "(println \"never\")"}}
	assert.Equal(t, 0, repl(e, in, out))
	assert.NotContains(t, out.String(), "never")
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.risp")
	bad := filepath.Join(dir, "bad.risp")
	require.NoError(t, os.WriteFile(good, []byte("(define x 1) (add x 1)"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("(subtract)"), 0o644))

	out := &bytes.Buffer{}
	e := engine.NewEngine(zaptest.NewLogger(t))
	assert.Equal(t, 0, runFile(e, good, out))
	assert.Empty(t, out.String())

	assert.Equal(t, 1, runFile(e, bad, out))
	assert.Contains(t, out.String(), "TooFewArguments")

	out.Reset()
	assert.Equal(t, 1, runFile(e, filepath.Join(dir, "missing.risp"), out))
	assert.Contains(t, out.String(), "IOError(NotFound)")
}

func TestArgs_Valid(t *testing.T) {
	scenarios := []struct {
		args  Args
		valid bool
	}{
		{Args{HistoryFile: ".risp_history"}, true},
		{Args{HistoryFile: ".risp_history", MetricsAddr: ":2112"}, true},
		{Args{HistoryFile: ".risp_history", MetricsAddr: "localhost"}, false},
		{Args{HistoryFile: " "}, false},
	}
	for _, scenario := range scenarios {
		err := scenario.args.Valid()
		if scenario.valid {
			assert.NoError(t, err, "%+v", scenario.args)
		} else {
			assert.Error(t, err, "%+v", scenario.args)
		}
	}
}

func TestMetricsRouter(t *testing.T) {
	_, err := engine.NewEngine(zaptest.NewLogger(t)).Run("(add 1 2)")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	metricsRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "risp_evaluations_total")
	assert.Contains(t, rec.Body.String(), "risp_stage_duration_seconds")
}

func TestNewLogger(t *testing.T) {
	for _, dev := range []bool{true, false} {
		logger, err := newLogger(dev)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}
}
