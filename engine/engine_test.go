package engine

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"risp/engine/interpreter"
	"risp/lib/rerror"
	"risp/lib/value"
)

func newEngine(t *testing.T) (*Engine, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewEngine(zaptest.NewLogger(t), interpreter.WithOutput(out)), out
}

func TestEngine_RunKeepsBindings(t *testing.T) {
	e, _ := newEngine(t)
	_, err := e.Run("(define x 5)")
	require.NoError(t, err)
	_, err = e.Run("(defn add-x [a] (add a x))")
	require.NoError(t, err)

	v, err := e.Run("(add-x 4)")
	require.NoError(t, err)
	assert.Equal(t, value.Number(9), v)
}

func TestEngine_RunReturnsLastValue(t *testing.T) {
	e, _ := newEngine(t)
	v, err := e.Run("1 2 (list 3)")
	require.NoError(t, err)
	assert.Equal(t, value.NewList(value.Number(3)), v)

	v, err = e.Run("   ")
	require.NoError(t, err)
	assert.Equal(t, value.Nil, v)
}

func TestEngine_RunStopsAtFirstFailure(t *testing.T) {
	e, out := newEngine(t)
	_, err := e.Run(`(define a 1) (nope) (println "after")`)
	kind, ok := rerror.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, rerror.KindUndefinedFunction, kind)
	assert.Empty(t, out.String())

	// earlier definitions survive the failure
	v, err := e.Run("a")
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestEngine_ParseErrorEvaluatesNothing(t *testing.T) {
	e, out := newEngine(t)
	_, err := e.Run(`(println "x") (add 1 2`)
	assert.ErrorIs(t, err, rerror.MissingToken())
	assert.Empty(t, out.String())
}

func TestEngine_CountsEvaluations(t *testing.T) {
	e, _ := newEngine(t)
	ok := testutil.ToFloat64(evaluations.WithLabelValues("ok"))
	failed := testutil.ToFloat64(evaluations.WithLabelValues("error"))

	_, err := e.Run("(add 1 2) 3")
	require.NoError(t, err)
	_, err = e.Run("(add)")
	require.Error(t, err)

	assert.Equal(t, ok+2, testutil.ToFloat64(evaluations.WithLabelValues("ok")))
	assert.Equal(t, failed+1, testutil.ToFloat64(evaluations.WithLabelValues("error")))
}

func TestEngine_RunFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.risp")
	program := `
(defn square-ish [a] (add a a))
(define result (square-ish 21))
(println "result:" result)
`
	require.NoError(t, os.WriteFile(path, []byte(program), 0o644))

	e, out := newEngine(t)
	v, err := e.RunFile(path)
	require.NoError(t, err)
	assert.Equal(t, value.NewList(value.String("result:"), value.Number(42)), v)
	assert.Equal(t, "result: 42\n", out.String())
}

func TestEngine_RunFileMissing(t *testing.T) {
	e, _ := newEngine(t)
	_, err := e.RunFile(filepath.Join(t.TempDir(), "missing.risp"))

	var rerr *rerror.Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, rerror.KindIOError, rerr.Kind)
	assert.Equal(t, "NotFound", rerr.IOKind)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParseAndEvaluate(t *testing.T) {
	v, err := ParseAndEvaluate("(add 1 2) (nope)")
	require.NoError(t, err)
	assert.Equal(t, value.Number(3), v)
	assert.Equal(t, "3", v.Display())

	_, err = ParseAndEvaluate("(1 2)")
	kind, _ := rerror.KindOf(err)
	assert.Equal(t, rerror.KindUnexpectedToken, kind)
}
