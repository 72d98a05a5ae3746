package main

import (
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"risp/engine"
)

type Args struct {
	Filename    string `arg:"positional" help:"program to run; starts the REPL when omitted"`
	Dev         bool   `arg:"--dev,env:RISP_DEV" help:"human readable debug logging"`
	HistoryFile string `arg:"--history-file,env:RISP_HISTORY" default:".risp_history" help:"REPL history file, relative to the home directory"`
	MetricsAddr string `arg:"--metrics-addr,env:RISP_METRICS_ADDR" help:"serve prometheus metrics on this address, e.g. :2112"`
}

func (Args) Description() string {
	return "risp evaluates RISP programs from a file or an interactive prompt"
}

func (args Args) Valid() error {
	invalid := make([]string, 0)
	if args.MetricsAddr != "" {
		if _, _, err := net.SplitHostPort(args.MetricsAddr); err != nil {
			invalid = append(invalid, fmt.Sprintf("RISP_METRICS_ADDR (%v)", err))
		}
	}
	if strings.TrimSpace(args.HistoryFile) == "" {
		invalid = append(invalid, "RISP_HISTORY")
	}
	if len(invalid) > 0 {
		return fmt.Errorf("invalid fields: %s", strings.Join(invalid, ", "))
	}
	return nil
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	// keep the REPL output readable; only problems are logged outside dev
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return config.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	)
}

func main() {
	var args Args
	p := arg.MustParse(&args)
	if err := args.Valid(); err != nil {
		p.Fail(err.Error())
	}

	logger, err := newLogger(args.Dev)
	if err != nil {
		log.Fatalf("failed to construct logger: %v", err)
	}
	_ = zap.ReplaceGlobals(logger)

	code := run(args, logger)
	_ = logger.Sync()
	os.Exit(code)
}

func run(args Args, logger *zap.Logger) int {
	if args.MetricsAddr != "" {
		go serveMetrics(args.MetricsAddr, logger)
	}
	e := engine.NewEngine(logger)
	if args.Filename != "" {
		return runFile(e, args.Filename, os.Stdout)
	}
	return runRepl(e, args.HistoryFile, logger)
}

// runFile runs a program and returns the process exit status.
func runFile(e *engine.Engine, path string, out io.Writer) int {
	if _, err := e.RunFile(path); err != nil {
		zap.L().Error("program failed", zap.String("path", path), zap.Error(err))
		fmt.Fprintln(out, err.Error())
		return 1
	}
	return 0
}
