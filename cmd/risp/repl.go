package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"go.uber.org/zap"

	"risp/engine"
)

const (
	banner = "Welcome to RISP 🎉"
	prompt = "> "
)

// lineReader is the part of *liner.State the loop needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

func runRepl(e *engine.Engine, historyFile string, logger *zap.Logger) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyFile
	if !filepath.IsAbs(histPath) {
		if home, err := os.UserHomeDir(); err == nil {
			histPath = filepath.Join(home, historyFile)
		}
	}
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		f, err := os.Create(histPath)
		if err != nil {
			logger.Warn("could not save history", zap.String("path", histPath), zap.Error(err))
			return
		}
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}()

	return repl(e, ln, os.Stdout)
}

// repl reads one line at a time and evaluates it against e until input
// ends or the user types :quit. Failures are reported and the loop goes on.
func repl(e *engine.Engine, in lineReader, out io.Writer) int {
	fmt.Fprintf(out, "%s\n\n", banner)
	for {
		line, err := in.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			if !errors.Is(err, io.EOF) {
				zap.L().Error("could not read a line", zap.Error(err))
				return 1
			}
			fmt.Fprintln(out)
			return 0
		}

		expression := strings.TrimSpace(line)
		if expression == "" {
			continue
		}
		if expression == ":quit" {
			return 0
		}
		in.AppendHistory(expression)

		v, err := e.Run(expression)
		if err != nil {
			fmt.Fprintln(out, err.Error())
			continue
		}
		fmt.Fprintln(out, v.Display())
	}
}
