package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"tinylang/internal/ast"
	"tinylang/internal/config"
	"tinylang/internal/interpreter"
	"tinylang/internal/parser"
)

// host feeds sources to the parser and interpreter and reports the results.
type host struct {
	cfg    *config.Config
	parser *parser.Parser
	stdin  io.Reader
	out    reporter
	log    *log.Logger
}

func newHost(cfg *config.Config, stdin io.Reader, stdout io.Writer, logger *log.Logger) *host {
	var out reporter = &textReporter{w: stdout}
	if cfg.Output.Format == config.FormatYAML {
		out = &yamlReporter{w: stdout}
	}
	return &host{
		cfg:    cfg,
		parser: parser.New(parser.MaxSourceBytes(cfg.Parser.MaxSourceBytes)),
		stdin:  stdin,
		out:    out,
		log:    logger,
	}
}

func (h *host) interpreter(env *interpreter.Environment) *interpreter.Interpreter {
	return interpreter.New(
		interpreter.WithEnvironment(env),
		interpreter.WithRollback(h.cfg.Interpreter.RollbackOnError),
	)
}

// parseFiles runs every file and returns the exit status.
func (h *host) parseFiles(files []string) int {
	status := 0
	env := interpreter.NewEnvironment()
	for _, file := range files {
		if !h.cfg.Host.ShareEnvironment {
			env = interpreter.NewEnvironment()
		}
		if err := h.runFile(file, env); err != nil {
			h.log.Print(err)
			status = 1
			if !h.cfg.Host.KeepGoing {
				break
			}
		}
	}
	return status
}

func (h *host) runFile(file string, env *interpreter.Environment) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	source := string(data)

	rep := &report{File: file}
	if h.cfg.Output.ShowSource {
		rep.Source = source
	}

	prog, err := h.parser.Parse(file, source)
	if err != nil {
		err = parseDiagnostic(err)
		rep.Error = err.Error()
		return errors.Join(h.out.write(rep), err)
	}
	if h.cfg.Output.ShowAST {
		rep.AST = ast.Format(prog)
	}

	outcomes, runErr := h.interpreter(env).Run(prog)
	rep.Outcomes = outcomes
	rep.Env = env
	if runErr != nil {
		runErr = evalDiagnostic(file, runErr)
		rep.Error = runErr.Error()
	}
	return errors.Join(h.out.write(rep), runErr)
}

// repl runs standard input line by line against one environment. Errors are
// reported and the loop continues.
func (h *host) repl() int {
	in := h.interpreter(nil)
	r := bufio.NewReader(h.stdin)
	prompt := h.log.Writer()

	for {
		fmt.Fprint(prompt, "> ")
		line, err := r.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			h.evalLine(in, line)
		}

		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(prompt, "^D")
			return 0
		case err != nil:
			h.log.Print(err)
			return 1
		}
	}
}

func (h *host) evalLine(in *interpreter.Interpreter, line string) {
	prog, err := h.parser.Parse(stdinName, line)
	if err != nil {
		h.log.Print(parseDiagnostic(err))
		return
	}
	outcomes, err := in.Run(prog)
	if werr := h.out.outcomes(outcomes); werr != nil {
		h.log.Print(werr)
	}
	if err != nil {
		h.log.Print(evalDiagnostic(stdinName, err))
	}
}

const stdinName = "<stdin>"

// parseDiagnostic renders err as "file:line:col: parse error: message".
func parseDiagnostic(err error) error {
	var perr parser.Error
	if !errors.As(err, &perr) {
		return err
	}
	return fmt.Errorf("%s: parse error: %s", perr.Position(), perr.Message())
}

// evalDiagnostic renders err as "file: statement N: eval error: message".
func evalDiagnostic(file string, err error) error {
	var serr *interpreter.StatementError
	if !errors.As(err, &serr) {
		return fmt.Errorf("%s: eval error: %w", file, err)
	}
	return fmt.Errorf("%s: statement %d: eval error: %w", file, serr.Index+1, serr.Err)
}
