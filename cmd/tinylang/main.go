package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"git.sr.ht/~sircmpwn/getopt"

	"tinylang/internal/config"
	"tinylang/internal/parser"
)

const usageText = `usage: tinylang [-aehkrs] [-c config] [-f text|yaml] command [file...]

commands:
    parse file...   parse and execute each file
    repl            read statements from standard input (default)
    help            show this message and the grammar
    credits         show credits

options:
    -a              print the AST of each file
    -c config       read configuration from a YAML file
    -e              share variables between files
    -f format       output format, text or yaml
    -h              show this message
    -k              keep going after a failing file
    -r              roll back the variables of a failing run
    -s              print the source of each file
`

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "tinylang: ", 0)

	opts, optind, err := getopt.Getopts(args, "ac:ef:hkrs")
	if err != nil {
		logger.Print(err)
		fmt.Fprint(stderr, usageText)
		return 2
	}

	// The config file is read first so flags override it.
	cfg := config.Default()
	for _, opt := range opts {
		if opt.Option == 'c' {
			if cfg, err = config.Load(opt.Value); err != nil {
				logger.Print(err)
				return 2
			}
		}
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'a':
			cfg.Output.ShowAST = true
		case 'e':
			cfg.Host.ShareEnvironment = true
		case 'f':
			cfg.Output.Format = opt.Value
		case 'h':
			fmt.Fprint(stdout, usageText)
			return 0
		case 'k':
			cfg.Host.KeepGoing = true
		case 'r':
			cfg.Interpreter.RollbackOnError = true
		case 's':
			cfg.Output.ShowSource = true
		}
	}
	if err := cfg.Validate(); err != nil {
		logger.Print(err)
		return 2
	}

	command, rest := "repl", args[optind:]
	if len(rest) > 0 {
		command, rest = rest[0], rest[1:]
	}

	h := newHost(cfg, stdin, stdout, logger)
	switch command {
	case "parse":
		if len(rest) == 0 {
			logger.Print("parse: no input files")
			fmt.Fprint(stderr, usageText)
			return 2
		}
		return h.parseFiles(rest)
	case "repl":
		return h.repl()
	case "help":
		fmt.Fprint(stdout, usageText)
		fmt.Fprintf(stdout, "\ngrammar:\n%s\n", parser.Grammar())
		return 0
	case "credits":
		fmt.Fprint(stdout, creditsText)
		return 0
	}
	logger.Printf("unknown command %q", command)
	fmt.Fprint(stderr, usageText)
	return 2
}

const creditsText = `tinylang
A parser and tree-walking interpreter for a tiny arithmetic language.

features:
    - assignments and integer arithmetic with + - * / and parentheses
    - grammar-driven parsing into an abstract syntax tree
    - interpreter with a variable environment
    - checked arithmetic and positioned diagnostics
`
