package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"tinylang/internal/interpreter"
)

// report is what the host knows about one file.
type report struct {
	File     string
	Source   string
	AST      string
	Outcomes []interpreter.Outcome
	Env      *interpreter.Environment
	Error    string
}

type reporter interface {
	write(rep *report) error
	outcomes(outs []interpreter.Outcome) error
}

type textReporter struct {
	w io.Writer
}

func (t *textReporter) write(rep *report) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "== %s\n", rep.File)
	if rep.Source != "" {
		fmt.Fprintf(&sb, "source:\n%s", rep.Source)
		if !strings.HasSuffix(rep.Source, "\n") {
			sb.WriteByte('\n')
		}
	}
	if rep.AST != "" {
		fmt.Fprintf(&sb, "ast:\n%s\n", rep.AST)
	}
	for _, out := range rep.Outcomes {
		fmt.Fprintln(&sb, out)
	}
	if rep.Env != nil {
		fmt.Fprintf(&sb, "variables: %s\n", rep.Env)
	}
	_, err := io.WriteString(t.w, sb.String())
	return err
}

func (t *textReporter) outcomes(outs []interpreter.Outcome) error {
	for _, out := range outs {
		if _, err := fmt.Fprintln(t.w, out); err != nil {
			return err
		}
	}
	return nil
}

type yamlReporter struct {
	w io.Writer
}

type yamlDocument struct {
	File      string           `yaml:"file"`
	Source    string           `yaml:"source,omitempty"`
	AST       string           `yaml:"ast,omitempty"`
	Outcomes  []yamlOutcome    `yaml:"outcomes"`
	Variables map[string]int64 `yaml:"variables,omitempty"`
	Error     string           `yaml:"error,omitempty"`
}

type yamlOutcome struct {
	Name  string `yaml:"name,omitempty"`
	Value int64  `yaml:"value"`
}

func toYAMLOutcomes(outs []interpreter.Outcome) []yamlOutcome {
	docs := make([]yamlOutcome, 0, len(outs))
	for _, out := range outs {
		docs = append(docs, yamlOutcome{Name: out.Name, Value: int64(out.Value)})
	}
	return docs
}

func (y *yamlReporter) write(rep *report) error {
	doc := yamlDocument{
		File:     rep.File,
		Source:   rep.Source,
		AST:      rep.AST,
		Outcomes: toYAMLOutcomes(rep.Outcomes),
		Error:    rep.Error,
	}
	if rep.Env != nil {
		doc.Variables = make(map[string]int64, rep.Env.Len())
		for name, v := range rep.Env.Map() {
			doc.Variables[name] = int64(v)
		}
	}
	return y.document(doc)
}

func (y *yamlReporter) outcomes(outs []interpreter.Outcome) error {
	if len(outs) == 0 {
		return nil
	}
	return y.document(toYAMLOutcomes(outs))
}

func (y *yamlReporter) document(v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(y.w, "---\n"); err != nil {
		return err
	}
	_, err = y.w.Write(data)
	return err
}
