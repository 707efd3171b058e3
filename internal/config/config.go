// Package config loads the YAML configuration of the tinylang tool.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

type Config struct {
	Parser      Parser      `yaml:"parser"`
	Interpreter Interpreter `yaml:"interpreter"`
	Output      Output      `yaml:"output"`
	Host        Host        `yaml:"host"`
}

type Parser struct {
	// MaxSourceBytes limits the size of a source file. Zero means no limit.
	MaxSourceBytes int `yaml:"max_source_bytes"`
}

type Interpreter struct {
	RollbackOnError bool `yaml:"rollback_on_error"`
}

type Output struct {
	Format     string `yaml:"format"`
	ShowAST    bool   `yaml:"show_ast"`
	ShowSource bool   `yaml:"show_source"`
}

type Host struct {
	// KeepGoing continues with the next file after a failure.
	KeepGoing bool `yaml:"keep_going"`
	// ShareEnvironment carries bindings from one file to the next.
	ShareEnvironment bool `yaml:"share_environment"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Parser: Parser{MaxSourceBytes: 1 << 20},
		Output: Output{Format: FormatText},
	}
}

// Load reads path over the defaults. Unknown keys are an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config: empty path")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := Default()
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Parser.MaxSourceBytes < 0 {
		return fmt.Errorf("parser.max_source_bytes must not be negative, got %d", c.Parser.MaxSourceBytes)
	}
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatText, FormatYAML, c.Output.Format)
	}
	return nil
}
