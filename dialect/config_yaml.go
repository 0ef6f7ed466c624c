package dialect

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// yamlOperator is the file representation of an operator entry; assoc and
// arity are written as short mnemonics rather than the Assoc/Arity ints so
// that hand-written dialect files stay readable.
type yamlOperator struct {
	Precedence int      `yaml:"precedence"`
	Assoc      string   `yaml:"assoc"`  // "left" or "right"
	Arity      []string `yaml:"arity"`  // any of "unary", "binary"
}

type yamlConfig struct {
	Operators                 map[string]yamlOperator `yaml:"operators"`
	CaseSensitive             bool                     `yaml:"case_sensitive"`
	IdentifierStartCharacters string                   `yaml:"identifier_start_characters"`
	IdentifierCharacters      string                   `yaml:"identifier_characters"`
	IdentifierStartCategory   string                   `yaml:"identifier_start_category"`
	IdentifierCategory        string                   `yaml:"identifier_category"`
}

// LoadConfig reads a YAML (or JSON, which is a YAML subset) dialect
// description from r and returns the corresponding Config. This is the
// ambient "configure operators without recompiling" seam SPEC_FULL.md §4.1
// adds on top of spec.md's in-code Dialect construction.
func LoadConfig(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("dialect: reading config: %w", err)
	}

	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, &ConfigError{Message: fmt.Sprintf("dialect: parsing config: %s", err)}
	}

	cfg := Config{
		Operators:                 make(map[string]OperatorConfig, len(raw.Operators)),
		CaseSensitive:             raw.CaseSensitive,
		IdentifierStartCharacters: raw.IdentifierStartCharacters,
		IdentifierCharacters:      raw.IdentifierCharacters,
		IdentifierStartCategory:   raw.IdentifierStartCategory,
		IdentifierCategory:        raw.IdentifierCategory,
	}

	for name, op := range raw.Operators {
		assoc := Left
		switch op.Assoc {
		case "", "left":
			assoc = Left
		case "right":
			assoc = Right
		default:
			return Config{}, &ConfigError{Message: fmt.Sprintf("dialect: operator %q: unknown associativity %q", name, op.Assoc)}
		}

		var arity Arity
		for _, a := range op.Arity {
			switch a {
			case "unary":
				arity |= Unary
			case "binary":
				arity |= Binary
			default:
				return Config{}, &ConfigError{Message: fmt.Sprintf("dialect: operator %q: unknown arity %q", name, a)}
			}
		}
		if arity == 0 {
			return Config{}, &ConfigError{Message: fmt.Sprintf("dialect: operator %q: arity must list at least one of unary/binary", name)}
		}

		cfg.Operators[name] = OperatorConfig{
			Precedence: op.Precedence,
			Assoc:      assoc,
			Arity:      arity,
		}
	}

	return cfg, nil
}
