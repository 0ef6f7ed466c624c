// Package dialect describes the operator alphabet, keyword operators and
// identifier character classes that the lexer and parser are driven by.
//
// A Dialect is built once from a Config and is immutable afterwards, so a
// single *Dialect can be shared across goroutines performing independent
// compiles.
package dialect

import "unicode"

// Arity is a bit-mask describing whether an operator may be used as a unary
// prefix operator, a binary infix operator, or both.
type Arity int

const (
	Unary Arity = 1 << iota
	Binary
)

// Assoc is the associativity of a binary operator.
type Assoc int

const (
	Left Assoc = iota
	Right
)

// Operator is the per-name configuration consumed by the parser.
type Operator struct {
	Name       string
	Precedence int
	Assoc      Assoc
	Arity      Arity
}

// OperatorConfig is the declarative form of an Operator used to build a
// Config; it omits the Name field since that is supplied as the map key.
type OperatorConfig struct {
	Precedence int
	Assoc      Assoc
	Arity      Arity
}

// Config is the declarative description a Dialect is constructed from.
type Config struct {
	// Operators maps operator spelling to its precedence/associativity/arity.
	Operators map[string]OperatorConfig

	// CaseSensitive controls keyword-operator matching only; non-keyword
	// operator matching is always exact.
	CaseSensitive bool

	// IdentifierStartCharacters/IdentifierCharacters are extra runes allowed
	// beyond the Unicode general-category predicates below.
	IdentifierStartCharacters string
	IdentifierCharacters      string

	// IdentifierStartCategory/IdentifierCategory are strings of Unicode
	// general-category major-letters (e.g. "L", "LN") that are acceptable
	// for the first/subsequent characters of an identifier.
	IdentifierStartCategory string
	IdentifierCategory      string
}

// Dialect is the immutable, derived configuration used by the lexer and
// parser. Construct with New; do not mutate any of its fields afterwards.
type Dialect struct {
	Operators     map[string]Operator
	CaseSensitive bool

	IdentifierStartCharacters string
	IdentifierCharacters      string
	IdentifierStartCategory   string
	IdentifierCategory        string

	// Derived, computed once in New.
	KeywordOperators   map[string]struct{}
	OperatorCharacters map[rune]struct{}
	ComposedOperators  map[string]struct{}
}

// ConfigError reports a malformed Config passed to New.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return e.Message }

// New builds an immutable Dialect from cfg, computing the derived lookup
// tables (keyword operators, operator-character alphabet, composed
// operators). It returns a *ConfigError if cfg declares an empty operator
// name.
func New(cfg Config) (*Dialect, error) {
	d := &Dialect{
		Operators:                 make(map[string]Operator, len(cfg.Operators)),
		CaseSensitive:             cfg.CaseSensitive,
		IdentifierStartCharacters: cfg.IdentifierStartCharacters,
		IdentifierCharacters:      cfg.IdentifierCharacters,
		IdentifierStartCategory:   cfg.IdentifierStartCategory,
		IdentifierCategory:        cfg.IdentifierCategory,
		KeywordOperators:          make(map[string]struct{}),
		OperatorCharacters:        make(map[rune]struct{}),
		ComposedOperators:         make(map[string]struct{}),
	}

	for name, op := range cfg.Operators {
		if name == "" {
			return nil, &ConfigError{Message: "operator name must not be empty"}
		}
		d.Operators[name] = Operator{
			Name:       name,
			Precedence: op.Precedence,
			Assoc:      op.Assoc,
			Arity:      op.Arity,
		}
	}

	plain := make([]string, 0, len(d.Operators))
	for name := range d.Operators {
		if isKeywordSpelling(name) {
			d.KeywordOperators[name] = struct{}{}
		} else {
			plain = append(plain, name)
		}
	}

	for _, name := range plain {
		for _, r := range name {
			d.OperatorCharacters[r] = struct{}{}
		}
		if len([]rune(name)) > 1 {
			d.ComposedOperators[name] = struct{}{}
		}
	}

	return d, nil
}

// isKeywordSpelling reports whether every rune in name is in Unicode
// general category L (letter), the rule spec.md uses to decide whether an
// operator lexes as an identifier and gets promoted.
func isKeywordSpelling(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Operator looks up an operator by name. The second return value is false
// if no such operator is configured in this dialect.
func (d *Dialect) Operator(name string) (Operator, bool) {
	op, ok := d.Operators[name]
	return op, ok
}

// IsKeywordOperator reports whether name (already case-folded by the caller
// if the dialect is case-insensitive) names a keyword operator.
func (d *Dialect) IsKeywordOperator(name string) bool {
	_, ok := d.KeywordOperators[name]
	return ok
}

// IsOperatorCharacter reports whether r participates in any non-keyword
// operator spelling in this dialect.
func (d *Dialect) IsOperatorCharacter(r rune) bool {
	_, ok := d.OperatorCharacters[r]
	return ok
}

// IsComposedOperator reports whether the two-rune string s names a
// multi-character non-keyword operator.
func (d *Dialect) IsComposedOperator(s string) bool {
	_, ok := d.ComposedOperators[s]
	return ok
}
