package dialect

// Default returns the library's built-in default dialect: the arithmetic,
// comparison and keyword-logical operator set described in spec.md §4.1.
//
// The exponent operator '^' is bound to precedence 1000, right-associative
// (the Open Question in spec.md §9 is resolved in favor of exponentiation;
// bitwise-XOR is intentionally not part of this dialect).
func Default() *Dialect {
	d, err := New(Config{
		Operators: map[string]OperatorConfig{
			"^": {Precedence: 1000, Assoc: Right, Arity: Binary},

			"*": {Precedence: 900, Assoc: Left, Arity: Binary},
			"/": {Precedence: 900, Assoc: Left, Arity: Binary},
			"%": {Precedence: 900, Assoc: Left, Arity: Binary},

			"+": {Precedence: 500, Assoc: Left, Arity: Binary},
			"-": {Precedence: 500, Assoc: Left, Arity: Unary | Binary},

			"&": {Precedence: 300, Assoc: Left, Arity: Binary},
			"|": {Precedence: 300, Assoc: Left, Arity: Binary},

			"<":  {Precedence: 200, Assoc: Left, Arity: Binary},
			"<=": {Precedence: 200, Assoc: Left, Arity: Binary},
			">":  {Precedence: 200, Assoc: Left, Arity: Binary},
			">=": {Precedence: 200, Assoc: Left, Arity: Binary},
			"!=": {Precedence: 200, Assoc: Left, Arity: Binary},
			"==": {Precedence: 200, Assoc: Left, Arity: Binary},

			"not": {Precedence: 120, Assoc: Left, Arity: Unary},
			"and": {Precedence: 110, Assoc: Left, Arity: Binary},
			"or":  {Precedence: 100, Assoc: Left, Arity: Binary},
		},
		CaseSensitive:             false,
		IdentifierStartCharacters: "_",
		IdentifierStartCategory:   "L",
		IdentifierCharacters:      "_",
		IdentifierCategory:        "LN",
	})
	if err != nil {
		// The built-in table is a compile-time constant; a ConfigError here
		// would be a library bug, not a user error.
		panic(err)
	}
	return d
}
