package parser

import (
	"github.com/go-expr/expr/dialect"
	"github.com/go-expr/expr/lexer"
)

// stackKind identifies what a Parser's operator stack entry represents.
type stackKind int

const (
	stackOperator stackKind = iota
	stackLParen
	stackFunction
)

type stackItem struct {
	kind stackKind
	name string
	argc int // 1 for a unary operator, 2 for a binary operator; unused for stackLParen/stackFunction
}

// Parser converts a Token sequence into a postfix Element sequence using a
// modified Shunting-yard algorithm (spec.md §4.3). A Parser holds per-call
// mutable state; construct a fresh one (or call the package-level Parse)
// for each compile.
type Parser struct {
	dialect *dialect.Dialect
	tokens  []lexer.Token

	stack  []stackItem
	output []Element

	argc     []int
	sawArg   []bool
	sawComma []bool

	prevWasValue bool
}

// New creates a Parser for tokens driven by d.
func New(tokens []lexer.Token, d *dialect.Dialect) *Parser {
	return &Parser{dialect: d, tokens: tokens}
}

// Parse tokenizes text with d if given a string, or parses an existing
// Token sequence, and returns the postfix Element stream.
func Parse(textOrTokens any, d *dialect.Dialect) ([]Element, error) {
	var tokens []lexer.Token
	switch v := textOrTokens.(type) {
	case string:
		toks, err := lexer.Tokenize(v, d)
		if err != nil {
			return nil, err
		}
		tokens = toks
	case []lexer.Token:
		tokens = v
	default:
		panic("parser.Parse: textOrTokens must be a string or []lexer.Token")
	}

	return New(tokens, d).Parse()
}

// Parse runs the Shunting-yard algorithm over p.tokens and returns the
// resulting postfix Element stream.
func (p *Parser) Parse() ([]Element, error) {
	p.stack = nil
	p.output = nil
	p.argc = nil
	p.sawArg = nil
	p.sawComma = nil
	p.prevWasValue = false

	for i := 0; i < len(p.tokens); i++ {
		tok := p.tokens[i]
		if tok.Type == lexer.EOF {
			break
		}

		isFunctionCall := tok.Type == lexer.IDENTIFIER &&
			i+1 < len(p.tokens) && p.tokens[i+1].Type == lexer.LPAREN

		if err := p.parseToken(tok, i, isFunctionCall); err != nil {
			return nil, err
		}
	}

	for len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]

		if top.kind == stackLParen {
			return nil, newError(lastPos(p.tokens), len(p.tokens), ErrMismatchedParen,
				"Mismatched parenthesis")
		}
		p.output = append(p.output, operatorElement(top))
	}

	return p.output, nil
}

func lastPos(tokens []lexer.Token) lexer.Position {
	if len(tokens) == 0 {
		return lexer.Position{}
	}
	return tokens[len(tokens)-1].Pos
}

// operatorElement converts a stack-resident operator into its postfix
// Element. A '(' always sits directly above the FUNCTION entry it opened
// (the two are only ever separated by operators), so every item a drain
// loop pops before reaching an LPAREN is itself an operator.
func operatorElement(item stackItem) Element {
	return Element{Type: OPERATOR, Value: item.name, Argc: item.argc}
}

func (p *Parser) parseToken(tok lexer.Token, index int, isFunctionCall bool) error {
	switch {
	case tok.Type == lexer.INTEGER || tok.Type == lexer.FLOAT || tok.Type == lexer.STRING:
		p.output = append(p.output, Element{Type: LITERAL, Value: tok.Value, Argc: 0})
		p.markSawArg()
		p.prevWasValue = true
		return nil

	case tok.Type == lexer.IDENTIFIER && isFunctionCall:
		p.stack = append(p.stack, stackItem{kind: stackFunction, name: tok.Value.(string)})
		p.argc = append(p.argc, 0)
		p.markSawArg()
		p.sawArg = append(p.sawArg, false)
		p.sawComma = append(p.sawComma, false)
		p.prevWasValue = false
		return nil

	case tok.Type == lexer.IDENTIFIER:
		p.output = append(p.output, Element{Type: VARIABLE, Value: tok.Value, Argc: 0})
		p.markSawArg()
		p.prevWasValue = true
		return nil

	case tok.Type == lexer.COMMA:
		return p.parseComma(tok, index)

	case tok.Type == lexer.OPERATOR:
		return p.parseOperator(tok, index)

	case tok.Type == lexer.LPAREN:
		p.stack = append(p.stack, stackItem{kind: stackLParen})
		p.prevWasValue = false
		return nil

	case tok.Type == lexer.RPAREN:
		return p.parseRParen(tok, index)

	default:
		return newError(tok.Pos, index, ErrUnexpectedToken,
			"unexpected token %s in expression", tok.Type)
	}
}

// markSawArg records that the innermost function-call frame (if any) has
// seen a value since its last '(' or ','.
func (p *Parser) markSawArg() {
	if len(p.sawArg) > 0 {
		p.sawArg[len(p.sawArg)-1] = true
	}
	if len(p.sawComma) > 0 {
		p.sawComma[len(p.sawComma)-1] = false
	}
}

func (p *Parser) parseComma(tok lexer.Token, index int) error {
	found := false
	for len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		if top.kind == stackLParen {
			found = true
			break
		}
		p.stack = p.stack[:len(p.stack)-1]
		p.output = append(p.output, operatorElement(top))
	}
	if !found {
		return newError(tok.Pos, index, ErrMisplacedComma,
			"comma outside of any function argument list")
	}

	if len(p.sawArg) == 0 {
		return newError(tok.Pos, index, ErrMisplacedComma,
			"comma outside of any function argument list")
	}
	if p.sawArg[len(p.sawArg)-1] {
		p.argc[len(p.argc)-1]++
	}
	p.sawArg[len(p.sawArg)-1] = false
	p.sawComma[len(p.sawComma)-1] = true
	p.prevWasValue = false
	return nil
}

func (p *Parser) parseOperator(tok lexer.Token, index int) error {
	name := tok.Value.(string)
	op, ok := p.dialect.Operator(name)
	if !ok {
		return newError(tok.Pos, index, ErrUnknownOperator,
			"unknown operator %q", name)
	}

	isUnary := false
	switch {
	case op.Arity == dialect.Unary:
		isUnary = true
	case op.Arity&dialect.Unary != 0 && !p.prevWasValue:
		isUnary = true
	}

	p.prevWasValue = false

	if isUnary {
		// Unary operators bind tighter than any pop-on-push comparison would
		// allow for sensibly, so they are pushed directly: spec.md §4.3
		// leaves unary operators to be resolved only when something of
		// lower-or-equal precedence later pops them.
		p.stack = append(p.stack, stackItem{kind: stackOperator, name: name, argc: 1})
		return nil
	}

	for len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		if top.kind != stackOperator {
			break
		}
		top2, ok := p.dialect.Operator(top.name)
		if !ok {
			break
		}

		isLeftAssoc := op.Assoc == dialect.Left
		if !((isLeftAssoc && op.Precedence == top2.Precedence) || op.Precedence < top2.Precedence) {
			break
		}

		p.stack = p.stack[:len(p.stack)-1]
		p.output = append(p.output, operatorElement(top))
	}

	p.stack = append(p.stack, stackItem{kind: stackOperator, name: name, argc: 2})
	return nil
}

func (p *Parser) parseRParen(tok lexer.Token, index int) error {
	found := false
	for len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		if top.kind == stackLParen {
			found = true
			break
		}
		p.stack = p.stack[:len(p.stack)-1]
		p.output = append(p.output, operatorElement(top))
	}
	if !found {
		return newError(tok.Pos, index, ErrMismatchedParen, "Mismatched parenthesis")
	}
	// Pop the LPAREN itself.
	p.stack = p.stack[:len(p.stack)-1]

	if len(p.stack) > 0 && p.stack[len(p.stack)-1].kind == stackFunction {
		fn := p.stack[len(p.stack)-1]

		n := p.argc[len(p.argc)-1]
		sawArg := p.sawArg[len(p.sawArg)-1]
		sawComma := p.sawComma[len(p.sawComma)-1]

		if sawComma && !sawArg {
			return newError(tok.Pos, index, ErrTrailingComma,
				"trailing comma in argument list for %q", fn.name)
		}

		p.stack = p.stack[:len(p.stack)-1]
		p.argc = p.argc[:len(p.argc)-1]
		p.sawArg = p.sawArg[:len(p.sawArg)-1]
		p.sawComma = p.sawComma[:len(p.sawComma)-1]

		if sawArg {
			n++
		}

		p.markSawArg()
		p.output = append(p.output, Element{Type: FUNCTION, Value: fn.name, Argc: n})
	}

	p.prevWasValue = true
	return nil
}
