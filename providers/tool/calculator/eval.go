package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Evaluate parses and computes a mathematical expression. It supports the
// operators + - * / % and ** (right-associative exponentiation), parentheses,
// unary minus, the constants pi and e, and a fixed allow-list of functions:
// sqrt, pow, sin, cos, tan, log, log10, exp, abs, round.
//
// Example:
//
//	v, err := Evaluate("sqrt(16) + 2 ** 3")
//	// v == 12
func Evaluate(expression string) (float64, error) {
	p := &parser{input: expression}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if p.pos < len(p.input) {
		return 0, fmt.Errorf("unexpected character %q at position %d", p.input[p.pos], p.pos)
	}
	return v, nil
}

// constants and functions mirror the allow-list of a restricted eval
// environment; anything else is rejected.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

var unaryFuncs = map[string]func(float64) (float64, error){
	"sqrt": func(x float64) (float64, error) {
		if x < 0 {
			return 0, fmt.Errorf("math domain error: sqrt of negative number")
		}
		return math.Sqrt(x), nil
	},
	"sin": func(x float64) (float64, error) { return math.Sin(x), nil },
	"cos": func(x float64) (float64, error) { return math.Cos(x), nil },
	"tan": func(x float64) (float64, error) { return math.Tan(x), nil },
	"log": func(x float64) (float64, error) {
		if x <= 0 {
			return 0, fmt.Errorf("math domain error: log of non-positive number")
		}
		return math.Log(x), nil
	},
	"log10": func(x float64) (float64, error) {
		if x <= 0 {
			return 0, fmt.Errorf("math domain error: log10 of non-positive number")
		}
		return math.Log10(x), nil
	},
	"exp":   func(x float64) (float64, error) { return math.Exp(x), nil },
	"abs":   func(x float64) (float64, error) { return math.Abs(x), nil },
	"round": func(x float64) (float64, error) { return math.Round(x), nil },
}

// parser is a recursive-descent parser over the expression grammar:
//
//	expr    := term { ("+" | "-") term }
//	term    := unary { ("*" | "/" | "%") unary }
//	unary   := ("-" | "+") unary | power
//	power   := primary [ "**" unary ]
//	primary := number | ident [ "(" expr { "," expr } ")" ] | "(" expr ")"
//
// Exponentiation binds tighter than unary minus, so -2 ** 2 is -4.
type parser struct {
	input string
	pos   int
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

// peek returns the next non-space byte without consuming it, or 0 at end.
func (p *parser) peek() byte {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

// accept consumes s if it appears next. For "*" it refuses to split a "**"
// token so term parsing does not swallow half an exponentiation operator.
func (p *parser) accept(s string) bool {
	p.skipSpaces()
	if !strings.HasPrefix(p.input[p.pos:], s) {
		return false
	}
	if s == "*" && strings.HasPrefix(p.input[p.pos:], "**") {
		return false
	}
	p.pos += len(s)
	return true
}

func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.accept("+"):
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left += right
		case p.accept("-"):
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.accept("*"):
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			left *= right
		case p.accept("/"):
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			left /= right
		case p.accept("%"):
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, fmt.Errorf("modulo by zero")
			}
			left = math.Mod(left, right)
		default:
			return left, nil
		}
	}
}

func (p *parser) parseUnary() (float64, error) {
	if p.accept("-") {
		v, err := p.parseUnary()
		return -v, err
	}
	if p.accept("+") {
		return p.parseUnary()
	}
	return p.parsePower()
}

func (p *parser) parsePower() (float64, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}
	if p.accept("**") {
		// The exponent may itself carry a unary sign, as in 2 ** -3.
		exp, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return math.Pow(base, exp), nil
	}
	return base, nil
}

func (p *parser) parsePrimary() (float64, error) {
	c := p.peek()
	switch {
	case c == '(':
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if !p.accept(")") {
			return 0, fmt.Errorf("missing closing parenthesis")
		}
		return v, nil

	case c >= '0' && c <= '9' || c == '.':
		return p.parseNumber()

	case unicode.IsLetter(rune(c)):
		return p.parseIdent()

	case c == 0:
		return 0, fmt.Errorf("unexpected end of expression")

	default:
		return 0, fmt.Errorf("unexpected character %q at position %d", c, p.pos)
	}
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c >= '0' && c <= '9' || c == '.' {
			p.pos++
			continue
		}
		// Scientific notation: an 'e' followed by digits or a signed exponent.
		if (c == 'e' || c == 'E') && p.pos+1 < len(p.input) {
			next := p.input[p.pos+1]
			if next >= '0' && next <= '9' || next == '+' || next == '-' {
				p.pos += 2
				continue
			}
		}
		break
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", p.input[start:p.pos])
	}
	return v, nil
}

func (p *parser) parseIdent() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) && (unicode.IsLetter(rune(p.input[p.pos])) || unicode.IsDigit(rune(p.input[p.pos]))) {
		p.pos++
	}
	name := strings.ToLower(p.input[start:p.pos])

	if v, ok := constants[name]; ok {
		return v, nil
	}

	if !p.accept("(") {
		return 0, fmt.Errorf("name %q is not defined", name)
	}

	args := []float64{}
	if p.peek() != ')' {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return 0, err
			}
			args = append(args, arg)
			if !p.accept(",") {
				break
			}
		}
	}
	if !p.accept(")") {
		return 0, fmt.Errorf("missing closing parenthesis in call to %q", name)
	}

	if name == "pow" {
		if len(args) != 2 {
			return 0, fmt.Errorf("pow expects 2 arguments, got %d", len(args))
		}
		return math.Pow(args[0], args[1]), nil
	}

	fn, ok := unaryFuncs[name]
	if !ok {
		return 0, fmt.Errorf("name %q is not defined", name)
	}
	if len(args) != 1 {
		return 0, fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
	}
	return fn(args[0])
}
