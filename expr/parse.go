package expr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/symgo-ml/symgo/pkg/errors"
)

// Parse converts expression text into a tree. The grammar is restricted to
// the fixed operator set: numbers, named variables, the operator call forms
// used by genetic programs (add(x, y), neg(x), pow(x, y)) and standard infix
// arithmetic with +, -, *, /, ** (or ^) and parentheses. Structural brackets
// around variable indices (X[0]) are stripped before tokenizing. Anything
// outside this grammar yields a ParseError; no general evaluation takes
// place.
func Parse(text string) (Node, error) {
	stripped := strings.NewReplacer("[", "", "]", "").Replace(text)

	p := &parser{input: stripped}
	if err := p.lex(); err != nil {
		return nil, err
	}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.tokens) {
		return nil, p.errorf(p.tokens[p.pos].offset, "unexpected token %q", p.tokens[p.pos].text)
	}
	return node, nil
}

// Function call forms accepted by the parser. neg and pow appear in genetic
// program text but are not part of the search function set.
var callBinary = map[string]BinaryOp{
	"add": OpAdd,
	"sub": OpSub,
	"mul": OpMul,
	"div": OpDiv,
	"pow": OpPow,
}

var callUnary = map[string]UnaryOp{
	"neg":  OpNeg,
	"sqrt": OpSqrt,
	"log":  OpLog,
	"sin":  OpSin,
	"cos":  OpCos,
	"abs":  OpAbs,
	"exp":  OpExp,
}

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPow
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind   tokenKind
	text   string
	value  float64
	offset int
}

type parser struct {
	input  string
	tokens []token
	pos    int
}

func (p *parser) errorf(offset int, format string, args ...interface{}) error {
	return errors.NewParseError(p.input, offset, fmt.Sprintf(format, args...))
}

func (p *parser) lex() error {
	i := 0
	in := p.input
	for i < len(in) {
		c := in[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '+':
			p.tokens = append(p.tokens, token{kind: tokPlus, text: "+", offset: i})
			i++
		case c == '-':
			p.tokens = append(p.tokens, token{kind: tokMinus, text: "-", offset: i})
			i++
		case c == '*':
			if i+1 < len(in) && in[i+1] == '*' {
				p.tokens = append(p.tokens, token{kind: tokPow, text: "**", offset: i})
				i += 2
			} else {
				p.tokens = append(p.tokens, token{kind: tokStar, text: "*", offset: i})
				i++
			}
		case c == '^':
			p.tokens = append(p.tokens, token{kind: tokPow, text: "^", offset: i})
			i++
		case c == '/':
			p.tokens = append(p.tokens, token{kind: tokSlash, text: "/", offset: i})
			i++
		case c == '(':
			p.tokens = append(p.tokens, token{kind: tokLParen, text: "(", offset: i})
			i++
		case c == ')':
			p.tokens = append(p.tokens, token{kind: tokRParen, text: ")", offset: i})
			i++
		case c == ',':
			p.tokens = append(p.tokens, token{kind: tokComma, text: ",", offset: i})
			i++
		case c >= '0' && c <= '9' || c == '.':
			start := i
			for i < len(in) && (in[i] >= '0' && in[i] <= '9' || in[i] == '.') {
				i++
			}
			// Scientific notation: 1.5e-3, 2E+8.
			if i < len(in) && (in[i] == 'e' || in[i] == 'E') {
				j := i + 1
				if j < len(in) && (in[j] == '+' || in[j] == '-') {
					j++
				}
				if j < len(in) && in[j] >= '0' && in[j] <= '9' {
					i = j
					for i < len(in) && in[i] >= '0' && in[i] <= '9' {
						i++
					}
				}
			}
			text := in[start:i]
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return p.errorf(start, "invalid number %q", text)
			}
			p.tokens = append(p.tokens, token{kind: tokNumber, text: text, value: v, offset: start})
		case isIdentStart(c):
			start := i
			for i < len(in) && isIdentPart(in[i]) {
				i++
			}
			p.tokens = append(p.tokens, token{kind: tokIdent, text: in[start:i], offset: start})
		default:
			return p.errorf(i, "unexpected character %q", string(c))
		}
	}
	return nil
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	t, ok := p.next()
	if !ok {
		return token{}, p.errorf(len(p.input), "unexpected end of input, expected %s", what)
	}
	if t.kind != kind {
		return token{}, p.errorf(t.offset, "expected %s, got %q", what, t.text)
	}
	return t, nil
}

// expr := term (('+'|'-') term)*
func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || (t.kind != tokPlus && t.kind != tokMinus) {
			return left, nil
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		op := OpAdd
		if t.kind == tokMinus {
			op = OpSub
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
}

// term := unary (('*'|'/') unary)*
func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || (t.kind != tokStar && t.kind != tokSlash) {
			return left, nil
		}
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		op := OpMul
		if t.kind == tokSlash {
			op = OpDiv
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
}

// unary := '-' unary | power
func (p *parser) parseUnary() (Node, error) {
	if t, ok := p.peek(); ok && t.kind == tokMinus {
		p.pos++
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if c, isConst := child.(*Const); isConst {
			return &Const{Val: -c.Val}, nil
		}
		return &Unary{Op: OpNeg, Child: child}, nil
	}
	return p.parsePower()
}

// power := atom (('**'|'^') unary)?   -- right-associative
func (p *parser) parsePower() (Node, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if t, ok := p.peek(); ok && t.kind == tokPow {
		p.pos++
		exponent, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Binary{Op: OpPow, Left: base, Right: exponent}, nil
	}
	return base, nil
}

// atom := number | ident | ident '(' expr (',' expr)* ')' | '(' expr ')'
func (p *parser) parseAtom() (Node, error) {
	t, ok := p.next()
	if !ok {
		return nil, p.errorf(len(p.input), "unexpected end of input")
	}

	switch t.kind {
	case tokNumber:
		return &Const{Val: t.value}, nil

	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, ")"); err != nil {
			return nil, err
		}
		return inner, nil

	case tokIdent:
		nxt, ok := p.peek()
		if !ok || nxt.kind != tokLParen {
			return &Var{Name: t.text}, nil
		}
		return p.parseCall(t)

	default:
		return nil, p.errorf(t.offset, "unexpected token %q", t.text)
	}
}

func (p *parser) parseCall(name token) (Node, error) {
	if _, err := p.expect(tokLParen, "("); err != nil {
		return nil, err
	}
	var args []Node
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		t, ok := p.next()
		if !ok {
			return nil, p.errorf(len(p.input), "unexpected end of input in call to %s", name.text)
		}
		if t.kind == tokRParen {
			break
		}
		if t.kind != tokComma {
			return nil, p.errorf(t.offset, "expected , or ) in call to %s, got %q", name.text, t.text)
		}
	}

	if op, isBinary := callBinary[name.text]; isBinary {
		if len(args) != 2 {
			return nil, p.errorf(name.offset, "%s takes 2 arguments, got %d", name.text, len(args))
		}
		return &Binary{Op: op, Left: args[0], Right: args[1]}, nil
	}
	if op, isUnary := callUnary[name.text]; isUnary {
		if len(args) != 1 {
			return nil, p.errorf(name.offset, "%s takes 1 argument, got %d", name.text, len(args))
		}
		return &Unary{Op: op, Child: args[0]}, nil
	}
	return nil, p.errorf(name.offset, "unknown function %q", name.text)
}
