package reltab

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The condition mini-languages:
//
//	select:     "<attribute> <op> <intLiteral>"
//	theta-join: "<attribute1> <op> <attribute2>"
//
// with op one of ==, !=, <, <=, >, >=. Conditions are parsed in full
// before any tuple is scanned; a bad token count or an unknown operator
// fails the whole operation, never a single tuple.

type compareOp int

const (
	opEq compareOp = iota
	opNe
	opLt
	opLe
	opGt
	opGe
)

var opNames = map[string]compareOp{
	"==": opEq,
	"!=": opNe,
	"<":  opLt,
	"<=": opLe,
	">":  opGt,
	">=": opGe,
}

func (op compareOp) String() string {
	for s, o := range opNames {
		if o == op {
			return s
		}
	}
	return "?"
}

// holds reports whether a three-way comparison result satisfies the
// operator.
func (op compareOp) holds(cmp int) bool {
	switch op {
	case opEq:
		return cmp == 0
	case opNe:
		return cmp != 0
	case opLt:
		return cmp < 0
	case opLe:
		return cmp <= 0
	case opGt:
		return cmp > 0
	default:
		return cmp >= 0
	}
}

var condLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `-?[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Op", Pattern: `==|!=|<=|>=|<|>`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type selectCondGrammar struct {
	Attr    string `parser:"@Ident"`
	Op      string `parser:"@Op"`
	Literal int64  `parser:"@Int"`
}

type thetaCondGrammar struct {
	Left  string `parser:"@Ident"`
	Op    string `parser:"@Op"`
	Right string `parser:"@Ident"`
}

var selectCondParser = participle.MustBuild[selectCondGrammar](
	participle.Lexer(condLexer),
	participle.Elide("Whitespace"),
)

var thetaCondParser = participle.MustBuild[thetaCondGrammar](
	participle.Lexer(condLexer),
	participle.Elide("Whitespace"),
)

type selectCond struct {
	attr string
	op   compareOp
	lit  int64
}

func parseSelectCond(cond string) (selectCond, error) {
	g, err := selectCondParser.ParseString("", cond)
	if err != nil {
		return selectCond{}, &MalformedConditionError{Cond: cond, Err: err}
	}
	op, ok := opNames[g.Op]
	if !ok {
		return selectCond{}, &MalformedConditionError{Cond: cond, Err: fmt.Errorf("unsupported operator %q", g.Op)}
	}
	return selectCond{attr: g.Attr, op: op, lit: g.Literal}, nil
}

type thetaCond struct {
	left  string
	op    compareOp
	right string
}

func parseThetaCond(cond string) (thetaCond, error) {
	g, err := thetaCondParser.ParseString("", cond)
	if err != nil {
		return thetaCond{}, &MalformedConditionError{Cond: cond, Err: err}
	}
	op, ok := opNames[g.Op]
	if !ok {
		return thetaCond{}, &MalformedConditionError{Cond: cond, Err: fmt.Errorf("unsupported operator %q", g.Op)}
	}
	return thetaCond{left: g.Left, op: op, right: g.Right}, nil
}
