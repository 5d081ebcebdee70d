package codegen

import (
	"math"
	"strings"
)

// Operator precedences shared by the JavaScript and Python backends. Higher
// binds tighter.
const (
	PrecedenceConditional = 1
	PrecedenceOr          = 2
	PrecedenceAnd         = 3
	PrecedenceEquality    = 4
	PrecedenceRelational  = 5
	PrecedencePlus        = 6
	PrecedenceTimes       = 7
	PrecedenceUnary       = 8
	PrecedenceAtom        = math.MaxInt
)

// Expr is a fragment of target-language source together with the precedence
// of its outermost operator.
type Expr struct {
	Text       string
	Precedence int
}

// Atom returns an expression that never needs parentheses.
func Atom(text string) Expr {
	return Expr{Text: text, Precedence: PrecedenceAtom}
}

// JoinExprs joins expression texts with sep, verbatim.
func JoinExprs(exprs []Expr, sep string) string {
	var b strings.Builder
	for i, e := range exprs {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(e.Text)
	}
	return b.String()
}

// ConcatExprs joins expressions with the + operator. Operands that bind looser
// than + are parenthesized; later operands at the same precedence are too,
// since + is left associative.
func ConcatExprs(exprs []Expr) Expr {
	if len(exprs) == 1 {
		return exprs[0]
	}

	var b strings.Builder
	for i, e := range exprs {
		if i > 0 {
			b.WriteString(" + ")
		}
		if e.Precedence < PrecedencePlus || (i > 0 && e.Precedence == PrecedencePlus) {
			b.WriteString("(" + e.Text + ")")
		} else {
			b.WriteString(e.Text)
		}
	}
	return Expr{Text: b.String(), Precedence: PrecedencePlus}
}
