package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcatExprs(t *testing.T) {
	tests := []struct {
		description string
		exprs       []Expr
		expected    string
	}{
		{"single expression is untouched", []Expr{{Text: "a ? b : c", Precedence: PrecedenceConditional}}, "a ? b : c"},
		{"atoms", []Expr{Atom("a"), Atom("'b'")}, "a + 'b'"},
		{"looser operand", []Expr{Atom("a"), {Text: "b || c", Precedence: PrecedenceOr}}, "a + (b || c)"},
		{"tighter operand", []Expr{{Text: "a * b", Precedence: PrecedenceTimes}, Atom("c")}, "a * b + c"},
		{"leading plus", []Expr{{Text: "a + b", Precedence: PrecedencePlus}, Atom("c")}, "a + b + c"},
		{"trailing plus", []Expr{Atom("c"), {Text: "a + b", Precedence: PrecedencePlus}}, "c + (a + b)"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, ConcatExprs(test.exprs).Text, test.description)
	}
}

func TestJoinExprsIsVerbatim(t *testing.T) {
	exprs := []Expr{Atom("a"), {Text: "b || c", Precedence: PrecedenceOr}}
	assert.Equal(t, "a, b || c", JoinExprs(exprs, ", "))
}
