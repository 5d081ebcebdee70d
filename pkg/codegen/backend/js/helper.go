package js

import "tmplgen/pkg/codegen"

// emptyString is the JavaScript empty string literal
var emptyString = codegen.Atom("''")

// current reads the state of the current output variable
func current(w codegen.OutputWriter) (bool, string, error) {
	inited, err := w.OutputVarIsInited()
	if err != nil {
		return false, "", err
	}
	name, err := w.OutputVarName()
	if err != nil {
		return false, "", err
	}
	return inited, name, nil
}

// forceString concatenates exprs behind an empty string literal so the
// result is a string even if the leading operands are numbers
func forceString(exprs []codegen.Expr) codegen.Expr {
	seeded := make([]codegen.Expr, 0, len(exprs)+1)
	seeded = append(seeded, emptyString)
	seeded = append(seeded, exprs...)
	return codegen.ConcatExprs(seeded)
}
