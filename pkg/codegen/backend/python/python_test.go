package python_test

import (
	"testing"

	"tmplgen/pkg/codegen"
	"tmplgen/pkg/codegen/backend/python"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPythonOutputVar(t *testing.T) {
	a := codegen.NewAssembler(python.New())
	a.PushOutputVar("output")
	require.NoError(t, a.AddToOutputVar([]codegen.Expr{codegen.Atom("'a'"), codegen.Atom("str(x)")}))
	require.NoError(t, a.AddToOutputVar([]codegen.Expr{
		{Text: "'b' if c else 'd'", Precedence: codegen.PrecedenceConditional},
	}))
	require.NoError(t, a.PopOutputVar())

	assert.Equal(t, []string{
		"output = 'a' + str(x)",
		"output += 'b' if c else 'd'",
	}, a.Lines())
}

func TestPythonInit(t *testing.T) {
	a := codegen.NewAssembler(python.New(), codegen.WithIndentWidth(4))
	require.NoError(t, a.IncreaseIndent())
	a.PushOutputVar("output")
	require.NoError(t, a.InitOutputVarIfNecessary())
	require.NoError(t, a.InitOutputVarIfNecessary())
	require.NoError(t, a.AddToOutputVar([]codegen.Expr{codegen.Atom("'a'")}))

	assert.Equal(t, "    output = ''\n    output += 'a'", a.Code())
}

func TestPythonAddNothingDeclares(t *testing.T) {
	a := codegen.NewAssembler(python.New())
	a.PushOutputVar("output")
	require.NoError(t, a.AddToOutputVar(nil))
	require.NoError(t, a.AddToOutputVar(nil))

	assert.Equal(t, []string{"output = ''"}, a.Lines())
}
