package plan

import (
	"strings"
	"testing"

	"tmplgen/pkg/codegen"
	"tmplgen/pkg/codegen/backend"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGreeting(t *testing.T) {
	tests := []struct {
		backend  string
		expected []string
	}{
		{"js-concat", []string{
			"function greeting(opt_data) {",
			"  var output = '' + 'Hello ' + opt_data.name + '!';",
			"  if (opt_data.count) {",
			"    output += opt_data.count + opt_data.count;",
			"  }",
			"  return output;",
			"}",
		}},
		{"js-stringbuilder", []string{
			"function greeting(opt_data) {",
			"  var output = new soy.StringBuilder('Hello ', opt_data.name, '!');",
			"  if (opt_data.count) {",
			"    output.append(opt_data.count, opt_data.count);",
			"  }",
			"  return output;",
			"}",
		}},
	}

	p, err := Load("testdata/greeting.yaml")
	require.NoError(t, err)
	assert.Equal(t, "js-concat", p.Backend)

	for _, test := range tests {
		b, err := backend.Lookup(test.backend)
		require.NoError(t, err)
		a := codegen.NewAssembler(b)
		require.NoError(t, p.Run(a), test.backend)
		assert.Equal(t, strings.Join(test.expected, "\n"), a.Code(), test.backend)
	}
}

func TestFragmentForms(t *testing.T) {
	p, err := Parse([]byte(`
steps:
  - push: out
  - add: ["'a'", {text: "x ? y : z", prec: 1}, {text: "b"}]
`))
	require.NoError(t, err)
	require.Len(t, p.Steps, 2)

	add := p.Steps[1].Add
	require.Len(t, add, 3)
	assert.Equal(t, Fragment(codegen.Atom("'a'")), add[0])
	assert.Equal(t, Fragment{Text: "x ? y : z", Precedence: 1}, add[1])
	assert.Equal(t, codegen.PrecedenceAtom, add[2].Precedence)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		description string
		input       string
	}{
		{"two actions", "steps:\n  - push: a\n    pop: true\n"},
		{"no action", "steps:\n  - pop: false\n"},
	}

	for _, test := range tests {
		_, err := Parse([]byte(test.input))
		assert.Error(t, err, test.description)
	}
}

func TestRunStopsAtFailingStep(t *testing.T) {
	p, err := Parse([]byte(`
steps:
  - push: out
  - pop: true
  - pop: true
  - line: never
`))
	require.NoError(t, err)

	b, err := backend.Lookup("python")
	require.NoError(t, err)
	a := codegen.NewAssembler(b)

	err = p.Run(a)
	require.Error(t, err)
	assert.True(t, errors.Is(err, codegen.ErrEmptyStack))
	assert.Contains(t, err.Error(), "step 2")
	assert.Empty(t, a.Code())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/missing.yaml")
	assert.Error(t, err)
}
