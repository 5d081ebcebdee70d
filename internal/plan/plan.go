// Package plan loads scripted generation plans and replays them against an
// assembler. A plan is what a code generator would do for one template,
// written down as YAML so backends can be compared without a template parser.
package plan

import (
	"os"

	"tmplgen/pkg/codegen"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Plan is a complete generation script
type Plan struct {
	Backend     string `yaml:"backend,omitempty"`
	IndentWidth int    `yaml:"indentWidth,omitempty"`
	Steps       []Step `yaml:"steps"`
}

// Step is a single assembler call. Exactly one field is set.
type Step struct {
	Push   *string    `yaml:"push,omitempty"`
	Pop    bool       `yaml:"pop,omitempty"`
	Init   bool       `yaml:"init,omitempty"`
	Add    []Fragment `yaml:"add,omitempty"`
	Line   *string    `yaml:"line,omitempty"`
	Start  *string    `yaml:"start,omitempty"`
	Append *string    `yaml:"append,omitempty"`
	End    *string    `yaml:"end,omitempty"`
	Indent *int       `yaml:"indent,omitempty"`
	Dedent *int       `yaml:"dedent,omitempty"`
}

// Fragment is an expression in a plan. It is written either as a bare string,
// taken as an atom, or as a mapping with text and prec.
type Fragment codegen.Expr

// UnmarshalYAML accepts both fragment forms
func (f *Fragment) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*f = Fragment(codegen.Atom(node.Value))
		return nil
	}

	var raw struct {
		Text string `yaml:"text"`
		Prec *int   `yaml:"prec"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	f.Text = raw.Text
	f.Precedence = codegen.PrecedenceAtom
	if raw.Prec != nil {
		f.Precedence = *raw.Prec
	}
	return nil
}

// Load reads and validates the plan at path
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read plan %s", path)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "plan %s", path)
	}
	return p, nil
}

// Parse decodes and validates a plan
func Parse(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "decode plan")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks that every step names exactly one action
func (p *Plan) Validate() error {
	for i, s := range p.Steps {
		if n := s.actions(); n != 1 {
			return errors.Newf("step %d: expected exactly one action, found %d", i, n)
		}
	}
	return nil
}

func (s Step) actions() int {
	set := []bool{
		s.Push != nil, s.Pop, s.Init, s.Add != nil,
		s.Line != nil, s.Start != nil, s.Append != nil, s.End != nil,
		s.Indent != nil, s.Dedent != nil,
	}
	n := 0
	for _, ok := range set {
		if ok {
			n++
		}
	}
	return n
}

// Run replays the plan against a, stopping at the first step that fails
func (p *Plan) Run(a *codegen.Assembler) error {
	for i, s := range p.Steps {
		if err := s.apply(a); err != nil {
			return errors.Wrapf(err, "step %d", i)
		}
	}
	return nil
}

func (s Step) apply(a *codegen.Assembler) error {
	switch {
	case s.Push != nil:
		a.PushOutputVar(*s.Push)
	case s.Pop:
		return a.PopOutputVar()
	case s.Init:
		return a.InitOutputVarIfNecessary()
	case s.Add != nil:
		exprs := make([]codegen.Expr, len(s.Add))
		for i, f := range s.Add {
			exprs[i] = codegen.Expr(f)
		}
		return a.AddToOutputVar(exprs)
	case s.Line != nil:
		a.AppendLine(*s.Line)
	case s.Start != nil:
		return a.AppendLineStart(*s.Start)
	case s.Append != nil:
		return a.Append(*s.Append)
	case s.End != nil:
		return a.AppendLineEnd(*s.End)
	case s.Indent != nil:
		return a.IncreaseIndent(*s.Indent)
	case s.Dedent != nil:
		return a.DecreaseIndent(*s.Dedent)
	default:
		return errors.New("empty step")
	}
	return nil
}
