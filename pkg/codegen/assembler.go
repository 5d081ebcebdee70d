package codegen

import (
	"strings"

	"tmplgen/pkg/stack"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// DefaultIndentWidth is the number of spaces in one indent unit.
const DefaultIndentWidth = 2

type outputVar struct {
	name   string // name of the output variable in generated code
	inited bool   // whether its declaration has been emitted
}

// Assembler accumulates indented lines of generated code and tracks the stack
// of output variables being written to. One assembler belongs to a single
// generation unit and is not safe for concurrent use.
type Assembler struct {
	backend Backend
	logger  *log.Logger

	lines       []string
	indent      int // current depth in units
	indentWidth int // spaces per unit

	open    bool            // a line was started and not yet ended
	partial strings.Builder // contents of the open line

	vars stack.Stack[outputVar]
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithIndentWidth sets the number of spaces per indent unit.
func WithIndentWidth(n int) Option {
	return func(a *Assembler) {
		if n > 0 {
			a.indentWidth = n
		}
	}
}

// WithLogger routes debug output to l instead of the default logger.
func WithLogger(l *log.Logger) Option {
	return func(a *Assembler) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAssembler creates an empty assembler with indent 0 that declares and
// writes output variables the way backend does.
func NewAssembler(backend Backend, opts ...Option) *Assembler {
	a := &Assembler{
		backend:     backend,
		logger:      log.Default(),
		indentWidth: DefaultIndentWidth,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Assembler) prefix() string {
	return strings.Repeat(" ", a.indent*a.indentWidth)
}

// AppendLine writes the concatenation of parts as one line at the current indent.
func (a *Assembler) AppendLine(parts ...string) {
	a.lines = append(a.lines, a.prefix()+strings.Join(parts, ""))
}

// AppendLineStart opens a new line at the current indent. The line is
// committed by AppendLineEnd.
func (a *Assembler) AppendLineStart(parts ...string) error {
	if a.open {
		return errors.Wrapf(ErrLineOpen, "start %q", a.partial.String())
	}
	a.open = true
	a.partial.Reset()
	a.partial.WriteString(a.prefix())
	a.partial.WriteString(strings.Join(parts, ""))
	return nil
}

// Append adds parts to the open line without indenting.
func (a *Assembler) Append(parts ...string) error {
	if !a.open {
		return errors.Wrap(ErrNoOpenLine, "append")
	}
	a.partial.WriteString(strings.Join(parts, ""))
	return nil
}

// AppendLineEnd adds parts to the open line and commits it.
func (a *Assembler) AppendLineEnd(parts ...string) error {
	if !a.open {
		return errors.Wrap(ErrNoOpenLine, "end")
	}
	a.partial.WriteString(strings.Join(parts, ""))
	a.lines = append(a.lines, a.partial.String())
	a.partial.Reset()
	a.open = false
	return nil
}

func indentAmount(n []int) int {
	if len(n) == 0 {
		return 1
	}
	return n[0]
}

func (a *Assembler) invalidIndent(op string, amount int) error {
	return errors.WithDetailf(
		errors.Wrapf(ErrInvalidIndent, "%s by %d", op, amount),
		"indent depth is %d", a.indent)
}

// IncreaseIndent raises the indent by n units, 1 if n is omitted. A negative
// amount fails with ErrInvalidIndent.
func (a *Assembler) IncreaseIndent(n ...int) error {
	amount := indentAmount(n)
	if amount < 0 {
		return a.invalidIndent("increase", amount)
	}
	a.indent += amount
	return nil
}

// DecreaseIndent lowers the indent by n units, 1 if n is omitted. It fails
// with ErrInvalidIndent, leaving the indent untouched, if the amount is
// negative or the result would be.
func (a *Assembler) DecreaseIndent(n ...int) error {
	amount := indentAmount(n)
	if amount < 0 || a.indent-amount < 0 {
		return a.invalidIndent("decrease", amount)
	}
	a.indent -= amount
	return nil
}

// IndentDepth returns the current indent in units.
func (a *Assembler) IndentDepth() int {
	return a.indent
}

// PushOutputVar makes name the current output variable. It starts out undeclared.
func (a *Assembler) PushOutputVar(name string) {
	a.vars.Push(outputVar{name: name})
	a.logger.Debug("Push output variable", "name", name, "depth", a.vars.Size())
}

// PopOutputVar restores the previous output variable. Code already written
// for the popped one stays in the buffer.
func (a *Assembler) PopOutputVar() error {
	v, ok := a.vars.Pop()
	if !ok {
		return emptyStackError("pop output variable")
	}
	a.logger.Debug("Pop output variable", "name", v.name, "inited", v.inited, "depth", a.vars.Size())
	return nil
}

// SetOutputVarInited records that the current output variable is declared.
func (a *Assembler) SetOutputVarInited() error {
	top := a.vars.Top()
	if top == nil {
		return emptyStackError("set output variable inited")
	}
	top.inited = true
	return nil
}

// OutputVarIsInited reports whether the current output variable is declared.
func (a *Assembler) OutputVarIsInited() (bool, error) {
	top, ok := a.vars.Peek()
	if !ok {
		return false, emptyStackError("output variable inited")
	}
	return top.inited, nil
}

// OutputVarName returns the name of the current output variable.
func (a *Assembler) OutputVarName() (string, error) {
	top, ok := a.vars.Peek()
	if !ok {
		return "", emptyStackError("output variable name")
	}
	return top.name, nil
}

// InitOutputVarIfNecessary declares the current output variable if that has
// not happened yet.
func (a *Assembler) InitOutputVarIfNecessary() error {
	if a.vars.Size() == 0 {
		return emptyStackError("init output variable")
	}
	return a.backend.InitOutputVarIfNecessary(a)
}

// AddToOutputVar writes exprs into the current output variable. With no
// exprs it still declares the variable.
func (a *Assembler) AddToOutputVar(exprs []Expr) error {
	if a.vars.Size() == 0 {
		return emptyStackError("add to output variable")
	}
	if len(exprs) == 0 {
		return a.backend.InitOutputVarIfNecessary(a)
	}
	return a.backend.AddToOutputVar(a, exprs)
}

// Lines returns a copy of the committed lines.
func (a *Assembler) Lines() []string {
	out := make([]string, len(a.lines))
	copy(out, a.lines)
	return out
}

// Code returns everything written so far, one line per statement joined by
// newlines. A line that was started but not ended is included last.
func (a *Assembler) Code() string {
	if !a.open {
		return strings.Join(a.lines, "\n")
	}
	all := append(a.Lines(), a.partial.String())
	return strings.Join(all, "\n")
}
