package js

import (
	"tmplgen/pkg/codegen"

	"github.com/cockroachdb/errors"
)

// CodeStyle selects how output variables are accumulated in generated JavaScript.
type CodeStyle int

const (
	// StringBuilder accumulates into a soy.StringBuilder buffer.
	StringBuilder CodeStyle = iota
	// Concat accumulates into a string with +=.
	Concat
	// ArrayJoin accumulates into an array the caller joins at the end.
	ArrayJoin
)

var styleNames = map[CodeStyle]string{
	StringBuilder: "stringbuilder",
	Concat:        "concat",
	ArrayJoin:     "arrayjoin",
}

func (s CodeStyle) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseCodeStyle returns the style with the given name.
func ParseCodeStyle(name string) (CodeStyle, error) {
	for style, n := range styleNames {
		if n == name {
			return style, nil
		}
	}
	return 0, errors.Newf("unknown JavaScript code style %q", name)
}

type jsBackend struct {
	style CodeStyle
}

// New returns the JavaScript backend for style.
func New(style CodeStyle) (codegen.Backend, error) {
	if _, ok := styleNames[style]; !ok {
		return nil, errors.Newf("unknown JavaScript code style %d", int(style))
	}
	return jsBackend{style: style}, nil
}

// MustNew is like New but panics on an unknown style.
func MustNew(style CodeStyle) codegen.Backend {
	b, err := New(style)
	if err != nil {
		panic(err)
	}
	return b
}

// InitOutputVarIfNecessary declares the current output variable if needed
func (b jsBackend) InitOutputVarIfNecessary(w codegen.OutputWriter) error {
	inited, name, err := current(w)
	if err != nil || inited {
		return err
	}

	switch b.style {
	case StringBuilder:
		// var output = new soy.StringBuilder();
		w.AppendLine("var ", name, " = new soy.StringBuilder();")
	case ArrayJoin:
		// var output = [];
		w.AppendLine("var ", name, " = [];")
	case Concat:
		// var output = '';
		w.AppendLine("var ", name, " = '';")
	default:
		return errors.Newf("unknown JavaScript code style %d", int(b.style))
	}
	return w.SetOutputVarInited()
}

// AddToOutputVar appends exprs to the current output variable, folding the
// declaration into the same statement when it has not been emitted yet.
func (b jsBackend) AddToOutputVar(w codegen.OutputWriter, exprs []codegen.Expr) error {
	if len(exprs) == 0 {
		return b.InitOutputVarIfNecessary(w)
	}
	inited, name, err := current(w)
	if err != nil {
		return err
	}

	switch b.style {
	case StringBuilder:
		args := codegen.JoinExprs(exprs, ", ")
		if inited {
			// output.append(AAA, BBB);
			w.AppendLine(name, ".append(", args, ");")
			return nil
		}
		// var output = new soy.StringBuilder(AAA, BBB);
		w.AppendLine("var ", name, " = new soy.StringBuilder(", args, ");")

	case ArrayJoin:
		args := codegen.JoinExprs(exprs, ", ")
		if inited {
			// output.push(AAA, BBB);
			w.AppendLine(name, ".push(", args, ");")
			return nil
		}
		// var output = [AAA, BBB];
		w.AppendLine("var ", name, " = [", args, "];")

	case Concat:
		if inited {
			// output += AAA + BBB;
			w.AppendLine(name, " += ", codegen.ConcatExprs(exprs).Text, ";")
			return nil
		}
		// var output = '' + AAA + BBB;
		// The '' seed keeps {2}{2} from becoming 4.
		w.AppendLine("var ", name, " = ", forceString(exprs).Text, ";")

	default:
		return errors.Newf("unknown JavaScript code style %d", int(b.style))
	}
	return w.SetOutputVarInited()
}
