package python

import "tmplgen/pkg/codegen"

type pythonBackend struct{}

// New returns the Python backend. Output variables are plain strings built
// with +=.
func New() codegen.Backend {
	return pythonBackend{}
}

func (pythonBackend) InitOutputVarIfNecessary(w codegen.OutputWriter) error {
	inited, err := w.OutputVarIsInited()
	if err != nil || inited {
		return err
	}
	name, err := w.OutputVarName()
	if err != nil {
		return err
	}

	// output = ''
	w.AppendLine(name, " = ''")
	return w.SetOutputVarInited()
}

// AddToOutputVar does not seed with an empty string. Python's + never turns
// two numbers into a string, so callers already hand over string expressions.
func (b pythonBackend) AddToOutputVar(w codegen.OutputWriter, exprs []codegen.Expr) error {
	if len(exprs) == 0 {
		return b.InitOutputVarIfNecessary(w)
	}
	inited, err := w.OutputVarIsInited()
	if err != nil {
		return err
	}
	name, err := w.OutputVarName()
	if err != nil {
		return err
	}

	concat := codegen.ConcatExprs(exprs).Text
	if inited {
		w.AppendLine(name, " += ", concat)
		return nil
	}
	w.AppendLine(name, " = ", concat)
	return w.SetOutputVarInited()
}
