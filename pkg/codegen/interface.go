package codegen

// OutputWriter is the part of the assembler a Backend may use. It exposes the
// current output variable and line emission, never the stack itself.
type OutputWriter interface {
	AppendLine(parts ...string)
	OutputVarName() (string, error)
	OutputVarIsInited() (bool, error)
	SetOutputVarInited() error
}

// Backend decides how an output variable is declared and how expressions are
// folded into it for one target language. Implementations hold no mutable
// state and may be shared between assemblers.
type Backend interface {
	// InitOutputVarIfNecessary declares the current output variable unless it
	// was declared already.
	InitOutputVarIfNecessary(w OutputWriter) error
	// AddToOutputVar writes exprs, in order, into the current output variable,
	// declaring it first if needed.
	AddToOutputVar(w OutputWriter, exprs []Expr) error
}
