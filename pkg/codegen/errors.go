package codegen

import "github.com/cockroachdb/errors"

// Contract violations reported by the assembler. They mean the calling
// generation pass broke push/pop or indent balance and should not be retried.
var (
	ErrEmptyStack    = errors.New("no current output variable")
	ErrInvalidIndent = errors.New("invalid indent")
	ErrLineOpen      = errors.New("line already open")
	ErrNoOpenLine    = errors.New("no open line")
)

func emptyStackError(op string) error {
	return errors.Wrapf(ErrEmptyStack, "%s", op)
}
