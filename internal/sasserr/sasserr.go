// Package sasserr implements the compiler's error family (§7): a tagged
// sum of failure kinds, each carrying a source span, message, and
// backtrace. Grounded on the teacher's typed-error-with-position idiom
// (less/atrule.go, less/variable.go wrap fmt.Errorf with a *FileInfo
// position); this package generalizes that single untyped string error
// into a closed Kind enum so callers can switch on failure category
// (the evaluator distinguishes TypeMismatch from MissingArgument, the
// CLI renders RecursionLimit specially, etc).
package sasserr

import (
	"fmt"
	"strings"

	"github.com/toakleaf/sass.go/internal/source"
)

// Kind is the tagged sum of §7's error categories.
type Kind int

const (
	Syntax Kind = iota
	TypeMismatch
	InvalidValue
	IncompatibleUnits
	ZeroDivision
	UndefinedOperation
	MissingArgument
	UnsatisfiedExtend
	ExtendAcrossMedia
	InvalidParent
	TopLevelParent
	RecursionLimit
	Custom
	IO
)

func (k Kind) String() string {
	switch k {
	case Syntax:
		return "SyntaxError"
	case TypeMismatch:
		return "TypeError"
	case InvalidValue:
		return "InvalidValueError"
	case IncompatibleUnits:
		return "IncompatibleUnitsError"
	case ZeroDivision:
		return "ZeroDivisionError"
	case UndefinedOperation:
		return "UndefinedOperationError"
	case MissingArgument:
		return "MissingArgumentError"
	case UnsatisfiedExtend:
		return "UnsatisfiedExtendError"
	case ExtendAcrossMedia:
		return "ExtendAcrossMediaError"
	case InvalidParent:
		return "InvalidParentError"
	case TopLevelParent:
		return "TopLevelParentError"
	case RecursionLimit:
		return "RecursionLimitError"
	case Custom:
		return "Error"
	case IO:
		return "IOError"
	default:
		return "Error"
	}
}

// Frame is one entry of a CompileError's backtrace: the span active at a
// call/include/import site, outermost last.
type Frame struct {
	Span source.Span
	Desc string // e.g. "mixin `button`", "function `double`", "@import"
}

// CompileError is the single error type every compiler-facing operation
// returns; it implements the standard error interface so it composes
// with fmt.Errorf/errors.Is call sites elsewhere in the ambient stack.
type CompileError struct {
	Kind    Kind
	Span    source.Span
	Message string
	Trace   []Frame
}

func New(kind Kind, span source.Span, message string) *CompileError {
	return &CompileError{Kind: kind, Span: span, Message: message}
}

func Newf(kind Kind, span source.Span, format string, args ...any) *CompileError {
	return New(kind, span, fmt.Sprintf(format, args...))
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// AsCompileError coerces any error into a *CompileError, wrapping a
// foreign error (e.g. a plain builtins argError) as Custom-kind rather
// than discarding it, so call-stack frames can still be attached as the
// evaluator unwinds.
func AsCompileError(err error) *CompileError {
	if ce, ok := err.(*CompileError); ok {
		return ce
	}
	return &CompileError{Kind: Custom, Message: err.Error()}
}

// WithFrame returns a copy of e with one more backtrace frame appended,
// used as the evaluator unwinds out of a mixin/function/import call.
func (e *CompileError) WithFrame(span source.Span, desc string) *CompileError {
	trace := append(append([]Frame{}, e.Trace...), Frame{Span: span, Desc: desc})
	return &CompileError{Kind: e.Kind, Span: e.Span, Message: e.Message, Trace: trace}
}

// Format renders the user-visible §7 form:
//
//	<ErrorKind>: <message>
//	   <frame> (arrow)
//	  on line L column C of <path>
func (e *CompileError) Format(set *source.Set) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", e.Kind, e.Message)
	for i := len(e.Trace) - 1; i >= 0; i-- {
		f := e.Trace[i]
		fmt.Fprintf(&b, "   ↳ %s\n", f.Desc)
	}
	if set != nil {
		line, col := e.Span.LineCol(set)
		fmt.Fprintf(&b, "  on line %d column %d of %s\n", line, col, e.Span.Path(set))
	}
	return b.String()
}
