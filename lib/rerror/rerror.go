package rerror

import (
	"errors"
	"fmt"
	"io/fs"

	pkgerrors "github.com/pkg/errors"

	"risp/engine/lexer"
	"risp/lib/value"
)

type Kind uint8

const (
	KindUnexpectedToken Kind = iota + 1
	KindMissingToken
	KindUndefinedFunction
	KindNotAFunction
	KindArgumentError
	KindTooFewArguments
	KindTypeError
	KindIOError
)

func (k Kind) String() string {
	switch k {
	case KindUnexpectedToken:
		return "UnexpectedToken"
	case KindMissingToken:
		return "MissingToken"
	case KindUndefinedFunction:
		return "UndefinedFunction"
	case KindNotAFunction:
		return "NotAFunction"
	case KindArgumentError:
		return "ArgumentError"
	case KindTooFewArguments:
		return "TooFewArguments"
	case KindTypeError:
		return "TypeError"
	case KindIOError:
		return "IOError"
	default:
		return fmt.Sprintf("unknown:%d", k)
	}
}

// Error is the single error type produced by the parser, the interpreter and
// file loading. Payload fields are set according to Kind.
type Error struct {
	Kind    Kind
	Message string

	// UnexpectedToken
	Token lexer.Token
	// UndefinedFunction, NotAFunction
	Name string
	// TypeError
	Expected value.Type
	Actual   value.Type
	// IOError
	IOKind string
	Err    error
}

var _ error = (*Error)(nil)

func (e *Error) Error() string {
	var head string
	switch e.Kind {
	case KindUnexpectedToken:
		head = fmt.Sprintf("%s(%s)", e.Kind, e.Token)
	case KindUndefinedFunction, KindNotAFunction:
		head = fmt.Sprintf("%s(%q)", e.Kind, e.Name)
	case KindTypeError:
		head = fmt.Sprintf("%s{expected: %s, actual: %s}", e.Kind, e.Expected, e.Actual)
	case KindIOError:
		head = fmt.Sprintf("%s(%s)", e.Kind, e.IOKind)
	default:
		head = e.Kind.String()
	}
	if e.Message == "" {
		return head
	}
	return fmt.Sprintf("%s: %s", head, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind, so callers can write
// errors.Is(err, rerror.MissingToken()).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func UnexpectedToken(tok lexer.Token) *Error {
	return &Error{Kind: KindUnexpectedToken, Token: tok, Message: "unexpected token"}
}

func MissingToken() *Error {
	return &Error{Kind: KindMissingToken, Message: "input ended before a required token"}
}

func UndefinedFunction(name string) *Error {
	return &Error{Kind: KindUndefinedFunction, Name: name, Message: "undefined"}
}

func NotAFunction(name string) *Error {
	return &Error{Kind: KindNotAFunction, Name: name, Message: "not a function"}
}

func ArgumentError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindArgumentError, Message: fmt.Sprintf(format, args...)}
}

func TooFewArguments(format string, args ...interface{}) *Error {
	return &Error{Kind: KindTooFewArguments, Message: fmt.Sprintf(format, args...)}
}

func TypeMismatch(expected, actual value.Type, context string) *Error {
	return &Error{Kind: KindTypeError, Expected: expected, Actual: actual, Message: context}
}

// IO wraps a failed read of path. The underlying error stays reachable
// through errors.Is / errors.As.
func IO(err error, path string) *Error {
	return &Error{
		Kind:    KindIOError,
		IOKind:  ioKind(err),
		Message: fmt.Sprintf("could not read %s", path),
		Err:     pkgerrors.Wrapf(err, "reading %s", path),
	}
}

func ioKind(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "NotFound"
	case errors.Is(err, fs.ErrPermission):
		return "PermissionDenied"
	case errors.Is(err, fs.ErrInvalid):
		return "InvalidInput"
	default:
		return "Other"
	}
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
