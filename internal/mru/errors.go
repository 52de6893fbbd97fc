package mru

import (
	"errors"
	"fmt"
)

// Kind classifies a store error.
type Kind int

const (
	KindIO Kind = iota
	KindNotFound
	KindNoMatch
	KindInvalidArgument
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindNotFound:
		return "not found"
	case KindNoMatch:
		return "no match"
	case KindInvalidArgument:
		return "invalid argument"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. An *Error matches the sentinel of its Kind.
var (
	ErrIO              = errors.New("i/o error")
	ErrNotFound        = errors.New("not a regular file")
	ErrNoMatch         = errors.New("no match")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Error is returned by every Store operation that fails.
type Error struct {
	Kind Kind
	Op   string // operation, e.g. "insert"
	Path string // file involved, may be empty
	Err  error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", msg, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrIO:
		return e.Kind == KindIO
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrNoMatch:
		return e.Kind == KindNoMatch
	case ErrInvalidArgument:
		return e.Kind == KindInvalidArgument
	}
	return false
}

func ioError(op, path string, err error) error {
	return &Error{Kind: KindIO, Op: op, Path: path, Err: err}
}

// NotFoundError reports a path that is not an existing regular file.
func NotFoundError(path string) error {
	return &Error{Kind: KindNotFound, Op: "add", Path: path}
}

// NoMatchError reports a search that produced nothing.
func NoMatchError(patterns []string) error {
	return &Error{Kind: KindNoMatch, Op: fmt.Sprintf("search %q", patterns)}
}

// InvalidArgumentError reports bad user input.
func InvalidArgumentError(format string, args ...interface{}) error {
	return &Error{Kind: KindInvalidArgument, Op: "usage", Err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
