package errcode

import (
	"errors"
	"fmt"
)

type Code int

const CodeUnknown Code = -1

const (
	CodeSuccess Code = iota
	CodeUsage
	CodeArgumentFormat
	CodeInit
	CodeSocketCreate
	CodeSend
	CodeReceiveTimeout
	CodeReceive
)

var code2str = map[Code]string{
	CodeUnknown:        "unknown error",
	CodeSuccess:        "success",
	CodeUsage:          "usage error",
	CodeArgumentFormat: "argument format error",
	CodeInit:           "init error",
	CodeSocketCreate:   "socket create error",
	CodeSend:           "send error",
	CodeReceiveTimeout: "receive timeout",
	CodeReceive:        "receive error",
}

func (c Code) String() string {
	s, ok := code2str[c]
	if !ok {
		return fmt.Sprintf("unknwon code: %d", c)
	}
	return s
}

// ExitCode is the process exit status for c.
func (c Code) ExitCode() int {
	if c == CodeSuccess {
		return 0
	}
	return 1
}

type ErrorCode struct {
	code    Code
	message string
	cause   error
}

func (e ErrorCode) Code() Code      { return e.code }
func (e ErrorCode) Message() string { return e.message }
func (e ErrorCode) Unwrap() error   { return e.cause }

func (e ErrorCode) Error() string {
	msg := e.message
	if msg == "" {
		msg = e.code.String()
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", msg, e.cause)
	}
	return msg
}

// Is matches any ErrorCode with the same code, so errors.Is(err, errcode.ErrSend) works.
func (e ErrorCode) Is(target error) bool {
	t, ok := target.(ErrorCode)
	return ok && t.code == e.code
}

var (
	ErrUsage          = ErrorCode{code: CodeUsage}
	ErrArgumentFormat = ErrorCode{code: CodeArgumentFormat}
	ErrInit           = ErrorCode{code: CodeInit}
	ErrSocketCreate   = ErrorCode{code: CodeSocketCreate}
	ErrSend           = ErrorCode{code: CodeSend}
	ErrReceiveTimeout = ErrorCode{code: CodeReceiveTimeout}
	ErrReceive        = ErrorCode{code: CodeReceive}
)

func New(code Code, format string, a ...any) ErrorCode {
	return ErrorCode{
		code:    code,
		message: fmt.Sprintf(format, a...),
	}
}

func NewMessage(code Code, msg string) ErrorCode {
	return ErrorCode{code: code, message: msg}
}

// NewError wraps err, keeping it reachable through errors.Unwrap.
func NewError(code Code, msg string, err error) ErrorCode {
	return ErrorCode{code: code, message: msg, cause: err}
}

// CodeOf returns the code carried by err, CodeSuccess for nil and
// CodeUnknown for errors without a code.
func CodeOf(err error) Code {
	if err == nil {
		return CodeSuccess
	}
	var e ErrorCode
	if errors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}
