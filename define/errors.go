package define

import (
	"errors"
	"fmt"
)

// Error codes
const (
	NOERROR   int = 0
	EMISSING  int = 122 // required field or parameter missing
	EINVALID  int = 123 // validation failed
	EUNKNOWN  int = 124 // unknown family, variant or parameter
	EFORMAT   int = 125 // malformed YAML or JSON
	EINTERNAL int = 126 // internal error
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "missing"
	case EINVALID:
		return "invalid"
	case EUNKNOWN:
		return "unknown"
	case EFORMAT:
		return "format error"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// CodedError is an error with an associated error code and a user message.
type CodedError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type defError struct {
	error
	code int
	msg  string
}

func (e defError) Unwrap() error {
	return e.error
}

func (e defError) Error() string {
	return fmt.Sprintf("[%d] %s: %v", e.code, e.msg, e.error)
}

func (e defError) ErrorCode() int {
	return e.code
}

func (e defError) UserMessage() string {
	return e.msg
}

var _ CodedError = defError{}

// Error creates an error with an error code and a user message.
func Error(code int, format string, v ...any) error {
	return defError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// WrapError wraps err, adding an error code and a user message.
// If err is nil, an error denoting the code is wrapped.
func WrapError(err error, code int, format string, v ...any) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return defError{err, code, fmt.Sprintf(format, v...)}
}

// Code returns the error code associated with an error.
// If no code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	if e := CodedError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If no message is found, it returns the text of the error's code.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := CodedError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}
