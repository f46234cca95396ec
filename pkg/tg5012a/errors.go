package tg5012a

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrConnectionFailed  = errors.New("tg5012a: connection to instrument failed")
	ErrNoTransport       = errors.New("tg5012a: neither serial port nor network address configured")
	ErrReopenUnsupported = errors.New("tg5012a: reopen is supported for serial transport only")
	ErrState             = errors.New("tg5012a: operation not allowed in current session state")
	ErrNotConnected      = errors.New("tg5012a: session is not connected")
	ErrRead              = errors.New("tg5012a: failed to read response line")
	ErrTimeout           = errors.New("tg5012a: timeout waiting for response")
	ErrNonASCII          = errors.New("tg5012a: command contains non-ASCII characters")
	ErrInvalidArgument   = errors.New("tg5012a: invalid argument")
	ErrExecution         = errors.New("tg5012a: instrument reported execution error")
	ErrQuery             = errors.New("tg5012a: instrument reported query error")
)

// StatusError содержит ненулевой код, прочитанный из регистра ошибок прибора
// (QER? или EER?) сразу после команды.
type StatusError struct {
	Register string
	Command  string
	Code     int
}

func (e *StatusError) Error() string {
	kind := "execution"
	if e.Register == cmdQueryError {
		kind = "query"
	}
	return fmt.Sprintf("tg5012a: instrument returned %s error %d after %q", kind, e.Code, e.Command)
}

// Is позволяет сравнивать через errors.Is с ErrExecution и ErrQuery.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrQuery:
		return e.Register == cmdQueryError
	case ErrExecution:
		return e.Register == cmdExecutionError
	}
	return false
}

// ValidationError возвращается до любого обмена с прибором, если аргумент
// команды не входит в допустимое множество или диапазон.
type ValidationError struct {
	Param   string
	Value   string
	Allowed string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("tg5012a: invalid %s %q, it should be %s", e.Param, e.Value, e.Allowed)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }

func oneOf[T ~string](param string, v T, allowed ...T) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return &ValidationError{
		Param:   param,
		Value:   string(v),
		Allowed: "one of [" + strings.Join(names, " ") + "]",
	}
}

func inRange(param string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return &ValidationError{
			Param:   param,
			Value:   formatNumber(v),
			Allowed: fmt.Sprintf("between %s and %s", formatNumber(lo), formatNumber(hi)),
		}
	}
	return nil
}
