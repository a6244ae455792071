package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrWorkerPanic         = fmt.Errorf("worker panic")
	ErrMissingGroupID      = fmt.Errorf("group snapshot has no id")
	ErrLocalAccountUnknown = fmt.Errorf("local account uuid is not set")
	ErrNetwork             = fmt.Errorf("network error")
	ErrConnectionLost      = fmt.Errorf("connection to signald lost")
	ErrNoSuchAddress       = fmt.Errorf("no such address")
	ErrUnknownSession      = fmt.Errorf("unknown chat session")
	ErrUnknownGroup        = fmt.Errorf("group not found in directory")
	ErrFormatFailed        = fmt.Errorf("message formatting failed")
	ErrEmptyMessage        = fmt.Errorf("message has neither body nor attachment")
	ErrMalformedFrame      = fmt.Errorf("malformed signald frame")
	ErrDirectoryBackend    = fmt.Errorf("unsupported directory backend")
	ErrEmptyGroupingLabel  = fmt.Errorf("grouping label must not be empty")
	ErrUnknownCommand      = fmt.Errorf("unknown command")
)

// Is and Join forward to the standard library so that callers only import this package.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func Join(errs ...error) error {
	return stderrors.Join(errs...)
}
