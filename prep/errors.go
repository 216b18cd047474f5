package prep

import (
	"fmt"
)

// ErrorKind classifies a data-preparation failure.
type ErrorKind int

const (
	ErrKindUnknown ErrorKind = iota
	ErrKindInvalidArgument
	ErrKindTooShort
	ErrKindAssistantBeforeUser
	ErrKindConsecutiveUser
	ErrKindMisplacedSystem
)

// PrepError represents an error raised while preparing a training example.
// Index is the offending message index where one applies, -1 otherwise.
type PrepError struct {
	Kind    ErrorKind
	Message string
	Index   int
	Err     error
}

func (e *PrepError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", e.KindString(), e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.KindString(), e.Message)
}

func (e *PrepError) Unwrap() error {
	return e.Err
}

func (e *PrepError) KindString() string {
	switch e.Kind {
	case ErrKindInvalidArgument:
		return "InvalidArgumentError"
	case ErrKindTooShort:
		return "TooShortError"
	case ErrKindAssistantBeforeUser:
		return "AssistantBeforeUserError"
	case ErrKindConsecutiveUser:
		return "ConsecutiveUserError"
	case ErrKindMisplacedSystem:
		return "MisplacedSystemError"
	default:
		return "UnknownError"
	}
}

// NewPrepError creates a new PrepError with no associated message index.
func NewPrepError(kind ErrorKind, message string, err error) *PrepError {
	return &PrepError{
		Kind:    kind,
		Message: message,
		Index:   -1,
		Err:     err,
	}
}

// NewPrepErrorAt creates a new PrepError pointing at a message index.
func NewPrepErrorAt(kind ErrorKind, index int, message string) *PrepError {
	return &PrepError{
		Kind:    kind,
		Message: message,
		Index:   index,
	}
}
