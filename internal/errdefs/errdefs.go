package errdefs

import "errors"

type ErrorType int

const (
	ErrTypeCatalogParse ErrorType = iota
	ErrTypeCatalogInvalid
	ErrTypeInvalidScreen
	ErrTypeIndexOutOfRange
	ErrTypeUnhandledKey
	ErrTypeNotTerminal
	ErrTypeGeneric
)

func (t ErrorType) String() string {
	switch t {
	case ErrTypeCatalogParse:
		return "catalog-parse"
	case ErrTypeCatalogInvalid:
		return "catalog-invalid"
	case ErrTypeInvalidScreen:
		return "invalid-screen"
	case ErrTypeIndexOutOfRange:
		return "index-out-of-range"
	case ErrTypeUnhandledKey:
		return "unhandled-key"
	case ErrTypeNotTerminal:
		return "not-terminal"
	default:
		return "generic"
	}
}

type CustomError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func NewCustomError(errType ErrorType, message string) error {
	return &CustomError{
		Type:    errType,
		Message: message,
	}
}

// Wrap attaches a type and message to an underlying error.
func Wrap(errType ErrorType, message string, err error) error {
	return &CustomError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// IsType reports whether any error in err's chain is a CustomError of type t.
func IsType(err error, t ErrorType) bool {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Type == t
	}
	return false
}
