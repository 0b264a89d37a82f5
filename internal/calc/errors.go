package calc

import "errors"

// Sentinel errors for arithmetic and input handling.
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrDivisionByZero = errors.New("division by zero is not allowed")
	ErrDomain         = errors.New("math domain error")
	ErrOverflow       = errors.New("result is too large")
)

// ErrNegativeSquareRoot is the DomainError returned by SquareRoot.
var ErrNegativeSquareRoot error = &domainError{msg: "cannot calculate square root of a negative number"}

// domainError carries a specific message while matching ErrDomain.
type domainError struct {
	msg string
}

func (e *domainError) Error() string { return e.msg }

func (e *domainError) Is(target error) bool { return target == ErrDomain }
