package fixmath

import "errors"
import "strconv"

var ErrDivisionByZero = errors.New("fixmath: division by zero")
var ErrNegativeSqrt = errors.New("fixmath: square root of negative value")
var ErrDomain = errors.New("fixmath: argument out of domain")

// Errors wrapped by [ParseError].
var ErrSyntax = errors.New("invalid syntax")
var ErrRange  = errors.New("value out of range")

// Error returned by [Parse]() and the unmarshaling methods when the
// given text can't be converted to a [Fixed] value. The Err field is
// [ErrSyntax] or [ErrRange], and can be checked with errors.Is.
type ParseError struct {
	Func  string // the failing function (Parse, UnmarshalText, ...)
	Input string // the input text
	Err   error  // the reason the conversion failed
}

func (self *ParseError) Error() string {
	return "fixmath." + self.Func + ": parsing " + strconv.Quote(self.Input) + ": " + self.Err.Error()
}

func (self *ParseError) Unwrap() error { return self.Err }
