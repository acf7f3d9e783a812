package keys

import "fmt"

// ErrorCode identifies a kind of error produced by this package.  It has
// full support for errors.Is and errors.As so callers can directly check
// against an error code when determining the reason for a failure.
type ErrorCode int

// These constants identify the specific reasons key parsing/encoding in
// this package can fail.
const (
	// ErrUnrecognizedFormat is returned when an input does not match any
	// of the recognized public or private key layouts.
	ErrUnrecognizedFormat ErrorCode = iota

	// ErrPubKeyNotOnCurve is returned when a decoded public key does not
	// satisfy the curve equation.
	ErrPubKeyNotOnCurve

	// ErrPubKeyXTooBig is returned when a decoded public key's x
	// coordinate is not smaller than the field prime.
	ErrPubKeyXTooBig

	// ErrKeyRange is returned when a private scalar is zero or is not
	// smaller than the curve order.
	ErrKeyRange

	// ErrChecksum is returned when a WIF string's Base58Check checksum
	// does not validate.
	ErrChecksum

	// ErrWrongNetwork is returned when a WIF string decodes to a version
	// byte other than the one the caller requested.
	ErrWrongNetwork

	numErrorCodes
)

var errorCodeStrings = map[ErrorCode]string{
	ErrUnrecognizedFormat: "ErrUnrecognizedFormat",
	ErrPubKeyNotOnCurve:   "ErrPubKeyNotOnCurve",
	ErrPubKeyXTooBig:      "ErrPubKeyXTooBig",
	ErrKeyRange:           "ErrKeyRange",
	ErrChecksum:           "ErrChecksum",
	ErrWrongNetwork:       "ErrWrongNetwork",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error satisfies the error interface.
func (e ErrorCode) Error() string {
	return e.String()
}

// Is implements the interface used by the standard library's errors.Is.
func (e ErrorCode) Is(target error) bool {
	switch target := target.(type) {
	case Error:
		return e == target.ErrorCode
	case ErrorCode:
		return e == target
	}
	return false
}

// Error identifies a key-codec error.  Callers can use errors.As to recover
// the ErrorCode and distinguish failure reasons.
type Error struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface.
func (e Error) Error() string {
	return e.Description
}

// Is implements the interface used by the standard library's errors.Is.
func (e Error) Is(target error) bool {
	switch target := target.(type) {
	case Error:
		return e.ErrorCode == target.ErrorCode
	case ErrorCode:
		return target == e.ErrorCode
	}
	return false
}

// Unwrap returns the underlying error code.
func (e Error) Unwrap() error {
	return e.ErrorCode
}

func makeError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}
