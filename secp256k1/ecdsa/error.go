package ecdsa

import "fmt"

// ErrorCode identifies a kind of error produced by this package.  It has
// full support for errors.Is and errors.As so callers can directly check
// against an error code when determining the reason for a failure.
type ErrorCode int

// These constants identify the specific reasons signing, verification, or
// recovery in this package can fail.
const (
	// ErrInvalidSigSize is returned when a compact signature is not
	// exactly 65 bytes.
	ErrInvalidSigSize ErrorCode = iota

	// ErrRecoveryIDRange is returned when a compact signature's v byte
	// falls outside [27, 34].
	ErrRecoveryIDRange

	// ErrRIsZero is returned when a signature's r component is zero
	// modulo the curve order.
	ErrRIsZero

	// ErrSIsZero is returned when a signature's s component is zero
	// modulo the curve order.
	ErrSIsZero

	// ErrRTooLarge is returned when recovery's candidate x = r is not
	// smaller than the field prime.
	ErrRTooLarge

	// ErrPointNotOnCurve is returned when a recovered candidate point
	// fails the curve equation check.
	ErrPointNotOnCurve

	// ErrSelfVerifyFailed is the code of the error RawSign panics with
	// when a freshly produced signature fails to verify against its own
	// public key: signing refuses to emit a signature that cannot
	// self-verify.
	ErrSelfVerifyFailed

	numErrorCodes
)

var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidSigSize:   "ErrInvalidSigSize",
	ErrRecoveryIDRange:  "ErrRecoveryIDRange",
	ErrRIsZero:          "ErrRIsZero",
	ErrSIsZero:          "ErrSIsZero",
	ErrRTooLarge:        "ErrRTooLarge",
	ErrPointNotOnCurve:  "ErrPointNotOnCurve",
	ErrSelfVerifyFailed: "ErrSelfVerifyFailed",
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

// Error identifies an ECDSA error.  Callers can use errors.As to recover
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
