package errors

import (
	"errors"
)

// As is errors.As narrowed to *Error.
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is is errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode returns the code of err, OK for nil and Internal for foreign errors.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}
	return CodeInternal
}

// GetMeta returns the metadata of the outermost *Error in the chain.
func GetMeta(err error) map[string]interface{} {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}
	return nil
}

// GetMessage returns the caller-facing message of err.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}
	return err.Error()
}

// IsNotFound reports whether err has CodeNotFound.
func IsNotFound(err error) bool { return GetCode(err) == CodeNotFound }

// IsInvalidArgument reports whether err has CodeInvalidArgument.
func IsInvalidArgument(err error) bool { return GetCode(err) == CodeInvalidArgument }

// IsAlreadyExists reports whether err has CodeAlreadyExists.
func IsAlreadyExists(err error) bool { return GetCode(err) == CodeAlreadyExists }

// IsFailedPrecondition reports whether err has CodeFailedPrecondition.
func IsFailedPrecondition(err error) bool { return GetCode(err) == CodeFailedPrecondition }

// IsInternal reports whether err has CodeInternal.
func IsInternal(err error) bool { return GetCode(err) == CodeInternal }

// IsUnavailable reports whether err has CodeUnavailable.
func IsUnavailable(err error) bool { return GetCode(err) == CodeUnavailable }
