package errors

import "google.golang.org/grpc/codes"

// Code classifies an error. Values mirror the gRPC codes the server returns.
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

var codeToGRPC = map[Code]codes.Code{
	CodeOK:                 codes.OK,
	CodeCanceled:           codes.Canceled,
	CodeInvalidArgument:    codes.InvalidArgument,
	CodeDeadlineExceeded:   codes.DeadlineExceeded,
	CodeNotFound:           codes.NotFound,
	CodeAlreadyExists:      codes.AlreadyExists,
	CodeResourceExhausted:  codes.ResourceExhausted,
	CodeFailedPrecondition: codes.FailedPrecondition,
	CodeInternal:           codes.Internal,
	CodeUnavailable:        codes.Unavailable,
}

var grpcToCode = func() map[codes.Code]Code {
	m := make(map[codes.Code]Code, len(codeToGRPC))
	for code, grpcCode := range codeToGRPC {
		m[grpcCode] = code
	}
	return m
}()

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// GRPCCode returns the matching gRPC code. Unknown codes map to Unknown.
func (c Code) GRPCCode() codes.Code {
	if grpcCode, ok := codeToGRPC[c]; ok {
		return grpcCode
	}
	return codes.Unknown
}

// codeFromGRPC maps a gRPC code back to a Code, falling back to Internal.
func codeFromGRPC(grpcCode codes.Code) Code {
	if code, ok := grpcToCode[grpcCode]; ok {
		return code
	}
	return CodeInternal
}
