package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts err into a gRPC status error. Metadata is attached as
// a structpb.Struct detail; metadata that cannot be represented is dropped.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if len(customErr.Meta) > 0 {
		if details, detailErr := structpb.NewStruct(customErr.Meta); detailErr == nil {
			if withDetails, attachErr := st.WithDetails(details); attachErr == nil {
				st = withDetails
			}
		}
	}
	return st.Err()
}

// FromGRPCError converts a gRPC status error back into an *Error. Errors that
// are not gRPC statuses are returned unchanged.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}
	for _, detail := range st.Details() {
		if meta, ok := detail.(*structpb.Struct); ok {
			customErr.Meta = meta.AsMap()
			break
		}
	}
	return customErr
}
