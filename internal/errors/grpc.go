package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	// Check if it's already a gRPC status error
	if _, ok := status.FromError(err); ok {
		return err
	}

	// Check if it's our custom error
	var customErr *Error
	if As(err, &customErr) {
		st := status.New(customErr.Code.GRPCCode(), customErr.Message)

		// Add metadata if present
		if len(customErr.Meta) > 0 {
			if details, err := detailsStruct(customErr); err == nil {
				if withDetails, err := st.WithDetails(details); err == nil {
					st = withDetails
				}
			}
		}

		return st.Err()
	}

	// context errors keep their own code
	return status.Error(GetCode(err).GRPCCode(), err.Error())
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	// Map gRPC code to our code
	code := grpcCodeToCode(st.Code())

	// Create base error
	customErr := &Error{
		Code:    code,
		Message: st.Message(),
	}

	// Extract details if present
	for _, detail := range st.Details() {
		if details, ok := detail.(*structpb.Struct); ok {
			if meta, ok := metaFromDetails(details); ok {
				customErr.Meta = meta
				break
			}
		}
	}

	return customErr
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeCanceled:
		return codes.Canceled
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeDeadlineExceeded:
		return codes.DeadlineExceeded
	case CodeNotFound:
		return codes.NotFound
	case CodeAlreadyExists:
		return codes.AlreadyExists
	case CodeUnimplemented:
		return codes.Unimplemented
	case CodeInternal:
		return codes.Internal
	case CodeUnavailable:
		return codes.Unavailable
	case CodeDataLoss:
		return codes.DataLoss
	default:
		return codes.Unknown
	}
}

// grpcCodeToCode converts a gRPC code to our error code. Codes the service
// never returns collapse into CodeInternal.
func grpcCodeToCode(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.OK:
		return CodeOK
	case codes.Canceled:
		return CodeCanceled
	case codes.InvalidArgument:
		return CodeInvalidArgument
	case codes.DeadlineExceeded:
		return CodeDeadlineExceeded
	case codes.NotFound:
		return CodeNotFound
	case codes.AlreadyExists:
		return CodeAlreadyExists
	case codes.Unimplemented:
		return CodeUnimplemented
	case codes.Unavailable:
		return CodeUnavailable
	case codes.DataLoss:
		return CodeDataLoss
	default:
		return CodeInternal
	}
}

// detailsStruct packs the error code, message and metadata into a
// google.protobuf.Struct so it survives the wire as a status detail.
func detailsStruct(e *Error) (*structpb.Struct, error) {
	fields := map[string]interface{}{
		"code":    string(e.Code),
		"message": e.Message,
	}
	if len(e.Meta) > 0 {
		meta := make(map[string]interface{}, len(e.Meta))
		for k, v := range e.Meta {
			meta[k] = wireValue(v)
		}
		fields["meta"] = meta
	}
	return structpb.NewStruct(fields)
}

// wireValue coerces a metadata value into something structpb accepts
func wireValue(v interface{}) interface{} {
	if _, err := structpb.NewValue(v); err == nil {
		return v
	}
	switch t := v.(type) {
	case []string:
		out := make([]interface{}, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case map[string][]string:
		out := make(map[string]interface{}, len(t))
		for k, vals := range t {
			out[k] = wireValue(vals)
		}
		return out
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func metaFromDetails(s *structpb.Struct) (map[string]interface{}, bool) {
	if s == nil {
		return nil, false
	}
	metaValue, ok := s.GetFields()["meta"]
	if !ok {
		return nil, false
	}
	meta := metaValue.GetStructValue()
	if meta == nil {
		return nil, false
	}
	return meta.AsMap(), true
}
