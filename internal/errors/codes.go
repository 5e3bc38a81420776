package errors

// Code classifies an error. The values mirror the gRPC status codes the
// statistics service can return.
type Code string

// Error codes
const (
	CodeOK               Code = "OK"
	CodeCanceled         Code = "CANCELED"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded Code = "DEADLINE_EXCEEDED"
	CodeNotFound         Code = "NOT_FOUND"
	CodeAlreadyExists    Code = "ALREADY_EXISTS"
	CodeUnimplemented    Code = "UNIMPLEMENTED"
	CodeInternal         Code = "INTERNAL"
	CodeUnavailable      Code = "UNAVAILABLE"
	// CodeDataLoss marks a stored record that no longer decodes
	CodeDataLoss Code = "DATA_LOSS"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Temporary reports whether retrying the same call may succeed
func (c Code) Temporary() bool {
	switch c {
	case CodeUnavailable, CodeDeadlineExceeded:
		return true
	default:
		return false
	}
}
