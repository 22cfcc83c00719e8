// Package results provides the success/failure value returned by service
// operations. A failure is a handled business outcome (publish a failure
// event, ack the message); an error is an infrastructure fault.
package results

// OperationResult carries either a success payload or a failure payload.
// At most one side is set; an empty result means the operation was aborted
// by a panic or infrastructure error.
type OperationResult[S any, F any] struct {
	Success *S
	Failure *F
}

// OK wraps a success payload.
func OK[S any, F any](s S) OperationResult[S, F] {
	return OperationResult[S, F]{Success: &s}
}

// Fail wraps a failure payload.
func Fail[S any, F any](f F) OperationResult[S, F] {
	return OperationResult[S, F]{Failure: &f}
}

func (r OperationResult[S, F]) IsSuccess() bool { return r.Success != nil }
func (r OperationResult[S, F]) IsFailure() bool { return r.Failure != nil }
