package predictor

import (
	"fmt"
	"github.com/pkg/errors"
)

type FailureKind string

const (
	// KindRequest means the request could not be built, e.g. a non-finite value.
	KindRequest FailureKind = "request"
	// KindNetwork covers connection, TLS, timeout and body read errors.
	KindNetwork FailureKind = "network"
	// KindStatus means the endpoint answered with a non-2xx status.
	KindStatus FailureKind = "status"
	// KindDecode means the body was not a valid prediction document.
	KindDecode FailureKind = "decode"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrInvalidResponse  = errors.New("invalid prediction response")
)

// RequestFailure is the only error Predict returns. Kind narrows down the
// cause for diagnostics; callers that only need to know the call failed can
// treat every RequestFailure alike.
type RequestFailure struct {
	Kind       FailureKind
	StatusCode int
	Err        error
}

func (e *RequestFailure) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("prediction request failed (%s, http %d): %v", e.Kind, e.StatusCode, e.Err)
	}

	return fmt.Sprintf("prediction request failed (%s): %v", e.Kind, e.Err)
}

func (e *RequestFailure) Unwrap() error {
	return e.Err
}

// AsRequestFailure returns the RequestFailure in err's chain, if any.
func AsRequestFailure(err error) (*RequestFailure, bool) {
	var rf *RequestFailure
	if errors.As(err, &rf) {
		return rf, true
	}

	return nil, false
}
