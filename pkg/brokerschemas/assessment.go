// Package brokerschemas defines the JSON messages exchanged over Kafka in worker mode.
package brokerschemas

import (
	"github.com/google/uuid"
	"time"
)

// AssessmentRequestMessage asks for one assessment. A zero RequestID is replaced
// by a generated one.
type AssessmentRequestMessage struct {
	RequestID uuid.UUID `json:"request_id"`
	ClientID  string    `json:"client_id"`
	Timestamp time.Time `json:"timestamp"`
	Troponin  float64   `json:"troponin"`
	CKMB      float64   `json:"ck_mb"`
	Age       int       `json:"age"`
}

// AssessmentMessage carries either the prediction fields or Error/ErrorKind.
type AssessmentMessage struct {
	RequestID   uuid.UUID `json:"request_id"`
	ClientID    string    `json:"client_id"`
	Timestamp   time.Time `json:"timestamp"`
	Prediction  *int      `json:"prediction,omitempty"`
	Outcome     string    `json:"outcome,omitempty"`
	Probability *float64  `json:"probability,omitempty"`
	Band        string    `json:"band,omitempty"`
	Guidance    string    `json:"guidance,omitempty"`
	ErrorKind   string    `json:"error_kind,omitempty"`
	Error       string    `json:"error,omitempty"`
}
