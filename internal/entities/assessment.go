package entities

import (
	"github.com/google/uuid"
	"time"
)

type Band string

const (
	BandLow      Band = "low"
	BandModerate Band = "moderate"
	BandHigh     Band = "high"
)

// Assessment is a prediction result together with its interpretation, ready to render.
type Assessment struct {
	Request  PredictionRequest
	Result   PredictionResult
	Band     Band
	Guidance string
}

type ProcessingRequest struct {
	RequestID  uuid.UUID
	ClientID   string
	Timestamp  time.Time
	Prediction PredictionRequest
}

// Notification is what worker mode publishes for each processed request:
// either an assessment or the reason none could be produced.
type Notification struct {
	Request     ProcessingRequest
	Assessment  *Assessment
	FailureKind string
	Failure     string
}
