// Package api describes the JSON wire format of the remote scoring endpoint.
// Field names are part of the contract and must match exactly.
package api

type PredictionRequest struct {
	Troponin float64 `json:"Troponin"`
	CKMB     float64 `json:"CK-MB"`
	Age      int     `json:"Age"`
}

// PredictionResponse uses pointers to tell a missing field from a zero value.
type PredictionResponse struct {
	Prediction  *int     `json:"prediction"`
	Probability *float64 `json:"probability"`
}
