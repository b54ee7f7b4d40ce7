package entities

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestPredictionRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     PredictionRequest
		wantErr bool
	}{
		{"lower bounds", PredictionRequest{Troponin: 0, CKMB: 0, Age: 18}, false},
		{"upper bounds", PredictionRequest{Troponin: 100, CKMB: 1000, Age: 120}, false},
		{"typical", PredictionRequest{Troponin: 0.01, CKMB: 5, Age: 50}, false},
		{"negative troponin", PredictionRequest{Troponin: -0.01, CKMB: 5, Age: 50}, true},
		{"troponin too high", PredictionRequest{Troponin: 100.5, CKMB: 5, Age: 50}, true},
		{"nan troponin", PredictionRequest{Troponin: math.NaN(), CKMB: 5, Age: 50}, true},
		{"ck-mb too high", PredictionRequest{Troponin: 1, CKMB: 1000.1, Age: 50}, true},
		{"too young", PredictionRequest{Troponin: 1, CKMB: 5, Age: 17}, true},
		{"too old", PredictionRequest{Troponin: 1, CKMB: 5, Age: 121}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrOutOfRange))
		})
	}
}

func TestOutcome(t *testing.T) {
	assert.True(t, NoInfarctionEvidence.Valid())
	assert.True(t, InfarctionRisk.Valid())
	assert.False(t, Outcome(2).Valid())
	assert.Equal(t, "Infarction risk detected", InfarctionRisk.String())
	assert.Equal(t, "Outcome(-1)", Outcome(-1).String())
}
