package app

import (
	"context"
	"github.com/Imm0bilize/heartleaves-core-service/internal/config"
	"github.com/Imm0bilize/heartleaves-core-service/internal/entities"
	"github.com/Imm0bilize/heartleaves-core-service/pkg/predictor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(config.LogConfig{Level: "error"}, false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger, err = NewLogger(config.LogConfig{Level: "error"}, true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = NewLogger(config.LogConfig{Level: "loud"}, false)
	require.Error(t, err)
}

func TestApp_UseCase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"prediction": 1, "probability": 0.81}`)
	}))
	defer srv.Close()

	a, err := New(&config.Config{Prediction: config.PredictionConfig{Endpoint: srv.URL}}, zap.NewNop())
	require.NoError(t, err)
	defer func() { require.NoError(t, a.Shutdown(context.Background())) }()

	assessment, err := a.UseCase().Assess(context.Background(), entities.PredictionRequest{Troponin: 1.1, CKMB: 22, Age: 58})
	require.NoError(t, err)
	assert.Equal(t, entities.BandHigh, assessment.Band)
	assert.Equal(t, entities.InfarctionRisk, assessment.Result.Prediction)
}

func TestApp_UseCase_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a, err := New(&config.Config{Prediction: config.PredictionConfig{Endpoint: srv.URL}}, zap.NewNop())
	require.NoError(t, err)
	defer func() { _ = a.Shutdown(context.Background()) }()

	_, err = a.UseCase().Assess(context.Background(), entities.PredictionRequest{Troponin: 1.1, CKMB: 22, Age: 58})

	rf, ok := predictor.AsRequestFailure(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, rf.StatusCode)
}

func TestNew_InvalidEndpoint(t *testing.T) {
	_, err := New(&config.Config{Prediction: config.PredictionConfig{Endpoint: "not a url"}}, zap.NewNop())
	require.Error(t, err)
}
