package ucase

import (
	"context"
	"github.com/Imm0bilize/heartleaves-core-service/internal/entities"
	"github.com/Imm0bilize/heartleaves-core-service/pkg/predictor"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"testing"
	"time"
)

type fakePredictor struct {
	result entities.PredictionResult
	err    error
	calls  []entities.PredictionRequest
}

func (f *fakePredictor) Predict(_ context.Context, req entities.PredictionRequest) (entities.PredictionResult, error) {
	f.calls = append(f.calls, req)
	return f.result, f.err
}

type fakeNotifier struct {
	err  error
	msgs []entities.Notification
}

func (f *fakeNotifier) Notify(_ context.Context, msg entities.Notification) error {
	f.msgs = append(f.msgs, msg)
	return f.err
}

var validRequest = entities.PredictionRequest{Troponin: 0.6, CKMB: 14.2, Age: 71}

func newTestUseCase(p PredictorUCase, n NotifierUCase) *UseCase {
	return NewUseCase(p, NewAnalyzeUseCase(zap.NewNop()), n)
}

func TestUseCase_Assess(t *testing.T) {
	p := &fakePredictor{result: entities.PredictionResult{Prediction: entities.InfarctionRisk, Probability: 0.73}}
	u := newTestUseCase(p, nil)

	a, err := u.Assess(context.Background(), validRequest)
	require.NoError(t, err)

	assert.Equal(t, validRequest, a.Request)
	assert.Equal(t, p.result, a.Result)
	assert.Equal(t, entities.BandHigh, a.Band)
	assert.Equal(t, Guidance(entities.BandHigh), a.Guidance)
	assert.Equal(t, []entities.PredictionRequest{validRequest}, p.calls)
}

func TestUseCase_Assess_RejectsOutOfRange(t *testing.T) {
	p := &fakePredictor{}
	u := newTestUseCase(p, nil)

	_, err := u.Assess(context.Background(), entities.PredictionRequest{Troponin: 0.5, CKMB: 5, Age: 12})
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrOutOfRange))
	assert.Empty(t, p.calls, "out-of-range requests must not reach the endpoint")
}

func TestUseCase_Assess_SurfacesRequestFailure(t *testing.T) {
	failure := &predictor.RequestFailure{Kind: predictor.KindStatus, StatusCode: 500, Err: predictor.ErrUnexpectedStatus}
	p := &fakePredictor{err: failure}
	u := newTestUseCase(p, nil)

	_, err := u.Assess(context.Background(), validRequest)
	require.Error(t, err)

	rf, ok := predictor.AsRequestFailure(err)
	require.True(t, ok)
	assert.Same(t, failure, rf)

	// The use case is ready for the next attempt.
	p.err = nil
	p.result = entities.PredictionResult{Probability: 0.05}
	a, err := u.Assess(context.Background(), validRequest)
	require.NoError(t, err)
	assert.Equal(t, entities.BandLow, a.Band)
}

func TestUseCase_Process_PublishesAssessment(t *testing.T) {
	p := &fakePredictor{result: entities.PredictionResult{Prediction: entities.NoInfarctionEvidence, Probability: 0.3}}
	n := &fakeNotifier{}
	u := newTestUseCase(p, n)

	req := entities.ProcessingRequest{
		RequestID:  uuid.New(),
		ClientID:   "ward-7",
		Timestamp:  time.Now(),
		Prediction: validRequest,
	}

	require.NoError(t, u.Process(context.Background(), req))

	require.Len(t, n.msgs, 1)
	msg := n.msgs[0]
	assert.Equal(t, req, msg.Request)
	require.NotNil(t, msg.Assessment)
	assert.Equal(t, entities.BandModerate, msg.Assessment.Band)
	assert.Empty(t, msg.Failure)
}

func TestUseCase_Process_PublishesFailure(t *testing.T) {
	p := &fakePredictor{err: &predictor.RequestFailure{Kind: predictor.KindNetwork, Err: errors.New("connection refused")}}
	n := &fakeNotifier{}
	u := newTestUseCase(p, n)

	err := u.Process(context.Background(), entities.ProcessingRequest{RequestID: uuid.New(), Prediction: validRequest})
	require.Error(t, err)

	require.Len(t, n.msgs, 1)
	assert.Nil(t, n.msgs[0].Assessment)
	assert.Equal(t, "network", n.msgs[0].FailureKind)
	assert.Contains(t, n.msgs[0].Failure, "connection refused")
}

func TestUseCase_Process_InvalidRequest(t *testing.T) {
	n := &fakeNotifier{}
	u := newTestUseCase(&fakePredictor{}, n)

	err := u.Process(context.Background(), entities.ProcessingRequest{
		Prediction: entities.PredictionRequest{Troponin: 250, CKMB: 5, Age: 40},
	})
	require.Error(t, err)

	require.Len(t, n.msgs, 1)
	assert.Equal(t, FailureInvalidRequest, n.msgs[0].FailureKind)
}

func TestUseCase_Process_NotifierError(t *testing.T) {
	p := &fakePredictor{result: entities.PredictionResult{Probability: 0.9, Prediction: entities.InfarctionRisk}}
	brokerDown := errors.New("broker down")
	u := newTestUseCase(p, &fakeNotifier{err: brokerDown})

	err := u.Process(context.Background(), entities.ProcessingRequest{Prediction: validRequest})
	require.Error(t, err)
	assert.True(t, errors.Is(err, brokerDown))
}

func TestFailureKind(t *testing.T) {
	assert.Equal(t, "decode", FailureKind(errors.Wrap(&predictor.RequestFailure{Kind: predictor.KindDecode}, "predictor.Predict")))
	assert.Equal(t, FailureInvalidRequest, FailureKind(errors.Wrap(entities.ErrOutOfRange, "age")))
	assert.Equal(t, "unknown", FailureKind(errors.New("boom")))
}
