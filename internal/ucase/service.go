package ucase

import (
	"context"
	"github.com/Imm0bilize/heartleaves-core-service/internal/entities"
	"github.com/Imm0bilize/heartleaves-core-service/pkg/predictor"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/multierr"
)

type (
	PredictorUCase interface {
		Predict(ctx context.Context, request entities.PredictionRequest) (entities.PredictionResult, error)
	}

	AnalyzerUCase interface {
		Analyze(ctx context.Context, request entities.PredictionRequest, result entities.PredictionResult) entities.Assessment
	}

	NotifierUCase interface {
		Notify(ctx context.Context, msg entities.Notification) error
	}
)

const FailureInvalidRequest = "invalid_request"

// UseCase holds collaborators only; nothing about a request outlives the call.
type UseCase struct {
	analyzer  AnalyzerUCase
	predictor PredictorUCase
	notifier  NotifierUCase

	tracer trace.Tracer
}

// NewUseCase accepts a nil notifier when results are only returned to the caller.
func NewUseCase(
	predictor PredictorUCase,
	analyzer AnalyzerUCase,
	notifier NotifierUCase,
) *UseCase {
	return &UseCase{
		analyzer:  analyzer,
		predictor: predictor,
		notifier:  notifier,
		tracer:    otel.GetTracerProvider().Tracer("uCase"),
	}
}

func (u UseCase) Assess(ctx context.Context, request entities.PredictionRequest) (entities.Assessment, error) {
	ctx, span := u.tracer.Start(ctx, "Assess")
	defer span.End()

	if err := request.Validate(); err != nil {
		span.RecordError(err)
		return entities.Assessment{}, errors.Wrap(err, "request.Validate")
	}

	res, err := u.predictor.Predict(ctx, request)
	if err != nil {
		span.RecordError(err)
		return entities.Assessment{}, errors.Wrap(err, "predictor.Predict")
	}

	return u.analyzer.Analyze(ctx, request, res), nil
}

// Process assesses a queued request and publishes the outcome, failures included,
// so the requester always hears back.
func (u UseCase) Process(ctx context.Context, request entities.ProcessingRequest) error {
	ctx, span := u.tracer.Start(ctx, "ProcessRequest")
	defer span.End()

	msg := entities.Notification{Request: request}

	assessment, err := u.Assess(ctx, request.Prediction)
	if err != nil {
		msg.FailureKind = FailureKind(err)
		msg.Failure = err.Error()
	} else {
		msg.Assessment = &assessment
	}

	if u.notifier == nil {
		return err
	}

	if nErr := u.notifier.Notify(ctx, msg); nErr != nil {
		err = multierr.Append(err, errors.Wrap(nErr, "notifier.Notify"))
	}

	if err != nil {
		span.RecordError(err)
	}

	return err
}

// FailureKind classifies an Assess error for consumers of published results.
func FailureKind(err error) string {
	if errors.Is(err, entities.ErrOutOfRange) {
		return FailureInvalidRequest
	}

	if rf, ok := predictor.AsRequestFailure(err); ok {
		return string(rf.Kind)
	}

	return "unknown"
}
