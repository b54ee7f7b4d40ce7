package ucase

import (
	"context"
	"github.com/Imm0bilize/heartleaves-core-service/internal/entities"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type AnalyzeUseCase struct {
	tracer trace.Tracer
	logger *zap.Logger
}

var (
	_ AnalyzerUCase = AnalyzeUseCase{}
)

func NewAnalyzeUseCase(logger *zap.Logger) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		tracer: otel.GetTracerProvider().Tracer("AnalyzeUseCase"),
		logger: logger.Named("analyzer"),
	}
}

func (a AnalyzeUseCase) Analyze(
	ctx context.Context, request entities.PredictionRequest, result entities.PredictionResult,
) entities.Assessment {
	_, span := a.tracer.Start(ctx, "Analyze")
	defer span.End()

	band := Interpret(result.Probability)

	span.SetAttributes(attribute.String("band", string(band)))
	a.logger.Info(
		"prediction analyzed",
		zap.Int("prediction", int(result.Prediction)),
		zap.Float64("prob", result.Probability),
		zap.String("band", string(band)),
	)

	return entities.Assessment{
		Request:  request,
		Result:   result,
		Band:     band,
		Guidance: Guidance(band),
	}
}
