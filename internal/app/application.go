package app

import (
	"context"
	"github.com/Imm0bilize/heartleaves-core-service/internal/config"
	"github.com/Imm0bilize/heartleaves-core-service/internal/controller/brokerconsumer"
	"github.com/Imm0bilize/heartleaves-core-service/internal/infrastucture/brokerproducer"
	"github.com/Imm0bilize/heartleaves-core-service/internal/ucase"
	"github.com/Imm0bilize/heartleaves-core-service/pkg/predictor"
	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/Shopify/sarama/otelsarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"net"
	"strings"
)

const serviceName = "heartleaves-core-service"

func createTraceProvider(cfg config.OTELConfig, logger *zap.Logger) (func(context.Context) error, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}))

	if !cfg.Enabled() {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptrace.New(
		context.Background(),
		otlptracegrpc.NewClient(
			otlptracegrpc.WithInsecure(),
			otlptracegrpc.WithEndpoint(net.JoinHostPort(cfg.Host, cfg.Port)),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "can't create trace exporter")
	}

	resources, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("library.language", "go"),
		),
	)
	if err != nil {
		logger.Warn("could not set resources", zap.Error(err))
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resources),
	)
	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}

func createKafkaProducer(cfg config.KafkaProducerConfig) (sarama.SyncProducer, error) {
	kfkCfg := sarama.NewConfig()
	kfkCfg.Version = sarama.V3_3_0_0
	kfkCfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(strings.Split(cfg.Peers, ","), kfkCfg)
	if err != nil {
		return nil, errors.Wrap(err, "error during create producer")
	}

	producer = otelsarama.WrapSyncProducer(kfkCfg, producer)

	return producer, nil
}

// App wires the prediction client, the use cases and tracing for one process.
type App struct {
	cfg    *config.Config
	logger *zap.Logger

	predictor *predictor.Client
	analyzer  *ucase.AnalyzeUseCase
	uCase     *ucase.UseCase

	shutdownTraceProvider func(context.Context) error
}

func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	shutdownTraceProvider, err := createTraceProvider(cfg.OTEL, logger)
	if err != nil {
		return nil, err
	}

	client, err := predictor.NewClient(cfg.Prediction, logger)
	if err != nil {
		return nil, errors.Wrap(err, "error creating prediction client")
	}
	logger.Debug("prediction client created", zap.String("endpoint", cfg.Prediction.Endpoint))

	analyzer := ucase.NewAnalyzeUseCase(logger)

	return &App{
		cfg:                   cfg,
		logger:                logger,
		predictor:             client,
		analyzer:              analyzer,
		uCase:                 ucase.NewUseCase(client, analyzer, nil),
		shutdownTraceProvider: shutdownTraceProvider,
	}, nil
}

// UseCase serves interactive callers; it publishes nothing.
func (a *App) UseCase() *ucase.UseCase {
	return a.uCase
}

// RunWorker consumes assessment requests from Kafka and publishes results
// until ctx is cancelled.
func (a *App) RunWorker(ctx context.Context) error {
	producer, err := createKafkaProducer(a.cfg.Producer)
	if err != nil {
		return err
	}
	defer func() {
		if err := producer.Close(); err != nil {
			a.logger.Error("error closing kafka producer", zap.Error(err))
		}
	}()

	notifier := brokerproducer.NewKafkaProducer(a.logger, producer, a.cfg.Producer.Topic)

	uCase := ucase.NewUseCase(a.predictor, a.analyzer, notifier)

	consumer, err := brokerconsumer.NewKafkaConsumer(a.cfg.Consumer, a.logger, uCase)
	if err != nil {
		return errors.Wrap(err, "error creating Kafka consumer")
	}

	a.logger.Info(
		"kafka consumer run",
		zap.String("input", a.cfg.Consumer.Topic),
		zap.String("output", a.cfg.Producer.Topic),
	)

	return consumer.Run(ctx)
}

func (a *App) Shutdown(ctx context.Context) error {
	var err error

	if shErr := a.predictor.Shutdown(ctx); shErr != nil {
		err = multierr.Append(err, errors.Wrap(shErr, "error stopping prediction client"))
	}

	if shErr := a.shutdownTraceProvider(ctx); shErr != nil {
		err = multierr.Append(err, errors.Wrap(shErr, "error stopping trace provider"))
	}

	return err
}
