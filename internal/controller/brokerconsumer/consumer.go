package brokerconsumer

import (
	"context"
	"encoding/json"
	"github.com/Imm0bilize/heartleaves-core-service/internal/config"
	"github.com/Imm0bilize/heartleaves-core-service/internal/entities"
	"github.com/Imm0bilize/heartleaves-core-service/pkg/brokerschemas"
	"github.com/Shopify/sarama"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/Shopify/sarama/otelsarama"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"strings"
	"time"
)

type MessageProcessor interface {
	Process(ctx context.Context, msg entities.ProcessingRequest) error
}

type KafkaConsumer struct {
	logger    *zap.Logger
	processor MessageProcessor
	group     sarama.ConsumerGroup
	topic     string
}

func NewKafkaConsumer(
	cfg config.KafkaConsumerConfig, logger *zap.Logger, processor MessageProcessor,
) (*KafkaConsumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V3_3_0_0
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.BalanceStrategyRoundRobin}
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaConfig.Consumer.Group.Session.Timeout = 20 * time.Second
	saramaConfig.Consumer.Group.Heartbeat.Interval = 6 * time.Second
	saramaConfig.Consumer.MaxProcessingTime = 3 * time.Second

	group, err := sarama.NewConsumerGroup(strings.Split(cfg.Peers, ","), cfg.GroupName, saramaConfig)
	if err != nil {
		return nil, errors.Wrap(err, "error creating consumer group client")
	}

	return newKafkaConsumer(group, cfg.Topic, logger, processor), nil
}

func newKafkaConsumer(
	group sarama.ConsumerGroup, topic string, logger *zap.Logger, processor MessageProcessor,
) *KafkaConsumer {
	return &KafkaConsumer{
		logger:    logger.Named("kafka-consumer"),
		group:     group,
		processor: processor,
		topic:     topic,
	}
}

// Run consumes until ctx is cancelled or the group reports an error.
func (k *KafkaConsumer) Run(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		for {
			if err := k.group.Consume(ctx, []string{k.topic}, k); err != nil {
				k.logger.Error("error from consumer", zap.Error(err))
				errChan <- err
				return
			}

			if ctx.Err() != nil {
				return
			}
		}
	}()

	select {
	case <-ctx.Done():
		k.logger.Info("terminating consume: context canceled")
	case err := <-errChan:
		_ = k.group.Close()
		return err
	}

	if err := k.group.Close(); err != nil {
		return errors.Wrap(err, "error closing consumer group")
	}

	return nil
}

func (k *KafkaConsumer) Setup(sarama.ConsumerGroupSession) error {
	k.logger.Debug("setup")
	return nil
}

func (k *KafkaConsumer) Cleanup(sarama.ConsumerGroupSession) error {
	k.logger.Debug("cleanup")
	return nil
}

// ConsumeClaim handles messages one at a time: each one is a single assessment
// with exactly one outstanding prediction request.
func (k *KafkaConsumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			k.handleMessage(session.Context(), message)
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

func (k *KafkaConsumer) handleMessage(ctx context.Context, message *sarama.ConsumerMessage) {
	request, err := decodeMessage(message)
	if err != nil {
		k.logger.Error(
			"error unmarshalling Kafka message",
			zap.ByteString("data", message.Value),
			zap.Error(err),
		)
		return
	}

	ctx = otel.GetTextMapPropagator().Extract(ctx, otelsarama.NewConsumerMessageCarrier(message))

	if err := k.processor.Process(ctx, request); err != nil {
		k.logger.Error("error processing request",
			zap.String("requestID", request.RequestID.String()),
			zap.Error(err),
		)
	}
}

func decodeMessage(message *sarama.ConsumerMessage) (entities.ProcessingRequest, error) {
	var msg brokerschemas.AssessmentRequestMessage

	if err := json.Unmarshal(message.Value, &msg); err != nil {
		return entities.ProcessingRequest{}, errors.Wrap(err, "json.Unmarshal")
	}

	if msg.RequestID == uuid.Nil {
		msg.RequestID = uuid.New()
	}

	if msg.Timestamp.IsZero() {
		msg.Timestamp = message.Timestamp
	}

	return entities.ProcessingRequest{
		RequestID: msg.RequestID,
		ClientID:  msg.ClientID,
		Timestamp: msg.Timestamp,
		Prediction: entities.PredictionRequest{
			Troponin: msg.Troponin,
			CKMB:     msg.CKMB,
			Age:      msg.Age,
		},
	}, nil
}
