package brokerproducer

import (
	"context"
	"encoding/json"
	"github.com/Imm0bilize/heartleaves-core-service/internal/entities"
	"github.com/Imm0bilize/heartleaves-core-service/pkg/brokerschemas"
	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/Shopify/sarama/otelsarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"time"
)

type KafkaProducer struct {
	topic    string
	tracer   trace.Tracer
	producer sarama.SyncProducer
	logger   *zap.Logger
}

func NewKafkaProducer(logger *zap.Logger, producer sarama.SyncProducer, topic string) *KafkaProducer {
	tracer := otel.Tracer("msbroker")

	return &KafkaProducer{
		tracer:   tracer,
		producer: producer,
		logger:   logger.Named("kafka-producer"),
		topic:    topic,
	}
}

func (k KafkaProducer) Notify(ctx context.Context, n entities.Notification) error {
	ctx, span := k.tracer.Start(ctx, "msbroker.Send")
	defer span.End()

	msg := toMessage(n, time.Now().UTC())

	msgBytes, err := json.Marshal(&msg)
	if err != nil {
		return errors.Wrap(err, "json.Marshal")
	}

	producerMsg := &sarama.ProducerMessage{
		Topic:     k.topic,
		Key:       sarama.StringEncoder(msg.RequestID.String()),
		Value:     sarama.ByteEncoder(msgBytes),
		Timestamp: msg.Timestamp,
	}

	otel.GetTextMapPropagator().Inject(ctx, otelsarama.NewProducerMessageCarrier(producerMsg))

	partition, offset, err := k.producer.SendMessage(producerMsg)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "can't send message into kafka")
	}

	k.logger.Info(
		"message successfully send to broker",
		zap.String("requestID", msg.RequestID.String()),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)

	return nil
}

func toMessage(n entities.Notification, now time.Time) brokerschemas.AssessmentMessage {
	msg := brokerschemas.AssessmentMessage{
		RequestID: n.Request.RequestID,
		ClientID:  n.Request.ClientID,
		Timestamp: now,
		ErrorKind: n.FailureKind,
		Error:     n.Failure,
	}

	if a := n.Assessment; a != nil {
		prediction := int(a.Result.Prediction)
		probability := a.Result.Probability

		msg.Prediction = &prediction
		msg.Outcome = a.Result.Prediction.String()
		msg.Probability = &probability
		msg.Band = string(a.Band)
		msg.Guidance = a.Guidance
	}

	return msg
}
