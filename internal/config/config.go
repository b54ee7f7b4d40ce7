package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"io/fs"
	"time"
)

type PredictionConfig struct {
	Endpoint string `envconfig:"PREDICTION_ENDPOINT" default:"https://flask-api-model.onrender.com/predict"`
	// Zero leaves the request bound only by the caller's context.
	Timeout time.Duration `envconfig:"PREDICTION_TIMEOUT" default:"0s"`
}

type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"LOG_DEVELOPMENT" default:"false"`
}

type OTELConfig struct {
	Host string `envconfig:"OTEL_HOST"`
	Port string `envconfig:"OTEL_PORT" default:"4317"`
}

func (c OTELConfig) Enabled() bool {
	return c.Host != ""
}

type KafkaConsumerConfig struct {
	Peers     string `envconfig:"CONSUMER_PEERS" default:"localhost:9092"`
	Topic     string `envconfig:"CONSUMER_TOPIC" default:"AssessmentRequests"`
	GroupName string `envconfig:"CONSUMER_GROUP_NAME" default:"heartleaves-core"`
}

type KafkaProducerConfig struct {
	Peers string `envconfig:"PRODUCER_PEERS" default:"localhost:9092"`
	Topic string `envconfig:"PRODUCER_TOPIC" default:"AssessmentResults"`
}

type Config struct {
	Prediction PredictionConfig
	Log        LogConfig
	OTEL       OTELConfig
	Producer   KafkaProducerConfig
	Consumer   KafkaConsumerConfig
}

// New loads the given env files, if present, and then reads the process environment.
// Variables already set in the environment win over the files.
func New(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(err, "error while load from .env file")
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "error while transfer env to config")
	}

	return &cfg, nil
}
