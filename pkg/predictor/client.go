package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/Imm0bilize/heartleaves-core-service/internal/config"
	"github.com/Imm0bilize/heartleaves-core-service/internal/entities"
	"github.com/Imm0bilize/heartleaves-core-service/pkg/predictor/api"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	maxResponseSize = 1 << 20
	maxErrorSnippet = 256
)

// Doer is satisfied by *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Client)

func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		c.http = d
	}
}

// Client calls the remote scoring endpoint. It keeps no state between calls
// and never retries: every Predict is exactly one POST.
type Client struct {
	endpoint string
	http     Doer
	tracer   trace.Tracer
	logger   *zap.Logger
}

func NewClient(cfg config.PredictionConfig, logger *zap.Logger, opts ...Option) (*Client, error) {
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "can`t parse prediction endpoint")
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errors.Errorf("prediction endpoint %q must be an absolute http(s) url", cfg.Endpoint)
	}

	c := &Client{
		endpoint: u.String(),
		http:     &http.Client{Timeout: cfg.Timeout},
		tracer:   otel.Tracer("prediction-client"),
		logger:   logger.Named("prediction-client"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) Predict(ctx context.Context, req entities.PredictionRequest) (entities.PredictionResult, error) {
	ctx, span := c.tracer.Start(ctx, "PredictionClient.Predict")
	defer span.End()

	span.SetAttributes(
		attribute.Float64("request.troponin", req.Troponin),
		attribute.Float64("request.ck_mb", req.CKMB),
		attribute.Int("request.age", req.Age),
	)

	result, err := c.predict(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Error("error during make prediction", zap.Error(err))

		return entities.PredictionResult{}, err
	}

	span.SetAttributes(
		attribute.Int("result.prediction", int(result.Prediction)),
		attribute.Float64("result.probability", result.Probability),
	)
	c.logger.Debug(
		"prediction received",
		zap.Int("prediction", int(result.Prediction)),
		zap.Float64("probability", result.Probability),
	)

	return result, nil
}

func (c *Client) predict(ctx context.Context, req entities.PredictionRequest) (entities.PredictionResult, error) {
	payload, err := json.Marshal(api.PredictionRequest{
		Troponin: req.Troponin,
		CKMB:     req.CKMB,
		Age:      req.Age,
	})
	if err != nil {
		return entities.PredictionResult{}, &RequestFailure{Kind: KindRequest, Err: errors.Wrap(err, "json.Marshal")}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return entities.PredictionResult{}, &RequestFailure{Kind: KindRequest, Err: errors.Wrap(err, "http.NewRequest")}
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return entities.PredictionResult{}, &RequestFailure{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return entities.PredictionResult{}, &RequestFailure{
			Kind:       KindNetwork,
			StatusCode: resp.StatusCode,
			Err:        errors.Wrap(err, "can't read response body"),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return entities.PredictionResult{}, &RequestFailure{
			Kind:       KindStatus,
			StatusCode: resp.StatusCode,
			Err:        errors.Wrapf(ErrUnexpectedStatus, "%s: %s", resp.Status, snippet(body)),
		}
	}

	result, err := decode(body)
	if err != nil {
		return entities.PredictionResult{}, &RequestFailure{Kind: KindDecode, StatusCode: resp.StatusCode, Err: err}
	}

	return result, nil
}

func decode(body []byte) (entities.PredictionResult, error) {
	var resp api.PredictionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return entities.PredictionResult{}, errors.Wrap(err, "json.Unmarshal")
	}

	if resp.Prediction == nil {
		return entities.PredictionResult{}, errors.Wrap(ErrInvalidResponse, "missing prediction")
	}

	outcome := entities.Outcome(*resp.Prediction)
	if !outcome.Valid() {
		return entities.PredictionResult{}, errors.Wrapf(ErrInvalidResponse, "prediction %d is neither 0 nor 1", *resp.Prediction)
	}

	var probability float64
	if resp.Probability != nil {
		probability = *resp.Probability
	}

	if probability < 0 || probability > 1 {
		return entities.PredictionResult{}, errors.Wrapf(ErrInvalidResponse, "probability %v not in [0, 1]", probability)
	}

	return entities.PredictionResult{Prediction: outcome, Probability: probability}, nil
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorSnippet {
		s = s[:maxErrorSnippet] + "..."
	}

	return s
}

// Shutdown drops idle keep-alive connections. In-flight calls are not interrupted.
func (c *Client) Shutdown(_ context.Context) error {
	if closer, ok := c.http.(interface{ CloseIdleConnections() }); ok {
		closer.CloseIdleConnections()
	}

	return nil
}
