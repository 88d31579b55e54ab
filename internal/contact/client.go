package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"websakha/internal/jsonutil"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// DefaultEndpoint is the hosted contact API.
const DefaultEndpoint = "https://server-web-sakha-on-board-contact-u.vercel.app/api/contact/submit-contact"

// maxResponseBytes bounds how much of the response body is read for logging.
const maxResponseBytes = 64 << 10

// Submitter validates and delivers a draft.
type Submitter interface {
	Submit(ctx context.Context, d *Draft) Result
}

// Client posts drafts to the contact endpoint. It never retries.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *zap.Logger
	tracer   oteltrace.Tracer
}

var _ Submitter = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the overall request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTracer sets the tracer used for submission spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// NewClient creates a client for endpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 15 * time.Second},
		logger:   zap.NewNop(),
		tracer:   noop.NewTracerProvider().Tracer("websakha/contact"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit validates d and, when valid, posts it exactly once.
// On success d is reset; on any failure d is left untouched.
func (c *Client) Submit(ctx context.Context, d *Draft) Result {
	ctx, span := c.tracer.Start(ctx, "contact.submit")
	defer span.End()

	if err := d.Validate(); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			span.SetAttributes(attribute.Int("contact.missing_fields", len(verr.Missing)))
		}
		span.SetAttributes(attribute.String("contact.outcome", OutcomeValidationFailure.String()))
		c.logger.Info("contact form rejected", zap.Error(err))
		return Result{Outcome: OutcomeValidationFailure, Err: err}
	}

	if err := c.Post(ctx, *d); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transmission failed")
		span.SetAttributes(attribute.String("contact.outcome", OutcomeTransmissionFailure.String()))
		c.logger.Warn("contact form submission failed", zap.Error(err))
		return Result{Outcome: OutcomeTransmissionFailure, Err: err}
	}

	d.Reset()
	span.SetAttributes(attribute.String("contact.outcome", OutcomeSuccess.String()))
	c.logger.Info("contact form submitted")
	return Result{Outcome: OutcomeSuccess}
}

// Post sends d as JSON without validating it. Any failure, including a
// non-2xx status, is returned as *TransmissionError.
func (c *Client) Post(ctx context.Context, d Draft) error {
	body, err := json.Marshal(d)
	if err != nil {
		return &TransmissionError{Err: fmt.Errorf("encode draft: %w", err)}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return &TransmissionError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	span := oteltrace.SpanFromContext(ctx)
	span.SetAttributes(attribute.Int("http.request.body.size", len(body)))

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return &TransmissionError{Err: err}
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	c.logResponse(resp.StatusCode, raw, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransmissionError{
			StatusCode: resp.StatusCode,
			Err:        errors.New(http.StatusText(resp.StatusCode)),
		}
	}
	return nil
}

// logResponse records the response at debug level. The body is not
// interpreted beyond that.
func (c *Client) logResponse(status int, raw []byte, elapsed time.Duration) {
	if ce := c.logger.Check(zap.DebugLevel, "contact endpoint responded"); ce != nil {
		fields := []zap.Field{zap.Int("status", status), zap.Duration("elapsed", elapsed)}
		if m, err := jsonutil.DecodeObject(raw, "contact response"); err == nil {
			if msg := jsonutil.GetString(m, "message"); msg != "" {
				fields = append(fields, zap.String("message", msg))
			}
			if ok, present := m["success"]; present {
				fields = append(fields, zap.String("success", jsonutil.ToString(ok)))
			}
		} else if len(raw) > 0 {
			fields = append(fields, zap.Int("body_bytes", len(raw)))
		}
		ce.Write(fields...)
	}
}
