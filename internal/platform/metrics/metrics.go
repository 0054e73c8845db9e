package metrics

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"gateguard/internal/platform/validator"
)

const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

type Provider struct {
	RequestsTotal    metric.Int64Counter
	RequestDuration  metric.Float64Histogram
	RequestsInFlight metric.Int64UpDownCounter
	Validations      metric.Int64Counter
	FieldErrors      metric.Int64Counter
	registry         *prometheus.Registry
}

func NewProvider() (*Provider, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(
		promexporter.WithRegisterer(registry),
	)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter("gateguard")

	requestsTotal, err := meter.Int64Counter(
		"http_requests",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"http_request_duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
	)
	if err != nil {
		return nil, err
	}

	requestsInFlight, err := meter.Int64UpDownCounter(
		"http_requests_in_flight",
		metric.WithDescription("Number of HTTP requests currently in flight"),
	)
	if err != nil {
		return nil, err
	}

	validations, err := meter.Int64Counter(
		"schema_validations",
		metric.WithDescription("Payload validations by schema and outcome"),
	)
	if err != nil {
		return nil, err
	}

	fieldErrors, err := meter.Int64Counter(
		"schema_field_errors",
		metric.WithDescription("Rejected fields by schema and field name"),
	)
	if err != nil {
		return nil, err
	}

	return &Provider{
		RequestsTotal:    requestsTotal,
		RequestDuration:  requestDuration,
		RequestsInFlight: requestsInFlight,
		Validations:      validations,
		FieldErrors:      fieldErrors,
		registry:         registry,
	}, nil
}

// RecordValidation counts one validation run. A *validator.ValidationError
// counts as invalid and adds one field error per rejected field; any other
// error counts as an error outcome.
func (p *Provider) RecordValidation(ctx context.Context, schema string, err error) {
	outcome := OutcomeValid
	if err != nil {
		outcome = OutcomeError
		var validationErr *validator.ValidationError
		if errors.As(err, &validationErr) {
			outcome = OutcomeInvalid
			for _, fe := range validationErr.Fields() {
				p.FieldErrors.Add(ctx, 1, metric.WithAttributes(
					attribute.String("schema", schema),
					attribute.String("field", fe.Field),
				))
			}
		}
	}

	p.Validations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("schema", schema),
		attribute.String("outcome", outcome),
	))
}

func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
