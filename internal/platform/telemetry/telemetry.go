// Package telemetry sets up OpenTelemetry tracing and metrics. Exporters are
// "stdout" for local work and "otlp" (OTLP/HTTP) everywhere else.
//
//	tp, err := telemetry.InitTracer(ctx, "checkout-fel", "otlp", "http://otel-collector:4318")
//	defer tp.Shutdown(ctx)
//
//	mp, err := telemetry.InitMeter(ctx, "checkout-fel", "otlp", "http://otel-collector:4318")
//	defer mp.Shutdown(ctx)
//
//	metrics, err := telemetry.NewMetrics(mp, "checkout-fel")
//	metrics.VerificationTotal.Add(ctx, 1,
//	    metric.WithAttributes(telemetry.AttrResult.String("verified")))
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Exporter names accepted by InitTracer and InitMeter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Metric label keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
)

// Metrics holds every instrument the service records.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// VerificationTotal counts tax ID verifications by outcome.
	VerificationTotal metric.Int64Counter
	// FlagCoercions counts attempts to clear the must-invoice flag.
	FlagCoercions metric.Int64Counter
	// TokenRefreshTotal counts registry logins by result.
	TokenRefreshTotal metric.Int64Counter
}

var errEmptyEndpoint = errors.New("otlp exporter requires an endpoint")

// InitTracer installs a global TracerProvider and the W3C trace context and
// baggage propagators. Shut the provider down on exit to flush spans.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var exp sdktrace.SpanExporter
	switch exporter {
	case ExporterOTLP:
		host, insecure, perr := collector(endpoint)
		if perr != nil {
			return nil, fmt.Errorf("creating span exporter: %w", perr)
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		exp, err = otlptracehttp.New(ctx, opts...)
	case ExporterStdout:
		exp, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	default:
		err = fmt.Errorf("unsupported trace exporter %q", exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter installs a global MeterProvider with a periodic reader. Shut the
// provider down on exit to flush the last collection.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var exp sdkmetric.Exporter
	switch exporter {
	case ExporterOTLP:
		host, insecure, perr := collector(endpoint)
		if perr != nil {
			return nil, fmt.Errorf("creating metric exporter: %w", perr)
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		exp, err = otlpmetrichttp.New(ctx, opts...)
	case ExporterStdout:
		exp, err = stdoutmetric.New()
	default:
		err = fmt.Errorf("unsupported metric exporter %q", exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

// NewMetrics registers the service's instruments on a meter named
// serviceName.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	b := builder{meter: mp.Meter(serviceName)}

	m := &Metrics{
		ServerRequestDuration: b.histogram("http.server.request.duration", "Duration of incoming HTTP requests", "s"),
		ServerRequestTotal:    b.counter("http.server.request.total", "Incoming HTTP requests", "{request}"),
		ClientRequestDuration: b.histogram("http.client.request.duration", "Duration of registry HTTP requests", "s"),
		ClientRequestTotal:    b.counter("http.client.request.total", "Registry HTTP requests", "{request}"),
		VerificationTotal:     b.counter("vat.verification.total", "Tax ID verification attempts by result", "{verification}"),
		FlagCoercions:         b.counter("invoice.flag.coercions", "Attempts to clear the must-invoice flag that were coerced to true", "{write}"),
		TokenRefreshTotal:     b.counter("digifact.token.refresh.total", "Registry logins by result", "{login}"),
	}
	if b.err != nil {
		return nil, b.err
	}
	return m, nil
}

// builder collects instrument registration errors.
type builder struct {
	meter metric.Meter
	err   error
}

func (b *builder) counter(name, desc, unit string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("creating %s: %w", name, err))
	}
	return c
}

func (b *builder) histogram(name, desc, unit string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("creating %s: %w", name, err))
	}
	return h
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
}

// collector splits an OTLP endpoint URL into the host:port the exporters
// want and whether plain HTTP is in use. A bare host:port is taken as
// plain HTTP.
func collector(endpoint string) (host string, insecure bool, err error) {
	if endpoint == "" {
		return "", false, errEmptyEndpoint
	}
	u, perr := url.Parse(endpoint)
	if perr != nil || u.Host == "" {
		return endpoint, true, nil
	}
	return u.Host, u.Scheme != "https", nil
}
