package telemetry

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"

	"go.opentelemetry.io/contrib/detectors/aws/ecs"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/IliaW/scraper-api/config"
	"github.com/google/uuid"
)

var meter metric.Meter

type MetricsProvider struct {
	ApiMetrics   *ApiMetrics
	CrawlMetrics *CrawlMetrics
	Close        func()
}

type ApiMetrics struct {
	SuccessResponseCounter func(count int64)
	ErrorResponseCounter   func(count int64)
}

type CrawlMetrics struct {
	PagesCrawledCounter func(count int64)
	SeedFailureCounter  func(count int64)
	QaPairsCounter      func(count int64)
}

func SetupMetrics(ctx context.Context, cfg *config.Config) *MetricsProvider {
	metricsProvider := new(MetricsProvider)
	var meterProvider *sdkmetric.MeterProvider

	if cfg.TelemetrySettings.Enabled {
		r, err := newResource(cfg)
		if err != nil {
			slog.Error("failed to get resource.", slog.String("err", err.Error()))
			os.Exit(1)
		}
		exporter, err := newMetricExporter(ctx, cfg.TelemetrySettings)
		if err != nil {
			slog.Error("failed to get metric exporter.", slog.String("err", err.Error()))
			os.Exit(1)
		}
		meterProvider = newMeterProvider(exporter, *r)
		otel.SetMeterProvider(meterProvider)
	}

	meter = otel.Meter(cfg.ServiceName)
	metricsProvider.Close = func() {
		if meterProvider != nil {
			err := meterProvider.Shutdown(ctx)
			if err != nil {
				slog.Error("failed to shutdown metrics provider.", slog.String("err", err.Error()))
			}
		}
	}

	successResponseCounter, err := meter.Int64Counter("scraper-api.response.success",
		metric.WithDescription("The number of success responses from the api."),
		metric.WithUnit("{messages}"))
	errorResponseCounter, err := meter.Int64Counter("scraper-api.response.error",
		metric.WithDescription("The number of error responses from the api."),
		metric.WithUnit("{messages}"))
	if err != nil {
		slog.Error("failed to create telemetry counters for the scraper api.", slog.String("err", err.Error()))
		os.Exit(1)
	}
	metricsProvider.ApiMetrics = &ApiMetrics{
		SuccessResponseCounter: func(count int64) {
			if cfg.TelemetrySettings.Enabled {
				successResponseCounter.Add(ctx, count)
			}
		},
		ErrorResponseCounter: func(count int64) {
			if cfg.TelemetrySettings.Enabled {
				errorResponseCounter.Add(ctx, count)
			}
		},
	}

	pagesCrawledCounter, err := meter.Int64Counter("scraper-api.crawl.pages",
		metric.WithDescription("The number of pages fetched and parsed by the crawl engine."),
		metric.WithUnit("{pages}"))
	seedFailureCounter, err := meter.Int64Counter("scraper-api.crawl.seed-failure",
		metric.WithDescription("The number of crawls whose seed page could not be fetched."),
		metric.WithUnit("{crawls}"))
	qaPairsCounter, err := meter.Int64Counter("scraper-api.qa.pairs",
		metric.WithDescription("The number of generated question-answer pairs."),
		metric.WithUnit("{pairs}"))
	if err != nil {
		slog.Error("failed to create telemetry counters for the crawl engine.", slog.String("err", err.Error()))
		os.Exit(1)
	}
	metricsProvider.CrawlMetrics = &CrawlMetrics{
		PagesCrawledCounter: func(count int64) {
			if cfg.TelemetrySettings.Enabled {
				pagesCrawledCounter.Add(ctx, count)
			}
		},
		SeedFailureCounter: func(count int64) {
			if cfg.TelemetrySettings.Enabled {
				seedFailureCounter.Add(ctx, count)
			}
		},
		QaPairsCounter: func(count int64) {
			if cfg.TelemetrySettings.Enabled {
				qaPairsCounter.Add(ctx, count)
			}
		},
	}

	// initialize metrics in DataDog for setup UI
	if cfg.TelemetrySettings.Enabled {
		metricsProvider.ApiMetrics.SuccessResponseCounter(1)
		metricsProvider.ApiMetrics.ErrorResponseCounter(1)
		metricsProvider.CrawlMetrics.PagesCrawledCounter(1)
		metricsProvider.CrawlMetrics.SeedFailureCounter(1)
		metricsProvider.CrawlMetrics.QaPairsCounter(1)
	}

	return metricsProvider
}

func newResource(cfg *config.Config) (*resource.Resource, error) {
	ecsResourceDetector := ecs.NewResourceDetector()
	ecsResource, err := ecsResourceDetector.Detect(context.Background())
	if err != nil {
		slog.Error("ecs detection failed", slog.String("err", err.Error()))
	}
	mergedResource, err := resource.Merge(ecsResource, resource.Default())
	if err != nil {
		slog.Error("failed to merge resources", slog.String("err", err.Error()))
	}
	keyValue, found := ecsResource.Set().Value("container.id")
	var serviceId string
	if found {
		serviceId = keyValue.AsString()
	} else {
		serviceId = uuid.New().String()
	}
	return resource.Merge(mergedResource,
		resource.NewWithAttributes(semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.DeploymentEnvironment(cfg.Env),
			semconv.ServiceInstanceID(serviceId),
		))
}

func newMetricExporter(ctx context.Context, cfg *config.TelemetryConfig) (sdkmetric.Exporter, error) {
	return otlpmetrichttp.New(ctx,
		otlpmetrichttp.WithEndpoint(cfg.CollectorUrl),
		otlpmetrichttp.WithInsecure())
}

func newMeterProvider(meterExporter sdkmetric.Exporter, resource resource.Resource) *sdkmetric.MeterProvider {
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(meterExporter)),
		sdkmetric.WithResource(&resource),
	)
	return meterProvider
}
