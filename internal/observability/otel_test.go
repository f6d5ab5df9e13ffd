package observability

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/rsinha/go-contract-desk/internal/config"
)

var enabledCfg = config.OTELConfig{
	Enabled:     true,
	Endpoint:    "localhost:4317",
	Insecure:    true,
	ServiceName: "test",
	SampleRatio: 1.0,
}

func TestSetupOTel_DisabledIsNoOp(t *testing.T) {
	shutdown, err := SetupOTel(context.Background(), config.OTELConfig{Enabled: false}, "test")
	if err != nil {
		t.Fatalf("SetupOTel: %v", err)
	}
	if shutdown == nil {
		t.Fatal("nil shutdown function")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}

func TestSetupOTel_ExporterFailurePropagates(t *testing.T) {
	orig := newExporterFn
	defer func() { newExporterFn = orig }()

	wantErr := errors.New("dial failed")
	newExporterFn = func(ctx context.Context, cfg config.OTELConfig) (*otlptrace.Exporter, error) {
		return nil, wantErr
	}

	if _, err := SetupOTel(context.Background(), enabledCfg, "test"); !errors.Is(err, wantErr) {
		t.Errorf("SetupOTel = %v; want exporter error", err)
	}
}

func TestSetupOTel_ResourceFailurePropagates(t *testing.T) {
	origExporter := newExporterFn
	origResource := newResourceFn
	defer func() {
		newExporterFn = origExporter
		newResourceFn = origResource
	}()

	newExporterFn = func(ctx context.Context, cfg config.OTELConfig) (*otlptrace.Exporter, error) {
		return otlptrace.NewUnstarted(otlptracegrpc.NewClient(otlptracegrpc.WithInsecure())), nil
	}
	wantErr := errors.New("resource detect failed")
	newResourceFn = func(ctx context.Context, serviceName, version string) (*resource.Resource, error) {
		return nil, wantErr
	}

	if _, err := SetupOTel(context.Background(), enabledCfg, "test"); !errors.Is(err, wantErr) {
		t.Errorf("SetupOTel = %v; want resource error", err)
	}
}
