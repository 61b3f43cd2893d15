package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dalemusser/gentlelibrary/internal/testutil"
	"go.uber.org/zap"
)

func TestConnectDB_LoadsCatalog(t *testing.T) {
	cfg := validConfig()
	cfg.DataPath = testutil.WriteSampleArtifact(t)

	deps, err := ConnectDB(context.Background(), nil, cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("ConnectDB() error = %v", err)
	}
	if deps.Catalog == nil {
		t.Fatal("expected a catalog")
	}
	if got, want := deps.Catalog.Len(), len(testutil.SampleResources()); got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

func TestConnectDB_MissingFileIsNotFatal(t *testing.T) {
	cfg := validConfig()
	cfg.DataPath = filepath.Join(t.TempDir(), "nope", "resources.json")

	deps, err := ConnectDB(context.Background(), nil, cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("ConnectDB() error = %v", err)
	}
	if deps.Catalog != nil {
		t.Error("expected no catalog for a missing file")
	}
}

func TestConnectDB_CorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resources.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := validConfig()
	cfg.DataPath = path

	if _, err := ConnectDB(context.Background(), nil, cfg, zap.NewNop()); err == nil {
		t.Fatal("expected an error for a corrupt data file")
	}
}

func TestShutdown(t *testing.T) {
	deps := DBDeps{Catalog: testutil.SampleCatalog(t)}
	if err := Shutdown(context.Background(), nil, validConfig(), deps, zap.NewNop()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	if err := Shutdown(context.Background(), nil, validConfig(), DBDeps{}, zap.NewNop()); err != nil {
		t.Errorf("Shutdown() without catalog error = %v", err)
	}
}
