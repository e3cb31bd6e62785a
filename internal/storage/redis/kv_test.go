//go:build integration

package redis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"fireReport/internal/config"
	"fireReport/internal/storage"
	"fireReport/pkg/e"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	testRedis *Redis
	tc        testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "6379/tcp")

	cfg := &config.Config{Redis: config.RedisConfig{Addr: fmt.Sprintf("%s:%s", host, mappedPort.Port())}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	testRedis, err = NewRedis(ctx, cfg, logger)
	if err != nil {
		fmt.Println("NewRedis:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	_ = testRedis.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

var _ storage.KV = (*KV)(nil)

func TestKV_GetMissing_NotFound(t *testing.T) {
	kv := NewKV(testRedis, "test-missing:")

	_, err := kv.Get(context.Background(), storage.KeyDocument)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestKV_SetGet_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewKV(testRedis, "test-roundtrip:")

	want := []byte(`{"currentStep":"asistencia","isDirty":false}`)
	if err := kv.Set(ctx, storage.KeyFormState, want); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := kv.Get(ctx, storage.KeyFormState)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("got %s want %s", got, want)
	}

	n, err := testRedis.Client.Exists(ctx, "test-roundtrip:"+storage.KeyFormState).Result()
	if err != nil || n != 1 {
		t.Fatalf("expected prefixed key, n=%d err=%v", n, err)
	}
}

func TestKV_Set_Overwrites(t *testing.T) {
	ctx := context.Background()
	kv := NewKV(testRedis, "test-overwrite:")

	_ = kv.Set(ctx, storage.KeyDocument, []byte(`{"a":1}`))
	if err := kv.Set(ctx, storage.KeyDocument, []byte(`{"a":2}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := kv.Get(ctx, storage.KeyDocument)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `{"a":2}` {
		t.Fatalf("expected overwrite, got %s", got)
	}
}

func TestKV_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	kv := NewKV(testRedis, "test-cancel:")
	err := kv.Set(ctx, storage.KeyDocument, []byte(`{}`))
	if !errors.Is(err, e.ErrCanceled) {
		t.Fatalf("expected ErrCanceled, got %v", err)
	}
}
