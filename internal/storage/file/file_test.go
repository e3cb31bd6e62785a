package file

import (
	"context"
	"errors"
	"testing"

	"fireReport/pkg/e"
)

func TestKV_SetGet(t *testing.T) {
	kv, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	if _, err := kv.Get(ctx, "document"); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := kv.Set(ctx, "document", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Set(ctx, "document", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}

	got, err := kv.Get(ctx, "document")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `{"a":2}` {
		t.Fatalf("unexpected value %s", got)
	}
}

func TestKV_RejectsPathKeys(t *testing.T) {
	kv, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := kv.Set(context.Background(), "../escape", []byte("x")); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestKV_CanceledContext(t *testing.T) {
	kv, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := kv.Set(ctx, "document", []byte("x")); !errors.Is(err, e.ErrCanceled) {
		t.Fatalf("expected ErrCanceled, got %v", err)
	}
}
