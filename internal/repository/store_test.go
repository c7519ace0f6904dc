package repository_test

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Dan9191/calc-service/internal/repository"
	"github.com/sirupsen/logrus"
)

func exercise(t *testing.T, s repository.KVStore) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "notes-emi", `[{"id":"1"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "notes-emi", `[]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, ok, err := s.Get(ctx, "notes-emi")
	if err != nil || !ok || got != `[]` {
		t.Fatalf("get: %q ok=%v err=%v", got, ok, err)
	}
}

func TestMemoryStore(t *testing.T) {
	exercise(t, repository.NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "store.json")
	s, err := repository.NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	exercise(t, s)

	reopened, err := repository.NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, ok, _ := reopened.Get(context.Background(), "notes-emi"); !ok || got != `[]` {
		t.Errorf("value not persisted: %q", got)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := repository.NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	log := logrus.New()
	log.SetOutput(io.Discard)
	s.SetLogger(log)
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "notes-emi"); err != nil || ok {
		t.Fatalf("corrupt file should read as empty, got ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "notes-emi", `[]`); err != nil {
		t.Fatalf("write over corrupt file: %v", err)
	}
	if got, ok, err := s.Get(ctx, "notes-emi"); err != nil || !ok || got != `[]` {
		t.Errorf("after repair got %q ok=%v err=%v", got, ok, err)
	}
	b, _ := os.ReadFile(path)
	if !json.Valid(b) {
		t.Errorf("file not rewritten as JSON: %s", b)
	}
}

func TestScoped(t *testing.T) {
	base := repository.NewMemoryStore()
	a := repository.NewScoped(base, "device-a")
	b := repository.NewScoped(base, "device-b")
	exercise(t, a)

	if _, ok, _ := b.Get(context.Background(), "notes-emi"); ok {
		t.Error("scopes must not share keys")
	}
	if _, ok, _ := base.Get(context.Background(), "device-a:notes-emi"); !ok {
		t.Error("expected prefixed key in the underlying store")
	}
}

func TestOpen(t *testing.T) {
	s, err := repository.Open(context.Background(), repository.Config{Driver: "memory"})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	exercise(t, s)

	if _, err := repository.Open(context.Background(), repository.Config{Driver: "etcd"}); err == nil {
		t.Error("expected unknown driver error")
	}
}
