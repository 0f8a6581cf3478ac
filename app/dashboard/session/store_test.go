package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load on empty store: got %v, want ErrNotFound", err)
	}

	if err := s.Save(ctx, []byte(`{"accessToken":"a"}`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(ctx, []byte(`{"accessToken":"b"}`)); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}

	data, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != `{"accessToken":"b"}` {
		t.Errorf("Load = %s, want the last saved record", data)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := s.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load after Clear: got %v, want ErrNotFound", err)
	}

	// 重复清除不报错
	if err := s.Clear(ctx); err != nil {
		t.Errorf("second Clear: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer s.Close()

	testStore(t, s)
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	if err := s.Save(ctx, []byte("persisted")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	s.Close()

	reopened, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	data, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("Load after reopen: %v", err)
	}
	if string(data) != "persisted" {
		t.Errorf("Load after reopen = %q", data)
	}
}

func TestMemoryStoreCopiesData(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	buf := []byte("abc")
	_ = s.Save(ctx, buf)
	buf[0] = 'x'

	data, _ := s.Load(ctx)
	if string(data) != "abc" {
		t.Errorf("stored data changed with caller buffer: %q", data)
	}
}
