package store

import (
	"errors"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

// both implementations must satisfy the same contract
func runKVStoreContract(t *testing.T, kv KVStore) {
	t.Helper()

	if _, err := kv.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(missing) err = %v, want ErrNotFound", err)
	}

	if err := kv.Put(KeyCatalog, []byte(`[{"id":1}]`)); err != nil {
		t.Fatal(err)
	}
	got, err := kv.Get(KeyCatalog)
	if err != nil || string(got) != `[{"id":1}]` {
		t.Fatalf("Get = %q, err = %v", got, err)
	}

	// last writer wins
	if err := kv.Put(KeyCatalog, []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	got, _ = kv.Get(KeyCatalog)
	if string(got) != `[]` {
		t.Fatalf("overwrite not observed: %q", got)
	}

	// returned value is a copy
	got[0] = 'X'
	again, _ := kv.Get(KeyCatalog)
	if string(again) != `[]` {
		t.Fatal("Get returned a shared buffer")
	}

	if err := kv.Put(UploadKeyPrefix+"1", []byte("a")); err != nil {
		t.Fatal(err)
	}
	if err := kv.Put(UploadKeyPrefix+"2", []byte("b")); err != nil {
		t.Fatal(err)
	}
	keys, err := kv.Keys(UploadKeyPrefix)
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(keys)
	want := []string{UploadKeyPrefix + "1", UploadKeyPrefix + "2"}
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("Keys = %v, want %v", keys, want)
	}

	if err := kv.Delete(KeyCatalog); err != nil {
		t.Fatal(err)
	}
	if _, err := kv.Get(KeyCatalog); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after delete err = %v, want ErrNotFound", err)
	}
	// deleting a missing key is a no-op
	if err := kv.Delete(KeyCatalog); err != nil {
		t.Fatalf("double delete: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	runKVStoreContract(t, NewMemoryStore())
}

func TestBoltStore(t *testing.T) {
	kv, err := NewBoltStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()
	runKVStoreContract(t, kv)
}

func TestBoltStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	kv, err := NewBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := kv.Put(KeyCatalog, []byte("persisted")); err != nil {
		t.Fatal(err)
	}
	if err := kv.Close(); err != nil {
		t.Fatal(err)
	}

	kv, err = NewBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()
	got, err := kv.Get(KeyCatalog)
	if err != nil || string(got) != "persisted" {
		t.Fatalf("value lost across reopen: %q, %v", got, err)
	}
}
