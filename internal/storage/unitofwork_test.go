package storage_test

import (
	"testing"

	"github.com/kaanyld/tutorhub/internal/storage"
)

func TestUnitOfWork_CommitWritesAllStaged(t *testing.T) {
	m := storage.NewMemoryMedium()
	uow := storage.NewUnitOfWork(m)

	uow.Stage("bookings", []byte("b"))
	uow.Stage("payments", []byte("p"))
	if uow.Len() != 2 {
		t.Fatalf("expected 2 staged tables, got %d", uow.Len())
	}

	// nothing is visible before commit
	if _, ok, _ := m.Get("bookings"); ok {
		t.Fatal("staged write leaked before commit")
	}

	if err := uow.Commit(); err != nil {
		t.Fatal(err)
	}

	for key, want := range map[string]string{"bookings": "b", "payments": "p"} {
		got, ok, err := m.Get(key)
		if err != nil || !ok {
			t.Fatalf("%s not written: ok=%v err=%v", key, ok, err)
		}
		if string(got) != want {
			t.Fatalf("%s: got %q want %q", key, got, want)
		}
	}

	if uow.Len() != 0 {
		t.Fatalf("unit of work not reset after commit, %d staged", uow.Len())
	}
}

func TestUnitOfWork_RestageKeepsLatest(t *testing.T) {
	m := storage.NewMemoryMedium()
	uow := storage.NewUnitOfWork(m)

	uow.Stage("bookings", []byte("first"))
	uow.Stage("bookings", []byte("second"))
	if uow.Len() != 1 {
		t.Fatalf("restaging a key should not add an entry, got %d", uow.Len())
	}

	if err := uow.Commit(); err != nil {
		t.Fatal(err)
	}
	got, _, _ := m.Get("bookings")
	if string(got) != "second" {
		t.Fatalf("expected latest payload, got %q", got)
	}
}
