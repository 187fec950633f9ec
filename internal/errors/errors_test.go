package errors

import (
	"errors"
	"io/fs"
	"testing"
)

func TestStoreErrorUnwrap(t *testing.T) {
	err := NewStoreError("load", "/tmp/db.json", ErrCorruptDocument)

	if !errors.Is(err, ErrCorruptDocument) {
		t.Error("errors.Is(err, ErrCorruptDocument) = false, want true")
	}

	want := "load /tmp/db.json: corrupt hook database"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestStoreErrorAs(t *testing.T) {
	var wrapped error = NewStoreError("save", "/root/.micbot", fs.ErrPermission)

	var storeErr *StoreError
	if !errors.As(wrapped, &storeErr) {
		t.Fatal("errors.As(*StoreError) = false, want true")
	}
	if storeErr.Op != "save" {
		t.Errorf("Op = %q, want %q", storeErr.Op, "save")
	}
	if !errors.Is(wrapped, fs.ErrPermission) {
		t.Error("errors.Is(err, fs.ErrPermission) = false, want true")
	}
}

func TestHookError(t *testing.T) {
	err := NewHookError("team", "use", ErrHookNotFound)

	if !errors.Is(err, ErrHookNotFound) {
		t.Error("errors.Is(err, ErrHookNotFound) = false, want true")
	}

	want := "hook team: use: hook not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
