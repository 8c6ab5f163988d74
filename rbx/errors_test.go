package rbx

import (
	"errors"
	"fmt"
	"testing"
)

func TestDataStoreError_Format(t *testing.T) {
	err := &DataStoreError{
		Err:     "NOT_FOUND",
		Message: "Entry not found in the datastore.",
		ErrorDetails: []DataStoreErrorDetail{
			{ErrorDetailType: "DatastoreErrorInfo", DataStoreErrorCode: ErrCodeEntryNotFound},
		},
	}
	want := "[EntryNotFound] - Entry not found in the datastore."
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !err.HasCode(ErrCodeEntryNotFound) {
		t.Error("HasCode(EntryNotFound) = false")
	}
	if err.HasCode(ErrCodeChecksumMismatch) {
		t.Error("HasCode(ChecksumMismatch) = true")
	}
}

func TestErrorUnwrapping(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	var err error = &TransportError{Err: inner}
	if !errors.Is(err, inner) {
		t.Error("TransportError must unwrap to its cause")
	}

	err = &FileError{Path: "/tmp/x", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("FileError must unwrap to its cause")
	}
}

func TestStatusTableMessage_Fallback(t *testing.T) {
	table := map[int]string{403: "publish not allowed on place"}
	if got := statusTableMessage(table, 403); got != "publish not allowed on place" {
		t.Errorf("table hit = %q", got)
	}
	if got := statusTableMessage(table, 418); got != "I'm a teapot" {
		t.Errorf("fallback = %q, want reason phrase", got)
	}
}

func TestChecksumBase64(t *testing.T) {
	// md5("hello world") = 5eb63bbbe01eeed093cb22bb8f5acdc3
	if got := checksumBase64([]byte("hello world")); got != "XrY7u+Ae7tCTyyK7j1rNww==" {
		t.Errorf("checksumBase64 = %q", got)
	}
}
