package rbx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestOrderedDataStore(t *testing.T, handler http.HandlerFunc) *OrderedDataStoreClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New("k", WithBaseURL(srv.URL)).OrderedDataStore(UniverseID(77))
}

func TestOrderedDataStore_CreateEntry(t *testing.T) {
	ods := newTestOrderedDataStore(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ordered-data-stores/v1/universes/77/orderedDataStores/HighScores/scopes/global/entries" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("id"); got != "player_1" {
			t.Errorf("id = %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"value":9000}` {
			t.Errorf("body = %s", body)
		}
		_, _ = w.Write([]byte(`{"path":"p","id":"player_1","value":9000}`))
	})

	entry, err := ods.CreateEntry(context.Background(), OrderedCreateEntryParams{
		Name:  "HighScores",
		ID:    "player_1",
		Value: 9000,
	})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if entry.Value != 9000 {
		t.Errorf("value = %v", entry.Value)
	}
}

func TestOrderedDataStore_IncrementEntry(t *testing.T) {
	ods := newTestOrderedDataStore(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ordered-data-stores/v1/universes/77/orderedDataStores/HighScores/scopes/global/entries/player_1:increment" {
			t.Errorf("path = %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"amount":50}` {
			t.Errorf("body = %s", body)
		}
		_, _ = w.Write([]byte(`{"path":"p","id":"player_1","value":9050}`))
	})

	entry, err := ods.IncrementEntry(context.Background(), OrderedIncrementEntryParams{
		Name:      "HighScores",
		ID:        "player_1",
		Increment: 50,
	})
	if err != nil {
		t.Fatalf("IncrementEntry: %v", err)
	}
	if entry.Value != 9050 {
		t.Errorf("value = %v", entry.Value)
	}
}

func TestOrderedDataStore_UpdateAllowMissing(t *testing.T) {
	ods := newTestOrderedDataStore(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		if got := r.URL.Query().Get("allow_missing"); got != "true" {
			t.Errorf("allow_missing = %q", got)
		}
		_, _ = w.Write([]byte(`{"path":"p","id":"x","value":1}`))
	})

	_, err := ods.UpdateEntry(context.Background(), OrderedUpdateEntryParams{
		Name:         "HighScores",
		ID:           "x",
		Value:        1,
		AllowMissing: true,
	})
	if err != nil {
		t.Fatalf("UpdateEntry: %v", err)
	}
}

func TestOrderedDataStore_PathEscaping(t *testing.T) {
	var gotPath string
	ods := newTestOrderedDataStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"entries":[],"nextPageToken":null}`))
	})

	_, err := ods.ListEntries(context.Background(), OrderedListEntriesParams{
		Name:  "store/with slash",
		Scope: "my scope",
	})
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	want := "/ordered-data-stores/v1/universes/77/orderedDataStores/store%2Fwith%20slash/scopes/my%20scope/entries"
	if gotPath != want {
		t.Errorf("path = %s, want %s", gotPath, want)
	}
}
