package rbx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestDataStore(t *testing.T, handler http.HandlerFunc) *DataStoreClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New("test-key", WithBaseURL(srv.URL)).DataStore(UniverseID(123))
}

func TestDataStore_SetEntry(t *testing.T) {
	ds := newTestDataStore(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.URL.Path; got != "/datastores/v1/universes/123/standard-datastores/datastore/entries/entry" {
			t.Errorf("path = %s", got)
		}
		q := r.URL.Query()
		if q.Get("datastoreName") != "PlayerData" {
			t.Errorf("datastoreName = %q", q.Get("datastoreName"))
		}
		if q.Get("scope") != "global" {
			t.Errorf("scope = %q, want default global", q.Get("scope"))
		}
		if q.Get("entryKey") != "player_1" {
			t.Errorf("entryKey = %q", q.Get("entryKey"))
		}
		// base64(md5(`{"coins":100}`))
		if got := r.Header.Get("content-md5"); got != checksumBase64([]byte(`{"coins":100}`)) {
			t.Errorf("content-md5 = %q", got)
		}
		if got := r.Header.Get("roblox-entry-userids"); got != "[1,2]" {
			t.Errorf("roblox-entry-userids = %q", got)
		}
		if got := r.Header.Get("roblox-entry-attributes"); got != "{}" {
			t.Errorf("roblox-entry-attributes = %q, want empty object default", got)
		}
		_ = json.NewEncoder(w).Encode(SetEntryResponse{Version: "v1", ContentLength: 13})
	})

	res, err := ds.SetEntry(context.Background(), SetEntryParams{
		Name:         "PlayerData",
		Key:          "player_1",
		EntryUserIDs: []UserID{1, 2},
		Data:         `{"coins":100}`,
	})
	if err != nil {
		t.Fatalf("SetEntry: %v", err)
	}
	if res.Version != "v1" {
		t.Errorf("version = %q", res.Version)
	}
}

func TestDataStore_GetEntryVerbatim(t *testing.T) {
	ds := newTestDataStore(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"coins": 100}`))
	})
	got, err := ds.GetEntry(context.Background(), GetEntryParams{Name: "PlayerData", Key: "player_1"})
	if err != nil {
		t.Fatalf("GetEntry: %v", err)
	}
	if got != `{"coins": 100}` {
		t.Errorf("GetEntry = %q, want verbatim body", got)
	}
}

func TestDataStore_IncrementEntry(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    float64
		wantErr bool
	}{
		{name: "integer string", body: "42", want: 42},
		{name: "float string", body: "10.5", want: 10.5},
		{name: "trailing newline", body: "7\n", wantErr: true},
		{name: "non-numeric body", body: `{"not":"a number"}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := newTestDataStore(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})
			got, err := ds.IncrementEntry(context.Background(), IncrementEntryParams{
				Name: "Coins", Key: "player_1", IncrementBy: 1,
			})
			if tt.wantErr {
				var parseErr *FloatParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("err = %v, want FloatParseError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("IncrementEntry: %v", err)
			}
			if got != tt.want {
				t.Errorf("IncrementEntry = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDataStore_StructuredError(t *testing.T) {
	ds := newTestDataStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"NOT_FOUND","message":"Entry not found in the datastore.","errorDetails":[{"errorDetailType":"DatastoreErrorInfo","datastoreErrorCode":"EntryNotFound"}]}`))
	})
	_, err := ds.GetEntry(context.Background(), GetEntryParams{Name: "PlayerData", Key: "missing"})
	var dsErr *DataStoreError
	if !errors.As(err, &dsErr) {
		t.Fatalf("err = %v, want DataStoreError", err)
	}
	if dsErr.Message != "Entry not found in the datastore." {
		t.Errorf("message = %q", dsErr.Message)
	}
	if !dsErr.HasCode(ErrCodeEntryNotFound) {
		t.Errorf("missing EntryNotFound code in %v", dsErr.ErrorDetails)
	}
}

func TestDataStore_UnparseableErrorBody(t *testing.T) {
	ds := newTestDataStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream meltdown"))
	})
	_, err := ds.GetEntry(context.Background(), GetEntryParams{Name: "PlayerData", Key: "k"})
	var jsonErr *JSONError
	if !errors.As(err, &jsonErr) {
		t.Fatalf("err = %v, want JSONError for unparseable error body", err)
	}
}

func TestDataStore_WrongShapeErrorBody(t *testing.T) {
	ds := newTestDataStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"unexpected":"shape"}`))
	})
	_, err := ds.GetEntry(context.Background(), GetEntryParams{Name: "PlayerData", Key: "k"})
	var jsonErr *JSONError
	if !errors.As(err, &jsonErr) {
		t.Fatalf("err = %v, want JSONError for a JSON body without the error fields", err)
	}
}

func TestDataStore_ListEntriesCursor(t *testing.T) {
	ds := newTestDataStore(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("cursor"); got != "opaque-token==" {
			t.Errorf("cursor = %q, want passthrough", got)
		}
		_, _ = w.Write([]byte(`{"keys":[{"key":"a"}],"nextPageCursor":"next=="}`))
	})
	res, err := ds.ListEntries(context.Background(), ListEntriesParams{
		Name:   "PlayerData",
		Cursor: "opaque-token==",
	})
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if res.NextPageCursor == nil || *res.NextPageCursor != "next==" {
		t.Errorf("nextPageCursor = %v", res.NextPageCursor)
	}
}

func TestDataStore_MissingRequiredParams(t *testing.T) {
	ds := New("k").DataStore(UniverseID(1))
	if _, err := ds.GetEntry(context.Background(), GetEntryParams{Scope: "global"}); err == nil {
		t.Fatal("expected validation error for missing name and key")
	}
}
