package rbx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_APIKeyHeader(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New("test-key", WithBaseURL(srv.URL))
	if _, err := c.Universe(UniverseID(1)).Get(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "test-key" {
		t.Errorf("x-api-key = %q, want %q", gotKey, "test-key")
	}
}

func TestClient_WithHTTPClient(t *testing.T) {
	custom := &http.Client{}
	c := New("k", WithHTTPClient(custom))
	if c.http != custom {
		t.Error("custom http client not installed")
	}
}

func TestClient_BadOptionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on nil http client")
		}
	}()
	New("k", WithHTTPClient(nil))
}

func TestClient_DebugIsOptInOnly(t *testing.T) {
	t.Setenv("RBXCLOUD_DEBUG", "true")
	t.Setenv("DEBUG", "true")

	c := New("k")
	if _, wrapped := c.http.Transport.(*debugTransport); wrapped {
		t.Fatal("transport wrapped without WithDebugLogging")
	}

	c = New("k", WithDebugLogging(true))
	if _, wrapped := c.http.Transport.(*debugTransport); !wrapped {
		t.Fatal("WithDebugLogging did not wrap the transport")
	}
}

func TestTypes_DecimalRendering(t *testing.T) {
	if got := UniverseID(9876543210).String(); got != "9876543210" {
		t.Errorf("UniverseID.String() = %q", got)
	}
	if got := PlaceID(1).String(); got != "1" {
		t.Errorf("PlaceID.String() = %q", got)
	}
	if got := UserID(18446744073709551615).String(); got != "18446744073709551615" {
		t.Errorf("UserID.String() = %q", got)
	}
	if got := PageSize(25).String(); got != "25" {
		t.Errorf("PageSize.String() = %q", got)
	}
}
