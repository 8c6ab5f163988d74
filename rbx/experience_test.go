package rbx

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestExperience_Publish(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "place.rbxl")
	if err := os.WriteFile(file, []byte("rbxl-binary"), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/universes/v1/100/places/200/versions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("versionType"); got != "Published" {
			t.Errorf("versionType = %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/octet-stream" {
			t.Errorf("content-type = %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != "rbxl-binary" {
			t.Errorf("body = %q", body)
		}
		_, _ = w.Write([]byte(`{"versionNumber":23}`))
	}))
	defer srv.Close()

	exp := New("k", WithBaseURL(srv.URL)).Experience(UniverseID(100), PlaceID(200))
	res, err := exp.Publish(context.Background(), file, PublishVersionPublished)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if res.VersionNumber != 23 {
		t.Errorf("versionNumber = %d, want 23", res.VersionNumber)
	}
}

func TestExperience_PublishForbidden(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "place.rbxl")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	exp := New("k", WithBaseURL(srv.URL)).Experience(UniverseID(1), PlaceID(2))
	_, err := exp.Publish(context.Background(), file, PublishVersionSaved)
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("err = %v, want HTTPError", err)
	}
	if httpErr.Message != "publish not allowed on place" {
		t.Errorf("message = %q", httpErr.Message)
	}
}

func TestExperience_PublishMissingFile(t *testing.T) {
	exp := New("k").Experience(UniverseID(1), PlaceID(2))
	_, err := exp.Publish(context.Background(), "/nonexistent/place.rbxl", PublishVersionSaved)
	var fileErr *FileError
	if !errors.As(err, &fileErr) {
		t.Fatalf("err = %v, want FileError", err)
	}
}

func TestMessaging_Publish(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messaging-service/v1/universes/55/topics/announcements" {
			t.Errorf("path = %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"message":"hello"}` {
			t.Errorf("body = %s", body)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	msg := New("k", WithBaseURL(srv.URL)).Messaging(UniverseID(55), "announcements")
	if err := msg.Publish(context.Background(), "hello"); err != nil {
		t.Fatalf("Publish: %v", err)
	}
}

func TestMessaging_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	msg := New("k", WithBaseURL(srv.URL)).Messaging(UniverseID(1), "t")
	err := msg.Publish(context.Background(), "x")
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("err = %v, want HTTPError", err)
	}
	if httpErr.Message != "api key not valid for operation" {
		t.Errorf("message = %q", httpErr.Message)
	}
}
