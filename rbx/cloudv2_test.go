package rbx

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
)

func TestCloudV2_StatusMessages(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{400, "invalid argument"},
		{403, "permission denied"},
		{404, "not found"},
		{409, "aborted"},
		{429, "resource exhausted"},
		{499, "cancelled"},
		{500, "internal server error"},
		{501, "not implemented"},
		{503, "unavailable"},
		{418, "unknown error"},
	}
	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))
		_, err := New("k", WithBaseURL(srv.URL)).Group(GroupID(1)).GetInfo(context.Background())
		srv.Close()

		var httpErr *HTTPError
		if !errors.As(err, &httpErr) {
			t.Fatalf("status %d: err = %v, want HTTPError", tt.status, err)
		}
		if httpErr.StatusCode != tt.status || httpErr.Message != tt.want {
			t.Errorf("status %d: got %d %q, want %q", tt.status, httpErr.StatusCode, httpErr.Message, tt.want)
		}
	}
}

func TestGroup_GetInfoOwnerOptional(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"path":"groups/1","displayName":"Builders","memberCount":3}`))
	}))
	t.Cleanup(srv.Close)

	info, err := New("k", WithBaseURL(srv.URL)).Group(GroupID(1)).GetInfo(context.Background())
	if err != nil {
		t.Fatalf("GetInfo: %v", err)
	}
	if info.Owner != nil {
		t.Errorf("owner = %q, want nil when the service omits it", *info.Owner)
	}
	if info.DisplayName != "Builders" {
		t.Errorf("displayName = %q", info.DisplayName)
	}
}

func TestUniverse_UpdatePartial(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		if got := r.URL.Query().Get("updateMask"); got != "displayName" {
			t.Errorf("updateMask = %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"displayName":"New Name"}` {
			t.Errorf("body = %s, want only the set field", body)
		}
		_, _ = w.Write([]byte(`{"path":"universes/9","displayName":"New Name"}`))
	}))
	defer srv.Close()

	name := "New Name"
	info, err := New("k", WithBaseURL(srv.URL)).Universe(UniverseID(9)).
		Update(context.Background(), "displayName", UpdateUniverseInfo{DisplayName: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if info.DisplayName != "New Name" {
		t.Errorf("displayName = %q", info.DisplayName)
	}
}

func TestUniverse_RestartServers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cloud/v2/universes/9:restartServers" {
			t.Errorf("path = %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != "{}" {
			t.Errorf("body = %s, want empty object", body)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := New("k", WithBaseURL(srv.URL)).Universe(UniverseID(9)).RestartServers(context.Background()); err != nil {
		t.Fatalf("RestartServers: %v", err)
	}
}

func TestUser_GenerateThumbnailQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cloud/v2/users/42:generateThumbnail" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("size") != "420" || q.Get("format") != "PNG" || q.Get("shape") != "ROUND" {
			t.Errorf("query = %v", q)
		}
		_, _ = w.Write([]byte(`{"path":"p","done":true,"response":{"imageUri":"https://img"}}`))
	}))
	defer srv.Close()

	op, err := New("k", WithBaseURL(srv.URL)).User().GenerateThumbnail(context.Background(), GenerateThumbnailParams{
		UserID: UserID(42),
		Size:   ThumbnailSize420,
		Format: ThumbnailFormatPNG,
		Shape:  ThumbnailShapeRound,
	})
	if err != nil {
		t.Fatalf("GenerateThumbnail: %v", err)
	}
	if op.Response.ImageURI != "https://img" {
		t.Errorf("imageUri = %q", op.Response.ImageURI)
	}
}

func TestUserRestriction_Update(t *testing.T) {
	rfc3339Millis := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cloud/v2/universes/5/places/6/user-restrictions/42" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("updateMask") != "gameJoinRestriction" {
			t.Errorf("updateMask = %q", q.Get("updateMask"))
		}
		if q.Get("idempotencyKey.key") == "" {
			t.Error("idempotencyKey.key missing")
		}
		if !rfc3339Millis.MatchString(q.Get("idempotencyKey.firstSent")) {
			t.Errorf("idempotencyKey.firstSent = %q, want RFC3339 millis UTC", q.Get("idempotencyKey.firstSent"))
		}
		body, _ := io.ReadAll(r.Body)
		for _, want := range []string{`"active":true`, `"duration":"3600s"`, `"inherited":false`, `"privateReason":"cheating"`} {
			if !strings.Contains(string(body), want) {
				t.Errorf("body %s missing %s", body, want)
			}
		}
		_, _ = w.Write([]byte(`{"path":"p","user":"users/42","gameJoinRestriction":{"active":true,"privateReason":"cheating","displayReason":"","excludeAltAccounts":false,"inherited":false}}`))
	}))
	defer srv.Close()

	place := PlaceID(6)
	seconds := uint64(3600)
	res, err := New("k", WithBaseURL(srv.URL)).UserRestriction(UniverseID(5)).Update(context.Background(), UpdateUserRestrictionParams{
		UserID:          UserID(42),
		PlaceID:         &place,
		Active:          true,
		DurationSeconds: &seconds,
		PrivateReason:   "cheating",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !res.GameJoinRestriction.Active {
		t.Error("restriction not active")
	}
}

func TestUserRestriction_UniverseScopedPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cloud/v2/universes/5/user-restrictions:listLogs" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"logs":[],"nextPageToken":null}`))
	}))
	defer srv.Close()

	_, err := New("k", WithBaseURL(srv.URL)).UserRestriction(UniverseID(5)).
		ListLogs(context.Background(), ListUserRestrictionsParams{})
	if err != nil {
		t.Fatalf("ListLogs: %v", err)
	}
}

func TestSubscription_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cloud/v2/universes/9/subscription-products/prod-1/subscriptions/sub-1" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("view"); got != "FULL" {
			t.Errorf("view = %q", got)
		}
		_, _ = w.Write([]byte(`{"path":"p","active":true,"state":"SUBSCRIBED_WILL_RENEW","user":"users/1"}`))
	}))
	defer srv.Close()

	sub, err := New("k", WithBaseURL(srv.URL)).Subscription().Get(context.Background(), GetSubscriptionParams{
		UniverseID:   UniverseID(9),
		Product:      "prod-1",
		Subscription: "sub-1",
		View:         SubscriptionViewFull,
	})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sub.State != "SUBSCRIBED_WILL_RENEW" {
		t.Errorf("state = %q", sub.State)
	}
}
