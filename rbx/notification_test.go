package rbx

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNotification_Send(t *testing.T) {
	launch := "zone=lobby"
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.URL.Path; got != "/cloud/v2/users/42/notifications" {
			t.Errorf("path = %s", got)
		}
		body, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"path":"users/42/notifications/abc","id":"abc"}`))
	}))
	t.Cleanup(srv.Close)

	res, err := New("k", WithBaseURL(srv.URL)).Notification(UniverseID(9000)).
		Send(context.Background(), UserID(42), NotificationPayload{
			MessageID: "moment-1",
			Type:      NotificationTypeMoment,
			Parameters: map[string]NotificationParameter{
				"place": {StringValue: &launch},
			},
			JoinExperience: &JoinExperience{LaunchData: launch},
		})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if res.ID != "abc" {
		t.Errorf("id = %q", res.ID)
	}

	var sent struct {
		Source struct {
			Universe string `json:"universe"`
		} `json:"source"`
		Payload map[string]json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(body, &sent); err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}
	if sent.Source.Universe != "universes/9000" {
		t.Errorf("source.universe = %q", sent.Source.Universe)
	}
	if got := string(sent.Payload["type"]); got != `"MOMENT"` {
		t.Errorf("payload.type = %s", got)
	}
	if got := string(sent.Payload["messageId"]); got != `"moment-1"` {
		t.Errorf("payload.messageId = %s", got)
	}
}
