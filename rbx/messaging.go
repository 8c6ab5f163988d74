package rbx

import (
	"context"
	"fmt"
	"net/url"
)

// MessagingClient is a handle for publishing to one topic of a universe.
type MessagingClient struct {
	client     *Client
	universeID UniverseID
	topic      string
}

// messagingStatusTable carries the operation-specific error messages of
// the Messaging service; other codes fall back to the reason phrase.
var messagingStatusTable = map[int]string{
	400: "invalid request",
	401: "api key not valid for operation",
	403: "publish not allowed on place",
	500: "internal server error",
}

// Publish publishes a message to the topic. Subscribers in a running
// game receive it via MessagingService.
func (m *MessagingClient) Publish(ctx context.Context, message string) error {
	if m.topic == "" {
		return fmt.Errorf("topic is required")
	}
	body, err := jsonBody(struct {
		Message string `json:"message"`
	}{Message: message})
	if err != nil {
		return err
	}
	return doEmpty(ctx, m.client, &request{
		family:      "messaging",
		method:      "POST",
		path:        fmt.Sprintf("/messaging-service/v1/universes/%s/topics/%s", m.universeID, url.PathEscape(m.topic)),
		body:        body,
		contentType: "application/json",
		onError:     tableError(messagingStatusTable),
	})
}
