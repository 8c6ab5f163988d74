package rbx

import (
	"context"
)

// NotificationClient is a handle for sending experience notifications
// sourced from one universe.
type NotificationClient struct {
	client     *Client
	universeID UniverseID
}

// NotificationType selects the notification category.
type NotificationType string

const (
	NotificationTypeUnspecified NotificationType = "TYPE_UNSPECIFIED"
	NotificationTypeMoment      NotificationType = "MOMENT"
)

// NotificationParameter is one templated value; exactly one field is
// set.
type NotificationParameter struct {
	StringValue *string `json:"stringValue,omitempty"`
	Int64Value  *int64  `json:"int64Value,omitempty"`
}

// JoinExperience carries launch data for the notification's join
// button.
type JoinExperience struct {
	LaunchData string `json:"launchData"`
}

// NotificationPayload is the typed body of a notification.
type NotificationPayload struct {
	MessageID      string                           `json:"messageId"`
	Type           NotificationType                 `json:"type"`
	Parameters     map[string]NotificationParameter `json:"parameters,omitempty"`
	JoinExperience *JoinExperience                  `json:"joinExperience,omitempty"`
	AnalyticsData  map[string]string                `json:"analyticsData,omitempty"`
}

type notificationSource struct {
	Universe string `json:"universe"`
}

type notificationBody struct {
	Source  notificationSource  `json:"source"`
	Payload NotificationPayload `json:"payload"`
}

// NotificationResponse identifies the delivered notification.
type NotificationResponse struct {
	Path string `json:"path"`
	ID   string `json:"id"`
}

// Send delivers a notification to one user, sourced from the handle's
// universe.
func (n *NotificationClient) Send(ctx context.Context, userID UserID, payload NotificationPayload) (*NotificationResponse, error) {
	body, err := jsonBody(notificationBody{
		Source:  notificationSource{Universe: "universes/" + n.universeID.String()},
		Payload: payload,
	})
	if err != nil {
		return nil, err
	}
	return doJSON[NotificationResponse](ctx, n.client, &request{
		family:      "notification",
		method:      "POST",
		path:        "/cloud/v2/users/" + userID.String() + "/notifications",
		body:        body,
		contentType: "application/json",
		onError:     cloudV2Error,
	})
}
