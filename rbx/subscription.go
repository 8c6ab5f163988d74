package rbx

import (
	"context"
	"fmt"
	"net/url"
)

// SubscriptionClient is a handle for the Subscriptions API.
type SubscriptionClient struct {
	client *Client
}

// SubscriptionView selects how much detail the service returns.
type SubscriptionView string

const (
	SubscriptionViewBasic SubscriptionView = "BASIC"
	SubscriptionViewFull  SubscriptionView = "FULL"
)

// SubscriptionExpirationDetails explains why a subscription lapsed.
type SubscriptionExpirationDetails struct {
	Reason string `json:"reason"`
}

// SubscriptionInfo describes one user's subscription to a product.
// State, expiration reason, purchase platform, and payment provider
// are the service's SCREAMING_SNAKE_CASE enum strings (for example
// SUBSCRIBED_WILL_RENEW or PAYMENT_PROVIDER_UNSPECIFIED).
type SubscriptionInfo struct {
	Path              string                         `json:"path"`
	CreateTime        string                         `json:"createTime"`
	UpdateTime        string                         `json:"updateTime"`
	Active            bool                           `json:"active"`
	WillRenew         bool                           `json:"willRenew"`
	LastBillingTime   string                         `json:"lastBillingTime"`
	NextRenewTime     string                         `json:"nextRenewTime"`
	ExpireTime        string                         `json:"expireTime"`
	State             string                         `json:"state"`
	ExpirationDetails *SubscriptionExpirationDetails `json:"expirationDetails"`
	PurchasePlatform  string                         `json:"purchasePlatform"`
	PaymentProvider   string                         `json:"paymentProvider"`
	User              string                         `json:"user"`
}

// GetSubscriptionParams identifies one subscription within a universe's
// subscription product.
type GetSubscriptionParams struct {
	UniverseID   UniverseID `validate:"required"`
	Product      string     `validate:"required"`
	Subscription string     `validate:"required"`
	View         SubscriptionView
}

// Get fetches one subscription.
func (s *SubscriptionClient) Get(ctx context.Context, params GetSubscriptionParams) (*SubscriptionInfo, error) {
	if err := validateParams(&params); err != nil {
		return nil, err
	}
	query := url.Values{}
	if params.View != "" {
		query.Set("view", string(params.View))
	}
	path := fmt.Sprintf("/cloud/v2/universes/%s/subscription-products/%s/subscriptions/%s",
		params.UniverseID, url.PathEscape(params.Product), url.PathEscape(params.Subscription))
	return doJSON[SubscriptionInfo](ctx, s.client, &request{
		family:  "subscription",
		method:  "GET",
		path:    path,
		query:   query,
		onError: cloudV2Error,
	})
}
