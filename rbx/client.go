package rbx

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultBaseURL = "https://apis.roblox.com"

//--------------------------------------------------------------------
// Debug transport wrapper
//--------------------------------------------------------------------

// debugTransport wraps an http.RoundTripper to log requests and responses.
type debugTransport struct {
	base http.RoundTripper
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqDump, err := httputil.DumpRequestOut(req, true)
	if err == nil {
		log.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Str("request_dump", string(reqDump)).
			Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().
			Err(err).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Msg("HTTP request failed")
		return nil, err
	}

	respDump, err := httputil.DumpResponse(resp, true)
	if err == nil {
		log.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Int("status_code", resp.StatusCode).
			Str("response_dump", string(respDump)).
			Msg("HTTP response")
	}

	return resp, nil
}

//--------------------------------------------------------------------
// Functional-options constructor
//--------------------------------------------------------------------

type Option func(*Client) error

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("nil http client")
		}
		c.http = hc
		return nil
	}
}

// WithBaseURL overrides the Open Cloud base URL. Mostly useful for
// pointing the client at a test server.
func WithBaseURL(base string) Option {
	return func(c *Client) error {
		if base == "" {
			return fmt.Errorf("empty base URL")
		}
		c.baseURL = base
		return nil
	}
}

// WithDebugLogging wraps the transport so every request and response is
// dumped at debug level.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			transport := c.http.Transport
			if transport == nil {
				transport = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: transport}
		}
		return nil
	}
}

//--------------------------------------------------------------------
// Client
//--------------------------------------------------------------------

// Client is the entry point into the Roblox Open Cloud APIs. It holds
// only the API key and an HTTP client; narrow to a resource-scoped
// handle before issuing calls.
//
//	client := rbx.New("API_KEY")
//	ds := client.DataStore(rbx.UniverseID(9876543210))
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// New creates a client for the given Open Cloud API key.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	return c
}

//--------------------------------------------------------------------
// Resource-scoped handles
//--------------------------------------------------------------------

// Handles are cheap value objects carrying the API key plus the supplied
// identifiers; they hold no connection state and may be created per call
// or reused freely across goroutines.

// DataStore returns a handle scoped to one universe's standard DataStores.
func (c *Client) DataStore(universeID UniverseID) *DataStoreClient {
	return &DataStoreClient{client: c, universeID: universeID}
}

// OrderedDataStore returns a handle scoped to one universe's
// OrderedDataStores.
func (c *Client) OrderedDataStore(universeID UniverseID) *OrderedDataStoreClient {
	return &OrderedDataStoreClient{client: c, universeID: universeID}
}

// Messaging returns a handle for publishing to one topic of a universe.
func (c *Client) Messaging(universeID UniverseID, topic string) *MessagingClient {
	return &MessagingClient{client: c, universeID: universeID, topic: topic}
}

// Experience returns a handle for publishing place files.
func (c *Client) Experience(universeID UniverseID, placeID PlaceID) *ExperienceClient {
	return &ExperienceClient{client: c, universeID: universeID, placeID: placeID}
}

// Assets returns a handle for the Assets API.
func (c *Client) Assets() *AssetsClient {
	return &AssetsClient{client: c}
}

// Group returns a handle scoped to one group.
func (c *Client) Group(groupID GroupID) *GroupClient {
	return &GroupClient{client: c, groupID: groupID}
}

// User returns a handle for the Users API.
func (c *Client) User() *UserClient {
	return &UserClient{client: c}
}

// Notification returns a handle for sending notifications sourced from
// one universe.
func (c *Client) Notification(universeID UniverseID) *NotificationClient {
	return &NotificationClient{client: c, universeID: universeID}
}

// Subscription returns a handle for the Subscriptions API.
func (c *Client) Subscription() *SubscriptionClient {
	return &SubscriptionClient{client: c}
}

// Universe returns a handle scoped to one universe.
func (c *Client) Universe(universeID UniverseID) *UniverseClient {
	return &UniverseClient{client: c, universeID: universeID}
}

// Place returns a handle scoped to one place.
func (c *Client) Place(universeID UniverseID, placeID PlaceID) *PlaceClient {
	return &PlaceClient{client: c, universeID: universeID, placeID: placeID}
}

// Inventory returns a handle for the Inventory API.
func (c *Client) Inventory() *InventoryClient {
	return &InventoryClient{client: c}
}

// Luau returns a handle for Luau execution tasks against one place.
// versionID may be empty to target the latest place version.
func (c *Client) Luau(universeID UniverseID, placeID PlaceID, versionID string) *LuauClient {
	return &LuauClient{client: c, universeID: universeID, placeID: placeID, versionID: versionID}
}

// UserRestriction returns a handle for user restrictions within one
// universe.
func (c *Client) UserRestriction(universeID UniverseID) *UserRestrictionClient {
	return &UserRestrictionClient{client: c, universeID: universeID}
}
