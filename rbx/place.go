package rbx

import (
	"context"
	"net/url"
)

// PlaceClient is a handle scoped to one place.
type PlaceClient struct {
	client     *Client
	universeID UniverseID
	placeID    PlaceID
}

// PlaceInfo describes a place.
type PlaceInfo struct {
	Path        string `json:"path"`
	CreateTime  string `json:"createTime"`
	UpdateTime  string `json:"updateTime"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	ServerSize  int32  `json:"serverSize"`
}

// UpdatePlaceInfo is a partial place update. Only set fields are
// serialized; the updateMask decides which the service applies.
type UpdatePlaceInfo struct {
	DisplayName *string `json:"displayName,omitempty"`
	Description *string `json:"description,omitempty"`
	ServerSize  *int32  `json:"serverSize,omitempty"`
}

func (p *PlaceClient) path() string {
	return "/cloud/v2/universes/" + p.universeID.String() + "/places/" + p.placeID.String()
}

// Get fetches the place's metadata.
func (p *PlaceClient) Get(ctx context.Context) (*PlaceInfo, error) {
	return doJSON[PlaceInfo](ctx, p.client, &request{
		family:  "place",
		method:  "GET",
		path:    p.path(),
		onError: cloudV2Error,
	})
}

// Update applies a partial update. updateMask is a comma-separated list
// of camelCase field paths, for example "displayName".
func (p *PlaceClient) Update(ctx context.Context, updateMask string, info UpdatePlaceInfo) (*PlaceInfo, error) {
	body, err := jsonBody(info)
	if err != nil {
		return nil, err
	}
	query := url.Values{}
	query.Set("updateMask", updateMask)
	return doJSON[PlaceInfo](ctx, p.client, &request{
		family:      "place",
		method:      "PATCH",
		path:        p.path(),
		query:       query,
		body:        body,
		contentType: "application/json",
		onError:     cloudV2Error,
	})
}
