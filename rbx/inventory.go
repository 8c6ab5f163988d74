package rbx

import (
	"context"
	"net/url"
)

// InventoryClient is a handle for the Inventory API.
type InventoryClient struct {
	client *Client
}

// InventoryCollectibleDetails describes a limited item instance.
// InstanceState is one of the service's enum strings, for example
// AVAILABLE or HOLD.
type InventoryCollectibleDetails struct {
	ItemID        string `json:"itemId"`
	InstanceID    string `json:"instanceId"`
	InstanceState string `json:"instanceState"`
	SerialNumber  uint64 `json:"serialNumber"`
}

// InventoryAssetDetails describes an owned asset. The asset type is the
// service's SCREAMING_SNAKE_CASE enum string (for example HAT or
// CLASSIC_TSHIRT).
type InventoryAssetDetails struct {
	AssetID                string                       `json:"assetId"`
	InstanceID             string                       `json:"instanceId"`
	InventoryItemAssetType string                       `json:"inventoryItemAssetType"`
	CollectibleDetails     *InventoryCollectibleDetails `json:"collectibleDetails"`
}

// InventoryBadgeDetails describes an owned badge.
type InventoryBadgeDetails struct {
	BadgeID string `json:"badgeId"`
}

// InventoryGamePassDetails describes an owned game pass.
type InventoryGamePassDetails struct {
	GamePassID string `json:"gamePassId"`
}

// InventoryPrivateServerDetails describes an owned private server.
type InventoryPrivateServerDetails struct {
	PrivateServerID string `json:"privateServerId"`
}

// InventoryItem is one item of a user's inventory; exactly one of the
// detail fields is set.
type InventoryItem struct {
	Path                 string                         `json:"path"`
	AssetDetails         *InventoryAssetDetails         `json:"assetDetails,omitempty"`
	BadgeDetails         *InventoryBadgeDetails         `json:"badgeDetails,omitempty"`
	GamePassDetails      *InventoryGamePassDetails      `json:"gamePassDetails,omitempty"`
	PrivateServerDetails *InventoryPrivateServerDetails `json:"privateServerDetails,omitempty"`
	AddTime              *string                        `json:"addTime"`
}

// ListInventoryItemsResponse is one page of a user's inventory.
type ListInventoryItemsResponse struct {
	InventoryItems []InventoryItem `json:"inventoryItems"`
	NextPageToken  string          `json:"nextPageToken"`
}

// ListInventoryItemsParams selects a user's inventory page. Filter is
// passed through verbatim, for example "onlyCollectibles=true" or
// "badgeIds=111,222".
type ListInventoryItemsParams struct {
	UserID      UserID `validate:"required"`
	MaxPageSize PageSize
	PageToken   string
	Filter      string
}

// ListItems fetches one page of a user's inventory.
func (i *InventoryClient) ListItems(ctx context.Context, params ListInventoryItemsParams) (*ListInventoryItemsResponse, error) {
	if err := validateParams(&params); err != nil {
		return nil, err
	}
	query := url.Values{}
	if params.MaxPageSize > 0 {
		query.Set("maxPageSize", params.MaxPageSize.String())
	}
	if params.PageToken != "" {
		query.Set("pageToken", params.PageToken)
	}
	if params.Filter != "" {
		query.Set("filter", params.Filter)
	}
	return doJSON[ListInventoryItemsResponse](ctx, i.client, &request{
		family:  "inventory",
		method:  "GET",
		path:    "/cloud/v2/users/" + params.UserID.String() + "/inventory-items",
		query:   query,
		onError: cloudV2Error,
	})
}
