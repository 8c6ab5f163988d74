package rbx

import (
	"context"
	"net/url"
	"strconv"
)

// UserClient is a handle for the Users API.
type UserClient struct {
	client *Client
}

// UserSocialNetworkProfiles lists a user's linked social accounts.
type UserSocialNetworkProfiles struct {
	Facebook   string `json:"facebook"`
	Twitter    string `json:"twitter"`
	YouTube    string `json:"youtube"`
	Twitch     string `json:"twitch"`
	Guilded    string `json:"guilded"`
	Visibility string `json:"visibility"`
}

// UserInfo describes a user. Premium, IDVerified, and the social
// profiles are omitted by the service unless the API key has the
// matching scopes.
type UserInfo struct {
	Path                  string                     `json:"path"`
	CreateTime            string                     `json:"createTime"`
	ID                    string                     `json:"id"`
	Name                  string                     `json:"name"`
	DisplayName           string                     `json:"displayName"`
	About                 string                     `json:"about"`
	Locale                string                     `json:"locale"`
	Premium               *bool                      `json:"premium"`
	IDVerified            *bool                      `json:"idVerified"`
	SocialNetworkProfiles *UserSocialNetworkProfiles `json:"socialNetworkProfiles"`
}

// ThumbnailSize is the requested thumbnail edge length in pixels.
type ThumbnailSize uint32

const (
	ThumbnailSize48  ThumbnailSize = 48
	ThumbnailSize50  ThumbnailSize = 50
	ThumbnailSize60  ThumbnailSize = 60
	ThumbnailSize75  ThumbnailSize = 75
	ThumbnailSize100 ThumbnailSize = 100
	ThumbnailSize110 ThumbnailSize = 110
	ThumbnailSize150 ThumbnailSize = 150
	ThumbnailSize180 ThumbnailSize = 180
	ThumbnailSize352 ThumbnailSize = 352
	ThumbnailSize420 ThumbnailSize = 420
	ThumbnailSize720 ThumbnailSize = 720
)

// ThumbnailFormat is the requested image format.
type ThumbnailFormat string

const (
	ThumbnailFormatPNG  ThumbnailFormat = "PNG"
	ThumbnailFormatJPEG ThumbnailFormat = "JPEG"
)

// ThumbnailShape is the requested crop shape.
type ThumbnailShape string

const (
	ThumbnailShapeRound  ThumbnailShape = "ROUND"
	ThumbnailShapeSquare ThumbnailShape = "SQUARE"
)

// GenerateThumbnailParams selects the user and optional rendering
// hints. Zero values leave the corresponding query parameter unset.
type GenerateThumbnailParams struct {
	UserID UserID `validate:"required"`
	Size   ThumbnailSize
	Format ThumbnailFormat
	Shape  ThumbnailShape
}

// ThumbnailOperation is the operation wrapping a generated thumbnail.
type ThumbnailOperation struct {
	Path     string            `json:"path"`
	Done     bool              `json:"done"`
	Response ThumbnailResponse `json:"response"`
}

// ThumbnailResponse carries the generated image location.
type ThumbnailResponse struct {
	ImageURI string `json:"imageUri"`
}

// Get fetches a user's profile.
func (u *UserClient) Get(ctx context.Context, userID UserID) (*UserInfo, error) {
	return doJSON[UserInfo](ctx, u.client, &request{
		family:  "user",
		method:  "GET",
		path:    "/cloud/v2/users/" + userID.String(),
		onError: cloudV2Error,
	})
}

// GenerateThumbnail requests a thumbnail render for a user.
func (u *UserClient) GenerateThumbnail(ctx context.Context, params GenerateThumbnailParams) (*ThumbnailOperation, error) {
	if err := validateParams(&params); err != nil {
		return nil, err
	}
	query := url.Values{}
	if params.Size > 0 {
		query.Set("size", strconv.FormatUint(uint64(params.Size), 10))
	}
	if params.Format != "" {
		query.Set("format", string(params.Format))
	}
	if params.Shape != "" {
		query.Set("shape", string(params.Shape))
	}
	return doJSON[ThumbnailOperation](ctx, u.client, &request{
		family:  "user",
		method:  "GET",
		path:    "/cloud/v2/users/" + params.UserID.String() + ":generateThumbnail",
		query:   query,
		onError: cloudV2Error,
	})
}
