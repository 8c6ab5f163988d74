package rbx

import (
	"context"
	"net/url"
	"strings"
)

// UniverseClient is a handle scoped to one universe.
type UniverseClient struct {
	client     *Client
	universeID UniverseID
}

// UniverseVisibility is who can see and join the experience.
type UniverseVisibility string

const (
	UniverseVisibilityUnspecified UniverseVisibility = "VISIBILITY_UNSPECIFIED"
	UniverseVisibilityPublic      UniverseVisibility = "PUBLIC"
	UniverseVisibilityPrivate     UniverseVisibility = "PRIVATE"
)

// UniverseAgeRating is the experience's age guideline.
type UniverseAgeRating string

const (
	UniverseAgeRatingUnspecified UniverseAgeRating = "AGE_RATING_UNSPECIFIED"
	UniverseAgeRatingAll         UniverseAgeRating = "AGE_RATING_ALL"
	UniverseAgeRating9Plus       UniverseAgeRating = "AGE_RATING_9_PLUS"
	UniverseAgeRating13Plus      UniverseAgeRating = "AGE_RATING_13_PLUS"
	UniverseAgeRating17Plus      UniverseAgeRating = "AGE_RATING_17_PLUS"
)

// UniverseSocialLink is one external link shown on the experience page.
type UniverseSocialLink struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// UniverseInfo describes a universe. User and Group identify the owner;
// exactly one is present.
type UniverseInfo struct {
	Path                    string              `json:"path"`
	CreateTime              string              `json:"createTime"`
	UpdateTime              string              `json:"updateTime"`
	DisplayName             string              `json:"displayName"`
	Description             string              `json:"description"`
	User                    *string             `json:"user"`
	Group                   *string             `json:"group"`
	Visibility              UniverseVisibility  `json:"visibility"`
	FacebookSocialLink      *UniverseSocialLink `json:"facebookSocialLink"`
	TwitterSocialLink       *UniverseSocialLink `json:"twitterSocialLink"`
	YoutubeSocialLink       *UniverseSocialLink `json:"youtubeSocialLink"`
	TwitchSocialLink        *UniverseSocialLink `json:"twitchSocialLink"`
	DiscordSocialLink       *UniverseSocialLink `json:"discordSocialLink"`
	RobloxGroupSocialLink   *UniverseSocialLink `json:"robloxGroupSocialLink"`
	GuildedSocialLink       *UniverseSocialLink `json:"guildedSocialLink"`
	VoiceChatEnabled        bool                `json:"voiceChatEnabled"`
	AgeRating               UniverseAgeRating   `json:"ageRating"`
	PrivateServerPriceRobux uint32              `json:"privateServerPriceRobux"`
	DesktopEnabled          bool                `json:"desktopEnabled"`
	MobileEnabled           bool                `json:"mobileEnabled"`
	TabletEnabled           bool                `json:"tabletEnabled"`
	ConsoleEnabled          bool                `json:"consoleEnabled"`
	VREnabled               bool                `json:"vrEnabled"`
}

// UpdateUniverseInfo is a partial universe update. Only set fields are
// serialized; the updateMask decides which the service applies.
type UpdateUniverseInfo struct {
	DisplayName             *string             `json:"displayName,omitempty"`
	Description             *string             `json:"description,omitempty"`
	Visibility              *UniverseVisibility `json:"visibility,omitempty"`
	FacebookSocialLink      *UniverseSocialLink `json:"facebookSocialLink,omitempty"`
	TwitterSocialLink       *UniverseSocialLink `json:"twitterSocialLink,omitempty"`
	YoutubeSocialLink       *UniverseSocialLink `json:"youtubeSocialLink,omitempty"`
	TwitchSocialLink        *UniverseSocialLink `json:"twitchSocialLink,omitempty"`
	DiscordSocialLink       *UniverseSocialLink `json:"discordSocialLink,omitempty"`
	RobloxGroupSocialLink   *UniverseSocialLink `json:"robloxGroupSocialLink,omitempty"`
	GuildedSocialLink       *UniverseSocialLink `json:"guildedSocialLink,omitempty"`
	VoiceChatEnabled        *bool               `json:"voiceChatEnabled,omitempty"`
	AgeRating               *UniverseAgeRating  `json:"ageRating,omitempty"`
	PrivateServerPriceRobux *uint32             `json:"privateServerPriceRobux,omitempty"`
	DesktopEnabled          *bool               `json:"desktopEnabled,omitempty"`
	MobileEnabled           *bool               `json:"mobileEnabled,omitempty"`
	TabletEnabled           *bool               `json:"tabletEnabled,omitempty"`
	ConsoleEnabled          *bool               `json:"consoleEnabled,omitempty"`
	VREnabled               *bool               `json:"vrEnabled,omitempty"`
}

func (u *UniverseClient) path(endpoint string) string {
	return "/cloud/v2/universes/" + u.universeID.String() + endpoint
}

// Get fetches the universe's metadata.
func (u *UniverseClient) Get(ctx context.Context) (*UniverseInfo, error) {
	return doJSON[UniverseInfo](ctx, u.client, &request{
		family:  "universe",
		method:  "GET",
		path:    u.path(""),
		onError: cloudV2Error,
	})
}

// Update applies a partial update. updateMask is a comma-separated
// list of camelCase field paths, for example "displayName,description".
func (u *UniverseClient) Update(ctx context.Context, updateMask string, info UpdateUniverseInfo) (*UniverseInfo, error) {
	body, err := jsonBody(info)
	if err != nil {
		return nil, err
	}
	query := url.Values{}
	query.Set("updateMask", updateMask)
	return doJSON[UniverseInfo](ctx, u.client, &request{
		family:      "universe",
		method:      "PATCH",
		path:        u.path(""),
		query:       query,
		body:        body,
		contentType: "application/json",
		onError:     cloudV2Error,
	})
}

// RestartServers restarts all active servers for the universe, which
// picks up the latest published place version.
func (u *UniverseClient) RestartServers(ctx context.Context) error {
	return doEmpty(ctx, u.client, &request{
		family:      "universe",
		method:      "POST",
		path:        u.path(":restartServers"),
		body:        strings.NewReader("{}"),
		contentType: "application/json",
		onError:     cloudV2Error,
	})
}
