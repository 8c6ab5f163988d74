package rbx

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// UserRestrictionClient is a handle for user restrictions within one
// universe.
type UserRestrictionClient struct {
	client     *Client
	universeID UniverseID
}

// GameJoinRestriction is the restriction state attached to one user.
type GameJoinRestriction struct {
	Active             bool    `json:"active"`
	StartTime          *string `json:"startTime,omitempty"`
	Duration           *string `json:"duration,omitempty"`
	PrivateReason      string  `json:"privateReason"`
	DisplayReason      string  `json:"displayReason"`
	ExcludeAltAccounts bool    `json:"excludeAltAccounts"`
	Inherited          bool    `json:"inherited"`
}

// UserRestrictionInfo is one user's restriction state.
type UserRestrictionInfo struct {
	Path                string              `json:"path"`
	UpdateTime          *string             `json:"updateTime,omitempty"`
	User                string              `json:"user"`
	GameJoinRestriction GameJoinRestriction `json:"gameJoinRestriction"`
}

// ListUserRestrictionsResponse is one page of restricted users.
type ListUserRestrictionsResponse struct {
	UserRestrictions []UserRestrictionInfo `json:"userRestrictions"`
	NextPageToken    *string               `json:"nextPageToken"`
}

// RestrictionModerator identifies who issued a restriction; either a
// user or a game server script.
type RestrictionModerator struct {
	RobloxUser       *string          `json:"robloxUser,omitempty"`
	GameServerScript *json.RawMessage `json:"gameServerScript,omitempty"`
}

// UserRestrictionLog is one audit entry of a restriction change.
type UserRestrictionLog struct {
	User               string               `json:"user"`
	Place              string               `json:"place"`
	CreateTime         string               `json:"createTime"`
	Active             bool                 `json:"active"`
	StartTime          string               `json:"startTime"`
	Duration           string               `json:"duration"`
	PrivateReason      string               `json:"privateReason"`
	DisplayReason      string               `json:"displayReason"`
	ExcludeAltAccounts bool                 `json:"excludeAltAccounts"`
	Moderator          RestrictionModerator `json:"moderator"`
}

// ListUserRestrictionLogsResponse is one page of restriction audit
// entries.
type ListUserRestrictionLogsResponse struct {
	Logs          []UserRestrictionLog `json:"logs"`
	NextPageToken *string              `json:"nextPageToken"`
}

// UpdateUserRestrictionParams describes a restriction change for one
// user. A nil PlaceID targets the whole universe; DurationSeconds of
// nil makes an active restriction permanent.
type UpdateUserRestrictionParams struct {
	UserID             UserID `validate:"required"`
	PlaceID            *PlaceID
	Active             bool
	DurationSeconds    *uint64
	PrivateReason      string
	DisplayReason      string
	ExcludeAltAccounts bool
}

// ListUserRestrictionsParams selects a page of restricted users. A nil
// PlaceID lists universe-level restrictions.
type ListUserRestrictionsParams struct {
	PlaceID     *PlaceID
	MaxPageSize PageSize
	PageToken   string
	Filter      string
}

// scopePath returns the universe- or place-scoped restriction path.
func (u *UserRestrictionClient) scopePath(placeID *PlaceID, endpoint string) string {
	p := "/cloud/v2/universes/" + u.universeID.String()
	if placeID != nil {
		p += "/places/" + placeID.String()
	}
	return p + "/user-restrictions" + endpoint
}

// Get fetches one user's restriction state.
func (u *UserRestrictionClient) Get(ctx context.Context, userID UserID, placeID *PlaceID) (*UserRestrictionInfo, error) {
	return doJSON[UserRestrictionInfo](ctx, u.client, &request{
		family:  "user-restriction",
		method:  "GET",
		path:    u.scopePath(placeID, "/"+userID.String()),
		onError: cloudV2Error,
	})
}

// List fetches one page of restricted users.
func (u *UserRestrictionClient) List(ctx context.Context, params ListUserRestrictionsParams) (*ListUserRestrictionsResponse, error) {
	return doJSON[ListUserRestrictionsResponse](ctx, u.client, &request{
		family:  "user-restriction",
		method:  "GET",
		path:    u.scopePath(params.PlaceID, ""),
		query:   pageQuery(params.MaxPageSize, params.PageToken, params.Filter),
		onError: cloudV2Error,
	})
}

// ListLogs fetches one page of the restriction audit log.
func (u *UserRestrictionClient) ListLogs(ctx context.Context, params ListUserRestrictionsParams) (*ListUserRestrictionLogsResponse, error) {
	return doJSON[ListUserRestrictionLogsResponse](ctx, u.client, &request{
		family:  "user-restriction",
		method:  "GET",
		path:    u.scopePath(params.PlaceID, ":listLogs"),
		query:   pageQuery(params.MaxPageSize, params.PageToken, params.Filter),
		onError: cloudV2Error,
	})
}

// Update applies a restriction change. Every call sends a fresh
// idempotency key alongside the current timestamp, so an identical
// retry within the service's dedup window is a no-op.
func (u *UserRestrictionClient) Update(ctx context.Context, params UpdateUserRestrictionParams) (*UserRestrictionInfo, error) {
	if err := validateParams(&params); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	startTime := now.Format("2006-01-02T15:04:05.000Z07:00")

	var duration *string
	if params.DurationSeconds != nil {
		d := strconv.FormatUint(*params.DurationSeconds, 10) + "s"
		duration = &d
	}

	body, err := jsonBody(struct {
		GameJoinRestriction GameJoinRestriction `json:"gameJoinRestriction"`
	}{GameJoinRestriction{
		Active:             params.Active,
		StartTime:          &startTime,
		Duration:           duration,
		PrivateReason:      params.PrivateReason,
		DisplayReason:      params.DisplayReason,
		ExcludeAltAccounts: params.ExcludeAltAccounts,
		Inherited:          false,
	}})
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("updateMask", "gameJoinRestriction")
	query.Set("idempotencyKey.key", uuid.NewString())
	query.Set("idempotencyKey.firstSent", startTime)

	return doJSON[UserRestrictionInfo](ctx, u.client, &request{
		family:      "user-restriction",
		method:      "PATCH",
		path:        u.scopePath(params.PlaceID, "/"+params.UserID.String()),
		query:       query,
		body:        body,
		contentType: "application/json",
		onError:     cloudV2Error,
	})
}

// pageQuery assembles the shared maxPageSize/pageToken/filter triple.
func pageQuery(maxPageSize PageSize, pageToken, filter string) url.Values {
	query := url.Values{}
	if maxPageSize > 0 {
		query.Set("maxPageSize", maxPageSize.String())
	}
	if pageToken != "" {
		query.Set("pageToken", pageToken)
	}
	if filter != "" {
		query.Set("filter", filter)
	}
	return query
}
