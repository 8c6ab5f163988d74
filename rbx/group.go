package rbx

import (
	"context"
	"fmt"
	"net/url"
)

// GroupClient is a handle scoped to one group.
type GroupClient struct {
	client  *Client
	groupID GroupID
}

// GroupInfo describes a group.
type GroupInfo struct {
	Path               string  `json:"path"`
	CreateTime         string  `json:"createTime"`
	UpdateTime         string  `json:"updateTime"`
	ID                 string  `json:"id"`
	DisplayName        string  `json:"displayName"`
	Description        string  `json:"description"`
	Owner              *string `json:"owner"`
	MemberCount        uint64  `json:"memberCount"`
	PublicEntryAllowed bool    `json:"publicEntryAllowed"`
	Locked             bool    `json:"locked"`
	Verified           bool    `json:"verified"`
}

// GroupShout is a group's current shout.
type GroupShout struct {
	Path       string `json:"path"`
	CreateTime string `json:"createTime"`
	UpdateTime string `json:"updateTime"`
	Content    string `json:"content"`
	Poster     string `json:"poster"`
}

// GroupRolePermissions enumerates the moderation and administration
// abilities granted by a role.
type GroupRolePermissions struct {
	ViewWallPosts         bool `json:"viewWallPosts"`
	CreateWallPosts       bool `json:"createWallPosts"`
	DeleteWallPosts       bool `json:"deleteWallPosts"`
	ViewGroupShout        bool `json:"viewGroupShout"`
	CreateGroupShout      bool `json:"createGroupShout"`
	ChangeRank            bool `json:"changeRank"`
	AcceptRequests        bool `json:"acceptRequests"`
	ExileMembers          bool `json:"exileMembers"`
	ManageRelationships   bool `json:"manageRelationships"`
	ViewAuditLog          bool `json:"viewAuditLog"`
	SpendGroupFunds       bool `json:"spendGroupFunds"`
	AdvertiseGroup        bool `json:"advertiseGroup"`
	CreateAvatarItems     bool `json:"createAvatarItems"`
	ManageAvatarItems     bool `json:"manageAvatarItems"`
	ManageGroupUniverses  bool `json:"manageGroupUniverses"`
	ViewUniverseAnalytics bool `json:"viewUniverseAnalytics"`
	CreateAPIKeys         bool `json:"createApiKeys"`
	ManageAPIKeys         bool `json:"manageApiKeys"`
}

// GroupRole describes one rank within a group.
type GroupRole struct {
	Path        string                `json:"path"`
	CreateTime  string                `json:"createTime"`
	UpdateTime  string                `json:"updateTime"`
	ID          string                `json:"id"`
	DisplayName string                `json:"displayName"`
	Description string                `json:"description"`
	Rank        uint32                `json:"rank"`
	MemberCount *uint64               `json:"memberCount"`
	Permissions *GroupRolePermissions `json:"permissions"`
}

// ListGroupRolesResponse is one page of a group's roles.
type ListGroupRolesResponse struct {
	GroupRoles    []GroupRole `json:"groupRoles"`
	NextPageToken string      `json:"nextPageToken"`
}

// GroupMembership is one member-to-role binding.
type GroupMembership struct {
	Path       string `json:"path"`
	CreateTime string `json:"createTime"`
	UpdateTime string `json:"updateTime"`
	User       string `json:"user"`
	Role       string `json:"role"`
}

// ListGroupMembershipsResponse is one page of a group's memberships.
type ListGroupMembershipsResponse struct {
	GroupMemberships []GroupMembership `json:"groupMemberships"`
	NextPageToken    string            `json:"nextPageToken"`
}

func (g *GroupClient) path(endpoint string) string {
	return fmt.Sprintf("/cloud/v2/groups/%s%s", g.groupID, endpoint)
}

// GetInfo fetches the group's metadata.
func (g *GroupClient) GetInfo(ctx context.Context) (*GroupInfo, error) {
	return doJSON[GroupInfo](ctx, g.client, &request{
		family:  "group",
		method:  "GET",
		path:    g.path(""),
		onError: cloudV2Error,
	})
}

// GetShout fetches the group's current shout.
func (g *GroupClient) GetShout(ctx context.Context) (*GroupShout, error) {
	return doJSON[GroupShout](ctx, g.client, &request{
		family:  "group",
		method:  "GET",
		path:    g.path("/shout"),
		onError: cloudV2Error,
	})
}

// ListRoles fetches one page of the group's roles. maxPageSize of zero
// leaves the page size to the service; pageToken of "" starts at the
// first page.
func (g *GroupClient) ListRoles(ctx context.Context, maxPageSize PageSize, pageToken string) (*ListGroupRolesResponse, error) {
	query := url.Values{}
	if maxPageSize > 0 {
		query.Set("maxPageSize", maxPageSize.String())
	}
	if pageToken != "" {
		query.Set("pageToken", pageToken)
	}
	return doJSON[ListGroupRolesResponse](ctx, g.client, &request{
		family:  "group",
		method:  "GET",
		path:    g.path("/roles"),
		query:   query,
		onError: cloudV2Error,
	})
}

// ListMemberships fetches one page of the group's memberships. filter
// is passed through verbatim when non-empty.
func (g *GroupClient) ListMemberships(ctx context.Context, maxPageSize PageSize, pageToken, filter string) (*ListGroupMembershipsResponse, error) {
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
	return doJSON[ListGroupMembershipsResponse](ctx, g.client, &request{
		family:  "group",
		method:  "GET",
		path:    g.path("/memberships"),
		query:   query,
		onError: cloudV2Error,
	})
}
