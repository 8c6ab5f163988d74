package rbx

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DataStoreClient is a handle scoped to one universe's standard
// DataStores.
type DataStoreClient struct {
	client     *Client
	universeID UniverseID
}

func (d *DataStoreClient) path(endpoint string) string {
	return fmt.Sprintf("/datastores/v1/universes/%s/standard-datastores%s", d.universeID, endpoint)
}

// scopeOrDefault substitutes the service default for a missing scope.
// The live service behaves differently when the parameter is truly
// absent, so the literal "global" is always sent.
func scopeOrDefault(scope string) string {
	if scope == "" {
		return "global"
	}
	return scope
}

// ------------------------------
// List DataStores
// ------------------------------

// ListStoresParams are the parameters for listing DataStores.
type ListStoresParams struct {
	Prefix string
	Limit  ReturnLimit
	Cursor string
}

// ListStoresResponse is one page of DataStores.
type ListStoresResponse struct {
	DataStores     []ListStoreEntry `json:"datastores"`
	NextPageCursor *string          `json:"nextPageCursor"`
}

// ListStoreEntry is one DataStore in a list page.
type ListStoreEntry struct {
	Name        string `json:"name"`
	CreatedTime string `json:"createdTime"`
}

// ListStores lists the DataStores of the universe.
func (d *DataStoreClient) ListStores(ctx context.Context, params ListStoresParams) (*ListStoresResponse, error) {
	query := url.Values{}
	query.Set("limit", params.Limit.String())
	if params.Prefix != "" {
		query.Set("prefix", params.Prefix)
	}
	if params.Cursor != "" {
		query.Set("cursor", params.Cursor)
	}
	return doJSON[ListStoresResponse](ctx, d.client, &request{
		family:  "datastore",
		method:  "GET",
		path:    d.path(""),
		query:   query,
		onError: dataStoreError,
	})
}

// ------------------------------
// List entries
// ------------------------------

// ListEntriesParams are the parameters for listing entries of a
// DataStore.
type ListEntriesParams struct {
	Name      string `validate:"required"`
	Scope     string
	AllScopes bool
	Prefix    string
	Limit     ReturnLimit
	Cursor    string
}

// ListEntriesResponse is one page of entry keys.
type ListEntriesResponse struct {
	Keys           []EntryKey `json:"keys"`
	NextPageCursor *string    `json:"nextPageCursor"`
}

// EntryKey is one key of a DataStore.
type EntryKey struct {
	Scope string `json:"scope"`
	Key   string `json:"key"`
}

// ListEntries lists the entry keys of a DataStore.
func (d *DataStoreClient) ListEntries(ctx context.Context, params ListEntriesParams) (*ListEntriesResponse, error) {
	if err := validateParams(&params); err != nil {
		return nil, err
	}
	query := url.Values{}
	query.Set("datastoreName", params.Name)
	query.Set("scope", scopeOrDefault(params.Scope))
	query.Set("limit", params.Limit.String())
	query.Set("AllScopes", strconv.FormatBool(params.AllScopes))
	if params.Prefix != "" {
		query.Set("prefix", params.Prefix)
	}
	if params.Cursor != "" {
		query.Set("cursor", params.Cursor)
	}
	return doJSON[ListEntriesResponse](ctx, d.client, &request{
		family:  "datastore",
		method:  "GET",
		path:    d.path("/datastore/entries"),
		query:   query,
		onError: dataStoreError,
	})
}

// ------------------------------
// Get entry
// ------------------------------

// GetEntryParams identify one entry.
type GetEntryParams struct {
	Name  string `validate:"required"`
	Scope string
	Key   string `validate:"required"`
}

// GetEntry returns the raw value of an entry as a string.
func (d *DataStoreClient) GetEntry(ctx context.Context, params GetEntryParams) (string, error) {
	if err := validateParams(&params); err != nil {
		return "", err
	}
	query := url.Values{}
	query.Set("datastoreName", params.Name)
	query.Set("scope", scopeOrDefault(params.Scope))
	query.Set("entryKey", params.Key)
	return doText(ctx, d.client, &request{
		family:  "datastore",
		method:  "GET",
		path:    d.path("/datastore/entries/entry"),
		query:   query,
		onError: dataStoreError,
	})
}

// ------------------------------
// Set entry
// ------------------------------

// SetEntryParams are the parameters for setting or creating an entry.
// Data is the JSON-stringified value (up to 4MB).
type SetEntryParams struct {
	Name            string `validate:"required"`
	Scope           string
	Key             string `validate:"required"`
	MatchVersion    string
	ExclusiveCreate *bool
	EntryUserIDs    []UserID
	EntryAttributes string
	Data            string `validate:"required"`
}

// SetEntryResponse describes the version written.
type SetEntryResponse struct {
	Version           string `json:"version"`
	Deleted           bool   `json:"deleted"`
	ContentLength     uint64 `json:"contentLength"`
	CreatedTime       string `json:"createdTime"`
	ObjectCreatedTime string `json:"objectCreatedTime"`
}

// userIDsJSON renders ids as the JSON array the roblox-entry-userids
// header expects; an empty array when none are supplied.
func userIDsJSON(ids []UserID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// SetEntry sets or creates the value of an entry. The request carries the
// base64 MD5 checksum of the body, the associated user IDs, and the
// free-form attributes as headers alongside the content type.
func (d *DataStoreClient) SetEntry(ctx context.Context, params SetEntryParams) (*SetEntryResponse, error) {
	if err := validateParams(&params); err != nil {
		return nil, err
	}
	query := url.Values{}
	query.Set("datastoreName", params.Name)
	query.Set("scope", scopeOrDefault(params.Scope))
	query.Set("entryKey", params.Key)
	if params.MatchVersion != "" {
		query.Set("matchVersion", params.MatchVersion)
	}
	if params.ExclusiveCreate != nil {
		query.Set("exclusiveCreate", strconv.FormatBool(*params.ExclusiveCreate))
	}

	attributes := params.EntryAttributes
	if attributes == "" {
		attributes = "{}"
	}
	data := []byte(params.Data)

	return doJSON[SetEntryResponse](ctx, d.client, &request{
		family: "datastore",
		method: "POST",
		path:   d.path("/datastore/entries/entry"),
		query:  query,
		header: map[string]string{
			"roblox-entry-userids":    userIDsJSON(params.EntryUserIDs),
			"roblox-entry-attributes": attributes,
			"content-md5":             checksumBase64(data),
		},
		body:        bytes.NewReader(data),
		contentType: "application/json",
		onError:     dataStoreError,
	})
}

// ------------------------------
// Increment entry
// ------------------------------

// IncrementEntryParams are the parameters for incrementing an entry.
type IncrementEntryParams struct {
	Name            string `validate:"required"`
	Scope           string
	Key             string `validate:"required"`
	EntryUserIDs    []UserID
	EntryAttributes string
	IncrementBy     float64
}

// IncrementEntry increments (or creates) a numeric entry and returns the
// new value. The service responds with a bare numeric string; a body
// that does not parse as a float64 is a FloatParseError, never zero.
func (d *DataStoreClient) IncrementEntry(ctx context.Context, params IncrementEntryParams) (float64, error) {
	if err := validateParams(&params); err != nil {
		return 0, err
	}
	query := url.Values{}
	query.Set("datastoreName", params.Name)
	query.Set("scope", scopeOrDefault(params.Scope))
	query.Set("entryKey", params.Key)
	query.Set("incrementBy", strconv.FormatFloat(params.IncrementBy, 'f', -1, 64))

	attributes := params.EntryAttributes
	if attributes == "" {
		attributes = "{}"
	}

	text, err := doText(ctx, d.client, &request{
		family: "datastore",
		method: "POST",
		path:   d.path("/datastore/entries/entry/increment"),
		query:  query,
		header: map[string]string{
			"roblox-entry-userids":    userIDsJSON(params.EntryUserIDs),
			"roblox-entry-attributes": attributes,
		},
		onError: dataStoreError,
	})
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &FloatParseError{Value: text, Err: err}
	}
	return value, nil
}

// ------------------------------
// Delete entry
// ------------------------------

// DeleteEntryParams identify the entry to delete.
type DeleteEntryParams struct {
	Name  string `validate:"required"`
	Scope string
	Key   string `validate:"required"`
}

// DeleteEntry deletes an entry.
func (d *DataStoreClient) DeleteEntry(ctx context.Context, params DeleteEntryParams) error {
	if err := validateParams(&params); err != nil {
		return err
	}
	query := url.Values{}
	query.Set("datastoreName", params.Name)
	query.Set("scope", scopeOrDefault(params.Scope))
	query.Set("entryKey", params.Key)
	return doEmpty(ctx, d.client, &request{
		family:  "datastore",
		method:  "DELETE",
		path:    d.path("/datastore/entries/entry"),
		query:   query,
		onError: dataStoreError,
	})
}

// ------------------------------
// Entry versions
// ------------------------------

// ListEntryVersionsParams are the parameters for listing the versions of
// an entry.
type ListEntryVersionsParams struct {
	Name      string `validate:"required"`
	Scope     string
	Key       string `validate:"required"`
	StartTime string
	EndTime   string
	SortOrder string `validate:"required"`
	Limit     ReturnLimit
	Cursor    string
}

// ListEntryVersionsResponse is one page of entry versions.
type ListEntryVersionsResponse struct {
	Versions       []EntryVersion `json:"versions"`
	NextPageCursor *string        `json:"nextPageCursor"`
}

// EntryVersion describes one stored version of an entry.
type EntryVersion struct {
	Version           string `json:"version"`
	Deleted           bool   `json:"deleted"`
	ContentLength     uint64 `json:"contentLength"`
	CreatedTime       string `json:"createdTime"`
	ObjectCreatedTime string `json:"objectCreatedTime"`
}

// ListEntryVersions lists the versions of an entry.
func (d *DataStoreClient) ListEntryVersions(ctx context.Context, params ListEntryVersionsParams) (*ListEntryVersionsResponse, error) {
	if err := validateParams(&params); err != nil {
		return nil, err
	}
	query := url.Values{}
	query.Set("datastoreName", params.Name)
	query.Set("scope", scopeOrDefault(params.Scope))
	query.Set("entryKey", params.Key)
	query.Set("limit", params.Limit.String())
	query.Set("sortOrder", params.SortOrder)
	if params.StartTime != "" {
		query.Set("startTime", params.StartTime)
	}
	if params.EndTime != "" {
		query.Set("endTime", params.EndTime)
	}
	if params.Cursor != "" {
		query.Set("cursor", params.Cursor)
	}
	return doJSON[ListEntryVersionsResponse](ctx, d.client, &request{
		family:  "datastore",
		method:  "GET",
		path:    d.path("/datastore/entries/entry/versions"),
		query:   query,
		onError: dataStoreError,
	})
}

// GetEntryVersionParams identify one version of an entry.
type GetEntryVersionParams struct {
	Name      string `validate:"required"`
	Scope     string
	Key       string `validate:"required"`
	VersionID string `validate:"required"`
}

// GetEntryVersion returns the raw value of a specific entry version as a
// string.
func (d *DataStoreClient) GetEntryVersion(ctx context.Context, params GetEntryVersionParams) (string, error) {
	if err := validateParams(&params); err != nil {
		return "", err
	}
	query := url.Values{}
	query.Set("datastoreName", params.Name)
	query.Set("scope", scopeOrDefault(params.Scope))
	query.Set("entryKey", params.Key)
	query.Set("versionId", params.VersionID)
	return doText(ctx, d.client, &request{
		family:  "datastore",
		method:  "GET",
		path:    d.path("/datastore/entries/entry/versions/version"),
		query:   query,
		onError: dataStoreError,
	})
}
