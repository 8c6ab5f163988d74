package rbx

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// OrderedDataStoreClient is a handle scoped to one universe's
// OrderedDataStores.
type OrderedDataStoreClient struct {
	client     *Client
	universeID UniverseID
}

func (o *OrderedDataStoreClient) path(name, scope, endpoint string) string {
	return fmt.Sprintf("/ordered-data-stores/v1/universes/%s/orderedDataStores/%s/scopes/%s%s",
		o.universeID, url.PathEscape(name), url.PathEscape(scopeOrDefault(scope)), endpoint)
}

// OrderedEntry is one entry of an OrderedDataStore.
type OrderedEntry struct {
	Path  string  `json:"path"`
	ID    string  `json:"id"`
	Value float64 `json:"value"`
}

// orderedEntryValue is the body shape for create and update.
type orderedEntryValue struct {
	Value float64 `json:"value"`
}

// ------------------------------
// List entries
// ------------------------------

// OrderedListEntriesParams are the parameters for listing entries of an
// OrderedDataStore.
type OrderedListEntriesParams struct {
	Name        string `validate:"required"`
	Scope       string
	MaxPageSize PageSize
	PageToken   string
	OrderBy     string
	Filter      string
}

// OrderedListEntriesResponse is one page of ordered entries.
type OrderedListEntriesResponse struct {
	Entries       []OrderedEntry `json:"entries"`
	NextPageToken *string        `json:"nextPageToken"`
}

// ListEntries lists entries in value order.
func (o *OrderedDataStoreClient) ListEntries(ctx context.Context, params OrderedListEntriesParams) (*OrderedListEntriesResponse, error) {
	if err := validateParams(&params); err != nil {
		return nil, err
	}
	query := url.Values{}
	if params.MaxPageSize > 0 {
		query.Set("max_page_size", params.MaxPageSize.String())
	}
	if params.PageToken != "" {
		query.Set("page_token", params.PageToken)
	}
	if params.OrderBy != "" {
		query.Set("order_by", params.OrderBy)
	}
	if params.Filter != "" {
		query.Set("filter", params.Filter)
	}
	return doJSON[OrderedListEntriesResponse](ctx, o.client, &request{
		family:  "ordered-datastore",
		method:  "GET",
		path:    o.path(params.Name, params.Scope, "/entries"),
		query:   query,
		onError: dataStoreError,
	})
}

// ------------------------------
// Entry CRUD
// ------------------------------

// OrderedCreateEntryParams are the parameters for creating an entry.
type OrderedCreateEntryParams struct {
	Name  string `validate:"required"`
	Scope string
	ID    string `validate:"required"`
	Value float64
}

// CreateEntry creates a new entry with the given id and value.
func (o *OrderedDataStoreClient) CreateEntry(ctx context.Context, params OrderedCreateEntryParams) (*OrderedEntry, error) {
	if err := validateParams(&params); err != nil {
		return nil, err
	}
	body, err := jsonBody(orderedEntryValue{Value: params.Value})
	if err != nil {
		return nil, err
	}
	query := url.Values{}
	query.Set("id", params.ID)
	return doJSON[OrderedEntry](ctx, o.client, &request{
		family:      "ordered-datastore",
		method:      "POST",
		path:        o.path(params.Name, params.Scope, "/entries"),
		query:       query,
		body:        body,
		contentType: "application/json",
		onError:     dataStoreError,
	})
}

// OrderedEntryParams identify one entry.
type OrderedEntryParams struct {
	Name  string `validate:"required"`
	Scope string
	ID    string `validate:"required"`
}

// GetEntry returns one entry.
func (o *OrderedDataStoreClient) GetEntry(ctx context.Context, params OrderedEntryParams) (*OrderedEntry, error) {
	if err := validateParams(&params); err != nil {
		return nil, err
	}
	return doJSON[OrderedEntry](ctx, o.client, &request{
		family:  "ordered-datastore",
		method:  "GET",
		path:    o.path(params.Name, params.Scope, "/entries/"+url.PathEscape(params.ID)),
		onError: dataStoreError,
	})
}

// DeleteEntry deletes one entry.
func (o *OrderedDataStoreClient) DeleteEntry(ctx context.Context, params OrderedEntryParams) error {
	if err := validateParams(&params); err != nil {
		return err
	}
	return doEmpty(ctx, o.client, &request{
		family:  "ordered-datastore",
		method:  "DELETE",
		path:    o.path(params.Name, params.Scope, "/entries/"+url.PathEscape(params.ID)),
		onError: dataStoreError,
	})
}

// OrderedUpdateEntryParams are the parameters for updating an entry's
// value. AllowMissing creates the entry when it does not exist.
type OrderedUpdateEntryParams struct {
	Name         string `validate:"required"`
	Scope        string
	ID           string `validate:"required"`
	Value        float64
	AllowMissing bool
}

// UpdateEntry sets the value of an existing entry.
func (o *OrderedDataStoreClient) UpdateEntry(ctx context.Context, params OrderedUpdateEntryParams) (*OrderedEntry, error) {
	if err := validateParams(&params); err != nil {
		return nil, err
	}
	body, err := jsonBody(orderedEntryValue{Value: params.Value})
	if err != nil {
		return nil, err
	}
	query := url.Values{}
	if params.AllowMissing {
		query.Set("allow_missing", strconv.FormatBool(params.AllowMissing))
	}
	return doJSON[OrderedEntry](ctx, o.client, &request{
		family:      "ordered-datastore",
		method:      "PATCH",
		path:        o.path(params.Name, params.Scope, "/entries/"+url.PathEscape(params.ID)),
		query:       query,
		body:        body,
		contentType: "application/json",
		onError:     dataStoreError,
	})
}

// OrderedIncrementEntryParams are the parameters for incrementing an
// entry's value.
type OrderedIncrementEntryParams struct {
	Name      string `validate:"required"`
	Scope     string
	ID        string `validate:"required"`
	Increment float64
}

// IncrementEntry adds the increment to an entry and returns the updated
// entry.
func (o *OrderedDataStoreClient) IncrementEntry(ctx context.Context, params OrderedIncrementEntryParams) (*OrderedEntry, error) {
	if err := validateParams(&params); err != nil {
		return nil, err
	}
	body, err := jsonBody(struct {
		Amount float64 `json:"amount"`
	}{Amount: params.Increment})
	if err != nil {
		return nil, err
	}
	return doJSON[OrderedEntry](ctx, o.client, &request{
		family:      "ordered-datastore",
		method:      "POST",
		path:        o.path(params.Name, params.Scope, "/entries/"+url.PathEscape(params.ID)+":increment"),
		body:        body,
		contentType: "application/json",
		onError:     dataStoreError,
	})
}
