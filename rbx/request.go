package rbx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// errorFunc classifies a non-2xx response for one API family.
type errorFunc func(status int, body []byte) error

// dataStoreError parses the structured DataStore error payload. A body
// that does not parse as that shape fails the call with a JSONError, not
// a silent downgrade to Unknown. Unmarshal accepts any JSON object, so a
// payload carrying none of the expected fields is rejected explicitly.
func dataStoreError(status int, body []byte) error {
	var dsErr DataStoreError
	if err := json.Unmarshal(body, &dsErr); err != nil {
		return &JSONError{Err: err}
	}
	if dsErr.Err == "" && dsErr.Message == "" && len(dsErr.ErrorDetails) == 0 {
		return &JSONError{Err: fmt.Errorf("unrecognized error body: %s", body)}
	}
	return &dsErr
}

// cloudV2Error maps cloud/v2 statuses onto the fixed message table.
func cloudV2Error(status int, _ []byte) error {
	return &HTTPError{StatusCode: status, Message: cloudV2Message(status)}
}

// tableError builds a classifier from an operation-specific status table,
// falling back to the HTTP reason phrase.
func tableError(table map[int]string) errorFunc {
	return func(status int, _ []byte) error {
		return &HTTPError{StatusCode: status, Message: statusTableMessage(table, status)}
	}
}

// rawBodyError surfaces the raw response text alongside the status,
// without structured parsing (Assets API contract).
func rawBodyError(status int, body []byte) error {
	return &HTTPError{StatusCode: status, Message: string(body)}
}

// request describes one Open Cloud call: everything the executor needs
// to build the outgoing HTTP request and classify a failure.
type request struct {
	family      string
	method      string
	path        string
	query       url.Values
	header      map[string]string
	body        io.Reader
	contentType string
	onError     errorFunc
}

// do sends the request, attaches the API key, and returns the raw
// response body on a 2xx status. Any other outcome is classified into
// exactly one error from the taxonomy. No retries, no caching.
func (c *Client) do(ctx context.Context, r *request) ([]byte, error) {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, r.method, u, r.body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	httpReq.Header.Set("x-api-key", c.apiKey)
	if r.contentType != "" {
		httpReq.Header.Set("Content-Type", r.contentType)
	}
	for k, v := range r.header {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		requestFailuresTotal.WithLabelValues(r.family).Inc()
		return nil, &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		requestFailuresTotal.WithLabelValues(r.family).Inc()
		return nil, &TransportError{Err: err}
	}

	requestsTotal.WithLabelValues(r.family, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, r.onError(resp.StatusCode, body)
	}
	return body, nil
}

// doJSON runs the request and decodes the 2xx body into T.
func doJSON[T any](ctx context.Context, c *Client, r *request) (*T, error) {
	body, err := c.do(ctx, r)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &JSONError{Err: err}
	}
	return &out, nil
}

// doText runs the request and returns the 2xx body verbatim, for
// operations whose contract is "return the value as a string".
func doText(ctx context.Context, c *Client, r *request) (string, error) {
	body, err := c.do(ctx, r)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// doEmpty runs the request and discards the 2xx body.
func doEmpty(ctx context.Context, c *Client, r *request) error {
	_, err := c.do(ctx, r)
	return err
}

// jsonBody marshals v for use as a request body.
func jsonBody(v any) (io.Reader, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, &JSONError{Err: err}
	}
	return bytes.NewReader(b), nil
}
