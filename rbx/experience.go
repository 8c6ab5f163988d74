package rbx

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
)

// ExperienceClient is a handle for publishing place files to one place
// of a universe.
type ExperienceClient struct {
	client     *Client
	universeID UniverseID
	placeID    PlaceID
}

// PublishVersionType selects how a published place file is exposed.
type PublishVersionType string

const (
	// PublishVersionSaved saves the file as the most recent version
	// without making it live; Studio loads it, players do not see it.
	PublishVersionSaved PublishVersionType = "Saved"

	// PublishVersionPublished makes the file the live version that
	// players join.
	PublishVersionPublished PublishVersionType = "Published"
)

// PublishResponse carries the version number assigned to the upload.
type PublishResponse struct {
	VersionNumber uint64 `json:"versionNumber"`
}

var experienceStatusTable = map[int]string{
	400: "invalid request or file content",
	401: "api key not valid for operation",
	403: "publish not allowed on place",
	404: "place or universe does not exist",
	409: "place not part of the universe",
	500: "internal server error",
}

// Publish uploads a place file (*.rbxl or *.rbxlx) as an octet-stream
// body and returns the new version number. A failure to read the file is
// a FileError, distinct from any HTTP failure.
func (e *ExperienceClient) Publish(ctx context.Context, filename string, versionType PublishVersionType) (*PublishResponse, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, &FileError{Path: filename, Err: err}
	}

	query := url.Values{}
	query.Set("versionType", string(versionType))

	return doJSON[PublishResponse](ctx, e.client, &request{
		family:      "experience",
		method:      "POST",
		path:        fmt.Sprintf("/universes/v1/%s/places/%s/versions", e.universeID, e.placeID),
		query:       query,
		body:        bytes.NewReader(data),
		contentType: "application/octet-stream",
		onError:     tableError(experienceStatusTable),
	})
}
