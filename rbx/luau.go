package rbx

import (
	"context"
	"encoding/json"
	"net/url"
)

// LuauClient is a handle for Luau execution tasks against one place.
// An empty versionID targets the latest place version.
type LuauClient struct {
	client     *Client
	universeID UniverseID
	placeID    PlaceID
	versionID  string
}

// LuauExecutionState is the lifecycle state of an execution task.
type LuauExecutionState string

const (
	LuauStateUnspecified LuauExecutionState = "STATE_UNSPECIFIED"
	LuauStateQueued      LuauExecutionState = "QUEUED"
	LuauStateProcessing  LuauExecutionState = "PROCESSING"
	LuauStateCancelled   LuauExecutionState = "CANCELLED"
	LuauStateComplete    LuauExecutionState = "COMPLETE"
	LuauStateFailed      LuauExecutionState = "FAILED"
)

// LuauLogView selects the log message representation.
type LuauLogView string

const (
	LuauLogViewFlat       LuauLogView = "FLAT"
	LuauLogViewStructured LuauLogView = "STRUCTURED"
)

// LuauTask is a newly created execution task.
type LuauTask struct {
	Path   string             `json:"path"`
	User   string             `json:"user"`
	State  LuauExecutionState `json:"state"`
	Script string             `json:"script"`
}

// LuauTaskOutput carries the script's return values.
type LuauTaskOutput struct {
	Results []json.RawMessage `json:"results"`
}

// LuauTaskInfo is an execution task's full state, as returned when
// polling.
type LuauTaskInfo struct {
	Path       string             `json:"path"`
	CreateTime string             `json:"createTime"`
	UpdateTime string             `json:"updateTime"`
	User       string             `json:"user"`
	State      LuauExecutionState `json:"state"`
	Output     LuauTaskOutput     `json:"output"`
}

// LuauStructuredMessage is one structured log line.
type LuauStructuredMessage struct {
	Message     string `json:"message"`
	CreateTime  string `json:"createTime"`
	MessageType string `json:"messageType"`
}

// LuauTaskLog is one log entry; Messages or StructuredMessages is
// populated depending on the requested view.
type LuauTaskLog struct {
	Path               string                  `json:"path"`
	Messages           []string                `json:"messages"`
	StructuredMessages []LuauStructuredMessage `json:"structuredMessages"`
}

// LuauTaskLogsResponse is one page of an execution task's logs.
type LuauTaskLogsResponse struct {
	LuauExecutionSessionTaskLogs []LuauTaskLog `json:"luauExecutionSessionTaskLogs"`
	NextPageToken                string        `json:"nextPageToken"`
}

// CreateTaskParams carries the script to run. Timeout is a duration
// string in seconds, for example "30s"; empty uses the service default.
type CreateTaskParams struct {
	Script  string `validate:"required"`
	Timeout string
}

// GetTaskLogsParams selects an execution task's log page.
type GetTaskLogsParams struct {
	SessionID   string `validate:"required"`
	TaskID      string `validate:"required"`
	MaxPageSize PageSize
	PageToken   string
	View        LuauLogView
}

// path prepends the place scope; the version segment appears only when
// the handle was created with a version id.
func (l *LuauClient) path(endpoint string) string {
	p := "/cloud/v2/universes/" + l.universeID.String() + "/places/" + l.placeID.String()
	if l.versionID != "" {
		p += "/versions/" + url.PathEscape(l.versionID)
	}
	return p + endpoint
}

// CreateTask submits a script for execution and returns the queued
// task.
func (l *LuauClient) CreateTask(ctx context.Context, params CreateTaskParams) (*LuauTask, error) {
	if err := validateParams(&params); err != nil {
		return nil, err
	}
	input := struct {
		Script  string `json:"script"`
		Timeout string `json:"timeout,omitempty"`
	}{Script: params.Script, Timeout: params.Timeout}
	body, err := jsonBody(input)
	if err != nil {
		return nil, err
	}
	return doJSON[LuauTask](ctx, l.client, &request{
		family:      "luau",
		method:      "POST",
		path:        l.path("/luau-execution-session-tasks"),
		body:        body,
		contentType: "application/json",
		onError:     cloudV2Error,
	})
}

// GetTask polls an execution task's state and output.
func (l *LuauClient) GetTask(ctx context.Context, sessionID, taskID string) (*LuauTaskInfo, error) {
	return doJSON[LuauTaskInfo](ctx, l.client, &request{
		family:  "luau",
		method:  "GET",
		path:    l.path("/luau-execution-sessions/" + url.PathEscape(sessionID) + "/tasks/" + url.PathEscape(taskID)),
		onError: cloudV2Error,
	})
}

// GetTaskLogs fetches one page of an execution task's logs.
func (l *LuauClient) GetTaskLogs(ctx context.Context, params GetTaskLogsParams) (*LuauTaskLogsResponse, error) {
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
	if params.View != "" {
		query.Set("view", string(params.View))
	}
	return doJSON[LuauTaskLogsResponse](ctx, l.client, &request{
		family:  "luau",
		method:  "GET",
		path:    l.path("/luau-execution-sessions/" + url.PathEscape(params.SessionID) + "/tasks/" + url.PathEscape(params.TaskID) + "/logs"),
		query:   query,
		onError: cloudV2Error,
	})
}
