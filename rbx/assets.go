package rbx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// AssetsClient is a handle for the Assets API.
type AssetsClient struct {
	client *Client
}

// AssetType is a supported upload format. Both the fine-grained MIME
// type and the coarse category derive from it, so the two always agree
// for a given extension.
type AssetType string

const (
	AssetTypeAudioMP3  AssetType = "audio-mp3"
	AssetTypeAudioOgg  AssetType = "audio-ogg"
	AssetTypeAudioFlac AssetType = "audio-flac"
	AssetTypeAudioWav  AssetType = "audio-wav"
	AssetTypeDecalPNG  AssetType = "decal-png"
	AssetTypeDecalJPEG AssetType = "decal-jpeg"
	AssetTypeDecalBMP  AssetType = "decal-bmp"
	AssetTypeDecalTGA  AssetType = "decal-tga"
	AssetTypeModelFBX  AssetType = "model-fbx"
)

// ContentType returns the MIME type used for the multipart file part.
func (t AssetType) ContentType() string {
	switch t {
	case AssetTypeAudioMP3:
		return "audio/mpeg"
	case AssetTypeAudioOgg:
		return "audio/ogg"
	case AssetTypeAudioFlac:
		return "audio/flac"
	case AssetTypeAudioWav:
		return "audio/wav"
	case AssetTypeDecalPNG:
		return "image/png"
	case AssetTypeDecalJPEG:
		return "image/jpeg"
	case AssetTypeDecalBMP:
		return "image/bmp"
	case AssetTypeDecalTGA:
		return "image/tga"
	case AssetTypeModelFBX:
		return "model/fbx"
	}
	return ""
}

// Category returns the coarse asset category sent in the JSON payload.
func (t AssetType) Category() string {
	switch t {
	case AssetTypeAudioMP3, AssetTypeAudioOgg, AssetTypeAudioFlac, AssetTypeAudioWav:
		return "Audio"
	case AssetTypeDecalPNG, AssetTypeDecalJPEG, AssetTypeDecalBMP, AssetTypeDecalTGA:
		return "Decal"
	case AssetTypeModelFBX:
		return "Model"
	}
	return ""
}

// MarshalJSON renders the asset type as its category, which is what the
// service expects in the request metadata.
func (t AssetType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Category())
}

// AssetTypeFromExtension infers the asset type from a filename
// extension (without the dot). An unrecognized extension yields an
// AssetTypeError and no request is sent.
func AssetTypeFromExtension(ext string) (AssetType, error) {
	switch strings.ToLower(ext) {
	case "mp3":
		return AssetTypeAudioMP3, nil
	case "ogg":
		return AssetTypeAudioOgg, nil
	case "flac":
		return AssetTypeAudioFlac, nil
	case "wav":
		return AssetTypeAudioWav, nil
	case "png":
		return AssetTypeDecalPNG, nil
	case "jpg", "jpeg":
		return AssetTypeDecalJPEG, nil
	case "bmp":
		return AssetTypeDecalBMP, nil
	case "tga":
		return AssetTypeDecalTGA, nil
	case "fbx":
		return AssetTypeModelFBX, nil
	}
	return "", &AssetTypeError{Ext: ext}
}

// AssetTypeFromFilename infers the asset type from a path's extension.
func AssetTypeFromFilename(filename string) (AssetType, error) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return "", &AssetTypeError{Ext: ""}
	}
	return AssetTypeFromExtension(ext)
}

// ------------------------------
// Asset metadata types
// ------------------------------

// AssetCreator identifies the owning user or group; exactly one field is
// set.
type AssetCreator struct {
	UserID  string `json:"userId,omitempty"`
	GroupID string `json:"groupId,omitempty"`
}

// AssetCreationContext carries the creator and optional expected price.
type AssetCreationContext struct {
	Creator       AssetCreator `json:"creator"`
	ExpectedPrice *uint64      `json:"expectedPrice,omitempty"`
}

// AssetCreation is the metadata for a new asset.
type AssetCreation struct {
	AssetType       AssetType            `json:"assetType"`
	DisplayName     string               `json:"displayName"`
	Description     string               `json:"description"`
	CreationContext AssetCreationContext `json:"creationContext"`
}

// ProtobufAny is the service's wrapper around a typed protobuf payload.
type ProtobufAny struct {
	MessageType string `json:"@type"`
}

// AssetErrorStatus is the error detail attached to a failed operation.
type AssetErrorStatus struct {
	Code    uint64        `json:"code"`
	Message string        `json:"message"`
	Details []ProtobufAny `json:"details"`
}

// AssetOperation is the long-running operation returned by create and
// update. Every field is optional: the live service omits several of
// them even though the nominal schema implies presence.
type AssetOperation struct {
	Path     *string           `json:"path"`
	Metadata *ProtobufAny      `json:"metadata"`
	Done     *bool             `json:"done"`
	Error    *AssetErrorStatus `json:"error"`
	Response *ProtobufAny      `json:"response"`
}

// AssetGetOperation is the result of polling an operation by id.
type AssetGetOperation struct {
	Path     string                     `json:"path"`
	Done     *bool                      `json:"done"`
	Response *AssetGetOperationResponse `json:"response"`
}

// AssetGetOperationResponse is the completed-operation payload.
type AssetGetOperationResponse struct {
	Path               string               `json:"path"`
	RevisionID         string               `json:"revisionId"`
	RevisionCreateTime string               `json:"revisionCreateTime"`
	AssetID            string               `json:"assetId"`
	DisplayName        string               `json:"displayName"`
	Description        string               `json:"description"`
	AssetType          string               `json:"assetType"`
	CreationContext    AssetCreationContext `json:"creationContext"`
}

// ModerationResult carries the asset's moderation state. The docs and
// the live API disagree on the value set, so it stays a string.
type ModerationResult struct {
	ModerationState string `json:"moderationState"`
}

// AssetInfo describes an existing asset.
type AssetInfo struct {
	AssetType          string                `json:"assetType"`
	AssetID            string                `json:"assetId"`
	CreationContext    *AssetCreationContext `json:"creationContext"`
	Description        string                `json:"description"`
	DisplayName        string                `json:"displayName"`
	Path               string                `json:"path"`
	RevisionID         string                `json:"revisionId"`
	RevisionCreateTime string                `json:"revisionCreateTime"`
	ModerationResult   *ModerationResult     `json:"moderationResult"`
	State              string                `json:"state"`
}

// ------------------------------
// Multipart assembly
// ------------------------------

// assetForm builds the two-part upload form: a JSON metadata part named
// "request" and a binary part named "fileContent" carrying the file
// bytes with their MIME type.
func assetForm(meta any, fileName, contentType string, contents []byte) (*bytes.Buffer, string, error) {
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, "", &JSONError{Err: err}
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := form.WriteField("request", string(metaJSON)); err != nil {
		return nil, "", &TransportError{Err: err}
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="fileContent"; filename=%q`, fileName))
	header.Set("Content-Type", contentType)
	part, err := form.CreatePart(header)
	if err != nil {
		return nil, "", &TransportError{Err: err}
	}
	if _, err := part.Write(contents); err != nil {
		return nil, "", &TransportError{Err: err}
	}
	if err := form.Close(); err != nil {
		return nil, "", &TransportError{Err: err}
	}
	return &buf, form.FormDataContentType(), nil
}

// ------------------------------
// Operations
// ------------------------------

// CreateAssetParams are the parameters for uploading a new asset from a
// file on disk. When AssetType is empty it is inferred from the
// FilePath extension before any file I/O or network traffic.
type CreateAssetParams struct {
	DisplayName   string `validate:"required"`
	Description   string
	Creator       AssetCreator
	ExpectedPrice *uint64
	AssetType     AssetType
	FilePath      string `validate:"required"`
}

// CreateAsset uploads a new asset and returns the pending operation.
func (a *AssetsClient) CreateAsset(ctx context.Context, params CreateAssetParams) (*AssetOperation, error) {
	if err := validateParams(&params); err != nil {
		return nil, err
	}
	assetType := params.AssetType
	if assetType == "" {
		inferred, err := AssetTypeFromFilename(params.FilePath)
		if err != nil {
			return nil, err
		}
		assetType = inferred
	}

	contents, err := os.ReadFile(params.FilePath)
	if err != nil {
		return nil, &FileError{Path: params.FilePath, Err: err}
	}

	return a.createAsset(ctx, AssetCreation{
		AssetType:   assetType,
		DisplayName: params.DisplayName,
		Description: params.Description,
		CreationContext: AssetCreationContext{
			Creator:       params.Creator,
			ExpectedPrice: params.ExpectedPrice,
		},
	}, filepath.Base(params.FilePath), contents)
}

// CreateAssetWithContents uploads a new asset from an in-memory byte
// buffer; the display name doubles as the file part's filename.
func (a *AssetsClient) CreateAssetWithContents(ctx context.Context, asset AssetCreation, contents []byte) (*AssetOperation, error) {
	if asset.AssetType == "" {
		return nil, &AssetTypeError{Ext: ""}
	}
	return a.createAsset(ctx, asset, asset.DisplayName, contents)
}

func (a *AssetsClient) createAsset(ctx context.Context, asset AssetCreation, fileName string, contents []byte) (*AssetOperation, error) {
	body, contentType, err := assetForm(asset, fileName, asset.AssetType.ContentType(), contents)
	if err != nil {
		return nil, err
	}
	return doJSON[AssetOperation](ctx, a.client, &request{
		family:      "assets",
		method:      "POST",
		path:        "/assets/v1/assets",
		body:        body,
		contentType: contentType,
		onError:     rawBodyError,
	})
}

// UpdateAssetParams are the parameters for replacing an asset's
// contents with a new file revision.
type UpdateAssetParams struct {
	AssetID   uint64 `validate:"required"`
	AssetType AssetType
	FilePath  string `validate:"required"`
}

// UpdateAsset uploads a new revision of an existing asset.
func (a *AssetsClient) UpdateAsset(ctx context.Context, params UpdateAssetParams) (*AssetOperation, error) {
	if err := validateParams(&params); err != nil {
		return nil, err
	}
	assetType := params.AssetType
	if assetType == "" {
		inferred, err := AssetTypeFromFilename(params.FilePath)
		if err != nil {
			return nil, err
		}
		assetType = inferred
	}

	contents, err := os.ReadFile(params.FilePath)
	if err != nil {
		return nil, &FileError{Path: params.FilePath, Err: err}
	}

	meta := struct {
		AssetID uint64 `json:"assetId"`
	}{AssetID: params.AssetID}

	body, contentType, err := assetForm(meta, filepath.Base(params.FilePath), assetType.ContentType(), contents)
	if err != nil {
		return nil, err
	}
	return doJSON[AssetOperation](ctx, a.client, &request{
		family:      "assets",
		method:      "PATCH",
		path:        fmt.Sprintf("/assets/v1/assets/%d", params.AssetID),
		body:        body,
		contentType: contentType,
		onError:     rawBodyError,
	})
}

// GetOperation polls a pending asset operation by id.
func (a *AssetsClient) GetOperation(ctx context.Context, operationID string) (*AssetGetOperation, error) {
	if operationID == "" {
		return nil, fmt.Errorf("operationId is required")
	}
	return doJSON[AssetGetOperation](ctx, a.client, &request{
		family:  "assets",
		method:  "GET",
		path:    "/assets/v1/operations/" + url.PathEscape(operationID),
		onError: rawBodyError,
	})
}

// GetAsset fetches an asset's metadata. readMask optionally narrows the
// returned fields.
func (a *AssetsClient) GetAsset(ctx context.Context, assetID uint64, readMask string) (*AssetInfo, error) {
	query := url.Values{}
	if readMask != "" {
		query.Set("readMask", readMask)
	}
	return doJSON[AssetInfo](ctx, a.client, &request{
		family:  "assets",
		method:  "GET",
		path:    fmt.Sprintf("/assets/v1/assets/%d", assetID),
		query:   query,
		onError: rawBodyError,
	})
}

// ArchiveAsset archives an asset, removing it from use.
func (a *AssetsClient) ArchiveAsset(ctx context.Context, assetID uint64) (*AssetInfo, error) {
	return doJSON[AssetInfo](ctx, a.client, &request{
		family:      "assets",
		method:      "POST",
		path:        fmt.Sprintf("/assets/v1/assets/%d:archive", assetID),
		contentType: "application/json",
		onError:     rawBodyError,
	})
}

// RestoreAsset restores a previously archived asset.
func (a *AssetsClient) RestoreAsset(ctx context.Context, assetID uint64) (*AssetInfo, error) {
	return doJSON[AssetInfo](ctx, a.client, &request{
		family:      "assets",
		method:      "POST",
		path:        fmt.Sprintf("/assets/v1/assets/%d:restore", assetID),
		contentType: "application/json",
		onError:     rawBodyError,
	})
}
