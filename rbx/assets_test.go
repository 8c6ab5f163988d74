package rbx

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetTypeFromExtension(t *testing.T) {
	tests := []struct {
		ext         string
		want        AssetType
		contentType string
		category    string
	}{
		{"mp3", AssetTypeAudioMP3, "audio/mpeg", "Audio"},
		{"ogg", AssetTypeAudioOgg, "audio/ogg", "Audio"},
		{"flac", AssetTypeAudioFlac, "audio/flac", "Audio"},
		{"wav", AssetTypeAudioWav, "audio/wav", "Audio"},
		{"png", AssetTypeDecalPNG, "image/png", "Decal"},
		{"jpg", AssetTypeDecalJPEG, "image/jpeg", "Decal"},
		{"jpeg", AssetTypeDecalJPEG, "image/jpeg", "Decal"},
		{"bmp", AssetTypeDecalBMP, "image/bmp", "Decal"},
		{"tga", AssetTypeDecalTGA, "image/tga", "Decal"},
		{"fbx", AssetTypeModelFBX, "model/fbx", "Model"},
		{"PNG", AssetTypeDecalPNG, "image/png", "Decal"},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			got, err := AssetTypeFromExtension(tt.ext)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.contentType, got.ContentType())
			assert.Equal(t, tt.category, got.Category())
		})
	}

	_, err := AssetTypeFromExtension("exe")
	var typeErr *AssetTypeError
	require.ErrorAs(t, err, &typeErr)
}

func TestAssetType_MarshalsAsCategory(t *testing.T) {
	b, err := json.Marshal(AssetTypeDecalPNG)
	require.NoError(t, err)
	assert.Equal(t, `"Decal"`, string(b))
}

func TestAssets_CreateAsset(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "icon.png")
	require.NoError(t, os.WriteFile(file, []byte("png-bytes"), 0o644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/assets/v1/assets", r.URL.Path)

		mr, err := r.MultipartReader()
		require.NoError(t, err)

		parts := map[string]string{}
		var filePartType string
		for {
			part, err := mr.NextPart()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			data, err := io.ReadAll(part)
			require.NoError(t, err)
			parts[part.FormName()] = string(data)
			if part.FormName() == "fileContent" {
				filePartType = part.Header.Get("Content-Type")
			}
		}

		require.Contains(t, parts, "request")
		require.Contains(t, parts, "fileContent")
		assert.Equal(t, "png-bytes", parts["fileContent"])
		assert.Equal(t, "image/png", filePartType)

		var meta AssetCreation
		require.NoError(t, json.Unmarshal([]byte(parts["request"]), &meta))
		assert.Equal(t, "My Icon", meta.DisplayName)
		assert.Equal(t, "101", meta.CreationContext.Creator.UserID)

		_, _ = w.Write([]byte(`{"path":"operations/abc","done":false}`))
	}))
	defer srv.Close()

	assets := New("k", WithBaseURL(srv.URL)).Assets()
	op, err := assets.CreateAsset(context.Background(), CreateAssetParams{
		DisplayName: "My Icon",
		Creator:     AssetCreator{UserID: "101"},
		FilePath:    file,
	})
	require.NoError(t, err)
	require.NotNil(t, op.Path)
	assert.Equal(t, "operations/abc", *op.Path)
}

func TestAssets_CreateAssetNoExtension(t *testing.T) {
	requested := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer srv.Close()

	assets := New("k", WithBaseURL(srv.URL)).Assets()
	_, err := assets.CreateAsset(context.Background(), CreateAssetParams{
		DisplayName: "Mystery",
		FilePath:    "/tmp/no-extension",
	})
	var typeErr *AssetTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.False(t, requested, "request must not be sent when the asset type cannot be inferred")
}

func TestAssets_RawBodyError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	defer srv.Close()

	assets := New("k", WithBaseURL(srv.URL)).Assets()
	_, err := assets.GetAsset(context.Background(), 42, "")
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("err = %v, want HTTPError", err)
	}
	assert.Equal(t, http.StatusTeapot, httpErr.StatusCode)
	assert.Equal(t, "short and stout", httpErr.Message)
}
