package integration_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awfaabdulkader/interior-architect-backend/test/helpers"
)

func TestImageServing(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	categoryID := createCategory(t, ts, token, "Residential")

	content := []byte("png-bytes-served.png")
	created := createProject(t, ts, token, categoryID, "Served",
		helpers.UploadFile{Field: "images", Filename: "served.png", Content: content})
	require.Len(t, created.Images, 1)
	path := created.Images[0].Path

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/images/"+path, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Equal(t, "image/png", res.Header.Get("Content-Type"))
	assert.Equal(t, "public, max-age=31536000", res.Header.Get("Cache-Control"))
	assert.Equal(t, string(content), body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/images/"+path+"/info", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var info struct {
		Path     string `json:"path"`
		Filename string `json:"filename"`
		MimeType string `json:"mime_type"`
		Size     int64  `json:"size"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &info))
	assert.Equal(t, path, info.Path)
	assert.True(t, strings.HasSuffix(info.Filename, "served.png"))
	assert.Equal(t, "image/png", info.MimeType)
	assert.Equal(t, int64(len(content)), info.Size)
}

func TestImageNotFound(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/images/projects/does-not-exist.png", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
