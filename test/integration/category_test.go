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

type categoryJSON struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cover       *string `json:"cover"`
}

func TestCategoryCreateWithCover(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/category", token,
		map[string][]string{
			"name":        {"Residential"},
			"description": {"Houses and apartments"},
		},
		[]helpers.UploadFile{pngFile("cover", "living-room.png")})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created categoryJSON
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, "Residential", created.Name)
	require.NotNil(t, created.Cover)
	assert.True(t, strings.HasPrefix(*created.Cover, "data:image/png;base64,"))

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/category/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
}

func TestCategoryBatchCreate(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/category", token,
		map[string][]string{
			"name":        {"Commercial", "Hospitality"},
			"description": {"Offices", "Hotels"},
		}, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created []categoryJSON
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	require.Len(t, created, 2)
	assert.Equal(t, "Commercial", created[0].Name)
	assert.Equal(t, "Hospitality", created[1].Name)
}

func TestCategoryBatchRejectsDuplicateWithinBatch(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/category", token,
		map[string][]string{
			"name": {"Commercial", "Commercial"},
		}, nil)
	require.Equal(t, http.StatusConflict, res.StatusCode, body)

	// Nothing from the batch is persisted.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/category", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var listed struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listed))
	assert.Zero(t, listed.Total)
}

func TestCategoryDuplicateName(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	createCategory(t, ts, token, "Retail")

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/category", token,
		map[string][]string{"name": {"Retail"}}, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
}

func TestCategoryUpdateReplacesCover(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/category", token,
		map[string][]string{"name": {"Workspaces"}},
		[]helpers.UploadFile{pngFile("cover", "old.png")})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var created categoryJSON
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	res, body = ts.SendMultipart(t, http.MethodPut, "/api/v1/category/"+created.ID, token,
		map[string][]string{"name": {"Open Workspaces"}},
		[]helpers.UploadFile{pngFile("cover", "new.png")})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated categoryJSON
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, "Open Workspaces", updated.Name)
	require.NotNil(t, updated.Cover)
	assert.NotEqual(t, *created.Cover, *updated.Cover)
}

func TestCategoryDeleteBlockedByProjects(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	categoryID := createCategory(t, ts, token, "Blocked")

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/projects", token,
		map[string][]string{
			"name":        {"Villa"},
			"description": {"Seaside villa"},
			"category_id": {categoryID},
		}, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodDelete, "/api/v1/category/"+categoryID, token, nil)
	require.Equal(t, http.StatusUnprocessableEntity, res.StatusCode, body)

	var errResp struct {
		Error struct {
			Details struct {
				ProjectCount int64 `json:"project_count"`
				Projects     []struct {
					ID   string `json:"id"`
					Name string `json:"name"`
				} `json:"projects"`
			} `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &errResp))
	assert.Equal(t, int64(1), errResp.Error.Details.ProjectCount)
	require.Len(t, errResp.Error.Details.Projects, 1)
	assert.Equal(t, "Villa", errResp.Error.Details.Projects[0].Name)

	var projectID = errResp.Error.Details.Projects[0].ID
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/projects/"+projectID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodDelete, "/api/v1/category/"+categoryID, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
}

func TestCategoryListPublic(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	createCategory(t, ts, token, "Alpha")
	createCategory(t, ts, token, "Beta")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/category", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var listing struct {
		Data  []categoryJSON `json:"data"`
		Total int64          `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	assert.Equal(t, int64(2), listing.Total)
	assert.Len(t, listing.Data, 2)
}
