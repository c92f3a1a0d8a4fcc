package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awfaabdulkader/interior-architect-backend/test/helpers"
)

type projectImageJSON struct {
	ID      string  `json:"id"`
	Path    string  `json:"path"`
	Image   *string `json:"image"`
	IsCover bool    `json:"is_cover"`
}

type projectJSON struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	CategoryID  string             `json:"category_id"`
	Images      []projectImageJSON `json:"images"`
	Cover       *string            `json:"cover"`
}

func createProject(t *testing.T, ts *helpers.TestServer, token, categoryID, name string, images ...helpers.UploadFile) projectJSON {
	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/projects", token,
		map[string][]string{
			"name":        {name},
			"description": {"Description of " + name},
			"category_id": {categoryID},
		}, images)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created projectJSON
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	return created
}

func TestProjectCreateWithImages(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	categoryID := createCategory(t, ts, token, "Residential")

	created := createProject(t, ts, token, categoryID, "Loft",
		pngFile("images", "a.png"), pngFile("images", "b.png"))

	assert.Equal(t, "Loft", created.Name)
	assert.Equal(t, categoryID, created.CategoryID)
	require.Len(t, created.Images, 2)

	// No explicit flag, so the first uploaded image serves as cover.
	require.NotNil(t, created.Cover)
	require.NotNil(t, created.Images[0].Image)
	assert.Equal(t, *created.Images[0].Image, *created.Cover)
}

func TestProjectCoverSelection(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	categoryID := createCategory(t, ts, token, "Residential")

	created := createProject(t, ts, token, categoryID, "Penthouse",
		pngFile("images", "first.png"), pngFile("images", "second.png"))
	require.Len(t, created.Images, 2)
	first, second := created.Images[0], created.Images[1]

	// Promote the second image.
	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/projects/"+created.ID+"/cover", token,
		map[string]interface{}{"image_id": second.ID})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/projects/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var afterSet projectJSON
	require.NoError(t, json.Unmarshal([]byte(body), &afterSet))
	require.NotNil(t, afterSet.Cover)
	assert.Equal(t, *second.Image, *afterSet.Cover)

	// Re-flagging the same image is a no-op.
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/projects/"+created.ID+"/cover", token,
		map[string]interface{}{"image_id": second.ID})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/projects/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var afterRepeat projectJSON
	require.NoError(t, json.Unmarshal([]byte(body), &afterRepeat))
	require.NotNil(t, afterRepeat.Cover)
	assert.Equal(t, *second.Image, *afterRepeat.Cover)

	// Deleting the flagged image falls back to the remaining one.
	res, body = ts.SendRequest(t, http.MethodDelete, "/api/v1/projects/"+created.ID+"/images/"+second.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/projects/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var afterDelete projectJSON
	require.NoError(t, json.Unmarshal([]byte(body), &afterDelete))
	require.Len(t, afterDelete.Images, 1)
	require.NotNil(t, afterDelete.Cover)
	assert.Equal(t, *first.Image, *afterDelete.Cover)
}

func TestProjectAddImageAsCover(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	categoryID := createCategory(t, ts, token, "Residential")

	created := createProject(t, ts, token, categoryID, "Studio",
		pngFile("images", "base.png"))

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/projects/"+created.ID+"/images", token,
		map[string][]string{"is_cover": {"true"}},
		[]helpers.UploadFile{pngFile("image", "hero.png")})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var added projectImageJSON
	require.NoError(t, json.Unmarshal([]byte(body), &added))
	assert.True(t, added.IsCover)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/projects/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var detail projectJSON
	require.NoError(t, json.Unmarshal([]byte(body), &detail))
	require.NotNil(t, detail.Cover)
	assert.Equal(t, *added.Image, *detail.Cover)
}

func TestProjectCreateUnknownCategory(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/projects", token,
		map[string][]string{
			"name":        {"Orphan"},
			"category_id": {"0d9356bd-7c39-4077-94a1-6b893a3bf49e"},
		}, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
}

func TestProjectDuplicate(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	categoryID := createCategory(t, ts, token, "Residential")

	createProject(t, ts, token, categoryID, "Twin")

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/projects", token,
		map[string][]string{
			"name":        {"Twin"},
			"description": {"Description of Twin"},
			"category_id": {categoryID},
		}, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
}

func TestProjectUpdateReplacesImages(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	categoryID := createCategory(t, ts, token, "Residential")

	created := createProject(t, ts, token, categoryID, "Renovation",
		pngFile("images", "before.png"))

	res, body := ts.SendMultipart(t, http.MethodPut, "/api/v1/projects/"+created.ID, token,
		map[string][]string{"name": {"Full Renovation"}},
		[]helpers.UploadFile{pngFile("images", "after1.png"), pngFile("images", "after2.png")})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated projectJSON
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, "Full Renovation", updated.Name)
	require.Len(t, updated.Images, 2)
	for _, img := range updated.Images {
		assert.NotEqual(t, created.Images[0].Path, img.Path)
	}
}

func TestProjectBulkDelete(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	categoryID := createCategory(t, ts, token, "Residential")

	p1 := createProject(t, ts, token, categoryID, "One")
	p2 := createProject(t, ts, token, categoryID, "Two")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/projects/bulk-delete", token,
		map[string]interface{}{"ids": []string{p1.ID, p2.ID, "3c9a1c7e-31fd-47de-8eb5-8f2a11111111"}})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var result struct {
		Deleted int64 `json:"deleted"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	assert.Equal(t, int64(2), result.Deleted)
}

func TestProjectListByCategory(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	resID := createCategory(t, ts, token, "Residential")
	comID := createCategory(t, ts, token, "Commercial")

	createProject(t, ts, token, resID, "House")
	createProject(t, ts, token, comID, "Office")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/category/"+resID+"/projects", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var projects []projectJSON
	require.NoError(t, json.Unmarshal([]byte(body), &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "House", projects[0].Name)
}

func TestProjectListPageSizeNotSharedAcrossCache(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	categoryID := createCategory(t, ts, token, "Residential")

	createProject(t, ts, token, categoryID, "House")
	createProject(t, ts, token, categoryID, "Loft")
	createProject(t, ts, token, categoryID, "Villa")

	type listJSON struct {
		Data     []projectJSON `json:"data"`
		Total    int64         `json:"total"`
		PageSize int           `json:"page_size"`
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/projects?page=1&page_size=2", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var small listJSON
	require.NoError(t, json.Unmarshal([]byte(body), &small))
	require.Len(t, small.Data, 2)

	// The second request must not be served the smaller page.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/projects?page=1&page_size=50", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var large listJSON
	require.NoError(t, json.Unmarshal([]byte(body), &large))
	assert.Len(t, large.Data, 3)
	assert.Equal(t, int64(3), large.Total)
	assert.Equal(t, 50, large.PageSize)
}
