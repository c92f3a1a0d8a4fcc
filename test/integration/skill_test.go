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

type skillJSON struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Logo *string `json:"logo"`
}

func TestSkillBatchCreateAndList(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/skills", token,
		map[string][]string{"name": {"AutoCAD", "SketchUp"}},
		[]helpers.UploadFile{pngFile("logo", "autocad.png"), pngFile("logo", "sketchup.png")})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created []skillJSON
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	require.Len(t, created, 2)
	require.NotNil(t, created[0].Logo)
	assert.True(t, strings.HasPrefix(*created[0].Logo, "data:image/png;base64,"))

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/skills", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var listing []skillJSON
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	assert.Len(t, listing, 2)
}

func TestSkillSingleCreateReturnsObject(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/skills", token,
		map[string][]string{"name": {"Revit"}}, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created skillJSON
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, "Revit", created.Name)
	assert.Nil(t, created.Logo)
}

func TestSkillUpdateReplacesLogo(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/skills", token,
		map[string][]string{"name": {"Photoshop"}},
		[]helpers.UploadFile{pngFile("logo", "ps-old.png")})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var created skillJSON
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	res, body = ts.SendMultipart(t, http.MethodPut, "/api/v1/skills/"+created.ID, token,
		map[string][]string{"name": {"Adobe Photoshop"}},
		[]helpers.UploadFile{pngFile("logo", "ps-new.png")})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated skillJSON
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, "Adobe Photoshop", updated.Name)
	require.NotNil(t, updated.Logo)
	assert.NotEqual(t, *created.Logo, *updated.Logo)
}

func TestSkillBulkDelete(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/skills", token,
		map[string][]string{"name": {"A", "B", "C"}}, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var created []skillJSON
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/skills/bulk-delete", token,
		map[string]interface{}{"ids": []string{created[0].ID, created[1].ID}})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var result struct {
		Deleted int64 `json:"deleted"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	assert.Equal(t, int64(2), result.Deleted)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/skills", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var listing []skillJSON
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	assert.Len(t, listing, 1)
}
