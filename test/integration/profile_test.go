package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awfaabdulkader/interior-architect-backend/test/helpers"
)

func TestEducationCRUD(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/education", token, map[string]interface{}{
		"institution": "ENSA Paris",
		"degree":      "Master",
		"field":       "Interior Architecture",
		"start_year":  2015,
		"end_year":    2020,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		ID        string `json:"id"`
		StartYear int    `json:"start_year"`
		EndYear   *int   `json:"end_year"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, 2015, created.StartYear)
	require.NotNil(t, created.EndYear)
	assert.Equal(t, 2020, *created.EndYear)

	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/education/"+created.ID, token, map[string]interface{}{
		"degree": "Master of Arts",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/education", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var listing []struct {
		Degree string `json:"degree"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Len(t, listing, 1)
	assert.Equal(t, "Master of Arts", listing[0].Degree)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/education/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestEducationOrderedByStartYear(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	for _, entry := range []map[string]interface{}{
		{"institution": "Older School", "degree": "Bachelor", "start_year": 2010},
		{"institution": "Newer School", "degree": "Master", "start_year": 2018},
	} {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/education", token, entry)
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/education", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var listing []struct {
		Institution string `json:"institution"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Len(t, listing, 2)
	assert.Equal(t, "Newer School", listing[0].Institution)
}

func TestExperienceCRUD(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	start := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/experience", token, map[string]interface{}{
		"company":    "Studio Lumen",
		"position":   "Interior Architect",
		"start_date": start.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		ID      string     `json:"id"`
		EndDate *time.Time `json:"end_date"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Nil(t, created.EndDate)

	end := start.AddDate(2, 0, 0)
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/experience/"+created.ID, token, map[string]interface{}{
		"end_date": end.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/experience/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestExperienceEndBeforeStart(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/experience", token, map[string]interface{}{
		"company":    "Backwards Inc",
		"position":   "Designer",
		"start_date": start.Format(time.RFC3339),
		"end_date":   start.AddDate(-1, 0, 0).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}
