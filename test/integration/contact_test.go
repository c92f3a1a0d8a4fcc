package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awfaabdulkader/interior-architect-backend/test/helpers"
)

func TestContactSubmitAndAdminList(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/contact", "", map[string]interface{}{
		"name":    "Client",
		"email":   "client@test.com",
		"subject": "Apartment redesign",
		"message": "I would like a quote for a 80m2 apartment.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	// Listing is admin only.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/contacts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/contacts", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var listing struct {
		Data []struct {
			ID      string `json:"id"`
			Subject string `json:"subject"`
		} `json:"data"`
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	assert.Equal(t, int64(1), listing.Total)
	require.Len(t, listing.Data, 1)
	assert.Equal(t, "Apartment redesign", listing.Data[0].Subject)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/admin/contacts/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/admin/contacts/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestContactValidation(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/contact", "", map[string]interface{}{
		"name":  "No Message",
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}
