package integration_test

import (
	"encoding/json"
	"net/http"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/awfaabdulkader/interior-architect-backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer lazily boots the shared test server. The suite needs a
// running Postgres, so it skips itself when DATABASE_URL is not set.
func GetTestServer(t *testing.T) *helpers.TestServer {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL is not set, skipping integration tests")
	}
	serverOnce.Do(func() {
		os.Setenv("SERVER_ENV", "test")
		if os.Getenv("JWT_SECRET") == "" {
			os.Setenv("JWT_SECRET", "integration_test_secret_key_12345")
		}
		globalTestServer = helpers.NewTestServer(t)
	})
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()
	if globalTestServer != nil {
		globalTestServer.Close()
	}
	os.Exit(code)
}

// createCategory makes a category over the API and returns its id.
func createCategory(t *testing.T, ts *helpers.TestServer, token, name string) string {
	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/category", token,
		map[string][]string{"name": {name}}, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, "category create must succeed, got: "+body)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	require.NotEmpty(t, created.ID)
	return created.ID
}

func pngFile(field, name string) helpers.UploadFile {
	return helpers.UploadFile{Field: field, Filename: name, Content: []byte("png-bytes-" + name)}
}

func pdfFile(field, name string) helpers.UploadFile {
	return helpers.UploadFile{Field: field, Filename: name, Content: []byte("%PDF-1.4 test " + name)}
}
